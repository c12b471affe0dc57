package demo

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// Body is the markdown shown inside the overlay.
const Body = `# Sliding overlay

The content slides in from the configured edge and out again on close.

- **esc** or **c** closes
- **l** toggles the loading state of the close button
- **d** toggles its disabled state
`

// renderMarkdown renders md with a fixed glamour style. Rendering errors fall
// back to the raw text.
func renderMarkdown(md, style string, width int) string {
	if md == "" {
		return ""
	}

	// A fixed style avoids glamour's terminal background query.
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}

	rendered, err := renderer.Render(md)
	if err != nil {
		return md
	}

	return strings.Trim(rendered, "\n\r")
}
