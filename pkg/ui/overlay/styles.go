package overlay

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	DefaultBackground = lipgloss.Color("#FFFFFF")
	ContentText       = lipgloss.Color("#1A1A1A")
	BackdropText      = lipgloss.Color("240")
	BorderNormal      = lipgloss.Color("240")
)

// Container geometry in cells.
const (
	marginX = 4
	marginY = 2
)

// Backdrop dims whatever is underneath the overlay once it is mostly open.
var Backdrop = lipgloss.NewStyle().
	Foreground(BackdropText).
	Faint(true)

// BackdropFading is the backdrop while the overlay is part way in or out.
var BackdropFading = lipgloss.NewStyle().
	Foreground(BackdropText)

// containerStyle is the computed style for the content container on a
// width x height viewport. Custom styles are merged over it by the caller;
// the border background follows the merged background.
func containerStyle(bg lipgloss.TerminalColor, width, height int) lipgloss.Style {
	mx, my := margins(width, height)
	// Width and Height exclude the border in lipgloss.
	w := max(width-2*mx-2, 1)
	h := max(height-2*my-2, 1)

	return lipgloss.NewStyle().
		Foreground(ContentText).
		Background(bg).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderNormal).
		Padding(1, 2).
		Width(w).
		Height(h).
		MaxHeight(height)
}

// margins shrinks to zero on viewports too small to afford them.
func margins(width, height int) (int, int) {
	mx, my := marginX, marginY
	if width-2*mx < 20 {
		mx = 0
	}
	if height-2*my < 8 {
		my = 0
	}
	return mx, my
}
