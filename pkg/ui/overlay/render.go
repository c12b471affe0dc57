package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/marcus/slideover/pkg/ui/mouse"
	"github.com/marcus/slideover/pkg/ui/styleutil"
)

// View composites the overlay over background. content is rendered inside
// the container and shifted by the current slide offset; parts that slide
// past the screen edge are clipped. Returns background unchanged while
// closed.
//
// View also registers the ElementOverlay, ElementBackdrop and ElementContent
// hit regions, so mouse events resolve against what was drawn.
func (o *Overlay) View(background, content string) string {
	o.mouse.Clear()
	if o.disposed || !o.Visible() {
		return background
	}

	w, h := o.width, o.height
	if w <= 0 {
		w = lipgloss.Width(background)
	}
	if h <= 0 {
		h = lipgloss.Height(background)
	}
	if w <= 0 || h <= 0 {
		return background
	}

	style := o.layoutStyle(w, h)
	box := style.Render(content)
	o.measure(style, lipgloss.Width(box), lipgloss.Height(box))
	o.place(w, h)
	o.registerHits()

	screen := backdropLines(background, w, h, backdropLevel(o.anim.Value()))
	if !o.onScreen() {
		return strings.Join(screen, "\n")
	}
	for i, line := range strings.Split(box, "\n") {
		row := o.box.Y + i
		if row < 0 || row >= h {
			continue
		}
		screen[row] = splice(screen[row], line, o.box.X, w)
	}
	return strings.Join(screen, "\n")
}

// layoutStyle returns the container style for a w x h viewport with the
// custom style merged last. Custom margins are recorded as an offset and
// removed from the style: they are not drawn, so presses there land on the
// backdrop.
func (o *Overlay) layoutStyle(w, h int) lipgloss.Style {
	style := containerStyle(o.background, w, h)
	if o.contentStyle != nil {
		style = styleutil.Merge(style, *o.contentStyle)
	}
	if _, ok := styleutil.BorderBackground(style); !ok {
		style = style.BorderBackground(style.GetBackground())
	}
	o.offX, o.offY = style.GetMarginLeft(), style.GetMarginTop()
	return style.UnsetMargins()
}

// measure records the container size and where the content area starts
// inside it.
func (o *Overlay) measure(style lipgloss.Style, w, h int) {
	o.box.W, o.box.H = w, h
	o.frameX = style.GetBorderLeftSize() + style.GetPaddingLeft()
	o.frameY = style.GetBorderTopSize() + style.GetPaddingTop()
	o.inner.W = max(w-style.GetHorizontalFrameSize(), 0)
	o.inner.H = max(h-style.GetVerticalFrameSize(), 0)
}

// place positions the measured container for the current progress.
func (o *Overlay) place(w, h int) {
	mx, my := margins(w, h)
	dx, dy := Offset(o.direction, o.anim.Value(), w, h)
	o.box.X, o.box.Y = mx+o.offX+dx, my+o.offY+dy
	o.inner.X, o.inner.Y = o.box.X+o.frameX, o.box.Y+o.frameY
	o.vw, o.vh = w, h
}

// registerHits rebuilds the hit map for the current progress. Before the
// first render the container is assumed to have its computed size.
func (o *Overlay) registerHits() {
	o.mouse.Clear()
	w, h := o.width, o.height
	if w <= 0 || h <= 0 {
		w, h = o.vw, o.vh
	}
	if !o.Visible() || w <= 0 || h <= 0 {
		return
	}
	if o.box.W <= 0 {
		style := o.layoutStyle(w, h)
		empty := style.Render("")
		o.measure(style, lipgloss.Width(empty), lipgloss.Height(empty))
	}
	o.place(w, h)

	hm := o.mouse.HitMap
	hm.AddRect(ElementOverlay, 0, 0, w, h, nil)
	hm.AddRect(ElementBackdrop, 0, 0, w, h, nil)
	if c, ok := clip(o.box, w, h); ok && o.onScreen() {
		hm.AddRect(ElementContent, c.X, c.Y, c.W, c.H, nil)
	}
}

// onScreen reports whether any of the container is drawn. Below Epsilon it
// is held off-screen whatever its size or margins.
func (o *Overlay) onScreen() bool {
	return o.anim.Value() >= Epsilon
}

// clip intersects r with the w x h screen.
func clip(r mouse.Rect, w, h int) (mouse.Rect, bool) {
	x0, y0 := max(r.X, 0), max(r.Y, 0)
	x1, y1 := min(r.X+r.W, w), min(r.Y+r.H, h)
	if x1 <= x0 || y1 <= y0 {
		return mouse.Rect{}, false
	}
	return mouse.Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}, true
}

// Backdrop dimming levels, from untouched to fully dimmed.
const (
	backdropClear = iota
	backdropFading
	backdropDim
)

// backdropLevel steps the backdrop with slide progress so it fades in while
// opening and out while closing.
func backdropLevel(p float64) int {
	switch {
	case !(p >= Epsilon):
		return backdropClear
	case p < 0.5:
		return backdropFading
	default:
		return backdropDim
	}
}

// backdropLines returns exactly h lines of width w built from background.
// Above backdropClear the lines are reduced to plain text and dimmed.
func backdropLines(background string, w, h, level int) []string {
	src := strings.Split(background, "\n")
	lines := make([]string, h)
	for i := range lines {
		var line string
		if i < len(src) {
			line = src[i]
			if level != backdropClear {
				line = ansi.Strip(line)
			}
			line = ansi.Truncate(line, w, "")
		}
		if pad := w - ansi.StringWidth(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		switch level {
		case backdropFading:
			line = BackdropFading.Render(line)
		case backdropDim:
			line = Backdrop.Render(line)
		}
		lines[i] = line
	}
	return lines
}

// splice draws fg over bg starting at column x, clipping fg to [0, width).
func splice(bg, fg string, x, width int) string {
	fgWidth := ansi.StringWidth(fg)
	if x >= width || x+fgWidth <= 0 {
		return bg
	}
	if x < 0 {
		fg = ansi.Cut(fg, -x, fgWidth)
		fgWidth += x
		x = 0
	}
	if x+fgWidth > width {
		fg = ansi.Truncate(fg, width-x, "")
		fgWidth = width - x
	}

	left := ansi.Truncate(bg, x, "")
	right := ansi.Cut(bg, x+fgWidth, width)
	return left + fg + right
}
