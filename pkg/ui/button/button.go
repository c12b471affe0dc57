// Package button provides a pressable control with disabled and loading
// states for bubbletea views.
//
// A Button holds no interaction state of its own: what it renders and
// whether it forwards a press are pure functions of its fields. The control
// forwards presses only when it is neither disabled nor loading.
package button

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/slideover/pkg/ui/mouse"
	"github.com/marcus/slideover/pkg/ui/styleutil"
)

// Button is a pressable control.
//
// Example using struct literal:
//
//	button.Button{
//	    ID:         "submit",
//	    Content:    "Submit",
//	    OnActivate: handleSubmit,
//	    Disabled:   !isValid,
//	}
//
// Example using the New helper:
//
//	button.New("submit", "Submit", handleSubmit).
//	    WithLoading(saving).
//	    WithBackground(lipgloss.Color("160"))
type Button struct {
	// ID names the button's hit region.
	ID string
	// Content is rendered when not loading.
	Content string
	// OnActivate is called on a forwarded press. Nil is a no-op.
	OnActivate func()
	// Disabled suppresses presses and renders the content on grey.
	Disabled bool
	// Loading replaces the content with a spinner and suppresses presses.
	Loading bool
	// Background overrides the default background when set.
	Background lipgloss.TerminalColor
	// Style is merged last over the computed style.
	Style lipgloss.Style
	// Hovered selects the hover style while the button is interactive.
	Hovered bool
	// Spinner is the loading indicator.
	Spinner spinner.Model
}

// New creates an enabled button.
func New(id, content string, onActivate func()) Button {
	return Button{
		ID:         id,
		Content:    content,
		OnActivate: onActivate,
		Spinner:    newSpinner(),
	}
}

func newSpinner() spinner.Model {
	return spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(Loader),
	)
}

// WithDisabled returns a copy of the button with the specified disabled state.
func (b Button) WithDisabled(disabled bool) Button {
	b.Disabled = disabled
	return b
}

// WithLoading returns a copy of the button with the specified loading state.
func (b Button) WithLoading(loading bool) Button {
	b.Loading = loading
	return b
}

// WithBackground returns a copy of the button with the specified background.
func (b Button) WithBackground(c lipgloss.TerminalColor) Button {
	b.Background = c
	return b
}

// WithStyle returns a copy of the button with the specified custom style.
func (b Button) WithStyle(s lipgloss.Style) Button {
	b.Style = s
	return b
}

// WithHovered returns a copy of the button with the specified hover state.
func (b Button) WithHovered(hovered bool) Button {
	b.Hovered = hovered
	return b
}

// Interactive reports whether presses are forwarded.
func (b Button) Interactive() bool {
	return !b.Disabled && !b.Loading
}

// Activate forwards a press to OnActivate if the button is interactive and
// reports whether it did.
func (b Button) Activate() bool {
	if !b.Interactive() {
		return false
	}
	if b.OnActivate != nil {
		b.OnActivate()
	}
	return true
}

// HandleKey activates the button on enter or space.
func (b Button) HandleKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "enter", " ":
		return b.Activate()
	}
	return false
}

// HandleMouse activates the button when action is a click on its region.
func (b Button) HandleMouse(action mouse.Action) bool {
	if action.Type != mouse.ActionClick || action.Region == nil || action.Region.ID != b.ID {
		return false
	}
	return b.Activate()
}

// Register adds the button's region to hm for a render at (x, y).
func (b Button) Register(hm *mouse.HitMap, x, y int) {
	view := b.View()
	hm.AddRect(b.ID, x, y, lipgloss.Width(view), lipgloss.Height(view), nil)
}

// Update advances the loading spinner.
func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	tick, ok := msg.(spinner.TickMsg)
	if !ok || !b.Loading {
		return b, nil
	}
	var cmd tea.Cmd
	b.Spinner, cmd = b.Spinner.Update(tick)
	return b, cmd
}

// Tick starts the spinner. Returns nil when not loading.
func (b Button) Tick() tea.Cmd {
	if !b.Loading {
		return nil
	}
	return b.Spinner.Tick
}

// View renders the button.
func (b Button) View() string {
	style := Normal
	if b.Hovered && b.Interactive() {
		style = Hover
	}
	if b.Background != nil {
		style = style.Background(b.Background)
	}
	if b.Disabled {
		style = style.Background(DisabledBackground).Foreground(DisabledText)
	}
	style = styleutil.Merge(style, b.Style)

	if b.Loading {
		sp := b.Spinner
		if len(sp.Spinner.Frames) == 0 {
			sp = newSpinner()
		}
		return style.Render(sp.View())
	}
	return style.Render(b.Content)
}
