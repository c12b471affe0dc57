// Package demo is an interactive bubbletea application showing the sliding
// overlay and the action button together.
package demo

import (
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/slideover/pkg/ui/button"
	"github.com/marcus/slideover/pkg/ui/mouse"
	"github.com/marcus/slideover/pkg/ui/overlay"
)

// Button ids used for hit regions.
const (
	OpenButtonID  = "demo.open"
	CloseButtonID = "demo.close"
)

// Row of the open button in the background view.
const openButtonRow = 2

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(button.Primary)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Options configures the demo.
type Options struct {
	// Overlay options, usually from the config file and flags.
	Overlay []overlay.Option
	// GlamourStyle names the style used for the overlay body. Default "light".
	GlamourStyle string
	Logger       *slog.Logger
}

// Model is the demo application. The overlay is opened and closed only
// through its handle, the way application code would drive it.
type Model struct {
	ov     *overlay.Overlay
	handle *overlay.Handle

	openBtn  button.Button
	closeBtn button.Button

	bg      *mouse.Handler // background regions, screen coordinates
	content *mouse.HitMap  // overlay content regions, content coordinates

	glamourStyle string
	body         string
	bodyWidth    int

	width, height int
	status        string
	presses       int
	logger        *slog.Logger
	quitting      bool
}

// New creates the demo model. It fails if the overlay options are invalid.
func New(opts Options) (*Model, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	ovOpts := append([]overlay.Option{overlay.WithLogger(logger)}, opts.Overlay...)
	ov, err := overlay.New(ovOpts...)
	if err != nil {
		return nil, fmt.Errorf("create overlay: %w", err)
	}

	m := &Model{
		ov:           ov,
		handle:       ov.Handle(),
		bg:           mouse.NewHandler(),
		content:      mouse.NewHitMap(),
		glamourStyle: opts.GlamourStyle,
		logger:       logger,
		status:       "closed",
	}
	if m.glamourStyle == "" {
		m.glamourStyle = "light"
	}

	handle := m.handle
	m.openBtn = button.New(OpenButtonID, "Open overlay", func() {
		m.presses++
		handle.Open()
	})
	m.closeBtn = button.New(CloseButtonID, "Close", func() {
		m.presses++
		handle.Close()
	})
	return m, nil
}

// Overlay returns the overlay driven by the demo.
func (m *Model) Overlay() *overlay.Overlay { return m.ov }

// Presses counts forwarded button presses.
func (m *Model) Presses() int { return m.presses }

// CloseButton returns the button rendered inside the overlay.
func (m *Model) CloseButton() button.Button { return m.closeBtn }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Every path ends by asking the overlay for its
// next frame, since any handler may have opened or closed it.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		cmds = append(cmds, m.ov.Update(msg))

	case tea.KeyMsg:
		if cmd := m.handleKey(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case tea.MouseMsg:
		m.handleMouse(msg)

	case overlay.FrameMsg:
		cmds = append(cmds, m.ov.Update(msg))

	default:
		var cmd tea.Cmd
		m.closeBtn, cmd = m.closeBtn.Update(msg)
		cmds = append(cmds, cmd)
	}

	m.status = m.ov.State().String()
	cmds = append(cmds, m.ov.Frame())
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		m.ov.Dispose()
		return tea.Quit
	}

	if !m.ov.Visible() {
		switch msg.String() {
		case "o":
			m.handle.Open()
		case "enter", " ":
			m.openBtn.HandleKey(msg)
		}
		return nil
	}

	switch msg.String() {
	case "esc":
		return m.ov.Update(msg)
	case "c":
		m.handle.Close()
	case "enter", " ":
		m.closeBtn.HandleKey(msg)
	case "l":
		m.closeBtn = m.closeBtn.WithLoading(!m.closeBtn.Loading)
		m.logger.Debug("close button loading", "loading", m.closeBtn.Loading)
		return m.closeBtn.Tick()
	case "d":
		m.closeBtn = m.closeBtn.WithDisabled(!m.closeBtn.Disabled)
		m.logger.Debug("close button disabled", "disabled", m.closeBtn.Disabled)
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if m.ov.Visible() {
		hit := m.ov.HandleMouse(msg)
		m.openBtn = m.openBtn.WithHovered(false)
		if hit.Region != overlay.ElementContent {
			m.closeBtn = m.closeBtn.WithHovered(false)
			return
		}
		region := m.content.Test(hit.X, hit.Y)
		m.closeBtn = m.closeBtn.WithHovered(region != nil && region.ID == CloseButtonID)
		if hit.Action == mouse.ActionClick {
			m.closeBtn.HandleMouse(mouse.Action{Type: mouse.ActionClick, Region: region, X: hit.X, Y: hit.Y})
		}
		return
	}

	action := m.bg.HandleMouse(msg)
	m.openBtn = m.openBtn.WithHovered(m.bg.HoverID() == OpenButtonID)
	m.openBtn.HandleMouse(action)
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	background := m.backgroundView()
	if !m.ov.Visible() {
		return background
	}
	return m.ov.View(background, m.contentView())
}

// backgroundView renders the screen under the overlay and registers the
// open button's region.
func (m *Model) backgroundView() string {
	m.bg.Clear()

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("slideover demo"))
	sb.WriteString("\n\n")
	sb.WriteString("  " + m.openBtn.View())
	m.openBtn.Register(m.bg.HitMap, 2, openButtonRow)
	sb.WriteString("\n\n")
	sb.WriteString(statusStyle.Render(fmt.Sprintf("overlay: %s  direction: %s  presses: %d",
		m.status, m.ov.Direction(), m.presses)))
	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render("o/enter: open  q: quit"))

	if m.width <= 0 || m.height <= 0 {
		return sb.String()
	}
	return lipgloss.NewStyle().Width(m.width).Height(m.height).MaxHeight(m.height).Render(sb.String())
}

// contentView renders the overlay body and registers the close button's
// region relative to the content's top-left cell.
func (m *Model) contentView() string {
	m.content.Clear()

	width := max(m.width-16, 20)
	if m.body == "" || m.bodyWidth != width {
		m.body = renderMarkdown(Body, m.glamourStyle, width)
		m.bodyWidth = width
	}

	row := lipgloss.Height(m.body) + 1
	m.closeBtn.Register(m.content, 0, row)
	return m.body + "\n\n" + m.closeBtn.View()
}
