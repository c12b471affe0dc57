package button

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/marcus/slideover/pkg/ui/mouse"
)

func TestButtonRendersContent(t *testing.T) {
	b := New("open", "Test Button", func() {})
	if !strings.Contains(ansi.Strip(b.View()), "Test Button") {
		t.Errorf("View() = %q, want content", b.View())
	}
}

func TestButtonActivate(t *testing.T) {
	tests := []struct {
		name        string
		disabled    bool
		loading     bool
		wantCalls   int
		interactive bool
	}{
		{"enabled", false, false, 1, true},
		{"disabled", true, false, 0, false},
		{"loading", false, true, 0, false},
		{"disabled and loading", true, true, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			b := New("btn", "Test Button", func() { calls++ }).
				WithDisabled(tt.disabled).
				WithLoading(tt.loading)

			if b.Interactive() != tt.interactive {
				t.Errorf("Interactive() = %v, want %v", b.Interactive(), tt.interactive)
			}
			if got := b.Activate(); got != tt.interactive {
				t.Errorf("Activate() = %v, want %v", got, tt.interactive)
			}
			if calls != tt.wantCalls {
				t.Errorf("OnActivate called %d times, want %d", calls, tt.wantCalls)
			}
		})
	}
}

func TestButtonActivateOncePerPress(t *testing.T) {
	calls := 0
	b := New("btn", "Test Button", func() { calls++ })
	for range 3 {
		b.Activate()
	}
	if calls != 3 {
		t.Errorf("OnActivate called %d times for 3 presses", calls)
	}
}

func TestButtonLoadingShowsSpinner(t *testing.T) {
	calls := 0
	b := New("btn", "Test Button", func() { calls++ }).WithLoading(true)

	view := ansi.Strip(b.View())
	if strings.Contains(view, "Test Button") {
		t.Errorf("loading view should not contain content: %q", view)
	}
	if !strings.Contains(view, ansi.Strip(b.Spinner.View())) {
		t.Errorf("loading view should contain the spinner: %q", view)
	}

	b.Activate()
	if calls != 0 {
		t.Errorf("loading button forwarded %d presses", calls)
	}
}

func TestButtonLoadingOverridesDisabled(t *testing.T) {
	b := New("btn", "Test Button", nil).WithDisabled(true).WithLoading(true)
	if strings.Contains(ansi.Strip(b.View()), "Test Button") {
		t.Error("loading should hide content even when disabled")
	}
}

func TestButtonDisabledRendersContent(t *testing.T) {
	b := New("btn", "Test Button", nil).WithDisabled(true)
	if !strings.Contains(ansi.Strip(b.View()), "Test Button") {
		t.Error("disabled button should still render its content")
	}
}

func TestButtonZeroValue(t *testing.T) {
	var b Button
	if !b.Activate() {
		t.Error("zero button is interactive; nil OnActivate should be a no-op")
	}

	b.Loading = true
	if strings.Contains(b.View(), "(error)") {
		t.Error("zero button should fall back to the default spinner")
	}
}

func TestButtonHandleKey(t *testing.T) {
	calls := 0
	b := New("btn", "Go", func() { calls++ })

	b.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	b.HandleKey(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	b.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	if calls != 2 {
		t.Errorf("OnActivate called %d times, want 2", calls)
	}

	b.WithDisabled(true).HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if calls != 2 {
		t.Error("disabled button activated by key")
	}
}

func TestButtonHandleMouse(t *testing.T) {
	calls := 0
	b := New("btn", "Go", func() { calls++ })

	h := mouse.NewHandler()
	b.Register(h.HitMap, 5, 3)

	region := h.HitMap.Find("btn")
	if region == nil {
		t.Fatal("Register did not add a region")
	}
	if region.Rect.W != lipgloss.Width(b.View()) {
		t.Errorf("region width = %d, want %d", region.Rect.W, lipgloss.Width(b.View()))
	}

	if !b.HandleMouse(h.HandleClick(6, 3)) {
		t.Error("click on the button should activate it")
	}
	if b.HandleMouse(h.HandleClick(0, 0)) {
		t.Error("click outside the button should not activate it")
	}
	if b.WithLoading(true).HandleMouse(h.HandleClick(6, 3)) {
		t.Error("loading button should ignore clicks")
	}
	if calls != 1 {
		t.Errorf("OnActivate called %d times, want 1", calls)
	}
}

func TestButtonSpinnerTicks(t *testing.T) {
	b := New("btn", "Go", nil)
	if b.Tick() != nil {
		t.Error("Tick() should be nil when not loading")
	}

	b = b.WithLoading(true)
	if b.Tick() == nil {
		t.Fatal("Tick() should start the spinner when loading")
	}

	tick := spinner.TickMsg{ID: b.Spinner.ID()}
	if _, cmd := b.Update(tick); cmd == nil {
		t.Error("loading button should keep the spinner ticking")
	}
	if _, cmd := b.WithLoading(false).Update(tick); cmd != nil {
		t.Error("idle button should stop the spinner")
	}
}

func TestButtonCustomStyleWins(t *testing.T) {
	b := New("btn", "Go", nil).WithStyle(lipgloss.NewStyle().Width(20))
	if w := lipgloss.Width(b.View()); w != 20 {
		t.Errorf("width = %d, want 20 from the custom style", w)
	}
}

func TestButtonCustomStyleClearsPadding(t *testing.T) {
	b := New("btn", "Go", nil).WithStyle(lipgloss.NewStyle().Padding(0))
	if w := lipgloss.Width(b.View()); w != 2 {
		t.Errorf("width = %d, want 2 with padding cleared by the custom style", w)
	}

	b = New("btn", "Go", nil)
	if w := lipgloss.Width(b.View()); w != 6 {
		t.Errorf("width = %d, want 6 with the default padding", w)
	}
}
