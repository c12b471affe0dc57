package mouse

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestRectContains(t *testing.T) {
	// A settled container on an 80x24 screen with 4x2 cell margins.
	content := Rect{X: 4, Y: 2, W: 72, H: 20}

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"border corner", 4, 2, true},
		{"last column", 75, 10, true},
		{"last row", 10, 21, true},
		{"left margin", 3, 10, false},
		{"right margin", 76, 10, false},
		{"top margin", 10, 1, false},
		{"bottom margin", 10, 22, false},
		{"off screen", -1, -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := content.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}

	if !(Rect{W: 0, H: 5}).Empty() || (Rect{W: 1, H: 1}).Empty() {
		t.Error("Empty() should be true only for rects without cells")
	}
}

func TestHitMapLaterRegionsWin(t *testing.T) {
	hm := NewHitMap()

	// Backdrop covers the screen, content sits on top of it.
	hm.AddRect("backdrop", 0, 0, 80, 24, nil)
	hm.AddRect("content", 4, 2, 72, 20, nil)

	if r := hm.Test(10, 10); r == nil || r.ID != "content" {
		t.Errorf("expected hit on content, got %v", r)
	}
	if r := hm.Test(1, 1); r == nil || r.ID != "backdrop" {
		t.Errorf("expected hit on backdrop, got %v", r)
	}
	if r := hm.Test(100, 1); r != nil {
		t.Errorf("expected no hit outside the screen, got %v", r)
	}
}

func TestHitMapIgnoresEmptyRects(t *testing.T) {
	hm := NewHitMap()
	hm.AddRect("zero-width", 0, 0, 0, 10, nil)
	hm.AddRect("negative", 0, 0, 5, -1, nil)

	if n := len(hm.Regions()); n != 0 {
		t.Errorf("expected empty rects to be dropped, got %d regions", n)
	}
}

func TestHitMapFindAndClear(t *testing.T) {
	hm := NewHitMap()
	hm.AddRect("open", 2, 2, 10, 1, "data")

	r := hm.Find("open")
	if r == nil || r.Data != "data" {
		t.Fatalf("Find(open) = %v", r)
	}
	if hm.Find("missing") != nil {
		t.Error("Find(missing) should be nil")
	}

	hm.Clear()
	if len(hm.Regions()) != 0 {
		t.Errorf("expected 0 regions after clear, got %d", len(hm.Regions()))
	}
}

func TestHandleMouseActions(t *testing.T) {
	h := NewHandler()
	h.HitMap.AddRect("button", 10, 10, 30, 10, nil)

	action := h.HandleMouse(tea.MouseMsg{
		X:      20,
		Y:      15,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	if action.Type != ActionClick {
		t.Errorf("expected ActionClick, got %v", action.Type)
	}
	if action.Region == nil || action.Region.ID != "button" {
		t.Errorf("expected region 'button', got %v", action.Region)
	}

	action = h.HandleMouse(tea.MouseMsg{
		X:      25,
		Y:      15,
		Action: tea.MouseActionMotion,
	})
	if action.Type != ActionHover {
		t.Errorf("expected ActionHover, got %v", action.Type)
	}
	if h.HoverID() != "button" {
		t.Errorf("HoverID() = %q, want button", h.HoverID())
	}

	h.HandleMouse(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionMotion})
	if h.HoverID() != "" {
		t.Errorf("HoverID() = %q after leaving, want empty", h.HoverID())
	}

	action = h.HandleMouse(tea.MouseMsg{
		X:      20,
		Y:      15,
		Action: tea.MouseActionRelease,
		Button: tea.MouseButtonLeft,
	})
	if action.Type != ActionNone {
		t.Errorf("expected ActionNone for release, got %v", action.Type)
	}
}

func TestHandlerClear(t *testing.T) {
	h := NewHandler()
	h.HitMap.AddRect("button", 10, 10, 30, 10, nil)

	h.Clear()

	if len(h.HitMap.Regions()) != 0 {
		t.Errorf("expected 0 regions after Clear, got %d", len(h.HitMap.Regions()))
	}
	if r := h.HandleClick(20, 15).Region; r != nil {
		t.Errorf("expected no region after Clear, got %v", r)
	}
}
