// Package mouse provides hit-region bookkeeping for bubbletea views.
//
// Views register regions while rendering (render-then-measure) and the
// Update side resolves mouse events against whatever was drawn last.
// Regions added later take priority, so overlays register after the
// content they cover.
package mouse

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Rect is a cell rectangle. Width and height are exclusive bounds.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Region is a named hit target.
type Region struct {
	ID   string
	Rect Rect
	Data any
}

// HitMap holds the regions of the last render.
type HitMap struct {
	regions []Region
}

// NewHitMap returns an empty hit map.
func NewHitMap() *HitMap {
	return &HitMap{}
}

// AddRect registers a region. Empty rectangles are ignored.
func (m *HitMap) AddRect(id string, x, y, w, h int, data any) {
	r := Rect{X: x, Y: y, W: w, H: h}
	if r.Empty() {
		return
	}
	m.regions = append(m.regions, Region{ID: id, Rect: r, Data: data})
}

// Test returns the highest priority region containing (x, y), or nil.
func (m *HitMap) Test(x, y int) *Region {
	for i := len(m.regions) - 1; i >= 0; i-- {
		if m.regions[i].Rect.Contains(x, y) {
			return &m.regions[i]
		}
	}
	return nil
}

// Find returns the region registered under id, or nil.
func (m *HitMap) Find(id string) *Region {
	for i := len(m.regions) - 1; i >= 0; i-- {
		if m.regions[i].ID == id {
			return &m.regions[i]
		}
	}
	return nil
}

// Clear removes all regions.
func (m *HitMap) Clear() {
	m.regions = m.regions[:0]
}

// Regions returns the registered regions in priority order (lowest first).
func (m *HitMap) Regions() []Region {
	return m.regions
}

// ActionType classifies a resolved mouse event.
type ActionType int

const (
	ActionNone ActionType = iota
	ActionClick
	ActionHover
)

func (a ActionType) String() string {
	switch a {
	case ActionClick:
		return "click"
	case ActionHover:
		return "hover"
	default:
		return "none"
	}
}

// Action is a mouse event resolved against the hit map.
type Action struct {
	Type   ActionType
	Region *Region
	X, Y   int
}

// Handler resolves bubbletea mouse messages against a hit map.
type Handler struct {
	HitMap *HitMap

	hoverID string
}

// NewHandler returns a handler with an empty hit map.
func NewHandler() *Handler {
	return &Handler{HitMap: NewHitMap()}
}

// HandleClick resolves a left click at (x, y).
func (h *Handler) HandleClick(x, y int) Action {
	return Action{Type: ActionClick, Region: h.HitMap.Test(x, y), X: x, Y: y}
}

// HandleMouse classifies msg. Left presses become clicks and motion becomes
// hover; everything else is ActionNone.
func (h *Handler) HandleMouse(msg tea.MouseMsg) Action {
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		return h.HandleClick(msg.X, msg.Y)
	case msg.Action == tea.MouseActionMotion:
		region := h.HitMap.Test(msg.X, msg.Y)
		h.hoverID = ""
		if region != nil {
			h.hoverID = region.ID
		}
		return Action{Type: ActionHover, Region: region, X: msg.X, Y: msg.Y}
	}
	return Action{Type: ActionNone, X: msg.X, Y: msg.Y}
}

// HoverID returns the id of the region under the pointer after the last
// motion event, or "".
func (h *Handler) HoverID() string {
	return h.hoverID
}

// Clear drops all regions. Call at the start of a render.
func (h *Handler) Clear() {
	h.HitMap.Clear()
}
