package overlay

import (
	"log/slog"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/slideover/pkg/ui/anim"
	"github.com/marcus/slideover/pkg/ui/mouse"
)

// Element ids registered as hit regions on every render.
const (
	ElementOverlay  = "overlay"
	ElementBackdrop = "overlay.backdrop"
	ElementContent  = "overlay.content"
)

// DefaultFrameInterval is the time between animation frames (~60fps).
const DefaultFrameInterval = time.Second / 60

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// FrameMsg advances the slide animation of the overlay with the matching id.
// Frames scheduled for a superseded animation are dropped.
type FrameMsg struct {
	ID   int
	Time time.Time
	gen  uint64
}

// Option configures an Overlay.
type Option func(*Overlay)

// WithCloseOutside sets whether a click on the backdrop closes the overlay.
func WithCloseOutside(close bool) Option {
	return func(o *Overlay) {
		o.closeOutside = close
	}
}

// WithBackground sets the content container background.
func WithBackground(c lipgloss.TerminalColor) Option {
	return func(o *Overlay) {
		if c != nil {
			o.background = c
		}
	}
}

// WithDirection sets the slide direction. Unknown names make New fail.
func WithDirection(d string) Option {
	return func(o *Overlay) {
		o.rawDirection = d
	}
}

// WithContentStyle merges s over the computed container style.
func WithContentStyle(s lipgloss.Style) Option {
	return func(o *Overlay) {
		o.contentStyle = &s
	}
}

// WithDurations overrides entries of DefaultDurations.
func WithDurations(t DurationTable) Option {
	return func(o *Overlay) {
		o.durations = o.durations.Merge(t)
	}
}

// WithClock sets the animation time source.
func WithClock(c anim.Clock) Option {
	return func(o *Overlay) {
		if c != nil {
			o.clock = c
		}
	}
}

// WithCurve sets the easing curve of the slide.
func WithCurve(c anim.Curve) Option {
	return func(o *Overlay) {
		o.curve = c
	}
}

// WithLogger sets the logger used for state transitions.
func WithLogger(l *slog.Logger) Option {
	return func(o *Overlay) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithFrameInterval sets the delay between animation frames.
func WithFrameInterval(d time.Duration) Option {
	return func(o *Overlay) {
		if d > 0 {
			o.frameInterval = d
		}
	}
}

// Overlay is a sliding modal. All methods must be called from the
// bubbletea event loop.
type Overlay struct {
	id            int
	closeOutside  bool
	background    lipgloss.TerminalColor
	rawDirection  string
	direction     Direction
	contentStyle  *lipgloss.Style
	durations     DurationTable
	clock         anim.Clock
	curve         anim.Curve
	frameInterval time.Duration
	logger        *slog.Logger

	state    State
	anim     *anim.Controller
	pending  uint64 // generation with a frame in flight
	disposed bool
	handle   *Handle

	width, height  int // from tea.WindowSizeMsg
	vw, vh         int // viewport of the last layout
	mouse          *mouse.Handler
	box            mouse.Rect // container as last laid out, unclipped
	inner          mouse.Rect // content area inside border and padding
	frameX, frameY int        // offset of inner within box
	offX, offY     int        // custom style margins, applied as an offset
}

// New creates a closed overlay. It fails only if the direction is unknown
// or the duration table is incomplete.
func New(opts ...Option) (*Overlay, error) {
	o := &Overlay{
		id:            nextID(),
		closeOutside:  true,
		background:    DefaultBackground,
		rawDirection:  string(Up),
		durations:     DefaultDurations.Merge(nil),
		clock:         anim.SystemClock(),
		curve:         anim.EaseInOut,
		frameInterval: DefaultFrameInterval,
		logger:        slog.New(slog.DiscardHandler),
		state:         Closed,
		mouse:         mouse.NewHandler(),
	}
	for _, opt := range opts {
		opt(o)
	}

	dir, err := ParseDirection(o.rawDirection)
	if err != nil {
		return nil, err
	}
	o.direction = dir
	if err := o.durations.Validate(); err != nil {
		return nil, err
	}

	o.anim = anim.NewController(o.clock)
	o.anim.Curve = o.curve
	o.handle = &Handle{o: o}
	return o, nil
}

// Handle returns the overlay's handle. The same pointer is returned for the
// overlay's whole lifetime.
func (o *Overlay) Handle() *Handle {
	return o.handle
}

// ID identifies the overlay in FrameMsg values.
func (o *Overlay) ID() int { return o.id }

// Direction returns the configured slide direction.
func (o *Overlay) Direction() Direction { return o.direction }

// CloseOutside reports whether backdrop clicks close the overlay.
func (o *Overlay) CloseOutside() bool { return o.closeOutside }

// State returns the current state.
func (o *Overlay) State() State { return o.state }

// Visible reports whether the content is mounted.
func (o *Overlay) Visible() bool { return o.state.Mounted() }

// Progress returns the slide progress in [0, 1] as of the last frame.
func (o *Overlay) Progress() float64 { return o.anim.Value() }

// Animating reports whether a slide is in progress.
func (o *Overlay) Animating() bool { return o.anim.IsAnimating() }

// Open mounts the content and slides it in. No-op while opening or open.
func (o *Overlay) Open() {
	if o.disposed || !o.fire(TriggerOpen) {
		return
	}
	o.slide(1, o.durations[o.direction].Open)
}

// Close slides the content out and unmounts it once the slide finishes.
// No-op while closing or closed.
func (o *Overlay) Close() {
	if o.disposed || !o.fire(TriggerClose) {
		return
	}
	o.slide(0, o.durations[o.direction].Close)
}

// Dispose tears the overlay down. Pending frames and completions become
// no-ops and the handle stops having any effect.
func (o *Overlay) Dispose() {
	if o.disposed {
		return
	}
	o.disposed = true
	o.anim.Dispose()
	o.logger.Debug("overlay disposed", "id", o.id, "state", o.state)
}

// fire applies trigger and reports whether it changed the state.
func (o *Overlay) fire(trigger Trigger) bool {
	next, ok := Next(o.state, trigger)
	if !ok {
		return false
	}
	o.logger.Debug("overlay transition",
		"id", o.id,
		"name", TransitionName(o.state, next),
		"from", o.state,
		"to", next,
		"direction", o.direction,
		"progress", o.anim.Value(),
	)
	o.state = next
	return true
}

// slide retargets the animation; the completion only settles the state if
// no later slide has replaced this one.
func (o *Overlay) slide(target float64, d time.Duration) {
	var gen uint64
	gen = o.anim.AnimateTo(target, d, func() {
		if o.disposed || gen != o.anim.Generation() {
			return
		}
		o.fire(TriggerSettle)
	})
	o.logger.Debug("overlay slide",
		"id", o.id,
		"gen", gen,
		"from", o.anim.Value(),
		"target", o.anim.Target(),
		"duration", d,
	)
}

// Frame returns a command delivering the next animation frame, or nil if
// nothing is animating or a frame for the current slide is already pending.
// Call it after anything that may have opened or closed the overlay.
func (o *Overlay) Frame() tea.Cmd {
	if o.disposed || !o.anim.IsAnimating() {
		return nil
	}
	gen := o.anim.Generation()
	if o.pending == gen {
		return nil
	}
	o.pending = gen
	id := o.id
	return tea.Tick(o.frameInterval, func(t time.Time) tea.Msg {
		return FrameMsg{ID: id, Time: t, gen: gen}
	})
}

// Update handles frames, window size, the esc key and mouse events.
// The returned command schedules the next frame when needed.
func (o *Overlay) Update(msg tea.Msg) tea.Cmd {
	if o.disposed {
		return nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		o.width, o.height = msg.Width, msg.Height

	case FrameMsg:
		if msg.ID != o.id || msg.gen != o.pending || msg.gen != o.anim.Generation() {
			return nil
		}
		o.pending = 0
		o.anim.Step(o.clock.Now())

	case tea.KeyMsg:
		// esc is the terminal's back/dismiss signal.
		if msg.Type == tea.KeyEsc && o.Visible() {
			o.Close()
		}

	case tea.MouseMsg:
		o.HandleMouse(msg)
	}

	return o.Frame()
}

// Hit describes how the overlay resolved a mouse event.
type Hit struct {
	// Consumed is true while mounted: the event must not reach content
	// underneath the overlay.
	Consumed bool
	// Region is ElementBackdrop, ElementContent or "".
	Region string
	// Action is the resolved mouse action.
	Action mouse.ActionType
	// X and Y are relative to the content area when Region is ElementContent.
	X, Y int
}

// HandleMouse routes a mouse event. A left click on the backdrop closes the
// overlay when close-outside is enabled and is swallowed otherwise.
func (o *Overlay) HandleMouse(msg tea.MouseMsg) Hit {
	if o.disposed || !o.Visible() {
		return Hit{}
	}

	o.registerHits()
	action := o.mouse.HandleMouse(msg)
	hit := Hit{Consumed: true, Action: action.Type}
	if action.Region == nil {
		return hit
	}

	hit.Region = action.Region.ID
	switch action.Region.ID {
	case ElementBackdrop:
		if action.Type == mouse.ActionClick && o.closeOutside {
			o.Close()
		}
	case ElementContent:
		hit.X = msg.X - o.inner.X
		hit.Y = msg.Y - o.inner.Y
	}
	return hit
}

// Element returns the screen rectangle of a registered element as of the
// last render.
func (o *Overlay) Element(id string) (mouse.Rect, bool) {
	r := o.mouse.HitMap.Find(id)
	if r == nil {
		return mouse.Rect{}, false
	}
	return r.Rect, true
}

// ContentArea returns the screen rectangle inside the container's border
// and padding as of the last layout. Hit.X and Hit.Y are relative to its
// top-left cell.
func (o *Overlay) ContentArea() mouse.Rect {
	return o.inner
}

// Handle is the capability handed to code that opens and closes the overlay.
type Handle struct {
	o *Overlay
}

// Open opens the overlay. Safe to call in any state.
func (h *Handle) Open() {
	if h == nil || h.o == nil {
		return
	}
	h.o.Open()
}

// Close closes the overlay. Safe to call in any state.
func (h *Handle) Close() {
	if h == nil || h.o == nil {
		return
	}
	h.o.Close()
}
