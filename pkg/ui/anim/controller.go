package anim

import (
	"fmt"
	"time"
)

// Status represents where a Controller is in its run.
//
//	               AnimateTo(1)
//	Dismissed ──────────────────► Completed
//	    ▲                              │
//	    │          AnimateTo(0)        │
//	    └──────────────────────────────┘
//
// While running, status is Forward or Reverse.
type Status int

const (
	// Dismissed means the controller is stopped at 0.
	Dismissed Status = iota
	// Forward means the controller is running toward a higher value.
	Forward
	// Reverse means the controller is running toward a lower value.
	Reverse
	// Completed means the controller is stopped at 1.
	Completed
)

func (s Status) String() string {
	switch s {
	case Dismissed:
		return "dismissed"
	case Forward:
		return "forward"
	case Reverse:
		return "reverse"
	case Completed:
		return "completed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Controller drives a value in [0, 1] toward a target over a duration.
//
// The controller never runs on its own: the owner feeds it frame times via
// Step. Every AnimateTo starts a new generation; the previous run is
// superseded from its current value and its completion callback is dropped.
// Always call Dispose when the owner is torn down.
type Controller struct {
	// Curve transforms linear progress. Nil means Linear.
	Curve Curve

	clock    Clock
	value    float64
	from     float64
	target   float64
	start    time.Time
	duration time.Duration
	status   Status
	running  bool
	gen      uint64
	onDone   func()
	disposed bool
}

// NewController creates a controller at 0 using the given clock.
// A nil clock means the system clock.
func NewController(clock Clock) *Controller {
	if clock == nil {
		clock = SystemClock()
	}
	return &Controller{
		Curve:  EaseInOut,
		clock:  clock,
		status: Dismissed,
	}
}

// AnimateTo starts a run from the current value toward target lasting d.
// onDone is called once, from Step, when the run finishes; it is never
// called if the run is superseded, stopped or disposed first.
// Returns the generation of the new run.
func (c *Controller) AnimateTo(target float64, d time.Duration, onDone func()) uint64 {
	if c.disposed {
		return c.gen
	}
	now := c.clock.Now()
	if c.running {
		c.sample(now)
	}

	c.gen++
	c.from = c.value
	c.target = clamp01(target)
	c.start = now
	c.duration = d
	c.onDone = onDone
	c.running = true
	if c.target >= c.from && c.target > 0 {
		c.status = Forward
	} else {
		c.status = Reverse
	}
	return c.gen
}

// Step advances the run to now. It returns true while the run is still in
// progress and false once it has finished (or if nothing is running).
func (c *Controller) Step(now time.Time) bool {
	if !c.running || c.disposed {
		return false
	}
	if !c.sample(now) {
		return true
	}

	c.value = c.target
	c.running = false
	if c.value <= 0 {
		c.status = Dismissed
	} else {
		c.status = Completed
	}
	done := c.onDone
	c.onDone = nil
	if done != nil {
		done()
	}
	return false
}

// sample updates value for now and reports whether the run's duration has
// fully elapsed.
func (c *Controller) sample(now time.Time) bool {
	elapsed := now.Sub(c.start)
	if c.duration <= 0 || elapsed >= c.duration {
		c.value = c.target
		return true
	}
	if elapsed < 0 {
		elapsed = 0
	}

	progress := float64(elapsed) / float64(c.duration)
	eased := progress
	if c.Curve != nil {
		eased = c.Curve(progress)
	}
	c.value = clamp01(c.from + (c.target-c.from)*eased)
	return false
}

// Stop halts the current run at its current value without completing it.
func (c *Controller) Stop() {
	if !c.running {
		return
	}
	c.running = false
	c.onDone = nil
	c.gen++
}

// Dispose stops the controller permanently. Later calls are no-ops.
func (c *Controller) Dispose() {
	c.Stop()
	c.disposed = true
}

// Value returns the value as of the last Step.
func (c *Controller) Value() float64 { return c.value }

// Target returns the target of the current or last run.
func (c *Controller) Target() float64 { return c.target }

// Status returns the current status.
func (c *Controller) Status() Status { return c.status }

// IsAnimating reports whether a run is in progress.
func (c *Controller) IsAnimating() bool { return c.running }

// Generation identifies the current run. It changes on every AnimateTo and Stop.
func (c *Controller) Generation() uint64 { return c.gen }

// Disposed reports whether Dispose has been called.
func (c *Controller) Disposed() bool { return c.disposed }

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
