package overlay

import "fmt"

// State is the overlay's place in its open/close cycle.
type State int

const (
	// Closed: not mounted, progress 0.
	Closed State = iota
	// Opening: mounted, progress running toward 1.
	Opening
	// Open: mounted, progress settled at 1.
	Open
	// Closing: mounted, progress running toward 0.
	Closing
)

func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case Opening:
		return "opening"
	case Open:
		return "open"
	case Closing:
		return "closing"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Mounted reports whether content is in the render tree in state s.
func (s State) Mounted() bool {
	return s != Closed
}

// Trigger is an event that can move the overlay between states.
type Trigger string

const (
	TriggerOpen   Trigger = "open"
	TriggerClose  Trigger = "close"
	TriggerSettle Trigger = "settle" // the running slide finished
)

// Transition is one edge of the state machine.
type Transition struct {
	From    State
	To      State
	Trigger Trigger
}

// AllTransitions returns all valid state transitions.
// Any (state, trigger) pair not listed is a no-op.
func AllTransitions() []*Transition {
	return []*Transition{
		// Opening
		{From: Closed, To: Opening, Trigger: TriggerOpen},
		{From: Closing, To: Opening, Trigger: TriggerOpen},
		{From: Opening, To: Open, Trigger: TriggerSettle},

		// Closing
		{From: Open, To: Closing, Trigger: TriggerClose},
		{From: Opening, To: Closing, Trigger: TriggerClose},
		{From: Closing, To: Closed, Trigger: TriggerSettle},
	}
}

// Next returns the state reached from s on trigger, and false if the
// trigger does not apply in s.
func Next(s State, trigger Trigger) (State, bool) {
	for _, t := range AllTransitions() {
		if t.From == s && t.Trigger == trigger {
			return t.To, true
		}
	}
	return s, false
}

// TransitionName returns a human-readable name for the transition
func TransitionName(from, to State) string {
	switch {
	case from == Closed && to == Opening:
		return "open"
	case from == Closing && to == Opening:
		return "reopen"
	case from == Opening && to == Closing:
		return "interrupt"
	case to == Closing:
		return "close"
	case to == Open || to == Closed:
		return "settle"
	default:
		return from.String() + " → " + to.String()
	}
}
