package overlay

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/sahilm/fuzzy"
)

// Direction is the edge the content slides in from, named after the motion.
type Direction string

const (
	Up    Direction = "up"
	Top   Direction = "top" // alias of Up
	Down  Direction = "down"
	Left  Direction = "left"
	Right Direction = "right"
)

// Epsilon is the progress below which content is held fully off-screen.
const Epsilon = 0.01

// ErrUnknownDirection is matched by every *DirectionError.
var ErrUnknownDirection = errors.New("unknown direction")

// DirectionError reports a direction name that is not one of AllDirections.
type DirectionError struct {
	Value       string
	Suggestions []string
}

func (e *DirectionError) Error() string {
	if len(e.Suggestions) > 0 {
		return fmt.Sprintf("unknown direction %q (did you mean %s?)", e.Value, strings.Join(e.Suggestions, " or "))
	}
	return fmt.Sprintf("unknown direction %q (want one of %s)", e.Value, strings.Join(directionNames(), ", "))
}

func (e *DirectionError) Is(target error) bool {
	return target == ErrUnknownDirection
}

// AllDirections returns every accepted direction.
func AllDirections() []Direction {
	return []Direction{Up, Top, Down, Left, Right}
}

func directionNames() []string {
	dirs := AllDirections()
	names := make([]string, len(dirs))
	for i, d := range dirs {
		names[i] = string(d)
	}
	return names
}

// ParseDirection validates s. Unknown values are rejected with a
// *DirectionError; there is no fallback direction.
func ParseDirection(s string) (Direction, error) {
	d := Direction(strings.ToLower(strings.TrimSpace(s)))
	if d.Valid() {
		return d, nil
	}

	var suggestions []string
	if s != "" {
		for _, match := range fuzzy.Find(strings.ToLower(s), directionNames()) {
			suggestions = append(suggestions, match.Str)
		}
	}
	return "", &DirectionError{Value: s, Suggestions: suggestions}
}

// Valid reports whether d is one of AllDirections.
func (d Direction) Valid() bool {
	switch d {
	case Up, Top, Down, Left, Right:
		return true
	}
	return false
}

// Vertical reports whether d slides along the y axis.
func (d Direction) Vertical() bool {
	switch d {
	case Up, Top, Down:
		return true
	}
	return false
}

// Offset returns the translation of the content container for progress p
// on a width x height viewport. Progress 1 is (0, 0); progress below
// Epsilon is a full viewport away on the direction's axis.
func Offset(d Direction, p float64, width, height int) (dx, dy int) {
	// remaining is the fraction of the extent still off-screen.
	var remaining float64
	switch {
	case !(p >= Epsilon): // also catches NaN
		remaining = 1
	case p >= 1:
		remaining = 0
	default:
		remaining = 1 - (p-Epsilon)/(1-Epsilon)
	}

	switch d {
	case Up, Top:
		dy = int(math.Round(remaining * float64(height)))
	case Down:
		dy = -int(math.Round(remaining * float64(height)))
	case Left:
		dx = int(math.Round(remaining * float64(width)))
	case Right:
		dx = -int(math.Round(remaining * float64(width)))
	}
	return dx, dy
}

// Durations holds the slide times for one direction.
type Durations struct {
	Open  time.Duration
	Close time.Duration
}

// DurationTable maps each direction to its slide times.
type DurationTable map[Direction]Durations

// DefaultDurations reveals vertically slower than horizontally.
var DefaultDurations = DurationTable{
	Up:    {Open: 500 * time.Millisecond, Close: 360 * time.Millisecond},
	Top:   {Open: 500 * time.Millisecond, Close: 360 * time.Millisecond},
	Down:  {Open: 500 * time.Millisecond, Close: 360 * time.Millisecond},
	Left:  {Open: 300 * time.Millisecond, Close: 200 * time.Millisecond},
	Right: {Open: 300 * time.Millisecond, Close: 200 * time.Millisecond},
}

// Validate checks that every direction has positive open and close times.
func (t DurationTable) Validate() error {
	for _, d := range AllDirections() {
		entry, ok := t[d]
		if !ok {
			return fmt.Errorf("duration table: missing entry for %q", d)
		}
		if entry.Open <= 0 || entry.Close <= 0 {
			return fmt.Errorf("duration table: %q needs positive open and close durations, got %v/%v", d, entry.Open, entry.Close)
		}
	}
	return nil
}

// Merge returns a copy of t with the entries of overrides applied on top.
// Zero fields in an override keep the value from t.
func (t DurationTable) Merge(overrides DurationTable) DurationTable {
	out := make(DurationTable, len(t))
	for d, entry := range t {
		out[d] = entry
	}
	for d, entry := range overrides {
		cur := out[d]
		if entry.Open > 0 {
			cur.Open = entry.Open
		}
		if entry.Close > 0 {
			cur.Close = entry.Close
		}
		out[d] = cur
	}
	return out
}
