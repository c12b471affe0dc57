// Package overlay provides a sliding modal overlay for bubbletea programs,
// driven imperatively through a stable handle.
//
// The overlay separates "mounted" from animation progress: Open mounts the
// content immediately (off-screen) and slides it in; Close slides it out and
// only unmounts once the slide has finished. Backdrop clicks (when enabled),
// the esc key and Handle.Close all take the same close path.
//
// # Quick Start
//
//	ov, err := overlay.New(
//	    overlay.WithDirection("right"),
//	    overlay.WithCloseOutside(false),
//	)
//	if err != nil {
//	    return err // unknown direction
//	}
//	handle := ov.Handle() // hand this to whoever decides when to open
//
//	// In Update():
//	cmd := ov.Update(msg)        // frames, esc, mouse, window size
//	handle.Open()                // from any callback on the event loop
//	return m, tea.Batch(cmd, ov.Frame())
//
//	// In View():
//	return ov.View(background, content)
//
// # Directions
//
//   - up, top - slide in from the bottom edge
//   - down    - slide in from the top edge
//   - left    - slide in from the right edge
//   - right   - slide in from the left edge
//
// # Options
//
//   - WithCloseOutside(b bool) - close on backdrop click (default: true)
//   - WithBackground(c) - content background (default: white)
//   - WithDirection(d string) - slide direction (default: up)
//   - WithContentStyle(s lipgloss.Style) - merged over the computed container style
//   - WithDurations(t DurationTable) - per-direction open/close durations
//   - WithClock(c anim.Clock), WithCurve(c anim.Curve) - animation timing
//   - WithLogger(l *slog.Logger) - debug logging of state transitions
package overlay
