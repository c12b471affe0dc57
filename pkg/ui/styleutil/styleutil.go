// Package styleutil merges lipgloss styles so that a caller's custom style
// always has the last word.
package styleutil

import (
	"reflect"

	"github.com/charmbracelet/lipgloss"
)

// Merge applies custom over base. Every property custom sets wins, including
// padding or margins explicitly set to zero. lipgloss.Style.Inherit skips
// padding and margins, so base values are carried over per side when custom
// leaves that side unset.
func Merge(base, custom lipgloss.Style) lipgloss.Style {
	merged := custom.Inherit(base)

	if !Sets(custom, lipgloss.Style.UnsetPaddingTop) {
		merged = merged.PaddingTop(base.GetPaddingTop())
	}
	if !Sets(custom, lipgloss.Style.UnsetPaddingRight) {
		merged = merged.PaddingRight(base.GetPaddingRight())
	}
	if !Sets(custom, lipgloss.Style.UnsetPaddingBottom) {
		merged = merged.PaddingBottom(base.GetPaddingBottom())
	}
	if !Sets(custom, lipgloss.Style.UnsetPaddingLeft) {
		merged = merged.PaddingLeft(base.GetPaddingLeft())
	}

	if !Sets(custom, lipgloss.Style.UnsetMarginTop) {
		merged = merged.MarginTop(base.GetMarginTop())
	}
	if !Sets(custom, lipgloss.Style.UnsetMarginRight) {
		merged = merged.MarginRight(base.GetMarginRight())
	}
	if !Sets(custom, lipgloss.Style.UnsetMarginBottom) {
		merged = merged.MarginBottom(base.GetMarginBottom())
	}
	if !Sets(custom, lipgloss.Style.UnsetMarginLeft) {
		merged = merged.MarginLeft(base.GetMarginLeft())
	}
	return merged
}

// Sets reports whether s sets the property that unset clears, even when the
// value it sets is the zero value.
func Sets(s lipgloss.Style, unset func(lipgloss.Style) lipgloss.Style) bool {
	// Func values never compare equal, so drop any transform first.
	s = s.Transform(nil)
	return !reflect.DeepEqual(s, unset(s))
}

// BorderBackground reports the border background s sets, if any.
func BorderBackground(s lipgloss.Style) (lipgloss.TerminalColor, bool) {
	c := s.GetBorderTopBackground()
	if _, unset := c.(lipgloss.NoColor); unset {
		return nil, false
	}
	return c, true
}
