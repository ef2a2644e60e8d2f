package calendar

import (
	"time"

	"tableflip.dev/moodcal/pkg/window"
)

// Nav tracks the month being shown. Moving past the window's first or last
// month stays on that month.
type Nav struct {
	Window window.Window
	month  time.Time
}

// NewNav starts at the month containing start, clamped to w.
func NewNav(w window.Window, start time.Time) *Nav {
	return &Nav{Window: w, month: w.ClampMonth(start)}
}

// Month returns the first day of the current month.
func (n *Nav) Month() time.Time {
	return n.month
}

// Prev moves one month back.
func (n *Nav) Prev() time.Time {
	return n.Jump(n.month.AddDate(0, -1, 0))
}

// Next moves one month forward.
func (n *Nav) Next() time.Time {
	return n.Jump(n.month.AddDate(0, 1, 0))
}

// Jump moves to the month containing t.
func (n *Nav) Jump(t time.Time) time.Time {
	n.month = n.Window.ClampMonth(t)
	return n.month
}

// AtStart reports whether Prev would not move.
func (n *Nav) AtStart() bool {
	return n.Window.ClampMonth(n.month.AddDate(0, -1, 0)).Equal(n.month)
}

// AtEnd reports whether Next would not move.
func (n *Nav) AtEnd() bool {
	return n.Window.ClampMonth(n.month.AddDate(0, 1, 0)).Equal(n.month)
}
