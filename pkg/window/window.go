// Package window decides which calendar days accept a mood entry.
package window

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"tableflip.dev/moodcal/pkg/entry"
)

// Policy reports whether a day is eligible for mood entry.
type Policy interface {
	IsEligible(d entry.Date) bool
}

// Window is an inclusive range of days. A zero Start or End leaves that side
// open.
type Window struct {
	Start entry.Date
	End   entry.Date
}

var ErrEmptyWindow = errors.New("window: start is after end")

// Unbounded admits every date.
func Unbounded() Window {
	return Window{}
}

// Months returns the window from the first day of startMonth through the last
// day of endMonth.
func Months(startMonth, endMonth entry.Date) (Window, error) {
	w := Window{
		Start: startMonth.FirstOfMonth(),
		End:   endMonth.LastOfMonth(),
	}
	if w.End.Before(w.Start) {
		return Window{}, fmt.Errorf("%w: %s > %s", ErrEmptyWindow, w.Start, w.End)
	}
	return w, nil
}

// Parse builds a window from configuration values. Each bound is either a
// month (YYYY-MM, expanded to the whole month) or a day (YYYY-MM-DD). Empty
// bounds are open.
func Parse(start, end string) (Window, error) {
	var w Window
	if s := strings.TrimSpace(start); s != "" {
		d, month, err := parseBound(s)
		if err != nil {
			return Window{}, fmt.Errorf("window: start: %w", err)
		}
		if month {
			d = d.FirstOfMonth()
		}
		w.Start = d
	}
	if s := strings.TrimSpace(end); s != "" {
		d, month, err := parseBound(s)
		if err != nil {
			return Window{}, fmt.Errorf("window: end: %w", err)
		}
		if month {
			d = d.LastOfMonth()
		}
		w.End = d
	}
	if !w.Start.IsZero() && !w.End.IsZero() && w.End.Before(w.Start) {
		return Window{}, fmt.Errorf("%w: %s > %s", ErrEmptyWindow, w.Start, w.End)
	}
	return w, nil
}

func parseBound(s string) (entry.Date, bool, error) {
	if len(s) == len(entry.LayoutMonth) {
		d, err := entry.ParseMonth(s)
		return d, true, err
	}
	d, err := entry.ParseDate(s)
	return d, false, err
}

// IsEligible reports whether d falls within the window, bounds included.
func (w Window) IsEligible(d entry.Date) bool {
	if !w.Start.IsZero() && d.Before(w.Start) {
		return false
	}
	if !w.End.IsZero() && d.After(w.End) {
		return false
	}
	return true
}

// Bounded reports whether both ends of the window are set.
func (w Window) Bounded() bool {
	return !w.Start.IsZero() && !w.End.IsZero()
}

// ClampMonth returns the first day of t's month, moved to the first or last
// month of the window when t falls outside it.
func (w Window) ClampMonth(t time.Time) time.Time {
	first := entry.DateOf(t).FirstOfMonth()
	if !w.Start.IsZero() && first.Before(w.Start.FirstOfMonth()) {
		first = w.Start.FirstOfMonth()
	}
	if !w.End.IsZero() && first.After(w.End.FirstOfMonth()) {
		first = w.End.FirstOfMonth()
	}
	return first.Time
}

func (w Window) String() string {
	start, end := "…", "…"
	if !w.Start.IsZero() {
		start = w.Start.Long()
	}
	if !w.End.IsZero() {
		end = w.End.Long()
	}
	return start + " – " + end
}
