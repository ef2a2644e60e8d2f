// Package calendar lays a month out as a weekday grid annotated with moods.
package calendar

import (
	"time"

	"tableflip.dev/moodcal/pkg/entry"
	"tableflip.dev/moodcal/pkg/flags"
	"tableflip.dev/moodcal/pkg/mood"
	"tableflip.dev/moodcal/pkg/window"
)

// Reader looks up the mood recorded for a day.
type Reader interface {
	Get(d entry.Date) (mood.Mood, bool)
}

// Cell is one grid position: a blank pad or a single day.
type Cell struct {
	Blank      bool       `json:"blank,omitempty"`
	Date       entry.Date `json:"date,omitempty"`
	Mood       *mood.Mood `json:"mood,omitempty"`
	HasJournal bool       `json:"hasJournal,omitempty"`
	HasEvent   bool       `json:"hasEvent,omitempty"`
	Eligible   bool       `json:"eligible,omitempty"`
}

// Recorded returns the cell's mood and whether one is recorded.
func (c Cell) Recorded() (mood.Mood, bool) {
	if c.Mood == nil {
		return 0, false
	}
	return *c.Mood, true
}

// Month is the grid for a single month: leading blanks followed by one cell
// per day in ascending order.
type Month struct {
	First entry.Date `json:"month"`
	Cells []Cell     `json:"cells"`
}

// Build derives the grid for the month containing month. A nil policy admits
// every day; a nil flags provider reports no markers.
func Build(month time.Time, moods Reader, policy window.Policy, fp flags.Provider) Month {
	first := entry.DateOf(month).FirstOfMonth()
	last := first.LastOfMonth()
	lead := int(StartDay(month))

	cells := make([]Cell, 0, lead+last.Day())
	for i := 0; i < lead; i++ {
		cells = append(cells, Cell{Blank: true})
	}

	for d := first; !d.After(last); d = d.AddDays(1) {
		c := Cell{Date: d, Eligible: true}
		if moods != nil {
			if m, ok := moods.Get(d); ok {
				c.Mood = &m
			}
		}
		if policy != nil {
			c.Eligible = policy.IsEligible(d)
		}
		if fp != nil {
			f := fp.Flags(d)
			c.HasJournal = f.HasJournal
			c.HasEvent = f.HasEvent
		}
		cells = append(cells, c)
	}

	return Month{First: first, Cells: cells}
}

// Leading is the number of blank cells before the first day.
func (m Month) Leading() int {
	n := 0
	for _, c := range m.Cells {
		if !c.Blank {
			break
		}
		n++
	}
	return n
}

// Days returns only the day cells.
func (m Month) Days() []Cell {
	return m.Cells[m.Leading():]
}

// Day returns the cell for d, if d is in this month.
func (m Month) Day(d entry.Date) (Cell, bool) {
	if !m.First.SameMonth(d) {
		return Cell{}, false
	}
	idx := m.Leading() + d.Day() - 1
	if idx >= len(m.Cells) {
		return Cell{}, false
	}
	return m.Cells[idx], true
}

// Rows groups the cells into 7-wide weeks. The last row may be short.
func (m Month) Rows() [][]Cell {
	var rows [][]Cell
	for i := 0; i < len(m.Cells); i += 7 {
		end := i + 7
		if end > len(m.Cells) {
			end = len(m.Cells)
		}
		rows = append(rows, m.Cells[i:end])
	}
	return rows
}

// DaysIn returns the number of days in then's month.
func DaysIn(then time.Time) int {
	return time.Date(then.Year(), then.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// StartDay returns the weekday of the first of then's month.
func StartDay(then time.Time) time.Weekday {
	return time.Date(then.Year(), then.Month(), 1, 0, 0, 0, 0, time.UTC).Weekday()
}
