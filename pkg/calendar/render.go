package calendar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/moodcal/pkg/entry"
	"tableflip.dev/moodcal/pkg/mood"
)

const (
	journalMark = "•"
	eventMark   = "◦"
	cellWidth   = 4
)

var weekdayNames = []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// Options controls the styling of the rendered calendar.
type Options struct {
	HeaderStyle     lipgloss.Style
	EmptyStyle      lipgloss.Style
	IneligibleStyle lipgloss.Style
	TodayStyle      lipgloss.Style
	SelectedStyle   lipgloss.Style
	MoodStyles      map[mood.Mood]lipgloss.Style
	ShowHeader      bool

	Today    entry.Date
	Selected entry.Date
}

// DefaultOptions colors days by mood using the legend palette.
func DefaultOptions() Options {
	styles := make(map[mood.Mood]lipgloss.Style, len(mood.All()))
	for _, m := range mood.All() {
		styles[m] = lipgloss.NewStyle().Foreground(lipgloss.Color(m.Glyph().Color)).Bold(true)
	}
	return Options{
		HeaderStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		EmptyStyle:      lipgloss.NewStyle().Foreground(lipgloss.Color(mood.NoData.Color)),
		IneligibleStyle: lipgloss.NewStyle().Faint(true),
		TodayStyle:      lipgloss.NewStyle().Underline(true),
		SelectedStyle:   lipgloss.NewStyle().Reverse(true),
		MoodStyles:      styles,
		ShowHeader:      true,
	}
}

// Header returns the weekday header line, aligned with rendered cells.
func Header() string {
	cols := make([]string, len(weekdayNames))
	for i, n := range weekdayNames {
		cols[i] = fmt.Sprintf("%-*s", cellWidth, n)
	}
	return strings.TrimRight(strings.Join(cols, " "), " ")
}

// Render produces a multi-line calendar string for the month.
func Render(m Month, opts Options) string {
	var lines []string
	if opts.ShowHeader {
		lines = append(lines, opts.HeaderStyle.Render(Header()))
	}

	for _, row := range m.Rows() {
		cells := make([]string, 0, 7)
		for _, c := range row {
			if c.Blank {
				cells = append(cells, strings.Repeat(" ", cellWidth))
				continue
			}
			cells = append(cells, renderDay(c, opts))
		}
		lines = append(lines, strings.TrimRight(strings.Join(cells, " "), " "))
	}

	return strings.Join(lines, "\n")
}

// CellText is the unstyled text of a day cell: the day number followed by
// the journal and event markers.
func CellText(c Cell) string {
	j, e := " ", " "
	if c.HasJournal {
		j = journalMark
	}
	if c.HasEvent {
		e = eventMark
	}
	return fmt.Sprintf("%2d%s%s", c.Date.Day(), j, e)
}

func renderDay(c Cell, opts Options) string {
	style := opts.EmptyStyle
	if m, ok := c.Recorded(); ok {
		if s, found := opts.MoodStyles[m]; found {
			style = s
		}
	}
	if !c.Eligible {
		style = style.Inherit(opts.IneligibleStyle)
	}
	if !opts.Today.IsZero() && c.Date.Equal(opts.Today) {
		style = style.Inherit(opts.TodayStyle)
	}
	if !opts.Selected.IsZero() && c.Date.Equal(opts.Selected) {
		style = style.Inherit(opts.SelectedStyle)
	}
	return style.Render(CellText(c))
}
