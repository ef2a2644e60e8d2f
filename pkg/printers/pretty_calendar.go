package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/moodcal/pkg/calendar"
	"tableflip.dev/moodcal/pkg/entry"
	"tableflip.dev/moodcal/pkg/mood"
)

const width = 7*4 + 6 // seven day cells and their separators

// Calendar prints the month grid with each recorded day in its mood's color.
// Days outside the entry window are faint, today is underlined.
func (pp *PrettyPrint) Calendar(m calendar.Month, today entry.Date) {
	out := pp.out()
	tf := color.New(color.FgWhite, color.Italic)
	_, _ = tf.Fprintln(out, center(m.First.Format("January 2006"), width))

	hf := color.New(color.Faint)
	_, _ = hf.Fprintln(out, calendar.Header())

	for _, row := range m.Rows() {
		cells := make([]string, 0, len(row))
		for _, c := range row {
			if c.Blank {
				cells = append(cells, "    ")
				continue
			}
			attrs := attrs256(mood.NoData.Color)
			if v, ok := c.Recorded(); ok {
				attrs = attrs256(v.Glyph().Color)
			}
			if !c.Eligible {
				attrs = append(attrs, color.Faint)
			}
			if !today.IsZero() && c.Date.Equal(today) {
				attrs = append(attrs, color.Underline)
			}
			printer := color.New(attrs...)
			cells = append(cells, printer.Sprint(calendar.CellText(c)))
		}
		_, _ = fmt.Fprintln(out, strings.TrimRight(strings.Join(cells, " "), " "))
	}
	pp.NewLine()
}
