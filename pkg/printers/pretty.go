package printers

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/moodcal/pkg/entry"
	"tableflip.dev/moodcal/pkg/mood"
	"tableflip.dev/moodcal/pkg/summary"
)

type PrettyPrint struct {
	// Out defaults to color.Output.
	Out io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " day")
	default:
		_, _ = c.Fprintln(pp.out(), " days")
	}
}

// MoodColor is the terminal color of a mood's glyph.
func MoodColor(m mood.Mood) *color.Color {
	return color256(m.Glyph().Color)
}

func color256(code string) *color.Color {
	return color.New(attrs256(code)...)
}

// attrs256 selects a foreground from the 256 color palette.
func attrs256(code string) []color.Attribute {
	n, err := strconv.Atoi(code)
	if err != nil {
		return nil
	}
	return []color.Attribute{38, 5, color.Attribute(n)}
}

// Records prints one row per recorded day.
func (pp *PrettyPrint) Records(records ...entry.Record) {
	if len(records) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, r := range records {
		date, _, name := r.Row()
		tbl.AddRow(date, MoodColor(r.Mood).Sprint(r.Mood.Glyph().Symbol), name)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Summary prints the per-mood counts of a month.
func (pp *PrettyPrint) Summary(s summary.Summary) {
	pp.TitleWithCount(s.Month, s.Recorded())

	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("", bold.Sprint("Mood"), bold.Sprint("Days"), bold.Sprint("Share"))
	for _, b := range s.Buckets {
		glyph, name := b.Glyph, b.Name
		if b.NoData {
			glyph, name = faint.Sprint(glyph), faint.Sprint(name)
		} else if m, err := mood.Parse(b.Name); err == nil {
			glyph = MoodColor(m).Sprint(glyph)
		}
		tbl.AddRow(glyph, name, b.Days, fmt.Sprintf("%.0f%%", b.Percent))
	}
	tbl.RightAlign(2)
	tbl.RightAlign(3)
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Legend prints the glyph, key and meaning of each mood.
func (pp *PrettyPrint) Legend(glyphs []mood.Glyph) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Mood"), bold.Sprint("Key"), bold.Sprint("Meaning"))
	for _, g := range glyphs {
		key := g.Key
		if key == "" {
			key = "-"
		}
		tbl.AddRow(color256(g.Color).Sprint(g.Symbol), key, g.Meaning)
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

func center(s string, w int) string {
	if len(s) >= w {
		return s
	}
	mid := (w - len(s)) / 2
	return strings.Repeat(" ", mid) + s + strings.Repeat(" ", w-mid-len(s))
}

// JSON writes v as indented JSON.
func (pp *PrettyPrint) JSON(v any) error {
	enc := json.NewEncoder(pp.out())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Writer is the destination of every print.
func (pp *PrettyPrint) Writer() io.Writer {
	return pp.out()
}
