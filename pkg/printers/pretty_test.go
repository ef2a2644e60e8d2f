package printers

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/moodcal/pkg/calendar"
	"tableflip.dev/moodcal/pkg/entry"
	"tableflip.dev/moodcal/pkg/mood"
	"tableflip.dev/moodcal/pkg/summary"
)

type mapReader map[string]mood.Mood

func (m mapReader) Get(d entry.Date) (mood.Mood, bool) {
	v, ok := m[d.Key()]
	return v, ok
}

func noColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func TestCalendar(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}

	month := calendar.Build(time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC), mapReader{"2025-04-10": mood.Happy}, nil, nil)
	pp.Calendar(month, entry.Date{})

	lines := strings.Split(buf.String(), "\n")
	if got := strings.TrimSpace(lines[0]); got != "April 2025" {
		t.Fatalf("expected title, got %q", got)
	}
	if lines[1] != calendar.Header() {
		t.Fatalf("expected header, got %q", lines[1])
	}
	// April 2025 starts on a Tuesday.
	if want := strings.Repeat(" ", 4) + " " + strings.Repeat(" ", 4) + "  1"; !strings.HasPrefix(lines[2], want) {
		t.Fatalf("expected two blank cells before the 1st, got %q", lines[2])
	}
	if len(lines) < 7 || !strings.Contains(lines[3], "10") {
		t.Fatalf("expected the 10th in the second week, got %q", buf.String())
	}
}

func TestRecords(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}

	pp.Records()
	if !strings.Contains(buf.String(), "none") {
		t.Fatalf("expected none, got %q", buf.String())
	}

	buf.Reset()
	pp.Records(
		entry.New(entry.NewDate(2025, time.April, 10), mood.Happy),
		entry.New(entry.NewDate(2025, time.April, 11), mood.Angry),
	)
	out := buf.String()
	for _, want := range []string{"2025-04-10", "Happy", "2025-04-11", "Angry", "✸"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}
}

func TestSummary(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}

	s := summary.Of(time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC), mapReader{"2025-04-10": mood.Sad})
	pp.Summary(s)

	out := buf.String()
	if !strings.HasPrefix(out, "April 2025 - 1 day\n") {
		t.Fatalf("unexpected title in %q", out)
	}
	for _, want := range []string{"Sad", "No Data", "29", "97%"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}
}

func TestLegend(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}

	pp.Legend(mood.DefaultGlyphs())
	out := buf.String()
	for _, g := range mood.DefaultGlyphs() {
		if !strings.Contains(out, g.Meaning) {
			t.Fatalf("expected %q in legend %q", g.Meaning, out)
		}
	}
}
