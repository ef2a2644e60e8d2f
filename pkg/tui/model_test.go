package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/ansi"

	"tableflip.dev/moodcal/pkg/app"
	"tableflip.dev/moodcal/pkg/entry"
	"tableflip.dev/moodcal/pkg/flags"
	"tableflip.dev/moodcal/pkg/mood"
	"tableflip.dev/moodcal/pkg/store"
	"tableflip.dev/moodcal/pkg/window"
)

func stripANSI(s string) string {
	var b strings.Builder
	ansiSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			ansiSeq = true
			continue
		}
		if ansiSeq {
			if ansi.IsTerminator(r) {
				ansiSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func newTestModel(t *testing.T, start, end string, now time.Time) (*Model, *app.Service) {
	t.Helper()
	w, err := window.Parse(start, end)
	if err != nil {
		t.Fatalf("window: %v", err)
	}
	moods := store.NewMoods(store.NewMemorySlot(nil), nil)
	moods.Load()
	svc := &app.Service{Moods: moods, Window: w, Flags: flags.None{}}
	m := New(svc, now)
	t.Cleanup(m.Close)
	return m, svc
}

func press(m *Model, msgs ...tea.KeyPressMsg) {
	for _, msg := range msgs {
		m.Update(msg)
	}
}

func runeKey(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Text: string(r), Code: r}
}

var (
	enter = tea.KeyPressMsg{Code: tea.KeyEnter}
	esc   = tea.KeyPressMsg{Code: tea.KeyEscape}
	right = tea.KeyPressMsg{Code: tea.KeyRight}
)

func TestViewRendersMonthAndLegend(t *testing.T) {
	m, _ := newTestModel(t, "2025-03", "2025-04", time.Date(2025, time.April, 10, 9, 0, 0, 0, time.UTC))

	view := stripANSI(m.View())
	for _, want := range []string{"April 2025", "Su   Mo", "30", "☺ happy", "✸ angry", "q quit"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
	if !m.cursor.Equal(entry.NewDate(2025, time.April, 10)) {
		t.Fatalf("expected cursor on today, got %s", m.cursor)
	}
}

func TestPickerCommitRecordsMood(t *testing.T) {
	m, svc := newTestModel(t, "2025-03", "2025-04", time.Date(2025, time.April, 10, 9, 0, 0, 0, time.UTC))

	press(m, enter)
	if m.mode != modePicker {
		t.Fatalf("expected picker open")
	}
	view := stripANSI(m.View())
	if !strings.Contains(view, "How did you feel on April 10, 2025?") {
		t.Fatalf("expected picker prompt in view:\n%s", view)
	}

	press(m, runeKey('2'), enter)
	if m.mode != modeCalendar {
		t.Fatalf("expected picker closed after save")
	}
	if got, ok := svc.Moods.Get(entry.NewDate(2025, time.April, 10)); !ok || got != mood.Neutral {
		t.Fatalf("expected neutral stored, got %v %v", got, ok)
	}
	if m.toast == nil || m.toast.Title != "Mood recorded" {
		t.Fatalf("expected success toast, got %+v", m.toast)
	}

	// The store notification rebuilds the grid.
	m.Update(storeChangedMsg{})
	c, _ := m.month.Day(entry.NewDate(2025, time.April, 10))
	if got, ok := c.Recorded(); !ok || got != mood.Neutral {
		t.Fatalf("expected grid to show neutral, got %v %v", got, ok)
	}
}

func TestPickerSaveDisabledUntilChosen(t *testing.T) {
	m, svc := newTestModel(t, "2025-03", "2025-04", time.Date(2025, time.April, 10, 9, 0, 0, 0, time.UTC))

	press(m, enter, enter)
	if m.mode != modePicker {
		t.Fatalf("expected picker to stay open without a choice")
	}
	press(m, runeKey('a'), esc)
	if m.mode != modeCalendar {
		t.Fatalf("expected esc to close picker")
	}
	if recs, _ := svc.Records(m.ctx); len(recs) != 0 {
		t.Fatalf("expected nothing stored after cancel, got %v", recs)
	}
}

func TestIneligibleDayShowsNotice(t *testing.T) {
	m, _ := newTestModel(t, "2025-03-05", "2025-04-20", time.Date(2025, time.April, 25, 9, 0, 0, 0, time.UTC))

	press(m, enter)
	if m.mode != modeCalendar {
		t.Fatalf("expected picker to stay closed")
	}
	if m.toast == nil || m.toast.Title != "Date unavailable" {
		t.Fatalf("expected unavailable notice, got %+v", m.toast)
	}
	if view := stripANSI(m.View()); !strings.Contains(view, "Date unavailable") {
		t.Fatalf("expected notice in view:\n%s", view)
	}
}

func TestMonthNavigationClamps(t *testing.T) {
	m, _ := newTestModel(t, "2025-03", "2025-04", time.Date(2026, time.October, 19, 9, 0, 0, 0, time.UTC))

	if m.nav.Month().Month() != time.April {
		t.Fatalf("expected to open on April, got %v", m.nav.Month())
	}
	press(m, runeKey(']'))
	if m.nav.Month().Month() != time.April {
		t.Fatalf("expected next to stay on April")
	}
	press(m, runeKey('['), runeKey('['))
	if m.nav.Month().Month() != time.March || m.month.First.Month() != time.March {
		t.Fatalf("expected prev to stop at March, got %v", m.nav.Month())
	}
}

func TestCursorFollowsAcrossMonths(t *testing.T) {
	m, _ := newTestModel(t, "2025-03", "2025-04", time.Date(2025, time.March, 31, 9, 0, 0, 0, time.UTC))

	press(m, right)
	if !m.cursor.Equal(entry.NewDate(2025, time.April, 1)) || m.month.First.Month() != time.April {
		t.Fatalf("expected cursor on April 1, got %s", m.cursor)
	}
}

func TestGotoDate(t *testing.T) {
	m, _ := newTestModel(t, "2025-03", "2025-04", time.Date(2025, time.April, 10, 9, 0, 0, 0, time.UTC))

	press(m, runeKey('g'))
	if m.mode != modeGoto {
		t.Fatalf("expected goto prompt")
	}
	m.input.SetValue("2025-03-14")
	press(m, enter)
	if !m.cursor.Equal(entry.NewDate(2025, time.March, 14)) {
		t.Fatalf("expected cursor on March 14, got %s", m.cursor)
	}
}
