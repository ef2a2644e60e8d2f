package store

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"tableflip.dev/moodcal/pkg/entry"
	"tableflip.dev/moodcal/pkg/mood"
)

func day(t *testing.T, s string) entry.Date {
	t.Helper()
	d, err := entry.ParseDate(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return d
}

type testConfig struct {
	path    string
	backend string
}

func (c testConfig) BasePath() string { return c.path }
func (c testConfig) Backend() string  { return c.backend }

type failingSlot struct {
	MemorySlot
	fail bool
}

func (f *failingSlot) Write(data []byte) error {
	if f.fail {
		return errors.New("disk full")
	}
	return f.MemorySlot.Write(data)
}

func TestLoadEmptySlot(t *testing.T) {
	s := NewMoods(NewMemorySlot(nil), nil)
	if got := s.Load(); len(got) != 0 {
		t.Fatalf("expected empty mapping, got %v", got)
	}
}

func TestLoadCorruptPayloadIsEmpty(t *testing.T) {
	payloads := []string{
		`{not json`,
		`{"date":"2025-04-10","mood":"happy"}`,
		`[{"date":"2025-04-10","mood":"ecstatic"}]`,
		`[{"date":"10/04/2025","mood":"happy"}]`,
		`[{"date":"2025-04-10"}]`,
		`[{"mood":"sad"}]`,
	}
	for _, p := range payloads {
		core, logs := observer.New(zapcore.WarnLevel)
		s := NewMoods(NewMemorySlot([]byte(p)), zap.New(core))
		if got := s.Load(); len(got) != 0 {
			t.Fatalf("payload %q: expected empty mapping, got %v", p, got)
		}
		if logs.FilterMessage("mood payload corrupt, starting empty").Len() != 1 {
			t.Fatalf("payload %q: expected corrupt payload warning", p)
		}
		if _, ok := s.Get(day(t, "2025-04-10")); ok {
			t.Fatalf("payload %q: expected no mood", p)
		}
	}
}

func TestSetIsIdempotent(t *testing.T) {
	slot := NewMemorySlot(nil)
	s := NewMoods(slot, nil)
	s.Load()

	d := day(t, "2025-04-10")
	for i := 0; i < 2; i++ {
		if err := s.Set(d, mood.Happy); err != nil {
			t.Fatalf("set: %v", err)
		}
	}

	records := s.Records()
	if len(records) != 1 {
		t.Fatalf("expected one record, got %d", len(records))
	}
	if records[0].Mood != mood.Happy {
		t.Fatalf("expected happy, got %v", records[0].Mood)
	}
}

func TestSetUpserts(t *testing.T) {
	slot := NewMemorySlot(nil)
	s := NewMoods(slot, nil)
	s.Load()

	d := day(t, "2025-04-10")
	if err := s.Set(d, mood.Happy); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Set(d, mood.Sad); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, ok := s.Get(d)
	if !ok || got != mood.Sad {
		t.Fatalf("expected sad, got %v (%v)", got, ok)
	}

	data, _ := slot.Read()
	if string(data) != `[{"date":"2025-04-10","mood":"sad"}]` {
		t.Fatalf("unexpected payload %s", data)
	}
}

func TestSetIgnoresTimeOfDay(t *testing.T) {
	s := NewMoods(NewMemorySlot(nil), nil)
	s.Load()

	morning := entry.DateOf(time.Date(2025, time.April, 10, 8, 0, 0, 0, time.Local))
	evening := entry.DateOf(time.Date(2025, time.April, 10, 22, 0, 0, 0, time.Local))
	if err := s.Set(morning, mood.Neutral); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Set(evening, mood.Angry); err != nil {
		t.Fatalf("set: %v", err)
	}
	if n := len(s.Records()); n != 1 {
		t.Fatalf("expected one record, got %d", n)
	}
}

func TestSetRejectsInvalidInput(t *testing.T) {
	s := NewMoods(NewMemorySlot(nil), nil)
	if err := s.Set(entry.Date{}, mood.Happy); err == nil {
		t.Fatalf("expected error for zero date")
	}
	if err := s.Set(day(t, "2025-04-10"), mood.Mood(9)); !errors.Is(err, mood.ErrUnknown) {
		t.Fatalf("expected ErrUnknown, got %v", err)
	}
}

func TestSetRollsBackOnWriteFailure(t *testing.T) {
	slot := &failingSlot{}
	s := NewMoods(slot, nil)
	s.Load()

	d := day(t, "2025-04-10")
	if err := s.Set(d, mood.Happy); err != nil {
		t.Fatalf("set: %v", err)
	}

	slot.fail = true
	if err := s.Set(d, mood.Angry); err == nil {
		t.Fatalf("expected write failure")
	}
	if got, _ := s.Get(d); got != mood.Happy {
		t.Fatalf("expected previous mood kept, got %v", got)
	}
	if err := s.Set(day(t, "2025-04-11"), mood.Sad); err == nil {
		t.Fatalf("expected write failure")
	}
	if _, ok := s.Get(day(t, "2025-04-11")); ok {
		t.Fatalf("expected failed insert to be rolled back")
	}
}

func TestSubscribersNotified(t *testing.T) {
	s := NewMoods(NewMemorySlot(nil), nil)
	s.Load()

	var got []Change
	cancel := s.Subscribe(func(c Change) { got = append(got, c) })

	d := day(t, "2025-03-02")
	if err := s.Set(d, mood.Neutral); err != nil {
		t.Fatalf("set: %v", err)
	}
	if len(got) != 1 || got[0].Type != ChangeSet || !got[0].Date.Equal(d) || got[0].Mood != mood.Neutral {
		t.Fatalf("unexpected changes %+v", got)
	}

	cancel()
	if err := s.Set(d, mood.Sad); err != nil {
		t.Fatalf("set: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected no notification after cancel, got %d", len(got))
	}
}

func TestReloadNotifiesOnlyOnChange(t *testing.T) {
	slot := NewMemorySlot(nil)
	s := NewMoods(slot, nil)
	s.Load()
	if err := s.Set(day(t, "2025-03-02"), mood.Neutral); err != nil {
		t.Fatalf("set: %v", err)
	}

	reloads := 0
	s.Subscribe(func(c Change) {
		if c.Type == ChangeReload {
			reloads++
		}
	})

	if s.Reload() {
		t.Fatalf("expected no reload for own write")
	}

	if err := slot.Write([]byte(`[{"date":"2025-03-03","mood":"angry"}]`)); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !s.Reload() {
		t.Fatalf("expected reload after external write")
	}
	if reloads != 1 {
		t.Fatalf("expected one reload notification, got %d", reloads)
	}
	if _, ok := s.Get(day(t, "2025-03-02")); ok {
		t.Fatalf("expected old record gone after reload")
	}
	if got, _ := s.Get(day(t, "2025-03-03")); got != mood.Angry {
		t.Fatalf("expected angry after reload, got %v", got)
	}
}

func roundTrip(t *testing.T, slot Slot) {
	t.Helper()
	s := NewMoods(slot, nil)
	s.Load()

	want := map[string]mood.Mood{
		"2024-02-29": mood.Happy,
		"2025-03-01": mood.Neutral,
		"2025-04-30": mood.Sad,
		"2025-12-31": mood.Angry,
	}
	for key, m := range want {
		if err := s.Set(day(t, key), m); err != nil {
			t.Fatalf("set %s: %v", key, err)
		}
	}
	if err := s.Set(day(t, "2025-03-01"), mood.Angry); err != nil {
		t.Fatalf("set: %v", err)
	}
	want["2025-03-01"] = mood.Angry

	got := NewMoods(slot, nil).Load()
	if len(got) != len(want) {
		t.Fatalf("expected %d records, got %d: %v", len(want), len(got), got)
	}
	for key, m := range want {
		if got[key] != m {
			t.Fatalf("%s: got %v want %v", key, got[key], m)
		}
	}
}

func TestRoundTripMemory(t *testing.T) {
	roundTrip(t, NewMemorySlot(nil))
}

func TestRoundTripDiskv(t *testing.T) {
	slot, err := NewDiskvSlot(t.TempDir(), SlotName)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	roundTrip(t, slot)
}

func TestRoundTripSQLite(t *testing.T) {
	slot, err := NewSQLiteSlot(filepath.Join(t.TempDir(), "moods.sqlite"), SlotName)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer slot.Close()
	roundTrip(t, slot)
}

func TestSlotsReportEmpty(t *testing.T) {
	dir := t.TempDir()
	dv, err := NewDiskvSlot(dir, SlotName)
	if err != nil {
		t.Fatalf("open diskv: %v", err)
	}
	if _, err := dv.Read(); !errors.Is(err, ErrNoSlot) {
		t.Fatalf("diskv: expected ErrNoSlot, got %v", err)
	}

	sq, err := NewSQLiteSlot(filepath.Join(dir, "x.sqlite"), SlotName)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer sq.Close()
	if _, err := sq.Read(); !errors.Is(err, ErrNoSlot) {
		t.Fatalf("sqlite: expected ErrNoSlot, got %v", err)
	}
}

func TestOpenBackends(t *testing.T) {
	for _, backend := range []string{"", BackendDiskv, BackendSQLite, BackendMemory} {
		s, err := Open(testConfig{path: t.TempDir(), backend: backend}, nil)
		if err != nil {
			t.Fatalf("Open(%q): %v", backend, err)
		}
		if err := s.Set(day(t, "2025-04-01"), mood.Happy); err != nil {
			t.Fatalf("Open(%q) set: %v", backend, err)
		}
	}
	if _, err := Open(testConfig{path: t.TempDir(), backend: "redis"}, nil); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}
