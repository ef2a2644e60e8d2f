package entry

import (
	"encoding/json"
	"testing"
	"time"

	"tableflip.dev/moodcal/pkg/mood"
)

func TestDateOfIgnoresTimeOfDay(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	late := time.Date(2025, time.April, 10, 23, 59, 0, 0, loc)
	early := time.Date(2025, time.April, 10, 0, 1, 0, 0, loc)

	if DateOf(late).Key() != "2025-04-10" {
		t.Fatalf("expected 2025-04-10, got %s", DateOf(late).Key())
	}
	if !DateOf(late).Equal(DateOf(early)) {
		t.Fatalf("expected same day for %v and %v", late, early)
	}
}

func TestKeyIsZeroPadded(t *testing.T) {
	d := NewDate(2025, time.March, 1)
	if d.Key() != "2025-03-01" {
		t.Fatalf("unexpected key %q", d.Key())
	}
	if d.Long() != "March 1, 2025" {
		t.Fatalf("unexpected long form %q", d.Long())
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.Year() != 2024 || d.Month() != time.February || d.Day() != 29 {
		t.Fatalf("unexpected date %v", d)
	}
	for _, bad := range []string{"2025-4-1", "2025-02-30", "", "April 1"} {
		if _, err := ParseDate(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestMonthBounds(t *testing.T) {
	tests := []struct {
		in        Date
		wantFirst string
		wantLast  string
	}{
		{NewDate(2025, time.April, 17), "2025-04-01", "2025-04-30"},
		{NewDate(2024, time.February, 2), "2024-02-01", "2024-02-29"},
		{NewDate(2023, time.February, 28), "2023-02-01", "2023-02-28"},
		{NewDate(2025, time.December, 31), "2025-12-01", "2025-12-31"},
	}
	for _, tc := range tests {
		if got := tc.in.FirstOfMonth().Key(); got != tc.wantFirst {
			t.Fatalf("FirstOfMonth(%s) = %s, want %s", tc.in, got, tc.wantFirst)
		}
		if got := tc.in.LastOfMonth().Key(); got != tc.wantLast {
			t.Fatalf("LastOfMonth(%s) = %s, want %s", tc.in, got, tc.wantLast)
		}
	}
}

func TestRecordJSON(t *testing.T) {
	r := New(NewDate(2025, time.April, 10), mood.Happy)
	b, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"date":"2025-04-10","mood":"happy"}` {
		t.Fatalf("unexpected json %s", b)
	}

	var back Record
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Date.Equal(r.Date) || back.Mood != r.Mood {
		t.Fatalf("round trip mismatch: %+v vs %+v", back, r)
	}
}

func TestSort(t *testing.T) {
	records := []Record{
		New(NewDate(2025, time.April, 2), mood.Sad),
		New(NewDate(2025, time.March, 30), mood.Happy),
		New(NewDate(2025, time.April, 1), mood.Angry),
	}
	Sort(records)
	want := []string{"2025-03-30", "2025-04-01", "2025-04-02"}
	for i, r := range records {
		if r.Date.Key() != want[i] {
			t.Fatalf("index %d: got %s want %s", i, r.Date.Key(), want[i])
		}
	}
}
