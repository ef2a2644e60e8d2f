package options

import (
	"testing"
	"time"
)

var now = time.Date(2025, time.April, 10, 21, 0, 0, 0, time.UTC)

func TestParseDay(t *testing.T) {
	cases := map[string]string{
		"2025-4-2":   "2025-04-02",
		"2025-04-02": "2025-04-02",
		"3/15":       "2025-03-15",
		"today":      "2025-04-10",
		"yesterday":  "2025-04-09",
	}
	for in, want := range cases {
		d, err := ParseDay(in, now)
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		if d.Key() != want {
			t.Fatalf("%q: expected %s, got %s", in, want, d.Key())
		}
	}

	if d, err := ParseDay("", now); err != nil || !d.IsZero() {
		t.Fatalf("expected zero date for empty input, got %v %v", d, err)
	}
	if _, err := ParseDay("someday", now); err == nil {
		t.Fatalf("expected error")
	}
}

func TestMonthOptions(t *testing.T) {
	o := MonthOptions{}
	if m, err := o.GetMonth(); err != nil || !m.IsZero() {
		t.Fatalf("expected zero month, got %v %v", m, err)
	}
	o.MonthString = "2025-03"
	m, err := o.GetMonth()
	if err != nil || m.Month() != time.March || m.Day() != 1 {
		t.Fatalf("unexpected month %v %v", m, err)
	}
	o.MonthString = "March"
	if _, err := o.GetMonth(); err == nil {
		t.Fatalf("expected error")
	}
}

func TestRangeBounds(t *testing.T) {
	o := RangeOptions{Last: "1w"}
	since, until, label, err := o.Bounds(now)
	if err != nil {
		t.Fatalf("bounds: %v", err)
	}
	if since.Key() != "2025-04-04" || until.Key() != "2025-04-10" || label != "last 1w" {
		t.Fatalf("unexpected bounds %s %s %q", since.Key(), until.Key(), label)
	}

	o = RangeOptions{Since: "2025-3-1"}
	since, until, label, err = o.Bounds(now)
	if err != nil {
		t.Fatalf("bounds: %v", err)
	}
	if since.Key() != "2025-03-01" || !until.IsZero() || label != "" {
		t.Fatalf("unexpected open bounds %s %v %q", since.Key(), until, label)
	}

	o = RangeOptions{Last: "forever"}
	if _, _, _, err := o.Bounds(now); err == nil {
		t.Fatalf("expected error")
	}
}
