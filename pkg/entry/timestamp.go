package entry

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	// LayoutISO is the zero-padded key form of a Date.
	LayoutISO = "2006-01-02"
	// LayoutUS is the long human form used in notices.
	LayoutUS = "January 2, 2006"
	// LayoutMonth is the key form of a month.
	LayoutMonth = "2006-01"
)

// Date is a calendar day without a time component. The zero value is not a
// valid day.
type Date struct {
	time.Time
}

// NewDate returns the Date for the given year, month and day. Out of range
// values are normalized the way time.Date does.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf returns the calendar day of t in t's own location, ignoring the time
// of day.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// Today returns the current local calendar day.
func Today() Date {
	return DateOf(time.Now())
}

// ParseDate parses a YYYY-MM-DD key.
func ParseDate(v string) (Date, error) {
	t, err := time.Parse(LayoutISO, v)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", v, err)
	}
	return DateOf(t), nil
}

// ParseMonth parses a YYYY-MM month and returns its first day.
func ParseMonth(v string) (Date, error) {
	t, err := time.Parse(LayoutMonth, v)
	if err != nil {
		return Date{}, fmt.Errorf("invalid month %q: %w", v, err)
	}
	return DateOf(t), nil
}

// Key is the zero-padded ISO form used to store and deduplicate records.
func (d Date) Key() string {
	return d.Format(LayoutISO)
}

func (d Date) String() string {
	return d.Key()
}

// Long renders the date as "January 2, 2006".
func (d Date) Long() string {
	return d.Format(LayoutUS)
}

// AddDays returns the date n days later.
func (d Date) AddDays(n int) Date {
	return DateOf(d.AddDate(0, 0, n))
}

// Before reports whether d is an earlier day than o.
func (d Date) Before(o Date) bool {
	return d.Time.Before(o.Time)
}

// After reports whether d is a later day than o.
func (d Date) After(o Date) bool {
	return d.Time.After(o.Time)
}

// Equal reports whether d and o are the same day.
func (d Date) Equal(o Date) bool {
	return d.Key() == o.Key()
}

// FirstOfMonth returns the first day of d's month.
func (d Date) FirstOfMonth() Date {
	return NewDate(d.Year(), d.Month(), 1)
}

// LastOfMonth returns the last day of d's month.
func (d Date) LastOfMonth() Date {
	return NewDate(d.Year(), d.Month()+1, 0)
}

// SameMonth reports whether d and o fall in the same month of the same year.
func (d Date) SameMonth(o Date) bool {
	return d.Year() == o.Year() && d.Month() == o.Month()
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return json.Marshal(d.Key())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	parsed, err := ParseDate(v)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
