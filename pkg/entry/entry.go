package entry

import (
	"fmt"
	"sort"

	"tableflip.dev/moodcal/pkg/mood"
)

// Record is the mood recorded for a single day.
type Record struct {
	Date Date      `json:"date"`
	Mood mood.Mood `json:"mood"`
}

func New(d Date, m mood.Mood) Record {
	return Record{Date: d, Mood: m}
}

func (r Record) Row() (string, string, string) {
	return r.Date.Key(), r.Mood.Glyph().Symbol, r.Mood.Title()
}

func (r Record) String() string {
	return fmt.Sprintf("%s %s  %s", r.Date.Key(), r.Mood.Glyph().Symbol, r.Mood.Title())
}

// Sort orders records by ascending date.
func Sort(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})
}
