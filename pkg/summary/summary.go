// Package summary counts recorded moods over a month.
package summary

import (
	"time"

	"tableflip.dev/moodcal/pkg/calendar"
	"tableflip.dev/moodcal/pkg/mood"
)

// Bucket is the number of days with a given mood. NoData buckets count days
// without a record.
type Bucket struct {
	Name    string  `json:"name"`
	Glyph   string  `json:"glyph"`
	Days    int     `json:"days"`
	Percent float64 `json:"percent"`
	NoData  bool    `json:"noData,omitempty"`
}

// Summary is the per-mood breakdown of one month.
type Summary struct {
	Month   string   `json:"month"`
	Days    int      `json:"days"`
	Buckets []Bucket `json:"buckets"`
}

// Of counts moods for every day of month's month.
func Of(month time.Time, moods calendar.Reader) Summary {
	grid := calendar.Build(month, moods, nil, nil)
	return FromMonth(grid)
}

// FromMonth counts moods in an already built grid.
func FromMonth(m calendar.Month) Summary {
	counts := make(map[mood.Mood]int, len(mood.All()))
	none := 0
	days := m.Days()
	for _, c := range days {
		if v, ok := c.Recorded(); ok {
			counts[v]++
			continue
		}
		none++
	}

	s := Summary{Month: m.First.Format("January 2006"), Days: len(days)}
	for _, v := range mood.All() {
		s.Buckets = append(s.Buckets, Bucket{
			Name:    v.Title(),
			Glyph:   v.Glyph().Symbol,
			Days:    counts[v],
			Percent: percent(counts[v], len(days)),
		})
	}
	s.Buckets = append(s.Buckets, Bucket{
		Name:    "No Data",
		Glyph:   mood.NoData.Symbol,
		Days:    none,
		Percent: percent(none, len(days)),
		NoData:  true,
	})
	return s
}

// Recorded is the number of days with any mood.
func (s Summary) Recorded() int {
	n := 0
	for _, b := range s.Buckets {
		if !b.NoData {
			n += b.Days
		}
	}
	return n
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) * 100 / float64(total)
}
