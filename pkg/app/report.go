package app

import (
	"context"

	"tableflip.dev/moodcal/pkg/entry"
)

// ReportSection groups the records of one month.
type ReportSection struct {
	Month   string         `json:"month"`
	Records []entry.Record `json:"records"`
}

// ReportResult lists recorded moods between two days, inclusive.
type ReportResult struct {
	Since    entry.Date      `json:"since"`
	Until    entry.Date      `json:"until"`
	Sections []ReportSection `json:"sections"`
	Total    int             `json:"total"`
}

// Report returns records between the provided bounds grouped by month. A zero
// bound is open.
func (s *Service) Report(ctx context.Context, since, until entry.Date) (ReportResult, error) {
	if !since.IsZero() && !until.IsZero() && since.After(until) {
		since, until = until, since
	}
	all, err := s.Records(ctx)
	if err != nil {
		return ReportResult{}, err
	}

	res := ReportResult{Since: since, Until: until}
	for _, r := range all {
		if !since.IsZero() && r.Date.Before(since) {
			continue
		}
		if !until.IsZero() && r.Date.After(until) {
			continue
		}
		month := r.Date.Format("January 2006")
		if n := len(res.Sections); n == 0 || res.Sections[n-1].Month != month {
			res.Sections = append(res.Sections, ReportSection{Month: month})
		}
		sec := &res.Sections[len(res.Sections)-1]
		sec.Records = append(sec.Records, r)
		res.Total++
	}
	return res, nil
}
