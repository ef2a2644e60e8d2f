// Package mcp provides the Model Context Protocol server integration for moodcal.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tableflip.dev/moodcal/pkg/app"
	"tableflip.dev/moodcal/pkg/calendar"
	"tableflip.dev/moodcal/pkg/entry"
	"tableflip.dev/moodcal/pkg/mood"
	"tableflip.dev/moodcal/pkg/summary"
)

// Service adapts the calendar service to string arguments from MCP clients.
type Service struct {
	App *app.Service
	// Now defaults to time.Now.
	Now func() time.Time
}

// MoodDTO is a transport-friendly view of one day's mood.
type MoodDTO struct {
	Date     string `json:"date"`
	Weekday  string `json:"weekday"`
	Recorded bool   `json:"recorded"`
	Mood     string `json:"mood,omitempty"`
	Glyph    string `json:"glyph,omitempty"`
	Eligible bool   `json:"eligible"`
}

// NewService builds a service wrapper around a.
func NewService(a *app.Service) *Service {
	return &Service{App: a}
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// month parses YYYY-MM; empty means the month a calendar opens on.
func (s *Service) month(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return s.App.InitialMonth(s.now()), nil
	}
	d, err := entry.ParseMonth(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q, expected YYYY-MM", raw)
	}
	return d.Time, nil
}

func parseDate(raw string) (entry.Date, error) {
	d, err := entry.ParseDate(strings.TrimSpace(raw))
	if err != nil {
		return entry.Date{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", raw)
	}
	return d, nil
}

func (s *Service) ready() error {
	if s.App == nil {
		return errors.New("calendar service is not configured")
	}
	return nil
}

// Calendar returns the grid for a month.
func (s *Service) Calendar(ctx context.Context, month string) (calendar.Month, error) {
	if err := s.ready(); err != nil {
		return calendar.Month{}, err
	}
	t, err := s.month(month)
	if err != nil {
		return calendar.Month{}, err
	}
	return s.App.Month(ctx, t)
}

// RecordMood stores a mood for a day inside the entry window.
func (s *Service) RecordMood(ctx context.Context, date, value string) (MoodDTO, error) {
	if err := s.ready(); err != nil {
		return MoodDTO{}, err
	}
	d, err := parseDate(date)
	if err != nil {
		return MoodDTO{}, err
	}
	m, err := mood.Parse(value)
	if err != nil {
		return MoodDTO{}, err
	}
	if _, err := s.App.Record(ctx, d, m); err != nil {
		return MoodDTO{}, err
	}
	return s.dto(d, &m), nil
}

// GetMood returns the mood recorded for a day, if any.
func (s *Service) GetMood(ctx context.Context, date string) (MoodDTO, error) {
	if err := s.ready(); err != nil {
		return MoodDTO{}, err
	}
	d, err := parseDate(date)
	if err != nil {
		return MoodDTO{}, err
	}
	m, ok, err := s.App.Mood(ctx, d)
	if err != nil {
		return MoodDTO{}, err
	}
	if !ok {
		return s.dto(d, nil), nil
	}
	return s.dto(d, &m), nil
}

// ListMoods returns recorded moods between optional YYYY-MM-DD bounds.
func (s *Service) ListMoods(ctx context.Context, since, until string) (app.ReportResult, error) {
	if err := s.ready(); err != nil {
		return app.ReportResult{}, err
	}
	var from, to entry.Date
	var err error
	if strings.TrimSpace(since) != "" {
		if from, err = parseDate(since); err != nil {
			return app.ReportResult{}, err
		}
	}
	if strings.TrimSpace(until) != "" {
		if to, err = parseDate(until); err != nil {
			return app.ReportResult{}, err
		}
	}
	return s.App.Report(ctx, from, to)
}

// Summary counts moods for a month.
func (s *Service) Summary(ctx context.Context, month string) (summary.Summary, error) {
	if err := s.ready(); err != nil {
		return summary.Summary{}, err
	}
	t, err := s.month(month)
	if err != nil {
		return summary.Summary{}, err
	}
	return s.App.Summary(ctx, t)
}

func (s *Service) dto(d entry.Date, m *mood.Mood) MoodDTO {
	out := MoodDTO{
		Date:     d.Key(),
		Weekday:  d.Weekday().String(),
		Eligible: s.App.Eligible(d),
	}
	if m != nil {
		out.Recorded = true
		out.Mood = m.String()
		out.Glyph = m.Glyph().Symbol
	}
	return out
}
