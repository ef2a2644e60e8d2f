package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/moodcal/pkg/calendar"
	"tableflip.dev/moodcal/pkg/config"
	"tableflip.dev/moodcal/pkg/entry"
	"tableflip.dev/moodcal/pkg/flags"
	"tableflip.dev/moodcal/pkg/logging"
	"tableflip.dev/moodcal/pkg/mood"
	"tableflip.dev/moodcal/pkg/picker"
	"tableflip.dev/moodcal/pkg/store"
	"tableflip.dev/moodcal/pkg/summary"
	"tableflip.dev/moodcal/pkg/window"
)

// Service provides high-level operations on the mood calendar.
// It wraps the mood store and entry window so UIs and CLIs can share logic.
type Service struct {
	Moods  *store.Moods
	Window window.Window
	Flags  flags.Provider
	Logger *zap.Logger
}

var (
	// ErrIneligible is returned when recording a mood outside the window.
	ErrIneligible = errors.New("app: date is outside the entry window")

	errNoStore = errors.New("app: no mood store configured")
)

// New wires a Service from configuration.
func New(cfg *config.Config, log *zap.Logger) (*Service, error) {
	log = logging.OrNop(log)
	w, err := cfg.Window()
	if err != nil {
		return nil, err
	}
	fp, err := cfg.Flags()
	if err != nil {
		return nil, err
	}
	moods, err := store.Open(cfg, log)
	if err != nil {
		return nil, err
	}
	log.Debug("service ready",
		zap.String("backend", cfg.Backend()),
		zap.String("path", cfg.BasePath()),
		zap.Stringer("window", w))
	return &Service{Moods: moods, Window: w, Flags: fp, Logger: log}, nil
}

// Close releases the store.
func (s *Service) Close() error {
	if s.Moods == nil {
		return nil
	}
	return s.Moods.Close()
}

// InitialMonth is the month a calendar opens on: now's month, clamped to the
// window.
func (s *Service) InitialMonth(now time.Time) time.Time {
	return s.Window.ClampMonth(now)
}

// Nav returns month navigation bounded by the window, starting at start.
func (s *Service) Nav(start time.Time) *calendar.Nav {
	return calendar.NewNav(s.Window, start)
}

// Month builds the calendar grid for the month containing month.
func (s *Service) Month(ctx context.Context, month time.Time) (calendar.Month, error) {
	if s.Moods == nil {
		return calendar.Month{}, errNoStore
	}
	return calendar.Build(month, s.Moods, s.Window, s.Flags), nil
}

// Mood returns the mood recorded for d.
func (s *Service) Mood(ctx context.Context, d entry.Date) (mood.Mood, bool, error) {
	if s.Moods == nil {
		return 0, false, errNoStore
	}
	m, ok := s.Moods.Get(d)
	return m, ok, nil
}

// Eligible reports whether d accepts a mood.
func (s *Service) Eligible(d entry.Date) bool {
	return s.Window.IsEligible(d)
}

// Record stores m for d. Days outside the window are rejected with
// ErrIneligible.
func (s *Service) Record(ctx context.Context, d entry.Date, m mood.Mood) (entry.Record, error) {
	if s.Moods == nil {
		return entry.Record{}, errNoStore
	}
	if err := ctx.Err(); err != nil {
		return entry.Record{}, err
	}
	if !s.Window.IsEligible(d) {
		return entry.Record{}, fmt.Errorf("%w: %s", ErrIneligible, d)
	}
	if err := s.Moods.Set(d, m); err != nil {
		return entry.Record{}, err
	}
	logging.OrNop(s.Logger).Info("mood recorded", zap.String("date", d.Key()), zap.Stringer("mood", m))
	return entry.New(d, m), nil
}

// Records lists every recorded mood in date order.
func (s *Service) Records(ctx context.Context) ([]entry.Record, error) {
	if s.Moods == nil {
		return nil, errNoStore
	}
	return s.Moods.Records(), nil
}

// Summary counts the moods of the month containing month.
func (s *Service) Summary(ctx context.Context, month time.Time) (summary.Summary, error) {
	m, err := s.Month(ctx, month)
	if err != nil {
		return summary.Summary{}, err
	}
	return summary.FromMonth(m), nil
}

// Subscribe forwards store changes to fn until the returned func is called.
func (s *Service) Subscribe(fn func(store.Change)) (func(), error) {
	if s.Moods == nil {
		return nil, errNoStore
	}
	return s.Moods.Subscribe(fn), nil
}

// Watch reloads the store whenever the slot changes outside this process,
// until ctx is done. Slots that cannot be watched return store.ErrNotWatchable.
func (s *Service) Watch(ctx context.Context) error {
	if s.Moods == nil {
		return errNoStore
	}
	events, err := s.Moods.Watch(ctx)
	if err != nil {
		return err
	}
	log := logging.OrNop(s.Logger)
	go func() {
		for ev := range events {
			if s.Moods.Reload() {
				log.Debug("slot changed, reloaded", zap.String("slot", ev.Slot))
			}
		}
	}()
	return nil
}

// Picker returns a mood entry flow bound to this service's store and window.
func (s *Service) Picker(n picker.Notifier) *picker.Flow {
	return picker.New(s.Moods, s.Window, n)
}
