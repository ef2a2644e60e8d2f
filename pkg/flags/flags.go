// Package flags supplies the journal and event markers shown on calendar days.
// The markers come from outside the mood core; the providers here stand in
// for a real journal or events source.
package flags

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"tableflip.dev/moodcal/pkg/entry"
)

// Flags are the per-day markers.
type Flags struct {
	HasJournal bool `json:"hasJournal"`
	HasEvent   bool `json:"hasEvent"`
}

// Provider returns the markers for a day.
type Provider interface {
	Flags(d entry.Date) Flags
}

// Func adapts a function to a Provider.
type Func func(d entry.Date) Flags

func (f Func) Flags(d entry.Date) Flags {
	return f(d)
}

// None never reports a marker.
type None struct{}

func (None) Flags(entry.Date) Flags {
	return Flags{}
}

// Random samples markers with fixed probabilities. A day keeps the flags it
// was first given for the lifetime of the provider so re-rendering is stable.
type Random struct {
	JournalChance float64
	EventChance   float64

	mu    sync.Mutex
	rnd   *rand.Rand
	cache map[string]Flags
}

// NewRandom returns a sampler seeded with seed.
func NewRandom(seed int64) *Random {
	return &Random{
		JournalChance: 0.4,
		EventChance:   0.3,
		rnd:           rand.New(rand.NewSource(seed)),
		cache:         make(map[string]Flags),
	}
}

func (r *Random) Flags(d entry.Date) Flags {
	r.mu.Lock()
	defer r.mu.Unlock()
	if f, ok := r.cache[d.Key()]; ok {
		return f
	}
	f := Flags{
		HasJournal: r.rnd.Float64() < r.JournalChance,
		HasEvent:   r.rnd.Float64() < r.EventChance,
	}
	r.cache[d.Key()] = f
	return f
}

// Static reports markers for a fixed set of days.
type Static struct {
	Journals map[string]bool
	Events   map[string]bool
}

// NewStatic builds a provider from journal and event day keys (YYYY-MM-DD).
func NewStatic(journals, events []string) (*Static, error) {
	s := &Static{Journals: make(map[string]bool), Events: make(map[string]bool)}
	for _, k := range journals {
		d, err := entry.ParseDate(k)
		if err != nil {
			return nil, fmt.Errorf("flags: journal: %w", err)
		}
		s.Journals[d.Key()] = true
	}
	for _, k := range events {
		d, err := entry.ParseDate(k)
		if err != nil {
			return nil, fmt.Errorf("flags: event: %w", err)
		}
		s.Events[d.Key()] = true
	}
	return s, nil
}

func (s *Static) Flags(d entry.Date) Flags {
	return Flags{HasJournal: s.Journals[d.Key()], HasEvent: s.Events[d.Key()]}
}

// sampleJournals and sampleEvents mirror the demo journal list and upcoming
// events timeline of the dashboard.
var (
	sampleJournals = []string{"2025-03-20", "2025-03-25", "2025-03-28", "2025-04-02", "2025-04-05", "2025-04-07"}
	sampleEvents   = []string{"2025-04-01", "2025-04-02", "2025-04-05", "2025-04-07", "2025-04-10"}
)

// Sample returns the demo journal/event days.
func Sample() *Static {
	s, err := NewStatic(sampleJournals, sampleEvents)
	if err != nil {
		panic(err)
	}
	return s
}

// Source names accepted by FromName.
const (
	SourceRandom = "random"
	SourceSample = "sample"
	SourceNone   = "none"
)

// FromName returns the provider configured by name.
func FromName(name string, seed int64) (Provider, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", SourceRandom:
		return NewRandom(seed), nil
	case SourceSample:
		return Sample(), nil
	case SourceNone:
		return None{}, nil
	default:
		return nil, fmt.Errorf("flags: unknown source %q", name)
	}
}
