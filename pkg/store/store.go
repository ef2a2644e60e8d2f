// Package store persists the mood recorded for each day.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	"go.uber.org/zap"

	"tableflip.dev/moodcal/pkg/entry"
	"tableflip.dev/moodcal/pkg/logging"
	"tableflip.dev/moodcal/pkg/mood"
)

// SlotName is the name of the slot holding the mood collection.
const SlotName = "moods"

// ChangeType describes why subscribers are being notified.
type ChangeType int

const (
	// ChangeSet follows a successful Set.
	ChangeSet ChangeType = iota
	// ChangeReload follows a reload that changed the collection.
	ChangeReload
)

// Change is delivered to subscribers after the collection changed.
type Change struct {
	Type ChangeType
	Date entry.Date
	Mood mood.Mood
}

// Moods owns the date → mood collection. Every Set persists the whole
// collection to the slot before returning.
type Moods struct {
	mu    sync.Mutex
	slot  Slot
	log   *zap.Logger
	moods map[string]mood.Mood
	last  []byte

	subMu   sync.Mutex
	subs    map[int]func(Change)
	nextSub int
}

// NewMoods returns a store bound to slot. Call Load before use.
func NewMoods(slot Slot, log *zap.Logger) *Moods {
	return &Moods{
		slot:  slot,
		log:   logging.OrNop(log),
		moods: make(map[string]mood.Mood),
		subs:  make(map[int]func(Change)),
	}
}

// Load reads the slot and replaces the in-memory collection. A missing slot
// or an unreadable payload yields an empty collection.
func (s *Moods) Load() map[string]mood.Mood {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.moods, s.last = s.read()
	return s.snapshot()
}

// Reload re-reads the slot and notifies subscribers when the stored payload
// differs from what this store last saw.
func (s *Moods) Reload() bool {
	s.mu.Lock()
	data, err := s.slot.Read()
	if err == nil && bytes.Equal(data, s.last) {
		s.mu.Unlock()
		return false
	}
	s.moods, s.last = s.decodeOrEmpty(data, err)
	s.mu.Unlock()

	s.log.Debug("mood collection reloaded")
	s.notify(Change{Type: ChangeReload})
	return true
}

// Close releases the slot when it holds resources.
func (s *Moods) Close() error {
	if c, ok := s.slot.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (s *Moods) read() (map[string]mood.Mood, []byte) {
	data, err := s.slot.Read()
	return s.decodeOrEmpty(data, err)
}

func (s *Moods) decodeOrEmpty(data []byte, err error) (map[string]mood.Mood, []byte) {
	if err != nil {
		if !errors.Is(err, ErrNoSlot) {
			s.log.Warn("mood slot unreadable, starting empty", zap.Error(err))
		}
		return make(map[string]mood.Mood), nil
	}
	moods, err := Decode(data)
	if err != nil {
		s.log.Warn("mood payload corrupt, starting empty", zap.Error(err))
		return make(map[string]mood.Mood), data
	}
	return moods, data
}

// Get returns the mood recorded for d.
func (s *Moods) Get(d entry.Date) (mood.Mood, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.moods[d.Key()]
	return m, ok
}

// Set records m for d, replacing any existing record for that day, and
// persists the collection. On a failed write the previous state is kept.
func (s *Moods) Set(d entry.Date, m mood.Mood) error {
	if d.IsZero() {
		return errors.New("store: date required")
	}
	if !m.Valid() {
		return fmt.Errorf("store: %w: %d", mood.ErrUnknown, int(m))
	}

	s.mu.Lock()
	key := d.Key()
	prev, had := s.moods[key]
	s.moods[key] = m

	data, err := Encode(s.moods)
	if err == nil {
		err = s.slot.Write(data)
	}
	if err != nil {
		if had {
			s.moods[key] = prev
		} else {
			delete(s.moods, key)
		}
		s.mu.Unlock()
		return fmt.Errorf("store: persist moods: %w", err)
	}
	s.last = data
	s.mu.Unlock()

	s.notify(Change{Type: ChangeSet, Date: d, Mood: m})
	return nil
}

// Records returns every record in ascending date order.
func (s *Moods) Records() []entry.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return toRecords(s.moods)
}

// Subscribe registers fn to be called after every change. The returned
// function removes the subscription.
func (s *Moods) Subscribe(fn func(Change)) func() {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

func (s *Moods) notify(c Change) {
	s.subMu.Lock()
	ids := make([]int, 0, len(s.subs))
	for id := range s.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	fns := make([]func(Change), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, s.subs[id])
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(c)
	}
}

func (s *Moods) snapshot() map[string]mood.Mood {
	out := make(map[string]mood.Mood, len(s.moods))
	for k, v := range s.moods {
		out[k] = v
	}
	return out
}

// Encode serializes the collection as a JSON array sorted by date.
func Encode(moods map[string]mood.Mood) ([]byte, error) {
	return json.Marshal(toRecords(moods))
}

// Decode parses a payload written by Encode. Later records for the same day
// replace earlier ones.
func Decode(data []byte) (map[string]mood.Mood, error) {
	out := make(map[string]mood.Mood)
	if len(bytes.TrimSpace(data)) == 0 {
		return out, nil
	}
	var records []struct {
		Date *entry.Date `json:"date"`
		Mood *mood.Mood  `json:"mood"`
	}
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	for i, r := range records {
		if r.Date == nil || r.Mood == nil {
			return nil, fmt.Errorf("record %d: date and mood are required", i)
		}
		out[r.Date.Key()] = *r.Mood
	}
	return out, nil
}

func toRecords(moods map[string]mood.Mood) []entry.Record {
	records := make([]entry.Record, 0, len(moods))
	for key, m := range moods {
		d, err := entry.ParseDate(key)
		if err != nil {
			continue
		}
		records = append(records, entry.New(d, m))
	}
	entry.Sort(records)
	return records
}
