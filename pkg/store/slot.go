package store

import (
	"errors"
	"sync"
)

// ErrNoSlot is returned by Slot.Read when nothing has been stored yet.
var ErrNoSlot = errors.New("store: slot is empty")

// Slot is a single named value with whole-value replace semantics.
type Slot interface {
	Read() ([]byte, error)
	Write(data []byte) error
}

// MemorySlot keeps the slot in process memory.
type MemorySlot struct {
	mu   sync.Mutex
	data []byte
	set  bool
}

// NewMemorySlot returns an empty in-memory slot. When seed is non-nil the slot
// starts out holding it.
func NewMemorySlot(seed []byte) *MemorySlot {
	s := &MemorySlot{}
	if seed != nil {
		s.data = append([]byte(nil), seed...)
		s.set = true
	}
	return s
}

func (s *MemorySlot) Read() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.set {
		return nil, ErrNoSlot
	}
	return append([]byte(nil), s.data...), nil
}

func (s *MemorySlot) Write(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = append([]byte(nil), data...)
	s.set = true
	return nil
}
