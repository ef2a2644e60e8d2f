package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Backend names accepted by Open.
const (
	BackendDiskv  = "diskv"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

const sqliteFile = "moodcal.sqlite"

// Config tells Open where and how to persist the collection.
type Config interface {
	BasePath() string
	Backend() string
}

// Open creates the configured slot, wraps it in a Moods store and loads it.
func Open(cfg Config, log *zap.Logger) (*Moods, error) {
	slot, err := OpenSlot(cfg)
	if err != nil {
		return nil, err
	}
	m := NewMoods(slot, log)
	m.Load()
	return m, nil
}

// OpenSlot creates the slot for the configured backend.
func OpenSlot(cfg Config) (Slot, error) {
	switch b := strings.ToLower(strings.TrimSpace(cfg.Backend())); b {
	case "", BackendDiskv:
		return NewDiskvSlot(cfg.BasePath(), SlotName)
	case BackendSQLite:
		if err := os.MkdirAll(cfg.BasePath(), 0o755); err != nil {
			return nil, fmt.Errorf("store: ensure base path: %w", err)
		}
		return NewSQLiteSlot(filepath.Join(cfg.BasePath(), sqliteFile), SlotName)
	case BackendMemory:
		return NewMemorySlot(nil), nil
	default:
		return nil, fmt.Errorf("store: unknown backend %q", b)
	}
}
