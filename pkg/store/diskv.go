package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"
)

// DiskvSlot stores the slot as a single file under BasePath.
type DiskvSlot struct {
	d        *diskv.Diskv
	basePath string
	key      string
}

// NewDiskvSlot opens (creating if needed) a diskv-backed slot named key.
func NewDiskvSlot(basePath, key string) (*DiskvSlot, error) {
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return &DiskvSlot{
		d: diskv.New(diskv.Options{
			BasePath: basePath,
			// Writes land in TempDir first and are renamed into place.
			TempDir:   filepath.Join(basePath, ".tmp"),
			Transform: flatTransform,
			// No read cache: another process may replace the file under us.
			CacheSizeMax: 0,
		}),
		basePath: basePath,
		key:      key,
	}, nil
}

func flatTransform(string) []string {
	return []string{}
}

func (s *DiskvSlot) Read() ([]byte, error) {
	val, err := s.d.Read(s.key)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNoSlot
		}
		return nil, fmt.Errorf("store: read %s: %w", s.key, err)
	}
	return val, nil
}

func (s *DiskvSlot) Write(data []byte) error {
	if err := s.d.Write(s.key, data); err != nil {
		return fmt.Errorf("store: write %s: %w", s.key, err)
	}
	return nil
}

// Path is the file backing the slot.
func (s *DiskvSlot) Path() string {
	return filepath.Join(s.basePath, s.key)
}
