package store

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/moodcal/pkg/entry"
	"tableflip.dev/moodcal/pkg/mood"
)

func TestDiskvSlotWatchEmitsSlotChanges(t *testing.T) {
	base := t.TempDir()
	slot, err := NewDiskvSlot(base, SlotName)
	if err != nil {
		t.Fatalf("open slot: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := slot.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow watcher goroutine to subscribe before writing.
	time.Sleep(50 * time.Millisecond)

	// A second store on the same directory stands in for another process.
	other := NewMoods(slot, nil)
	other.Load()
	if err := other.Set(entry.NewDate(2025, time.April, 10), mood.Happy); err != nil {
		t.Fatalf("set: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt, ok := <-ch:
			if !ok {
				t.Fatal("watch channel closed early")
			}
			if evt.Slot != SlotName {
				t.Fatalf("expected slot %q, got %q", SlotName, evt.Slot)
			}
			return
		case <-deadline:
			t.Fatal("timed out waiting for slot change event")
		}
	}
}

func TestDiskvSlotWatchClosesOnCancel(t *testing.T) {
	slot, err := NewDiskvSlot(t.TempDir(), SlotName)
	if err != nil {
		t.Fatalf("open slot: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	ch, err := slot.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	cancel()

	select {
	case _, ok := <-ch:
		if ok {
			// Drain any stray event and wait for close.
			for range ch {
			}
		}
	case <-time.After(2 * time.Second):
		t.Fatal("watch channel not closed after cancel")
	}
}
