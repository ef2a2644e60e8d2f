// Package picker implements the modal flow used to record a mood for a day.
//
// The flow is Closed until an eligible day is activated. While Selecting, the
// pending mood may change freely; nothing is written until Commit. Commit and
// Cancel both return the flow to Closed.
package picker

import (
	"fmt"

	"tableflip.dev/moodcal/pkg/entry"
	"tableflip.dev/moodcal/pkg/mood"
	"tableflip.dev/moodcal/pkg/window"
)

// State of the flow.
type State int

const (
	Closed State = iota
	Selecting
)

func (s State) String() string {
	switch s {
	case Selecting:
		return "selecting"
	default:
		return "closed"
	}
}

// Outcome reports what a Commit or Cancel did.
type Outcome int

const (
	// Ignored means the call had no effect.
	Ignored Outcome = iota
	Committed
	Cancelled
)

// Store is the mood store the flow reads from and commits to.
type Store interface {
	Get(d entry.Date) (mood.Mood, bool)
	Set(d entry.Date, m mood.Mood) error
}

// Flow is the mood entry state machine. It is not safe for concurrent use.
type Flow struct {
	store    Store
	policy   window.Policy
	notifier Notifier

	state   State
	date    entry.Date
	pending *mood.Mood
}

// New returns a closed flow. A nil notifier discards notices.
func New(store Store, policy window.Policy, notifier Notifier) *Flow {
	if notifier == nil {
		notifier = Discard
	}
	return &Flow{store: store, policy: policy, notifier: notifier}
}

// State returns the current state.
func (f *Flow) State() State {
	return f.state
}

// Date returns the day being edited; zero when Closed.
func (f *Flow) Date() entry.Date {
	return f.date
}

// Pending returns the mood chosen so far.
func (f *Flow) Pending() (mood.Mood, bool) {
	if f.pending == nil {
		return 0, false
	}
	return *f.pending, true
}

// Activate opens the flow for d. An ineligible day leaves the flow untouched
// and sends an informational notice instead. Opening a new day while another
// is open cancels the previous one first.
func (f *Flow) Activate(d entry.Date) bool {
	if f.policy != nil && !f.policy.IsEligible(d) {
		f.notifier.Notify(Notice{
			Kind:    Info,
			Title:   "Date unavailable",
			Message: fmt.Sprintf("%s is outside the range open for mood entry.", d.Long()),
		})
		return false
	}
	if f.state == Selecting {
		f.Cancel()
	}

	f.state = Selecting
	f.date = d
	f.pending = nil
	if m, ok := f.store.Get(d); ok {
		f.pending = &m
	}
	return true
}

// Choose sets the pending mood. It has no effect unless Selecting.
func (f *Flow) Choose(m mood.Mood) bool {
	if f.state != Selecting || !m.Valid() {
		return false
	}
	f.pending = &m
	return true
}

// Step moves the pending mood through the fixed order. With nothing chosen
// yet, a forward step picks the first mood and a backward step the last.
func (f *Flow) Step(delta int) bool {
	if f.state != Selecting || delta == 0 {
		return false
	}
	if f.pending == nil {
		all := mood.All()
		if delta > 0 {
			return f.Choose(all[0].Step(delta - 1))
		}
		return f.Choose(all[len(all)-1].Step(delta + 1))
	}
	return f.Choose(f.pending.Step(delta))
}

// CanCommit reports whether Commit would write.
func (f *Flow) CanCommit() bool {
	return f.state == Selecting && f.pending != nil
}

// Commit writes the pending mood and closes the flow. Without a pending mood
// it does nothing. If the store rejects the write the flow stays open.
func (f *Flow) Commit() (Outcome, error) {
	if !f.CanCommit() {
		return Ignored, nil
	}
	d, m := f.date, *f.pending
	if err := f.store.Set(d, m); err != nil {
		f.notifier.Notify(Notice{
			Kind:    Error,
			Title:   "Mood not saved",
			Message: err.Error(),
		})
		return Ignored, err
	}
	f.notifier.Notify(Notice{
		Kind:    Success,
		Title:   "Mood recorded",
		Message: fmt.Sprintf("%s: %s", d.Long(), m.Title()),
	})
	f.reset()
	return Committed, nil
}

// Cancel discards the pending mood and closes the flow.
func (f *Flow) Cancel() Outcome {
	if f.state != Selecting {
		return Ignored
	}
	f.reset()
	return Cancelled
}

func (f *Flow) reset() {
	f.state = Closed
	f.date = entry.Date{}
	f.pending = nil
}
