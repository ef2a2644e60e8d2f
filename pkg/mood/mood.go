// Package mood defines the fixed set of moods that can be recorded for a day.
package mood

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Mood is a recorded emotional state. There is no unset member; a day without
// a record simply has no mood.
type Mood int

const (
	Happy Mood = iota
	Neutral
	Sad
	Angry
)

// ErrUnknown is returned when a mood name cannot be parsed.
var ErrUnknown = errors.New("unknown mood")

// All returns every mood in display order.
func All() []Mood {
	return []Mood{Happy, Neutral, Sad, Angry}
}

var names = map[Mood]string{
	Happy:   "happy",
	Neutral: "neutral",
	Sad:     "sad",
	Angry:   "angry",
}

// Valid reports whether m is one of the known moods.
func (m Mood) Valid() bool {
	_, ok := names[m]
	return ok
}

// String returns the wire name (happy, neutral, sad, angry).
func (m Mood) String() string {
	if n, ok := names[m]; ok {
		return n
	}
	return fmt.Sprintf("mood(%d)", int(m))
}

// Title returns the capitalized display name.
func (m Mood) Title() string {
	n := m.String()
	if !m.Valid() {
		return n
	}
	return strings.ToUpper(n[:1]) + n[1:]
}

// Parse converts a wire name, display name or legend key into a Mood.
func Parse(s string) (Mood, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	for _, m := range All() {
		if v == names[m] || v == m.Glyph().Key {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknown, s)
}

// Step moves through All() by delta, wrapping at either end.
func (m Mood) Step(delta int) Mood {
	all := All()
	n := len(all)
	idx := (int(m) + delta) % n
	if idx < 0 {
		idx += n
	}
	return all[idx]
}

func (m Mood) MarshalJSON() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknown, int(m))
	}
	return json.Marshal(m.String())
}

func (m *Mood) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, err := Parse(s)
	if err != nil {
		return err
	}
	*m = v
	return nil
}
