package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"tableflip.dev/moodcal/pkg/entry"
)

const (
	// DefaultSpan is the fallback look-back used when none is provided.
	DefaultSpan = "1w"
)

// Span is a look-back measured in calendar months and days.
type Span struct {
	Months int
	Days   int
}

var (
	spanPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	unitMap     = map[string]Span{
		"d":      {Days: 1},
		"day":    {Days: 1},
		"days":   {Days: 1},
		"w":      {Days: 7},
		"wk":     {Days: 7},
		"wks":    {Days: 7},
		"week":   {Days: 7},
		"weeks":  {Days: 7},
		"mo":     {Months: 1},
		"mos":    {Months: 1},
		"month":  {Months: 1},
		"months": {Months: 1},
	}
)

// ParseSpan parses a human-friendly look-back such as "3d", "2w" or "1mo2w"
// and returns it with a canonical label. Empty input yields one week.
func ParseSpan(input string) (Span, string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		trimmed = DefaultSpan
	}

	remaining := strings.ToLower(trimmed)
	var total Span
	for len(remaining) > 0 {
		matches := spanPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return Span{}, "", fmt.Errorf("invalid span segment %q", strings.TrimSpace(remaining))
		}
		value, err := strconv.Atoi(matches[1])
		if err != nil {
			return Span{}, "", fmt.Errorf("invalid span value %q: %w", matches[1], err)
		}
		unit, ok := unitMap[matches[2]]
		if !ok {
			return Span{}, "", fmt.Errorf("unsupported span unit %q", matches[2])
		}
		total.Months += value * unit.Months
		total.Days += value * unit.Days

		remaining = remaining[len(matches[0]):]
	}

	if total.Months <= 0 && total.Days <= 0 {
		return Span{}, "", fmt.Errorf("span must be greater than zero")
	}
	return total, total.String(), nil
}

// String renders the span using mo/w/d tokens.
func (s Span) String() string {
	var parts []string
	if s.Months > 0 {
		parts = append(parts, fmt.Sprintf("%dmo", s.Months))
	}
	if w := s.Days / 7; w > 0 {
		parts = append(parts, fmt.Sprintf("%dw", w))
	}
	if d := s.Days % 7; d > 0 {
		parts = append(parts, fmt.Sprintf("%dd", d))
	}
	if len(parts) == 0 {
		return "0d"
	}
	return strings.Join(parts, "")
}

// Since returns the first day of the span ending on until, inclusive.
func (s Span) Since(until entry.Date) entry.Date {
	t := until.AddDate(0, -s.Months, -s.Days+1)
	return entry.DateOf(t)
}
