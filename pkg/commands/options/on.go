package options

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/moodcal/pkg/entry"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
)

// OnOptions
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2025-4-10", --on="4/10" or --on=today.`)
}

// GetOn parses the --on value. A zero Date means the flag was not set. A
// month/day value is taken in the year of now.
func (o *OnOptions) GetOn(now time.Time) (entry.Date, error) {
	return ParseDay(o.OnString, now)
}

// ParseDay accepts YYYY-M-D, M/D (in now's year), "today" or "yesterday".
func ParseDay(s string, now time.Time) (entry.Date, error) {
	switch s {
	case "":
		return entry.Date{}, nil
	case "today":
		return entry.DateOf(now), nil
	case "yesterday":
		return entry.DateOf(now).AddDays(-1), nil
	}
	if t, err := time.Parse(layoutISO, s); err == nil {
		return entry.DateOf(t), nil
	}
	t, err := time.Parse(layoutISOShort, s)
	if err != nil {
		return entry.Date{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD or M/D", s)
	}
	return entry.NewDate(now.Year(), t.Month(), t.Day()), nil
}
