package options

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/moodcal/pkg/entry"
)

// MonthOptions
type MonthOptions struct {
	MonthString string
}

func AddMonthArgs(cmd *cobra.Command, o *MonthOptions) {
	cmd.Flags().StringVarP(&o.MonthString, "month", "m", "",
		`Month to show as YYYY-MM. Defaults to the current month, clamped to the entry window.`)
}

// GetMonth returns the first day of the selected month, or the zero time when
// no month was given.
func (o *MonthOptions) GetMonth() (time.Time, error) {
	if o.MonthString == "" {
		return time.Time{}, nil
	}
	d, err := entry.ParseMonth(o.MonthString)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q, expected YYYY-MM", o.MonthString)
	}
	return d.Time, nil
}
