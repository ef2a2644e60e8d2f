package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/moodcal/pkg/entry"
	"tableflip.dev/moodcal/pkg/timeutil"
)

// RangeOptions bound a listing of recorded moods.
type RangeOptions struct {
	Since string
	Until string
	Last  string
}

func AddRangeArgs(cmd *cobra.Command, o *RangeOptions) {
	cmd.Flags().StringVar(&o.Since, "since", "", "First day to list, inclusive.")
	cmd.Flags().StringVar(&o.Until, "until", "", "Last day to list, inclusive.")
	cmd.Flags().StringVar(&o.Last, "last", "", `Look-back ending today, for example 3d, 2w or 1mo.`)
}

// Bounds resolves the flags into listing bounds and a label for the window.
// --last wins over --since; zero bounds are open.
func (o *RangeOptions) Bounds(now time.Time) (since, until entry.Date, label string, err error) {
	if until, err = ParseDay(o.Until, now); err != nil {
		return
	}
	if o.Last != "" {
		span, l, perr := timeutil.ParseSpan(o.Last)
		if perr != nil {
			err = perr
			return
		}
		if until.IsZero() {
			until = entry.DateOf(now)
		}
		return span.Since(until), until, "last " + l, nil
	}
	since, err = ParseDay(o.Since, now)
	return
}
