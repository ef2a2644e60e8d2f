// Package summary prints the per-mood breakdown of a month.
package summary

import (
	"context"
	"errors"
	"io"
	"time"

	"tableflip.dev/moodcal/pkg/app"
	"tableflip.dev/moodcal/pkg/printers"
)

type Summary struct {
	Service *app.Service
	// Month is any day of the month to count; zero uses the month a
	// calendar opens on.
	Month time.Time
	Now   func() time.Time
	JSON  bool
	Out   io.Writer
}

func (s *Summary) Do(ctx context.Context) error {
	if s.Service == nil {
		return errors.New("can not summarize, no service")
	}
	month := s.Month
	if month.IsZero() {
		now := time.Now
		if s.Now != nil {
			now = s.Now
		}
		month = s.Service.InitialMonth(now())
	}

	sum, err := s.Service.Summary(ctx, month)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{Out: s.Out}
	if s.JSON {
		return pp.JSON(sum)
	}
	pp.NewLine()
	pp.Summary(sum)
	return nil
}
