// Package calendar prints a month of the mood calendar on the command line.
package calendar

import (
	"context"
	"errors"
	"io"
	"time"

	"tableflip.dev/moodcal/pkg/app"
	"tableflip.dev/moodcal/pkg/entry"
	"tableflip.dev/moodcal/pkg/mood"
	"tableflip.dev/moodcal/pkg/printers"
)

// Calendar renders one month grid.
type Calendar struct {
	Service *app.Service
	// Month is any day of the month to show; zero opens on the current
	// month clamped to the entry window.
	Month time.Time
	// Now defaults to time.Now.
	Now     func() time.Time
	Legend  bool
	Summary bool
	JSON    bool
	Out     io.Writer
}

type calendarJSON struct {
	Month   any `json:"month"`
	Summary any `json:"summary,omitempty"`
}

func (c *Calendar) Do(ctx context.Context) error {
	if c.Service == nil {
		return errors.New("can not show calendar, no service")
	}
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	month := c.Month
	if month.IsZero() {
		month = c.Service.InitialMonth(now())
	}

	grid, err := c.Service.Month(ctx, month)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{Out: c.Out}

	if c.JSON {
		out := calendarJSON{Month: grid}
		if c.Summary {
			s, err := c.Service.Summary(ctx, month)
			if err != nil {
				return err
			}
			out.Summary = s
		}
		return pp.JSON(out)
	}

	pp.NewLine()
	pp.Calendar(grid, entry.DateOf(now()))
	if c.Legend {
		pp.Legend(mood.DefaultGlyphs())
		pp.NewLine()
	}
	if c.Summary {
		s, err := c.Service.Summary(ctx, month)
		if err != nil {
			return err
		}
		pp.Summary(s)
	}
	return nil
}
