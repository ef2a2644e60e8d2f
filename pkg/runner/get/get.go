package get

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/moodcal/pkg/app"
	"tableflip.dev/moodcal/pkg/entry"
	"tableflip.dev/moodcal/pkg/printers"
)

// Get prints the mood of one day, or every record between two days.
type Get struct {
	Service *app.Service
	// On selects a single day. When zero, Since and Until bound a listing;
	// a zero bound is open.
	On    entry.Date
	Since entry.Date
	Until entry.Date
	// Label names the listing window in the title, for example "last 1w".
	Label string
	JSON  bool
	Out   io.Writer
}

type dayJSON struct {
	Date     entry.Date `json:"date"`
	Recorded bool       `json:"recorded"`
	Mood     string     `json:"mood,omitempty"`
	Eligible bool       `json:"eligible"`
}

func (g *Get) Do(ctx context.Context) error {
	if g.Service == nil {
		return errors.New("can not get, no service")
	}
	if !g.On.IsZero() {
		return g.day(ctx)
	}
	return g.list(ctx)
}

func (g *Get) day(ctx context.Context) error {
	m, ok, err := g.Service.Mood(ctx, g.On)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{Out: g.Out}

	if g.JSON {
		out := dayJSON{Date: g.On, Recorded: ok, Eligible: g.Service.Eligible(g.On)}
		if ok {
			out.Mood = m.String()
		}
		return pp.JSON(out)
	}

	pp.NewLine()
	pp.Title(g.On.Long())
	if !ok {
		pp.Records()
		return nil
	}
	pp.Records(entry.New(g.On, m))
	return nil
}

func (g *Get) list(ctx context.Context) error {
	res, err := g.Service.Report(ctx, g.Since, g.Until)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{Out: g.Out}

	if g.JSON {
		return pp.JSON(res)
	}

	pp.NewLine()
	if g.Label != "" {
		f := color.New(color.Faint)
		_, _ = f.Fprintf(pp.Writer(), "Moods · %s (%s → %s)\n\n", g.Label, res.Since.Key(), res.Until.Key())
	}
	if res.Total == 0 {
		pp.Records()
		return nil
	}
	for _, section := range res.Sections {
		pp.TitleWithCount(section.Month, len(section.Records))
		pp.Records(section.Records...)
	}
	_, _ = fmt.Fprintf(pp.Writer(), "%d recorded\n", res.Total)
	return nil
}
