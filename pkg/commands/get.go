package commands

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/moodcal/pkg/commands/options"
	"tableflip.dev/moodcal/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	on := &options.OnOptions{}
	ro := &options.RangeOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "get [date]",
		Short: "Print the mood of a day, or every recorded mood",
		Long: `Get prints the mood recorded for one day. Without a day it lists every
recorded mood grouped by month, optionally bounded by --since/--until or --last.`,
		Example: `
moodcal get 2025-04-10
moodcal get --on yesterday --json
moodcal get
moodcal get --last 2w
moodcal get --since 2025-03-01 --until 2025-03-31
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New("too many arguments, expected [date]")
			}
			if len(args) == 1 {
				if on.OnString != "" {
					return errors.New("date given twice, use either --on or the date argument")
				}
				on.OnString = args[0]
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			d, err := on.GetOn(now)
			if err != nil {
				return oo.HandleError(err)
			}
			since, until, label, err := ro.Bounds(now)
			if err != nil {
				return oo.HandleError(err)
			}
			svc, _, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			defer svc.Close()

			g := get.Get{
				Service: svc,
				On:      d,
				Since:   since,
				Until:   until,
				Label:   label,
				JSON:    oo.JSON,
				Out:     cmd.OutOrStdout(),
			}
			return oo.HandleError(g.Do(cmd.Context()))
		},
	}

	options.AddOnArgs(cmd, on)
	options.AddRangeArgs(cmd, ro)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
