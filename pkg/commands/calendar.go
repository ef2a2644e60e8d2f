package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/moodcal/pkg/commands/options"
	"tableflip.dev/moodcal/pkg/runner/calendar"
)

func addCalendar(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}
	oo := &options.OutputOptions{}
	var legend, summary bool

	cmd := &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"cal"},
		Short:   "Print a month of the mood calendar",
		Example: `
moodcal calendar
moodcal calendar --month 2025-03 --legend
moodcal cal -m 2025-04 --summary --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			month, err := mo.GetMonth()
			if err != nil {
				return oo.HandleError(err)
			}
			svc, _, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			defer svc.Close()

			c := calendar.Calendar{
				Service: svc,
				Month:   month,
				Legend:  legend,
				Summary: summary,
				JSON:    oo.JSON,
				Out:     cmd.OutOrStdout(),
			}
			return oo.HandleError(c.Do(cmd.Context()))
		},
	}

	options.AddMonthArgs(cmd, mo)
	options.AddOutputArg(cmd, oo)
	cmd.Flags().BoolVar(&legend, "legend", false, "Print the mood legend below the grid.")
	cmd.Flags().BoolVar(&summary, "summary", false, "Print the month's mood counts below the grid.")

	topLevel.AddCommand(cmd)
}
