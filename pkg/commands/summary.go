package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/moodcal/pkg/commands/options"
	"tableflip.dev/moodcal/pkg/runner/summary"
)

func addSummary(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Count the days of a month per mood",
		Example: `
moodcal summary
moodcal summary --month 2025-03 --json
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

			s := summary.Summary{Service: svc, Month: month, JSON: oo.JSON, Out: cmd.OutOrStdout()}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddMonthArgs(cmd, mo)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
