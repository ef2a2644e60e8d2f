package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/moodcal/pkg/tui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
moodcal ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := loadService()
			if err != nil {
				return err
			}
			defer svc.Close()
			return tui.Run(svc)
		},
	}

	topLevel.AddCommand(cmd)
}
