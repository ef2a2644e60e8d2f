package commands

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/moodcal/pkg/mood"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(moodcal completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(moodcal completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

func moodCompletions(toComplete string) []string {
	var out []string
	for _, m := range mood.All() {
		if strings.HasPrefix(m.String(), strings.ToLower(toComplete)) {
			out = append(out, m.String())
		}
	}
	return out
}
