package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/moodcal/pkg/commands/options"
	"tableflip.dev/moodcal/pkg/mood"
	"tableflip.dev/moodcal/pkg/runner/set"
)

func addSet(topLevel *cobra.Command) {
	on := &options.OnOptions{}
	i := &options.InteractiveOptions{}
	oo := &options.OutputOptions{}
	var m *mood.Mood

	long := strings.Builder{}
	long.WriteString("Record the mood of a day, replacing any earlier mood for that day.\n")
	long.WriteString("Only days inside the entry window accept a mood.\n\n")
	long.WriteString("Moods and keys:\n")
	for _, g := range mood.DefaultGlyphs() {
		if g.Key == "" {
			continue
		}
		long.WriteString(fmt.Sprintf("%s %s: %s\n", g.Symbol, g.Key, g.Meaning))
	}

	cmd := &cobra.Command{
		Use:   "set [date] [mood]",
		Short: "Record the mood of a day",
		Long:  long.String(),
		Example: `
moodcal set 2025-04-10 happy
moodcal set --on today sad
moodcal set -i
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 2 {
				return errors.New("too many arguments, expected [date] [mood]")
			}
			if len(args) == 2 {
				if on.OnString != "" {
					return errors.New("date given twice, use either --on or the date argument")
				}
				on.OnString = args[0]
				args = args[1:]
			}
			if len(args) == 1 {
				v, err := mood.Parse(args[0])
				switch {
				case err == nil:
					m = &v
				case on.OnString == "" && i.Interactive:
					// set -i 2025-04-10 prompts only for the mood.
					if _, derr := options.ParseDay(args[0], time.Now()); derr != nil {
						return err
					}
					on.OnString = args[0]
				default:
					return err
				}
			}
			if !i.Interactive && m == nil {
				return errors.New("requires a mood, or --interactive")
			}
			return nil
		},
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return moodCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			d, err := on.GetOn(now)
			if err != nil {
				return oo.HandleError(err)
			}
			if d.IsZero() && !i.Interactive {
				return oo.HandleError(errors.New("requires a date, or --interactive"))
			}
			svc, _, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			defer svc.Close()

			s := set.Set{
				Service:     svc,
				On:          d,
				Mood:        m,
				Interactive: i.Interactive,
				JSON:        oo.JSON,
				Stdin:       io.NopCloser(cmd.InOrStdin()),
				Stdout:      set.NopCloser(cmd.OutOrStdout()),
				Out:         cmd.OutOrStdout(),
			}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddOnArgs(cmd, on)
	options.InteractiveArgs(cmd, i)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
