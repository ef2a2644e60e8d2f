package commands

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/moodcal/pkg/app"
	"tableflip.dev/moodcal/pkg/config"
	"tableflip.dev/moodcal/pkg/logging"
)

var (
	logLevel string
	noColor  bool
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "moodcal",
		Short: base.Wrap80("A monthly mood calendar on the command line."),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor || !isTerminal(os.Stdout) {
				color.NoColor = true
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override the configured log level (debug, info, warn, error).")
	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output.")

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addCalendar(topLevel)
	addSet(topLevel)
	addGet(topLevel)
	addSummary(topLevel)
	addKey(topLevel)
	addUI(topLevel)
	addMCP(topLevel)
	addServe(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
	addUpgrade(topLevel)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// loadService opens the configured mood store. Callers close the service.
func loadService() (*app.Service, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	lc := cfg.Logging()
	if logLevel != "" {
		lc.Level = logLevel
	}
	log, err := logging.New(lc)
	if err != nil {
		return nil, nil, err
	}
	svc, err := app.New(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	return svc, log, nil
}
