package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tableflip.dev/moodcal/pkg/runner/serve"
)

func addServe(topLevel *cobra.Command) {
	var (
		host      string
		port      int
		accessLog bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the mood calendar as a local JSON API",
		Long: `Serve exposes the mood calendar over HTTP:

  GET /healthz
  GET /api/v1/calendar[/YYYY-MM]
  GET /api/v1/summary/YYYY-MM
  GET /api/v1/moods[?since=YYYY-MM-DD&until=YYYY-MM-DD]
  GET /api/v1/moods/YYYY-MM-DD
  PUT /api/v1/moods/YYYY-MM-DD   {"mood":"happy"}`,
		Example: `
moodcal serve
moodcal serve --port 9090 --access-log
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := hostPort(host, port)
			if err != nil {
				return err
			}
			svc, log, err := loadService()
			if err != nil {
				return err
			}
			defer svc.Close()

			cfg := serve.Config{Addr: addr}
			if accessLog {
				cfg.AccessLog = os.Stderr
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "mood API listening on http://%s\n", addr)
			return serve.NewServer(cfg, svc, log).Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&host, "host", "127.0.0.1", "host/interface to listen on")
	cmd.Flags().IntVar(&port, "port", 8081, "port to listen on")
	cmd.Flags().BoolVar(&accessLog, "access-log", false, "log each request to stderr")

	topLevel.AddCommand(cmd)
}
