package commands

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/joinforge-labs/joinforge/internal/cli/config"
	"github.com/joinforge-labs/joinforge/internal/server"
)

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the SQL generator as an HTTP API",
		Long: `Start an HTTP server exposing the generator.

  POST /v1/generate  {"query": "..."}  ->  {"sql": "..."}
  GET  /healthz

Validation failures come back as 422 with the failure kind and the
offending identifier.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.FromContext(cmd.Context())
			logger := config.GetLogger(cmd.Context())

			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			srv := server.New(server.Config{
				Port:   cfg.Port,
				Logger: logger,
			})
			return srv.Serve(ctx)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", config.DefaultPort, "Listen port")

	return cmd
}
