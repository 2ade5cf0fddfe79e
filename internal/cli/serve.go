package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/exitsim/exit-value-estimator/internal/api"
	"github.com/spf13/cobra"
)

func newServeCommand(a *app) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("port") {
				a.settings.Server.Port = port
				if err := a.settings.Validate(); err != nil {
					return err
				}
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()
			return api.Serve(ctx, a.settings, a.logger)
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 8080, "listen port (default from settings)")
	return cmd
}
