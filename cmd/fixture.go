package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/example/table-booker/internal/config"
	"github.com/example/table-booker/internal/fixture"
)

func newFixtureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fixture",
		Short: "Run a local stub of the remote booking service",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			srv := fixture.NewServer()
			return fixture.Start(ctx, cfg.FixtureAddr, srv.Routes())
		},
	}
}
