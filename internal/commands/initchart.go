package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"mizan/internal/app"
	"mizan/internal/config"
	"mizan/internal/logger"
)

func newInitChartCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init-chart",
		Short: "Seed the default chart of accounts (overwrites the existing chart)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger.Init(cfg.LogLevel)

			application, err := app.New(cfg)
			if err != nil {
				return err
			}
			defer application.Close(context.Background())

			if err := application.Chart.Initialize(cmd.Context()); err != nil {
				return err
			}

			accounts, err := application.Chart.Accounts(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("Chart of accounts seeded: %d accounts\n", len(accounts))
			return nil
		},
	}
}
