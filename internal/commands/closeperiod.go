package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"mizan/internal/app"
	"mizan/internal/config"
	"mizan/internal/logger"
)

func newClosePeriodCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "close-period <year>",
		Short: "Close revenue and expense accounts into retained earnings for a fiscal year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			period := args[0]

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

			entries, err := application.Closing.ClosePeriod(cmd.Context(), period)
			if err != nil {
				return err
			}

			if len(entries) == 0 {
				fmt.Printf("Period %s closed: no revenue or expense activity\n", period)
				return nil
			}

			fmt.Printf("Period %s closed with %d closing entries:\n", period, len(entries))
			for _, entry := range entries {
				fmt.Printf("  %s  %s  %.2f\n", entry.Reference, entry.ID.Hex(), entry.TotalDebit)
			}
			return nil
		},
	}
}
