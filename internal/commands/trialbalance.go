package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"mizan/internal/app"
	"mizan/internal/config"
	"mizan/internal/logger"
)

func newTrialBalanceCommand() *cobra.Command {
	var asOfStr string

	cmd := &cobra.Command{
		Use:   "trial-balance",
		Short: "Print the trial balance and the accounting identity check",
		RunE: func(cmd *cobra.Command, args []string) error {
			asOf := time.Now()
			if asOfStr != "" {
				parsed, err := time.Parse("2006-01-02", asOfStr)
				if err != nil {
					return fmt.Errorf("invalid --as-of date %q: expected YYYY-MM-DD", asOfStr)
				}
				asOf = parsed
			}

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

			lines, err := application.TrialBalance.Generate(cmd.Context(), asOf)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CODE\tACCOUNT\tDEBIT\tCREDIT\tNET\tSIDE")
			for _, line := range lines {
				fmt.Fprintf(w, "%s\t%s\t%.2f\t%.2f\t%.2f\t%s\n",
					line.AccountCode, line.AccountName,
					line.DebitBalance, line.CreditBalance,
					line.NetBalance, line.BalanceType)
			}
			w.Flush()

			summary, err := application.TrialBalance.Validate(cmd.Context(), asOf)
			if err != nil {
				return err
			}

			fmt.Printf("\nTotal debits: %.2f  Total credits: %.2f  Difference: %.2f  Balanced: %v\n",
				summary.TotalDebits, summary.TotalCredits, summary.Difference, summary.IsBalanced)
			return nil
		},
	}

	cmd.Flags().StringVar(&asOfStr, "as-of", "", "aggregate entries dated on or before this date (YYYY-MM-DD)")

	return cmd
}
