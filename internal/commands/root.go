package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mizan",
		Short: "Construction back-office double-entry accounting service",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newInitChartCommand())
	rootCmd.AddCommand(newClosePeriodCommand())
	rootCmd.AddCommand(newTrialBalanceCommand())

	return rootCmd
}
