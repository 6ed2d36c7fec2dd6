package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/report"
)

var settleMode string

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show what each participant spent and paid",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		expenses, err := store.ListExpenses(cmd.Context())
		if err != nil {
			return err
		}
		summaries, err := calculator.Aggregate(expenses)
		if err != nil {
			return err
		}
		return report.WriteSummary(cmd.OutOrStdout(), calculator.SortedSummaries(summaries), calculator.Total(expenses))
	},
}

var settleCmd = &cobra.Command{
	Use:   "settle",
	Short: "List the transfers that settle every balance",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		mode, err := calculator.ParseMode(settleMode)
		if err != nil {
			return err
		}
		expenses, err := store.ListExpenses(cmd.Context())
		if err != nil {
			return err
		}
		txns, err := calculator.Settle(expenses, mode)
		if err != nil {
			return err
		}
		return report.WriteTransactions(cmd.OutOrStdout(), txns)
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd, settleCmd)

	settleCmd.Flags().StringVarP(&settleMode, "mode", "m", string(calculator.ModeMinimized), "Settlement mode: minimized or pairwise.")
}
