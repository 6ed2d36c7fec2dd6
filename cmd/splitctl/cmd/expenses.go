package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/report"
	"github.com/mmynk/splitledger/internal/storage"
	"github.com/mmynk/splitledger/internal/storage/jsonfile"
)

var expenseName string
var expenseAmount float64
var expensePayer string
var expenseParticipants string
var importReplace bool

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a shared expense",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		expense := models.Expense{
			Name:   strings.TrimSpace(expenseName),
			Amount: expenseAmount,
			Payer:  strings.TrimSpace(expensePayer),
		}
		if strings.TrimSpace(expenseParticipants) != "" {
			for _, p := range strings.Split(expenseParticipants, ",") {
				expense.Participants = append(expense.Participants, strings.TrimSpace(p))
			}
		}

		if expense.Name == "" {
			return errors.New("expense name is required")
		}
		if err := calculator.ValidateExpense(expense); err != nil {
			return err
		}

		ctx := cmd.Context()
		if err := store.CreateExpense(ctx, &expense); err != nil {
			return err
		}
		if err := store.AddMembers(ctx, models.People(expense)); err != nil {
			slog.Warn("Failed to add participants to roster", "error", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), expense.ID)
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List recorded expenses",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		expenses, err := store.ListExpenses(cmd.Context())
		if err != nil {
			return err
		}
		return report.WriteExpenses(cmd.OutOrStdout(), expenses)
	},
}

var rmCmd = &cobra.Command{
	Use:   "rm <id>...",
	Short: "Delete expenses by ID",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, id := range args {
			if err := store.DeleteExpense(cmd.Context(), id); err != nil {
				return err
			}
		}
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Load expenses from a JSON file",
	Long:  "Load expenses from a JSON array of {id, name, amount, payer, participants}.\nEvery record is validated before the collection is changed.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		imported, err := jsonfile.Decode(f)
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		for i, e := range imported {
			if err := calculator.ValidateExpense(e); err != nil {
				return fmt.Errorf("%s: expense %d (%q): %w", args[0], i, e.ID, err)
			}
		}

		ctx := cmd.Context()
		var existing []models.Expense
		if !importReplace {
			if existing, err = store.ListExpenses(ctx); err != nil {
				return err
			}
		}
		next, err := storage.Merge(existing, imported, importReplace)
		if err != nil {
			return err
		}
		if err := store.ReplaceExpenses(ctx, next); err != nil {
			return err
		}
		if err := store.AddMembers(ctx, models.People(imported...)); err != nil {
			slog.Warn("Failed to add participants to roster", "error", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d expenses\n", len(imported))
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write expenses to a JSON file (- for stdout)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		expenses, err := store.ListExpenses(cmd.Context())
		if err != nil {
			return err
		}

		if args[0] == "-" {
			return jsonfile.Encode(cmd.OutOrStdout(), expenses)
		}

		f, err := os.Create(args[0])
		if err != nil {
			return err
		}
		if err := jsonfile.Encode(f, expenses); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	},
}

func init() {
	rootCmd.AddCommand(addCmd, listCmd, rmCmd, importCmd, exportCmd)

	addCmd.Flags().StringVarP(&expenseName, "name", "n", "", "Label for the expense.")
	addCmd.Flags().Float64VarP(&expenseAmount, "amount", "a", 0, "Total amount paid.")
	addCmd.Flags().StringVarP(&expensePayer, "payer", "p", "", "Who paid.")
	addCmd.Flags().StringVarP(&expenseParticipants, "participants", "s", "", "Who shares the expense (comma separated).")

	importCmd.Flags().BoolVar(&importReplace, "replace", false, "Replace the collection instead of appending to it.")
}
