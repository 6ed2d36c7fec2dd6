// Package report renders balances and settlement plans as plain-text tables.
// Amounts are rounded to cents for display only; the engine keeps full precision.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/models"
)

// Amount formats v with two decimal places, rounding half away from zero.
func Amount(v float64) string {
	return decimal.NewFromFloat(v).Round(2).StringFixed(2)
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
}

// WriteExpenses prints the expense collection, one row per expense.
func WriteExpenses(w io.Writer, expenses []models.Expense) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tAMOUNT\tPAYER\tPARTICIPANTS")
	for _, e := range expenses {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%v\n", e.ID, e.Name, Amount(e.Amount), e.Payer, e.Participants)
	}
	fmt.Fprintf(tw, "\t\t%s\t\t\n", Amount(calculator.Total(expenses)))
	return tw.Flush()
}

// WriteSummary prints what each participant spent and paid, and their net balance.
func WriteSummary(w io.Writer, summaries []calculator.ParticipantSummary, total float64) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "PARTICIPANT\tSPENT\tPAID\tNET\t")
	for _, s := range summaries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t\n", s.Participant, Amount(s.Spent), Amount(s.Paid), Amount(s.Net()))
	}
	fmt.Fprintf(tw, "Total\t%s\t\t\t\n", Amount(total))
	return tw.Flush()
}

// WriteTransactions prints one line per transfer, e.g. "Eric owes Carl 6.67".
func WriteTransactions(w io.Writer, txns []calculator.Transaction) error {
	if len(txns) == 0 {
		_, err := fmt.Fprintln(w, "All settled up.")
		return err
	}
	for _, tx := range txns {
		if _, err := fmt.Fprintf(w, "%s owes %s %s\n", tx.Payer, tx.Payee, Amount(tx.Amount)); err != nil {
			return err
		}
	}
	return nil
}
