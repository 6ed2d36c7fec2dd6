package calculator

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/mmynk/splitledger/internal/models"
)

// Epsilon is the magnitude below which balances and transfer amounts are treated as zero.
const Epsilon = 1e-6

// ErrInvalidRecord is returned for an expense that cannot be folded into balances:
// no participants, an empty participant name, a missing payer, or an amount
// that is not a positive finite number.
var ErrInvalidRecord = errors.New("invalid expense record")

// Summary holds one participant's totals across all expenses.
type Summary struct {
	Spent float64 // Sum of equal shares of every expense they took part in
	Paid  float64 // Sum of amounts of every expense they fronted
}

// Net returns Spent - Paid. Positive = owes money, Negative = is owed money.
func (s Summary) Net() float64 {
	return s.Spent - s.Paid
}

// ParticipantSummary is a Summary tagged with the participant's name.
type ParticipantSummary struct {
	Participant string
	Summary
}

// ValidateExpense checks that an expense can be aggregated.
func ValidateExpense(e models.Expense) error {
	if len(e.Participants) == 0 {
		return fmt.Errorf("%w: no participants", ErrInvalidRecord)
	}
	if math.IsNaN(e.Amount) || math.IsInf(e.Amount, 0) || e.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive, got %v", ErrInvalidRecord, e.Amount)
	}
	if e.Payer == "" {
		return fmt.Errorf("%w: payer is required", ErrInvalidRecord)
	}
	for i, p := range e.Participants {
		if p == "" {
			return fmt.Errorf("%w: participant %d has an empty name", ErrInvalidRecord, i)
		}
	}
	return nil
}

// validateAll rejects the whole batch on the first invalid record, before any
// accumulation takes place.
func validateAll(expenses []models.Expense) error {
	for i, e := range expenses {
		if err := ValidateExpense(e); err != nil {
			return fmt.Errorf("expense %d (%q): %w", i, e.ID, err)
		}
	}
	return nil
}

// Aggregate folds expenses into per-participant spent/paid totals.
//
// Algorithm:
// - share = amount / len(participants), no rounding
// - every participant entry adds one share to spent (duplicates add several)
// - the payer adds the full amount to paid, independently of their own share
//
// The result does not depend on the order of expenses beyond floating-point
// rounding of the sums.
func Aggregate(expenses []models.Expense) (map[string]Summary, error) {
	if err := validateAll(expenses); err != nil {
		return nil, err
	}

	summaries := make(map[string]Summary)
	for _, e := range expenses {
		share := e.Amount / float64(len(e.Participants))
		for _, p := range e.Participants {
			s := summaries[p]
			s.Spent += share
			summaries[p] = s
		}

		s := summaries[e.Payer]
		s.Paid += e.Amount
		summaries[e.Payer] = s
	}

	return summaries, nil
}

// NetBalances returns each participant's net balance (spent - paid).
func NetBalances(expenses []models.Expense) (map[string]float64, error) {
	summaries, err := Aggregate(expenses)
	if err != nil {
		return nil, err
	}

	net := make(map[string]float64, len(summaries))
	for name, s := range summaries {
		net[name] = s.Net()
	}
	return net, nil
}

// SortedSummaries returns the summaries ordered by participant name.
func SortedSummaries(summaries map[string]Summary) []ParticipantSummary {
	out := make([]ParticipantSummary, 0, len(summaries))
	for name, s := range summaries {
		out = append(out, ParticipantSummary{Participant: name, Summary: s})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Participant < out[j].Participant
	})
	return out
}

// Total returns the sum of all expense amounts.
func Total(expenses []models.Expense) float64 {
	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}
