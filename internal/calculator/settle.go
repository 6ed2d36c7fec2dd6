package calculator

import (
	"container/heap"
	"fmt"
	"sort"

	"github.com/mmynk/splitledger/internal/models"
)

// Mode selects how a settlement plan is built.
type Mode string

const (
	// ModeMinimized nets every balance and matches the largest debtor with the
	// largest creditor until nothing is left.
	ModeMinimized Mode = "minimized"

	// ModePairwise skips netting: each participant owes their share of an expense
	// directly to that expense's payer.
	ModePairwise Mode = "pairwise"
)

// ParseMode converts a user-supplied mode name. An empty name selects ModeMinimized.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeMinimized:
		return ModeMinimized, nil
	case ModePairwise:
		return ModePairwise, nil
	default:
		return "", fmt.Errorf("unknown settlement mode %q", s)
	}
}

// Transaction is one transfer of a settlement plan.
type Transaction struct {
	Payer  string // Person who owes
	Payee  string // Person who is owed
	Amount float64
}

// Settle computes the settlement plan for expenses using the given mode.
// An empty plan means nobody owes anything.
func Settle(expenses []models.Expense, mode Mode) ([]Transaction, error) {
	switch mode {
	case ModeMinimized:
		net, err := NetBalances(expenses)
		if err != nil {
			return nil, err
		}
		return Minimize(net), nil
	case ModePairwise:
		return Pairwise(expenses)
	default:
		return nil, fmt.Errorf("unknown settlement mode %q", mode)
	}
}

// party is a creditor or debtor with the magnitude still to settle.
type party struct {
	name   string
	amount float64
}

// partyHeap is a max-heap on amount; equal amounts pop in name order.
type partyHeap []party

func (h partyHeap) Len() int { return len(h) }
func (h partyHeap) Less(i, j int) bool {
	if h[i].amount != h[j].amount {
		return h[i].amount > h[j].amount
	}
	return h[i].name < h[j].name
}
func (h partyHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *partyHeap) Push(x any)   { *h = append(*h, x.(party)) }
func (h *partyHeap) Pop() any {
	old := *h
	n := len(old)
	p := old[n-1]
	*h = old[:n-1]
	return p
}

// Minimize turns net balances (spent - paid) into a short list of transfers.
//
// Algorithm (greedy matching):
// - participants within Epsilon of zero are left out
// - take the largest remaining debtor and the largest remaining creditor
// - transfer min(debt, credit) from debtor to creditor
// - put back whichever side still has more than Epsilon left
//
// Every step settles at least one party, so n non-zero balances produce at most
// n-1 transfers. This is not an exact minimum-transaction solver.
func Minimize(net map[string]float64) []Transaction {
	debtors := &partyHeap{}
	creditors := &partyHeap{}
	for name, bal := range net {
		switch {
		case bal > Epsilon:
			*debtors = append(*debtors, party{name: name, amount: bal})
		case bal < -Epsilon:
			*creditors = append(*creditors, party{name: name, amount: -bal})
		}
	}
	heap.Init(debtors)
	heap.Init(creditors)

	var txns []Transaction
	for debtors.Len() > 0 && creditors.Len() > 0 {
		debtor := heap.Pop(debtors).(party)
		creditor := heap.Pop(creditors).(party)

		amount := min(debtor.amount, creditor.amount)
		if amount >= Epsilon {
			txns = append(txns, Transaction{
				Payer:  debtor.name,
				Payee:  creditor.name,
				Amount: amount,
			})
		}

		debtor.amount -= amount
		creditor.amount -= amount
		if debtor.amount > Epsilon {
			heap.Push(debtors, debtor)
		}
		if creditor.amount > Epsilon {
			heap.Push(creditors, creditor)
		}
	}

	return txns
}

// Pairwise attributes each participant's share of every expense to that expense's
// payer and sums the shares per (ower, owed-to) pair. Opposite directions between
// the same two people are reported separately. Output is ordered by payer, then payee.
func Pairwise(expenses []models.Expense) ([]Transaction, error) {
	if err := validateAll(expenses); err != nil {
		return nil, err
	}

	type pair struct{ from, to string }
	debts := make(map[pair]float64)
	for _, e := range expenses {
		share := e.Amount / float64(len(e.Participants))
		for _, p := range e.Participants {
			if p == e.Payer {
				continue
			}
			debts[pair{from: p, to: e.Payer}] += share
		}
	}

	txns := make([]Transaction, 0, len(debts))
	for k, amount := range debts {
		if amount < Epsilon {
			continue
		}
		txns = append(txns, Transaction{Payer: k.from, Payee: k.to, Amount: amount})
	}
	sort.Slice(txns, func(i, j int) bool {
		if txns[i].Payer != txns[j].Payer {
			return txns[i].Payer < txns[j].Payer
		}
		return txns[i].Payee < txns[j].Payee
	})

	return txns, nil
}
