// Package api defines the request and response messages of the splitledger
// Connect services. Messages travel as JSON (see JSONCodec).
package api

// Expense is one shared expense as exchanged over the API.
type Expense struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Amount       float64  `json:"amount"`
	Payer        string   `json:"payer"`
	Participants []string `json:"participants"`
}

// ParticipantSummary is one participant's totals. Net = Spent - Paid:
// positive owes money, negative is owed money.
type ParticipantSummary struct {
	Participant string  `json:"participant"`
	Spent       float64 `json:"spent"`
	Paid        float64 `json:"paid"`
	Net         float64 `json:"net"`
}

// Transaction is one transfer of a settlement plan: Payer owes Payee Amount.
type Transaction struct {
	Payer  string  `json:"payer"`
	Payee  string  `json:"payee"`
	Amount float64 `json:"amount"`
}

type AddExpenseRequest struct {
	Name         string   `json:"name"`
	Amount       float64  `json:"amount"`
	Payer        string   `json:"payer"`
	Participants []string `json:"participants"`
}

type AddExpenseResponse struct {
	Expense Expense `json:"expense"`
}

type ListExpensesRequest struct{}

type ListExpensesResponse struct {
	Expenses []Expense `json:"expenses"`
	Total    float64   `json:"total"`
}

type DeleteExpenseRequest struct {
	ExpenseID string `json:"expense_id"`
}

type DeleteExpenseResponse struct{}

// ImportExpensesRequest restores a saved expense collection.
// With Replace set the current collection is discarded first;
// otherwise the expenses are appended.
type ImportExpensesRequest struct {
	Expenses []Expense `json:"expenses"`
	Replace  bool      `json:"replace"`
}

type ImportExpensesResponse struct {
	Imported int `json:"imported"`
}

type GetSummaryRequest struct{}

type GetSummaryResponse struct {
	Summaries []ParticipantSummary `json:"summaries"`
	Total     float64              `json:"total"`
}

// GetSettlementRequest selects the plan: "minimized" (default) or "pairwise".
type GetSettlementRequest struct {
	Mode string `json:"mode,omitempty"`
}

type GetSettlementResponse struct {
	Mode         string        `json:"mode"`
	Transactions []Transaction `json:"transactions"`
}

type ListMembersRequest struct{}

// MembersResponse carries the roster in display order.
type MembersResponse struct {
	Members []string `json:"members"`
}

type AddMemberRequest struct {
	Name string `json:"name"`
}

type RemoveMemberRequest struct {
	Name string `json:"name"`
}

type MoveMemberRequest struct {
	Name     string `json:"name"`
	Position int    `json:"position"`
}
