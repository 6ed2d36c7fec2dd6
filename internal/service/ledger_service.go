package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/metrics"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
	"github.com/mmynk/splitledger/pkg/api"
	"github.com/mmynk/splitledger/pkg/api/apiconnect"
)

var _ apiconnect.LedgerServiceHandler = (*LedgerService)(nil)

// LedgerService implements the Connect LedgerService: the expense collection
// plus the balance summary and settlement plan computed from it.
type LedgerService struct {
	store   storage.Store
	metrics *metrics.Metrics
}

// NewLedgerService creates a new LedgerService with the given storage backend.
// m may be nil to disable settlement metrics.
func NewLedgerService(store storage.Store, m *metrics.Metrics) *LedgerService {
	return &LedgerService{store: store, metrics: m}
}

// autoAddToRoster adds any payer or participant not already on the roster.
// Failures are logged; the expense itself has already been saved.
func (s *LedgerService) autoAddToRoster(ctx context.Context, expenses ...models.Expense) {
	people := models.People(expenses...)
	if len(people) == 0 {
		return
	}

	existing, err := memberNames(ctx, s.store)
	if err != nil {
		slog.Warn("autoAddToRoster: failed to list members", "error", err)
		return
	}
	known := make(map[string]bool, len(existing))
	for _, name := range existing {
		known[name] = true
	}

	var newMembers []string
	for _, p := range people {
		if !known[p] {
			newMembers = append(newMembers, p)
		}
	}
	if len(newMembers) == 0 {
		return
	}

	if err := s.store.AddMembers(ctx, newMembers); err != nil {
		slog.Error("autoAddToRoster: failed to add members", "error", err)
		return
	}
	slog.Info("Auto-added participants to roster", "new_members", newMembers)
}

// AddExpense validates and records a new expense.
func (s *LedgerService) AddExpense(ctx context.Context, req *connect.Request[api.AddExpenseRequest]) (*connect.Response[api.AddExpenseResponse], error) {
	expense := fromAPIExpense(api.Expense{
		Name:         req.Msg.Name,
		Amount:       req.Msg.Amount,
		Payer:        req.Msg.Payer,
		Participants: req.Msg.Participants,
	})

	if expense.Name == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("expense name is required"))
	}
	if err := calculator.ValidateExpense(expense); err != nil {
		slog.Error("AddExpense validation failed", "error", err)
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	// Save to storage (generates ID and CreatedAt)
	if err := s.store.CreateExpense(ctx, &expense); err != nil {
		slog.Error("AddExpense failed", "error", err)
		return nil, storeError(err)
	}

	s.autoAddToRoster(ctx, expense)

	slog.Info("Expense added",
		"expense_id", expense.ID,
		"name", expense.Name,
		"amount", expense.Amount,
		"payer", expense.Payer,
		"participants", expense.Participants,
	)

	return connect.NewResponse(&api.AddExpenseResponse{
		Expense: toAPIExpense(expense),
	}), nil
}

// ListExpenses returns the expense collection in insertion order.
func (s *LedgerService) ListExpenses(ctx context.Context, _ *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error) {
	expenses, err := s.store.ListExpenses(ctx)
	if err != nil {
		slog.Error("ListExpenses failed", "error", err)
		return nil, storeError(err)
	}

	out := make([]api.Expense, len(expenses))
	for i, e := range expenses {
		out[i] = toAPIExpense(e)
	}

	return connect.NewResponse(&api.ListExpensesResponse{
		Expenses: out,
		Total:    calculator.Total(expenses),
	}), nil
}

// DeleteExpense removes one expense by ID.
func (s *LedgerService) DeleteExpense(ctx context.Context, req *connect.Request[api.DeleteExpenseRequest]) (*connect.Response[api.DeleteExpenseResponse], error) {
	if req.Msg.ExpenseID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("expense_id required"))
	}

	if err := s.store.DeleteExpense(ctx, req.Msg.ExpenseID); err != nil {
		slog.Error("DeleteExpense failed", "expense_id", req.Msg.ExpenseID, "error", err)
		return nil, storeError(err)
	}

	slog.Info("Expense deleted", "expense_id", req.Msg.ExpenseID)

	return connect.NewResponse(&api.DeleteExpenseResponse{}), nil
}

// ImportExpenses restores a saved collection field-for-field. Every record is
// validated before anything is written.
func (s *LedgerService) ImportExpenses(ctx context.Context, req *connect.Request[api.ImportExpensesRequest]) (*connect.Response[api.ImportExpensesResponse], error) {
	imported := make([]models.Expense, len(req.Msg.Expenses))
	for i, e := range req.Msg.Expenses {
		imported[i] = fromAPIExpense(e)
		if err := calculator.ValidateExpense(imported[i]); err != nil {
			return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("expense %d (%q): %w", i, e.ID, err))
		}
	}

	var existing []models.Expense
	if !req.Msg.Replace {
		var err error
		existing, err = s.store.ListExpenses(ctx)
		if err != nil {
			slog.Error("ImportExpenses failed to list expenses", "error", err)
			return nil, storeError(err)
		}
	}

	next, err := storage.Merge(existing, imported, req.Msg.Replace)
	if err != nil {
		return nil, storeError(err)
	}

	if err := s.store.ReplaceExpenses(ctx, next); err != nil {
		slog.Error("ImportExpenses failed", "error", err)
		return nil, storeError(err)
	}

	s.autoAddToRoster(ctx, imported...)

	slog.Info("Expenses imported", "count", len(imported), "replace", req.Msg.Replace)

	return connect.NewResponse(&api.ImportExpensesResponse{
		Imported: len(imported),
	}), nil
}

// GetSummary returns how much each participant has spent and paid.
func (s *LedgerService) GetSummary(ctx context.Context, _ *connect.Request[api.GetSummaryRequest]) (*connect.Response[api.GetSummaryResponse], error) {
	expenses, err := s.store.ListExpenses(ctx)
	if err != nil {
		slog.Error("GetSummary failed to list expenses", "error", err)
		return nil, storeError(err)
	}

	summaries, err := calculator.Aggregate(expenses)
	if err != nil {
		slog.Error("GetSummary failed - calculation error", "error", err)
		return nil, calcError(err)
	}

	sorted := calculator.SortedSummaries(summaries)
	out := make([]api.ParticipantSummary, len(sorted))
	for i, ps := range sorted {
		out[i] = api.ParticipantSummary{
			Participant: ps.Participant,
			Spent:       ps.Spent,
			Paid:        ps.Paid,
			Net:         ps.Net(),
		}
	}

	slog.Debug("GetSummary successful", "expenses_count", len(expenses), "participants_count", len(out))

	return connect.NewResponse(&api.GetSummaryResponse{
		Summaries: out,
		Total:     calculator.Total(expenses),
	}), nil
}

// GetSettlement returns the transfers that settle every balance, using the
// requested mode.
func (s *LedgerService) GetSettlement(ctx context.Context, req *connect.Request[api.GetSettlementRequest]) (*connect.Response[api.GetSettlementResponse], error) {
	mode, err := calculator.ParseMode(req.Msg.Mode)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	// Work on one snapshot of the collection for the whole computation
	expenses, err := s.store.ListExpenses(ctx)
	if err != nil {
		slog.Error("GetSettlement failed to list expenses", "error", err)
		return nil, storeError(err)
	}

	txns, err := calculator.Settle(expenses, mode)
	if err != nil {
		slog.Error("GetSettlement failed - calculation error", "mode", mode, "error", err)
		return nil, calcError(err)
	}
	s.metrics.ObserveSettlement(string(mode), len(txns))

	out := make([]api.Transaction, len(txns))
	for i, tx := range txns {
		out[i] = api.Transaction{
			Payer:  tx.Payer,
			Payee:  tx.Payee,
			Amount: tx.Amount,
		}
	}

	slog.Debug("GetSettlement successful", "mode", mode, "transactions_count", len(out))

	return connect.NewResponse(&api.GetSettlementResponse{
		Mode:         string(mode),
		Transactions: out,
	}), nil
}
