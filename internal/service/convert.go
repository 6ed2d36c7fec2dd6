package service

import (
	"context"
	"errors"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
	"github.com/mmynk/splitledger/pkg/api"
)

func toAPIExpense(e models.Expense) api.Expense {
	participants := e.Participants
	if participants == nil {
		participants = []string{}
	}
	return api.Expense{
		ID:           e.ID,
		Name:         e.Name,
		Amount:       e.Amount,
		Payer:        e.Payer,
		Participants: participants,
	}
}

// fromAPIExpense trims names the way the entry form does; IDs are kept verbatim.
func fromAPIExpense(e api.Expense) models.Expense {
	return models.Expense{
		ID:           e.ID,
		Name:         strings.TrimSpace(e.Name),
		Amount:       e.Amount,
		Payer:        strings.TrimSpace(e.Payer),
		Participants: trimAll(e.Participants),
	}
}

func trimAll(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = strings.TrimSpace(n)
	}
	return out
}

// storeError maps a storage failure to a Connect error.
func storeError(err error) *connect.Error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, storage.ErrAlreadyExists):
		return connect.NewError(connect.CodeAlreadyExists, err)
	}
	return connect.NewError(connect.CodeInternal, err)
}

// calcError maps a failure of the ledger engine over stored expenses.
// An invalid stored record is a data problem, not a bad request.
func calcError(err error) *connect.Error {
	if errors.Is(err, calculator.ErrInvalidRecord) {
		return connect.NewError(connect.CodeFailedPrecondition, err)
	}
	return connect.NewError(connect.CodeInternal, err)
}

// memberNames returns the roster names in order.
func memberNames(ctx context.Context, store storage.Store) ([]string, error) {
	members, err := store.ListMembers(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(members))
	for i, m := range members {
		names[i] = m.Name
	}
	return names, nil
}
