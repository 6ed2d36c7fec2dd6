// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/mmynk/splitledger/internal/models"
)

var (
	// ErrNotFound is returned when an expense or roster member does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is returned when an expense ID would appear twice or a
	// name is added to the roster again.
	ErrAlreadyExists = errors.New("already exists")
)

// Store defines the interface for expense and roster storage operations.
// This abstraction allows swapping storage backends (SQLite, JSON files)
// without changing the service layer.
type Store interface {
	// CreateExpense appends a new expense to the collection.
	// The expense.ID and expense.CreatedAt fields are populated by the store if unset.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// GetExpense retrieves an expense by its ID.
	// Returns an error wrapping ErrNotFound if the expense does not exist.
	GetExpense(ctx context.Context, expenseID string) (*models.Expense, error)

	// ListExpenses returns every expense in insertion order.
	ListExpenses(ctx context.Context) ([]models.Expense, error)

	// DeleteExpense removes an expense by ID.
	// Returns an error wrapping ErrNotFound if the expense does not exist.
	DeleteExpense(ctx context.Context, expenseID string) error

	// ReplaceExpenses swaps the whole collection for the given expenses,
	// keeping their IDs and order.
	ReplaceExpenses(ctx context.Context, expenses []models.Expense) error

	// ListMembers returns the roster in display order.
	ListMembers(ctx context.Context) ([]models.Member, error)

	// AddMember appends one name to the end of the roster.
	// Returns an error wrapping ErrAlreadyExists if the name is already there.
	AddMember(ctx context.Context, name string) error

	// AddMembers appends names to the end of the roster.
	// Names already on the roster are skipped.
	AddMembers(ctx context.Context, names []string) error

	// RemoveMember deletes a name from the roster.
	// Returns an error wrapping ErrNotFound if the name is not on the roster.
	RemoveMember(ctx context.Context, name string) error

	// MoveMember moves a name to the given position, shifting the others.
	// Positions past either end are clamped.
	MoveMember(ctx context.Context, name string, position int) error

	// Close releases any resources held by the store.
	Close() error
}

// Merge returns the collection that results from importing expenses: the
// imported records alone when replace is set, otherwise appended after
// existing. Non-empty IDs must be unique across the result.
func Merge(existing, imported []models.Expense, replace bool) ([]models.Expense, error) {
	next := make([]models.Expense, 0, len(existing)+len(imported))
	if !replace {
		next = append(next, existing...)
	}
	next = append(next, imported...)

	seen := make(map[string]bool, len(next))
	for _, e := range next {
		if e.ID == "" {
			continue
		}
		if seen[e.ID] {
			return nil, fmt.Errorf("expense %s: %w", e.ID, ErrAlreadyExists)
		}
		seen[e.ID] = true
	}
	return next, nil
}

// Reorder returns names with name moved to position, clamped to the list bounds.
// The second result is false when name is not in the list.
func Reorder(names []string, name string, position int) ([]string, bool) {
	from := -1
	for i, n := range names {
		if n == name {
			from = i
			break
		}
	}
	if from < 0 {
		return names, false
	}

	rest := make([]string, 0, len(names))
	rest = append(rest, names[:from]...)
	rest = append(rest, names[from+1:]...)

	if position < 0 {
		position = 0
	}
	if position > len(rest) {
		position = len(rest)
	}

	out := make([]string, 0, len(names))
	out = append(out, rest[:position]...)
	out = append(out, name)
	out = append(out, rest[position:]...)
	return out, true
}
