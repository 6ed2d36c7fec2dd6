// Package jsonfile provides a storage.Store kept in plain JSON files:
// spendings.json holds the expense collection and members.json the roster.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
)

const (
	expensesFile = "spendings.json"
	membersFile  = "members.json"
)

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

// Store keeps the whole collection in memory and rewrites the
// backing file after every change.
type Store struct {
	dir string

	mu       sync.Mutex
	expenses []models.Expense
	members  []string
}

// New opens the store in dir, creating the directory if needed and loading
// any existing files.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	s := &Store{dir: dir}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	f, err := os.Open(filepath.Join(s.dir, expensesFile))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		s.expenses = []models.Expense{}
	case err != nil:
		return fmt.Errorf("failed to open %s: %w", expensesFile, err)
	default:
		expenses, err := Decode(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", expensesFile, err)
		}
		s.expenses = expenses
	}

	data, err := os.ReadFile(filepath.Join(s.dir, membersFile))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		s.members = []string{}
	case err != nil:
		return fmt.Errorf("failed to read %s: %w", membersFile, err)
	default:
		if err := json.Unmarshal(data, &s.members); err != nil {
			return fmt.Errorf("failed to load %s: %w: %v", membersFile, ErrSerialization, err)
		}
	}

	return nil
}

// writeFile replaces name atomically via a temp file in the same directory.
func (s *Store) writeFile(name string, write func(f *os.File) error) error {
	tmp, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := write(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		return fmt.Errorf("failed to replace %s: %w", name, err)
	}
	return nil
}

func (s *Store) saveExpenses(expenses []models.Expense) error {
	return s.writeFile(expensesFile, func(f *os.File) error {
		return Encode(f, expenses)
	})
}

func (s *Store) saveMembers(members []string) error {
	return s.writeFile(membersFile, func(f *os.File) error {
		enc := json.NewEncoder(f)
		enc.SetIndent("", "  ")
		if err := enc.Encode(members); err != nil {
			return fmt.Errorf("%w: encode members: %v", ErrSerialization, err)
		}
		return nil
	})
}

func cloneExpense(e models.Expense) models.Expense {
	e.Participants = slices.Clone(e.Participants)
	if e.Participants == nil {
		e.Participants = []string{}
	}
	return e
}

// CreateExpense appends an expense and persists the collection.
func (s *Store) CreateExpense(_ context.Context, expense *models.Expense) error {
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	if expense.CreatedAt == 0 {
		expense.CreatedAt = time.Now().Unix()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := append(slices.Clone(s.expenses), cloneExpense(*expense))
	if err := s.saveExpenses(next); err != nil {
		return err
	}
	s.expenses = next
	return nil
}

// GetExpense returns a copy of the expense with the given ID.
func (s *Store) GetExpense(_ context.Context, expenseID string) (*models.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.expenses {
		if e.ID == expenseID {
			out := cloneExpense(e)
			return &out, nil
		}
	}
	return nil, fmt.Errorf("expense %s: %w", expenseID, storage.ErrNotFound)
}

// ListExpenses returns a copy of the collection in insertion order.
func (s *Store) ListExpenses(_ context.Context) ([]models.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Expense, len(s.expenses))
	for i, e := range s.expenses {
		out[i] = cloneExpense(e)
	}
	return out, nil
}

// DeleteExpense removes the expense with the given ID.
func (s *Store) DeleteExpense(_ context.Context, expenseID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.expenses, func(e models.Expense) bool { return e.ID == expenseID })
	if i < 0 {
		return fmt.Errorf("expense %s: %w", expenseID, storage.ErrNotFound)
	}

	next := slices.Delete(slices.Clone(s.expenses), i, i+1)
	if err := s.saveExpenses(next); err != nil {
		return err
	}
	s.expenses = next
	return nil
}

// ReplaceExpenses swaps the collection for expenses.
func (s *Store) ReplaceExpenses(_ context.Context, expenses []models.Expense) error {
	now := time.Now().Unix()
	next := make([]models.Expense, len(expenses))
	for i := range expenses {
		if expenses[i].ID == "" {
			expenses[i].ID = uuid.New().String()
		}
		if expenses[i].CreatedAt == 0 {
			expenses[i].CreatedAt = now
		}
		next[i] = cloneExpense(expenses[i])
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.saveExpenses(next); err != nil {
		return err
	}
	s.expenses = next
	return nil
}

// ListMembers returns the roster in order.
func (s *Store) ListMembers(_ context.Context) ([]models.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	members := make([]models.Member, len(s.members))
	for i, name := range s.members {
		members[i] = models.Member{Name: name, Position: i}
	}
	return members, nil
}

// AddMember appends name, failing if it is already on the roster.
func (s *Store) AddMember(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if slices.Contains(s.members, name) {
		return fmt.Errorf("member %s: %w", name, storage.ErrAlreadyExists)
	}

	next := append(slices.Clone(s.members), name)
	if err := s.saveMembers(next); err != nil {
		return err
	}
	s.members = next
	return nil
}

// AddMembers appends names not yet on the roster.
func (s *Store) AddMembers(_ context.Context, names []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := slices.Clone(s.members)
	for _, name := range names {
		if !slices.Contains(next, name) {
			next = append(next, name)
		}
	}
	if len(next) == len(s.members) {
		return nil
	}

	if err := s.saveMembers(next); err != nil {
		return err
	}
	s.members = next
	return nil
}

// RemoveMember deletes a name from the roster.
func (s *Store) RemoveMember(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.Index(s.members, name)
	if i < 0 {
		return fmt.Errorf("member %s: %w", name, storage.ErrNotFound)
	}

	next := slices.Delete(slices.Clone(s.members), i, i+1)
	if err := s.saveMembers(next); err != nil {
		return err
	}
	s.members = next
	return nil
}

// MoveMember moves a name to position.
func (s *Store) MoveMember(_ context.Context, name string, position int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, ok := storage.Reorder(s.members, name, position)
	if !ok {
		return fmt.Errorf("member %s: %w", name, storage.ErrNotFound)
	}

	if err := s.saveMembers(next); err != nil {
		return err
	}
	s.members = next
	return nil
}

// Close is a no-op; every change is already on disk.
func (s *Store) Close() error {
	return nil
}
