package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/mmynk/splitledger/internal/models"
)

// ErrSerialization is returned when an expense collection cannot be encoded or decoded.
var ErrSerialization = errors.New("serialization error")

// Decode reads an expense collection: a JSON array of
// {id, name, amount, payer, participants} objects.
// Records are returned as stored; validation is left to the caller.
func Decode(r io.Reader) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := json.NewDecoder(r).Decode(&expenses); err != nil {
		if errors.Is(err, io.EOF) {
			return []models.Expense{}, nil
		}
		return nil, fmt.Errorf("%w: decode expenses: %v", ErrSerialization, err)
	}
	if expenses == nil {
		expenses = []models.Expense{}
	}
	for i := range expenses {
		if expenses[i].Participants == nil {
			expenses[i].Participants = []string{}
		}
	}
	return expenses, nil
}

// Encode writes an expense collection as an indented JSON array.
func Encode(w io.Writer, expenses []models.Expense) error {
	if expenses == nil {
		expenses = []models.Expense{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(expenses); err != nil {
		return fmt.Errorf("%w: encode expenses: %v", ErrSerialization, err)
	}
	return nil
}
