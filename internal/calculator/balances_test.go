package calculator

import (
	"errors"
	"math"
	"testing"

	"github.com/mmynk/splitledger/internal/models"
)

// sampleExpenses is a realistic month of shared spending between four people.
func sampleExpenses() []models.Expense {
	return []models.Expense{
		{Name: "Lunch", Amount: 20.00, Payer: "Carl", Participants: []string{"Carl", "Eric", "BU"}},
		{Name: "Coffee", Amount: 5.50, Payer: "Eric", Participants: []string{"Eric", "Carl"}},
		{Name: "Groceries", Amount: 100.00, Payer: "BU", Participants: []string{"Carl", "Eric", "BU"}},
		{Name: "Taxi Ride", Amount: 25.00, Payer: "Carl", Participants: []string{"Carl", "Eric"}},
		{Name: "Movie Tickets", Amount: 45.00, Payer: "Eric", Participants: []string{"Eric", "BU"}},
		{Name: "Gym Membership", Amount: 60.00, Payer: "BU", Participants: []string{"BU"}},
		{Name: "Concert Tickets", Amount: 120.00, Payer: "Carl", Participants: []string{"Carl", "Eric", "BU"}},
		{Name: "Dinner Party", Amount: 80.00, Payer: "Eric", Participants: []string{"Carl", "Eric", "BU"}},
		{Name: "Office Supplies", Amount: 30.00, Payer: "BU", Participants: []string{"Carl", "Eric", "BU", "Other"}},
		{Name: "Shared Rent", Amount: 400.00, Payer: "Carl", Participants: []string{"Carl", "Eric", "BU", "Other"}},
		{Name: "Road Trip Gas", Amount: 75.00, Payer: "Other", Participants: []string{"Carl", "Eric", "Other"}},
		{Name: "Gift for Boss", Amount: 50.00, Payer: "Eric", Participants: []string{"Eric", "Other"}},
		{Name: "Holiday Groceries", Amount: 200.00, Payer: "BU", Participants: []string{"Carl", "BU", "Other"}},
		{Name: "Streaming Subscription", Amount: 15.00, Payer: "Other", Participants: []string{"Carl", "BU", "Other"}},
		{Name: "Shared Utilities", Amount: 120.00, Payer: "Carl", Participants: []string{"Carl", "Eric", "BU", "Other"}},
		{Name: "Weekend Getaway", Amount: 300.00, Payer: "Eric", Participants: []string{"Carl", "Eric", "Other"}},
	}
}

func TestAggregate(t *testing.T) {
	tests := []struct {
		name         string
		expenses     []models.Expense
		wantErr      bool
		validateFunc func(t *testing.T, summaries map[string]Summary)
	}{
		{
			name: "lunch split three ways",
			expenses: []models.Expense{
				{Name: "Lunch", Amount: 20, Payer: "Carl", Participants: []string{"Carl", "Eric", "BU"}},
			},
			validateFunc: func(t *testing.T, summaries map[string]Summary) {
				// Each spends 20/3, Carl paid 20
				for _, p := range []string{"Carl", "Eric", "BU"} {
					if math.Abs(summaries[p].Spent-20.0/3) > 1e-9 {
						t.Errorf("%s spent = %v, want %v", p, summaries[p].Spent, 20.0/3)
					}
				}
				if summaries["Carl"].Paid != 20 {
					t.Errorf("Carl paid = %v, want 20", summaries["Carl"].Paid)
				}
				if summaries["Eric"].Paid != 0 || summaries["BU"].Paid != 0 {
					t.Errorf("non-payers should have paid 0, got Eric=%v BU=%v", summaries["Eric"].Paid, summaries["BU"].Paid)
				}
				if math.Abs(summaries["Carl"].Net()-(-40.0/3)) > 1e-9 {
					t.Errorf("Carl net = %v, want %v", summaries["Carl"].Net(), -40.0/3)
				}
			},
		},
		{
			name: "payer outside participants only pays",
			expenses: []models.Expense{
				{Name: "Gift", Amount: 30, Payer: "Dana", Participants: []string{"Alice", "Bob"}},
			},
			validateFunc: func(t *testing.T, summaries map[string]Summary) {
				if summaries["Dana"].Spent != 0 {
					t.Errorf("Dana spent = %v, want 0", summaries["Dana"].Spent)
				}
				if summaries["Dana"].Paid != 30 {
					t.Errorf("Dana paid = %v, want 30", summaries["Dana"].Paid)
				}
				if summaries["Alice"].Spent != 15 || summaries["Bob"].Spent != 15 {
					t.Errorf("shares = %v/%v, want 15/15", summaries["Alice"].Spent, summaries["Bob"].Spent)
				}
			},
		},
		{
			name: "duplicate participant is charged twice",
			expenses: []models.Expense{
				{Name: "Pizza", Amount: 30, Payer: "Alice", Participants: []string{"Alice", "Bob", "Bob"}},
			},
			validateFunc: func(t *testing.T, summaries map[string]Summary) {
				if summaries["Bob"].Spent != 20 {
					t.Errorf("Bob spent = %v, want 20", summaries["Bob"].Spent)
				}
				if summaries["Alice"].Spent != 10 {
					t.Errorf("Alice spent = %v, want 10", summaries["Alice"].Spent)
				}
			},
		},
		{
			name:     "empty input",
			expenses: nil,
			validateFunc: func(t *testing.T, summaries map[string]Summary) {
				if len(summaries) != 0 {
					t.Errorf("expected no summaries, got %d", len(summaries))
				}
			},
		},
		{
			name: "no participants should error",
			expenses: []models.Expense{
				{Name: "Ghost", Amount: 10, Payer: "Alice", Participants: []string{}},
			},
			wantErr: true,
		},
		{
			name: "zero amount should error",
			expenses: []models.Expense{
				{Name: "Free", Amount: 0, Payer: "Alice", Participants: []string{"Alice"}},
			},
			wantErr: true,
		},
		{
			name: "negative amount should error",
			expenses: []models.Expense{
				{Name: "Refund", Amount: -5, Payer: "Alice", Participants: []string{"Alice"}},
			},
			wantErr: true,
		},
		{
			name: "NaN amount should error",
			expenses: []models.Expense{
				{Name: "Broken", Amount: math.NaN(), Payer: "Alice", Participants: []string{"Alice"}},
			},
			wantErr: true,
		},
		{
			name: "infinite amount should error",
			expenses: []models.Expense{
				{Name: "Overflow", Amount: math.Inf(1), Payer: "Alice", Participants: []string{"Alice"}},
			},
			wantErr: true,
		},
		{
			name: "empty payer should error",
			expenses: []models.Expense{
				{Name: "Anonymous", Amount: 10, Payer: "", Participants: []string{"Alice"}},
			},
			wantErr: true,
		},
		{
			name: "empty participant name should error",
			expenses: []models.Expense{
				{Name: "Typo", Amount: 10, Payer: "Alice", Participants: []string{"Alice", ""}},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summaries, err := Aggregate(tt.expenses)
			if (err != nil) != tt.wantErr {
				t.Errorf("Aggregate() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidRecord) {
					t.Errorf("Aggregate() error = %v, want ErrInvalidRecord", err)
				}
				return
			}
			if tt.validateFunc != nil {
				tt.validateFunc(t, summaries)
			}
		})
	}
}

func TestAggregate_Conservation(t *testing.T) {
	expenses := sampleExpenses()
	summaries, err := Aggregate(expenses)
	if err != nil {
		t.Fatalf("Aggregate failed: %v", err)
	}

	var spent, paid float64
	for _, s := range summaries {
		spent += s.Spent
		paid += s.Paid
	}
	total := Total(expenses)
	if math.Abs(spent-total) > Epsilon {
		t.Errorf("sum(spent) = %v, want %v", spent, total)
	}
	if math.Abs(paid-total) > Epsilon {
		t.Errorf("sum(paid) = %v, want %v", paid, total)
	}
}

func TestAggregate_OrderIndependent(t *testing.T) {
	expenses := sampleExpenses()
	forward, err := Aggregate(expenses)
	if err != nil {
		t.Fatalf("Aggregate failed: %v", err)
	}

	reversed := make([]models.Expense, len(expenses))
	for i, e := range expenses {
		reversed[len(expenses)-1-i] = e
	}
	backward, err := Aggregate(reversed)
	if err != nil {
		t.Fatalf("Aggregate failed: %v", err)
	}

	if len(forward) != len(backward) {
		t.Fatalf("participant count mismatch: %d vs %d", len(forward), len(backward))
	}
	for name, f := range forward {
		b := backward[name]
		if math.Abs(f.Spent-b.Spent) > Epsilon || math.Abs(f.Paid-b.Paid) > Epsilon {
			t.Errorf("%s: forward %+v, backward %+v", name, f, b)
		}
	}
}

func TestAggregate_RejectsBeforeFolding(t *testing.T) {
	expenses := sampleExpenses()
	expenses = append(expenses, models.Expense{ID: "bad", Name: "Empty", Amount: 10, Payer: "Carl"})

	summaries, err := Aggregate(expenses)
	if !errors.Is(err, ErrInvalidRecord) {
		t.Fatalf("expected ErrInvalidRecord, got %v", err)
	}
	if summaries != nil {
		t.Errorf("expected no partial result, got %d summaries", len(summaries))
	}
}

func TestSortedSummaries(t *testing.T) {
	summaries, err := Aggregate(sampleExpenses())
	if err != nil {
		t.Fatalf("Aggregate failed: %v", err)
	}

	sorted := SortedSummaries(summaries)
	want := []string{"BU", "Carl", "Eric", "Other"}
	if len(sorted) != len(want) {
		t.Fatalf("expected %d summaries, got %d", len(want), len(sorted))
	}
	for i, name := range want {
		if sorted[i].Participant != name {
			t.Errorf("sorted[%d] = %s, want %s", i, sorted[i].Participant, name)
		}
		if sorted[i].Summary != summaries[name] {
			t.Errorf("sorted[%d] summary = %+v, want %+v", i, sorted[i].Summary, summaries[name])
		}
	}
}
