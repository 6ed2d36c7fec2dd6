package models

import (
	"slices"
	"testing"
)

func TestPeople(t *testing.T) {
	expenses := []Expense{
		{Name: "Lunch", Amount: 20, Payer: "Carl", Participants: []string{"Carl", "Eric", "BU"}},
		{Name: "Taxi", Amount: 12, Payer: "Dora", Participants: []string{"Eric", "Eric", ""}},
	}

	got := People(expenses...)
	want := []string{"Carl", "Eric", "BU", "Dora"}
	if !slices.Equal(got, want) {
		t.Errorf("People() = %v, want %v", got, want)
	}

	if got := People(); got != nil {
		t.Errorf("People() with no expenses = %v, want nil", got)
	}
}
