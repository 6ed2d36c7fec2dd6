package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/models"
)

func TestAmount(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{20, "20.00"},
		{20.0 / 3, "6.67"},
		{-20.0 / 3, "-6.67"},
		{2.005, "2.01"},
		{1234.5, "1234.50"},
	}

	for _, tt := range tests {
		if got := Amount(tt.in); got != tt.want {
			t.Errorf("Amount(%v) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestWriteTransactions(t *testing.T) {
	var buf bytes.Buffer
	txns := []calculator.Transaction{
		{Payer: "BU", Payee: "Carl", Amount: 20.0 / 3},
		{Payer: "Eric", Payee: "Carl", Amount: 20.0 / 3},
	}

	if err := WriteTransactions(&buf, txns); err != nil {
		t.Fatalf("WriteTransactions failed: %v", err)
	}

	want := "BU owes Carl 6.67\nEric owes Carl 6.67\n"
	if buf.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", buf.String(), want)
	}

	buf.Reset()
	if err := WriteTransactions(&buf, nil); err != nil {
		t.Fatalf("WriteTransactions failed: %v", err)
	}
	if !strings.Contains(buf.String(), "settled") {
		t.Errorf("empty plan output = %q", buf.String())
	}
}

func TestWriteSummary(t *testing.T) {
	expenses := []models.Expense{
		{Name: "Lunch", Amount: 20, Payer: "Carl", Participants: []string{"Carl", "Eric", "BU"}},
	}
	summaries, err := calculator.Aggregate(expenses)
	if err != nil {
		t.Fatalf("Aggregate failed: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteSummary(&buf, calculator.SortedSummaries(summaries), calculator.Total(expenses)); err != nil {
		t.Fatalf("WriteSummary failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected header, 3 rows and total, got %d lines:\n%s", len(lines), buf.String())
	}
	for _, want := range []string{"BU", "6.67", "-13.33", "20.00"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("summary missing %q:\n%s", want, buf.String())
		}
	}
}

func TestWriteExpenses(t *testing.T) {
	expenses := []models.Expense{
		{ID: "a1", Name: "Lunch", Amount: 20, Payer: "Carl", Participants: []string{"Carl", "Eric"}},
		{ID: "b2", Name: "Coffee", Amount: 5.5, Payer: "Eric", Participants: []string{"Eric"}},
	}

	var buf bytes.Buffer
	if err := WriteExpenses(&buf, expenses); err != nil {
		t.Fatalf("WriteExpenses failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Lunch", "Coffee", "5.50", "25.50", "[Carl Eric]"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
