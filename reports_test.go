package tracker

import (
	"testing"

	"github.com/shopspring/decimal"
)

func febRange(t *testing.T) Range {
	t.Helper()
	return Month.Range(MustParseDate("2024-02-10"))
}

func TestNewSpendingReport_Totals(t *testing.T) {
	l := NewLedger()
	l.CreateCategory("Dining", nil)
	l.AddTransaction(tx(1000, Income, "", "2024-02-01"))
	l.AddTransaction(tx(200, Expense, "Dining", "2024-02-10"))
	l.AddTransaction(tx(50, Expense, "", "2024-02-20"))
	l.AddTransaction(tx(999, Expense, "", "2024-03-01")) // outside the range

	r := NewSpendingReport(l, febRange(t), false)

	if !r.Income.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("income = %s, want 1000", r.Income)
	}
	if !r.Expense.Equal(decimal.NewFromInt(250)) {
		t.Errorf("expense = %s, want 250", r.Expense)
	}
	if !r.Net.Equal(decimal.NewFromInt(750)) {
		t.Errorf("net = %s, want 750", r.Net)
	}
	if r.Categories != nil {
		t.Errorf("breakdown was not requested, got %v", r.Categories)
	}
}

func TestNewSpendingReport_BreakdownOrderAndZeroSpend(t *testing.T) {
	l := NewLedger()
	l.CreateCategory("Rent", nil)
	l.CreateCategory("Dining", nil)
	l.CreateCategory("Idle", nil) // never spent against
	l.AddTransaction(tx(300, Expense, "Dining", "2024-02-05"))
	l.AddTransaction(tx(300, Expense, "Rent", "2024-02-06")) // ties with Dining
	l.AddTransaction(tx(40, Expense, "", "2024-02-07"))

	r := NewSpendingReport(l, febRange(t), true)

	var names []string
	for _, cs := range r.Categories {
		names = append(names, cs.Name)
	}
	// Descending expense, ties by name ascending, zero-spend rows included.
	want := []string{"Dining", "Rent", Uncategorized, "Idle"}
	if len(names) != len(want) {
		t.Fatalf("breakdown rows = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("breakdown order = %v, want %v", names, want)
		}
	}

	idle := r.Categories[3]
	if !idle.Expense.IsZero() || !idle.Income.IsZero() || !idle.Net.IsZero() {
		t.Errorf("zero-spend row not zero: %+v", idle)
	}
}

func TestNewSpendingReport_OverLimit(t *testing.T) {
	l := NewLedger()
	limit := A(200)
	l.CreateCategory("Dining", &limit)

	for _, date := range []string{"2024-02-03", "2024-02-08", "2024-02-13", "2024-02-18", "2024-02-23"} {
		if _, err := l.AddTransaction(tx(50, Expense, "Dining", date)); err != nil {
			t.Fatalf("AddTransaction: %v", err)
		}
	}

	r := NewSpendingReport(l, febRange(t), true)

	if len(r.Exceeded) != 1 || r.Exceeded[0].Name != "Dining" {
		t.Fatalf("over-limit rows = %+v, want Dining", r.Exceeded)
	}
	if !r.Exceeded[0].Expense.Equal(decimal.NewFromInt(250)) {
		t.Errorf("Dining total = %s, want 250", r.Exceeded[0].Expense)
	}
	for _, cs := range r.Categories {
		if cs.Name == "Dining" && !cs.OverLimit {
			t.Error("Dining row not flagged over limit")
		}
	}

	// Spending exactly at the limit is not over it.
	l2 := NewLedger()
	l2.CreateCategory("Dining", &limit)
	l2.AddTransaction(tx(200, Expense, "Dining", "2024-02-10"))
	if r2 := NewSpendingReport(l2, febRange(t), true); len(r2.Exceeded) != 0 {
		t.Errorf("at-limit spending flagged: %+v", r2.Exceeded)
	}
}

func TestNewSpendingReport_ExpandsTemplates(t *testing.T) {
	l := NewLedger()
	l.AddTransaction(Transaction{
		Amount:     A(10),
		Type:       Expense,
		Date:       MustParseDate("2024-01-15"),
		Recurrence: Weekly,
	})

	r := NewSpendingReport(l, febRange(t), false)

	// Weekly from Jan 15: Feb 5, 12, 19, 26 fall inside February.
	if !r.Expense.Equal(decimal.NewFromInt(40)) {
		t.Errorf("expense = %s, want 40", r.Expense)
	}
}
