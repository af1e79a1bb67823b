package tracker

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Uncategorized is the breakdown bucket for transactions without a category.
const Uncategorized = "uncategorized"

// BalanceAsOf computes the signed balance on a date: income minus expenses
// over every transaction dated on or before it, after materializing pending
// recurring occurrences up to that date. When a checkpoint exists at or
// before the date, the projection starts from the newest one and only
// transactions strictly after the checkpoint date are applied.
func (l *Ledger) BalanceAsOf(on Date) decimal.Decimal {
	l.ExpandTo(on)

	balance := decimal.Zero
	f := Filter{To: on}
	if cp, ok := nearestCheckpoint(l.checkpoints, on); ok {
		balance = cp.Amount
		f.From = cp.Date.Add(1)
	}
	for t := range l.store.All(f) {
		balance = apply(balance, t)
	}
	return balance
}

func apply(balance decimal.Decimal, t Transaction) decimal.Decimal {
	if t.Type == Income {
		return balance.Add(t.Amount.Decimal())
	}
	return balance.Sub(t.Amount.Decimal())
}

// SpendingReport summarizes activity within a date range.
type SpendingReport struct {
	Range   Range
	Income  decimal.Decimal
	Expense decimal.Decimal
	Net     decimal.Decimal
	// Categories holds the per-category breakdown when requested, ordered
	// by descending expense total, ties broken by name ascending. Every
	// registered category appears, zero-spend ones included, plus an
	// "uncategorized" bucket.
	Categories []CategorySpending
	// Exceeded lists the categories whose expense total within the range
	// exceeds their configured limit. Always populated, breakdown or not.
	Exceeded []CategorySpending
}

// CategorySpending is one row of the per-category breakdown.
type CategorySpending struct {
	Name      string
	Income    decimal.Decimal
	Expense   decimal.Decimal
	Net       decimal.Decimal
	Limit     *Amount // nil when unlimited or uncategorized
	OverLimit bool    // expense total exceeds the configured limit
}

// NewSpendingReport aggregates transactions inside the range, expanding
// recurring templates up to the end of the range first.
func NewSpendingReport(l *Ledger, r Range, withCategories bool) *SpendingReport {
	l.ExpandTo(r.To)

	report := &SpendingReport{
		Range:   r,
		Income:  decimal.Zero,
		Expense: decimal.Zero,
	}

	byName := make(map[string]*CategorySpending)
	row := func(name string) *CategorySpending {
		cs, ok := byName[name]
		if !ok {
			cs = &CategorySpending{
				Name:    name,
				Income:  decimal.Zero,
				Expense: decimal.Zero,
				Net:     decimal.Zero,
			}
			byName[name] = cs
		}
		return cs
	}
	// Pre-seed every registered category so zero-spend ones show up with a
	// predictable shape.
	for c := range l.Categories() {
		row(c.Name).Limit = c.Limit
	}
	row(Uncategorized)

	for t := range l.store.All(Filter{From: r.From, To: r.To}) {
		amount := t.Amount.Decimal()
		name := t.Category
		if name == "" {
			name = Uncategorized
		}
		cs := row(name)
		if t.Type == Income {
			report.Income = report.Income.Add(amount)
			cs.Income = cs.Income.Add(amount)
			cs.Net = cs.Net.Add(amount)
		} else {
			report.Expense = report.Expense.Add(amount)
			cs.Expense = cs.Expense.Add(amount)
			cs.Net = cs.Net.Sub(amount)
		}
	}
	report.Net = report.Income.Sub(report.Expense)

	for _, cs := range byName {
		if cs.Limit != nil && cs.Expense.GreaterThan(cs.Limit.Decimal()) {
			cs.OverLimit = true
			report.Exceeded = append(report.Exceeded, *cs)
		}
	}
	sortBreakdown(report.Exceeded)

	if withCategories {
		for _, cs := range byName {
			report.Categories = append(report.Categories, *cs)
		}
		sortBreakdown(report.Categories)
	}
	return report
}

// sortBreakdown orders rows by descending expense total, ties broken by
// category name ascending.
func sortBreakdown(rows []CategorySpending) {
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if !a.Expense.Equal(b.Expense) {
			return a.Expense.GreaterThan(b.Expense)
		}
		return a.Name < b.Name
	})
}
