package tracker

import (
	"fmt"
	"iter"
	"log"
	"slices"

	"github.com/shopspring/decimal"
)

// Ledger is the engine composing the category registry, the transaction
// store and the balance checkpoints. It exclusively owns its parts: every
// mutation goes through a Ledger method so the cross-component invariants
// hold (category references are live, expansion is idempotent).
type Ledger struct {
	categories  *CategoryRegistry
	store       *TransactionStore
	checkpoints []Checkpoint
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		categories: NewCategoryRegistry(),
		store:      NewTransactionStore(),
	}
}

// AddTransaction validates the fields, assigns the next id and stores the
// transaction. A zero date defaults to today. A non-empty category must name
// an existing category; unknown names are rejected, never auto-created.
func (l *Ledger) AddTransaction(t Transaction) (Transaction, error) {
	if t.Type != Income && t.Type != Expense {
		return Transaction{}, fmt.Errorf("transaction type must be income or expense")
	}
	if t.Category != "" && !l.categories.Has(t.Category) {
		return Transaction{}, fmt.Errorf("%w: %q", ErrUnknownCategory, t.Category)
	}
	if t.Date.IsZero() {
		t.Date = Today()
	}
	t.LastExpanded = Date{} // expansion state always starts fresh
	return l.store.Add(t), nil
}

// DeleteTransaction removes a single transaction by id.
func (l *Ledger) DeleteTransaction(id int) error {
	return l.store.DeleteByID(id)
}

// DeleteWhere removes every transaction matching the filter and returns the
// count removed.
func (l *Ledger) DeleteWhere(f Filter) (int, error) {
	if f.Category != "" && !l.categories.Has(f.Category) {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, f.Category)
	}
	return l.store.DeleteByFilter(f)
}

// Transaction returns the transaction with this id.
func (l *Ledger) Transaction(id int) (Transaction, bool) {
	return l.store.Get(id)
}

// Transactions iterates over transactions matching the filter in ascending
// id order.
func (l *Ledger) Transactions(f Filter) iter.Seq[Transaction] {
	return l.store.All(f)
}

// CreateCategory registers a new category with an optional spending limit.
func (l *Ledger) CreateCategory(name string, limit *Amount) error {
	return l.categories.Create(name, limit)
}

// DeleteCategory removes the category and nulls out the reference on every
// transaction that pointed at it. The transactions themselves survive; the
// ids touched by the cascade are returned in ascending order.
func (l *Ledger) DeleteCategory(name string) ([]int, error) {
	if err := l.categories.Delete(name); err != nil {
		return nil, err
	}
	return l.store.ClearCategory(name), nil
}

// Category returns the category with this name.
func (l *Ledger) Category(name string) (Category, bool) {
	return l.categories.Get(name)
}

// Categories iterates over categories in creation order.
func (l *Ledger) Categories() iter.Seq[Category] {
	return l.categories.All()
}

// SetCheckpoint records the known balance at the end of the given day,
// replacing a previous checkpoint on the same date.
func (l *Ledger) SetCheckpoint(on Date, amount decimal.Decimal) {
	l.checkpoints = setCheckpoint(l.checkpoints, Checkpoint{Date: on, Amount: amount})
}

// Checkpoints returns the checkpoints in ascending date order.
func (l *Ledger) Checkpoints() []Checkpoint {
	return slices.Clone(l.checkpoints)
}

// ExpandTo materializes every pending occurrence of every recurrence
// template up to and including target. It runs lazily before any dated read
// and is idempotent: occurrences already covered by a template's
// last-expanded date are never produced twice.
func (l *Ledger) ExpandTo(target Date) {
	// Collect first: materializing appends to the store being iterated.
	var templates []Transaction
	for t := range l.store.templates() {
		if t.LastExpanded.IsZero() || t.LastExpanded.Before(target) {
			templates = append(templates, t)
		}
	}
	for _, tpl := range templates {
		dates := Occurrences(tpl, tpl.LastExpanded, target)
		for _, on := range dates {
			l.store.Add(materialize(tpl, on))
		}
		if len(dates) > 0 {
			log.Printf("materialized %d occurrences of #%d up to %s", len(dates), tpl.ID, target)
		}
		l.store.setLastExpanded(tpl.ID, target)
	}
}

// Snapshot is the complete serializable state of the ledger: categories in
// creation order, transactions in ascending id order, checkpoints in date
// order, and the id allocation counter. It round-trips losslessly through
// the JSON codec.
type Snapshot struct {
	Counter      int
	Categories   []Category
	Transactions []Transaction
	Checkpoints  []Checkpoint
}

// Snapshot exports the full ledger state.
func (l *Ledger) Snapshot() *Snapshot {
	snap := &Snapshot{Counter: l.store.nextID}
	for c := range l.categories.All() {
		snap.Categories = append(snap.Categories, c)
	}
	for t := range l.store.All(Filter{}) {
		snap.Transactions = append(snap.Transactions, t)
	}
	snap.Checkpoints = slices.Clone(l.checkpoints)
	return snap
}

// RestoreLedger rebuilds a ledger wholesale from a snapshot, re-checking the
// referential invariants so a hand-edited save cannot smuggle in a dangling
// category reference or a duplicate id.
func RestoreLedger(snap *Snapshot) (*Ledger, error) {
	l := NewLedger()
	for _, c := range snap.Categories {
		if err := l.categories.Create(c.Name, c.Limit); err != nil {
			return nil, err
		}
	}
	for _, t := range snap.Transactions {
		if t.Category != "" && !l.categories.Has(t.Category) {
			return nil, fmt.Errorf("transaction %d references %w %q", t.ID, ErrUnknownCategory, t.Category)
		}
		if t.Type != Income && t.Type != Expense {
			return nil, fmt.Errorf("transaction %d has no type", t.ID)
		}
		if err := l.store.restore(t); err != nil {
			return nil, err
		}
	}
	if snap.Counter > l.store.nextID {
		l.store.nextID = snap.Counter
	}
	for _, cp := range snap.Checkpoints {
		l.checkpoints = setCheckpoint(l.checkpoints, cp)
	}
	return l, nil
}
