package tracker

import (
	"fmt"
	"iter"
)

// TransactionStore owns the set of transactions and the id allocation.
// Ids are positive, assigned monotonically, and never reused; the backing
// slice is therefore always sorted by id.
type TransactionStore struct {
	txs     []Transaction
	indexOf map[int]int // id -> position in txs
	nextID  int
}

// NewTransactionStore creates an empty store.
func NewTransactionStore() *TransactionStore {
	return &TransactionStore{indexOf: make(map[int]int), nextID: 1}
}

// Add assigns the next id to the transaction and stores it.
func (s *TransactionStore) Add(t Transaction) Transaction {
	t.ID = s.nextID
	s.nextID++
	s.indexOf[t.ID] = len(s.txs)
	s.txs = append(s.txs, t)
	return t
}

// restore re-inserts a transaction from a snapshot, keeping its id.
// The caller feeds transactions in ascending id order.
func (s *TransactionStore) restore(t Transaction) error {
	if t.ID <= 0 {
		return fmt.Errorf("transaction id must be positive, got %d", t.ID)
	}
	if _, ok := s.indexOf[t.ID]; ok {
		return fmt.Errorf("duplicate transaction id %d", t.ID)
	}
	if n := len(s.txs); n > 0 && s.txs[n-1].ID > t.ID {
		return fmt.Errorf("transaction id %d out of order", t.ID)
	}
	s.indexOf[t.ID] = len(s.txs)
	s.txs = append(s.txs, t)
	if t.ID >= s.nextID {
		s.nextID = t.ID + 1
	}
	return nil
}

// Get returns the transaction with this id.
func (s *TransactionStore) Get(id int) (Transaction, bool) {
	i, ok := s.indexOf[id]
	if !ok {
		return Transaction{}, false
	}
	return s.txs[i], true
}

// Len returns the number of stored transactions.
func (s *TransactionStore) Len() int { return len(s.txs) }

// DeleteByID removes a single transaction.
func (s *TransactionStore) DeleteByID(id int) error {
	i, ok := s.indexOf[id]
	if !ok {
		return fmt.Errorf("%w: id %d", ErrUnknownTransaction, id)
	}
	s.txs = append(s.txs[:i], s.txs[i+1:]...)
	delete(s.indexOf, id)
	s.reindex(i)
	return nil
}

// DeleteByFilter removes every transaction matching all set criteria and
// returns the count removed. Zero matches is a valid outcome, not an error,
// but a filter with no criteria at all is rejected to avoid silent mass
// deletion.
func (s *TransactionStore) DeleteByFilter(f Filter) (int, error) {
	if f.IsZero() {
		return 0, fmt.Errorf("%w: at least one criterion is required", ErrInvalidFilter)
	}
	if err := f.Validate(); err != nil {
		return 0, err
	}
	kept := s.txs[:0]
	removed := 0
	for _, t := range s.txs {
		if f.Matches(t) {
			delete(s.indexOf, t.ID)
			removed++
			continue
		}
		kept = append(kept, t)
	}
	s.txs = kept
	if removed > 0 {
		s.reindex(0)
	}
	return removed, nil
}

// ClearCategory nulls out the category reference on every transaction
// pointing at name and returns the ids touched, in ascending order.
func (s *TransactionStore) ClearCategory(name string) []int {
	var ids []int
	for i := range s.txs {
		if s.txs[i].Category == name {
			s.txs[i].Category = ""
			ids = append(ids, s.txs[i].ID)
		}
	}
	return ids
}

// All iterates over transactions matching the filter, in ascending id order.
// The zero Filter yields everything.
func (s *TransactionStore) All(f Filter) iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, t := range s.txs {
			if !f.Matches(t) {
				continue
			}
			if !yield(t) {
				return
			}
		}
	}
}

// templates iterates over recurrence templates in ascending id order.
func (s *TransactionStore) templates() iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, t := range s.txs {
			if !t.IsTemplate() {
				continue
			}
			if !yield(t) {
				return
			}
		}
	}
}

// setLastExpanded records how far a template has been expanded.
func (s *TransactionStore) setLastExpanded(id int, d Date) {
	if i, ok := s.indexOf[id]; ok {
		s.txs[i].LastExpanded = d
	}
}

func (s *TransactionStore) reindex(from int) {
	for i := from; i < len(s.txs); i++ {
		s.indexOf[s.txs[i].ID] = i
	}
}
