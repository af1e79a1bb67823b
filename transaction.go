package tracker

import (
	"encoding/json"
	"fmt"
	"strings"
)

// TransactionType tells whether a transaction adds to or subtracts from the balance.
// The zero value means "unset" so that a Filter can leave it unconstrained.
type TransactionType int

const (
	Income TransactionType = iota + 1
	Expense
)

func (t TransactionType) String() string {
	switch t {
	case Income:
		return "income"
	case Expense:
		return "expense"
	default:
		return "unset"
	}
}

// ParseTransactionType parses an "income" or "expense" token.
func ParseTransactionType(s string) (TransactionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income":
		return Income, nil
	case "expense":
		return Expense, nil
	default:
		return 0, fmt.Errorf("transaction type must be 'income' or 'expense', got %q", s)
	}
}

func (t TransactionType) MarshalJSON() ([]byte, error) { return json.Marshal(t.String()) }

func (t *TransactionType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParseTransactionType(str)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Recurrence is the cadence of a recurring transaction template.
// The zero value None marks an ordinary one-off transaction.
type Recurrence int

const (
	None Recurrence = iota
	Daily
	Weekly
	Monthly
	Yearly
)

func (r Recurrence) String() string {
	switch r {
	case None:
		return ""
	case Daily:
		return "daily"
	case Weekly:
		return "weekly"
	case Monthly:
		return "monthly"
	case Yearly:
		return "yearly"
	default:
		return "unknown"
	}
}

// ParseRecurrence parses a cadence token. The empty string parses to None.
func ParseRecurrence(s string) (Recurrence, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return None, nil
	case "daily":
		return Daily, nil
	case "weekly":
		return Weekly, nil
	case "monthly":
		return Monthly, nil
	case "yearly":
		return Yearly, nil
	default:
		return None, fmt.Errorf("%w: %q, want daily, weekly, monthly or yearly", ErrInvalidRecurrence, s)
	}
}

// Step returns the n-th occurrence date after the template date.
// Monthly steps keep the template's day of month, clamped to the last valid
// day of shorter months; yearly steps clamp Feb 29 to Feb 28 off leap years.
func (r Recurrence) Step(template Date, n int) Date {
	switch r {
	case Daily:
		return template.Add(n)
	case Weekly:
		return template.Add(7 * n)
	case Monthly:
		return template.AddMonths(n)
	case Yearly:
		return template.AddYears(n)
	default:
		panic("step on non-recurring transaction")
	}
}

func (r Recurrence) MarshalJSON() ([]byte, error) { return json.Marshal(r.String()) }

func (r *Recurrence) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParseRecurrence(str)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Transaction is a single income or expense record.
//
// A transaction with a Recurrence is a template: the expander derives
// concrete occurrences from it as time advances, and LastExpanded tracks how
// far that derivation has already run. A template still counts as a regular
// transaction on its own date.
type Transaction struct {
	ID           int
	Amount       Amount
	Type         TransactionType
	Category     string // empty means uncategorized
	Date         Date
	Description  string
	Recurrence   Recurrence
	LastExpanded Date // zero until the template is first expanded
}

// IsTemplate reports whether the transaction generates recurring occurrences.
func (t Transaction) IsTemplate() bool { return t.Recurrence != None }

func (t Transaction) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "#%d %s %s on %s", t.ID, t.Type, t.Amount, t.Date)
	if t.Category != "" {
		fmt.Fprintf(&b, " [%s]", t.Category)
	}
	if t.IsTemplate() {
		fmt.Fprintf(&b, " (recurring %s)", t.Recurrence)
	}
	if t.Description != "" {
		fmt.Fprintf(&b, " %q", t.Description)
	}
	return b.String()
}

// Filter selects transactions by the conjunction of its set fields.
// The zero value matches everything.
type Filter struct {
	Type     TransactionType // zero means any type
	Category string          // empty means any category
	Amount   *Amount         // nil means any amount; exact equality otherwise
	From, To Date            // zero means open-ended; both boundaries inclusive
}

// IsZero reports whether no criterion is set.
func (f Filter) IsZero() bool {
	return f.Type == 0 && f.Category == "" && f.Amount == nil && f.From.IsZero() && f.To.IsZero()
}

// Validate rejects an inverted date range.
func (f Filter) Validate() error {
	if !f.From.IsZero() && !f.To.IsZero() && f.From.After(f.To) {
		return fmt.Errorf("%w: 'from' %s is after 'to' %s", ErrInvalidFilter, f.From, f.To)
	}
	return nil
}

// Matches reports whether the transaction satisfies every set criterion.
func (f Filter) Matches(t Transaction) bool {
	if f.Type != 0 && t.Type != f.Type {
		return false
	}
	if f.Category != "" && t.Category != f.Category {
		return false
	}
	if f.Amount != nil && !t.Amount.Equal(*f.Amount) {
		return false
	}
	if !f.From.IsZero() && t.Date.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && t.Date.After(f.To) {
		return false
	}
	return true
}
