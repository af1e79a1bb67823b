package tracker

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// snapshotVersion is written into every save file so the format can evolve.
const snapshotVersion = 1

// MarshalJSON implements json.Marshaler with a canonical key order.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("date", t.Date)
	w.Append("type", t.Type)
	w.Append("amount", t.Amount)
	w.Optional("category", t.Category)
	w.Optional("description", t.Description)
	w.Optional("recurrence", t.Recurrence)
	if !t.LastExpanded.IsZero() {
		w.Append("lastExpanded", t.LastExpanded)
	}
	return w.MarshalJSON()
}

// UnmarshalJSON implements json.Unmarshaler for a transaction record.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID           int             `json:"id"`
		Amount       Amount          `json:"amount"`
		Type         TransactionType `json:"type"`
		Category     string          `json:"category"`
		Date         Date            `json:"date"`
		Description  string          `json:"description"`
		Recurrence   Recurrence      `json:"recurrence"`
		LastExpanded Date            `json:"lastExpanded"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*t = Transaction(temp)
	return nil
}

// MarshalJSON implements json.Marshaler, omitting the limit when unlimited.
func (c Category) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("name", c.Name)
	if c.Limit != nil {
		w.Append("limit", *c.Limit)
	}
	return w.MarshalJSON()
}

// UnmarshalJSON implements json.Unmarshaler for a category record.
func (c *Category) UnmarshalJSON(data []byte) error {
	var temp struct {
		Name  string  `json:"name"`
		Limit *Amount `json:"limit"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*c = Category(temp)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (cp Checkpoint) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", cp.Date)
	w.Append("amount", cp.Amount)
	return w.MarshalJSON()
}

// UnmarshalJSON implements json.Unmarshaler.
func (cp *Checkpoint) UnmarshalJSON(data []byte) error {
	var temp struct {
		Date   Date            `json:"date"`
		Amount decimal.Decimal `json:"amount"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*cp = Checkpoint(temp)
	return nil
}

// MarshalJSON implements json.Marshaler for the whole snapshot.
func (s *Snapshot) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("version", snapshotVersion)
	w.Append("counter", s.Counter)
	w.Append("categories", s.Categories)
	w.Append("transactions", s.Transactions)
	w.Optional("checkpoints", s.Checkpoints)
	return w.MarshalJSON()
}

// UnmarshalJSON implements json.Unmarshaler, rejecting versions this build
// does not know.
func (s *Snapshot) UnmarshalJSON(data []byte) error {
	var temp struct {
		Version      int           `json:"version"`
		Counter      int           `json:"counter"`
		Categories   []Category    `json:"categories"`
		Transactions []Transaction `json:"transactions"`
		Checkpoints  []Checkpoint  `json:"checkpoints"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	if temp.Version > snapshotVersion {
		return fmt.Errorf("save file version %d is newer than this build supports (%d)", temp.Version, snapshotVersion)
	}
	s.Counter = temp.Counter
	s.Categories = temp.Categories
	s.Transactions = temp.Transactions
	s.Checkpoints = temp.Checkpoints
	return nil
}

// EncodeSnapshot writes the snapshot as one indented JSON document.
func EncodeSnapshot(w io.Writer, snap *Snapshot) error {
	decimal.MarshalJSONWithoutQuotes = true
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("could not encode snapshot: %w", err)
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return fmt.Errorf("could not format snapshot: %w", err)
	}
	buf.WriteByte('\n')
	_, err = w.Write(buf.Bytes())
	return err
}

// DecodeSnapshot reads one JSON snapshot document.
func DecodeSnapshot(r io.Reader) (*Snapshot, error) {
	var snap Snapshot
	dec := json.NewDecoder(r)
	if err := dec.Decode(&snap); err != nil {
		return nil, fmt.Errorf("could not decode snapshot: %w", err)
	}
	return &snap, nil
}
