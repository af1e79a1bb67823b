package tracker

import (
	"testing"
)

func template(date string, r Recurrence) Transaction {
	return Transaction{
		ID:         1,
		Amount:     A(100),
		Type:       Expense,
		Date:       MustParseDate(date),
		Recurrence: r,
	}
}

func TestOccurrences(t *testing.T) {
	tests := []struct {
		name     string
		template Transaction
		after    string // empty means never expanded
		target   string
		want     []string
	}{
		{
			name:     "daily",
			template: template("2024-01-01", Daily),
			target:   "2024-01-04",
			want:     []string{"2024-01-02", "2024-01-03", "2024-01-04"},
		},
		{
			name:     "weekly",
			template: template("2024-01-01", Weekly),
			target:   "2024-01-20",
			want:     []string{"2024-01-08", "2024-01-15"},
		},
		{
			name:     "monthly end-of-month clamps to february",
			template: template("2024-01-31", Monthly),
			target:   "2024-03-05",
			want:     []string{"2024-02-29"},
		},
		{
			name:     "monthly clamp does not stick",
			template: template("2024-01-31", Monthly),
			target:   "2024-04-30",
			want:     []string{"2024-02-29", "2024-03-31", "2024-04-30"},
		},
		{
			name:     "monthly short february off leap year",
			template: template("2025-01-31", Monthly),
			target:   "2025-02-28",
			want:     []string{"2025-02-28"},
		},
		{
			name:     "yearly leap day clamps",
			template: template("2024-02-29", Yearly),
			target:   "2026-03-01",
			want:     []string{"2025-02-28", "2026-02-28"},
		},
		{
			name:     "target before first occurrence",
			template: template("2024-01-01", Monthly),
			target:   "2024-01-31",
			want:     nil,
		},
		{
			name:     "target on template date",
			template: template("2024-01-01", Daily),
			target:   "2024-01-01",
			want:     nil,
		},
		{
			name:     "target before template date",
			template: template("2024-06-01", Daily),
			target:   "2024-05-01",
			want:     nil,
		},
		{
			name:     "already expanded part way",
			template: template("2024-01-01", Monthly),
			after:    "2024-02-15",
			target:   "2024-04-15",
			want:     []string{"2024-03-01", "2024-04-01"},
		},
		{
			name:     "already expanded to target",
			template: template("2024-01-01", Monthly),
			after:    "2024-04-15",
			target:   "2024-04-15",
			want:     nil,
		},
		{
			name:     "non-template yields nothing",
			template: Transaction{ID: 1, Amount: A(10), Type: Income, Date: MustParseDate("2024-01-01")},
			target:   "2024-12-31",
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var after Date
			if tt.after != "" {
				after = MustParseDate(tt.after)
			}
			got := Occurrences(tt.template, after, MustParseDate(tt.target))
			if len(got) != len(tt.want) {
				t.Fatalf("Occurrences() = %v, want %v", got, tt.want)
			}
			for i, d := range got {
				if d != MustParseDate(tt.want[i]) {
					t.Errorf("occurrence[%d] = %s, want %s", i, d, tt.want[i])
				}
			}
		})
	}
}

func TestMaterialize(t *testing.T) {
	tpl := Transaction{
		ID:          7,
		Amount:      A(42),
		Type:        Expense,
		Category:    "Rent",
		Date:        MustParseDate("2024-01-01"),
		Description: "flat",
		Recurrence:  Monthly,
	}
	got := materialize(tpl, MustParseDate("2024-02-01"))

	if got.ID != 0 {
		t.Errorf("occurrence must not carry the template id, got %d", got.ID)
	}
	if got.Recurrence != None {
		t.Errorf("occurrence must not itself recur, got %s", got.Recurrence)
	}
	if got.Date != MustParseDate("2024-02-01") {
		t.Errorf("occurrence date = %s", got.Date)
	}
	if !got.Amount.Equal(tpl.Amount) || got.Type != tpl.Type || got.Category != tpl.Category || got.Description != tpl.Description {
		t.Errorf("occurrence does not carry the template fields: %+v", got)
	}
}
