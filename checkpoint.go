package tracker

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Checkpoint asserts the true balance at the end of a given day.
// Balance projection starts from the newest checkpoint at or before the
// target date instead of summing the whole history.
type Checkpoint struct {
	Date   Date
	Amount decimal.Decimal // signed
}

// setCheckpoint inserts a checkpoint, replacing any existing one on the same
// date, and keeps the list sorted by date.
func setCheckpoint(cps []Checkpoint, cp Checkpoint) []Checkpoint {
	kept := cps[:0]
	for _, c := range cps {
		if c.Date != cp.Date {
			kept = append(kept, c)
		}
	}
	kept = append(kept, cp)
	sort.Slice(kept, func(i, j int) bool { return kept[i].Date.Before(kept[j].Date) })
	return kept
}

// nearestCheckpoint returns the newest checkpoint dated at or before target.
func nearestCheckpoint(cps []Checkpoint, target Date) (Checkpoint, bool) {
	for i := len(cps) - 1; i >= 0; i-- {
		if !cps[i].Date.After(target) {
			return cps[i], true
		}
	}
	return Checkpoint{}, false
}
