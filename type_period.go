package tracker

import (
	"fmt"
	"strings"
)

// Period is a reporting timeframe.
type Period int

const (
	Day Period = iota
	Month
	Year
)

func (p Period) String() string {
	switch p {
	case Day:
		return "day"
	case Month:
		return "month"
	case Year:
		return "year"
	default:
		return "period"
	}
}

// Range returns the full range of the period containing d.
func (p Period) Range(d Date) Range {
	return Range{From: d.StartOf(p), To: d.EndOf(p)}
}

// ParsePeriod parses a reporting timeframe token.
func ParsePeriod(s string) (Period, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "day", "daily":
		return Day, nil
	case "month", "monthly":
		return Month, nil
	case "year", "yearly", "annual":
		return Year, nil
	default:
		return Day, fmt.Errorf("unknown timeframe %q", s)
	}
}

// Range represents an inclusive range of dates.
type Range struct{ From, To Date }

// NewRange creates a new date range. If 'from' is after 'to', they are swapped.
func NewRange(from, to Date) Range {
	if from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// Contains returns true if date is included in the range (boundaries included).
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// Identifier computes a short human-readable name for the range.
func (r Range) Identifier() string {
	switch {
	case r.From == r.To:
		return r.From.String()
	case r.From.StartOf(Month) == r.From && r.From.EndOf(Month) == r.To:
		return r.From.Format("2006-January")
	case r.From.StartOf(Year) == r.From && r.From.EndOf(Year) == r.To:
		return r.From.Format("2006")
	default:
		return fmt.Sprintf("%s_%s", r.From, r.To)
	}
}
