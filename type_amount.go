package tracker

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Amount is a non-negative monetary value with exact decimal arithmetic.
// The sign of a transaction is implied by its type, never by the amount.
type Amount struct {
	value decimal.Decimal
}

// A builds an Amount from a numeric literal. It panics on negative values,
// so it is meant for constants and tests.
func A[T float32 | float64 | int | int32 | int64](value T) Amount {
	a, err := NewAmount(decimal.NewFromFloat(float64(value)))
	if err != nil {
		panic(err.Error())
	}
	return a
}

// NewAmount wraps a decimal into an Amount, rejecting negative values.
func NewAmount(value decimal.Decimal) (Amount, error) {
	if value.IsNegative() {
		return Amount{}, fmt.Errorf("%w: must not be negative, got %s", ErrInvalidAmount, value)
	}
	return Amount{value: value}, nil
}

// ParseAmount parses a decimal string into an Amount.
func ParseAmount(str string) (Amount, error) {
	value, err := decimal.NewFromString(str)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %q is not a number", ErrInvalidAmount, str)
	}
	return NewAmount(value)
}

// Decimal returns the underlying exact value.
func (a Amount) Decimal() decimal.Decimal { return a.value }

func (a Amount) String() string      { return a.value.String() }
func (a Amount) IsZero() bool        { return a.value.IsZero() }
func (a Amount) Equal(b Amount) bool { return a.value.Equal(b.value) }

func (a Amount) MarshalJSON() ([]byte, error)    { return a.value.MarshalJSON() }
func (a *Amount) UnmarshalJSON(data []byte) error {
	var value decimal.Decimal
	if err := value.UnmarshalJSON(data); err != nil {
		return err
	}
	parsed, err := NewAmount(value)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// FormatMoney renders a signed decimal value in the given display currency,
// e.g. FormatMoney(d, "USD") -> "$1,234.50".
func FormatMoney(value decimal.Decimal, currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return value.StringFixed(2) + " " + currency
	}
	minor := value.Shift(int32(cur.Fraction))
	return money.New(minor.Round(0).IntPart(), currency).Display()
}

// SignedMoney is like FormatMoney but prefixes positive values with "+",
// for balance deltas.
func SignedMoney(value decimal.Decimal, currency string) string {
	if value.IsPositive() {
		return "+" + FormatMoney(value, currency)
	}
	return FormatMoney(value, currency)
}
