package marina

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency balances are displayed in when none is configured.
const DefaultCurrency = money.USD

// cents is the number of fraction digits amounts are kept and persisted with.
const cents = 2

// Money represents an exact monetary amount, in major units.
//
// Money carries no currency: a registry is kept in a single currency that only
// matters for display.
type Money struct {
	value decimal.Decimal
}

// M returns the Money for the given value, as is.
func M[T float64 | int | int64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// ParseMoney parses a decimal amount like "500.00". The amount is rounded to cents.
// Text that is not a decimal number fails with ErrInvalidNumber.
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("%w: amount %q", ErrInvalidNumber, s)
	}
	return Money{value: d.Round(cents)}, nil
}

// String returns the amount with exactly two fraction digits, the way it is persisted.
func (m Money) String() string { return m.value.StringFixed(cents) }

// Display returns the amount formatted for the given currency code, e.g. "$1,000.00" in USD.
func (m Money) Display(currency string) string {
	// to get a never nil currency I need to call the Money constructor
	cur := *money.New(0, currency).Currency()
	units := m.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(units.IntPart())
}

func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) }
func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) IsNegative() bool         { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool    { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool { return m.value.GreaterThan(n.value) }
func (m Money) Add(n Money) Money        { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money        { return Money{value: m.value.Sub(n.value)} }
func (m Money) Mul(n int) Money          { return Money{value: m.value.Mul(decimal.NewFromInt(int64(n)))} }
