package zenith

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M creates a Money in the given currency.
func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// USD creates a Money in US dollars, the reporting currency of every view.
func USD[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Money {
	return M(value, "USD")
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the string representation of the money value, e.g. "$97,500.00".
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// Fixed returns the plain decimal representation with exactly 'places' digits, e.g. "97500.00".
func (m Money) Fixed(places int32) string { return m.value.StringFixed(places) }

func (m Money) Currency() string              { return m.cur }
func (m Money) Decimal() decimal.Decimal      { return m.value }
func (m Money) Equal(n Money) bool            { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool                  { return m.value.IsZero() }
func (m Money) IsNegative() bool              { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool         { return m.value.LessThan(n.value) }
func (m Money) Mul(n Quantity) Money          { return Money{value: m.value.Mul(n.value), cur: m.cur} }
func (m Money) MulPercent(p Percent) Money    { return Money{value: m.value.Mul(p.value).Div(hundred), cur: m.cur} }
func (m Money) Scale(factor decimal.Decimal) Money { return Money{value: m.value.Mul(factor), cur: m.cur} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// Share returns the percentage m represents of total. A zero total yields 0%.
func (m Money) Share(total Money) Percent {
	if total.value.IsZero() {
		return Percent{}
	}
	return Percent{value: m.value.Div(total.value).Mul(hundred)}
}

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch" + A.cur + "!=" + B.cur)
	}
	return A.cur
}

// SignedString returns the string representation of the money value with a sign.
// 0 is represented as a "-"
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}
