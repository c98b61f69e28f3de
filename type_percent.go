package zenith

import (
	"github.com/shopspring/decimal"
)

// Percent is a signed percentage, 2.5 means 2.5%.
type Percent struct {
	value decimal.Decimal
}

func Pct[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Percent {
	return Percent{value: newDecimal(value)}
}

func (p Percent) Decimal() decimal.Decimal { return p.value }
func (p Percent) IsNegative() bool         { return p.value.IsNegative() }

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	precision := decimal.New(1, -4)
	return p.value.Sub(q.value).Abs().LessThan(precision)
}

func (p Percent) String() string {
	return p.value.StringFixed(2) + "%"
}

// Rounded returns the percentage with 'places' decimals, e.g. "62%".
func (p Percent) Rounded(places int32) string {
	return p.value.StringFixed(places) + "%"
}

// SignedString returns the percentage with an explicit sign, zero is rendered as "-".
func (p Percent) SignedString() string {
	v := p.value.Round(2)
	if v.IsZero() {
		return "-"
	}
	if v.IsPositive() {
		return "+" + v.StringFixed(2) + "%"
	}
	return v.StringFixed(2) + "%"
}
