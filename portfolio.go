package zenith

import (
	"errors"
	"slices"
)

// Portfolio is the aggregate valuation of all the user's assets.
type Portfolio struct {
	TotalValueUSD Money
	Change24h     Percent
	Assets        []Asset // in display order
}

// Clone returns a deep copy of the portfolio.
func (p Portfolio) Clone() Portfolio {
	p.Assets = slices.Clone(p.Assets)
	return p
}

// SumAssets returns the sum of every asset value.
// It should be close to TotalValueUSD but nothing enforces it.
func (p Portfolio) SumAssets() Money {
	sum := USD(0)
	for _, a := range p.Assets {
		sum = sum.Add(a.ValueUSD)
	}
	return sum
}

// Change24hValue returns the USD amount of the last 24h change.
func (p Portfolio) Change24hValue() Money {
	return p.TotalValueUSD.MulPercent(p.Change24h)
}

// Allocation is the share of a single asset in the portfolio.
type Allocation struct {
	Symbol string
	Value  Money
	Share  Percent
}

// Allocation returns each asset's share of the sum of asset values, in display order.
func (p Portfolio) Allocation() []Allocation {
	total := p.SumAssets()
	result := make([]Allocation, 0, len(p.Assets))
	for _, a := range p.Assets {
		result = append(result, Allocation{
			Symbol: a.Symbol,
			Value:  a.ValueUSD,
			Share:  a.ValueUSD.Share(total),
		})
	}
	return result
}

// Validate checks the portfolio and all its assets.
func (p Portfolio) Validate() error {
	var errs []error
	if p.TotalValueUSD.IsNegative() {
		errs = append(errs, errors.New("negative total value"))
	}
	for _, a := range p.Assets {
		if err := a.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
