package zenith

import (
	"errors"
	"fmt"
)

// AssetType tells whether an asset is a crypto currency or a fiat currency.
type AssetType string

const (
	Crypto AssetType = "crypto"
	Fiat   AssetType = "fiat"
)

// Asset is a holding of the portfolio valued in USD.
type Asset struct {
	ID        string
	Name      string
	Symbol    string
	Balance   Quantity
	ValueUSD  Money
	PriceUSD  Money
	Change24h Percent
	Type      AssetType
	IconURL   string // optional
}

// ExpectedValue returns Balance × PriceUSD.
//
// A real pricing source would make it equal to ValueUSD, mock data is not required to.
func (a Asset) ExpectedValue() Money { return a.PriceUSD.Mul(a.Balance) }

// Validate checks that the asset values are consistent.
func (a Asset) Validate() error {
	var errs []error
	if a.Symbol == "" {
		errs = append(errs, errors.New("missing symbol"))
	}
	if a.Balance.IsNegative() {
		errs = append(errs, fmt.Errorf("negative balance %s", a.Balance))
	}
	if a.ValueUSD.IsNegative() {
		errs = append(errs, fmt.Errorf("negative value %s", a.ValueUSD))
	}
	if a.PriceUSD.IsNegative() {
		errs = append(errs, fmt.Errorf("negative price %s", a.PriceUSD))
	}
	switch a.Type {
	case Crypto, Fiat:
	default:
		errs = append(errs, fmt.Errorf("invalid asset type %q", a.Type))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("asset %q: %w", a.ID, err)
	}
	return nil
}

// AssetSummary is the projection of an Asset held in a Wallet.
type AssetSummary struct {
	Symbol   string
	Balance  Quantity
	ValueUSD Money
}
