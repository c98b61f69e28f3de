package zenith

import (
	"errors"
	"fmt"
	"slices"
)

// WalletType is the kind of custody of a wallet.
type WalletType string

const (
	Exchange    WalletType = "exchange"
	Hardware    WalletType = "hardware"
	FiatAccount WalletType = "fiat_account"
)

// ParseWalletType parses one of "exchange", "hardware" or "fiat_account".
func ParseWalletType(s string) (WalletType, error) {
	switch t := WalletType(s); t {
	case Exchange, Hardware, FiatAccount:
		return t, nil
	}
	return "", fmt.Errorf("invalid wallet type %q", s)
}

// Wallet is a named account holding a subset of the assets.
type Wallet struct {
	ID            string
	Name          string
	Type          WalletType
	TotalValueUSD Money
	Assets        []AssetSummary
}

// Clone returns a deep copy of the wallet.
func (w Wallet) Clone() Wallet {
	w.Assets = slices.Clone(w.Assets)
	return w
}

// Validate checks that the wallet total and its assets are not negative.
func (w Wallet) Validate() error {
	var errs []error
	if _, err := ParseWalletType(string(w.Type)); err != nil {
		errs = append(errs, err)
	}
	if w.TotalValueUSD.IsNegative() {
		errs = append(errs, fmt.Errorf("negative total value %s", w.TotalValueUSD))
	}
	for _, a := range w.Assets {
		if a.Balance.IsNegative() {
			errs = append(errs, fmt.Errorf("%s: negative balance %s", a.Symbol, a.Balance))
		}
		if a.ValueUSD.IsNegative() {
			errs = append(errs, fmt.Errorf("%s: negative value %s", a.Symbol, a.ValueUSD))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("wallet %q: %w", w.Name, err)
	}
	return nil
}
