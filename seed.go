package zenith

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// seedFile is the YAML layout of a seed file.
//
// Example:
//
//	portfolio:
//	  total_value_usd: 105420.55
//	  change_24h: 2.5
//	  assets:
//	    - {symbol: BTC, name: Bitcoin, balance: 1.5, value_usd: 97500, price_usd: 65000, change_24h: 3.2, type: crypto}
//	wallets:
//	  - {name: Binance, type: exchange, total_value_usd: 85250, assets: [{symbol: BTC, balance: 1.25, value_usd: 81250}]}
//	transactions:
//	  - {date: 2023-10-26T10:00:00Z, type: Buy, asset: BTC, amount: 0.1, value_usd: 6500, status: Completed}
type seedFile struct {
	Portfolio struct {
		TotalValueUSD decimal.Decimal `yaml:"total_value_usd"`
		Change24h     decimal.Decimal `yaml:"change_24h"`
		Assets        []seedAsset     `yaml:"assets"`
	} `yaml:"portfolio"`
	Wallets      []seedWallet      `yaml:"wallets"`
	Transactions []seedTransaction `yaml:"transactions"`
}

// Numbers are decoded from their text by decimal.Decimal, which rejects .nan and .inf.
type seedAsset struct {
	ID        string          `yaml:"id"`
	Name      string          `yaml:"name"`
	Symbol    string          `yaml:"symbol"`
	Balance   decimal.Decimal `yaml:"balance"`
	ValueUSD  decimal.Decimal `yaml:"value_usd"`
	PriceUSD  decimal.Decimal `yaml:"price_usd"`
	Change24h decimal.Decimal `yaml:"change_24h"`
	Type      string          `yaml:"type"`
	IconURL   string          `yaml:"icon_url"`
}

type seedWallet struct {
	ID            string          `yaml:"id"`
	Name          string          `yaml:"name"`
	Type          string          `yaml:"type"`
	TotalValueUSD decimal.Decimal `yaml:"total_value_usd"`
	Assets        []struct {
		Symbol   string          `yaml:"symbol"`
		Balance  decimal.Decimal `yaml:"balance"`
		ValueUSD decimal.Decimal `yaml:"value_usd"`
	} `yaml:"assets"`
}

type seedTransaction struct {
	ID       string           `yaml:"id"`
	Date     time.Time        `yaml:"date"`
	Type     string           `yaml:"type"`
	Asset    string           `yaml:"asset"`
	Amount   decimal.Decimal  `yaml:"amount"`
	ValueUSD decimal.Decimal  `yaml:"value_usd"`
	Status   string           `yaml:"status"`
	From     string           `yaml:"from"`
	To       string           `yaml:"to"`
	Fee      *decimal.Decimal `yaml:"fee"`
}

// SeedProvider serves data decoded once from a YAML seed file.
// Missing ids are generated.
type SeedProvider struct {
	portfolio    Portfolio
	wallets      []Wallet
	transactions []Transaction
}

// OpenSeed reads the YAML seed file at path.
func OpenSeed(path string) (*SeedProvider, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	p, err := DecodeSeed(f)
	if err != nil {
		return nil, fmt.Errorf("seed file %q: %w", path, err)
	}
	return p, nil
}

// DecodeSeed decodes a YAML seed document.
func DecodeSeed(r io.Reader) (*SeedProvider, error) {
	var s seedFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decoding seed: %w", err)
	}

	p := &SeedProvider{
		portfolio: Portfolio{
			TotalValueUSD: USD(s.Portfolio.TotalValueUSD),
			Change24h:     Pct(s.Portfolio.Change24h),
		},
	}
	for _, a := range s.Portfolio.Assets {
		p.portfolio.Assets = append(p.portfolio.Assets, Asset{
			ID:        idOrNew(a.ID),
			Name:      a.Name,
			Symbol:    a.Symbol,
			Balance:   Q(a.Balance),
			ValueUSD:  USD(a.ValueUSD),
			PriceUSD:  USD(a.PriceUSD),
			Change24h: Pct(a.Change24h),
			Type:      AssetType(a.Type),
			IconURL:   a.IconURL,
		})
	}
	if err := p.portfolio.Validate(); err != nil {
		return nil, err
	}

	for _, w := range s.Wallets {
		typ, err := ParseWalletType(w.Type)
		if err != nil {
			return nil, fmt.Errorf("wallet %q: %w", w.Name, err)
		}
		wallet := Wallet{
			ID:            idOrNew(w.ID),
			Name:          w.Name,
			Type:          typ,
			TotalValueUSD: USD(w.TotalValueUSD),
		}
		for _, a := range w.Assets {
			wallet.Assets = append(wallet.Assets, AssetSummary{Symbol: a.Symbol, Balance: Q(a.Balance), ValueUSD: USD(a.ValueUSD)})
		}
		if err := wallet.Validate(); err != nil {
			return nil, err
		}
		p.wallets = append(p.wallets, wallet)
	}

	for _, t := range s.Transactions {
		typ, err := ParseTransactionType(t.Type)
		if err != nil {
			return nil, err
		}
		status, err := ParseTransactionStatus(t.Status)
		if err != nil {
			return nil, err
		}
		tx := Transaction{
			ID:       idOrNew(t.ID),
			Date:     t.Date,
			Type:     typ,
			Asset:    t.Asset,
			Amount:   Q(t.Amount),
			ValueUSD: USD(t.ValueUSD),
			Status:   status,
			From:     t.From,
			To:       t.To,
		}
		if t.Fee != nil {
			tx.Fee = decimal.NewNullDecimal(*t.Fee)
		}
		if err := tx.Validate(); err != nil {
			return nil, err
		}
		p.transactions = append(p.transactions, tx)
	}
	return p, nil
}

func idOrNew(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}

func (p *SeedProvider) Portfolio() (Portfolio, error)       { return p.portfolio.Clone(), nil }
func (p *SeedProvider) Transactions() ([]Transaction, error) { return append([]Transaction(nil), p.transactions...), nil }
func (p *SeedProvider) Wallets() ([]Wallet, error) {
	result := make([]Wallet, 0, len(p.wallets))
	for _, w := range p.wallets {
		result = append(result, w.Clone())
	}
	return result, nil
}
