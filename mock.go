package zenith

import (
	"time"

	"github.com/shopspring/decimal"
)

// Provider supplies the data a session is seeded with.
type Provider interface {
	Portfolio() (Portfolio, error)
	Wallets() ([]Wallet, error)
	Transactions() ([]Transaction, error)
}

// MockProvider serves the built-in demo data set.
type MockProvider struct{}

func (MockProvider) Portfolio() (Portfolio, error) {
	return Portfolio{
		TotalValueUSD: USD(105420.55),
		Change24h:     Pct(2.5),
		Assets: []Asset{
			{ID: "btc", Name: "Bitcoin", Symbol: "BTC", Balance: Q(1.5), ValueUSD: USD(97500.00), PriceUSD: USD(65000.00), Change24h: Pct(3.2), Type: Crypto, IconURL: "https://cryptologos.cc/logos/bitcoin-btc-logo.svg"},
			{ID: "eth", Name: "Ethereum", Symbol: "ETH", Balance: Q(10), ValueUSD: USD(35000.00), PriceUSD: USD(3500.00), Change24h: Pct(1.8), Type: Crypto, IconURL: "https://cryptologos.cc/logos/ethereum-eth-logo.svg"},
			{ID: "usd", Name: "US Dollar", Symbol: "USD", Balance: Q(20000.00), ValueUSD: USD(20000.00), PriceUSD: USD(1.00), Change24h: Pct(0), Type: Fiat},
			{ID: "usdt", Name: "Tether", Symbol: "USDT", Balance: Q(10420.55), ValueUSD: USD(10420.55), PriceUSD: USD(1.00), Change24h: Pct(-0.1), Type: Crypto, IconURL: "https://cryptologos.cc/logos/tether-usdt-logo.svg"},
		},
	}, nil
}

func (MockProvider) Wallets() ([]Wallet, error) {
	return []Wallet{
		{
			ID: "w1", Name: "Binance", Type: Exchange, TotalValueUSD: USD(85250.00),
			Assets: []AssetSummary{
				{Symbol: "BTC", Balance: Q(1.25), ValueUSD: USD(81250.00)},
				{Symbol: "USDT", Balance: Q(4000.00), ValueUSD: USD(4000.00)},
			},
		},
		{
			ID: "w2", Name: "Ledger Nano X", Type: Hardware, TotalValueUSD: USD(51670.55),
			Assets: []AssetSummary{
				{Symbol: "BTC", Balance: Q(0.25), ValueUSD: USD(16250.00)},
				{Symbol: "ETH", Balance: Q(10), ValueUSD: USD(35000.00)},
				{Symbol: "USDT", Balance: Q(420.55), ValueUSD: USD(420.55)},
			},
		},
		{
			ID: "w3", Name: "Bank of America", Type: FiatAccount, TotalValueUSD: USD(20000.00),
			Assets: []AssetSummary{
				{Symbol: "USD", Balance: Q(20000.00), ValueUSD: USD(20000.00)},
			},
		},
	}, nil
}

func (MockProvider) Transactions() ([]Transaction, error) {
	return []Transaction{
		{ID: "t1", Date: mustDate("2023-10-26T10:00:00Z"), Type: Buy, Asset: "BTC", Amount: Q(0.1), ValueUSD: USD(6500), Status: Completed, From: "USD", To: "Binance"},
		{ID: "t2", Date: mustDate("2023-10-25T14:30:00Z"), Type: Deposit, Asset: "USD", Amount: Q(10000), ValueUSD: USD(10000), Status: Completed, To: "Bank of America"},
		{ID: "t3", Date: mustDate("2023-10-24T09:15:00Z"), Type: Withdrawal, Asset: "ETH", Amount: Q(1), ValueUSD: USD(3500), Status: Pending, From: "Ledger Nano X", To: "External Address"},
		{ID: "t4", Date: mustDate("2023-10-23T18:45:00Z"), Type: Sell, Asset: "BTC", Amount: Q(0.05), ValueUSD: USD(3250), Status: Completed, From: "Binance", To: "USDT"},
		{ID: "t5", Date: mustDate("2023-10-22T11:00:00Z"), Type: Transfer, Asset: "BTC", Amount: Q(0.2), ValueUSD: USD(13000), Status: Completed, From: "Binance", To: "Ledger Nano X",
			Fee: decimal.NewNullDecimal(decimal.RequireFromString("0.0001"))},
	}, nil
}

func mustDate(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}
