package zenith

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/shopspring/decimal"
)

const seedDoc = `
portfolio:
  total_value_usd: 105420.55
  change_24h: 2.5
  assets:
    - {id: btc, name: Bitcoin, symbol: BTC, balance: 1.5, value_usd: 97500, price_usd: 65000, change_24h: 3.2, type: crypto}
    - {name: US Dollar, symbol: USD, balance: 20000, value_usd: 20000, price_usd: 1, type: fiat}
wallets:
  - name: Ledger Nano X
    type: hardware
    total_value_usd: 16250
    assets:
      - {symbol: BTC, balance: 0.25, value_usd: 16250}
transactions:
  - {id: t5, date: 2023-10-22T11:00:00Z, type: Transfer, asset: BTC, amount: 0.2, value_usd: 13000, status: Completed, from: Binance, to: Ledger Nano X, fee: 0.0001}
  - {date: 2023-10-25T14:30:00Z, type: Deposit, asset: USD, amount: 10000, value_usd: 10000, status: Pending, to: Bank of America}
`

func TestDecodeSeed(t *testing.T) {
	p, err := DecodeSeed(strings.NewReader(seedDoc))
	if err != nil {
		t.Fatalf("DecodeSeed() error: %v", err)
	}

	pf, _ := p.Portfolio()
	want := Portfolio{
		TotalValueUSD: USD(105420.55),
		Change24h:     Pct(2.5),
		Assets: []Asset{
			{ID: "btc", Name: "Bitcoin", Symbol: "BTC", Balance: Q(1.5), ValueUSD: USD(97500), PriceUSD: USD(65000), Change24h: Pct(3.2), Type: Crypto},
			{Name: "US Dollar", Symbol: "USD", Balance: Q(20000), ValueUSD: USD(20000), PriceUSD: USD(1), Type: Fiat},
		},
	}
	ignoreID := cmpopts.IgnoreFields(Asset{}, "ID")
	if diff := cmp.Diff(want, pf, equalValues, ignoreID); diff != "" {
		t.Errorf("Portfolio() mismatch (-want +got):\n%s", diff)
	}
	if pf.Assets[0].ID != "btc" {
		t.Errorf("explicit id = %q, want btc", pf.Assets[0].ID)
	}
	if pf.Assets[1].ID == "" {
		t.Error("missing id was not generated")
	}

	wallets, _ := p.Wallets()
	wantWallets := []Wallet{{
		Name: "Ledger Nano X", Type: Hardware, TotalValueUSD: USD(16250),
		Assets: []AssetSummary{{Symbol: "BTC", Balance: Q(0.25), ValueUSD: USD(16250)}},
	}}
	if diff := cmp.Diff(wantWallets, wallets, equalValues, cmpopts.IgnoreFields(Wallet{}, "ID")); diff != "" {
		t.Errorf("Wallets() mismatch (-want +got):\n%s", diff)
	}

	txs, _ := p.Transactions()
	if len(txs) != 2 {
		t.Fatalf("got %d transactions, want 2", len(txs))
	}
	if !txs[0].Fee.Valid || !txs[0].Fee.Decimal.Equal(decimal.RequireFromString("0.0001")) {
		t.Errorf("fee = %v, want 0.0001", txs[0].Fee)
	}
	if !txs[0].Amount.Equal(Q(0.2)) || !txs[0].ValueUSD.Equal(USD(13000)) {
		t.Errorf("got amount %v value %v, want 0.2 and $13,000.00", txs[0].Amount, txs[0].ValueUSD)
	}
	if txs[1].Fee.Valid {
		t.Errorf("fee = %v, want none", txs[1].Fee)
	}
	if txs[1].Status != Pending || txs[1].Type != Deposit {
		t.Errorf("got %s %s, want Pending Deposit", txs[1].Status, txs[1].Type)
	}
	if got, want := txs[0].Date.Format("2006-01-02 15:04"), "2023-10-22 11:00"; got != want {
		t.Errorf("date = %q, want %q", got, want)
	}
}

func TestDecodeSeed_GeneratedIDsAreUnique(t *testing.T) {
	doc := `
transactions:
  - {date: 2023-10-25T14:30:00Z, type: Deposit, asset: USD, amount: 1, value_usd: 1, status: Completed}
  - {date: 2023-10-25T14:30:00Z, type: Deposit, asset: USD, amount: 1, value_usd: 1, status: Completed}
`
	p, err := DecodeSeed(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("DecodeSeed() error: %v", err)
	}
	txs, _ := p.Transactions()
	if txs[0].ID == "" || txs[0].ID == txs[1].ID {
		t.Errorf("generated ids %q and %q are not unique", txs[0].ID, txs[1].ID)
	}
}

func TestDecodeSeed_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"unknown field", "portfolio: {total: 1}\n", "field total not found"},
		{"invalid asset type", "portfolio:\n  assets: [{symbol: AAPL, type: stock}]\n", `invalid asset type "stock"`},
		{"negative balance", "portfolio:\n  assets: [{symbol: BTC, type: crypto, balance: -1}]\n", "negative balance"},
		{"invalid wallet type", "wallets: [{name: Revolut, type: bank}]\n", `wallet "Revolut": invalid wallet type "bank"`},
		{"invalid transaction type", "transactions: [{type: Stake, status: Completed}]\n", `invalid transaction type "Stake"`},
		{"invalid status", "transactions: [{type: Buy, status: Done}]\n", `invalid transaction status "Done"`},
		{"not yaml", "portfolio: [\n", "decoding seed"},
		{"nan total", "portfolio:\n  total_value_usd: .nan\n", "can't convert .nan to decimal"},
		{"infinite balance", "portfolio:\n  assets: [{symbol: BTC, type: crypto, balance: .inf}]\n", "can't convert .inf to decimal"},
		{"infinite fee", "transactions: [{type: Buy, status: Completed, fee: -.inf}]\n", "can't convert -.inf to decimal"},
		{"negative wallet total", "wallets: [{name: Binance, type: exchange, total_value_usd: -1}]\n", `wallet "Binance": negative total value`},
		{"negative wallet asset", "wallets: [{name: Binance, type: exchange, assets: [{symbol: BTC, balance: -0.5}]}]\n", "BTC: negative balance -0.5"},
		{"negative amount", "transactions: [{id: t1, type: Buy, status: Completed, amount: -1}]\n", `transaction "t1": negative amount -1`},
		{"negative fee", "transactions: [{id: t1, type: Transfer, status: Completed, fee: -0.0001}]\n", "negative fee -0.0001"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeSeed(strings.NewReader(tt.doc))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("DecodeSeed() = %v, want error containing %q", err, tt.want)
			}
		})
	}
}

func TestOpenSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	if err := os.WriteFile(path, []byte(seedDoc), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := OpenSeed(path); err != nil {
		t.Errorf("OpenSeed() error: %v", err)
	}
	if _, err := OpenSeed(filepath.Join(t.TempDir(), "missing.yaml")); !os.IsNotExist(err) {
		t.Errorf("OpenSeed(missing) = %v, want not exist", err)
	}
}
