package zenith

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mockPortfolio(t *testing.T) Portfolio {
	t.Helper()
	p, err := MockProvider{}.Portfolio()
	if err != nil {
		t.Fatalf("Portfolio() error: %v", err)
	}
	return p
}

func TestMockData(t *testing.T) {
	p := mockPortfolio(t)
	if err := p.Validate(); err != nil {
		t.Errorf("mock portfolio is invalid: %v", err)
	}
	if got, want := p.TotalValueUSD.String(), "$105,420.55"; got != want {
		t.Errorf("TotalValueUSD = %q, want %q", got, want)
	}

	wallets, _ := MockProvider{}.Wallets()
	if len(wallets) != 3 {
		t.Fatalf("got %d wallets, want 3", len(wallets))
	}
	for _, w := range wallets {
		sum := USD(0)
		for _, a := range w.Assets {
			sum = sum.Add(a.ValueUSD)
		}
		if !sum.Equal(w.TotalValueUSD) {
			t.Errorf("wallet %q: assets sum to %v, want %v", w.Name, sum, w.TotalValueUSD)
		}
	}

	txs, _ := MockProvider{}.Transactions()
	if len(txs) != 5 {
		t.Fatalf("got %d transactions, want 5", len(txs))
	}
	for i, tx := range txs {
		if tx.Fee.Valid != (tx.ID == "t5") {
			t.Errorf("transaction %s: fee valid = %v", tx.ID, tx.Fee.Valid)
		}
		if i > 0 && !tx.Date.Before(txs[i-1].Date) {
			t.Errorf("transactions are not sorted newest first at %s", tx.ID)
		}
	}
}

func TestPortfolio_Allocation(t *testing.T) {
	p := mockPortfolio(t)

	if got, want := p.SumAssets(), USD(162920.55); !got.Equal(want) {
		t.Errorf("SumAssets() = %v, want %v", got, want)
	}
	if got, want := p.Change24hValue().String(), "$2,635.51"; got != want {
		t.Errorf("Change24hValue() = %q, want %q", got, want)
	}

	got := p.Allocation()
	var symbols []string
	total := Pct(0).Decimal()
	for _, a := range got {
		symbols = append(symbols, a.Symbol)
		total = total.Add(a.Share.Decimal())
	}
	if diff := cmp.Diff([]string{"BTC", "ETH", "USD", "USDT"}, symbols); diff != "" {
		t.Errorf("Allocation() symbols mismatch (-want +got):\n%s", diff)
	}
	if !Pct(total).Equal(Pct(100)) {
		t.Errorf("Allocation() shares sum to %v, want 100%%", total)
	}
	if got, want := got[1].Share.Rounded(0), "21%"; got != want {
		t.Errorf("ETH share = %q, want %q", got, want)
	}
}

func TestPortfolio_AllocationEmpty(t *testing.T) {
	if got := (Portfolio{}).Allocation(); len(got) != 0 {
		t.Errorf("Allocation() = %v, want empty", got)
	}
}

func TestPortfolio_Validate(t *testing.T) {
	valid := Asset{ID: "a", Symbol: "BTC", Balance: Q(1), ValueUSD: USD(1), PriceUSD: USD(1), Type: Crypto}
	tests := []struct {
		name    string
		mutate  func(p *Portfolio)
		wantErr string
	}{
		{"valid", func(p *Portfolio) {}, ""},
		{"negative total", func(p *Portfolio) { p.TotalValueUSD = USD(-1) }, "negative total value"},
		{"missing symbol", func(p *Portfolio) { p.Assets[0].Symbol = "" }, "missing symbol"},
		{"negative balance", func(p *Portfolio) { p.Assets[0].Balance = Q(-1) }, "negative balance"},
		{"negative price", func(p *Portfolio) { p.Assets[0].PriceUSD = USD(-1) }, "negative price"},
		{"invalid type", func(p *Portfolio) { p.Assets[0].Type = "stock" }, `invalid asset type "stock"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Portfolio{TotalValueUSD: USD(1), Assets: []Asset{valid}}
			tt.mutate(&p)
			err := p.Validate()
			switch {
			case tt.wantErr == "" && err != nil:
				t.Errorf("Validate() unexpected error: %v", err)
			case tt.wantErr != "" && (err == nil || !strings.Contains(err.Error(), tt.wantErr)):
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestAsset_ExpectedValue(t *testing.T) {
	p := mockPortfolio(t)
	for _, a := range p.Assets {
		if got := a.ExpectedValue(); !got.Equal(a.ValueUSD) {
			t.Errorf("%s: ExpectedValue() = %v, want %v", a.Symbol, got, a.ValueUSD)
		}
	}
}

func TestPortfolio_Clone(t *testing.T) {
	p := mockPortfolio(t)
	c := p.Clone()
	c.Assets[0].Name = "changed"
	if p.Assets[0].Name != "Bitcoin" {
		t.Errorf("Clone() shares the assets with the original")
	}
}
