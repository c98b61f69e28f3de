package renderer

import (
	"github.com/etnz/zenith"
	"github.com/etnz/zenith/i18n"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

// historyFactors shapes the synthetic 8 days value history, oldest first, relative to the current total.
var historyFactors = []string{"0.95", "0.96", "0.98", "0.97", "1.01", "1.03", "1.02", "1"}

// P/L figures are not derived from the ledger yet, they are demo values.
var (
	realizedPL         = zenith.USD(5120.50)
	realizedPLChange   = zenith.Pct(15.3)
	unrealizedPL       = zenith.USD(12830.00)
	unrealizedPLChange = zenith.Pct(5.8)
)

type dashboard struct {
	Page page

	Total, Change, ChangeValue   string
	Realized, RealizedChange     string
	Unrealized, UnrealizedChange string
	History                      []historyPoint
	Allocation                   []allocationRow
	Assets                       []assetRow
}

type historyPoint struct{ Label, Value string }

type allocationRow struct{ Symbol, Value, Share string }

type assetRow struct{ Name, Symbol, Balance, Price, Value, Change string }

// History returns the synthetic value history of the dashboard chart, oldest first.
func History(p zenith.Portfolio) []zenith.Money {
	result := make([]zenith.Money, 0, len(historyFactors))
	for _, f := range historyFactors {
		result = append(result, p.TotalValueUSD.Scale(decimal.RequireFromString(f)))
	}
	return result
}

func historyLabel(lang language.Tag, daysAgo int) string {
	switch daysAgo {
	case 0:
		return i18n.Text(lang, i18n.Today)
	case 1:
		return i18n.Text(lang, i18n.Yesterday)
	default:
		return i18n.Text(lang, i18n.DaysAgo, daysAgo)
	}
}

// Dashboard renders the overview of the portfolio.
func Dashboard(d *zenith.Data, lang language.Tag) string {
	p := d.Portfolio()
	v := dashboard{
		Page:             page{Title: i18n.Dashboard, Subtitle: i18n.DashboardWelcome},
		Total:            p.TotalValueUSD.String(),
		Change:           p.Change24h.SignedString(),
		ChangeValue:      p.Change24hValue().String(),
		Realized:         realizedPL.String(),
		RealizedChange:   realizedPLChange.SignedString(),
		Unrealized:       unrealizedPL.String(),
		UnrealizedChange: unrealizedPLChange.SignedString(),
	}

	history := History(p)
	for i, value := range history {
		v.History = append(v.History, historyPoint{
			Label: historyLabel(lang, len(history)-1-i),
			Value: value.String(),
		})
	}
	for _, a := range p.Allocation() {
		v.Allocation = append(v.Allocation, allocationRow{Symbol: a.Symbol, Value: a.Value.String(), Share: a.Share.Rounded(0)})
	}
	for _, a := range p.Assets {
		v.Assets = append(v.Assets, assetRow{
			Name:    a.Name,
			Symbol:  a.Symbol,
			Balance: a.Balance.String() + " " + a.Symbol,
			Price:   a.PriceUSD.String(),
			Value:   a.ValueUSD.String(),
			Change:  a.Change24h.SignedString(),
		})
	}
	return renderTemplate("dashboard", lang, v)
}
