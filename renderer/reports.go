package renderer

import (
	"github.com/etnz/zenith"
	"github.com/etnz/zenith/i18n"
	"golang.org/x/text/language"
)

// TradeDay is the trading activity of a day.
type TradeDay struct {
	Day         string
	Buys, Sells zenith.Money
	Profit      zenith.Money
}

// MonthlyPL is the profit and loss of a month.
type MonthlyPL struct {
	Month                string
	Realized, Unrealized zenith.Money
}

// Demo trading figures, they are not derived from the ledger.
var (
	TradeHistory = []TradeDay{
		{"Oct 1", zenith.USD(4000), zenith.USD(2400), zenith.USD(1600)},
		{"Oct 2", zenith.USD(3000), zenith.USD(1398), zenith.USD(1602)},
		{"Oct 3", zenith.USD(2000), zenith.USD(9800), zenith.USD(-7800)},
		{"Oct 4", zenith.USD(2780), zenith.USD(3908), zenith.USD(-1128)},
		{"Oct 5", zenith.USD(1890), zenith.USD(4800), zenith.USD(-2910)},
		{"Oct 6", zenith.USD(2390), zenith.USD(3800), zenith.USD(-1410)},
		{"Oct 7", zenith.USD(3490), zenith.USD(4300), zenith.USD(-810)},
	}
	ProfitAndLoss = []MonthlyPL{
		{"April", zenith.USD(1200), zenith.USD(2400)},
		{"May", zenith.USD(1500), zenith.USD(1398)},
		{"June", zenith.USD(-800), zenith.USD(9800)},
		{"July", zenith.USD(2780), zenith.USD(3908)},
		{"August", zenith.USD(1890), zenith.USD(4800)},
		{"September", zenith.USD(2390), zenith.USD(3800)},
	}
)

type walletShare struct{ Name, Type, Value, Share string }

// Reports renders the trading reports and the distribution of value across wallets.
func Reports(d *zenith.Data, lang language.Tag) string {
	v := struct {
		Page         page
		Trades       []TradeDay
		PL           []MonthlyPL
		Distribution []walletShare
	}{
		Page:   page{Title: i18n.Reports, Subtitle: i18n.ReportsSubtitle},
		Trades: TradeHistory,
		PL:     ProfitAndLoss,
	}

	wallets := d.Wallets()
	total := zenith.USD(0)
	for _, w := range wallets {
		total = total.Add(w.TotalValueUSD)
	}
	for _, w := range wallets {
		v.Distribution = append(v.Distribution, walletShare{
			Name:  w.Name,
			Type:  WalletTypeLabel(w.Type, lang),
			Value: w.TotalValueUSD.String(),
			Share: w.TotalValueUSD.Share(total).Rounded(1),
		})
	}
	return renderTemplate("reports", lang, v)
}
