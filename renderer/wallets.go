package renderer

import (
	"github.com/etnz/zenith"
	"github.com/etnz/zenith/i18n"
	"golang.org/x/text/language"
)

// maxWalletAssets is the number of assets listed on a wallet card.
const maxWalletAssets = 3

type walletCard struct {
	Name, Type, Total string
	Assets            []walletAsset
	More              int // assets not listed
}

type walletAsset struct{ Symbol, Balance, Value string }

// WalletTypeLabel returns the translated label of a wallet type.
func WalletTypeLabel(t zenith.WalletType, lang language.Tag) string {
	switch t {
	case zenith.Exchange:
		return i18n.Text(lang, i18n.ExchangeType)
	case zenith.Hardware:
		return i18n.Text(lang, i18n.HardwareType)
	case zenith.FiatAccount:
		return i18n.Text(lang, i18n.FiatAccountType)
	default:
		return string(t)
	}
}

// Wallets renders one card per wallet.
func Wallets(d *zenith.Data, lang language.Tag) string {
	v := struct {
		Page    page
		Wallets []walletCard
	}{Page: page{Title: i18n.Wallets, Subtitle: i18n.WalletsSubtitle}}

	for _, w := range d.Wallets() {
		card := walletCard{
			Name:  w.Name,
			Type:  WalletTypeLabel(w.Type, lang),
			Total: w.TotalValueUSD.String(),
		}
		for i, a := range w.Assets {
			if i == maxWalletAssets {
				card.More = len(w.Assets) - maxWalletAssets
				break
			}
			card.Assets = append(card.Assets, walletAsset{
				Symbol:  a.Symbol,
				Balance: a.Balance.String(),
				Value:   a.ValueUSD.String(),
			})
		}
		v.Wallets = append(v.Wallets, card)
	}
	return renderTemplate("wallets", lang, v)
}
