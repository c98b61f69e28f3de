package renderer

import (
	"github.com/etnz/zenith"
	"github.com/etnz/zenith/i18n"
	"golang.org/x/text/language"
)

type transactionRow struct {
	Type, Date, Asset, Amount, Value, Status, Details string
}

// StatusLabel returns the translated label of a transaction status.
func StatusLabel(s zenith.TransactionStatus, lang language.Tag) string {
	switch s {
	case zenith.Completed:
		return i18n.Text(lang, i18n.StatusCompleted)
	case zenith.Pending:
		return i18n.Text(lang, i18n.StatusPending)
	case zenith.Failed:
		return i18n.Text(lang, i18n.StatusFailed)
	default:
		return string(s)
	}
}

// Details describes the counterparties: "from X to Y" when both are known, otherwise the known one.
func Details(tx zenith.Transaction, lang language.Tag) string {
	switch {
	case tx.From != "" && tx.To != "":
		return i18n.Text(lang, i18n.FromTo, tx.From, tx.To)
	case tx.From != "":
		return tx.From
	default:
		return tx.To
	}
}

// Transactions renders the ledger selected by filter.
func Transactions(d *zenith.Data, filter zenith.TransactionFilter, lang language.Tag) string {
	v := struct {
		Page   page
		Filter string
		Rows   []transactionRow
	}{
		Page:   page{Title: i18n.Transactions, Subtitle: i18n.TransactionsSubtitle},
		Filter: i18n.Text(lang, i18n.AllTypes),
	}
	if !filter.All() {
		v.Filter = string(filter.Type)
	}

	for _, tx := range filter.Apply(d.Transactions()) {
		v.Rows = append(v.Rows, transactionRow{
			Type:    string(tx.Type),
			Date:    tx.Date.Format("2006-01-02"),
			Asset:   tx.Asset,
			Amount:  tx.Amount.Fixed(4) + " " + tx.Asset,
			Value:   tx.ValueUSD.String(),
			Status:  StatusLabel(tx.Status, lang),
			Details: Details(tx, lang),
		})
	}
	return renderTemplate("transactions", lang, v)
}
