package zenith

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the closed set of ledger operations.
type TransactionType string

const (
	Deposit    TransactionType = "Deposit"
	Withdrawal TransactionType = "Withdrawal"
	Buy        TransactionType = "Buy"
	Sell       TransactionType = "Sell"
	Transfer   TransactionType = "Transfer"
)

// TransactionTypes lists every transaction type in display order.
var TransactionTypes = []TransactionType{Deposit, Withdrawal, Buy, Sell, Transfer}

// ParseTransactionType parses a transaction type by exact name.
func ParseTransactionType(s string) (TransactionType, error) {
	t := TransactionType(s)
	if !slices.Contains(TransactionTypes, t) {
		return "", fmt.Errorf("invalid transaction type %q, expected one of %v", s, TransactionTypes)
	}
	return t, nil
}

// TransactionStatus is the settlement status of a transaction.
type TransactionStatus string

const (
	Completed TransactionStatus = "Completed"
	Pending   TransactionStatus = "Pending"
	Failed    TransactionStatus = "Failed"
)

// ParseTransactionStatus parses a status by exact name.
func ParseTransactionStatus(s string) (TransactionStatus, error) {
	switch t := TransactionStatus(s); t {
	case Completed, Pending, Failed:
		return t, nil
	}
	return "", fmt.Errorf("invalid transaction status %q", s)
}

// Transaction is an entry of the ledger.
type Transaction struct {
	ID       string
	Date     time.Time
	Type     TransactionType
	Asset    string // asset symbol
	Amount   Quantity
	ValueUSD Money
	Status   TransactionStatus
	From     string              // optional counterparty
	To       string              // optional counterparty
	Fee      decimal.NullDecimal // optional, in units of Asset
}

// Validate checks the enums and that amount, value and fee are not negative.
// The direction of a transaction is given by its type, never by a sign.
func (tx Transaction) Validate() error {
	var errs []error
	if _, err := ParseTransactionType(string(tx.Type)); err != nil {
		errs = append(errs, err)
	}
	if _, err := ParseTransactionStatus(string(tx.Status)); err != nil {
		errs = append(errs, err)
	}
	if tx.Amount.IsNegative() {
		errs = append(errs, fmt.Errorf("negative amount %s", tx.Amount))
	}
	if tx.ValueUSD.IsNegative() {
		errs = append(errs, fmt.Errorf("negative value %s", tx.ValueUSD))
	}
	if tx.Fee.Valid && tx.Fee.Decimal.IsNegative() {
		errs = append(errs, fmt.Errorf("negative fee %s", tx.Fee.Decimal))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("transaction %q: %w", tx.ID, err)
	}
	return nil
}

// TransactionFilter selects transactions by type. The zero value selects all of them.
type TransactionFilter struct {
	Type TransactionType
}

// All reports whether the filter selects every transaction.
func (f TransactionFilter) All() bool { return f.Type == "" }

// Match reports whether tx is selected by the filter.
func (f TransactionFilter) Match(tx Transaction) bool {
	return f.All() || tx.Type == f.Type
}

// Apply returns the selected transactions, preserving order.
func (f TransactionFilter) Apply(txs []Transaction) []Transaction {
	result := make([]Transaction, 0, len(txs))
	for _, tx := range txs {
		if f.Match(tx) {
			result = append(result, tx)
		}
	}
	return result
}
