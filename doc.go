// Package zenith is the domain of a portfolio dashboard mixing crypto currencies and
// fiat accounts.
//
// It defines the values displayed by the dashboard:
//   - Portfolio and Asset: the valuation of every holding in USD.
//   - Wallet: a named custody (exchange, hardware device, bank account) holding a subset of the assets.
//   - Transaction: an entry of the ledger (deposit, withdrawal, buy, sell, transfer).
//
// Data comes from a Provider, either the built-in MockProvider or a YAML seed file,
// and is published once per login through a Session. Views only ever see a read-only
// Data handle.
//
// This package serves as the foundational logic for the `zenith` command-line
// tool.
package zenith
