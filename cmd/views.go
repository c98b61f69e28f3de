package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/zenith"
	"github.com/etnz/zenith/renderer"
	"github.com/google/subcommands"
)

// printView logs in, renders a single view and prints it.
func printView(render func(a *app, d *zenith.Data) string) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.log.Sync()

	s, err := a.session(guest)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading data: %v\n", err)
		return subcommands.ExitFailure
	}
	d, err := s.Data()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	a.printMarkdown(render(a, d))
	return subcommands.ExitSuccess
}

type dashboardCmd struct{}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "display the portfolio overview" }
func (*dashboardCmd) Usage() string {
	return `zenith dashboard

  Displays the total balance, the 24h change, the value history, the asset allocation
  and the list of assets.
`
}
func (*dashboardCmd) SetFlags(*flag.FlagSet) {}

func (*dashboardCmd) Execute(context.Context, *flag.FlagSet, ...interface{}) subcommands.ExitStatus {
	return printView(func(a *app, d *zenith.Data) string { return renderer.Dashboard(d, a.lang()) })
}

type walletsCmd struct{}

func (*walletsCmd) Name() string     { return "wallets" }
func (*walletsCmd) Synopsis() string { return "display the wallets" }
func (*walletsCmd) Usage() string {
	return `zenith wallets

  Displays every custody account with its total value and its main assets.
`
}
func (*walletsCmd) SetFlags(*flag.FlagSet) {}

func (*walletsCmd) Execute(context.Context, *flag.FlagSet, ...interface{}) subcommands.ExitStatus {
	return printView(func(a *app, d *zenith.Data) string { return renderer.Wallets(d, a.lang()) })
}

type transactionsCmd struct {
	typ string
}

func (*transactionsCmd) Name() string     { return "transactions" }
func (*transactionsCmd) Synopsis() string { return "display the transaction history" }
func (*transactionsCmd) Usage() string {
	return `zenith transactions [-type <type>]

  Displays the transaction history, optionally restricted to a single type.

Usage Examples:
# Only the purchases.
$ zenith transactions -type Buy
`
}

func (c *transactionsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.typ, "type", "all", "Transaction type: all, "+strings.Join(typeNames(), ", "))
}

func (c *transactionsCmd) Execute(context.Context, *flag.FlagSet, ...interface{}) subcommands.ExitStatus {
	filter, err := parseFilter(c.typ)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	return printView(func(a *app, d *zenith.Data) string { return renderer.Transactions(d, filter, a.lang()) })
}

// parseFilter parses "all" or a transaction type.
func parseFilter(s string) (zenith.TransactionFilter, error) {
	if s == "" || strings.EqualFold(s, "all") {
		return zenith.TransactionFilter{}, nil
	}
	t, err := zenith.ParseTransactionType(s)
	if err != nil {
		return zenith.TransactionFilter{}, err
	}
	return zenith.TransactionFilter{Type: t}, nil
}

func typeNames() []string {
	names := make([]string, 0, len(zenith.TransactionTypes))
	for _, t := range zenith.TransactionTypes {
		names = append(names, string(t))
	}
	return names
}

type reportsCmd struct{}

func (*reportsCmd) Name() string     { return "reports" }
func (*reportsCmd) Synopsis() string { return "display the trading reports" }
func (*reportsCmd) Usage() string {
	return `zenith reports

  Displays the trade history, the monthly profit and loss and the distribution of
  value across wallets.
`
}
func (*reportsCmd) SetFlags(*flag.FlagSet) {}

func (*reportsCmd) Execute(context.Context, *flag.FlagSet, ...interface{}) subcommands.ExitStatus {
	return printView(func(a *app, d *zenith.Data) string { return renderer.Reports(d, a.lang()) })
}
