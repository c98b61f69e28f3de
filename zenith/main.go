// Command zenith is a terminal dashboard for a portfolio of crypto currencies and fiat
// accounts, with rebalancing suggestions from Gemini.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path"

	"github.com/etnz/zenith"
	"github.com/etnz/zenith/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	// Exits when invoked by the shell for completion (COMP_LINE is set).
	completion().Complete(path.Base(os.Args[0]))

	flag.Parse()

	if name := flag.Arg(0); name != "" && !registered(commander, name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:], os.Stdin, os.Stdout, os.Stderr); found {
			os.Exit(code)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	status := commander.Execute(ctx)
	stop()
	os.Exit(int(status))
}

// registered reports whether name is a builtin subcommand.
func registered(c *subcommands.Commander, name string) bool {
	found := false
	c.VisitCommands(func(_ *subcommands.CommandGroup, command subcommands.Command) {
		if command.Name() == name {
			found = true
		}
	})
	return found
}

// completion describes the command line for shell completion.
func completion() *complete.Command {
	views := map[string]*complete.Command{}
	for _, v := range []string{"shell", "dashboard", "wallets", "reports", "advise", "version"} {
		views[v] = &complete.Command{}
	}

	types := predict.Set{"all"}
	for _, t := range zenith.TransactionTypes {
		types = append(types, string(t))
	}
	views["transactions"] = &complete.Command{
		Flags: map[string]complete.Predictor{"type": types},
	}

	return &complete.Command{
		Sub: views,
		Flags: map[string]complete.Predictor{
			"config": predict.Files("*.yaml"),
			"seed":   predict.Files("*.yaml"),
			"locale": predict.Set{"en", "fa"},
			"plain":  predict.Nothing,
			"v":      predict.Nothing,
		},
	}
}
