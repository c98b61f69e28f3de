package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/zenith"
	"github.com/etnz/zenith/advisor"
	"github.com/etnz/zenith/i18n"
	"github.com/etnz/zenith/renderer"
	"github.com/google/subcommands"
)

type adviseCmd struct{}

func (*adviseCmd) Name() string     { return "advise" }
func (*adviseCmd) Synopsis() string { return "ask the AI advisor for rebalancing suggestions" }
func (*adviseCmd) Usage() string {
	return `zenith advise

  Sends the portfolio to Gemini and displays its rebalancing suggestions.
  Requires GEMINI_API_KEY (or API_KEY). Ctrl-C aborts the request.
`
}
func (*adviseCmd) SetFlags(*flag.FlagSet) {}

func (*adviseCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	client, err := a.advisor(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	if !advise(ctx, a, client, d.Portfolio()) {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// advise runs a single request for pf and prints its outcome. It reports whether
// suggestions were received. An interrupted request only prints a cancellation line.
func advise(ctx context.Context, a *app, adv advisor.Advisor, pf zenith.Portfolio) bool {
	p := advisor.NewPanel(adv, a.lang(), a.log)
	defer p.Close()
	p.Analyze(ctx, pf)
	waitAdvice(ctx, p)

	st := p.State()
	if st.Status == advisor.Idle {
		fmt.Fprintln(a.out, i18n.Text(a.lang(), i18n.AdvisorCancelled))
		return false
	}
	a.printMarkdown(renderer.Advice(st, a.lang()))
	return st.Status == advisor.Succeeded
}
