package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/etnz/zenith"
	"github.com/etnz/zenith/advisor"
	"github.com/etnz/zenith/i18n"
	"github.com/etnz/zenith/renderer"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

type shellCmd struct{}

func (*shellCmd) Name() string     { return "shell" }
func (*shellCmd) Synopsis() string { return "start an interactive dashboard session" }
func (*shellCmd) Usage() string {
	return `zenith shell [commands...]

  Starts an interactive session. Arguments are run as the first commands, then they are
  read from the standard input. Type 'help' for the list of commands and 'bye' to exit.

Usage Examples:
# Log in and open the advisor.
$ zenith shell "login me@example.com" "view advisor"
`
}
func (*shellCmd) SetFlags(*flag.FlagSet) {}

func (*shellCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.log.Sync()

	p, err := a.provider()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading data: %v\n", err)
		return subcommands.ExitFailure
	}
	client, err := a.advisor(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	sh := newShell(a, zenith.NewSession(p), client, os.Stdin)
	if err := sh.Run(ctx, f.Args()...); err != nil {
		fmt.Fprintln(os.Stderr, "Shell failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

const prompt = "zenith> "

const help = `Commands:
  login [email]      log in, any email is accepted
  logout             log out
  view <name>        open a view: dashboard, wallets, transactions, reports, advisor
  <name>             same as view <name>
  filter <type|all>  filter the transactions: Deposit, Withdrawal, Buy, Sell, Transfer
  analyze            ask the AI advisor for rebalancing suggestions
  help               this message
  bye                exit
`

// Shell is the interactive session: it reads commands, drives the session and prints
// the current view after each command.
type Shell struct {
	app     *app
	r       *bufio.Reader
	session *zenith.Session
	panel   *advisor.Panel
	filter  zenith.TransactionFilter
}

// newShell creates a shell reading commands from r and printing to the app output.
func newShell(a *app, s *zenith.Session, adv advisor.Advisor, r io.Reader) *Shell {
	return &Shell{
		app:     a,
		r:       bufio.NewReader(r),
		session: s,
		panel:   advisor.NewPanel(adv, a.lang(), a.log),
	}
}

// Run starts the REPL. prompts are executed first, as if typed.
func (s *Shell) Run(ctx context.Context, prompts ...string) error {
	defer s.panel.Close()
	w := s.app.out

	fmt.Fprintln(w, "Welcome to Zenith. Type 'help' for the commands, 'bye' to exit.")

	for {
		fmt.Fprint(w, prompt)
		var input string

		// Flush prompts from the list and then ask for the user.
		if len(prompts) > 0 {
			input, prompts = strings.TrimSpace(prompts[0]), prompts[1:]
			if input == "" {
				continue
			}
			fmt.Fprintln(w, input)
		} else {
			var err error
			input, err = s.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					fmt.Fprintln(w)
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		cmd, arg, _ := strings.Cut(strings.TrimSpace(input), " ")
		arg = strings.TrimSpace(arg)
		if cmd == "bye" || cmd == "exit" || cmd == "quit" {
			return nil
		}
		if err := s.exec(ctx, cmd, arg); err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
		}
	}
}

// exec runs a single command.
func (s *Shell) exec(ctx context.Context, cmd, arg string) error {
	switch cmd {
	case "":
		return nil
	case "help":
		fmt.Fprint(s.app.out, help)
		return nil
	case "login":
		return s.login(arg)
	case "logout":
		s.logout()
		return nil
	case "view":
		return s.view(arg)
	case "filter":
		return s.setFilter(arg)
	case "analyze":
		return s.analyze(ctx)
	}
	if _, err := zenith.ParseView(cmd); err == nil {
		return s.view(cmd)
	}
	return fmt.Errorf("unknown command %q, type 'help' for the list of commands", cmd)
}

func (s *Shell) login(user string) error {
	if user == "" {
		user = guest
	}
	if err := s.session.Login(user); err != nil {
		return err
	}
	s.app.log.Info("logged in", zap.String("user", user))
	fmt.Fprintln(s.app.out, s.text(i18n.LoggedIn, user))
	return s.render()
}

func (s *Shell) logout() {
	s.panel.Cancel()
	s.filter = zenith.TransactionFilter{}
	s.session.Logout()
	fmt.Fprintln(s.app.out, s.text(i18n.LoggedOut))
}

// gate prints the login message and reports false when not authenticated.
func (s *Shell) gate() bool {
	if s.session.Authenticated() {
		return true
	}
	fmt.Fprintln(s.app.out, s.text(i18n.LoginRequired))
	return false
}

func (s *Shell) view(name string) error {
	if !s.gate() {
		return nil
	}
	v, err := zenith.ParseView(name)
	if err != nil {
		return err
	}
	if err := s.session.Navigate(v); err != nil {
		return err
	}
	return s.render()
}

func (s *Shell) setFilter(arg string) error {
	if !s.gate() {
		return nil
	}
	filter, err := parseFilter(arg)
	if err != nil {
		return err
	}
	s.filter = filter
	if err := s.session.Navigate(zenith.TransactionsView); err != nil {
		return err
	}
	return s.render()
}

func (s *Shell) analyze(ctx context.Context) error {
	if !s.gate() {
		return nil
	}
	if err := s.session.Navigate(zenith.AdvisorView); err != nil {
		return err
	}
	d, err := s.session.Data()
	if err != nil {
		return err
	}
	if s.panel.Analyze(ctx, d.Portfolio()) {
		if err := s.render(); err != nil {
			return err
		}
		waitAdvice(ctx, s.panel)
	}
	return s.render()
}

// render prints the current view.
func (s *Shell) render() error {
	d, err := s.session.Data()
	if err != nil {
		return err
	}
	lang := s.app.lang()
	var md string
	switch s.session.View() {
	case zenith.DashboardView:
		md = renderer.Dashboard(d, lang)
	case zenith.WalletsView:
		md = renderer.Wallets(d, lang)
	case zenith.TransactionsView:
		md = renderer.Transactions(d, s.filter, lang)
	case zenith.ReportsView:
		md = renderer.Reports(d, lang)
	case zenith.AdvisorView:
		md = renderer.Advice(s.panel.State(), lang)
	}
	s.app.printMarkdown(md)
	return nil
}

func (s *Shell) text(key string, args ...any) string {
	return i18n.Text(s.app.lang(), key, args...)
}

// waitAdvice waits for the request in flight to settle. An interrupt cancels it.
func waitAdvice(ctx context.Context, p *advisor.Panel) {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	select {
	case <-p.Done():
	case <-ctx.Done():
		p.Cancel()
	}
}
