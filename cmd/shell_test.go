package cmd

import (
	"bytes"
	"context"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/etnz/zenith"
	"github.com/etnz/zenith/advisor"
	"github.com/etnz/zenith/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// fakeAdvisor returns a canned answer and counts the calls.
type fakeAdvisor struct {
	calls  atomic.Int32
	advice *advisor.Advice
	err    error
}

func (f *fakeAdvisor) Advise(ctx context.Context, p zenith.Portfolio) (*advisor.Advice, error) {
	f.calls.Add(1)
	return f.advice, f.err
}

func testApp(t *testing.T, locale string) (*app, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	return &app{
		cfg:   &config.Config{Locale: locale},
		log:   zaptest.NewLogger(t),
		out:   &out,
		plain: true,
	}, &out
}

// runShell runs the commands and returns the shell and its output.
func runShell(t *testing.T, adv advisor.Advisor, locale string, commands ...string) (*Shell, string) {
	t.Helper()
	a, out := testApp(t, locale)
	sh := newShell(a, zenith.NewSession(zenith.MockProvider{}), adv, strings.NewReader(""))
	require.NoError(t, sh.Run(context.Background(), commands...))
	return sh, out.String()
}

func TestShellLoginGate(t *testing.T) {
	adv := &fakeAdvisor{}
	sh, out := runShell(t, adv, "en", "dashboard", "view wallets", "filter Buy", "analyze")

	assert.Equal(t, 4, strings.Count(out, "Please log in first: `login [email]`."))
	assert.NotContains(t, out, "# Dashboard")
	assert.Zero(t, adv.calls.Load())
	assert.False(t, sh.session.Authenticated())
}

func TestShellNavigation(t *testing.T) {
	sh, out := runShell(t, &fakeAdvisor{}, "en",
		"login me@example.com",
		"wallets",
		"view reports",
		"filter Buy",
		"bye",
		"dashboard", // never read
	)

	assert.Contains(t, out, "Welcome to Zenith, me@example.com.")
	assert.Contains(t, out, "# Dashboard")
	assert.Contains(t, out, "## Ledger Nano X")
	assert.Contains(t, out, "# Reports")
	assert.Contains(t, out, "Filter: Buy")
	assert.Equal(t, 1, strings.Count(out, "# Dashboard"))

	assert.Equal(t, zenith.TransactionsView, sh.session.View())
	assert.Equal(t, zenith.TransactionFilter{Type: zenith.Buy}, sh.filter)
	assert.Equal(t, "me@example.com", sh.session.User())
}

func TestShellLoginWithoutEmail(t *testing.T) {
	sh, out := runShell(t, &fakeAdvisor{}, "en", "login")

	assert.Contains(t, out, "Welcome to Zenith, guest.")
	assert.Equal(t, zenith.DashboardView, sh.session.View())
}

func TestShellLogout(t *testing.T) {
	sh, out := runShell(t, &fakeAdvisor{}, "en", "login", "filter Sell", "logout", "transactions")

	assert.Contains(t, out, "Logged out.")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "Please log in first: `login [email]`.\nzenith>"), out)
	assert.False(t, sh.session.Authenticated())
	assert.True(t, sh.filter.All())
}

func TestShellErrors(t *testing.T) {
	_, out := runShell(t, &fakeAdvisor{}, "en", "login", "frobnicate", "view settings", "filter Gift")

	assert.Contains(t, out, `Error: unknown command "frobnicate"`)
	assert.Contains(t, out, `Error: unknown view "settings"`)
	assert.Contains(t, out, `Error: invalid transaction type "Gift"`)
}

func TestShellHelp(t *testing.T) {
	_, out := runShell(t, &fakeAdvisor{}, "en", "help")
	assert.Contains(t, out, "filter <type|all>")
}

func TestShellAnalyze(t *testing.T) {
	adv := &fakeAdvisor{advice: &advisor.Advice{
		Reasoning: "Too much BTC.",
		Suggestions: []advisor.Suggestion{
			{Action: advisor.Sell, Label: "sell", Asset: "BTC", Percentage: zenith.Pct(50), Rationale: "reduce"},
			{Action: advisor.Buy, Label: "buy", Asset: "ETH", Percentage: zenith.Pct(30), Rationale: "diversify"},
		},
	}}
	sh, out := runShell(t, adv, "en", "login", "analyze")

	assert.Equal(t, int32(1), adv.calls.Load())
	assert.Contains(t, out, "Analyzing...")
	assert.Contains(t, out, "Too much BTC.")
	assert.Contains(t, out, "▼ **sell BTC** (target: 50.00%)")
	assert.Contains(t, out, "▲ **buy ETH** (target: 30.00%)")
	assert.Equal(t, zenith.AdvisorView, sh.session.View())
	assert.Equal(t, advisor.Succeeded, sh.panel.State().Status)
}

func TestShellAnalyzeWithoutKey(t *testing.T) {
	disabled := advisor.NewWithGenerator(advisor.Config{}, nil, nil)
	sh, out := runShell(t, disabled, "en", "login", "analyze", "dashboard", "advisor")

	assert.Contains(t, out, "API key is not configured")
	assert.Contains(t, out, "# Dashboard", "the rest of the program works")
	assert.Equal(t, advisor.Failed, sh.panel.State().Status)
}

func TestShellPersian(t *testing.T) {
	_, out := runShell(t, &fakeAdvisor{}, "fa", "wallets", "login", "logout")

	assert.Contains(t, out, "لطفاً ابتدا وارد شوید")
	assert.Contains(t, out, "# داشبورد")
	assert.Contains(t, out, "خارج شدید.")
}

func TestShellReadsInput(t *testing.T) {
	a, out := testApp(t, "en")
	sh := newShell(a, zenith.NewSession(zenith.MockProvider{}), &fakeAdvisor{}, strings.NewReader("login\nview wallets\n"))

	require.NoError(t, sh.Run(context.Background()))
	assert.Contains(t, out.String(), "# Wallets")
	assert.Equal(t, zenith.WalletsView, sh.session.View())
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		in      string
		want    zenith.TransactionFilter
		wantErr bool
	}{
		{in: "", want: zenith.TransactionFilter{}},
		{in: "all", want: zenith.TransactionFilter{}},
		{in: "ALL", want: zenith.TransactionFilter{}},
		{in: "Deposit", want: zenith.TransactionFilter{Type: zenith.Deposit}},
		{in: "Transfer", want: zenith.TransactionFilter{Type: zenith.Transfer}},
		{in: "buy", wantErr: true},
		{in: "Gift", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseFilter(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
