package zenith

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// View is one of the five screens of the dashboard.
type View string

const (
	DashboardView    View = "dashboard"
	WalletsView      View = "wallets"
	TransactionsView View = "transactions"
	ReportsView      View = "reports"
	AdvisorView      View = "advisor"
)

// Views lists the navigation entries in menu order.
var Views = []View{DashboardView, WalletsView, TransactionsView, ReportsView, AdvisorView}

// ParseView parses a view name, case insensitive.
func ParseView(s string) (View, error) {
	v := View(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(Views, v) {
		return "", fmt.Errorf("unknown view %q, expected one of %v", s, Views)
	}
	return v, nil
}

// ErrNotAuthenticated is returned when a view is requested before login.
var ErrNotAuthenticated = errors.New("not logged in")

// Session holds the state of a single user session: login gate, current view and the data
// published to views. Session is the only writer of that state; views get a read-only *Data.
type Session struct {
	provider Provider
	user     string
	view     View
	data     *Data
}

// NewSession creates an unauthenticated session that will be seeded from p.
func NewSession(p Provider) *Session {
	return &Session{provider: p}
}

// Login authenticates the session. Any user is accepted.
// It loads the data from the provider and navigates to the dashboard.
func (s *Session) Login(user string) error {
	pf, err := s.provider.Portfolio()
	if err != nil {
		return fmt.Errorf("loading portfolio: %w", err)
	}
	wallets, err := s.provider.Wallets()
	if err != nil {
		return fmt.Errorf("loading wallets: %w", err)
	}
	txs, err := s.provider.Transactions()
	if err != nil {
		return fmt.Errorf("loading transactions: %w", err)
	}
	s.user = user
	s.data = NewData(pf, wallets, txs)
	s.view = DashboardView
	return nil
}

// Logout resets the session to unauthenticated.
func (s *Session) Logout() {
	s.user = ""
	s.data = nil
	s.view = ""
}

// Authenticated reports whether Login succeeded since the last Logout.
func (s *Session) Authenticated() bool { return s.data != nil }

// User returns the name given at login.
func (s *Session) User() string { return s.user }

// View returns the current view, empty when not authenticated.
func (s *Session) View() View { return s.view }

// Navigate selects the current view.
func (s *Session) Navigate(v View) error {
	if !s.Authenticated() {
		return ErrNotAuthenticated
	}
	if !slices.Contains(Views, v) {
		return fmt.Errorf("unknown view %q", v)
	}
	s.view = v
	return nil
}

// Data returns the read-only handle on the session data.
func (s *Session) Data() (*Data, error) {
	if !s.Authenticated() {
		return nil, ErrNotAuthenticated
	}
	return s.data, nil
}

// Data is the read-only context shared by all the views. Accessors return copies.
type Data struct {
	portfolio    Portfolio
	wallets      []Wallet
	transactions []Transaction
}

// NewData takes a copy of the given values.
func NewData(p Portfolio, wallets []Wallet, txs []Transaction) *Data {
	d := &Data{
		portfolio:    p.Clone(),
		transactions: slices.Clone(txs),
	}
	for _, w := range wallets {
		d.wallets = append(d.wallets, w.Clone())
	}
	return d
}

func (d *Data) Portfolio() Portfolio { return d.portfolio.Clone() }

func (d *Data) Transactions() []Transaction { return slices.Clone(d.transactions) }

func (d *Data) Wallets() []Wallet {
	result := make([]Wallet, 0, len(d.wallets))
	for _, w := range d.wallets {
		result = append(result, w.Clone())
	}
	return result
}
