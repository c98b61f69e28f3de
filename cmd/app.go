// Package cmd implements the zenith command line: an interactive shell and one-shot
// commands printing a single view.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/zenith"
	"github.com/etnz/zenith/advisor"
	"github.com/etnz/zenith/config"
	"github.com/google/subcommands"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&shellCmd{}, "")

	c.Register(&dashboardCmd{}, "views")
	c.Register(&walletsCmd{}, "views")
	c.Register(&transactionsCmd{}, "views")
	c.Register(&reportsCmd{}, "views")
	c.Register(&adviseCmd{}, "views")

	c.Register(&versionCmd{}, "")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	configFile = flag.String("config", "", "Path to an optional YAML configuration file")
	seedFile   = flag.String("seed", "", "Path to a YAML seed file, overrides "+config.EnvSeedFile)
	locale     = flag.String("locale", "", "Display language (en, fa), overrides "+config.EnvLocale)
	plain      = flag.Bool("plain", false, "Print raw markdown instead of styled output")
	Verbose    = flag.Bool("v", false, "Enable debug logs")
)

// guest is the user of the one-shot commands.
const guest = "guest"

// app is what every command needs: settings, logger and output.
type app struct {
	cfg   *config.Config
	log   *zap.Logger
	out   io.Writer
	plain bool
}

// newApp loads the configuration, applies the global flags and installs the global logger.
func newApp() (*app, error) {
	cfg, err := config.Load(*configFile)
	if err != nil {
		return nil, err
	}
	if *seedFile != "" {
		cfg.SeedFile = *seedFile
	}
	if *locale != "" {
		cfg.Locale = *locale
	}
	if *Verbose {
		cfg.Verbose = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log, err := newLogger(cfg.Verbose)
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(log)

	return &app{
		cfg:   cfg,
		log:   log,
		out:   os.Stdout,
		plain: *plain || !isatty.IsTerminal(os.Stdout.Fd()),
	}, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

func (a *app) lang() language.Tag { return a.cfg.Language() }

// provider returns the seed file data if one is configured, the demo data otherwise.
func (a *app) provider() (zenith.Provider, error) {
	if a.cfg.SeedFile == "" {
		return zenith.MockProvider{}, nil
	}
	a.log.Debug("loading seed file", zap.String("path", a.cfg.SeedFile))
	return zenith.OpenSeed(a.cfg.SeedFile)
}

// session returns a session already logged in as user.
func (a *app) session(user string) (*zenith.Session, error) {
	p, err := a.provider()
	if err != nil {
		return nil, err
	}
	s := zenith.NewSession(p)
	if err := s.Login(user); err != nil {
		return nil, err
	}
	return s, nil
}

// advisor returns the Gemini client, disabled when no API key is configured.
func (a *app) advisor(ctx context.Context) (*advisor.Client, error) {
	c, err := advisor.New(ctx, a.cfg.Advisor(), a.log)
	if err != nil {
		return nil, err
	}
	if !c.Enabled() {
		a.log.Info("advisor disabled", zap.String("reason", "no API key"))
	}
	return c, nil
}

// printMarkdown prints md styled for the terminal, or as is in plain mode.
func (a *app) printMarkdown(md string) {
	if a.plain {
		fmt.Fprintln(a.out, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		a.log.Warn("cannot create markdown renderer", zap.Error(err))
		fmt.Fprintln(a.out, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		a.log.Warn("cannot render markdown", zap.Error(err))
		fmt.Fprintln(a.out, md)
		return
	}
	fmt.Fprint(a.out, out)
}
