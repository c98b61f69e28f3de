// Package config loads the zenith settings.
//
// Settings are read, in increasing priority, from built-in defaults, an optional YAML
// file, a .env file and the process environment.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/etnz/zenith/advisor"
	"github.com/etnz/zenith/i18n"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Environment variables.
const (
	EnvModel    = "ZENITH_MODEL"
	EnvTimeout  = "ZENITH_TIMEOUT"
	EnvLocale   = "ZENITH_LOCALE"
	EnvSeedFile = "ZENITH_SEED_FILE"
	EnvVerbose  = "ZENITH_VERBOSE"
	EnvAPIKey   = "GEMINI_API_KEY"
	EnvAPIKeyV1 = "API_KEY" // legacy name, used when EnvAPIKey is not set
)

// Config holds the application settings.
type Config struct {
	APIKey   string        `yaml:"-"` // never read from the YAML file
	Model    string        `yaml:"model"`
	Timeout  time.Duration `yaml:"timeout"`
	Locale   string        `yaml:"locale"`
	SeedFile string        `yaml:"seed_file"`
	Verbose  bool          `yaml:"verbose"`
}

// Language returns the display language of the configured locale.
func (c *Config) Language() language.Tag {
	tag, err := i18n.Parse(c.Locale)
	if err != nil {
		return i18n.Supported[0]
	}
	return tag
}

// Advisor returns the settings of the Gemini client.
func (c *Config) Advisor() advisor.Config {
	return advisor.Config{
		APIKey:   c.APIKey,
		Model:    c.Model,
		Timeout:  c.Timeout,
		Language: c.Language(),
	}
}

// Load returns the configuration.
//
// path is an optional YAML file, an empty path skips it. A missing .env file in the
// working directory is ignored. Variables already set in the environment win over .env.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Model:   advisor.DefaultModel,
		Timeout: advisor.DefaultTimeout,
		Locale:  "en",
	}

	if path != "" {
		if err := readYAML(path, cfg); err != nil {
			return nil, err
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, errors.Wrap(err, "loading .env")
	}

	timeout, err := getEnvDuration(EnvTimeout, cfg.Timeout)
	if err != nil {
		return nil, err
	}
	cfg.Timeout = timeout
	cfg.Model = getEnvString(EnvModel, cfg.Model)
	cfg.Locale = getEnvString(EnvLocale, cfg.Locale)
	cfg.SeedFile = getEnvString(EnvSeedFile, cfg.SeedFile)
	cfg.Verbose = getEnvBool(EnvVerbose, cfg.Verbose)
	cfg.APIKey = getEnvString(EnvAPIKey, os.Getenv(EnvAPIKeyV1))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values that cannot be defaulted.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return errors.Errorf("timeout must be positive, got %v", c.Timeout)
	}
	if c.Model == "" {
		return errors.New("model is empty")
	}
	if _, err := i18n.Parse(c.Locale); err != nil {
		return errors.Wrap(err, "locale")
	}
	return nil
}

func readYAML(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "opening config file %q", path)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return errors.Wrapf(err, "decoding config file %q", path)
	}
	return nil
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	if value := os.Getenv(key); value != "" {
		duration, err := time.ParseDuration(value)
		if err != nil {
			return 0, errors.Errorf("invalid duration for %s: %q (%v)", key, value, err)
		}
		return duration, nil
	}
	return defaultValue, nil
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
