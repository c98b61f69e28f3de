// Package advisor asks Gemini for rebalancing suggestions on a portfolio.
//
// Client performs a single structured call per request, Panel orchestrates requests
// on behalf of a view.
package advisor

import (
	"context"
	"strings"
	"time"

	"github.com/etnz/zenith"
	"github.com/etnz/zenith/i18n"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"google.golang.org/genai"
)

const (
	DefaultModel   = "gemini-2.5-flash"
	DefaultTimeout = 30 * time.Second

	// temperature keeps the answer conservative.
	temperature float32 = 0.5
)

// Generator is the subset of *genai.Models used by the client.
type Generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Config configures a Client.
type Config struct {
	APIKey   string
	Model    string        // defaults to DefaultModel
	Timeout  time.Duration // defaults to DefaultTimeout
	Language language.Tag  // language of the messages and of the answer
	BaseURL  string        // optional Gemini endpoint override
}

// Client requests rebalancing suggestions from Gemini.
type Client struct {
	gen     Generator // nil when not configured
	model   string
	timeout time.Duration
	lang    language.Tag
	log     *zap.Logger
}

// New creates a Client for the Gemini API.
//
// An empty API key is not an error: the client is created disabled and every Advise
// fails with ErrNotConfigured without touching the network.
func New(ctx context.Context, cfg Config, log *zap.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return NewWithGenerator(cfg, nil, log), nil
	}
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: cfg.BaseURL},
	})
	if err != nil {
		return nil, errors.Wrap(err, "creating Gemini client")
	}
	return NewWithGenerator(cfg, gc.Models, log), nil
}

// NewWithGenerator creates a Client on top of an existing generator.
// A nil generator creates a disabled client.
func NewWithGenerator(cfg Config, gen Generator, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	c := &Client{
		gen:     gen,
		model:   cfg.Model,
		timeout: cfg.Timeout,
		lang:    cfg.Language,
		log:     log.Named("advisor"),
	}
	if cfg.APIKey == "" {
		c.gen = nil
	}
	if c.model == "" {
		c.model = DefaultModel
	}
	if c.timeout <= 0 {
		c.timeout = DefaultTimeout
	}
	if c.lang == language.Und {
		c.lang = language.English
	}
	return c
}

// Enabled reports whether an API key is configured.
func (c *Client) Enabled() bool { return c.gen != nil }

// Advise asks the model for rebalancing suggestions on p.
//
// Every failure is returned as an *UnavailableError with a localized message.
// It performs at most one call and never retries.
func (c *Client) Advise(ctx context.Context, p zenith.Portfolio) (*Advice, error) {
	if c.gen == nil {
		return nil, &UnavailableError{Message: i18n.Text(c.lang, i18n.NotConfigured), Cause: ErrNotConfigured}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	t := temperature
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   ResponseSchema(),
		Temperature:      &t,
	}
	prompt := BuildPrompt(p, c.lang)

	start := time.Now()
	resp, err := c.gen.GenerateContent(ctx, c.model, genai.Text(prompt), config)
	if err != nil {
		return nil, c.unavailable(errors.Wrap(err, "calling Gemini"))
	}
	text, err := responseText(resp)
	if err != nil {
		return nil, c.unavailable(err)
	}
	advice, err := ParseAdvice([]byte(text))
	if err != nil {
		return nil, c.unavailable(err)
	}
	c.log.Debug("advice received",
		zap.String("model", c.model),
		zap.Int("suggestions", len(advice.Suggestions)),
		zap.Duration("elapsed", time.Since(start)))
	return advice, nil
}

func (c *Client) unavailable(cause error) error {
	c.log.Error("Error calling Gemini API", zap.String("model", c.model), zap.Error(cause))
	return &UnavailableError{Message: i18n.Text(c.lang, i18n.AdvisoryFailed), Cause: cause}
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("empty response from Gemini")
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		b.WriteString(part.Text)
	}
	return strings.TrimSpace(b.String()), nil
}
