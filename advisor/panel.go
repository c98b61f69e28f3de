package advisor

import (
	"context"
	"sync"

	"github.com/etnz/zenith"
	"github.com/etnz/zenith/i18n"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// Advisor is implemented by Client.
type Advisor interface {
	Advise(ctx context.Context, p zenith.Portfolio) (*Advice, error)
}

// Status is the state of a Panel.
type Status int

const (
	Idle Status = iota
	Loading
	Succeeded
	Failed
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "invalid"
	}
}

// State is a snapshot of a Panel.
type State struct {
	Status  Status
	Advice  *Advice // when Succeeded
	Message string  // when Failed, localized
}

// Panel runs advisory requests for a view, one at a time.
//
// A request moves the panel from any state but Loading to Loading, then to Succeeded or
// Failed. Close cancels the request in flight and drops its result.
type Panel struct {
	advisor Advisor
	lang    language.Tag
	log     *zap.Logger

	mu     sync.Mutex
	state  State
	gen    uint64 // incremented by each request, a result is applied only if gen did not change
	cancel context.CancelFunc
	done   chan struct{}
	closed bool
}

// NewPanel creates an idle panel.
func NewPanel(a Advisor, lang language.Tag, log *zap.Logger) *Panel {
	if log == nil {
		log = zap.NewNop()
	}
	done := make(chan struct{})
	close(done)
	return &Panel{advisor: a, lang: lang, log: log.Named("panel"), done: done}
}

// Analyze starts a request for p. It returns false, doing nothing, if a request is
// already in flight or the panel is closed.
func (p *Panel) Analyze(ctx context.Context, pf zenith.Portfolio) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed || p.state.Status == Loading {
		return false
	}

	p.gen++
	gen := p.gen
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	p.cancel, p.done = cancel, done
	p.state = State{Status: Loading}

	go func() {
		defer close(done)
		defer cancel()
		advice, err := p.advisor.Advise(ctx, pf)
		p.settle(gen, advice, err)
	}()
	return true
}

func (p *Panel) settle(gen uint64, advice *Advice, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed || gen != p.gen {
		p.log.Debug("discarding stale advisory result", zap.Uint64("request", gen))
		return
	}
	p.cancel = nil
	if err != nil {
		p.state = State{Status: Failed, Message: p.message(err)}
		return
	}
	p.state = State{Status: Succeeded, Advice: advice}
}

// message returns the text displayed for err.
func (p *Panel) message(err error) string {
	var unavailable *UnavailableError
	if errors.As(err, &unavailable) && unavailable.Message != "" {
		return unavailable.Message
	}
	p.log.Error("unexpected advisory error", zap.Error(err))
	return i18n.Text(p.lang, i18n.Unexpected)
}

// State returns the current state.
func (p *Panel) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Done returns a channel closed when the last request has settled.
func (p *Panel) Done() <-chan struct{} {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.done
}

// Close cancels the request in flight, if any, and refuses further requests.
// A panel closed while Loading goes back to Idle, a settled state is kept.
func (p *Panel) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	if p.state.Status == Loading {
		p.gen++
		p.state = State{Status: Idle}
	}
}

// Cancel aborts the request in flight, if any, and returns the panel to Idle.
// The aborted result is dropped when it arrives.
func (p *Panel) Cancel() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state.Status != Loading {
		return
	}
	p.gen++
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.state = State{Status: Idle}
}
