// Package notify maintains the badge counts for the current user, refreshed
// on a fixed interval while the app is mounted.
package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"bookloans/model"
	"bookloans/service/session"
)

const fetchFailedMsg = "Failed to fetch notifications"

// Fetcher is the one catalog call the poller needs.
type Fetcher interface {
	Notifications(ctx context.Context, token string) (*model.NotificationSummary, error)
}

// Poller keeps a current NotificationSummary, replaced atomically on every
// tick. A nil summary means "nothing to show": no session, or the last
// refresh failed (stale counts are never kept after a failure).
type Poller struct {
	session  session.Provider
	catalog  Fetcher
	interval time.Duration
	log      *slog.Logger

	mu      sync.Mutex
	summary *model.NotificationSummary
	errMsg  string
	started bool
	stopped bool
	done    chan struct{}
}

func New(sp session.Provider, c Fetcher, interval time.Duration, log *slog.Logger) *Poller {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &Poller{
		session:  sp,
		catalog:  c,
		interval: interval,
		log:      log,
		done:     make(chan struct{}),
	}
}

// Start fetches once immediately, then refreshes on a repeating ticker so the
// schedule drifts from the first tick, not from each fetch's completion.
// Start is idempotent after the first call.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	if p.started || p.stopped {
		p.mu.Unlock()
		return
	}
	p.started = true
	p.mu.Unlock()

	p.fetchOnce(ctx)

	go func() {
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				p.fetchOnce(ctx)
			case <-p.done:
				return
			}
		}
	}()
}

// Stop cancels the ticker. No tick fires after Stop returns, and a fetch
// already in flight is not aborted; its result is simply discarded.
func (p *Poller) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	close(p.done)
	p.mu.Unlock()
}

// Refresh runs one fetch now. It is not serialized against the scheduled
// tick; if both are in flight the summary reflects whichever lands last.
func (p *Poller) Refresh(ctx context.Context) {
	p.fetchOnce(ctx)
}

func (p *Poller) Summary() *model.NotificationSummary {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.summary
}

func (p *Poller) Err() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.errMsg
}

func (p *Poller) fetchOnce(ctx context.Context) {
	tok, ok := p.session.ActiveToken()
	if !ok {
		// not an error state: logged-out users just have no badge
		p.mu.Lock()
		if !p.stopped {
			p.summary = nil
		}
		p.mu.Unlock()
		return
	}

	sum, err := p.catalog.Notifications(ctx, tok.Bearer)
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stopped {
		// owner torn down mid-flight; do not write
		return
	}
	if err != nil {
		p.log.Error("notification refresh", "err", err)
		p.summary = nil
		p.errMsg = fetchFailedMsg
		return
	}
	p.summary = sum
	p.errMsg = ""
}
