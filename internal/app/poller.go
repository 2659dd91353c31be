package app

import (
	"context"
	"sync"
	"time"

	"tunetree/internal/player"
	"tunetree/internal/state"
)

const defaultPollInterval = 5 * time.Second

// metadataSource is the slice of the player session the poller needs.
type metadataSource interface {
	GetMetadata(ctx context.Context) map[string]any
}

// Poller periodically asks the player for now-playing metadata and publishes
// a status line to the store when the title changes. It starts lazily on
// first playback and runs until Stop.
type Poller struct {
	store    *state.Store
	source   metadataSource
	interval time.Duration

	once   sync.Once
	cancel context.CancelFunc
	done   chan struct{}
}

// NewPoller builds a poller over the given metadata source.
func NewPoller(store *state.Store, source metadataSource, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	return &Poller{store: store, source: source, interval: interval}
}

// Start launches the polling goroutine. Only the first call has any effect;
// the loop is never restarted for the lifetime of the session.
func (p *Poller) Start(ctx context.Context) {
	p.once.Do(func() {
		ctx, p.cancel = context.WithCancel(ctx)
		p.done = make(chan struct{})
		go p.loop(ctx)
	})
}

// Stop cancels the loop and blocks until the goroutine has exited. Stopping
// a poller that never started is a no-op.
func (p *Poller) Stop() {
	if p.cancel == nil {
		return
	}
	p.cancel()
	<-p.done
}

func (p *Poller) loop(ctx context.Context) {
	defer close(p.done)

	lastTitle := ""
	hadTitle := false
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(p.interval):
		}

		resp := p.source.GetMetadata(ctx)
		if len(resp) == 0 {
			// Player absent or still starting; nothing to redraw.
			continue
		}
		title, ok := player.Title(resp)
		switch {
		case ok && title != "":
			if title != lastTitle || p.store.RefreshRequested() {
				p.store.Publish(p.store.Station() + ": " + title)
			}
			lastTitle = title
			hadTitle = true
		case hadTitle:
			// Title went away; fall back to the bare station name once.
			p.store.Publish(p.store.Station())
			lastTitle = ""
			hadTitle = false
		}
	}
}
