package content

import (
	"context"
	"errors"
	"log"
	"time"

	"golang.org/x/time/rate"

	"github.com/moto-pile/site/async"
	"github.com/moto-pile/site/cache"
	"github.com/moto-pile/site/metrics"
)

// ErrRefreshThrottled is returned by Refresh when manual refreshes come too fast
var ErrRefreshThrottled = errors.New("content refresh throttled")

const snapshotKey = "content:snapshot"

type LoaderConfig struct {
	// RefreshEvery and RefreshBurst bound manual refreshes.
	RefreshEvery time.Duration
	RefreshBurst int
	// CacheTTL is how long the last good snapshot survives failed reloads.
	CacheTTL time.Duration
}

// Loader keeps the page content in memory. Loads run through an async.Controller, so a
// refresh cancels the load it overlaps and only the latest one is served.
type Loader struct {
	ctrl    *async.Controller[*Snapshot]
	last    *cache.Cache[*Snapshot]
	limiter *rate.Limiter
	ttl     time.Duration
}

// NewLoader starts loading immediately with fetch. LoadSnapshot is the production fetch.
func NewLoader(fetch async.WorkFunc[*Snapshot], cfg LoaderConfig) (*Loader, error) {
	last, err := cache.New[*Snapshot]("Content Snapshot Cache", func(s *Snapshot) int64 {
		return s.cost()
	})
	if err != nil {
		return nil, err
	}

	l := &Loader{
		ctrl:    async.New(fetch, false),
		last:    last,
		limiter: rate.NewLimiter(rate.Every(cfg.RefreshEvery), cfg.RefreshBurst),
		ttl:     cfg.CacheTTL,
	}
	l.ctrl.Subscribe(l.observe)

	if err := l.ctrl.Trigger(); err != nil {
		return nil, err
	}
	log.Printf("[content] loader started")
	return l, nil
}

// observe runs for every visible transition of the controller
func (l *Loader) observe(st async.State[*Snapshot]) {
	metrics.ContentStatus(st.Status)

	switch st.Status {
	case async.StatusSuccess:
		l.last.SetWithTTL(snapshotKey, st.Result, l.ttl)
		l.last.Wait()
		metrics.ContentRefresh(metrics.OutcomeSuccess)
		metrics.ContentLoaded(st.Result.LoadedAt.Unix())
		log.Printf("[content] loaded %d faqs in %d categories (attempt %s)",
			len(st.Result.FAQs), len(st.Result.Categories), st.Attempt)
	case async.StatusError:
		metrics.ContentRefresh(metrics.OutcomeError)
		log.Printf("[content] load failed (attempt %s): %v", st.Attempt, st.Err)
	}
}

// Current returns the snapshot to serve and the loader state. While a load is pending or
// after it failed, the last good snapshot is returned; it is nil if none was ever loaded.
func (l *Loader) Current() (*Snapshot, async.State[*Snapshot]) {
	st := l.ctrl.State()
	if st.Status == async.StatusSuccess {
		return st.Result, st
	}
	if s, ok := l.last.Get(snapshotKey); ok {
		return s, st
	}
	return nil, st
}

// Refresh starts a reload in the background, superseding one in flight
func (l *Loader) Refresh() error {
	if !l.limiter.Allow() {
		metrics.ContentRefresh(metrics.OutcomeThrottled)
		return ErrRefreshThrottled
	}
	return l.ctrl.Trigger()
}

// Reload loads synchronously and returns the fresh snapshot
func (l *Loader) Reload(ctx context.Context) (*Snapshot, error) {
	s, err := l.ctrl.Execute(ctx)
	if errors.Is(err, async.ErrCancelled) {
		metrics.ContentRefresh(metrics.OutcomeDiscarded)
	}
	return s, err
}

// Run reloads every interval until ctx is done
func (l *Loader) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := l.Reload(ctx); err != nil && !errors.Is(err, async.ErrCancelled) {
				log.Printf("[content] scheduled reload failed: %v", err)
			}
		}
	}
}

// Stats reports the snapshot cache counters
func (l *Loader) Stats() map[string]any {
	return l.last.Stats()
}

// Close cancels any load in flight and releases the cache
func (l *Loader) Close() {
	l.ctrl.Dispose()
	l.last.Close()
	log.Printf("[content] loader closed")
}
