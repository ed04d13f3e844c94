package content

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moto-pile/site/async"
)

var testLoaderConfig = LoaderConfig{
	RefreshEvery: time.Millisecond,
	RefreshBurst: 10,
	CacheTTL:     time.Hour,
}

func snapshotWith(question string) *Snapshot {
	return &Snapshot{
		FAQs:     []FAQ{{ID: 1, Category: "buying", Question: question}},
		LoadedAt: time.Now(),
	}
}

func newTestLoader(t *testing.T, fetch async.WorkFunc[*Snapshot], cfg LoaderConfig) *Loader {
	t.Helper()
	l, err := NewLoader(fetch, cfg)
	require.NoError(t, err)
	t.Cleanup(l.Close)
	return l
}

func waitForStatus(t *testing.T, l *Loader, status async.Status) {
	t.Helper()
	require.Eventually(t, func() bool {
		_, st := l.Current()
		return st.Status == status
	}, time.Second, 5*time.Millisecond)
}

func TestLoaderLoadsOnStart(t *testing.T) {
	l := newTestLoader(t, func(ctx context.Context) (*Snapshot, error) {
		return snapshotWith("first"), nil
	}, testLoaderConfig)

	waitForStatus(t, l, async.StatusSuccess)

	s, st := l.Current()
	require.NotNil(t, s)
	assert.Equal(t, "first", s.FAQs[0].Question)
	assert.NoError(t, st.Err)
}

func TestLoaderPendingWithoutSnapshot(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	l := newTestLoader(t, func(ctx context.Context) (*Snapshot, error) {
		select {
		case <-release:
		case <-ctx.Done():
		}
		return nil, ctx.Err()
	}, testLoaderConfig)

	s, st := l.Current()
	assert.Nil(t, s)
	assert.Equal(t, async.StatusPending, st.Status)
}

func TestLoaderKeepsLastSnapshotOnFailure(t *testing.T) {
	var calls atomic.Int32
	l := newTestLoader(t, func(ctx context.Context) (*Snapshot, error) {
		if calls.Add(1) == 1 {
			return snapshotWith("good"), nil
		}
		return nil, errors.New("database is locked")
	}, testLoaderConfig)

	waitForStatus(t, l, async.StatusSuccess)

	_, err := l.Reload(context.Background())
	assert.ErrorContains(t, err, "database is locked")

	s, st := l.Current()
	assert.Equal(t, async.StatusError, st.Status)
	assert.ErrorContains(t, st.Err, "database is locked")
	require.NotNil(t, s)
	assert.Equal(t, "good", s.FAQs[0].Question)
}

func TestLoaderReloadSupersedesInFlightLoad(t *testing.T) {
	var calls atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})

	l := newTestLoader(t, func(ctx context.Context) (*Snapshot, error) {
		switch calls.Add(1) {
		case 1:
			return snapshotWith("initial"), nil
		case 2:
			close(started)
			<-release
			return snapshotWith("stale"), nil
		default:
			return snapshotWith("fresh"), nil
		}
	}, testLoaderConfig)
	waitForStatus(t, l, async.StatusSuccess)

	slow := make(chan error, 1)
	go func() {
		_, err := l.Reload(context.Background())
		slow <- err
	}()
	<-started

	s, err := l.Reload(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fresh", s.FAQs[0].Question)

	close(release)
	assert.ErrorIs(t, <-slow, async.ErrSuperseded)

	current, st := l.Current()
	assert.Equal(t, async.StatusSuccess, st.Status)
	assert.Equal(t, "fresh", current.FAQs[0].Question)
}

func TestLoaderRefreshThrottled(t *testing.T) {
	l := newTestLoader(t, func(ctx context.Context) (*Snapshot, error) {
		return snapshotWith("q"), nil
	}, LoaderConfig{RefreshEvery: time.Hour, RefreshBurst: 1, CacheTTL: time.Hour})

	assert.NoError(t, l.Refresh())
	assert.ErrorIs(t, l.Refresh(), ErrRefreshThrottled)
}

func TestLoaderRun(t *testing.T) {
	var calls atomic.Int32
	l := newTestLoader(t, func(ctx context.Context) (*Snapshot, error) {
		calls.Add(1)
		return snapshotWith("q"), nil
	}, testLoaderConfig)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		l.Run(ctx, 5*time.Millisecond)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return calls.Load() >= 3
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestLoaderClose(t *testing.T) {
	started := make(chan context.Context, 1)
	l, err := NewLoader(func(ctx context.Context) (*Snapshot, error) {
		started <- ctx
		<-ctx.Done()
		return nil, ctx.Err()
	}, testLoaderConfig)
	require.NoError(t, err)

	attemptCtx := <-started
	l.Close()

	assert.ErrorIs(t, context.Cause(attemptCtx), async.ErrDisposed)
	assert.ErrorIs(t, l.Refresh(), async.ErrDisposed)
	_, err = l.Reload(context.Background())
	assert.ErrorIs(t, err, async.ErrDisposed)
}
