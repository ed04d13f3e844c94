package async

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder collects the transitions delivered to a subscriber.
type recorder[T any] struct {
	mu     sync.Mutex
	states []State[T]
}

func (r *recorder[T]) record(st State[T]) {
	r.mu.Lock()
	r.states = append(r.states, st)
	r.mu.Unlock()
}

func (r *recorder[T]) statuses() []Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Status, 0, len(r.states))
	for _, st := range r.states {
		out = append(out, st.Status)
	}
	return out
}

func TestNewWithoutAutoStartIsIdle(t *testing.T) {
	called := false
	ctrl := New(func(ctx context.Context) (int, error) {
		called = true
		return 1, nil
	}, false)
	defer ctrl.Dispose()

	st := ctrl.State()
	assert.Equal(t, StatusIdle, st.Status)
	assert.Zero(t, st.Result)
	assert.NoError(t, st.Err)
	assert.Empty(t, st.Attempt)
	assert.False(t, called)
}

func TestAutoStartResolvesValue(t *testing.T) {
	ctrl := New(func(ctx context.Context) (int, error) {
		time.Sleep(20 * time.Millisecond)
		return 42, nil
	}, true)
	defer ctrl.Dispose()

	assert.Equal(t, StatusPending, ctrl.State().Status)

	require.Eventually(t, func() bool {
		return ctrl.State().Status == StatusSuccess
	}, time.Second, 5*time.Millisecond)

	st := ctrl.State()
	assert.Equal(t, 42, st.Result)
	assert.NoError(t, st.Err)
}

func TestExecuteTransitions(t *testing.T) {
	ctrl := New(func(ctx context.Context) (int, error) {
		return 42, nil
	}, false)
	defer ctrl.Dispose()

	rec := &recorder[int]{}
	ctrl.Subscribe(rec.record)

	v, err := ctrl.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, []Status{StatusPending, StatusSuccess}, rec.statuses())
}

func TestExecuteLastIssuedWins(t *testing.T) {
	tests := []struct {
		name     string
		firstErr error
	}{
		{name: "stale success", firstErr: nil},
		{name: "stale failure", firstErr: errors.New("stale failure")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			started := make(chan context.Context, 1)
			release := make(chan struct{})
			var calls atomic.Int32

			// The first attempt ignores its context on purpose.
			ctrl := New(func(ctx context.Context) (string, error) {
				if calls.Add(1) == 1 {
					started <- ctx
					<-release
					return "A", tt.firstErr
				}
				return "B", nil
			}, false)
			defer ctrl.Dispose()

			type outcome struct {
				v   string
				err error
			}
			first := make(chan outcome, 1)
			go func() {
				v, err := ctrl.Execute(context.Background())
				first <- outcome{v, err}
			}()
			firstCtx := <-started

			v, err := ctrl.Execute(context.Background())
			require.NoError(t, err)
			assert.Equal(t, "B", v)

			assert.Error(t, firstCtx.Err())
			assert.ErrorIs(t, context.Cause(firstCtx), ErrSuperseded)

			close(release)
			out := <-first
			assert.Empty(t, out.v)
			assert.ErrorIs(t, out.err, ErrSuperseded)
			assert.ErrorIs(t, out.err, ErrCancelled)

			st := ctrl.State()
			assert.Equal(t, StatusSuccess, st.Status)
			assert.Equal(t, "B", st.Result)
			assert.NoError(t, st.Err)
		})
	}
}

func TestFailureThenSuccess(t *testing.T) {
	boom := errors.New("boom")
	fail := true
	ctrl := New(func(ctx context.Context) (string, error) {
		if fail {
			return "", boom
		}
		return "V", nil
	}, false)
	defer ctrl.Dispose()

	_, err := ctrl.Execute(context.Background())
	assert.ErrorIs(t, err, boom)

	st := ctrl.State()
	assert.Equal(t, StatusError, st.Status)
	assert.ErrorIs(t, st.Err, boom)
	assert.Empty(t, st.Result)

	fail = false
	v, err := ctrl.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "V", v)

	st = ctrl.State()
	assert.Equal(t, StatusSuccess, st.Status)
	assert.Equal(t, "V", st.Result)
	assert.NoError(t, st.Err)
}

func TestCancellationIsNotAFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "context canceled", err: context.Canceled},
		{name: "wrapped context canceled", err: errors.Join(errors.New("fetch"), context.Canceled)},
		{name: "cancelled sentinel", err: ErrCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := New(func(ctx context.Context) (int, error) {
				return 7, tt.err
			}, false)
			defer ctrl.Dispose()

			rec := &recorder[int]{}
			ctrl.Subscribe(rec.record)

			v, err := ctrl.Execute(context.Background())
			assert.Zero(t, v)
			assert.ErrorIs(t, err, ErrCancelled)

			st := ctrl.State()
			assert.NotEqual(t, StatusError, st.Status)
			assert.NoError(t, st.Err)
			assert.Equal(t, []Status{StatusPending}, rec.statuses())
		})
	}
}

func TestDeadlineExceededIsAFailure(t *testing.T) {
	ctrl := New(func(ctx context.Context) (int, error) {
		<-ctx.Done()
		return 0, ctx.Err()
	}, false)
	defer ctrl.Dispose()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := ctrl.Execute(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, StatusError, ctrl.State().Status)
}

func TestDisposeCancelsActiveAttempt(t *testing.T) {
	started := make(chan context.Context, 1)
	release := make(chan struct{})
	ctrl := New(func(ctx context.Context) (int, error) {
		started <- ctx
		<-release
		return 1, nil
	}, false)

	rec := &recorder[int]{}
	ctrl.Subscribe(rec.record)

	done := make(chan error, 1)
	go func() {
		_, err := ctrl.Execute(context.Background())
		done <- err
	}()
	attemptCtx := <-started

	ctrl.Dispose()
	assert.ErrorIs(t, context.Cause(attemptCtx), ErrDisposed)

	close(release)
	assert.ErrorIs(t, <-done, ErrDisposed)

	assert.Equal(t, []Status{StatusPending}, rec.statuses())
	assert.Equal(t, StatusPending, ctrl.State().Status)
}

func TestExecuteAfterDispose(t *testing.T) {
	called := false
	ctrl := New(func(ctx context.Context) (int, error) {
		called = true
		return 1, nil
	}, false)
	ctrl.Dispose()
	ctrl.Dispose()

	_, err := ctrl.Execute(context.Background())
	assert.ErrorIs(t, err, ErrDisposed)
	assert.ErrorIs(t, ctrl.Trigger(), ErrDisposed)
	assert.False(t, called)
	assert.Equal(t, StatusIdle, ctrl.State().Status)
}

func TestTriggerLastIssuedWins(t *testing.T) {
	release := make(chan struct{})
	ctrl := New(func(ctx context.Context) (int, error) {
		<-release
		return 1, nil
	}, false)
	defer ctrl.Dispose()

	rec := &recorder[int]{}
	ctrl.Subscribe(rec.record)

	for i := 0; i < 5; i++ {
		require.NoError(t, ctrl.Trigger())
	}
	last := ctrl.State().Attempt
	require.NotEmpty(t, last)

	close(release)
	require.Eventually(t, func() bool {
		return ctrl.State().Status == StatusSuccess
	}, time.Second, 5*time.Millisecond)

	// Give the superseded attempts time to finish and be discarded.
	time.Sleep(20 * time.Millisecond)

	assert.Equal(t, last, ctrl.State().Attempt)
	successes := 0
	for _, s := range rec.statuses() {
		if s == StatusSuccess {
			successes++
		}
	}
	assert.Equal(t, 1, successes)
}

func TestResultAndFailureExclusive(t *testing.T) {
	var n atomic.Int32
	ctrl := New(func(ctx context.Context) (int, error) {
		i := n.Add(1)
		if i%3 == 0 {
			return 0, errors.New("every third call fails")
		}
		return int(i), nil
	}, false)
	defer ctrl.Dispose()

	ctrl.Subscribe(func(st State[int]) {
		assert.False(t, st.Result != 0 && st.Err != nil, "result and failure both set: %+v", st)
	})

	for i := 0; i < 30; i++ {
		_, _ = ctrl.Execute(context.Background())
		st := ctrl.State()
		assert.False(t, st.Result != 0 && st.Err != nil)
		switch st.Status {
		case StatusSuccess:
			assert.NoError(t, st.Err)
		case StatusError:
			assert.Zero(t, st.Result)
		}
	}
}

func TestUnsubscribe(t *testing.T) {
	ctrl := New(func(ctx context.Context) (int, error) {
		return 1, nil
	}, false)
	defer ctrl.Dispose()

	rec := &recorder[int]{}
	unsubscribe := ctrl.Subscribe(rec.record)

	_, err := ctrl.Execute(context.Background())
	require.NoError(t, err)
	unsubscribe()
	_, err = ctrl.Execute(context.Background())
	require.NoError(t, err)

	assert.Len(t, rec.statuses(), 2)
}
