package async_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patkim97/folio/pkg/async"
)

func TestAsync(t *testing.T) {
	t.Parallel()

	t.Run("returns result", func(t *testing.T) {
		t.Parallel()

		f := async.Async(context.Background(), 21, func(_ context.Context, v int) (int, error) {
			return v * 2, nil
		})

		got, err := f.Await()
		require.NoError(t, err)
		assert.Equal(t, 42, got)
		assert.True(t, f.IsComplete())
	})

	t.Run("returns error", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		f := async.Async(context.Background(), struct{}{}, func(context.Context, struct{}) (string, error) {
			return "", boom
		})

		_, err := f.Await()
		assert.ErrorIs(t, err, boom)
	})

	t.Run("pre-cancelled context skips fn", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var called atomic.Bool
		f := async.Async(ctx, 0, func(context.Context, int) (int, error) {
			called.Store(true)
			return 1, nil
		})

		_, err := f.Await()
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, called.Load())
	})

	t.Run("await repeatable", func(t *testing.T) {
		t.Parallel()

		f := async.Async(context.Background(), "x", func(_ context.Context, s string) (string, error) {
			return s + "y", nil
		})

		a, _ := f.Await()
		b, _ := f.Await()
		assert.Equal(t, a, b)
	})
}

func TestFuture_AwaitBounds(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	t.Cleanup(func() { close(release) })

	f := async.Async(context.Background(), 0, func(context.Context, int) (int, error) {
		<-release
		return 1, nil
	})

	_, err := f.AwaitWithTimeout(10 * time.Millisecond)
	assert.ErrorIs(t, err, async.ErrTimeout)
	assert.False(t, f.IsComplete())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = f.AwaitContext(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestResolved(t *testing.T) {
	t.Parallel()

	f := async.Resolved("done", nil)
	assert.True(t, f.IsComplete())

	select {
	case <-f.Done():
	default:
		t.Fatal("resolved future not done")
	}

	got, err := f.Await()
	require.NoError(t, err)
	assert.Equal(t, "done", got)
}
