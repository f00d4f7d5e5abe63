package broadcast_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patkim97/folio/pkg/broadcast"
)

func receive[T any](t *testing.T, sub broadcast.Subscriber[T]) (broadcast.Message[T], bool) {
	t.Helper()

	select {
	case msg, ok := <-sub.Receive(context.Background()):
		return msg, ok
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for message")
		return broadcast.Message[T]{}, false
	}
}

func TestMemoryBroadcaster(t *testing.T) {
	t.Parallel()

	t.Run("delivers to every subscriber", func(t *testing.T) {
		t.Parallel()

		b := broadcast.NewMemoryBroadcaster[string](2)
		t.Cleanup(func() { _ = b.Close() })

		s1 := b.Subscribe(context.Background())
		s2 := b.Subscribe(context.Background())

		require.NoError(t, b.Broadcast(context.Background(), broadcast.Message[string]{Data: "kr"}))

		for _, s := range []broadcast.Subscriber[string]{s1, s2} {
			msg, ok := receive(t, s)
			require.True(t, ok)
			assert.Equal(t, "kr", msg.Data)
		}
	})

	t.Run("slow subscriber dropped", func(t *testing.T) {
		t.Parallel()

		b := broadcast.NewMemoryBroadcaster[int](1)
		t.Cleanup(func() { _ = b.Close() })

		sub := b.Subscribe(context.Background())
		require.NoError(t, b.Broadcast(context.Background(), broadcast.Message[int]{Data: 1}))
		require.NoError(t, b.Broadcast(context.Background(), broadcast.Message[int]{Data: 2}))

		assert.Equal(t, 0, b.Subscribers())

		msg, ok := receive(t, sub)
		require.True(t, ok)
		assert.Equal(t, 1, msg.Data)

		_, ok = receive(t, sub)
		assert.False(t, ok)
	})

	t.Run("context cancellation ends subscription", func(t *testing.T) {
		t.Parallel()

		b := broadcast.NewMemoryBroadcaster[int](1)
		t.Cleanup(func() { _ = b.Close() })

		ctx, cancel := context.WithCancel(context.Background())
		sub := b.Subscribe(ctx)
		cancel()

		_, ok := receive(t, sub)
		assert.False(t, ok)
		assert.Eventually(t, func() bool { return b.Subscribers() == 0 }, time.Second, 5*time.Millisecond)
	})

	t.Run("close with live subscription contexts returns", func(t *testing.T) {
		t.Parallel()

		b := broadcast.NewMemoryBroadcaster[int](1)
		ctx, cancel := context.WithCancel(context.Background())
		t.Cleanup(cancel)

		sub := b.Subscribe(ctx)

		done := make(chan struct{})
		go func() {
			_ = b.Close()
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("Close blocked on live subscription")
		}

		_, ok := receive(t, sub)
		assert.False(t, ok)
		assert.ErrorIs(t, b.Broadcast(context.Background(), broadcast.Message[int]{Data: 1}), broadcast.ErrBroadcasterClosed)

		late := b.Subscribe(context.Background())
		_, ok = receive(t, late)
		assert.False(t, ok)
	})

	t.Run("subscriber close is idempotent", func(t *testing.T) {
		t.Parallel()

		b := broadcast.NewMemoryBroadcaster[int](1)
		t.Cleanup(func() { _ = b.Close() })

		ctx, cancel := context.WithCancel(context.Background())
		t.Cleanup(cancel)

		sub := b.Subscribe(ctx)
		assert.NoError(t, sub.Close())
		assert.NoError(t, sub.Close())
		assert.Eventually(t, func() bool { return b.Subscribers() == 0 }, time.Second, 5*time.Millisecond)
	})
}
