package broadcast

import (
	"context"
	"sync"
)

// Message wraps data of type T for type-safe broadcasting.
type Message[T any] struct {
	Data T
}

// Subscriber receives messages from a Broadcaster.
type Subscriber[T any] interface {
	// Receive returns the channel messages are delivered on.
	// The channel is closed when the subscription ends.
	Receive(ctx context.Context) <-chan Message[T]

	// Close ends the subscription. It is idempotent.
	Close() error
}

// Broadcaster sends messages to multiple subscribers.
type Broadcaster[T any] interface {
	// Subscribe registers a subscriber whose lifetime is bound to ctx.
	Subscribe(ctx context.Context) Subscriber[T]

	// Broadcast delivers msg to every subscriber with room in its buffer.
	Broadcast(ctx context.Context, msg Message[T]) error

	// Close ends every subscription. Subsequent subscribers are returned closed.
	Close() error
}

type subscriber[T any] struct {
	ch     chan Message[T]
	done   chan struct{}
	closed bool
	mu     sync.RWMutex
}

func newSubscriber[T any](bufferSize int) *subscriber[T] {
	return &subscriber[T]{
		ch:   make(chan Message[T], bufferSize),
		done: make(chan struct{}),
	}
}

func (s *subscriber[T]) Receive(context.Context) <-chan Message[T] {
	return s.ch
}

func (s *subscriber[T]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		s.closed = true
		close(s.ch)
		close(s.done)
	}
	return nil
}

func (s *subscriber[T]) send(msg Message[T]) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return false
	}

	select {
	case s.ch <- msg:
		return true
	default:
		return false
	}
}
