package broadcast

import (
	"context"
	"sync"
)

// MemoryBroadcaster drops messages for slow consumers rather than blocking.
// All methods are safe for concurrent use.
type MemoryBroadcaster[T any] struct {
	subscribers map[*subscriber[T]]struct{}
	bufferSize  int
	closed      bool
	mu          sync.RWMutex
	cleanupWg   sync.WaitGroup
}

// NewMemoryBroadcaster creates a broadcaster whose subscribers buffer up to
// bufferSize messages each. The minimum buffer size is 1.
func NewMemoryBroadcaster[T any](bufferSize int) *MemoryBroadcaster[T] {
	return &MemoryBroadcaster[T]{
		subscribers: make(map[*subscriber[T]]struct{}),
		bufferSize:  max(bufferSize, 1),
	}
}

// Subscribe implements Broadcaster.
func (b *MemoryBroadcaster[T]) Subscribe(ctx context.Context) Subscriber[T] {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub := newSubscriber[T](b.bufferSize)
	if b.closed {
		_ = sub.Close()
		return sub
	}

	b.subscribers[sub] = struct{}{}

	if ctx.Done() != nil {
		b.cleanupWg.Add(1)
		go func() {
			defer b.cleanupWg.Done()
			select {
			case <-ctx.Done():
			case <-sub.done:
			}
			b.unsubscribe(sub)
		}()
	}

	return sub
}

// Subscribers returns the number of active subscriptions.
func (b *MemoryBroadcaster[T]) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}

// Broadcast implements Broadcaster. Subscribers that cannot take the message
// are removed.
func (b *MemoryBroadcaster[T]) Broadcast(_ context.Context, msg Message[T]) error {
	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		return ErrBroadcasterClosed
	}

	var slow []*subscriber[T]
	for sub := range b.subscribers {
		if !sub.send(msg) {
			slow = append(slow, sub)
		}
	}
	b.mu.RUnlock()

	for _, sub := range slow {
		b.unsubscribe(sub)
	}
	return nil
}

// Close implements Broadcaster. It is safe to call more than once.
func (b *MemoryBroadcaster[T]) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true

	subs := make([]*subscriber[T], 0, len(b.subscribers))
	for sub := range b.subscribers {
		subs = append(subs, sub)
	}
	clear(b.subscribers)
	b.mu.Unlock()

	for _, sub := range subs {
		_ = sub.Close()
	}

	// Closing the subscribers releases every cleanup goroutine.
	b.cleanupWg.Wait()
	return nil
}

func (b *MemoryBroadcaster[T]) unsubscribe(sub *subscriber[T]) {
	b.mu.Lock()
	delete(b.subscribers, sub)
	b.mu.Unlock()

	_ = sub.Close()
}
