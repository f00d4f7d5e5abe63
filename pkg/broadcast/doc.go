// Package broadcast fans values out to any number of in-process subscribers.
//
// Broadcasts never block: a subscriber whose buffer is full misses the value
// and is dropped. Subscriptions end when their context is cancelled, when
// Close is called on them, or when the broadcaster is closed.
//
//	b := broadcast.NewMemoryBroadcaster[i18n.Locale](4)
//	sub := b.Subscribe(ctx)
//	defer sub.Close()
//
//	for msg := range sub.Receive(ctx) {
//		render(msg.Data)
//	}
package broadcast
