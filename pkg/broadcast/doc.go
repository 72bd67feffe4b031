// Package broadcast provides typed in-memory fan-out of state changes.
//
// Publishers never block: each subscriber owns a small buffer and, when the
// buffer is full, the oldest pending message is discarded so the newest one
// always gets through. A slow consumer still receives the final value.
//
// Basic usage:
//
//	b := broadcast.NewMemoryBroadcaster[i18n.Language](4)
//	defer b.Close()
//
//	sub := b.Subscribe(ctx)
//	defer sub.Close()
//
//	_ = b.Broadcast(ctx, broadcast.Message[i18n.Language]{Data: i18n.English})
//
//	for msg := range sub.Receive(ctx) {
//		fmt.Println(msg.Data)
//	}
//
// Subscriptions end when the subscriber is closed, when the context passed to
// Subscribe is cancelled, or when the broadcaster is closed.
package broadcast
