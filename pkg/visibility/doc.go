// Package visibility adapts viewport intersection reports into one-shot
// "item entered viewport" events for a disclosure list.
//
// The host (a browser bridge, a test, a headless renderer) feeds Entry
// values to Notify. The observer keeps a watch per id; the first entry
// reaching the threshold ends the watch and queues the id. A single
// consumer goroutine drains the queue and calls Marker.MarkVisible for each
// id, one at a time.
//
// Teardown is explicit. Close, or cancelling the context passed to Start,
// releases all watches and drops whatever is still queued. Once Close has
// returned the marker is never called again.
//
//	obs, _ := visibility.New(controller)
//	_ = obs.Observe(ctx, 0, 1, 2, 3)
//	_ = obs.Start(ctx)
//	defer obs.Close()
//	_ = obs.Notify(ctx, visibility.Entry{ID: 1, Intersecting: true, Ratio: 0.4})
package visibility
