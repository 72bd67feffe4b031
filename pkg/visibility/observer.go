package visibility

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/creemers/site/pkg/broadcast"
	"github.com/creemers/site/pkg/disclosure"
	"github.com/creemers/site/pkg/logger"
)

// Marker receives "entered viewport" events. *disclosure.Controller implements it.
type Marker interface {
	MarkVisible(ctx context.Context, id disclosure.ID) error
}

// Entry is one intersection report of the host viewport.
type Entry struct {
	ID           disclosure.ID
	Intersecting bool
	Ratio        float64
}

// Observer turns intersection reports into one-shot visibility events.
//
// Producers call Notify from any goroutine. A single consumer started with
// Start forwards events to the Marker one at a time, in arrival order.
// Each watched id is reported at most once: it stops being watched as soon
// as a qualifying entry arrives. After Close returns nothing is delivered.
type Observer struct {
	marker     Marker
	threshold  float64
	bufferSize int
	strict     bool
	logger     *slog.Logger

	watching map[disclosure.ID]struct{}
	reported map[disclosure.ID]struct{}
	pending  []disclosure.ID
	wake     chan struct{}
	done     chan struct{}
	started  bool
	closed   bool
	mu       sync.Mutex

	delivered *broadcast.MemoryBroadcaster[disclosure.ID]
	wg        sync.WaitGroup
}

// New creates an observer forwarding to marker.
func New(marker Marker, opts ...Option) (*Observer, error) {
	if marker == nil {
		return nil, ErrNilMarker
	}

	o := &Observer{
		marker:     marker,
		threshold:  DefaultThreshold,
		bufferSize: 8,
		logger:     logger.Discard(),
		watching:   make(map[disclosure.ID]struct{}),
		reported:   make(map[disclosure.ID]struct{}),
		wake:       make(chan struct{}, 1),
		done:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.threshold <= 0 || o.threshold > 1 {
		return nil, ErrInvalidThreshold
	}
	o.delivered = broadcast.NewMemoryBroadcaster[disclosure.ID](o.bufferSize)

	return o, nil
}

// Observe starts watching ids. Watching an id again after it was reported
// arms a new one-shot watch.
func (o *Observer) Observe(ctx context.Context, ids ...disclosure.ID) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.closed {
		return ErrObserverClosed
	}
	for _, id := range ids {
		if id < 0 {
			if err := o.violation(ctx, "observe", id, ErrUnknownTarget); err != nil {
				return err
			}
			continue
		}
		o.watching[id] = struct{}{}
		delete(o.reported, id)
	}
	return nil
}

// Unobserve stops watching id. Unknown ids are ignored.
func (o *Observer) Unobserve(id disclosure.ID) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.watching, id)
}

// Watching returns the ids still waiting for their first qualifying entry.
func (o *Observer) Watching() []disclosure.ID {
	o.mu.Lock()
	defer o.mu.Unlock()
	return slices.Sorted(maps.Keys(o.watching))
}

// Notify accepts intersection reports from the host. Entries below the
// threshold and entries for already reported ids are ignored. Entries for
// ids that were never observed are invariant violations; in strict mode
// they reject the whole batch.
func (o *Observer) Notify(ctx context.Context, entries ...Entry) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.closed {
		return ErrObserverClosed
	}

	for _, e := range entries {
		if o.known(e.ID) {
			continue
		}
		if err := o.violation(ctx, "notify", e.ID, ErrUnknownTarget); err != nil {
			return err
		}
	}

	queued := false
	for _, e := range entries {
		if _, ok := o.watching[e.ID]; !ok {
			continue
		}
		if !e.Intersecting || e.Ratio < o.threshold {
			continue
		}

		delete(o.watching, e.ID)
		o.reported[e.ID] = struct{}{}
		o.pending = append(o.pending, e.ID)
		queued = true
	}

	if queued {
		select {
		case o.wake <- struct{}{}:
		default:
		}
	}
	return nil
}

// known reports whether id is watched or has already fired.
func (o *Observer) known(id disclosure.ID) bool {
	if _, ok := o.watching[id]; ok {
		return true
	}
	_, ok := o.reported[id]
	return ok
}

// Start launches the consumer. It stops when ctx is cancelled, which also
// tears the observer down, or when Close is called.
func (o *Observer) Start(ctx context.Context) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.closed {
		return ErrObserverClosed
	}
	if o.started {
		return ErrAlreadyStarted
	}
	o.started = true

	o.wg.Add(1)
	go o.run(ctx)
	return nil
}

// Subscribe streams every id delivered to the marker after the call.
func (o *Observer) Subscribe(ctx context.Context) broadcast.Subscriber[disclosure.ID] {
	return o.delivered.Subscribe(ctx)
}

// Close releases all watches, drops queued events and waits for an
// in-flight delivery to finish. It must not be called from the Marker.
func (o *Observer) Close() error {
	o.shutdown()
	o.wg.Wait()
	return o.delivered.Close()
}

func (o *Observer) run(ctx context.Context) {
	defer o.wg.Done()

	for {
		select {
		case <-ctx.Done():
			o.shutdown()
			return
		case <-o.done:
			return
		case <-o.wake:
		}

		for {
			id, ok := o.next()
			if !ok {
				break
			}
			o.deliver(ctx, id)
		}
	}
}

// next pops the oldest pending id. It reports false once closed, so events
// racing teardown are dropped.
func (o *Observer) next() (disclosure.ID, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.closed || len(o.pending) == 0 {
		return disclosure.None, false
	}
	id := o.pending[0]
	o.pending = o.pending[1:]
	return id, true
}

func (o *Observer) deliver(ctx context.Context, id disclosure.ID) {
	if err := o.marker.MarkVisible(ctx, id); err != nil {
		o.logger.ErrorContext(ctx, "Visibility event rejected",
			logger.Component("visibility"),
			logger.ItemID(int(id)),
			logger.Error(err),
		)
		return
	}
	o.logger.DebugContext(ctx, "Item entered viewport", logger.ItemID(int(id)))
	_ = o.delivered.Broadcast(ctx, broadcast.Message[disclosure.ID]{Data: id})
}

func (o *Observer) shutdown() {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.closed {
		return
	}
	o.closed = true
	clear(o.watching)
	o.pending = nil
	close(o.done)
}

func (o *Observer) violation(ctx context.Context, op string, id disclosure.ID, err error) error {
	o.logger.ErrorContext(ctx, "Visibility invariant violated",
		logger.Component("visibility"),
		logger.Event(op),
		logger.ItemID(int(id)),
		logger.Error(err),
	)
	if o.strict {
		return err
	}
	return nil
}
