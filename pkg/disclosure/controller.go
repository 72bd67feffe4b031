package disclosure

import (
	"context"
	"log/slog"
	"sync"

	"github.com/creemers/site/pkg/broadcast"
	"github.com/creemers/site/pkg/logger"
)

// Controller owns the disclosure state of a list of size items. All
// mutation goes through Toggle, Hover and MarkVisible; each runs to
// completion under one lock, so State never shows two expanded items.
type Controller struct {
	size    int
	items   []ItemState
	machine *machine

	expanded ID
	hovered  ID
	visited  map[ID]struct{}

	strict     bool
	bufferSize int
	logger     *slog.Logger
	changes    *broadcast.MemoryBroadcaster[State]
	mu         sync.Mutex
}

// NewController creates a controller for size items, all collapsed.
func NewController(size int, opts ...Option) (*Controller, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	c := &Controller{
		size:       size,
		items:      make([]ItemState, size),
		expanded:   None,
		hovered:    None,
		visited:    make(map[ID]struct{}, size),
		bufferSize: 8,
		logger:     logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	for i := range c.items {
		c.items[i] = Collapsed
	}
	c.machine = c.buildMachine()
	c.changes = broadcast.NewMemoryBroadcaster[State](c.bufferSize)

	return c, nil
}

func (c *Controller) buildMachine() *machine {
	m := newMachine()
	m.add(Collapsed, Expanded, EventToggle,
		[]guard{c.noOtherExpanded},
		[]action{func(_ context.Context, id ID) { c.expanded = id }},
	)
	m.add(Expanded, Collapsed, EventToggle, nil,
		[]action{c.clearExpanded},
	)
	m.add(Expanded, Collapsed, EventCollapse, nil,
		[]action{c.clearExpanded},
	)
	return m
}

func (c *Controller) noOtherExpanded(_ context.Context, id ID) bool {
	return c.expanded == None || c.expanded == id
}

func (c *Controller) clearExpanded(_ context.Context, _ ID) {
	c.expanded = None
}

// Size returns the number of items.
func (c *Controller) Size() int {
	return c.size
}

// Toggle collapses id if it is expanded and expands it otherwise,
// collapsing the previously expanded item in the same step.
func (c *Controller) Toggle(ctx context.Context, id ID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.check(id); err != nil {
		return c.violation(ctx, "toggle", err)
	}

	prev, prevState := c.expanded, ItemState("")
	if prev != None && prev != id {
		prevState = c.items[prev]
		if err := c.machine.fire(ctx, &c.items[prev], prev, EventCollapse); err != nil {
			return c.violation(ctx, "toggle", err)
		}
	}
	if err := c.machine.fire(ctx, &c.items[id], id, EventToggle); err != nil {
		// Undo the implicit collapse so a rejected toggle changes nothing.
		if prevState != "" {
			c.items[prev] = prevState
		}
		c.expanded = prev
		return c.violation(ctx, "toggle", err)
	}

	c.logger.DebugContext(ctx, "Item toggled",
		logger.ItemID(int(id)),
		slog.String("state", string(c.items[id])),
	)
	return c.publish(ctx)
}

// Hover sets the hovered item. None clears it.
func (c *Controller) Hover(ctx context.Context, id ID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if id != None {
		if err := c.check(id); err != nil {
			return c.violation(ctx, "hover", err)
		}
	}
	if c.hovered == id {
		return nil
	}
	c.hovered = id
	return c.publish(ctx)
}

// MarkVisible records that id entered the viewport. Repeated calls for the
// same id do nothing.
func (c *Controller) MarkVisible(ctx context.Context, id ID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.check(id); err != nil {
		return c.violation(ctx, "mark_visible", err)
	}
	if _, ok := c.visited[id]; ok {
		return nil
	}
	c.visited[id] = struct{}{}

	c.logger.DebugContext(ctx, "Item visible", logger.ItemID(int(id)))
	return c.publish(ctx)
}

// State returns a snapshot of the list.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return snapshot(c.expanded, c.hovered, c.visited)
}

// ItemState returns the expansion state of id.
func (c *Controller) ItemState(id ID) (ItemState, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.check(id); err != nil {
		return "", err
	}
	return c.items[id], nil
}

// Subscribe streams a snapshot after every change applied after the call.
// Calls that leave the state unchanged publish nothing.
func (c *Controller) Subscribe(ctx context.Context) broadcast.Subscriber[State] {
	return c.changes.Subscribe(ctx)
}

// Close ends all subscriptions. The state stays readable and writable.
func (c *Controller) Close() error {
	return c.changes.Close()
}

func (c *Controller) check(id ID) error {
	if id < 0 || int(id) >= c.size {
		return &TransitionError{ID: id, err: ErrUnknownItem}
	}
	return nil
}

// violation reports err and decides whether the caller sees it.
func (c *Controller) violation(ctx context.Context, op string, err error) error {
	c.logger.ErrorContext(ctx, "Disclosure invariant violated",
		logger.Component("disclosure"),
		logger.Event(op),
		logger.Error(err),
	)
	if c.strict {
		return err
	}
	return nil
}

// publish is called with c.mu held so subscribers see changes in order.
func (c *Controller) publish(ctx context.Context) error {
	return c.changes.Broadcast(ctx, broadcast.Message[State]{Data: snapshot(c.expanded, c.hovered, c.visited)})
}
