package disclosure

import (
	"context"
)

// ItemState is the expansion state of one item.
type ItemState string

const (
	Collapsed ItemState = "collapsed"
	Expanded  ItemState = "expanded"
)

// Event triggers an item transition.
type Event string

const (
	// EventToggle is a user toggle of the item.
	EventToggle Event = "toggle"
	// EventCollapse closes the item because another one is expanding.
	EventCollapse Event = "collapse"
)

// guard decides whether a transition of id may proceed.
type guard func(ctx context.Context, id ID) bool

// action runs as part of a transition of id, before the state changes.
type action func(ctx context.Context, id ID)

type transition struct {
	from    ItemState
	to      ItemState
	event   Event
	guards  []guard
	actions []action
}

// machine is the transition table shared by all items of a list. The item
// states themselves live in the controller; machine never locks.
type machine struct {
	transitions map[ItemState]map[Event][]transition
}

func newMachine() *machine {
	return &machine{transitions: make(map[ItemState]map[Event][]transition)}
}

func (m *machine) add(from, to ItemState, event Event, guards []guard, actions []action) {
	if _, ok := m.transitions[from]; !ok {
		m.transitions[from] = make(map[Event][]transition)
	}
	m.transitions[from][event] = append(m.transitions[from][event], transition{
		from:    from,
		to:      to,
		event:   event,
		guards:  guards,
		actions: actions,
	})
}

// fire applies event to item id whose current state is *current.
// The first transition whose guards all pass wins.
func (m *machine) fire(ctx context.Context, current *ItemState, id ID, event Event) error {
	candidates := m.transitions[*current][event]
	if len(candidates) == 0 {
		return &TransitionError{ID: id, State: *current, Event: event, err: ErrNoTransition}
	}

	for _, t := range candidates {
		if !passes(ctx, t.guards, id) {
			continue
		}
		for _, act := range t.actions {
			act(ctx, id)
		}
		*current = t.to
		return nil
	}

	return &TransitionError{ID: id, State: *current, Event: event, err: ErrTransitionRejected}
}

func passes(ctx context.Context, guards []guard, id ID) bool {
	for _, g := range guards {
		if g != nil && !g(ctx, id) {
			return false
		}
	}
	return true
}
