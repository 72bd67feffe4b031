package disclosure

import (
	"maps"
	"slices"
)

// ID identifies an item by its position in the list.
type ID int

// None is the ID of "no item", used for an empty expanded or hovered slot.
const None ID = -1

// State is an immutable snapshot of the list.
type State struct {
	Expanded ID
	Hovered  ID
	// Visited holds every item that has entered the viewport, ascending.
	Visited []ID
}

// IsExpanded reports whether id is the expanded item.
func (s State) IsExpanded(id ID) bool {
	return id != None && s.Expanded == id
}

// IsHovered reports whether id is the hovered item.
func (s State) IsHovered(id ID) bool {
	return id != None && s.Hovered == id
}

// HasVisited reports whether id has entered the viewport at least once.
func (s State) HasVisited(id ID) bool {
	_, found := slices.BinarySearch(s.Visited, id)
	return found
}

func snapshot(expanded, hovered ID, visited map[ID]struct{}) State {
	return State{
		Expanded: expanded,
		Hovered:  hovered,
		Visited:  slices.Sorted(maps.Keys(visited)),
	}
}
