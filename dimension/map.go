package dimension

import (
	"sort"

	"github.com/lixenwraith/dragboard/geometry"
	"github.com/lixenwraith/dragboard/vmath"
)

// Map is the per-drag snapshot of every measured draggable and droppable
// Read-only once collected; scroll updates produce a new Map
type Map struct {
	draggables map[geometry.DraggableID]geometry.DraggableDimension
	droppables map[geometry.DroppableID]geometry.DroppableDimension
}

// NewMap builds a snapshot from measured dimensions
func NewMap(droppables []geometry.DroppableDimension, draggables []geometry.DraggableDimension) Map {
	m := Map{
		draggables: make(map[geometry.DraggableID]geometry.DraggableDimension, len(draggables)),
		droppables: make(map[geometry.DroppableID]geometry.DroppableDimension, len(droppables)),
	}
	for _, d := range droppables {
		m.droppables[d.ID] = d
	}
	for _, d := range draggables {
		m.draggables[d.ID] = d
	}
	return m
}

// IsEmpty reports whether no droppable was measured
func (m Map) IsEmpty() bool {
	return len(m.droppables) == 0
}

func (m Map) Draggable(id geometry.DraggableID) (geometry.DraggableDimension, bool) {
	d, ok := m.draggables[id]
	return d, ok
}

func (m Map) Droppable(id geometry.DroppableID) (geometry.DroppableDimension, bool) {
	d, ok := m.droppables[id]
	return d, ok
}

// DraggableCount returns the number of measured draggables
func (m Map) DraggableCount() int {
	return len(m.draggables)
}

// Droppables returns all droppables sorted by id
func (m Map) Droppables() []geometry.DroppableDimension {
	out := make([]geometry.DroppableDimension, 0, len(m.droppables))
	for _, d := range m.droppables {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// DraggablesInside returns the draggables of a droppable ordered from the start of its axis
// Equal main-axis centers keep their original index order
func (m Map) DraggablesInside(id geometry.DroppableID) []geometry.DraggableDimension {
	droppable, ok := m.droppables[id]
	if !ok {
		return nil
	}
	line := droppable.Axis.Line

	out := make([]geometry.DraggableDimension, 0)
	for _, d := range m.draggables {
		if d.DroppableID == id {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		ci := out[i].Page.WithoutMargin.Center.Component(line)
		cj := out[j].Page.WithoutMargin.Center.Component(line)
		if ci != cj {
			return ci < cj
		}
		if out[i].Index != out[j].Index {
			return out[i].Index < out[j].Index
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// IndexOf returns the position of a draggable inside its droppable or -1
func (m Map) IndexOf(id geometry.DraggableID) int {
	d, ok := m.draggables[id]
	if !ok {
		return -1
	}
	for i, other := range m.DraggablesInside(d.DroppableID) {
		if other.ID == id {
			return i
		}
	}
	return -1
}

// WithDroppableScroll returns a copy of the map with one droppable's current scroll replaced
// Unknown ids return the map unchanged
func (m Map) WithDroppableScroll(id geometry.DroppableID, current vmath.Position) Map {
	d, ok := m.droppables[id]
	if !ok {
		return m
	}
	droppables := make(map[geometry.DroppableID]geometry.DroppableDimension, len(m.droppables))
	for k, v := range m.droppables {
		droppables[k] = v
	}
	droppables[id] = d.WithScroll(current)
	return Map{draggables: m.draggables, droppables: droppables}
}
