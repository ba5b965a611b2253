// Package impact computes which draggables displace and where a dragged item would land
// All functions are pure; inputs are never modified
package impact

import (
	"github.com/lixenwraith/dragboard/dimension"
	"github.com/lixenwraith/dragboard/geometry"
	"github.com/lixenwraith/dragboard/vmath"
)

// Location is a slot inside a droppable
type Location struct {
	DroppableID geometry.DroppableID
	Index       int
}

// Movement lists the draggables displaced by a drag
// Draggables are ordered from the start of the droppable outward
type Movement struct {
	Draggables            []geometry.DraggableID
	Amount                vmath.Position
	IsBeyondStartPosition bool
}

// Displacement is the signed shift each displaced draggable applies
// Items shift backward when the dragged item moved past its start position
func (m Movement) Displacement() vmath.Position {
	if m.IsBeyondStartPosition {
		return vmath.Negate(m.Amount)
	}
	return m.Amount
}

// Contains reports whether a draggable is displaced
func (m Movement) Contains(id geometry.DraggableID) bool {
	for _, d := range m.Draggables {
		if d == id {
			return true
		}
	}
	return false
}

// Impact is the effect of the current drag position
// Destination nil means there is no valid drop target and Direction is meaningless
// Departure is only populated while over a foreign droppable and describes the
// home droppable's items closing the gap left by the dragged item
type Impact struct {
	Movement    Movement
	Departure   Movement
	Direction   geometry.Direction
	Destination *Location
}

// NoImpact is the impact of a drag with no target
var NoImpact = Impact{}

// Home returns the impact of a drag sitting in its original slot
func Home(draggableID geometry.DraggableID, dims dimension.Map) Impact {
	draggable, ok := dims.Draggable(draggableID)
	if !ok {
		return NoImpact
	}
	home, ok := dims.Droppable(draggable.DroppableID)
	if !ok {
		return NoImpact
	}
	start := dims.IndexOf(draggableID)
	if start < 0 {
		return NoImpact
	}
	return homeImpactAt(draggable, home, dims.DraggablesInside(home.ID), start, start)
}

// Get computes the impact of the dragged item's page center
// The droppable under the point wins; overlapping droppables resolve to the smallest
// area, then the smallest id. With nothing under the point the previous target is kept
func Get(pageCenter vmath.Position, dims dimension.Map, draggableID geometry.DraggableID, previous Impact) Impact {
	draggable, ok := dims.Draggable(draggableID)
	if !ok {
		return NoImpact
	}

	target, ok := DroppableAt(pageCenter, dims)
	if !ok {
		if previous.Destination == nil {
			return NoImpact
		}
		target, ok = dims.Droppable(previous.Destination.DroppableID)
		if !ok || !target.IsEnabled {
			return NoImpact
		}
	}

	within := vmath.Add(pageCenter, target.Scroll.Diff())
	if target.ID == draggable.DroppableID {
		return inHomeList(within, draggable, target, dims)
	}
	return inForeignList(within, draggable, target, dims)
}

// DroppableAt returns the enabled droppable whose page fragment (with margin) holds the point
func DroppableAt(point vmath.Position, dims dimension.Map) (geometry.DroppableDimension, bool) {
	var best geometry.DroppableDimension
	found := false
	for _, d := range dims.Droppables() {
		if !d.IsEnabled || !d.Page.WithMargin.Contains(point) {
			continue
		}
		// Droppables() is id sorted, strict comparison keeps the smallest id on equal areas
		if !found || d.Page.WithMargin.Area() < best.Page.WithMargin.Area() {
			best = d
			found = true
		}
	}
	return best, found
}

func inHomeList(
	within vmath.Position,
	draggable geometry.DraggableDimension,
	home geometry.DroppableDimension,
	dims dimension.Map,
) Impact {
	inside := dims.DraggablesInside(home.ID)
	start := indexIn(inside, draggable.ID)
	if start < 0 {
		return NoImpact
	}

	line := home.Axis.Line
	original := draggable.Page.WithoutMargin.Center.Component(line)
	current := within.Component(line)
	isBeyondStart := current > original

	proposed := start
	for i, child := range inside {
		center := child.Page.WithoutMargin.Center.Component(line)
		if isBeyondStart && i > start && current > center {
			proposed++
		}
		if !isBeyondStart && i < start && current < center {
			proposed--
		}
	}
	return homeImpactAt(draggable, home, inside, start, proposed)
}

func inForeignList(
	within vmath.Position,
	draggable geometry.DraggableDimension,
	target geometry.DroppableDimension,
	dims dimension.Map,
) Impact {
	inside := dims.DraggablesInside(target.ID)
	line := target.Axis.Line
	current := within.Component(line)

	index := len(inside)
	for i, child := range inside {
		if child.Page.WithoutMargin.Center.Component(line) > current {
			index = i
			break
		}
	}
	return foreignImpactAt(draggable, target, inside, index, dims)
}

// homeImpactAt builds the impact of the dragged item occupying proposed in its home list
func homeImpactAt(
	draggable geometry.DraggableDimension,
	home geometry.DroppableDimension,
	inside []geometry.DraggableDimension,
	start, proposed int,
) Impact {
	var moved []geometry.DraggableID
	switch {
	case proposed > start:
		for _, d := range inside[start+1 : proposed+1] {
			moved = append(moved, d.ID)
		}
	case proposed < start:
		for _, d := range inside[proposed:start] {
			moved = append(moved, d.ID)
		}
	}
	return Impact{
		Movement: Movement{
			Draggables:            moved,
			Amount:                amountFor(draggable, home.Axis),
			IsBeyondStartPosition: proposed > start,
		},
		Direction:   home.Axis.Direction,
		Destination: &Location{DroppableID: home.ID, Index: proposed},
	}
}

// foreignImpactAt builds the impact of the dragged item inserted at index of a foreign list
func foreignImpactAt(
	draggable geometry.DraggableDimension,
	target geometry.DroppableDimension,
	inside []geometry.DraggableDimension,
	index int,
	dims dimension.Map,
) Impact {
	var moved []geometry.DraggableID
	for _, d := range inside[index:] {
		moved = append(moved, d.ID)
	}
	return Impact{
		Movement: Movement{
			Draggables: moved,
			Amount:     amountFor(draggable, target.Axis),
		},
		Departure:   departure(draggable, dims),
		Direction:   target.Axis.Direction,
		Destination: &Location{DroppableID: target.ID, Index: index},
	}
}

// departure describes the home list closing up behind the dragged item
// Skipped when the home droppable was not measured
func departure(draggable geometry.DraggableDimension, dims dimension.Map) Movement {
	home, ok := dims.Droppable(draggable.DroppableID)
	if !ok {
		return Movement{}
	}
	inside := dims.DraggablesInside(home.ID)
	start := indexIn(inside, draggable.ID)
	if start < 0 {
		return Movement{}
	}
	var moved []geometry.DraggableID
	for _, d := range inside[start+1:] {
		moved = append(moved, d.ID)
	}
	return Movement{
		Draggables:            moved,
		Amount:                amountFor(draggable, home.Axis),
		IsBeyondStartPosition: true,
	}
}

func amountFor(draggable geometry.DraggableDimension, axis geometry.Axis) vmath.Position {
	return vmath.Patch(axis.Line, draggable.Page.WithMargin.Measure(axis.Size), 0)
}

func indexIn(inside []geometry.DraggableDimension, id geometry.DraggableID) int {
	for i, d := range inside {
		if d.ID == id {
			return i
		}
	}
	return -1
}
