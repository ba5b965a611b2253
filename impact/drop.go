package impact

import (
	"github.com/lixenwraith/dragboard/dimension"
	"github.com/lixenwraith/dragboard/geometry"
	"github.com/lixenwraith/dragboard/vmath"
)

// NewHomeClientCenter returns the viewport center the dragged item settles on when dropped
// with the given impact, ignoring any scroll that happened during the drag
func NewHomeClientCenter(imp Impact, draggable geometry.DraggableDimension, dims dimension.Map) vmath.Position {
	homeCenter := draggable.Client.WithMargin.Center
	if imp.Destination == nil {
		return homeCenter
	}
	destination, ok := dims.Droppable(imp.Destination.DroppableID)
	if !ok {
		return homeCenter
	}

	isHome := destination.ID == draggable.DroppableID
	movedIDs := imp.Movement.Draggables
	if isHome && len(movedIDs) == 0 {
		return homeCenter
	}

	moved := make([]geometry.DraggableDimension, 0, len(movedIDs))
	for _, id := range movedIDs {
		if d, ok := dims.Draggable(id); ok {
			moved = append(moved, d)
		}
	}
	inside := dims.DraggablesInside(destination.ID)

	var target geometry.Fragment
	sourceEdge, destinationEdge := geometry.EdgeStart, geometry.EdgeStart
	switch {
	case isHome && len(moved) > 0 && imp.Movement.IsBeyondStartPosition:
		// Moved past the start: settle on the end of the furthest displaced item
		target = moved[len(moved)-1].Client.WithMargin
		sourceEdge, destinationEdge = geometry.EdgeEnd, geometry.EdgeEnd
	case isHome && len(moved) > 0:
		target = moved[0].Client.WithMargin
	case isHome:
		return homeCenter
	case len(moved) > 0:
		target = moved[0].Client.WithMargin
	case len(inside) > 0:
		// Appended after the last item
		target = inside[len(inside)-1].Client.WithMargin
		destinationEdge = geometry.EdgeEnd
	default:
		target = destination.Client.WithoutMargin
	}

	return MoveToEdge(draggable.Client.WithMargin, sourceEdge, target, destinationEdge, destination.Axis)
}

// ScrollDiff is the visual shift caused by window and droppable scrolling since the lift
func ScrollDiff(initialWindow, currentWindow vmath.Position, droppable geometry.DroppableDimension) vmath.Position {
	windowDiff := vmath.Subtract(initialWindow, currentWindow)
	droppableDiff := vmath.Subtract(droppable.Scroll.Initial, droppable.Scroll.Current)
	return vmath.Add(windowDiff, droppableDiff)
}
