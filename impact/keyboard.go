package impact

import (
	"github.com/lixenwraith/dragboard/dimension"
	"github.com/lixenwraith/dragboard/geometry"
	"github.com/lixenwraith/dragboard/vmath"
)

// Result is the outcome of a keyboard move: where the center goes and the new impact
type Result struct {
	PageCenter vmath.Position
	Impact     Impact
}

// MoveToNextIndex moves the dragged item one slot along the main axis of its current droppable
// Returns false when the move is not possible (list end, no destination, unknown ids)
func MoveToNextIndex(
	isMovingForward bool,
	draggableID geometry.DraggableID,
	previous Impact,
	dims dimension.Map,
) (Result, bool) {
	if previous.Destination == nil {
		return Result{}, false
	}
	draggable, ok := dims.Draggable(draggableID)
	if !ok {
		return Result{}, false
	}
	droppable, ok := dims.Droppable(previous.Destination.DroppableID)
	if !ok {
		return Result{}, false
	}

	proposed := previous.Destination.Index - 1
	if isMovingForward {
		proposed = previous.Destination.Index + 1
	}

	inside := dims.DraggablesInside(droppable.ID)
	if droppable.ID == draggable.DroppableID {
		return nextIndexInHome(isMovingForward, proposed, draggable, droppable, inside)
	}
	return nextIndexInForeign(proposed, draggable, droppable, inside, dims)
}

func nextIndexInHome(
	isMovingForward bool,
	proposed int,
	draggable geometry.DraggableDimension,
	home geometry.DroppableDimension,
	inside []geometry.DraggableDimension,
) (Result, bool) {
	start := indexIn(inside, draggable.ID)
	if start < 0 || proposed < 0 || proposed > len(inside)-1 {
		return Result{}, false
	}

	target := inside[proposed]
	isMovingTowardStart := (isMovingForward && proposed <= start) ||
		(!isMovingForward && proposed >= start)

	var edge geometry.Edge
	switch {
	case !isMovingTowardStart && isMovingForward:
		edge = geometry.EdgeEnd
	case !isMovingTowardStart:
		edge = geometry.EdgeStart
	case isMovingForward:
		edge = geometry.EdgeStart
	default:
		edge = geometry.EdgeEnd
	}

	center := MoveToEdge(
		draggable.Page.WithoutMargin, edge,
		target.Page.WithoutMargin, edge,
		home.Axis)

	return Result{
		PageCenter: vmath.Subtract(center, home.Scroll.Diff()),
		Impact:     homeImpactAt(draggable, home, inside, start, proposed),
	}, true
}

func nextIndexInForeign(
	proposed int,
	draggable geometry.DraggableDimension,
	target geometry.DroppableDimension,
	inside []geometry.DraggableDimension,
	dims dimension.Map,
) (Result, bool) {
	// Appending after the last item is a valid slot
	if len(inside) == 0 || proposed < 0 || proposed > len(inside) {
		return Result{}, false
	}

	lastIndex := len(inside) - 1
	relativeTo := inside[min(proposed, lastIndex)]
	destinationEdge := geometry.EdgeStart
	if proposed > lastIndex {
		destinationEdge = geometry.EdgeEnd
	}

	center := MoveToEdge(
		draggable.Page.WithoutMargin, geometry.EdgeStart,
		relativeTo.Page.WithMargin, destinationEdge,
		target.Axis)

	return Result{
		PageCenter: vmath.Subtract(center, target.Scroll.Diff()),
		Impact:     foreignImpactAt(draggable, target, inside, proposed, dims),
	}, true
}
