package impact

import (
	"math"
	"sort"

	"github.com/lixenwraith/dragboard/dimension"
	"github.com/lixenwraith/dragboard/geometry"
	"github.com/lixenwraith/dragboard/vmath"
)

// MoveCrossAxis moves the dragged item into the adjacent droppable along the cross axis
// of the droppable it is currently over. Returns false when there is no candidate
func MoveCrossAxis(
	isMovingForward bool,
	pageCenter vmath.Position,
	draggableID geometry.DraggableID,
	previous Impact,
	dims dimension.Map,
) (Result, bool) {
	draggable, ok := dims.Draggable(draggableID)
	if !ok {
		return Result{}, false
	}
	sourceID := draggable.DroppableID
	if previous.Destination != nil {
		sourceID = previous.Destination.DroppableID
	}
	source, ok := dims.Droppable(sourceID)
	if !ok {
		return Result{}, false
	}

	destination, ok := BestCrossAxisDroppable(isMovingForward, pageCenter, source, dims)
	if !ok {
		return Result{}, false
	}

	inside := dims.DraggablesInside(destination.ID)
	within := vmath.Add(pageCenter, destination.Scroll.Diff())
	target, hasTarget := closestDraggable(within, inside)

	if destination.ID == draggable.DroppableID {
		if !hasTarget {
			return Result{}, false
		}
		return returnHome(draggable, destination, inside, target)
	}
	return enterForeign(within, draggable, destination, inside, target, hasTarget, dims)
}

// BestCrossAxisDroppable picks the closest enabled droppable strictly ahead of (or behind)
// source on its cross axis that overlaps it on the main axis
// Ties on the cross-axis edge go to the droppable with a corner closest to pageCenter, then id
func BestCrossAxisDroppable(
	isMovingForward bool,
	pageCenter vmath.Position,
	source geometry.DroppableDimension,
	dims dimension.Map,
) (geometry.DroppableDimension, bool) {
	axis := source.Axis
	sf := source.Page.WithoutMargin

	var candidates []geometry.DroppableDimension
	for _, d := range dims.Droppables() {
		if d.ID == source.ID || !d.IsEnabled {
			continue
		}
		df := d.Page.WithoutMargin

		if isMovingForward && df.Side(axis.CrossAxisStart) < sf.Side(axis.CrossAxisEnd) {
			continue
		}
		if !isMovingForward && df.Side(axis.CrossAxisEnd) > sf.Side(axis.CrossAxisStart) {
			continue
		}

		sStart, sEnd := sf.Side(axis.Start), sf.Side(axis.End)
		dStart, dEnd := df.Side(axis.Start), df.Side(axis.End)
		overlaps := geometry.IsWithin(sStart, sEnd, dStart) ||
			geometry.IsWithin(sStart, sEnd, dEnd) ||
			geometry.IsWithin(dStart, dEnd, sStart) ||
			geometry.IsWithin(dStart, dEnd, sEnd)
		if !overlaps {
			continue
		}
		candidates = append(candidates, d)
	}

	if len(candidates) == 0 {
		return geometry.DroppableDimension{}, false
	}

	crossEdge := func(d geometry.DroppableDimension) float64 {
		if isMovingForward {
			return d.Page.WithoutMargin.Side(axis.CrossAxisStart)
		}
		// Negated so that ascending order means closest first
		return -d.Page.WithoutMargin.Side(axis.CrossAxisEnd)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		ei, ej := crossEdge(candidates[i]), crossEdge(candidates[j])
		if ei != ej {
			return ei < ej
		}
		ci := vmath.Closest(pageCenter, corners(candidates[i].Page.WithoutMargin)...)
		cj := vmath.Closest(pageCenter, corners(candidates[j].Page.WithoutMargin)...)
		if ci != cj {
			return ci < cj
		}
		return candidates[i].ID < candidates[j].ID
	})
	return candidates[0], true
}

func corners(f geometry.Fragment) []vmath.Position {
	return []vmath.Position{
		{X: f.Left, Y: f.Top},
		{X: f.Right, Y: f.Top},
		{X: f.Left, Y: f.Bottom},
		{X: f.Right, Y: f.Bottom},
	}
}

// closestDraggable returns the draggable whose center is nearest to point; ties keep list order
func closestDraggable(point vmath.Position, inside []geometry.DraggableDimension) (geometry.DraggableDimension, bool) {
	var best geometry.DraggableDimension
	bestDistance := math.Inf(1)
	found := false
	for _, d := range inside {
		if dist := vmath.Distance(point, d.Page.WithoutMargin.Center); dist < bestDistance {
			best, bestDistance, found = d, dist, true
		}
	}
	return best, found
}

func returnHome(
	draggable geometry.DraggableDimension,
	home geometry.DroppableDimension,
	inside []geometry.DraggableDimension,
	target geometry.DraggableDimension,
) (Result, bool) {
	start := indexIn(inside, draggable.ID)
	targetIndex := indexIn(inside, target.ID)
	if start < 0 || targetIndex < 0 {
		return Result{}, false
	}

	center := draggable.Page.WithoutMargin.Center
	if targetIndex != start {
		edge := geometry.EdgeStart
		if targetIndex > start {
			edge = geometry.EdgeEnd
		}
		center = MoveToEdge(
			draggable.Page.WithoutMargin, edge,
			target.Page.WithoutMargin, edge,
			home.Axis)
	}

	return Result{
		PageCenter: vmath.Subtract(center, home.Scroll.Diff()),
		Impact:     homeImpactAt(draggable, home, inside, start, targetIndex),
	}, true
}

func enterForeign(
	within vmath.Position,
	draggable geometry.DraggableDimension,
	destination geometry.DroppableDimension,
	inside []geometry.DraggableDimension,
	target geometry.DraggableDimension,
	hasTarget bool,
	dims dimension.Map,
) (Result, bool) {
	axis := destination.Axis

	if !hasTarget {
		center := MoveToEdge(
			draggable.Page.WithoutMargin, geometry.EdgeStart,
			destination.Page.WithoutMargin, geometry.EdgeStart,
			axis)
		return Result{
			PageCenter: vmath.Subtract(center, destination.Scroll.Diff()),
			Impact:     foreignImpactAt(draggable, destination, inside, 0, dims),
		}, true
	}

	targetIndex := indexIn(inside, target.ID)
	isGoingBefore := within.Component(axis.Line) < target.Page.WithMargin.Center.Component(axis.Line)

	proposed := targetIndex + 1
	destinationEdge := geometry.EdgeEnd
	if isGoingBefore {
		proposed = targetIndex
		destinationEdge = geometry.EdgeStart
	}

	center := MoveToEdge(
		draggable.Page.WithoutMargin, geometry.EdgeStart,
		target.Page.WithMargin, destinationEdge,
		axis)

	return Result{
		PageCenter: vmath.Subtract(center, destination.Scroll.Diff()),
		Impact:     foreignImpactAt(draggable, destination, inside, proposed, dims),
	}, true
}
