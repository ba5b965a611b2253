package impact

import (
	"github.com/lixenwraith/dragboard/geometry"
	"github.com/lixenwraith/dragboard/vmath"
)

// MoveToEdge returns the center source would have if its sourceEdge sat on
// destination's destinationEdge along the axis, aligned to the cross-axis start
func MoveToEdge(
	source geometry.Fragment,
	sourceEdge geometry.Edge,
	destination geometry.Fragment,
	destinationEdge geometry.Edge,
	axis geometry.Axis,
) vmath.Position {
	corner := func(f geometry.Fragment, e geometry.Edge) vmath.Position {
		return vmath.Patch(axis.Line, f.Side(axis.EdgeSide(e)), f.Side(axis.CrossAxisStart))
	}

	sourceCorner := corner(source, sourceEdge)
	destinationCorner := corner(destination, destinationEdge)

	centerDiff := vmath.Absolute(vmath.Subtract(source.Center, sourceCorner))
	sign := 1.0
	if sourceEdge == geometry.EdgeEnd {
		// Center sits before an end edge
		sign = -1
	}
	signed := vmath.Patch(axis.Line,
		sign*centerDiff.Component(axis.Line),
		centerDiff.Component(axis.CrossLine))

	return vmath.Add(destinationCorner, signed)
}
