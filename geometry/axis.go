package geometry

import (
	"github.com/lixenwraith/dragboard/vmath"
)

// Direction is the primary ordering direction of a droppable
type Direction uint8

const (
	Vertical Direction = iota
	Horizontal
)

func (d Direction) String() string {
	if d == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Side names one edge of a fragment
type Side uint8

const (
	SideTop Side = iota
	SideRight
	SideBottom
	SideLeft
)

// Measure names one extent of a fragment
type Measure uint8

const (
	MeasureWidth Measure = iota
	MeasureHeight
)

// Edge selects the start or end side of a fragment along an axis
type Edge uint8

const (
	EdgeStart Edge = iota
	EdgeEnd
)

// Axis maps the generic start/end/size vocabulary onto concrete sides
// Exactly two values exist: VerticalAxis and HorizontalAxis
type Axis struct {
	Direction      Direction
	Line           vmath.Line
	CrossLine      vmath.Line
	Start          Side
	End            Side
	Size           Measure
	CrossAxisStart Side
	CrossAxisEnd   Side
	CrossAxisSize  Measure
}

var VerticalAxis = Axis{
	Direction:      Vertical,
	Line:           vmath.LineY,
	CrossLine:      vmath.LineX,
	Start:          SideTop,
	End:            SideBottom,
	Size:           MeasureHeight,
	CrossAxisStart: SideLeft,
	CrossAxisEnd:   SideRight,
	CrossAxisSize:  MeasureWidth,
}

var HorizontalAxis = Axis{
	Direction:      Horizontal,
	Line:           vmath.LineX,
	CrossLine:      vmath.LineY,
	Start:          SideLeft,
	End:            SideRight,
	Size:           MeasureWidth,
	CrossAxisStart: SideTop,
	CrossAxisEnd:   SideBottom,
	CrossAxisSize:  MeasureHeight,
}

// AxisFor returns the fixed axis for a direction
func AxisFor(d Direction) Axis {
	if d == Horizontal {
		return HorizontalAxis
	}
	return VerticalAxis
}

// EdgeSide resolves a start/end edge to the axis side
func (a Axis) EdgeSide(e Edge) Side {
	if e == EdgeEnd {
		return a.End
	}
	return a.Start
}
