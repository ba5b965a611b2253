package vmath

import (
	"math"
)

// Position is a float64 2D point or vector
// Used for both viewport (client) and page coordinates
type Position struct {
	X, Y float64
}

// Origin is the zero position
var Origin = Position{}

func Add(a, b Position) Position {
	return Position{a.X + b.X, a.Y + b.Y}
}

func Subtract(a, b Position) Position {
	return Position{a.X - b.X, a.Y - b.Y}
}

func Negate(p Position) Position {
	return Position{-p.X, -p.Y}
}

func Scale(p Position, s float64) Position {
	return Position{p.X * s, p.Y * s}
}

// Absolute returns the component-wise absolute value
func Absolute(p Position) Position {
	return Position{math.Abs(p.X), math.Abs(p.Y)}
}

func IsEqual(a, b Position) bool {
	return a.X == b.X && a.Y == b.Y
}

// Distance returns the Euclidean distance between two points
func Distance(a, b Position) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Closest returns the smallest distance from origin to any of the points
// Returns +Inf for an empty set
func Closest(origin Position, points ...Position) float64 {
	best := math.Inf(1)
	for _, p := range points {
		if d := Distance(origin, p); d < best {
			best = d
		}
	}
	return best
}

// Component returns the X or Y value for a line name ("x" or "y")
func (p Position) Component(line Line) float64 {
	if line == LineX {
		return p.X
	}
	return p.Y
}

// Line names one of the two coordinate components
type Line uint8

const (
	LineX Line = iota
	LineY
)

// Other returns the perpendicular line
func (l Line) Other() Line {
	if l == LineX {
		return LineY
	}
	return LineX
}

func (l Line) String() string {
	if l == LineX {
		return "x"
	}
	return "y"
}

// Patch builds a position with value on line and otherValue on the other line
func Patch(line Line, value, otherValue float64) Position {
	if line == LineX {
		return Position{X: value, Y: otherValue}
	}
	return Position{X: otherValue, Y: value}
}

// Clamp limits each component of p into [lo, hi]
func Clamp(p, lo, hi Position) Position {
	return Position{
		X: math.Max(lo.X, math.Min(hi.X, p.X)),
		Y: math.Max(lo.Y, math.Min(hi.Y, p.Y)),
	}
}
