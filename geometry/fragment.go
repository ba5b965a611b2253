package geometry

import (
	"github.com/lixenwraith/dragboard/vmath"
)

// Fragment is a measured rectangle with its derived center
// Invariants: Right = Left+Width, Bottom = Top+Height, Center is the midpoint
type Fragment struct {
	Top    float64
	Left   float64
	Bottom float64
	Right  float64
	Width  float64
	Height float64
	Center vmath.Position
}

// Rect is a raw measurement before fragments are derived
type Rect struct {
	Top, Right, Bottom, Left float64
}

// Spacing is margin or padding around a rect
type Spacing struct {
	Top, Right, Bottom, Left float64
}

// NewFragment derives a fragment from a rect
func NewFragment(r Rect) Fragment {
	width := r.Right - r.Left
	height := r.Bottom - r.Top
	return Fragment{
		Top:    r.Top,
		Left:   r.Left,
		Bottom: r.Bottom,
		Right:  r.Right,
		Width:  width,
		Height: height,
		Center: vmath.Position{
			X: r.Left + width/2,
			Y: r.Top + height/2,
		},
	}
}

// FragmentAt builds a fragment from an origin and size
func FragmentAt(left, top, width, height float64) Fragment {
	return NewFragment(Rect{Top: top, Left: left, Right: left + width, Bottom: top + height})
}

// Rect returns the raw sides of the fragment
func (f Fragment) Rect() Rect {
	return Rect{Top: f.Top, Right: f.Right, Bottom: f.Bottom, Left: f.Left}
}

// Expand grows the fragment outward by spacing
func (f Fragment) Expand(s Spacing) Fragment {
	return NewFragment(Rect{
		Top:    f.Top - s.Top,
		Right:  f.Right + s.Right,
		Bottom: f.Bottom + s.Bottom,
		Left:   f.Left - s.Left,
	})
}

// Shift translates the fragment by offset
func (f Fragment) Shift(offset vmath.Position) Fragment {
	return NewFragment(Rect{
		Top:    f.Top + offset.Y,
		Right:  f.Right + offset.X,
		Bottom: f.Bottom + offset.Y,
		Left:   f.Left + offset.X,
	})
}

// Side returns the coordinate of one edge
func (f Fragment) Side(s Side) float64 {
	switch s {
	case SideTop:
		return f.Top
	case SideRight:
		return f.Right
	case SideBottom:
		return f.Bottom
	default:
		return f.Left
	}
}

// Measure returns the width or height
func (f Fragment) Measure(m Measure) float64 {
	if m == MeasureWidth {
		return f.Width
	}
	return f.Height
}

// Area returns width * height
func (f Fragment) Area() float64 {
	return f.Width * f.Height
}

// Contains reports whether point lies inside the fragment, edges inclusive
func (f Fragment) Contains(p vmath.Position) bool {
	return p.X >= f.Left && p.X <= f.Right && p.Y >= f.Top && p.Y <= f.Bottom
}

// IsWithin reports lo <= v <= hi
func IsWithin(lo, hi, v float64) bool {
	return v >= lo && v <= hi
}
