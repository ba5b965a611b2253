package board

import (
	"math"

	"github.com/lixenwraith/dragboard/geometry"
	"github.com/lixenwraith/dragboard/parameter"
	"github.com/lixenwraith/dragboard/vmath"
)

// Layout assigns page rectangles for a viewport of width x height cells
// Vertical lists sit side by side; horizontal lists stack below them
func (b *Board) Layout(width, height int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.viewport = vmath.Position{X: float64(width), Y: float64(height)}

	var vertical, horizontal []*List
	for _, l := range b.lists {
		if l.Direction == geometry.Horizontal {
			horizontal = append(horizontal, l)
		} else {
			vertical = append(vertical, l)
		}
	}

	const gap = parameter.ListGap
	top := float64(parameter.BoardTop)
	rowHeight := float64(parameter.ItemHeight + gap)
	listHeight := math.Max(parameter.ItemHeight, float64(height)-top-1-float64(len(horizontal))*rowHeight)

	x := float64(gap)
	if n := len(vertical); n > 0 {
		colWidth := math.Max(parameter.MinColumnWidth, math.Floor((float64(width)-gap*float64(n+1))/float64(n)))
		for _, l := range vertical {
			l.frame = geometry.Rect{Top: top, Left: x, Right: x + colWidth, Bottom: top + listHeight}
			x += colWidth + gap
		}
	}

	y := top
	if len(vertical) > 0 {
		y += listHeight + gap
	}
	for _, l := range horizontal {
		right := math.Max(float64(width)-gap, gap+parameter.ItemWidth)
		l.frame = geometry.Rect{Top: y, Left: gap, Right: right, Bottom: y + parameter.ItemHeight}
		x = math.Max(x, right+gap)
		y += rowHeight
	}

	b.extent = vmath.Position{X: x, Y: y}
	for _, l := range b.lists {
		l.scroll = vmath.Clamp(l.scroll, vmath.Origin, l.maxScroll())
	}
	b.windowScroll = vmath.Clamp(b.windowScroll, vmath.Origin, b.windowMaxScroll())
}

// itemRect is the content rectangle of the i-th item, before list scrolling
func (l *List) itemRect(i int) geometry.Rect {
	f := l.frame
	if l.Direction == geometry.Horizontal {
		left := f.Left + float64(i*parameter.ItemWidth)
		return geometry.Rect{Top: f.Top, Left: left, Right: left + parameter.ItemWidth, Bottom: f.Bottom}
	}
	top := f.Top + float64(i*parameter.ItemHeight)
	return geometry.Rect{Top: top, Left: f.Left, Right: f.Right, Bottom: top + parameter.ItemHeight}
}

// maxScroll is how far the list content overflows its frame
func (l *List) maxScroll() vmath.Position {
	n := float64(len(l.Items))
	if l.Direction == geometry.Horizontal {
		return vmath.Position{X: math.Max(0, n*parameter.ItemWidth-(l.frame.Right-l.frame.Left))}
	}
	return vmath.Position{Y: math.Max(0, n*parameter.ItemHeight-(l.frame.Bottom-l.frame.Top))}
}

func (b *Board) windowMaxScroll() vmath.Position {
	return vmath.Position{
		X: math.Max(0, b.extent.X-b.viewport.X),
		Y: math.Max(0, b.extent.Y-b.viewport.Y),
	}
}

// toClient converts a page rectangle to viewport coordinates with an extra content offset
func toClient(r geometry.Rect, shift vmath.Position) geometry.Rect {
	return geometry.Rect{
		Top:    r.Top - shift.Y,
		Left:   r.Left - shift.X,
		Right:  r.Right - shift.X,
		Bottom: r.Bottom - shift.Y,
	}
}
