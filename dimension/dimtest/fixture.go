// Package dimtest builds list-of-lists geometry for tests
package dimtest

import (
	"math"

	"github.com/lixenwraith/dragboard/dimension"
	"github.com/lixenwraith/dragboard/geometry"
	"github.com/lixenwraith/dragboard/vmath"
)

// List describes a droppable laid out as equally sized items from its start edge
type List struct {
	ID        geometry.DroppableID
	Type      geometry.TypeID
	Direction geometry.Direction
	Left, Top float64
	ItemMain  float64 // item size along the main axis
	ItemCross float64 // item (and list) size along the cross axis
	MinMain   float64 // list main-axis size lower bound
	Items     []geometry.DraggableID
	Scroll    vmath.Position
	MaxScroll vmath.Position
	Disabled  bool
}

func (l List) axis() geometry.Axis {
	return geometry.AxisFor(l.Direction)
}

func (l List) itemRect(i int) geometry.Rect {
	offset := float64(i) * l.ItemMain
	if l.Direction == geometry.Horizontal {
		return geometry.Rect{
			Top:    l.Top,
			Left:   l.Left + offset,
			Right:  l.Left + offset + l.ItemMain,
			Bottom: l.Top + l.ItemCross,
		}
	}
	return geometry.Rect{
		Top:    l.Top + offset,
		Left:   l.Left,
		Right:  l.Left + l.ItemCross,
		Bottom: l.Top + offset + l.ItemMain,
	}
}

func (l List) rect() geometry.Rect {
	main := math.Max(l.MinMain, float64(len(l.Items))*l.ItemMain)
	if l.Direction == geometry.Horizontal {
		return geometry.Rect{Top: l.Top, Left: l.Left, Right: l.Left + main, Bottom: l.Top + l.ItemCross}
	}
	return geometry.Rect{Top: l.Top, Left: l.Left, Right: l.Left + l.ItemCross, Bottom: l.Top + main}
}

// Droppable measures the list itself
func (l List) Droppable(windowScroll vmath.Position) geometry.DroppableDimension {
	return geometry.NewDroppableDimension(geometry.DroppableArgs{
		ID:           l.ID,
		Type:         l.Type,
		Direction:    l.Direction,
		IsEnabled:    !l.Disabled,
		Client:       l.rect(),
		WindowScroll: windowScroll,
		Scroll:       l.Scroll,
		MaxScroll:    l.MaxScroll,
	})
}

// Draggables measures every item of the list
func (l List) Draggables(windowScroll vmath.Position) []geometry.DraggableDimension {
	out := make([]geometry.DraggableDimension, 0, len(l.Items))
	for i, id := range l.Items {
		out = append(out, geometry.NewDraggableDimension(geometry.DraggableArgs{
			ID:           id,
			DroppableID:  l.ID,
			Index:        i,
			Client:       l.itemRect(i),
			WindowScroll: windowScroll,
		}))
	}
	return out
}

// Map builds a dimension snapshot from lists at zero window scroll
func Map(lists ...List) dimension.Map {
	return MapAt(vmath.Origin, lists...)
}

// MapAt builds a dimension snapshot from lists at a window scroll
func MapAt(windowScroll vmath.Position, lists ...List) dimension.Map {
	var droppables []geometry.DroppableDimension
	var draggables []geometry.DraggableDimension
	for _, l := range lists {
		droppables = append(droppables, l.Droppable(windowScroll))
		draggables = append(draggables, l.Draggables(windowScroll)...)
	}
	return dimension.NewMap(droppables, draggables)
}

// Register publishes every list and item into a registry
func Register(r *dimension.Registry, lists ...List) {
	for _, l := range lists {
		r.RegisterDroppable(droppablePublisher{list: l})
		for i, id := range l.Items {
			r.RegisterDraggable(draggablePublisher{list: l, index: i, id: id})
		}
	}
}

type droppablePublisher struct {
	list List
}

func (p droppablePublisher) DroppableID() geometry.DroppableID { return p.list.ID }

func (p droppablePublisher) DroppableType() geometry.TypeID {
	if p.list.Type == "" {
		return geometry.DefaultType
	}
	return p.list.Type
}

func (p droppablePublisher) MeasureDroppable(windowScroll vmath.Position) geometry.DroppableDimension {
	return p.list.Droppable(windowScroll)
}

type draggablePublisher struct {
	list  List
	index int
	id    geometry.DraggableID
}

func (p draggablePublisher) DraggableID() geometry.DraggableID { return p.id }

func (p draggablePublisher) DroppableID() geometry.DroppableID { return p.list.ID }

func (p draggablePublisher) MeasureDraggable(windowScroll vmath.Position) geometry.DraggableDimension {
	return p.list.Draggables(windowScroll)[p.index]
}

// Vertical returns a vertical list with 100x20 items
func Vertical(id geometry.DroppableID, left float64, items ...geometry.DraggableID) List {
	return List{
		ID:        id,
		Direction: geometry.Vertical,
		Left:      left,
		ItemMain:  20,
		ItemCross: 100,
		MinMain:   100,
		Items:     items,
	}
}
