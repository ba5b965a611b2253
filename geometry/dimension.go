package geometry

import (
	"github.com/lixenwraith/dragboard/vmath"
)

type (
	DraggableID = string
	DroppableID = string
	TypeID      = string
)

// DefaultType is used when a droppable does not declare a type
const DefaultType TypeID = "DEFAULT"

// Fragments holds a rectangle measured with and without its margin
type Fragments struct {
	WithMargin    Fragment
	WithoutMargin Fragment
}

// Shift translates both fragments
func (f Fragments) Shift(offset vmath.Position) Fragments {
	return Fragments{
		WithMargin:    f.WithMargin.Shift(offset),
		WithoutMargin: f.WithoutMargin.Shift(offset),
	}
}

// DraggableDimension is the frozen geometry of one draggable item
// Client is viewport relative, Page adds the window scroll at capture time
type DraggableDimension struct {
	ID          DraggableID
	DroppableID DroppableID
	Index       int
	Client      Fragments
	Page        Fragments
}

// Scroll tracks a droppable's own scroll offsets
type Scroll struct {
	Initial vmath.Position
	Current vmath.Position
	Max     vmath.Position
}

// Diff returns how far the droppable has scrolled since capture
func (s Scroll) Diff() vmath.Position {
	return vmath.Subtract(s.Current, s.Initial)
}

// IsScrollable reports whether the droppable can scroll at all
func (s Scroll) IsScrollable() bool {
	return s.Max.X > 0 || s.Max.Y > 0
}

// DroppableDimension is the geometry of one droppable container
type DroppableDimension struct {
	ID        DroppableID
	Type      TypeID
	Axis      Axis
	IsEnabled bool
	Scroll    Scroll
	Client    Fragments
	Page      Fragments
}

// WithScroll returns a copy with an updated current scroll
func (d DroppableDimension) WithScroll(current vmath.Position) DroppableDimension {
	d.Scroll.Current = vmath.Clamp(current, vmath.Origin, d.Scroll.Max)
	return d
}

// DraggableArgs describes a raw draggable measurement
type DraggableArgs struct {
	ID           DraggableID
	DroppableID  DroppableID
	Index        int
	Client       Rect
	Margin       Spacing
	WindowScroll vmath.Position
}

// NewDraggableDimension derives client and page fragments for a draggable
func NewDraggableDimension(args DraggableArgs) DraggableDimension {
	without := NewFragment(args.Client)
	client := Fragments{
		WithMargin:    without.Expand(args.Margin),
		WithoutMargin: without,
	}
	return DraggableDimension{
		ID:          args.ID,
		DroppableID: args.DroppableID,
		Index:       args.Index,
		Client:      client,
		Page:        client.Shift(args.WindowScroll),
	}
}

// DroppableArgs describes a raw droppable measurement
type DroppableArgs struct {
	ID           DroppableID
	Type         TypeID
	Direction    Direction
	IsEnabled    bool
	Client       Rect
	Margin       Spacing
	WindowScroll vmath.Position
	Scroll       vmath.Position
	MaxScroll    vmath.Position
}

// NewDroppableDimension derives client and page fragments for a droppable
func NewDroppableDimension(args DroppableArgs) DroppableDimension {
	without := NewFragment(args.Client)
	client := Fragments{
		WithMargin:    without.Expand(args.Margin),
		WithoutMargin: without,
	}
	typ := args.Type
	if typ == "" {
		typ = DefaultType
	}
	return DroppableDimension{
		ID:        args.ID,
		Type:      typ,
		Axis:      AxisFor(args.Direction),
		IsEnabled: args.IsEnabled,
		Scroll: Scroll{
			Initial: args.Scroll,
			Current: args.Scroll,
			Max:     args.MaxScroll,
		},
		Client: client,
		Page:   client.Shift(args.WindowScroll),
	}
}
