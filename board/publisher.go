package board

import (
	"github.com/lixenwraith/dragboard/dimension"
	"github.com/lixenwraith/dragboard/geometry"
	"github.com/lixenwraith/dragboard/vmath"
)

// Register publishes every list and item to the registry
// Publishers resolve ownership on every measurement so items stay valid after Apply
func (b *Board) Register(r *dimension.Registry) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, l := range b.lists {
		r.RegisterDroppable(listPublisher{board: b, id: l.ID})
		for _, it := range l.Items {
			r.RegisterDraggable(itemPublisher{board: b, id: it.ID})
		}
	}
}

type listPublisher struct {
	board *Board
	id    geometry.DroppableID
}

func (p listPublisher) DroppableID() geometry.DroppableID { return p.id }

func (p listPublisher) DroppableType() geometry.TypeID { return geometry.DefaultType }

func (p listPublisher) MeasureDroppable(windowScroll vmath.Position) geometry.DroppableDimension {
	b := p.board
	b.mu.RLock()
	defer b.mu.RUnlock()

	l := b.list(p.id)
	if l == nil {
		return geometry.DroppableDimension{ID: p.id, Type: geometry.DefaultType}
	}
	return geometry.NewDroppableDimension(geometry.DroppableArgs{
		ID:           l.ID,
		Direction:    l.Direction,
		IsEnabled:    !l.Disabled,
		Client:       toClient(l.frame, windowScroll),
		WindowScroll: windowScroll,
		Scroll:       l.scroll,
		MaxScroll:    l.maxScroll(),
	})
}

type itemPublisher struct {
	board *Board
	id    geometry.DraggableID
}

func (p itemPublisher) DraggableID() geometry.DraggableID { return p.id }

func (p itemPublisher) DroppableID() geometry.DroppableID {
	b := p.board
	b.mu.RLock()
	defer b.mu.RUnlock()
	if l, _ := b.locate(p.id); l != nil {
		return l.ID
	}
	return ""
}

func (p itemPublisher) MeasureDraggable(windowScroll vmath.Position) geometry.DraggableDimension {
	b := p.board
	b.mu.RLock()
	defer b.mu.RUnlock()

	l, i := b.locate(p.id)
	if l == nil {
		return geometry.DraggableDimension{ID: p.id}
	}
	return geometry.NewDraggableDimension(geometry.DraggableArgs{
		ID:           p.id,
		DroppableID:  l.ID,
		Index:        i,
		Client:       toClient(l.itemRect(i), vmath.Add(windowScroll, l.scroll)),
		WindowScroll: windowScroll,
	})
}
