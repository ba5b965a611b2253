package board

import (
	"fmt"

	"github.com/lixenwraith/dragboard/engine"
	"github.com/lixenwraith/dragboard/geometry"
	"github.com/lixenwraith/dragboard/vmath"
)

// ItemView is an item positioned in viewport coordinates
type ItemView struct {
	ID      geometry.DraggableID
	Label   string
	Frame   geometry.Fragment
	Focused bool
}

// ListView is a list positioned in viewport coordinates
type ListView struct {
	ID        geometry.DroppableID
	Title     string
	Direction geometry.Direction
	Disabled  bool
	Frame     geometry.Fragment
	Items     []ItemView
}

// Snapshot returns the board as the renderer sees it
func (b *Board) Snapshot() []ListView {
	b.mu.RLock()
	defer b.mu.RUnlock()

	views := make([]ListView, 0, len(b.lists))
	for _, l := range b.lists {
		v := ListView{
			ID:        l.ID,
			Title:     l.Title,
			Direction: l.Direction,
			Disabled:  l.Disabled,
			Frame:     geometry.NewFragment(toClient(l.frame, b.windowScroll)),
			Items:     make([]ItemView, 0, len(l.Items)),
		}
		shift := vmath.Add(b.windowScroll, l.scroll)
		for i, it := range l.Items {
			v.Items = append(v.Items, ItemView{
				ID:      it.ID,
				Label:   it.Label,
				Frame:   geometry.NewFragment(toClient(l.itemRect(i), shift)),
				Focused: it.ID == b.focus,
			})
		}
		views = append(views, v)
	}
	return views
}

// DraggableAt returns the visible item under a viewport point
func (b *Board) DraggableAt(client vmath.Position) (geometry.DraggableID, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, l := range b.lists {
		frame := geometry.NewFragment(toClient(l.frame, b.windowScroll))
		if !frame.Contains(client) {
			continue
		}
		shift := vmath.Add(b.windowScroll, l.scroll)
		for i, it := range l.Items {
			// Half-open so a shared border belongs to the later item
			r := toClient(l.itemRect(i), shift)
			if client.X >= r.Left && client.X < r.Right && client.Y >= r.Top && client.Y < r.Bottom {
				return it.ID, true
			}
		}
	}
	return "", false
}

// Center returns an item's center in viewport coordinates
func (b *Board) Center(id geometry.DraggableID) (vmath.Position, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	l, i := b.locate(id)
	if l == nil {
		return vmath.Position{}, false
	}
	r := toClient(l.itemRect(i), vmath.Add(b.windowScroll, l.scroll))
	return geometry.NewFragment(r).Center, true
}

// Direction returns the direction of the list owning an item
func (b *Board) Direction(id geometry.DraggableID) (geometry.Direction, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if l, _ := b.locate(id); l != nil {
		return l.Direction, true
	}
	return geometry.Vertical, false
}

// Focused returns the item receiving keyboard lifts
func (b *Board) Focused() (geometry.DraggableID, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if l, _ := b.locate(b.focus); l == nil {
		return "", false
	}
	return b.focus, true
}

// Focus moves keyboard focus to an item; unknown ids are ignored
func (b *Board) Focus(id geometry.DraggableID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if l, _ := b.locate(id); l != nil {
		b.focus = id
	}
}

// MoveFocus steps focus within its list (main) or to the same slot of a neighbouring list (cross)
func (b *Board) MoveFocus(delta int, cross bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	l, i := b.locate(b.focus)
	if l == nil {
		if first, ok := b.firstItem(); ok {
			b.focus = first
		}
		return
	}
	if !cross {
		if j := i + delta; j >= 0 && j < len(l.Items) {
			b.focus = l.Items[j].ID
		}
		return
	}

	li := 0
	for k, other := range b.lists {
		if other == l {
			li = k
		}
	}
	for k := li + delta; k >= 0 && k < len(b.lists); k += delta {
		next := b.lists[k]
		if len(next.Items) == 0 {
			continue
		}
		b.focus = next.Items[min(i, len(next.Items)-1)].ID
		return
	}
}

// Apply reorders items according to a drop result
// A result without destination leaves the board unchanged
func (b *Board) Apply(result engine.DropResult) error {
	if result.Destination == nil {
		return nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	source, i := b.locate(result.DraggableID)
	if source == nil {
		return fmt.Errorf("apply drop: unknown draggable %q", result.DraggableID)
	}
	destination := b.list(result.Destination.DroppableID)
	if destination == nil {
		return fmt.Errorf("apply drop: unknown droppable %q", result.Destination.DroppableID)
	}

	item := source.Items[i]
	source.Items = append(source.Items[:i], source.Items[i+1:]...)

	index := max(0, min(result.Destination.Index, len(destination.Items)))
	destination.Items = append(destination.Items, Item{})
	copy(destination.Items[index+1:], destination.Items[index:])
	destination.Items[index] = item

	for _, l := range []*List{source, destination} {
		l.scroll = vmath.Clamp(l.scroll, vmath.Origin, l.maxScroll())
	}
	b.focus = item.ID

	b.logger.Debug("drop applied",
		"draggable", item.ID,
		"from", source.ID,
		"to", destination.ID,
		"index", index)
	return nil
}

// Items returns the item ids of a list in order
func (b *Board) Items(id geometry.DroppableID) []geometry.DraggableID {
	b.mu.RLock()
	defer b.mu.RUnlock()
	l := b.list(id)
	if l == nil {
		return nil
	}
	ids := make([]geometry.DraggableID, 0, len(l.Items))
	for _, it := range l.Items {
		ids = append(ids, it.ID)
	}
	return ids
}
