// Package board is a flat list-of-lists model laid out on a terminal grid
// It publishes its geometry to the dimension registry and applies drop results
package board

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/lixenwraith/dragboard/config"
	"github.com/lixenwraith/dragboard/geometry"
	"github.com/lixenwraith/dragboard/vmath"
)

// Item is one draggable entry
type Item struct {
	ID    geometry.DraggableID
	Label string
}

// List is one droppable column or row
type List struct {
	ID        geometry.DroppableID
	Title     string
	Direction geometry.Direction
	Items     []Item
	Disabled  bool

	frame  geometry.Rect // page coordinates, set by Layout
	scroll vmath.Position
}

// Board owns the lists, their layout and scroll offsets
// Safe for concurrent use; measurement runs on the engine goroutine while rendering reads snapshots
type Board struct {
	mu           sync.RWMutex
	lists        []*List
	viewport     vmath.Position
	extent       vmath.Position
	windowScroll vmath.Position
	focus        geometry.DraggableID

	onWindowScroll func(vmath.Position)
	onListScroll   func(geometry.DroppableID, vmath.Position)

	logger *slog.Logger
}

// New creates a board; lists are copied
func New(lists []List, logger *slog.Logger) *Board {
	if logger == nil {
		logger = slog.Default()
	}
	b := &Board{logger: logger}
	for i := range lists {
		l := lists[i]
		l.Items = append([]Item(nil), l.Items...)
		b.lists = append(b.lists, &l)
	}
	if first, ok := b.firstItem(); ok {
		b.focus = first
	}
	return b
}

// ListsFromConfig converts configured lists, deriving item ids from the list id
func ListsFromConfig(cfgs []config.ListConfig) []List {
	lists := make([]List, 0, len(cfgs))
	for _, c := range cfgs {
		l := List{
			ID:        geometry.DroppableID(c.ID),
			Title:     c.Title,
			Direction: geometry.Vertical,
		}
		if strings.EqualFold(c.Direction, "horizontal") {
			l.Direction = geometry.Horizontal
		}
		if l.Title == "" {
			l.Title = c.ID
		}
		for i, label := range c.Items {
			l.Items = append(l.Items, Item{
				ID:    geometry.DraggableID(fmt.Sprintf("%s-%d", c.ID, i+1)),
				Label: label,
			})
		}
		lists = append(lists, l)
	}
	return lists
}

// OnScroll sets the callbacks reporting applied scroll offsets
func (b *Board) OnScroll(window func(vmath.Position), list func(geometry.DroppableID, vmath.Position)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.onWindowScroll = window
	b.onListScroll = list
}

func (b *Board) list(id geometry.DroppableID) *List {
	for _, l := range b.lists {
		if l.ID == id {
			return l
		}
	}
	return nil
}

// locate finds the list and index of an item
func (b *Board) locate(id geometry.DraggableID) (*List, int) {
	for _, l := range b.lists {
		for i, it := range l.Items {
			if it.ID == id {
				return l, i
			}
		}
	}
	return nil, -1
}

func (b *Board) firstItem() (geometry.DraggableID, bool) {
	for _, l := range b.lists {
		if len(l.Items) > 0 {
			return l.Items[0].ID, true
		}
	}
	return "", false
}
