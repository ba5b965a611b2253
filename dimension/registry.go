package dimension

import (
	"log/slog"
	"sync"

	"github.com/lixenwraith/dragboard/geometry"
	"github.com/lixenwraith/dragboard/vmath"
)

// DroppablePublisher measures one droppable on request
type DroppablePublisher interface {
	DroppableID() geometry.DroppableID
	DroppableType() geometry.TypeID
	MeasureDroppable(windowScroll vmath.Position) geometry.DroppableDimension
}

// DraggablePublisher measures one draggable on request
type DraggablePublisher interface {
	DraggableID() geometry.DraggableID
	DroppableID() geometry.DroppableID
	MeasureDraggable(windowScroll vmath.Position) geometry.DraggableDimension
}

// Registry holds the publishers currently mounted
// Registration is mutex guarded; Collect takes a consistent snapshot
type Registry struct {
	mu         sync.RWMutex
	droppables map[geometry.DroppableID]DroppablePublisher
	draggables map[geometry.DraggableID]DraggablePublisher
	logger     *slog.Logger
}

// NewRegistry creates an empty registry
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		droppables: make(map[geometry.DroppableID]DroppablePublisher),
		draggables: make(map[geometry.DraggableID]DraggablePublisher),
		logger:     logger,
	}
}

func (r *Registry) RegisterDroppable(p DroppablePublisher) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.droppables[p.DroppableID()] = p
}

func (r *Registry) UnregisterDroppable(id geometry.DroppableID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.droppables, id)
}

func (r *Registry) RegisterDraggable(p DraggablePublisher) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.draggables[p.DraggableID()] = p
}

func (r *Registry) UnregisterDraggable(id geometry.DraggableID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.draggables, id)
}

// Lookup returns the droppable id a registered draggable belongs to
func (r *Registry) Lookup(id geometry.DraggableID) (geometry.DroppableID, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.draggables[id]
	if !ok {
		return "", false
	}
	return p.DroppableID(), true
}

// TypeOf returns the type of the droppable owning a draggable
func (r *Registry) TypeOf(id geometry.DraggableID) (geometry.TypeID, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.draggables[id]
	if !ok {
		return "", false
	}
	home, ok := r.droppables[p.DroppableID()]
	if !ok {
		return "", false
	}
	return home.DroppableType(), true
}

// Collect measures every droppable of the requested type and the draggables they own
// Returns an empty map when nothing matches
func (r *Registry) Collect(request geometry.TypeID, windowScroll vmath.Position) Map {
	r.mu.RLock()
	defer r.mu.RUnlock()

	droppables := make([]geometry.DroppableDimension, 0, len(r.droppables))
	matched := make(map[geometry.DroppableID]struct{}, len(r.droppables))
	for id, p := range r.droppables {
		if p.DroppableType() != request {
			continue
		}
		droppables = append(droppables, p.MeasureDroppable(windowScroll))
		matched[id] = struct{}{}
	}

	draggables := make([]geometry.DraggableDimension, 0, len(r.draggables))
	for _, p := range r.draggables {
		if _, ok := matched[p.DroppableID()]; !ok {
			continue
		}
		draggables = append(draggables, p.MeasureDraggable(windowScroll))
	}

	r.logger.Debug("dimensions collected",
		"type", request,
		"droppables", len(droppables),
		"draggables", len(draggables))

	return NewMap(droppables, draggables)
}
