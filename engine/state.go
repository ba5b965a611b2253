package engine

import (
	"github.com/lixenwraith/dragboard/dimension"
	"github.com/lixenwraith/dragboard/event"
	"github.com/lixenwraith/dragboard/geometry"
	"github.com/lixenwraith/dragboard/impact"
	"github.com/lixenwraith/dragboard/vmath"
)

// State is an immutable snapshot of the drag session
// Exactly one variant exists per Phase; a transition always publishes a new value
type State interface {
	Phase() Phase
	isState()
}

// Idle means no drag is in progress
type Idle struct{}

// Collecting holds a lift waiting for its dimension snapshot
type Collecting struct {
	Request event.LiftPayload
	Token   uint64
}

// Dragging holds the live drag
type Dragging struct {
	Drag DragState
}

// DropAnimating holds the drag while the item settles into its new home
type DropAnimating struct {
	Drag    DragState
	Pending PendingDrop
}

// DropComplete carries the published result for one step before returning to idle
type DropComplete struct {
	Result DropResult
}

func (Idle) Phase() Phase          { return PhaseIdle }
func (Collecting) Phase() Phase    { return PhaseCollecting }
func (Dragging) Phase() Phase      { return PhaseDragging }
func (DropAnimating) Phase() Phase { return PhaseDropAnimating }
func (DropComplete) Phase() Phase  { return PhaseDropComplete }

func (Idle) isState()          {}
func (Collecting) isState()    {}
func (Dragging) isState()      {}
func (DropAnimating) isState() {}
func (DropComplete) isState()  {}

// DragOf returns the drag payload of a Dragging or DropAnimating state
func DragOf(s State) (DragState, bool) {
	switch v := s.(type) {
	case Dragging:
		return v.Drag, true
	case DropAnimating:
		return v.Drag, true
	}
	return DragState{}, false
}

// DragLocation is where the drag sits in one coordinate space
type DragLocation struct {
	Selection vmath.Position // where the user grabbed
	Center    vmath.Position // center of the dragged item
	Offset    vmath.Position // how far the item moved since the lift
}

// InitialDrag is captured once when the drag enters DRAGGING
type InitialDrag struct {
	Source          impact.Location
	Client          DragLocation   // viewport
	Page            DragLocation   // viewport + window scroll
	WindowScroll    vmath.Position // window scroll at lift
	WithinDroppable vmath.Position // page center + droppable scroll change
}

// CurrentDrag is recomputed on every movement
type CurrentDrag struct {
	ID              geometry.DraggableID
	Type            geometry.TypeID
	Client          DragLocation
	Page            DragLocation
	WindowScroll    vmath.Position
	WithinDroppable vmath.Position
	ShouldAnimate   bool // keyboard moves animate, pointer moves follow directly
}

// DragState is the payload shared by DRAGGING and DROP_ANIMATING
type DragState struct {
	Initial    InitialDrag
	Current    CurrentDrag
	Impact     impact.Impact
	Mode       event.AutoScrollMode
	Dimensions dimension.Map
}

// DropTrigger tells a drop from a cancel
type DropTrigger uint8

const (
	TriggerDrop DropTrigger = iota
	TriggerCancel
)

func (t DropTrigger) String() string {
	if t == TriggerCancel {
		return "CANCEL"
	}
	return "DROP"
}

// DragStart is published when a drag enters DRAGGING
type DragStart struct {
	DraggableID geometry.DraggableID
	Type        geometry.TypeID
	Source      impact.Location
}

// DropResult is published when a drag completes
// Destination is nil when the item returns home without a target
type DropResult struct {
	DraggableID geometry.DraggableID
	Type        geometry.TypeID
	Source      impact.Location
	Destination *impact.Location
	Reason      DropTrigger
}

// PendingDrop describes the settle animation and the result it will publish
type PendingDrop struct {
	Trigger       DropTrigger
	NewHomeOffset vmath.Position // client offset the item animates to
	Impact        impact.Impact
	Result        DropResult
}

// Hooks are invoked synchronously from Pump
type Hooks struct {
	OnDragStart func(DragStart)
	OnDragEnd   func(DropResult)
}
