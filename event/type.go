package event

import (
	"time"
)

// EventType represents the type of drag event
type EventType uint8

const (
	EventNone EventType = iota

	// EventLift begins a drag on a draggable
	// Trigger: input adapter (pointer past sloppy threshold, Space on focused item)
	// Consumer: Engine (IDLE only) | Payload: *LiftPayload
	EventLift

	// EventCollect performs dimension collection for a pending lift
	// Trigger: Engine on entering COLLECTING_DIMENSIONS | Payload: *CollectPayload
	EventCollect

	// EventMove updates the pointer position
	// Trigger: input adapter on pointer motion | Payload: *MovePayload
	EventMove

	// EventMoveForward steps one slot along the main axis
	// Trigger: input adapter (Down/Right arrow) | Payload: nil
	EventMoveForward

	// EventMoveBackward steps one slot back along the main axis
	// Trigger: input adapter (Up/Left arrow) | Payload: nil
	EventMoveBackward

	// EventCrossAxisMoveForward moves to the next droppable on the cross axis
	// Payload: nil
	EventCrossAxisMoveForward

	// EventCrossAxisMoveBackward moves to the previous droppable on the cross axis
	// Payload: nil
	EventCrossAxisMoveBackward

	// EventWindowScroll reports a changed window scroll offset
	// Trigger: host after ambient or requested scrolling | Payload: *WindowScrollPayload
	EventWindowScroll

	// EventDroppableScroll reports a changed droppable scroll offset
	// Trigger: host after a requested droppable scroll | Payload: *DroppableScrollPayload
	EventDroppableScroll

	// EventFrame is an animation frame tick
	// Trigger: host frame ticker | Consumer: auto-scroll | Payload: nil
	EventFrame

	// EventDrop finalizes the drag at the current destination
	// Payload: nil
	EventDrop

	// EventCancel aborts the drag and returns the item home
	// Payload: nil
	EventCancel

	// EventDropAnimationFinished signals the drop animation timer elapsed
	// Trigger: Engine scheduler | Payload: *DropAnimationPayload
	EventDropAnimationFinished
)

// DragEvent represents a single drag event with metadata
type DragEvent struct {
	Type      EventType
	Payload   any
	Seq       uint64 // Queue arrival order across both lanes
	Timestamp time.Time
	Internal  bool // scheduled by the engine itself
}
