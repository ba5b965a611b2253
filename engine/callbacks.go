package engine

import (
	"github.com/lixenwraith/dragboard/event"
	"github.com/lixenwraith/dragboard/geometry"
	"github.com/lixenwraith/dragboard/vmath"
)

// OnLift requests a drag of id grabbed at client
func (e *Engine) OnLift(id geometry.DraggableID, client vmath.Position, mode event.AutoScrollMode) {
	e.push(event.EventLift, &event.LiftPayload{DraggableID: id, Client: client, Mode: mode})
}

// OnMove reports the pointer position in viewport coordinates
func (e *Engine) OnMove(client vmath.Position) {
	e.push(event.EventMove, &event.MovePayload{Client: client})
}

func (e *Engine) OnMoveForward()           { e.push(event.EventMoveForward, nil) }
func (e *Engine) OnMoveBackward()          { e.push(event.EventMoveBackward, nil) }
func (e *Engine) OnCrossAxisMoveForward()  { e.push(event.EventCrossAxisMoveForward, nil) }
func (e *Engine) OnCrossAxisMoveBackward() { e.push(event.EventCrossAxisMoveBackward, nil) }
func (e *Engine) OnFrame()                 { e.push(event.EventFrame, nil) }
func (e *Engine) OnDrop()                  { e.push(event.EventDrop, nil) }
func (e *Engine) OnCancel()                { e.push(event.EventCancel, nil) }

// OnWindowScroll reports the window scroll offset
func (e *Engine) OnWindowScroll(scroll vmath.Position) {
	e.push(event.EventWindowScroll, &event.WindowScrollPayload{Scroll: scroll})
}

// OnDroppableScroll reports a droppable's scroll offset
func (e *Engine) OnDroppableScroll(id geometry.DroppableID, scroll vmath.Position) {
	e.push(event.EventDroppableScroll, &event.DroppableScrollPayload{DroppableID: id, Scroll: scroll})
}

// Dispatch pushes a prebuilt event, used by scripted replays
func (e *Engine) Dispatch(t event.EventType, payload any) {
	e.push(t, payload)
}
