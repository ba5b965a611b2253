package engine

import (
	"github.com/lixenwraith/dragboard/event"
	"github.com/lixenwraith/dragboard/impact"
	"github.com/lixenwraith/dragboard/vmath"
)

func (e *Engine) drop(trigger DropTrigger) {
	switch s := e.State().(type) {
	case Collecting:
		// Nothing was shown yet, abandon the lift
		e.logger.Debug("lift abandoned during collection", "draggable", s.Request.DraggableID, "trigger", trigger)
		e.publish(Idle{})
	case Dragging:
		e.beginDrop(s.Drag, trigger)
	default:
		e.logger.Debug("drop ignored", "phase", s.Phase(), "trigger", trigger)
	}
}

func (e *Engine) beginDrop(drag DragState, trigger DropTrigger) {
	pending := e.pendingDrop(drag, trigger)
	if !e.publish(DropAnimating{Drag: drag, Pending: pending}) {
		return
	}
	e.logger.Debug("drop animating",
		"draggable", drag.Current.ID,
		"trigger", trigger,
		"offset_x", pending.NewHomeOffset.X,
		"offset_y", pending.NewHomeOffset.Y)

	// Already in place: complete in the same step
	if e.dropDuration <= 0 || vmath.IsEqual(drag.Current.Client.Offset, pending.NewHomeOffset) {
		e.completeDrop(pending.Result)
		return
	}

	token := e.nextToken()
	e.dropToken = token
	e.timerMu.Lock()
	e.dropTimer = e.scheduler.AfterFunc(e.dropDuration, func() {
		e.pushInternal(event.EventDropAnimationFinished, &event.DropAnimationPayload{Token: token})
	})
	e.timerMu.Unlock()
}

// pendingDrop computes where the item settles and the result it publishes
func (e *Engine) pendingDrop(drag DragState, trigger DropTrigger) PendingDrop {
	dims := drag.Dimensions
	result := DropResult{
		DraggableID: drag.Current.ID,
		Type:        drag.Current.Type,
		Source:      drag.Initial.Source,
		Reason:      trigger,
	}

	draggable, ok := dims.Draggable(drag.Current.ID)
	if !ok {
		return PendingDrop{Trigger: trigger, Impact: impact.NoImpact, Result: result}
	}

	imp := drag.Impact
	if trigger == TriggerCancel {
		imp = impact.NoImpact
	}

	var newHomeOffset vmath.Position
	if imp.Destination == nil {
		// Returning home: only undo scrolling
		if home, ok := dims.Droppable(draggable.DroppableID); ok {
			newHomeOffset = impact.ScrollDiff(drag.Initial.WindowScroll, drag.Current.WindowScroll, home)
		}
	} else {
		destination := *imp.Destination
		result.Destination = &destination
		center := impact.NewHomeClientCenter(imp, draggable, dims)
		newHomeOffset = vmath.Subtract(center, draggable.Client.WithMargin.Center)
		if d, ok := dims.Droppable(destination.DroppableID); ok {
			newHomeOffset = vmath.Add(newHomeOffset, impact.ScrollDiff(drag.Initial.WindowScroll, drag.Current.WindowScroll, d))
		}
	}

	return PendingDrop{
		Trigger:       trigger,
		NewHomeOffset: newHomeOffset,
		Impact:        imp,
		Result:        result,
	}
}

func (e *Engine) dropAnimationFinished(token uint64) {
	s, ok := e.State().(DropAnimating)
	if !ok || token == 0 || token != e.dropToken {
		e.statStale.Add(1)
		e.logger.Debug("stale drop timer", "token", token)
		return
	}
	e.dropToken = 0
	e.completeDrop(s.Pending.Result)
}

func (e *Engine) completeDrop(result DropResult) {
	e.stopDropTimer()
	if !e.publish(DropComplete{Result: result}) {
		return
	}
	if result.Reason == TriggerCancel {
		e.statCancels.Add(1)
	} else {
		e.statDrops.Add(1)
	}
	e.logger.Debug("drag ended", "draggable", result.DraggableID, "reason", result.Reason, "destination", result.Destination)

	if e.hooks.OnDragEnd != nil {
		e.hooks.OnDragEnd(result)
	}
	e.publish(Idle{})
}

func (e *Engine) stopDropTimer() {
	e.timerMu.Lock()
	defer e.timerMu.Unlock()
	if e.dropTimer != nil {
		e.dropTimer.Stop()
		e.dropTimer = nil
	}
}
