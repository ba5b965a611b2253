package engine

import (
	"github.com/lixenwraith/dragboard/autoscroll"
	"github.com/lixenwraith/dragboard/event"
	"github.com/lixenwraith/dragboard/geometry"
	"github.com/lixenwraith/dragboard/impact"
	"github.com/lixenwraith/dragboard/vmath"
)

func (e *Engine) lift(req event.LiftPayload) {
	defer e.liftsHandled.Add(1)
	if phase := e.State().Phase(); phase != PhaseIdle {
		e.statRejected.Add(1)
		e.logger.Debug("lift ignored", "draggable", req.DraggableID, "phase", phase)
		return
	}
	token := e.nextToken()
	if !e.publish(Collecting{Request: req, Token: token}) {
		return
	}
	e.queue.PushInternal(event.EventCollect, &event.CollectPayload{Token: token})
}

func (e *Engine) collect(token uint64) {
	pending, ok := e.State().(Collecting)
	if !ok || pending.Token != token {
		e.statStale.Add(1)
		return
	}
	req := pending.Request

	typ, ok := e.registry.TypeOf(req.DraggableID)
	if !ok {
		if home, known := e.registry.Lookup(req.DraggableID); known {
			e.logger.Warn("lift on draggable with unregistered droppable", "draggable", req.DraggableID, "droppable", home)
		} else {
			e.logger.Warn("lift on unregistered draggable", "draggable", req.DraggableID)
		}
		e.publish(Idle{})
		return
	}
	dims := e.registry.Collect(typ, e.window.Scroll)
	draggable, ok := dims.Draggable(req.DraggableID)
	if !ok || dims.IsEmpty() {
		e.logger.Warn("collection missed draggable", "draggable", req.DraggableID, "type", typ)
		e.publish(Idle{})
		return
	}

	source := impact.Location{DroppableID: draggable.DroppableID, Index: dims.IndexOf(draggable.ID)}
	windowScroll := e.window.Scroll
	client := DragLocation{
		Selection: req.Client,
		Center:    draggable.Client.WithMargin.Center,
	}
	page := DragLocation{
		Selection: vmath.Add(client.Selection, windowScroll),
		Center:    vmath.Add(client.Center, windowScroll),
	}

	drag := DragState{
		Initial: InitialDrag{
			Source:          source,
			Client:          client,
			Page:            page,
			WindowScroll:    windowScroll,
			WithinDroppable: page.Center,
		},
		Current: CurrentDrag{
			ID:              draggable.ID,
			Type:            typ,
			Client:          client,
			Page:            page,
			WindowScroll:    windowScroll,
			WithinDroppable: page.Center,
		},
		Impact:     impact.Home(draggable.ID, dims),
		Mode:       req.Mode,
		Dimensions: dims,
	}

	if !e.publish(Dragging{Drag: drag}) {
		return
	}
	e.dragStartedAt = e.clock.Now()
	e.statLifts.Add(1)
	e.trackDestination(drag.Impact)
	e.logger.Debug("drag started",
		"draggable", draggable.ID,
		"droppable", source.DroppableID,
		"index", source.Index,
		"mode", req.Mode)

	if e.hooks.OnDragStart != nil {
		e.hooks.OnDragStart(DragStart{DraggableID: draggable.ID, Type: typ, Source: source})
	}
}

// update recomputes the current drag for a selection and window scroll
// A nil forced impact is derived from the new page center
func (e *Engine) update(drag DragState, selection, windowScroll vmath.Position, shouldAnimate bool, forced *impact.Impact) DragState {
	initial := drag.Initial
	offset := vmath.Subtract(selection, initial.Client.Selection)
	client := DragLocation{
		Selection: selection,
		Center:    vmath.Add(initial.Client.Center, offset),
		Offset:    offset,
	}
	scrollDiff := vmath.Subtract(windowScroll, initial.WindowScroll)
	page := DragLocation{
		Selection: vmath.Add(client.Selection, windowScroll),
		Center:    vmath.Add(client.Center, windowScroll),
		Offset:    vmath.Add(client.Offset, scrollDiff),
	}

	var imp impact.Impact
	if forced != nil {
		imp = *forced
	} else {
		imp = impact.Get(page.Center, drag.Dimensions, drag.Current.ID, drag.Impact)
	}

	within := page.Center
	if imp.Destination != nil {
		if d, ok := drag.Dimensions.Droppable(imp.Destination.DroppableID); ok {
			within = vmath.Add(page.Center, d.Scroll.Diff())
		}
	}

	drag.Current = CurrentDrag{
		ID:              drag.Current.ID,
		Type:            drag.Current.Type,
		Client:          client,
		Page:            page,
		WindowScroll:    windowScroll,
		WithinDroppable: within,
		ShouldAnimate:   shouldAnimate,
	}
	drag.Impact = imp
	return drag
}

func (e *Engine) dragging() (DragState, bool) {
	s, ok := e.State().(Dragging)
	return s.Drag, ok
}

func (e *Engine) commit(drag DragState) {
	if e.publish(Dragging{Drag: drag}) {
		e.statMoves.Add(1)
		e.trackDestination(drag.Impact)
	}
}

func (e *Engine) move(client vmath.Position) {
	drag, ok := e.dragging()
	if !ok {
		return
	}
	e.commit(e.update(drag, client, drag.Current.WindowScroll, false, nil))
}

func (e *Engine) moveToNextIndex(isMovingForward bool) {
	drag, ok := e.dragging()
	if !ok {
		return
	}
	res, ok := impact.MoveToNextIndex(isMovingForward, drag.Current.ID, drag.Impact, drag.Dimensions)
	if !ok {
		e.logger.Debug("no next index", "draggable", drag.Current.ID, "forward", isMovingForward)
		return
	}
	e.keyboardMove(drag, res)
}

func (e *Engine) moveCrossAxis(isMovingForward bool) {
	drag, ok := e.dragging()
	if !ok {
		return
	}
	res, ok := impact.MoveCrossAxis(isMovingForward, drag.Current.Page.Center, drag.Current.ID, drag.Impact, drag.Dimensions)
	if !ok {
		e.logger.Debug("no cross axis target", "draggable", drag.Current.ID, "forward", isMovingForward)
		return
	}
	e.keyboardMove(drag, res)
}

// keyboardMove shifts the selection by the same vector the center moves
func (e *Engine) keyboardMove(drag DragState, res impact.Result) {
	diff := vmath.Subtract(res.PageCenter, drag.Current.Page.Center)
	selection := vmath.Add(drag.Current.Client.Selection, diff)
	next := e.update(drag, selection, drag.Current.WindowScroll, true, &res.Impact)
	e.commit(next)

	if next.Mode == event.AutoScrollJump {
		e.scroll.Jump(e.subject(next))
	}
}

func (e *Engine) windowScroll(scroll vmath.Position) {
	e.window.Scroll = scroll
	drag, ok := e.dragging()
	if !ok {
		return
	}
	if drag.Mode == event.AutoScrollJump {
		// Keyboard drags stay in their chosen slot: the page center holds still
		// and the item moves on screen by the opposite of the scroll
		delta := vmath.Subtract(scroll, drag.Current.WindowScroll)
		selection := vmath.Subtract(drag.Current.Client.Selection, delta)
		kept := drag.Impact
		e.commit(e.update(drag, selection, scroll, drag.Current.ShouldAnimate, &kept))
		return
	}
	e.commit(e.update(drag, drag.Current.Client.Selection, scroll, false, nil))
}

func (e *Engine) droppableScroll(id geometry.DroppableID, scroll vmath.Position) {
	drag, ok := e.dragging()
	if !ok {
		return
	}
	if _, ok := drag.Dimensions.Droppable(id); !ok {
		e.logger.Warn("scroll for unknown droppable", "droppable", id)
		return
	}
	drag.Dimensions = drag.Dimensions.WithDroppableScroll(id, scroll)
	e.commit(e.update(drag, drag.Current.Client.Selection, drag.Current.WindowScroll, false, nil))
}

func (e *Engine) frame() {
	drag, ok := e.dragging()
	if !ok || drag.Mode != event.AutoScrollFluid {
		return
	}
	e.scroll.Fluid(e.subject(drag))
}

// subject describes the dragged item for auto-scrolling
func (e *Engine) subject(drag DragState) autoscroll.Subject {
	s := autoscroll.Subject{
		Center:  drag.Current.Page.Center,
		Window:  e.window,
		Elapsed: e.clock.Now().Sub(e.dragStartedAt),
	}
	if draggable, ok := drag.Dimensions.Draggable(drag.Current.ID); ok {
		frame := draggable.Page.WithMargin
		s.Fragment = frame.Shift(vmath.Subtract(s.Center, frame.Center))
	}
	// The container actually under the center, not the sticky destination
	if d, ok := impact.DroppableAt(s.Center, drag.Dimensions); ok {
		s.Droppable = &d
	}
	return s
}

func (e *Engine) trackDestination(imp impact.Impact) {
	if imp.Destination == nil {
		e.statDestIdx.Store(-1)
		return
	}
	e.statDestIdx.Store(int64(imp.Destination.Index))
}
