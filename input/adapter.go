// Package input translates terminal events into drag callbacks
package input

import (
	"log/slog"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/dragboard/event"
	"github.com/lixenwraith/dragboard/geometry"
	"github.com/lixenwraith/dragboard/vmath"
)

// Callbacks receives drag intents in arrival order
type Callbacks interface {
	OnLift(id geometry.DraggableID, client vmath.Position, mode event.AutoScrollMode)
	OnMove(client vmath.Position)
	OnMoveForward()
	OnMoveBackward()
	OnCrossAxisMoveForward()
	OnCrossAxisMoveBackward()
	OnDrop()
	OnCancel()
}

// HitTester resolves viewport cells to draggables and owns keyboard focus
type HitTester interface {
	DraggableAt(client vmath.Position) (geometry.DraggableID, bool)
	Center(id geometry.DraggableID) (vmath.Position, bool)
	Direction(id geometry.DraggableID) (geometry.Direction, bool)
	Focused() (geometry.DraggableID, bool)
	Focus(id geometry.DraggableID)
	MoveFocus(delta int, cross bool)
}

// WindowScroller applies wheel scrolling
type WindowScroller interface {
	ScrollWindow(change vmath.Position)
}

type dragKind uint8

const (
	dragNone dragKind = iota
	dragPending
	dragPointer
	dragKeyboard
)

// Adapter is a per-screen drag handle: one pointer or keyboard drag at a time
// Not safe for concurrent use; feed it from the terminal event goroutine
type Adapter struct {
	callbacks Callbacks
	hits      HitTester
	scroller  WindowScroller
	threshold float64
	logger    *slog.Logger

	kind      dragKind
	pendingID geometry.DraggableID
	origin    vmath.Position
	direction geometry.Direction
}

// NewAdapter creates an adapter; scroller may be nil
func NewAdapter(callbacks Callbacks, hits HitTester, scroller WindowScroller, sloppyThreshold float64, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Adapter{
		callbacks: callbacks,
		hits:      hits,
		scroller:  scroller,
		threshold: sloppyThreshold,
		logger:    logger,
	}
}

// IsDragging reports whether the adapter has lifted an item
func (a *Adapter) IsDragging() bool {
	return a.kind == dragPointer || a.kind == dragKeyboard
}

// Reset forgets any drag in progress without emitting callbacks
// Used when the engine ends a drag the adapter did not end
func (a *Adapter) Reset() {
	a.kind = dragNone
	a.pendingID = ""
}

// HandleEvent consumes a terminal event, reporting whether it was used
func (a *Adapter) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		return a.handleMouse(ev)
	case *tcell.EventKey:
		return a.handleKey(ev)
	}
	return false
}

func (a *Adapter) handleMouse(ev *tcell.EventMouse) bool {
	x, y := ev.Position()
	point := vmath.Position{X: float64(x), Y: float64(y)}
	buttons := ev.Buttons()

	if buttons&(tcell.WheelUp|tcell.WheelDown) != 0 {
		if a.scroller == nil || a.kind == dragKeyboard {
			return false
		}
		delta := 1.0
		if buttons&tcell.WheelUp != 0 {
			delta = -1
		}
		a.scroller.ScrollWindow(vmath.Position{Y: delta})
		return true
	}

	pressed := buttons&tcell.Button1 != 0
	switch a.kind {
	case dragNone:
		if !pressed {
			return false
		}
		id, ok := a.hits.DraggableAt(point)
		if !ok {
			return false
		}
		a.kind = dragPending
		a.pendingID = id
		a.origin = point
		return true

	case dragPending:
		if !pressed {
			// A click: focus without dragging
			a.hits.Focus(a.pendingID)
			a.Reset()
			return true
		}
		if !a.exceedsThreshold(point) {
			return true
		}
		a.kind = dragPointer
		a.logger.Debug("pointer lift", "draggable", a.pendingID, "x", a.origin.X, "y", a.origin.Y)
		a.callbacks.OnLift(a.pendingID, a.origin, event.AutoScrollFluid)
		a.callbacks.OnMove(point)
		return true

	case dragPointer:
		if !pressed {
			a.Reset()
			a.callbacks.OnDrop()
			return true
		}
		a.callbacks.OnMove(point)
		return true
	}
	return false
}

// exceedsThreshold uses per-axis distance so a diagonal twitch does not lift early
func (a *Adapter) exceedsThreshold(point vmath.Position) bool {
	d := vmath.Absolute(vmath.Subtract(point, a.origin))
	return math.Max(d.X, d.Y) >= a.threshold
}

func (a *Adapter) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape {
		switch a.kind {
		case dragPending:
			a.Reset()
			return true
		case dragPointer, dragKeyboard:
			a.Reset()
			a.callbacks.OnCancel()
			return true
		}
		return false
	}

	switch a.kind {
	case dragPointer, dragPending:
		// Keys other than escape are swallowed during a pointer drag
		return true
	case dragKeyboard:
		return a.handleKeyboardDrag(ev)
	}

	switch {
	case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
		return a.keyboardLift()
	case ev.Key() == tcell.KeyUp:
		a.hits.MoveFocus(-1, false)
	case ev.Key() == tcell.KeyDown:
		a.hits.MoveFocus(1, false)
	case ev.Key() == tcell.KeyLeft:
		a.hits.MoveFocus(-1, true)
	case ev.Key() == tcell.KeyRight:
		a.hits.MoveFocus(1, true)
	default:
		return false
	}
	return true
}

func (a *Adapter) keyboardLift() bool {
	id, ok := a.hits.Focused()
	if !ok {
		return false
	}
	center, ok := a.hits.Center(id)
	if !ok {
		return false
	}
	a.direction, _ = a.hits.Direction(id)
	a.kind = dragKeyboard
	a.logger.Debug("keyboard lift", "draggable", id)
	a.callbacks.OnLift(id, center, event.AutoScrollJump)
	return true
}

func (a *Adapter) handleKeyboardDrag(ev *tcell.EventKey) bool {
	vertical := a.direction == geometry.Vertical
	switch ev.Key() {
	case tcell.KeyEnter:
		a.Reset()
		a.callbacks.OnDrop()
	case tcell.KeyRune:
		if ev.Rune() != ' ' {
			return true
		}
		a.Reset()
		a.callbacks.OnDrop()
	case tcell.KeyDown:
		if vertical {
			a.callbacks.OnMoveForward()
		} else {
			a.callbacks.OnCrossAxisMoveForward()
		}
	case tcell.KeyUp:
		if vertical {
			a.callbacks.OnMoveBackward()
		} else {
			a.callbacks.OnCrossAxisMoveBackward()
		}
	case tcell.KeyRight:
		if vertical {
			a.callbacks.OnCrossAxisMoveForward()
		} else {
			a.callbacks.OnMoveForward()
		}
	case tcell.KeyLeft:
		if vertical {
			a.callbacks.OnCrossAxisMoveBackward()
		} else {
			a.callbacks.OnMoveBackward()
		}
	}
	// Every key is consumed while a keyboard drag is active
	return true
}
