package board

import (
	"github.com/lixenwraith/dragboard/geometry"
	"github.com/lixenwraith/dragboard/vmath"
)

// WindowScroll returns the current window scroll offset
func (b *Board) WindowScroll() vmath.Position {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.windowScroll
}

// WindowMaxScroll returns how far the window can scroll
func (b *Board) WindowMaxScroll() vmath.Position {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.windowMaxScroll()
}

// ListScroll returns a list's scroll offset
func (b *Board) ListScroll(id geometry.DroppableID) vmath.Position {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if l := b.list(id); l != nil {
		return l.scroll
	}
	return vmath.Origin
}

// ScrollWindow applies a clamped window scroll and reports the new offset
func (b *Board) ScrollWindow(change vmath.Position) {
	b.mu.Lock()
	next := vmath.Clamp(vmath.Add(b.windowScroll, change), vmath.Origin, b.windowMaxScroll())
	changed := !vmath.IsEqual(next, b.windowScroll)
	b.windowScroll = next
	notify := b.onWindowScroll
	b.mu.Unlock()

	if changed && notify != nil {
		notify(next)
	}
}

// ScrollDroppable applies a clamped list scroll and reports the new offset
func (b *Board) ScrollDroppable(id geometry.DroppableID, change vmath.Position) {
	b.mu.Lock()
	l := b.list(id)
	if l == nil {
		b.mu.Unlock()
		b.logger.Warn("scroll for unknown list", "list", id)
		return
	}
	next := vmath.Clamp(vmath.Add(l.scroll, change), vmath.Origin, l.maxScroll())
	changed := !vmath.IsEqual(next, l.scroll)
	l.scroll = next
	notify := b.onListScroll
	b.mu.Unlock()

	if changed && notify != nil {
		notify(id, next)
	}
}

// ViewportSize returns the size passed to the last Layout
func (b *Board) ViewportSize() vmath.Position {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.viewport
}
