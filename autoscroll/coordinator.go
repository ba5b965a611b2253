// Package autoscroll turns a dragged item's position into scroll requests for the host
package autoscroll

import (
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/dragboard/geometry"
	"github.com/lixenwraith/dragboard/status"
	"github.com/lixenwraith/dragboard/vmath"
)

// ScrollRequester is implemented by the host; completion is reported back as scroll events
type ScrollRequester interface {
	ScrollWindow(change vmath.Position)
	ScrollDroppable(id geometry.DroppableID, change vmath.Position)
}

// Window describes the scrollable viewport in page coordinates
type Window struct {
	Size      vmath.Position
	Scroll    vmath.Position
	MaxScroll vmath.Position
}

// Frame is the visible page region
func (w Window) Frame() geometry.Fragment {
	return geometry.FragmentAt(w.Scroll.X, w.Scroll.Y, w.Size.X, w.Size.Y)
}

// Request is one emitted scroll; an empty DroppableID targets the window
type Request struct {
	DroppableID geometry.DroppableID
	Change      vmath.Position
}

// Subject is the dragged item as seen by the coordinator
type Subject struct {
	Center    vmath.Position              // page center
	Fragment  geometry.Fragment           // page fragment at the center, used by jumps
	Droppable *geometry.DroppableDimension // droppable under the center, nil for none
	Window    Window
	Elapsed   time.Duration // since lift
}

// Coordinator emits at most one scroll request per call
// Called from the engine loop only
type Coordinator struct {
	cfg       Config
	requester ScrollRequester
	logger    *slog.Logger

	statSpeed    *status.AtomicFloat
	statPeak     *status.AtomicFloat
	statRequests *atomic.Int64
}

// NewCoordinator creates a coordinator; requester and reg may be nil
func NewCoordinator(cfg Config, requester ScrollRequester, reg *status.Registry, logger *slog.Logger) *Coordinator {
	if logger == nil {
		logger = slog.Default()
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Coordinator{
		cfg:          cfg,
		requester:    requester,
		logger:       logger,
		statSpeed:    reg.Floats.Get(status.KeyScrollSpeed),
		statPeak:     reg.Floats.Get(status.KeyScrollPeakSpeed),
		statRequests: reg.Ints.Get(status.KeyScrollRequests),
	}
}

// Fluid scrolls the droppable under the item when it has room, otherwise the window
func (c *Coordinator) Fluid(s Subject) (Request, bool) {
	if d := s.Droppable; d != nil && d.Scroll.IsScrollable() && d.Page.WithoutMargin.Contains(s.Center) {
		change := c.cfg.Change(d.Page.WithoutMargin, s.Center, s.Elapsed)
		change = clampChange(change, d.Scroll.Current, d.Scroll.Max)
		if !vmath.IsEqual(change, vmath.Origin) {
			return c.emit(Request{DroppableID: d.ID, Change: change}), true
		}
	}

	change := c.cfg.Change(s.Window.Frame(), s.Center, s.Elapsed)
	change = clampChange(change, s.Window.Scroll, s.Window.MaxScroll)
	if vmath.IsEqual(change, vmath.Origin) {
		c.statSpeed.Set(0)
		return Request{}, false
	}
	return c.emit(Request{Change: change}), true
}

// Jump scrolls just enough to bring the item's fragment into view
func (c *Coordinator) Jump(s Subject) (Request, bool) {
	if d := s.Droppable; d != nil && d.Scroll.IsScrollable() {
		change := JumpChange(s.Fragment, d.Page.WithoutMargin)
		change = clampChange(change, d.Scroll.Current, d.Scroll.Max)
		if !vmath.IsEqual(change, vmath.Origin) {
			return c.emit(Request{DroppableID: d.ID, Change: change}), true
		}
	}

	change := JumpChange(s.Fragment, s.Window.Frame())
	change = clampChange(change, s.Window.Scroll, s.Window.MaxScroll)
	if vmath.IsEqual(change, vmath.Origin) {
		return Request{}, false
	}
	return c.emit(Request{Change: change}), true
}

// Stop resets the published speed when a drag ends
func (c *Coordinator) Stop() {
	c.statSpeed.Set(0)
}

func (c *Coordinator) emit(r Request) Request {
	speed := vmath.Absolute(r.Change)
	c.statSpeed.Set(max(speed.X, speed.Y))
	c.statPeak.StoreMax(max(speed.X, speed.Y))
	c.statRequests.Add(1)
	c.logger.Debug("scroll requested", "droppable", r.DroppableID, "x", r.Change.X, "y", r.Change.Y)

	if c.requester == nil {
		return r
	}
	if r.DroppableID == "" {
		c.requester.ScrollWindow(r.Change)
	} else {
		c.requester.ScrollDroppable(r.DroppableID, r.Change)
	}
	return r
}

