package engine

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/dragboard/autoscroll"
	"github.com/lixenwraith/dragboard/dimension"
	"github.com/lixenwraith/dragboard/dimension/dimtest"
	"github.com/lixenwraith/dragboard/event"
	"github.com/lixenwraith/dragboard/geometry"
	"github.com/lixenwraith/dragboard/impact"
	"github.com/lixenwraith/dragboard/status"
	"github.com/lixenwraith/dragboard/vmath"
)

type scrollRecorder struct {
	mu       sync.Mutex
	requests []autoscroll.Request
}

func (r *scrollRecorder) ScrollWindow(change vmath.Position) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, autoscroll.Request{Change: change})
}

func (r *scrollRecorder) ScrollDroppable(id geometry.DroppableID, change vmath.Position) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, autoscroll.Request{DroppableID: id, Change: change})
}

type harness struct {
	engine   *Engine
	sched    *ManualScheduler
	clock    *MockTimeProvider
	stats    *status.Registry
	scroller *scrollRecorder

	starts []DragStart
	ends   []DropResult
	phases []Phase
}

// newHarness builds list A = [1, 2, 3] at x 0 and empty list B at x 200
func newHarness(t *testing.T, window autoscroll.Window) *harness {
	t.Helper()
	return newHarnessWith(t, window,
		dimtest.Vertical("A", 0, "1", "2", "3"),
		dimtest.Vertical("B", 200),
	)
}

func newHarnessWith(t *testing.T, window autoscroll.Window, lists ...dimtest.List) *harness {
	t.Helper()
	h := &harness{
		sched:    &ManualScheduler{},
		clock:    NewMockTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
		stats:    status.NewRegistry(),
		scroller: &scrollRecorder{},
	}

	registry := dimension.NewRegistry(nil)
	dimtest.Register(registry, lists...)

	opts := DefaultOptions(registry)
	opts.Window = window
	opts.Clock = h.clock
	opts.Scheduler = h.sched
	opts.Status = h.stats
	opts.Scroller = h.scroller
	opts.Hooks = Hooks{
		OnDragStart: func(s DragStart) { h.starts = append(h.starts, s) },
		OnDragEnd:   func(r DropResult) { h.ends = append(h.ends, r) },
	}
	h.engine = New(opts)
	h.engine.Subscribe(func(s State) { h.phases = append(h.phases, s.Phase()) })
	return h
}

func defaultWindow() autoscroll.Window {
	return autoscroll.Window{Size: vmath.Position{X: 400, Y: 400}}
}

func (h *harness) drag(t *testing.T) DragState {
	t.Helper()
	s, ok := h.engine.State().(Dragging)
	require.True(t, ok, "expected DRAGGING, got %s", h.engine.State().Phase())
	return s.Drag
}

func (h *harness) lift(t *testing.T, id geometry.DraggableID, client vmath.Position, mode event.AutoScrollMode) {
	t.Helper()
	h.engine.OnLift(id, client, mode)
	h.engine.Pump()
	h.drag(t)
}

func TestLiftEntersDragging(t *testing.T) {
	h := newHarness(t, defaultWindow())
	h.lift(t, "1", vmath.Position{X: 50, Y: 10}, event.AutoScrollFluid)

	assert.Equal(t, []Phase{PhaseCollecting, PhaseDragging}, h.phases)
	require.Len(t, h.starts, 1)
	assert.Equal(t, DragStart{
		DraggableID: "1",
		Type:        geometry.DefaultType,
		Source:      impact.Location{DroppableID: "A", Index: 0},
	}, h.starts[0])

	drag := h.drag(t)
	assert.Equal(t, &impact.Location{DroppableID: "A", Index: 0}, drag.Impact.Destination)
	assert.Empty(t, drag.Impact.Movement.Draggables)
	assert.Equal(t, vmath.Position{X: 50, Y: 10}, drag.Initial.Client.Center)
	assert.Equal(t, vmath.Origin, drag.Current.Client.Offset)
	assert.Equal(t, int64(1), h.stats.Ints.Get(status.KeyLifts).Load())
	assert.Equal(t, "DRAGGING", h.stats.Strings.Get(status.KeyPhase).Load())
}

func TestMoveBetweenLists(t *testing.T) {
	h := newHarness(t, defaultWindow())
	h.lift(t, "1", vmath.Position{X: 50, Y: 10}, event.AutoScrollFluid)

	h.engine.OnMove(vmath.Position{X: 250, Y: 10})
	h.engine.Pump()

	drag := h.drag(t)
	assert.Equal(t, &impact.Location{DroppableID: "B", Index: 0}, drag.Impact.Destination)
	assert.Empty(t, drag.Impact.Movement.Draggables)
	assert.Equal(t, []geometry.DraggableID{"2", "3"}, drag.Impact.Departure.Draggables)
	assert.Equal(t, vmath.Position{X: 200, Y: 0}, drag.Current.Client.Offset)
	assert.Equal(t, drag.Current.Client.Offset,
		vmath.Subtract(drag.Current.Client.Center, drag.Initial.Client.Center))

	h.engine.OnDrop()
	h.engine.Pump()

	// Already resting on the new slot: animating and complete happen in one step
	assert.Equal(t, []Phase{
		PhaseCollecting, PhaseDragging, PhaseDragging,
		PhaseDropAnimating, PhaseDropComplete, PhaseIdle,
	}, h.phases)
	assert.Zero(t, h.sched.Pending())
	require.Len(t, h.ends, 1)
	assert.Equal(t, DropResult{
		DraggableID: "1",
		Type:        geometry.DefaultType,
		Source:      impact.Location{DroppableID: "A", Index: 0},
		Destination: &impact.Location{DroppableID: "B", Index: 0},
		Reason:      TriggerDrop,
	}, h.ends[0])
	assert.Equal(t, int64(1), h.stats.Ints.Get(status.KeyDrops).Load())
}

func TestDropAnimatesToNewHome(t *testing.T) {
	h := newHarness(t, defaultWindow())
	h.lift(t, "1", vmath.Position{X: 50, Y: 10}, event.AutoScrollFluid)

	h.engine.OnMove(vmath.Position{X: 250, Y: 15})
	h.engine.OnDrop()
	h.engine.Pump()

	s, ok := h.engine.State().(DropAnimating)
	require.True(t, ok)
	assert.Equal(t, TriggerDrop, s.Pending.Trigger)
	assert.Equal(t, vmath.Position{X: 200, Y: 0}, s.Pending.NewHomeOffset)
	assert.Equal(t, 1, h.sched.Pending())
	assert.Equal(t, 330*time.Millisecond, h.sched.LastDelay())
	assert.Empty(t, h.ends)

	require.Equal(t, 1, h.sched.Fire())
	h.engine.Pump()

	assert.Equal(t, PhaseIdle, h.engine.State().Phase())
	require.Len(t, h.ends, 1)
	assert.Equal(t, &impact.Location{DroppableID: "B", Index: 0}, h.ends[0].Destination)
}

func TestKeyboardMoveForwardTwice(t *testing.T) {
	h := newHarness(t, defaultWindow())
	h.lift(t, "1", vmath.Position{X: 50, Y: 10}, event.AutoScrollJump)

	h.engine.OnMoveForward()
	h.engine.OnMoveForward()
	h.engine.Pump()

	drag := h.drag(t)
	assert.Equal(t, &impact.Location{DroppableID: "A", Index: 2}, drag.Impact.Destination)
	assert.Equal(t, []geometry.DraggableID{"2", "3"}, drag.Impact.Movement.Draggables)
	assert.True(t, drag.Impact.Movement.IsBeyondStartPosition)
	assert.True(t, drag.Current.ShouldAnimate)
	assert.Equal(t, vmath.Position{X: 50, Y: 50}, drag.Current.Page.Center)
	assert.Equal(t, int64(2), h.stats.Ints.Get(status.KeyDestinationIndex).Load())

	// End of list
	h.engine.OnMoveForward()
	h.engine.Pump()
	assert.Equal(t, 2, h.drag(t).Impact.Destination.Index)

	h.engine.OnDrop()
	h.engine.Pump()
	require.Len(t, h.ends, 1)
	assert.Equal(t, &impact.Location{DroppableID: "A", Index: 2}, h.ends[0].Destination)
	assert.Empty(t, h.scroller.requests, "item stays inside the window")
}

func TestKeyboardCrossAxisMove(t *testing.T) {
	h := newHarness(t, defaultWindow())
	h.lift(t, "2", vmath.Position{X: 50, Y: 30}, event.AutoScrollJump)

	h.engine.OnCrossAxisMoveForward()
	h.engine.Pump()
	drag := h.drag(t)
	assert.Equal(t, &impact.Location{DroppableID: "B", Index: 0}, drag.Impact.Destination)
	assert.Equal(t, []geometry.DraggableID{"3"}, drag.Impact.Departure.Draggables)

	h.engine.OnCrossAxisMoveBackward()
	h.engine.Pump()
	drag = h.drag(t)
	assert.Equal(t, "A", string(drag.Impact.Destination.DroppableID))
}

func TestCancelReturnsHome(t *testing.T) {
	h := newHarness(t, defaultWindow())
	h.lift(t, "1", vmath.Position{X: 50, Y: 10}, event.AutoScrollFluid)

	h.engine.OnMove(vmath.Position{X: 50, Y: 45})
	h.engine.Pump()
	require.Equal(t, 1, h.drag(t).Impact.Destination.Index)

	h.engine.OnCancel()
	h.engine.Pump()

	s, ok := h.engine.State().(DropAnimating)
	require.True(t, ok)
	assert.Equal(t, TriggerCancel, s.Pending.Trigger)
	assert.Equal(t, vmath.Origin, s.Pending.NewHomeOffset)
	assert.Nil(t, s.Pending.Impact.Destination)
	assert.Nil(t, s.Pending.Result.Destination)

	token := h.engine.dropToken
	require.Equal(t, 1, h.sched.Fire())
	h.engine.Pump()

	assert.Equal(t, []Phase{
		PhaseCollecting, PhaseDragging, PhaseDragging,
		PhaseDropAnimating, PhaseDropComplete, PhaseIdle,
	}, h.phases)
	require.Len(t, h.ends, 1)
	assert.Nil(t, h.ends[0].Destination)
	assert.Equal(t, TriggerCancel, h.ends[0].Reason)
	assert.Equal(t, int64(1), h.stats.Ints.Get(status.KeyCancels).Load())

	// A duplicate timer fire is a no-op
	h.engine.queue.Push(event.EventDropAnimationFinished, &event.DropAnimationPayload{Token: token})
	h.engine.Pump()
	assert.Len(t, h.ends, 1)
	assert.Equal(t, PhaseIdle, h.engine.State().Phase())
	assert.Equal(t, int64(1), h.stats.Ints.Get(status.KeyEventsStale).Load())
}

func TestConcurrentLiftRejected(t *testing.T) {
	h := newHarness(t, defaultWindow())
	h.lift(t, "1", vmath.Position{X: 50, Y: 10}, event.AutoScrollFluid)

	h.engine.OnLift("2", vmath.Position{X: 50, Y: 30}, event.AutoScrollFluid)
	h.engine.Pump()

	assert.Equal(t, geometry.DraggableID("1"), h.drag(t).Current.ID)
	assert.Len(t, h.starts, 1)
	assert.Equal(t, int64(1), h.stats.Ints.Get(status.KeyLiftsRejected).Load())
}

func TestCancelQueuedWithLift(t *testing.T) {
	h := newHarness(t, defaultWindow())

	h.engine.OnLift("1", vmath.Position{X: 50, Y: 10}, event.AutoScrollFluid)
	h.engine.OnCancel()
	h.engine.Pump()

	// Collection runs before the cancel, so the drag starts and returns home
	assert.Equal(t, []Phase{
		PhaseCollecting, PhaseDragging,
		PhaseDropAnimating, PhaseDropComplete, PhaseIdle,
	}, h.phases)
	assert.Len(t, h.starts, 1)
	require.Len(t, h.ends, 1)
	assert.Equal(t, TriggerCancel, h.ends[0].Reason)
	assert.Nil(t, h.ends[0].Destination)
	assert.Zero(t, h.stats.Ints.Get(status.KeyEventsStale).Load())
}

func TestCancelDuringCollection(t *testing.T) {
	h := newHarness(t, defaultWindow())
	require.True(t, h.engine.publish(Collecting{Request: event.LiftPayload{DraggableID: "1"}, Token: 99}))

	h.engine.OnCancel()
	h.engine.Pump()
	assert.Equal(t, []Phase{PhaseCollecting, PhaseIdle}, h.phases)

	// Collection for the abandoned lift arrives late
	h.engine.queue.PushInternal(event.EventCollect, &event.CollectPayload{Token: 99})
	assert.Equal(t, 1, h.engine.Pump())
	assert.Equal(t, PhaseIdle, h.engine.State().Phase())
	assert.Empty(t, h.starts)
	assert.Empty(t, h.ends)
	assert.Equal(t, int64(1), h.stats.Ints.Get(status.KeyEventsStale).Load())
}

func TestPointerDragInOnePump(t *testing.T) {
	h := newHarness(t, defaultWindow())

	h.engine.OnLift("1", vmath.Position{X: 50, Y: 10}, event.AutoScrollFluid)
	h.engine.OnMove(vmath.Position{X: 150, Y: 10})
	h.engine.OnMove(vmath.Position{X: 250, Y: 10})
	h.engine.OnDrop()
	assert.Equal(t, 5, h.engine.Pump())

	assert.Equal(t, []Phase{
		PhaseCollecting, PhaseDragging, PhaseDragging, PhaseDragging,
		PhaseDropAnimating, PhaseDropComplete, PhaseIdle,
	}, h.phases)
	require.Len(t, h.ends, 1)
	assert.Equal(t, TriggerDrop, h.ends[0].Reason)
	assert.Equal(t, &impact.Location{DroppableID: "B", Index: 0}, h.ends[0].Destination)
}

func TestKeyboardDragInOnePump(t *testing.T) {
	h := newHarness(t, defaultWindow())

	h.engine.OnLift("1", vmath.Position{X: 50, Y: 10}, event.AutoScrollJump)
	h.engine.OnMoveForward()
	h.engine.OnMoveForward()
	h.engine.OnDrop()
	h.engine.Pump()

	require.Len(t, h.ends, 1)
	assert.Equal(t, &impact.Location{DroppableID: "A", Index: 2}, h.ends[0].Destination)
	assert.Equal(t, PhaseIdle, h.engine.State().Phase())
}

func TestDropTimerSurvivesInputFlood(t *testing.T) {
	h := newHarness(t, defaultWindow())
	h.lift(t, "1", vmath.Position{X: 50, Y: 10}, event.AutoScrollFluid)
	h.engine.OnMove(vmath.Position{X: 250, Y: 15})
	h.engine.OnDrop()
	h.engine.Pump()
	require.Equal(t, PhaseDropAnimating, h.engine.State().Phase())

	require.Equal(t, 1, h.sched.Fire())
	for i := 0; i < 300; i++ {
		h.engine.OnMove(vmath.Position{X: float64(i), Y: 10})
	}
	h.engine.Pump()

	assert.Equal(t, uint64(300-256), h.engine.Overwritten())
	assert.Equal(t, PhaseIdle, h.engine.State().Phase())
	require.Len(t, h.ends, 1)

	h.engine.OnLift("2", vmath.Position{X: 50, Y: 30}, event.AutoScrollFluid)
	h.engine.Pump()
	assert.Equal(t, geometry.DraggableID("2"), h.drag(t).Current.ID)
}

func TestSettledTracksQueuedLifts(t *testing.T) {
	h := newHarness(t, defaultWindow())
	assert.True(t, h.engine.Settled())

	h.engine.OnLift("1", vmath.Position{X: 50, Y: 10}, event.AutoScrollJump)
	assert.False(t, h.engine.Settled(), "lift still queued")
	h.engine.Pump()
	assert.False(t, h.engine.Settled(), "dragging")

	// A second lift is rejected but still counts as handled
	h.engine.OnLift("2", vmath.Position{X: 50, Y: 30}, event.AutoScrollJump)
	h.engine.Pump()
	h.engine.OnCancel()
	h.engine.Pump()
	assert.Equal(t, PhaseIdle, h.engine.State().Phase())
	assert.True(t, h.engine.Settled())
}

func TestLiftUnknownDraggable(t *testing.T) {
	h := newHarness(t, defaultWindow())

	h.engine.OnLift("nope", vmath.Origin, event.AutoScrollFluid)
	h.engine.Pump()

	assert.Equal(t, []Phase{PhaseCollecting, PhaseIdle}, h.phases)
	assert.Empty(t, h.starts)
}

func TestLiftOrphanedDraggable(t *testing.T) {
	h := newHarness(t, defaultWindow())
	h.engine.registry.UnregisterDroppable("A")

	h.engine.OnLift("1", vmath.Position{X: 50, Y: 10}, event.AutoScrollFluid)
	h.engine.Pump()

	assert.Equal(t, []Phase{PhaseCollecting, PhaseIdle}, h.phases)
	assert.Empty(t, h.starts)
	assert.Zero(t, h.stats.Ints.Get(status.KeyLifts).Load())
}

func TestEventsOutsideDragIgnored(t *testing.T) {
	h := newHarness(t, defaultWindow())

	h.engine.OnMove(vmath.Position{X: 10, Y: 10})
	h.engine.OnMoveForward()
	h.engine.OnFrame()
	h.engine.OnDrop()
	h.engine.OnCancel()
	assert.Equal(t, 5, h.engine.Pump())

	assert.Empty(t, h.phases)
	assert.Equal(t, PhaseIdle, h.engine.State().Phase())
}

func TestWindowScrollDuringDrag(t *testing.T) {
	h := newHarness(t, defaultWindow())
	h.lift(t, "1", vmath.Position{X: 50, Y: 10}, event.AutoScrollFluid)

	h.engine.OnWindowScroll(vmath.Position{Y: 45})
	h.engine.Pump()

	drag := h.drag(t)
	assert.Equal(t, vmath.Origin, drag.Current.Client.Offset)
	assert.Equal(t, vmath.Position{Y: 45}, drag.Current.Page.Offset)
	assert.Equal(t, vmath.Position{X: 50, Y: 55}, drag.Current.Page.Center)
	assert.Equal(t, 2, drag.Impact.Destination.Index)

	h.engine.OnDrop()
	h.engine.Pump()

	s, ok := h.engine.State().(DropAnimating)
	require.True(t, ok)
	assert.Equal(t, vmath.Position{Y: -5}, s.Pending.NewHomeOffset)
}

func TestJumpScrollKeepsSlot(t *testing.T) {
	window := autoscroll.Window{Size: vmath.Position{X: 400, Y: 25}, MaxScroll: vmath.Position{Y: 200}}
	h := newHarness(t, window)
	h.lift(t, "1", vmath.Position{X: 50, Y: 10}, event.AutoScrollJump)

	h.engine.OnMoveForward()
	h.engine.Pump()
	require.Len(t, h.scroller.requests, 1)
	change := h.scroller.requests[0].Change
	assert.Equal(t, vmath.Position{Y: 15}, change)
	before := h.drag(t)

	h.engine.OnWindowScroll(change)
	h.engine.Pump()

	drag := h.drag(t)
	assert.Equal(t, before.Current.Page.Center, drag.Current.Page.Center)
	assert.Equal(t, before.Impact.Destination, drag.Impact.Destination)
	assert.Equal(t, vmath.Position{X: 50, Y: 15}, drag.Current.Client.Center)
	assert.True(t, drag.Current.Client.Center.Y >= 0 && drag.Current.Client.Center.Y <= window.Size.Y,
		"item stays on screen after the scroll")
	assert.Equal(t, change, drag.Current.WindowScroll)
}

func TestFrameRequestsFluidScroll(t *testing.T) {
	window := defaultWindow()
	window.MaxScroll = vmath.Position{Y: 500}
	h := newHarness(t, window)
	h.lift(t, "1", vmath.Position{X: 50, Y: 10}, event.AutoScrollFluid)

	h.clock.Advance(2 * time.Second)
	h.engine.OnMove(vmath.Position{X: 150, Y: 395})
	h.engine.OnFrame()
	h.engine.Pump()

	require.Len(t, h.scroller.requests, 1)
	assert.Equal(t, autoscroll.Request{Change: vmath.Position{Y: 28}}, h.scroller.requests[0])

	// Keyboard drags never scroll on frames
	h.engine.OnCancel()
	h.engine.Pump()
	h.sched.Fire()
	h.engine.Pump()
	h.lift(t, "1", vmath.Position{X: 50, Y: 10}, event.AutoScrollJump)
	h.engine.OnFrame()
	h.engine.Pump()
	assert.Len(t, h.scroller.requests, 1)
}

func TestFluidScrollFollowsContainerUnderCenter(t *testing.T) {
	a := dimtest.Vertical("A", 0, "1", "2", "3")
	a.MaxScroll = vmath.Position{Y: 200}
	h := newHarnessWith(t, defaultWindow(), a, dimtest.Vertical("B", 200))
	h.lift(t, "1", vmath.Position{X: 50, Y: 10}, event.AutoScrollFluid)
	h.clock.Advance(2 * time.Second)

	// Empty space level with the bottom of A: A stays the destination but is not under the center
	h.engine.OnMove(vmath.Position{X: 350, Y: 90})
	h.engine.OnFrame()
	h.engine.Pump()
	assert.Empty(t, h.scroller.requests)

	h.engine.OnMove(vmath.Position{X: 50, Y: 90})
	h.engine.OnFrame()
	h.engine.Pump()
	require.Len(t, h.scroller.requests, 1)
	assert.Equal(t, geometry.DroppableID("A"), h.scroller.requests[0].DroppableID)
	assert.Greater(t, h.scroller.requests[0].Change.Y, 0.0)
}

func TestCloseStopsTimer(t *testing.T) {
	h := newHarness(t, defaultWindow())
	h.lift(t, "1", vmath.Position{X: 50, Y: 10}, event.AutoScrollFluid)
	h.engine.OnMove(vmath.Position{X: 50, Y: 45})
	h.engine.OnDrop()
	h.engine.Pump()
	require.Equal(t, 1, h.sched.Pending())

	h.engine.Close()
	assert.Zero(t, h.sched.Pending())
	assert.Equal(t, PhaseIdle, h.engine.State().Phase())
	assert.Equal(t, PhaseIdle, h.engine.phases.Active())
	assert.Equal(t, PhaseIdle, h.phases[len(h.phases)-1])
	assert.Empty(t, h.ends)

	h.engine.OnCancel()
	assert.Zero(t, h.engine.Pump())
}

func TestCloseAbandonsDrag(t *testing.T) {
	h := newHarness(t, defaultWindow())
	h.lift(t, "1", vmath.Position{X: 50, Y: 10}, event.AutoScrollFluid)

	h.engine.Close()
	h.engine.Close()

	assert.Equal(t, []Phase{PhaseCollecting, PhaseDragging, PhaseIdle}, h.phases)
	assert.Equal(t, "IDLE", h.stats.Strings.Get(status.KeyPhase).Load())
	assert.Zero(t, h.stats.Floats.Get(status.KeyScrollSpeed).Get())
	assert.Empty(t, h.ends)
}

func TestRunPumpsOnWake(t *testing.T) {
	h := newHarness(t, defaultWindow())
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- h.engine.Run(ctx, time.Millisecond) }()

	h.engine.OnLift("1", vmath.Position{X: 50, Y: 10}, event.AutoScrollJump)
	require.Eventually(t, func() bool {
		return h.engine.State().Phase() == PhaseDragging
	}, time.Second, time.Millisecond)

	cancel()
	assert.True(t, errors.Is(<-done, context.Canceled))
}
