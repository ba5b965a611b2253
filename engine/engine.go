// Package engine owns the drag session: it drains input events in order, moves the
// session through its phases and publishes immutable State snapshots
package engine

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/dragboard/autoscroll"
	"github.com/lixenwraith/dragboard/dimension"
	"github.com/lixenwraith/dragboard/engine/fsm"
	"github.com/lixenwraith/dragboard/event"
	"github.com/lixenwraith/dragboard/parameter"
	"github.com/lixenwraith/dragboard/status"
)

// Options configures an Engine; only Registry is required
type Options struct {
	Registry     *dimension.Registry
	Hooks        Hooks
	Scroller     autoscroll.ScrollRequester
	AutoScroll   autoscroll.Config
	Window       autoscroll.Window
	DropDuration time.Duration // zero or negative completes drops without animating
	Clock        Clock
	Scheduler    Scheduler
	Status       *status.Registry
	Logger       *slog.Logger
}

// DefaultOptions returns options with compile-time defaults for everything but Registry
func DefaultOptions(registry *dimension.Registry) Options {
	return Options{
		Registry:     registry,
		AutoScroll:   autoscroll.DefaultConfig(),
		DropDuration: parameter.DropAnimationDuration,
	}
}

// Engine is the single owner of the drag session
// Push-side methods (On*) are safe from any goroutine; Pump must run on one goroutine
type Engine struct {
	queue  *event.Queue
	state  atomic.Pointer[State]
	phases *fsm.Machine[Phase, *Engine]
	wake   chan struct{}
	closed atomic.Bool

	liftsPushed  atomic.Uint64
	liftsHandled atomic.Uint64

	registry     *dimension.Registry
	hooks        Hooks
	scroll       *autoscroll.Coordinator
	window       autoscroll.Window
	dropDuration time.Duration
	clock        Clock
	scheduler    Scheduler
	logger       *slog.Logger

	// Pump-goroutine only
	seq           uint64
	dropToken     uint64
	dropTimer     Timer
	timerMu       sync.Mutex
	dragStartedAt time.Time

	subMu  sync.Mutex
	subs   map[uint64]func(State)
	subSeq uint64

	statPhase    *status.AtomicString
	statLifts    *atomic.Int64
	statRejected *atomic.Int64
	statMoves    *atomic.Int64
	statDrops    *atomic.Int64
	statCancels  *atomic.Int64
	statDestIdx  *atomic.Int64
	statStale    *atomic.Int64
}

// New creates an idle engine
func New(opts Options) *Engine {
	if opts.Registry == nil {
		opts.Registry = dimension.NewRegistry(opts.Logger)
	}
	if opts.Clock == nil {
		opts.Clock = NewTimeProvider()
	}
	if opts.Scheduler == nil {
		opts.Scheduler = RealScheduler{}
	}
	if opts.Status == nil {
		opts.Status = status.NewRegistry()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.AutoScroll == (autoscroll.Config{}) {
		opts.AutoScroll = autoscroll.DefaultConfig()
	}

	e := &Engine{
		queue:        event.NewQueue(opts.Clock.Now),
		wake:         make(chan struct{}, 1),
		registry:     opts.Registry,
		hooks:        opts.Hooks,
		scroll:       autoscroll.NewCoordinator(opts.AutoScroll, opts.Scroller, opts.Status, opts.Logger),
		window:       opts.Window,
		dropDuration: opts.DropDuration,
		clock:        opts.Clock,
		scheduler:    opts.Scheduler,
		logger:       opts.Logger,
		subs:         make(map[uint64]func(State)),

		statPhase:    opts.Status.Strings.Get(status.KeyPhase),
		statLifts:    opts.Status.Ints.Get(status.KeyLifts),
		statRejected: opts.Status.Ints.Get(status.KeyLiftsRejected),
		statMoves:    opts.Status.Ints.Get(status.KeyMoves),
		statDrops:    opts.Status.Ints.Get(status.KeyDrops),
		statCancels:  opts.Status.Ints.Get(status.KeyCancels),
		statDestIdx:  opts.Status.Ints.Get(status.KeyDestinationIndex),
		statStale:    opts.Status.Ints.Get(status.KeyEventsStale),
	}
	e.phases = newPhaseMachine()

	var idle State = Idle{}
	e.state.Store(&idle)
	e.statPhase.Store(PhaseIdle.String())
	return e
}

func newPhaseMachine() *fsm.Machine[Phase, *Engine] {
	m := fsm.NewMachine[Phase, *Engine](PhaseIdle, PhaseIdle.String())
	for p := PhaseCollecting; p <= PhaseDropComplete; p++ {
		m.AddState(p, p.String())
	}
	for from, targets := range validTransitions {
		// Graph is static; an error here is a programming bug
		if err := m.Allow(from, targets...); err != nil {
			panic(err)
		}
	}
	for p := PhaseIdle; p <= PhaseDropComplete; p++ {
		phase := p
		m.OnEnter(phase, func(e *Engine) { e.statPhase.Store(phase.String()) })
	}
	m.OnExit(PhaseDragging, func(e *Engine) { e.scroll.Stop() })
	return m
}

// State returns the latest published snapshot; safe from any goroutine
func (e *Engine) State() State {
	return *e.state.Load()
}

// Subscribe registers fn for every published snapshot, in publication order
// fn runs on the Pump goroutine; the returned func unsubscribes
func (e *Engine) Subscribe(fn func(State)) func() {
	e.subMu.Lock()
	defer e.subMu.Unlock()
	e.subSeq++
	id := e.subSeq
	e.subs[id] = fn
	return func() {
		e.subMu.Lock()
		defer e.subMu.Unlock()
		delete(e.subs, id)
	}
}

// Wake is signalled whenever an event is pushed
func (e *Engine) Wake() <-chan struct{} {
	return e.wake
}

// Pump drains the queue, including events pushed while handling, and returns how many ran
// Events the engine schedules for itself run before the next input event
func (e *Engine) Pump() int {
	if e.closed.Load() {
		return 0
	}
	n := e.drainInternal()
	for {
		events := e.queue.Consume()
		if len(events) == 0 {
			return n
		}
		for _, ev := range events {
			e.handle(ev)
			n++
			n += e.drainInternal()
		}
	}
}

func (e *Engine) drainInternal() int {
	n := 0
	for {
		ev, ok := e.queue.PopInternal()
		if !ok {
			return n
		}
		e.handle(ev)
		n++
	}
}

// Run pumps on every wake and pushes frame ticks while dragging until ctx ends
func (e *Engine) Run(ctx context.Context, frameInterval time.Duration) error {
	if frameInterval <= 0 {
		frameInterval = parameter.FrameUpdateInterval
	}
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-e.wake:
			e.Pump()
		case <-ticker.C:
			if e.State().Phase() == PhaseDragging {
				e.OnFrame()
			}
			e.Pump()
		}
	}
}

// Close stops the pending drop timer, abandons any session and rejects further pumping
// Call it from the Pump goroutine or after Run returns
func (e *Engine) Close() {
	if !e.closed.CompareAndSwap(false, true) {
		return
	}
	e.stopDropTimer()
	prev := e.State().Phase()
	if prev != PhaseIdle {
		// No drop result is published for a session cut short
		e.scroll.Stop()
		e.phases.Reset()
		e.statPhase.Store(PhaseIdle.String())
		e.store(Idle{})
	}
	e.logger.Debug("engine closed", "phase", prev)
}

// Settled reports whether every pushed lift has been handled and no session is active
// Hosts use it to tell a drag the engine ended from one still queued
func (e *Engine) Settled() bool {
	return e.liftsHandled.Load() == e.liftsPushed.Load() && e.State().Phase() == PhaseIdle
}

// Overwritten reports events lost to queue overflow
func (e *Engine) Overwritten() uint64 {
	return e.queue.Overwritten()
}

func (e *Engine) push(t event.EventType, payload any) {
	if e.closed.Load() {
		return
	}
	if t == event.EventLift {
		e.liftsPushed.Add(1)
	}
	e.queue.Push(t, payload)
	e.signal()
}

// pushInternal schedules an engine event that is never dropped on overflow
func (e *Engine) pushInternal(t event.EventType, payload any) {
	if e.closed.Load() {
		return
	}
	e.queue.PushInternal(t, payload)
	e.signal()
}

func (e *Engine) signal() {
	select {
	case e.wake <- struct{}{}:
	default:
	}
}

// publish validates the phase edge, stores next and notifies subscribers
func (e *Engine) publish(next State) bool {
	prev := e.State().Phase()
	if prev != next.Phase() {
		if err := e.phases.Transition(e, next.Phase()); err != nil {
			e.logger.Error("phase transition rejected", "error", err)
			return false
		}
		e.logger.Debug("phase", "from", prev, "to", next.Phase())
	}
	e.store(next)
	return true
}

// store swaps in next and notifies subscribers in registration order
func (e *Engine) store(next State) {
	e.state.Store(&next)

	e.subMu.Lock()
	subs := make([]func(State), 0, len(e.subs))
	for id := uint64(1); id <= e.subSeq; id++ {
		if fn, ok := e.subs[id]; ok {
			subs = append(subs, fn)
		}
	}
	e.subMu.Unlock()

	for _, fn := range subs {
		fn(next)
	}
}

func (e *Engine) nextToken() uint64 {
	e.seq++
	return e.seq
}

func (e *Engine) handle(ev event.DragEvent) {
	switch ev.Type {
	case event.EventLift:
		if p, ok := ev.Payload.(*event.LiftPayload); ok {
			e.lift(*p)
			return
		}
	case event.EventCollect:
		if p, ok := ev.Payload.(*event.CollectPayload); ok {
			e.collect(p.Token)
			return
		}
	case event.EventMove:
		if p, ok := ev.Payload.(*event.MovePayload); ok {
			e.move(p.Client)
			return
		}
	case event.EventMoveForward:
		e.moveToNextIndex(true)
		return
	case event.EventMoveBackward:
		e.moveToNextIndex(false)
		return
	case event.EventCrossAxisMoveForward:
		e.moveCrossAxis(true)
		return
	case event.EventCrossAxisMoveBackward:
		e.moveCrossAxis(false)
		return
	case event.EventWindowScroll:
		if p, ok := ev.Payload.(*event.WindowScrollPayload); ok {
			e.windowScroll(p.Scroll)
			return
		}
	case event.EventDroppableScroll:
		if p, ok := ev.Payload.(*event.DroppableScrollPayload); ok {
			e.droppableScroll(p.DroppableID, p.Scroll)
			return
		}
	case event.EventFrame:
		e.frame()
		return
	case event.EventDrop:
		e.drop(TriggerDrop)
		return
	case event.EventCancel:
		e.drop(TriggerCancel)
		return
	case event.EventDropAnimationFinished:
		if p, ok := ev.Payload.(*event.DropAnimationPayload); ok {
			e.dropAnimationFinished(p.Token)
			return
		}
	}
	e.logger.Warn("event dropped", "type", ev.Type, "seq", ev.Seq)
}
