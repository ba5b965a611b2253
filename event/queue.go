package event

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/dragboard/parameter"
)

// Queue carries drag events to the single engine consumer on two lanes
//
// Input lane: lock-free MPSC ring fed by host callbacks. When the consumer
// stalls long enough to fill it, the oldest unread input is dropped and
// counted in Overwritten
//
// Internal lane: unbounded FIFO for events the engine schedules for itself
// (dimension collection, drop timer). Never dropped; the consumer drains it
// before taking the next input event
type Queue struct {
	ring     [parameter.EventQueueSize]DragEvent
	ready    [parameter.EventQueueSize]atomic.Bool // slot fully written
	readPos  atomic.Uint64
	writePos atomic.Uint64
	dropped  atomic.Uint64
	arrival  atomic.Uint64
	internal []DragEvent
	internMu sync.Mutex
	now      func() time.Time
}

// NewQueue creates an empty queue stamping events with now
// A nil now uses time.Now
func NewQueue(now func() time.Time) *Queue {
	if now == nil {
		now = time.Now
	}
	return &Queue{now: now}
}

func (q *Queue) stamp(t EventType, payload any, internal bool) DragEvent {
	return DragEvent{
		Type:      t,
		Payload:   payload,
		Seq:       q.arrival.Add(1),
		Timestamp: q.now(),
		Internal:  internal,
	}
}

// Push appends an input event; safe for concurrent producers
func (q *Queue) Push(t EventType, payload any) {
	ev := q.stamp(t, payload, false)

	pos := q.writePos.Add(1) - 1
	slot := pos & parameter.EventBufferMask
	q.ring[slot] = ev
	q.ready[slot].Store(true)

	// Full ring: move the reader past the slot just reused
	for {
		read := q.readPos.Load()
		if pos+1-read <= parameter.EventQueueSize {
			return
		}
		if q.readPos.CompareAndSwap(read, pos+1-parameter.EventQueueSize) {
			q.dropped.Add(pos + 1 - parameter.EventQueueSize - read)
			return
		}
	}
}

// PushInternal appends an engine-scheduled event; safe from any goroutine
func (q *Queue) PushInternal(t EventType, payload any) {
	ev := q.stamp(t, payload, true)
	q.internMu.Lock()
	q.internal = append(q.internal, ev)
	q.internMu.Unlock()
}

// PopInternal removes the oldest internal event
func (q *Queue) PopInternal() (DragEvent, bool) {
	q.internMu.Lock()
	defer q.internMu.Unlock()
	if len(q.internal) == 0 {
		return DragEvent{}, false
	}
	ev := q.internal[0]
	q.internal[0] = DragEvent{}
	q.internal = q.internal[1:]
	if len(q.internal) == 0 {
		q.internal = nil
	}
	return ev, true
}

// Consume takes every fully written input event in arrival order
// Single consumer only
func (q *Queue) Consume() []DragEvent {
	for {
		read := q.readPos.Load()
		write := q.writePos.Load()
		if write <= read {
			return nil
		}
		if write-read > parameter.EventQueueSize {
			read = write - parameter.EventQueueSize
		}

		batch := make([]DragEvent, 0, write-read)
		for pos := read; pos < write; pos++ {
			slot := pos & parameter.EventBufferMask
			if !q.ready[slot].Load() {
				// Producer claimed the slot but has not finished writing
				break
			}
			batch = append(batch, q.ring[slot])
			q.ready[slot].Store(false)
		}

		if q.readPos.CompareAndSwap(read, read+uint64(len(batch))) {
			if len(batch) == 0 {
				return nil
			}
			return batch
		}
	}
}

// Len returns the approximate number of pending events on both lanes
func (q *Queue) Len() int {
	n := 0
	if read, write := q.readPos.Load(), q.writePos.Load(); write > read {
		n = int(min(write-read, parameter.EventQueueSize))
	}
	q.internMu.Lock()
	n += len(q.internal)
	q.internMu.Unlock()
	return n
}

// Overwritten returns how many unread input events were lost to overflow
func (q *Queue) Overwritten() uint64 {
	return q.dropped.Load()
}
