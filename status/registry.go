// Package status holds lock-free drag metrics shared between the engine and the host
package status

import (
	"fmt"
	"sort"
	"strconv"
	"sync/atomic"
)

// Metric keys written by the engine and the auto-scroll coordinator
const (
	KeyPhase            = "drag.phase"
	KeyLifts            = "drag.lifts"
	KeyLiftsRejected    = "drag.lifts_rejected"
	KeyMoves            = "drag.moves"
	KeyDrops            = "drag.drops"
	KeyCancels          = "drag.cancels"
	KeyDestinationIndex = "drag.destination_index"
	KeyEventsStale      = "drag.events_stale"
	KeyScrollSpeed      = "scroll.speed"
	KeyScrollPeakSpeed  = "scroll.peak_speed"
	KeyScrollRequests   = "scroll.requests"
)

// Registry is the central metrics facade
// Writers cache pointers during init; hot paths write directly to atomics
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Snapshot renders every metric as key=value, sorted by key
func (r *Registry) Snapshot() []string {
	out := make([]string, 0, r.TotalCount())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		out = append(out, key+"="+strconv.FormatInt(v.Load(), 10))
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		out = append(out, fmt.Sprintf("%s=%.1f", key, v.Get()))
	})
	r.Strings.Range(func(key string, v *AtomicString) {
		out = append(out, key+"="+v.Load())
	})
	sort.Strings(out)
	return out
}
