package parameter

import "time"

// Engine timing
const (
	// FrameUpdateInterval is the frame tick interval driving auto-scroll (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// DropAnimationDuration is how long the dropped item takes to settle in its new slot
	DropAnimationDuration = 330 * time.Millisecond
)

// Event queue limits
const (
	// EventQueueSize is the fixed capacity of the drag event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)

// Pointer input
const (
	// SloppyClickThreshold is the distance a pressed pointer must travel before a drag lifts
	SloppyClickThreshold = 1.0
)

// Fluid auto-scroll, thresholds are fractions of the container size along each axis
const (
	// AutoScrollStartFrom is where scrolling begins, measured from the edge
	AutoScrollStartFrom = 0.25

	// AutoScrollMaxSpeedAt is where scrolling reaches full speed
	AutoScrollMaxSpeedAt = 0.05

	// AutoScrollMaxSpeed is the largest scroll step per frame
	AutoScrollMaxSpeed = 28.0

	// AutoScrollAccelerateAt is how long a drag stays at minimum speed before ramping
	AutoScrollAccelerateAt = 360 * time.Millisecond

	// AutoScrollStopDampeningAt is when time dampening no longer limits speed
	AutoScrollStopDampeningAt = 1200 * time.Millisecond
)
