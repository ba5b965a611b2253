package autoscroll

import (
	"fmt"
	"time"

	"github.com/lixenwraith/dragboard/parameter"
)

// minSpeed is the smallest non-zero scroll step
const minSpeed = 1.0

// Config tunes fluid scrolling
// StartFrom and MaxSpeedAt are fractions of the container size measured from an edge
type Config struct {
	StartFrom       float64
	MaxSpeedAt      float64
	MaxSpeed        float64
	AccelerateAt    time.Duration
	StopDampeningAt time.Duration
}

// DefaultConfig returns the compile-time defaults
func DefaultConfig() Config {
	return Config{
		StartFrom:       parameter.AutoScrollStartFrom,
		MaxSpeedAt:      parameter.AutoScrollMaxSpeedAt,
		MaxSpeed:        parameter.AutoScrollMaxSpeed,
		AccelerateAt:    parameter.AutoScrollAccelerateAt,
		StopDampeningAt: parameter.AutoScrollStopDampeningAt,
	}
}

// Validate rejects thresholds that cannot produce a monotonic speed curve
func (c Config) Validate() error {
	if c.StartFrom <= 0 || c.StartFrom > 0.5 {
		return fmt.Errorf("start_from %.2f out of range (0, 0.5]", c.StartFrom)
	}
	if c.MaxSpeedAt < 0 || c.MaxSpeedAt >= c.StartFrom {
		return fmt.Errorf("max_speed_at %.2f must be in [0, start_from)", c.MaxSpeedAt)
	}
	if c.MaxSpeed < minSpeed {
		return fmt.Errorf("max_speed %.1f below %.0f", c.MaxSpeed, minSpeed)
	}
	if c.AccelerateAt < 0 || c.StopDampeningAt <= c.AccelerateAt {
		return fmt.Errorf("stop_dampening_at %v must be after accelerate_at %v", c.StopDampeningAt, c.AccelerateAt)
	}
	return nil
}
