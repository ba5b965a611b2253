package autoscroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/dragboard/geometry"
	"github.com/lixenwraith/dragboard/vmath"
)

const settled = 2 * time.Second

func TestSpeedZeroOutsideThreshold(t *testing.T) {
	cfg := DefaultConfig()
	assert.Zero(t, cfg.Speed(26, 100, settled))
	assert.Zero(t, cfg.Speed(90, 100, settled))
	assert.Equal(t, 1.0, cfg.Speed(25, 100, settled), "threshold edge scrolls at minimum speed")
}

func TestSpeedMonotonicAndCapped(t *testing.T) {
	cfg := DefaultConfig()
	prev := 0.0
	for d := 25.0; d >= -10; d -= 0.5 {
		speed := cfg.Speed(d, 100, settled)
		require.GreaterOrEqual(t, speed, prev, "distance %.1f", d)
		require.LessOrEqual(t, speed, cfg.MaxSpeed, "distance %.1f", d)
		prev = speed
	}
	assert.Equal(t, cfg.MaxSpeed, cfg.Speed(5, 100, settled))
	assert.Equal(t, 7.0, cfg.Speed(15, 100, settled))
}

func TestSpeedTimeDampening(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 1.0, cfg.Speed(0, 100, 0))
	assert.Equal(t, 1.0, cfg.Speed(0, 100, cfg.AccelerateAt-time.Millisecond))
	assert.Equal(t, cfg.MaxSpeed, cfg.Speed(0, 100, cfg.StopDampeningAt))

	prev := 0.0
	for e := time.Duration(0); e <= cfg.StopDampeningAt; e += 20 * time.Millisecond {
		speed := cfg.Speed(0, 100, e)
		require.GreaterOrEqual(t, speed, prev, "elapsed %v", e)
		prev = speed
	}
}

func TestChangeDirection(t *testing.T) {
	cfg := DefaultConfig()
	frame := geometry.FragmentAt(0, 0, 100, 100)

	assert.Equal(t, vmath.Position{X: 0, Y: 28}, cfg.Change(frame, vmath.Position{X: 50, Y: 97}, settled))
	assert.Equal(t, vmath.Position{X: -28, Y: 0}, cfg.Change(frame, vmath.Position{X: 3, Y: 50}, settled))
	assert.Equal(t, vmath.Origin, cfg.Change(frame, vmath.Position{X: 50, Y: 50}, settled))
	assert.Equal(t, vmath.Origin, cfg.Change(frame, vmath.Position{X: 500, Y: 500}, settled), "outside the frame")
}

func TestJumpChange(t *testing.T) {
	frame := geometry.FragmentAt(0, 0, 100, 100)

	assert.Equal(t, vmath.Position{Y: 30}, JumpChange(geometry.FragmentAt(0, 110, 100, 20), frame))
	assert.Equal(t, vmath.Position{Y: -15}, JumpChange(geometry.FragmentAt(0, -15, 100, 20), frame))
	assert.Equal(t, vmath.Origin, JumpChange(geometry.FragmentAt(0, 40, 100, 20), frame))
	// taller than the frame aligns the start edge
	assert.Equal(t, vmath.Position{Y: 10}, JumpChange(geometry.FragmentAt(0, 10, 100, 300), frame))
}

func TestValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	bad := DefaultConfig()
	bad.MaxSpeedAt = 0.3
	assert.Error(t, bad.Validate())

	bad = DefaultConfig()
	bad.StopDampeningAt = bad.AccelerateAt
	assert.Error(t, bad.Validate())

	bad = DefaultConfig()
	bad.MaxSpeed = 0
	assert.Error(t, bad.Validate())
}
