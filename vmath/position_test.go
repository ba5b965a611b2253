package vmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositionArithmetic(t *testing.T) {
	a := Position{X: 3, Y: -4}
	b := Position{X: 1, Y: 2}

	assert.Equal(t, Position{X: 4, Y: -2}, Add(a, b))
	assert.Equal(t, Position{X: 2, Y: -6}, Subtract(a, b))
	assert.Equal(t, Position{X: -3, Y: 4}, Negate(a))
	assert.Equal(t, Position{X: 6, Y: -8}, Scale(a, 2))
	assert.Equal(t, Position{X: 3, Y: 4}, Absolute(a))
	assert.True(t, IsEqual(Add(a, Negate(a)), Origin))
}

func TestDistanceAndClosest(t *testing.T) {
	assert.Equal(t, 5.0, Distance(Origin, Position{X: 3, Y: 4}))
	assert.Equal(t, 1.0, Closest(Origin, Position{X: 3, Y: 4}, Position{X: 0, Y: -1}))
	assert.True(t, math.IsInf(Closest(Origin), 1))
}

func TestPatch(t *testing.T) {
	assert.Equal(t, Position{X: 10, Y: 2}, Patch(LineX, 10, 2))
	assert.Equal(t, Position{X: 2, Y: 10}, Patch(LineY, 10, 2))

	p := Position{X: 7, Y: 9}
	assert.Equal(t, 7.0, p.Component(LineX))
	assert.Equal(t, 9.0, p.Component(LineY))
	assert.Equal(t, LineY, LineX.Other())
}

func TestClamp(t *testing.T) {
	got := Clamp(Position{X: -5, Y: 50}, Origin, Position{X: 10, Y: 10})
	assert.Equal(t, Position{X: 0, Y: 10}, got)
}
