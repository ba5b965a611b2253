package event

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/dragboard/geometry"
	"github.com/lixenwraith/dragboard/vmath"
)

// AutoScrollMode selects how auto-scrolling follows a drag
type AutoScrollMode uint8

const (
	// AutoScrollFluid scrolls continuously near container edges (pointer drags)
	AutoScrollFluid AutoScrollMode = iota
	// AutoScrollJump scrolls once per move to keep the item visible (keyboard drags)
	AutoScrollJump
)

func (m AutoScrollMode) String() string {
	if m == AutoScrollJump {
		return "JUMP"
	}
	return "FLUID"
}

// UnmarshalText accepts FLUID or JUMP in any case
func (m *AutoScrollMode) UnmarshalText(text []byte) error {
	switch strings.ToUpper(string(text)) {
	case "FLUID", "":
		*m = AutoScrollFluid
	case "JUMP":
		*m = AutoScrollJump
	default:
		return fmt.Errorf("unknown auto-scroll mode %q", text)
	}
	return nil
}

// LiftPayload starts a drag at a viewport position
type LiftPayload struct {
	DraggableID geometry.DraggableID `yaml:"draggable_id"`
	Client      vmath.Position       `yaml:"client"`
	Mode        AutoScrollMode       `yaml:"mode"`
}

// CollectPayload ties a collection request to the lift that issued it
type CollectPayload struct {
	Token uint64
}

// MovePayload carries the pointer position in viewport coordinates
type MovePayload struct {
	Client vmath.Position `yaml:"client"`
}

// WindowScrollPayload carries the window scroll offset
type WindowScrollPayload struct {
	Scroll vmath.Position `yaml:"scroll"`
}

// DroppableScrollPayload carries one droppable's scroll offset
type DroppableScrollPayload struct {
	DroppableID geometry.DroppableID `yaml:"droppable_id"`
	Scroll      vmath.Position       `yaml:"scroll"`
}

// DropAnimationPayload identifies the drop whose animation finished
type DropAnimationPayload struct {
	Token uint64
}
