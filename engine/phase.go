package engine

// Phase is the coarse drag lifecycle stage
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseCollecting
	PhaseDragging
	PhaseDropAnimating
	PhaseDropComplete
)

var phaseNames = [...]string{
	PhaseIdle:          "IDLE",
	PhaseCollecting:    "COLLECTING_DIMENSIONS",
	PhaseDragging:      "DRAGGING",
	PhaseDropAnimating: "DROP_ANIMATING",
	PhaseDropComplete:  "DROP_COMPLETE",
}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "UNKNOWN"
}

// validTransitions is the complete phase graph, no phase may be skipped
var validTransitions = map[Phase][]Phase{
	PhaseIdle:          {PhaseCollecting},
	PhaseCollecting:    {PhaseDragging, PhaseIdle},
	PhaseDragging:      {PhaseDropAnimating},
	PhaseDropAnimating: {PhaseDropComplete},
	PhaseDropComplete:  {PhaseIdle},
}
