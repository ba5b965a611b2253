package parameter

import "time"

// Audio cues
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// CueLiftDuration is the length of the pick-up blip
	CueLiftDuration = 60 * time.Millisecond

	// CueMoveDuration is the length of the keyboard step tick
	CueMoveDuration = 25 * time.Millisecond

	// CueDropDuration is the length of the two-note settle chime
	CueDropDuration = 140 * time.Millisecond

	// CueCancelDuration is the length of the low buzz on cancel
	CueCancelDuration = 120 * time.Millisecond

	// CueAttack and CueRelease shape every cue to avoid clicks
	CueAttack  = 5 * time.Millisecond
	CueRelease = 30 * time.Millisecond
)
