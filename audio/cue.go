package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/dragboard/parameter"
)

// Cue names a drag feedback sound
type Cue int

const (
	CueLift Cue = iota
	CueMove
	CueDrop
	CueCancel
)

func (c Cue) String() string {
	switch c {
	case CueLift:
		return "lift"
	case CueMove:
		return "move"
	case CueDrop:
		return "drop"
	case CueCancel:
		return "cancel"
	}
	return "unknown"
}

// tone is one shaped note of a cue
type tone struct {
	freq     float64
	duration time.Duration
	wave     WaveType
}

var cueTones = map[Cue][]tone{
	CueLift:   {{freq: 660, duration: parameter.CueLiftDuration, wave: WaveSine}},
	CueMove:   {{freq: 1320, duration: parameter.CueMoveDuration, wave: WaveSine}},
	CueDrop:   {{freq: 880, duration: parameter.CueDropDuration / 2, wave: WaveSine}, {freq: 1175, duration: parameter.CueDropDuration / 2, wave: WaveSine}},
	CueCancel: {{freq: 110, duration: parameter.CueCancelDuration, wave: WaveSaw}},
}

// Render builds the streamer for a cue at volume (0..1)
// Notes of a cue play back to back
func Render(c Cue, volume float64, rate beep.SampleRate) beep.Streamer {
	tones := cueTones[c]
	notes := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		osc := NewOscillator(t.freq, t.duration, t.wave, rate)
		release := min(parameter.CueRelease, t.duration/2)
		notes = append(notes, NewEnvelope(osc, t.duration, parameter.CueAttack, release, rate))
	}
	return newVolume(beep.Seq(notes...), volume)
}

// Duration is the total length of a cue
func Duration(c Cue) time.Duration {
	var d time.Duration
	for _, t := range cueTones[c] {
		d += t.duration
	}
	return d
}
