package autoscroll

import (
	"math"
	"time"

	"github.com/lixenwraith/dragboard/geometry"
	"github.com/lixenwraith/dragboard/vmath"
)

func ease(percentage float64) float64 {
	return percentage * percentage
}

// percentage of current between start and end, clamped to [0, 1]
func percentage(start, end, current float64) float64 {
	if end == start {
		return 1
	}
	return math.Min(1, math.Max(0, (current-start)/(end-start)))
}

// Speed returns the scroll step for a center distance from a container edge
// Zero beyond the start threshold, at least 1 inside it, growing as the distance
// shrinks and capped at MaxSpeed. elapsed is the drag duration used for dampening
func (c Config) Speed(distance, containerSize float64, elapsed time.Duration) float64 {
	startFrom := containerSize * c.StartFrom
	maxSpeedAt := containerSize * c.MaxSpeedAt

	if distance > startFrom {
		return 0
	}

	var speed float64
	if distance <= maxSpeedAt {
		speed = c.MaxSpeed
	} else {
		fromStart := 1 - percentage(maxSpeedAt, startFrom, distance)
		speed = math.Ceil(c.MaxSpeed * ease(fromStart))
	}
	speed = math.Min(math.Max(speed, minSpeed), c.MaxSpeed)
	return c.dampen(speed, elapsed)
}

// dampen holds speed at minimum early in a drag so a lift near an edge does not jerk
func (c Config) dampen(speed float64, elapsed time.Duration) float64 {
	if elapsed >= c.StopDampeningAt {
		return speed
	}
	if elapsed < c.AccelerateAt {
		return minSpeed
	}
	ramp := percentage(float64(c.AccelerateAt), float64(c.StopDampeningAt), float64(elapsed))
	return math.Max(math.Ceil(speed*ease(ramp)), minSpeed)
}

// axisChange is positive when scrolling toward the end edge, negative toward the start
func (c Config) axisChange(center, start, end float64, elapsed time.Duration) float64 {
	size := end - start
	if size <= 0 {
		return 0
	}
	toStart := center - start
	toEnd := end - center
	if toEnd <= toStart {
		return c.Speed(toEnd, size, elapsed)
	}
	return -c.Speed(toStart, size, elapsed)
}

// Change returns the per-axis scroll step for a center inside a container frame
// A center outside the frame never scrolls it
func (c Config) Change(frame geometry.Fragment, center vmath.Position, elapsed time.Duration) vmath.Position {
	if !frame.Contains(center) {
		return vmath.Origin
	}
	return vmath.Position{
		X: c.axisChange(center.X, frame.Left, frame.Right, elapsed),
		Y: c.axisChange(center.Y, frame.Top, frame.Bottom, elapsed),
	}
}

// JumpChange returns the scroll needed to bring subject fully inside frame
// When subject is larger than frame its start edge wins
func JumpChange(subject, frame geometry.Fragment) vmath.Position {
	return vmath.Position{
		X: overflow(subject.Left, subject.Right, frame.Left, frame.Right),
		Y: overflow(subject.Top, subject.Bottom, frame.Top, frame.Bottom),
	}
}

func overflow(subjectStart, subjectEnd, frameStart, frameEnd float64) float64 {
	if subjectStart < frameStart {
		return subjectStart - frameStart
	}
	if subjectEnd > frameEnd {
		return math.Min(subjectEnd-frameEnd, subjectStart-frameStart)
	}
	return 0
}

// clampChange limits change so current+change stays within [0, limit]
func clampChange(change, current, limit vmath.Position) vmath.Position {
	target := vmath.Clamp(vmath.Add(current, change), vmath.Origin, limit)
	return vmath.Subtract(target, current)
}
