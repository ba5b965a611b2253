package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/dragboard/board"
	"github.com/lixenwraith/dragboard/engine"
	"github.com/lixenwraith/dragboard/geometry"
	"github.com/lixenwraith/dragboard/impact"
	"github.com/lixenwraith/dragboard/status"
	"github.com/lixenwraith/dragboard/vmath"
)

const helpText = "space lift  arrows move  enter drop  esc cancel  q quit"

var (
	styleList     = tcell.StyleDefault.Background(tcell.NewRGBColor(24, 24, 32))
	styleTitle    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleItem     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkSlateGray)
	styleFocused  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	styleDragged  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkGreen).Bold(true)
	styleDisabled = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
)

// renderer paints the board, the live drag and the status line
type renderer struct {
	screen  tcell.Screen
	board   *board.Board
	engine  *engine.Engine
	metrics *status.Registry
}

func newRenderer(screen tcell.Screen, b *board.Board, eng *engine.Engine, metrics *status.Registry) *renderer {
	return &renderer{screen: screen, board: b, engine: eng, metrics: metrics}
}

func (r *renderer) draw() {
	r.screen.Clear()
	width, height := r.screen.Size()

	state := r.engine.State()
	drag, dragging := engine.DragOf(state)
	offset := drag.Current.Client.Offset
	if animating, ok := state.(engine.DropAnimating); ok {
		offset = animating.Pending.NewHomeOffset
	}

	var dragged *board.ItemView
	for _, l := range r.board.Snapshot() {
		r.fill(l.Frame, l.Frame, styleList)
		title := l.Title
		titleStyle := styleTitle
		if l.Disabled {
			titleStyle = styleDisabled
		}
		r.text(cell(l.Frame.Left)+1, cell(l.Frame.Top)-1, title, titleStyle, width)

		for _, it := range l.Items {
			if dragging && it.ID == drag.Current.ID {
				view := it
				dragged = &view
				continue
			}
			frame := it.Frame
			if dragging {
				frame = frame.Shift(displacement(drag.Impact, it.ID))
			}
			style := styleItem
			if it.Focused {
				style = styleFocused
			}
			r.item(frame, l.Frame, it.Label, style)
		}
	}

	// Dragged item floats above every list
	if dragged != nil {
		screen := geometry.FragmentAt(0, 0, float64(width), float64(height-1))
		r.item(dragged.Frame.Shift(offset), screen, dragged.Label, styleDragged)
	}

	r.statusLine(width, height)
	r.screen.Show()
}

// displacement is how far a non-dragged item is pushed aside by the impact
func displacement(imp impact.Impact, id geometry.DraggableID) vmath.Position {
	if imp.Movement.Contains(id) {
		return imp.Movement.Displacement()
	}
	if imp.Departure.Contains(id) {
		return imp.Departure.Displacement()
	}
	return vmath.Origin
}

// item fills all but the last row of the item frame and writes the label on the first
func (r *renderer) item(frame, clip geometry.Fragment, label string, style tcell.Style) {
	body := geometry.FragmentAt(frame.Left+1, frame.Top, math.Max(0, frame.Width-2), math.Max(1, frame.Height-1))
	r.fill(body, clip, style)

	y := cell(body.Top)
	if float64(y) < clip.Top || float64(y) >= clip.Bottom {
		return
	}
	left := max(cell(body.Left)+1, cell(clip.Left))
	right := min(cell(body.Right)-1, cell(clip.Right))
	r.text(left, y, label, style, right)
}

// fill paints the cells of f that fall inside clip
func (r *renderer) fill(f, clip geometry.Fragment, style tcell.Style) {
	top := max(cell(f.Top), cell(clip.Top))
	bottom := min(cell(f.Bottom), cell(clip.Bottom))
	left := max(cell(f.Left), cell(clip.Left))
	right := min(cell(f.Right), cell(clip.Right))
	for y := top; y < bottom; y++ {
		for x := left; x < right; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// text writes s from x, stopping before limit
func (r *renderer) text(x, y int, s string, style tcell.Style, limit int) {
	if y < 0 {
		return
	}
	for _, ch := range s {
		if x >= limit {
			return
		}
		if x >= 0 {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x++
	}
}

// statusLine shows the headline metrics on the left and key help on the right when it fits
func (r *renderer) statusLine(width, height int) {
	y := height - 1
	for x := 0; x < width; x++ {
		r.screen.SetContent(x, y, ' ', nil, styleStatus)
	}
	m := r.metrics
	line := fmt.Sprintf(" %s  dest %d  lifts %d  drops %d  cancels %d  scroll %.1f/%.1f",
		phaseName(m),
		intMetric(m, status.KeyDestinationIndex),
		intMetric(m, status.KeyLifts),
		intMetric(m, status.KeyDrops),
		intMetric(m, status.KeyCancels),
		floatMetric(m, status.KeyScrollSpeed),
		floatMetric(m, status.KeyScrollPeakSpeed),
	)
	r.text(0, y, line, styleStatus, width)
	if help := width - len(helpText) - 1; help > len(line)+1 {
		r.text(help, y, helpText, styleStatus, width)
	}
}

// Readers look metrics up so drawing never registers new ones

func phaseName(m *status.Registry) string {
	if v, ok := m.Strings.Lookup(status.KeyPhase); ok {
		return v.Load()
	}
	return "-"
}

func intMetric(m *status.Registry, key string) int64 {
	if v, ok := m.Ints.Lookup(key); ok {
		return v.Load()
	}
	return 0
}

func floatMetric(m *status.Registry, key string) float64 {
	if v, ok := m.Floats.Lookup(key); ok {
		return v.Get()
	}
	return 0
}

// cell rounds a layout coordinate to the terminal grid
func cell(v float64) int {
	return int(math.Floor(v))
}
