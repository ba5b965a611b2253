package impact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/dragboard/dimension"
	"github.com/lixenwraith/dragboard/dimension/dimtest"
	"github.com/lixenwraith/dragboard/geometry"
	"github.com/lixenwraith/dragboard/vmath"
)

// Items are 100x20, so centers of A sit at y = 10, 30, 50
func boardAB() dimension.Map {
	return dimtest.Map(
		dimtest.Vertical("A", 0, "1", "2", "3"),
		dimtest.Vertical("B", 200),
	)
}

func centerOf(t *testing.T, dims dimension.Map, id string) vmath.Position {
	t.Helper()
	d, ok := dims.Draggable(id)
	require.True(t, ok)
	return d.Page.WithoutMargin.Center
}

func TestHomeImpact(t *testing.T) {
	dims := boardAB()
	imp := Home("2", dims)

	require.NotNil(t, imp.Destination)
	assert.Equal(t, Location{DroppableID: "A", Index: 1}, *imp.Destination)
	assert.Empty(t, imp.Movement.Draggables)
	assert.Equal(t, geometry.Vertical, imp.Direction)
	assert.Equal(t, NoImpact, Home("missing", dims))
}

func TestGetWithoutMovementIsHome(t *testing.T) {
	dims := boardAB()
	for _, id := range []string{"1", "2", "3"} {
		home := Home(id, dims)
		got := Get(centerOf(t, dims, id), dims, id, home)
		assert.Equal(t, home, got, "draggable %s", id)
		assert.Empty(t, got.Movement.Draggables)
	}
}

func TestGetSmallMovementWithinMidpoints(t *testing.T) {
	dims := boardAB()
	home := Home("2", dims)

	// Up to but not past the neighbours' midpoints
	for _, y := range []float64{10.5, 20, 29, 49.9} {
		got := Get(vmath.Position{X: 50, Y: y}, dims, "2", home)
		assert.Equal(t, home.Destination, got.Destination, "y=%v", y)
		assert.Empty(t, got.Movement.Draggables, "y=%v", y)
	}
}

func TestGetForwardInHomeList(t *testing.T) {
	dims := boardAB()
	home := Home("1", dims)

	got := Get(vmath.Position{X: 50, Y: 35}, dims, "1", home)
	require.NotNil(t, got.Destination)
	assert.Equal(t, Location{DroppableID: "A", Index: 1}, *got.Destination)
	assert.Equal(t, []string{"2"}, got.Movement.Draggables)
	assert.True(t, got.Movement.IsBeyondStartPosition)
	assert.Equal(t, vmath.Position{Y: 20}, got.Movement.Amount)
	assert.Equal(t, vmath.Position{Y: -20}, got.Movement.Displacement())

	got = Get(vmath.Position{X: 50, Y: 90}, dims, "1", got)
	assert.Equal(t, 2, got.Destination.Index)
	assert.Equal(t, []string{"2", "3"}, got.Movement.Draggables)
}

func TestGetBackwardInHomeList(t *testing.T) {
	dims := boardAB()
	home := Home("3", dims)

	got := Get(vmath.Position{X: 50, Y: 25}, dims, "3", home)
	assert.Equal(t, 1, got.Destination.Index)
	assert.Equal(t, []string{"2"}, got.Movement.Draggables)
	assert.False(t, got.Movement.IsBeyondStartPosition)
	assert.Equal(t, vmath.Position{Y: 20}, got.Movement.Displacement())

	got = Get(vmath.Position{X: 50, Y: 1}, dims, "3", got)
	assert.Equal(t, 0, got.Destination.Index)
	assert.Equal(t, []string{"1", "2"}, got.Movement.Draggables, "nearest start first")
}

func TestGetMoveBetweenLists(t *testing.T) {
	dims := boardAB()
	home := Home("2", dims)

	got := Get(vmath.Position{X: 250, Y: 40}, dims, "2", home)
	require.NotNil(t, got.Destination)
	assert.Equal(t, Location{DroppableID: "B", Index: 0}, *got.Destination)
	assert.Empty(t, got.Movement.Draggables)
	assert.False(t, got.Movement.IsBeyondStartPosition)

	// The home list closes up behind the departed item
	assert.Equal(t, []string{"3"}, got.Departure.Draggables)
	assert.True(t, got.Departure.IsBeyondStartPosition)
	assert.Equal(t, vmath.Position{Y: -20}, got.Departure.Displacement())
}

func TestGetIntoPopulatedForeignList(t *testing.T) {
	dims := dimtest.Map(
		dimtest.Vertical("A", 0, "1", "2", "3"),
		dimtest.Vertical("B", 200, "4", "5", "6"),
	)
	home := Home("1", dims)

	got := Get(vmath.Position{X: 250, Y: 35}, dims, "1", home)
	assert.Equal(t, Location{DroppableID: "B", Index: 2}, *got.Destination)
	assert.Equal(t, []string{"6"}, got.Movement.Draggables)
	assert.Equal(t, []string{"2", "3"}, got.Departure.Draggables)

	got = Get(vmath.Position{X: 250, Y: 0}, dims, "1", got)
	assert.Equal(t, 0, got.Destination.Index)
	assert.Equal(t, []string{"4", "5", "6"}, got.Movement.Draggables)

	// Past every item appends
	got = Get(vmath.Position{X: 250, Y: 99}, dims, "1", got)
	assert.Equal(t, 3, got.Destination.Index)
	assert.Empty(t, got.Movement.Draggables)
}

func TestGetIndexAlwaysInRange(t *testing.T) {
	dims := dimtest.Map(
		dimtest.Vertical("A", 0, "1", "2", "3"),
		dimtest.Vertical("B", 200, "4", "5"),
	)
	prev := Home("2", dims)
	for x := -20.0; x <= 320; x += 7 {
		for y := -20.0; y <= 120; y += 3 {
			got := Get(vmath.Position{X: x, Y: y}, dims, "2", prev)
			require.NotNil(t, got.Destination)
			count := len(dims.DraggablesInside(got.Destination.DroppableID))
			assert.GreaterOrEqual(t, got.Destination.Index, 0)
			assert.LessOrEqual(t, got.Destination.Index, count)
			prev = got
		}
	}
}

func TestGetStickyTarget(t *testing.T) {
	dims := boardAB()
	overB := Get(vmath.Position{X: 250, Y: 40}, dims, "2", Home("2", dims))

	outside := Get(vmath.Position{X: 1000, Y: 1000}, dims, "2", overB)
	require.NotNil(t, outside.Destination)
	assert.Equal(t, "B", outside.Destination.DroppableID)

	// Never entered any droppable
	assert.Equal(t, NoImpact, Get(vmath.Position{X: 1000, Y: 1000}, dims, "2", NoImpact))
}

func TestDroppableAtOverlap(t *testing.T) {
	outer := dimtest.Vertical("outer", 0)
	outer.ItemCross = 300
	outer.MinMain = 300
	inner := dimtest.Vertical("inner", 0)
	twin := dimtest.Vertical("a-twin", 0)
	dims := dimtest.Map(outer, inner)

	d, ok := DroppableAt(vmath.Position{X: 10, Y: 10}, dims)
	require.True(t, ok)
	assert.Equal(t, "inner", d.ID, "smallest area wins")

	d, ok = DroppableAt(vmath.Position{X: 200, Y: 200}, dims)
	require.True(t, ok)
	assert.Equal(t, "outer", d.ID)

	dims = dimtest.Map(outer, inner, twin)
	d, _ = DroppableAt(vmath.Position{X: 10, Y: 10}, dims)
	assert.Equal(t, "a-twin", d.ID, "equal areas resolve to smallest id")

	_, ok = DroppableAt(vmath.Position{X: -5, Y: -5}, dims)
	assert.False(t, ok)
}

func TestDisabledDroppableIsNeverTargeted(t *testing.T) {
	b := dimtest.Vertical("B", 200)
	b.Disabled = true
	dims := dimtest.Map(dimtest.Vertical("A", 0, "1", "2"), b)

	got := Get(vmath.Position{X: 250, Y: 10}, dims, "1", Home("1", dims))
	assert.Equal(t, "A", got.Destination.DroppableID)
}

func TestGetSkipsOrphanDraggables(t *testing.T) {
	list := dimtest.Vertical("A", 0, "1", "2")
	orphan := geometry.NewDraggableDimension(geometry.DraggableArgs{
		ID:          "orphan",
		DroppableID: "ghost",
		Client:      geometry.Rect{Top: 40, Left: 0, Right: 100, Bottom: 60},
	})
	dims := dimension.NewMap(
		[]geometry.DroppableDimension{list.Droppable(vmath.Origin)},
		append(list.Draggables(vmath.Origin), orphan),
	)

	got := Get(vmath.Position{X: 50, Y: 95}, dims, "1", Home("1", dims))
	assert.Equal(t, []string{"2"}, got.Movement.Draggables)
	assert.Equal(t, 1, got.Destination.Index)

	// Dragging the orphan itself still finds a destination, with no departure
	got = Get(vmath.Position{X: 50, Y: 15}, dims, "orphan", NoImpact)
	require.NotNil(t, got.Destination)
	assert.Equal(t, Location{DroppableID: "A", Index: 1}, *got.Destination)
	assert.Empty(t, got.Departure.Draggables)
}

func TestGetAccountsForDroppableScroll(t *testing.T) {
	list := dimtest.Vertical("A", 0, "1", "2", "3")
	list.MaxScroll = vmath.Position{Y: 100}
	dims := dimtest.Map(list).WithDroppableScroll("A", vmath.Position{Y: 20})

	// Page center 15 is 35 inside the scrolled list, past item 2's midpoint
	got := Get(vmath.Position{X: 50, Y: 15}, dims, "1", Home("1", dims))
	assert.Equal(t, 1, got.Destination.Index)
	assert.Equal(t, []string{"2"}, got.Movement.Draggables)
}

func TestMovementContains(t *testing.T) {
	m := Movement{Draggables: []string{"a", "b"}}
	assert.True(t, m.Contains("b"))
	assert.False(t, m.Contains("c"))
}
