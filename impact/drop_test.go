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

func TestNewHomeClientCenter(t *testing.T) {
	dims := dimtest.Map(
		dimtest.Vertical("A", 0, "1", "2", "3"),
		dimtest.Vertical("B", 200, "4", "5"),
		dimtest.Vertical("C", 400),
	)
	homeCenter := func(id string) vmath.Position {
		d, ok := dims.Draggable(id)
		require.True(t, ok)
		return d.Client.WithMargin.Center
	}

	one, _ := dims.Draggable("1")
	three, _ := dims.Draggable("3")

	tests := []struct {
		name  string
		build func() (Impact, string)
		want  vmath.Position
	}{
		{
			name:  "no destination returns home",
			build: func() (Impact, string) { return NoImpact, "1" },
			want:  homeCenter("1"),
		},
		{
			name:  "home without movement",
			build: func() (Impact, string) { return Home("2", dims), "2" },
			want:  homeCenter("2"),
		},
		{
			name: "home beyond start settles on the end of the furthest displaced",
			build: func() (Impact, string) {
				return homeImpactAt(one, mustDroppable(t, dims, "A"), dims.DraggablesInside("A"), 0, 2), "1"
			},
			want: vmath.Position{X: 50, Y: 50},
		},
		{
			name: "home before start settles on the start of the nearest displaced",
			build: func() (Impact, string) {
				return homeImpactAt(three, mustDroppable(t, dims, "A"), dims.DraggablesInside("A"), 2, 0), "3"
			},
			want: vmath.Position{X: 50, Y: 10},
		},
		{
			name: "foreign before an item",
			build: func() (Impact, string) {
				return Get(vmath.Position{X: 250, Y: 25}, dims, "1", Home("1", dims)), "1"
			},
			want: vmath.Position{X: 250, Y: 30},
		},
		{
			name: "foreign append after the last item",
			build: func() (Impact, string) {
				return Get(vmath.Position{X: 250, Y: 90}, dims, "1", Home("1", dims)), "1"
			},
			want: vmath.Position{X: 250, Y: 50},
		},
		{
			name: "foreign empty list",
			build: func() (Impact, string) {
				return Get(vmath.Position{X: 450, Y: 90}, dims, "1", Home("1", dims)), "1"
			},
			want: vmath.Position{X: 450, Y: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			imp, id := tt.build()
			d, ok := dims.Draggable(id)
			require.True(t, ok)
			assert.Equal(t, tt.want, NewHomeClientCenter(imp, d, dims))
		})
	}
}

func TestScrollDiff(t *testing.T) {
	list := dimtest.Vertical("A", 0, "1")
	list.MaxScroll = vmath.Position{Y: 100}
	dims := dimtest.Map(list).WithDroppableScroll("A", vmath.Position{Y: 30})
	droppable := mustDroppable(t, dims, "A")

	got := ScrollDiff(vmath.Position{Y: 10}, vmath.Position{Y: 60}, droppable)
	assert.Equal(t, vmath.Position{Y: -80}, got)
}

func mustDroppable(t *testing.T, dims dimension.Map, id string) geometry.DroppableDimension {
	t.Helper()
	d, ok := dims.Droppable(id)
	require.True(t, ok)
	return d
}
