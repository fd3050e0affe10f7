package system

import (
	"testing"

	"github.com/milk9111/getitemanim/ecs"
	"github.com/milk9111/getitemanim/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addPlayer(t *testing.T, w *ecs.World, x, y float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}))
	require.NoError(t, ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}))
	require.NoError(t, ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{Width: 32, Height: 40}))
	return e
}

func addMap(t *testing.T, w *ecs.World, tileHeight float64) {
	t.Helper()
	e := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, e, component.MapInfoComponent.Kind(), &component.MapInfo{TileWidth: tileHeight, TileHeight: tileHeight}))
}

func addOverlay(t *testing.T, w *ecs.World, duration, fadeDelay int, speed float64) ecs.Entity {
	t.Helper()
	n := component.NewPickupNotification(duration, fadeDelay, speed, 100, 70)
	e := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, e, component.PickupNotificationComponent.Kind(), &n))
	require.NoError(t, ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{}))
	require.NoError(t, ecs.Add(w, e, component.OpacityComponent.Kind(), &component.Opacity{Value: component.FullOpacity}))
	return e
}

func TestPlayerAnchor(t *testing.T) {
	w := ecs.NewWorld()

	_, _, tile, ok := PlayerAnchor(w)
	assert.False(t, ok)
	assert.Equal(t, DefaultTileHeight, tile)

	addMap(t, w, 32)
	addPlayer(t, w, 100, 200)

	x, y, tile, ok := PlayerAnchor(w)
	require.True(t, ok)
	assert.Equal(t, 116.0, x)
	assert.Equal(t, 240.0, y)
	assert.Equal(t, 32.0, tile)
}

func TestPickupNotificationSystemLifecycle(t *testing.T) {
	w := ecs.NewWorld()
	addMap(t, w, 48)
	addPlayer(t, w, 84, 260) // anchor (100, 300)
	overlay := addOverlay(t, w, 60, 30, 1)

	sys := NewPickupNotificationSystem()

	sys.Update(w)
	tr, ok := ecs.Get(w, overlay, component.TransformComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, 50.0, tr.X)
	assert.Equal(t, 300-1.5*48, tr.Y, "step 0 sits on the anchor")

	for step := 1; step < 59; step++ {
		sys.Update(w)
		require.True(t, ecs.IsAlive(w, overlay), "step %d", step)

		o, _ := ecs.Get(w, overlay, component.OpacityComponent.Kind())
		if step < 30 {
			assert.Equal(t, component.FullOpacity, o.Value, "step %d", step)
		} else {
			assert.Less(t, o.Value, component.FullOpacity, "step %d", step)
		}
	}

	sys.Update(w)
	require.True(t, ecs.IsAlive(w, overlay), "the final step is drawn")
	n, _ := ecs.Get(w, overlay, component.PickupNotificationComponent.Kind())
	assert.True(t, n.Closed())
	o, _ := ecs.Get(w, overlay, component.OpacityComponent.Kind())
	assert.Zero(t, o.Value)

	sys.Update(w)
	assert.False(t, ecs.IsAlive(w, overlay), "removed on the update after the final step")
}

func TestPickupNotificationSystemFinalFrameTransparent(t *testing.T) {
	tests := []struct {
		name      string
		duration  int
		fadeDelay int
	}{
		{name: "defaults", duration: 60, fadeDelay: 30},
		{name: "single fade frame", duration: 10, fadeDelay: 9},
		{name: "fade from start", duration: 5, fadeDelay: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ecs.NewWorld()
			addPlayer(t, w, 0, 0)
			overlay := addOverlay(t, w, tt.duration, tt.fadeDelay, 1)
			sys := NewPickupNotificationSystem()

			last := component.FullOpacity
			for frame := 1; ecs.IsAlive(w, overlay); frame++ {
				require.LessOrEqual(t, frame, tt.duration+1, "overlay outlived its duration")
				o, _ := ecs.Get(w, overlay, component.OpacityComponent.Kind())
				last = o.Value
				sys.Update(w)
			}
			assert.Zero(t, last, "last rendered opacity")
		})
	}
}

func TestPickupNotificationSystemConcurrent(t *testing.T) {
	w := ecs.NewWorld()
	addPlayer(t, w, 0, 0)
	sys := NewPickupNotificationSystem()

	first := addOverlay(t, w, 10, 5, 1)
	for range 4 {
		sys.Update(w)
	}
	second := addOverlay(t, w, 10, 5, 1)

	for range 6 {
		sys.Update(w)
	}
	a, ok := ecs.Get(w, first, component.PickupNotificationComponent.Kind())
	require.True(t, ok)
	assert.True(t, a.Closed(), "first finished after its own 10 steps")
	assert.Equal(t, 10, a.Step)

	b, ok := ecs.Get(w, second, component.PickupNotificationComponent.Kind())
	require.True(t, ok)
	assert.False(t, b.Closed())
	assert.Equal(t, 6, b.Step)

	for range 4 {
		sys.Update(w)
	}
	assert.False(t, ecs.IsAlive(w, first))
	assert.True(t, b.Closed(), "second finished after its own 10 steps")
	assert.Equal(t, 10, b.Step)

	sys.Update(w)
	assert.False(t, ecs.IsAlive(w, second))
}

func TestPickupNotificationSystemTracksPlayer(t *testing.T) {
	w := ecs.NewWorld()
	player := addPlayer(t, w, 0, 0)
	overlay := addOverlay(t, w, 60, 30, 0)
	sys := NewPickupNotificationSystem()

	sys.Update(w)
	before, _ := ecs.Get(w, overlay, component.TransformComponent.Kind())
	x0 := before.X

	pt, _ := ecs.Get(w, player, component.TransformComponent.Kind())
	pt.X += 40
	sys.Update(w)

	after, _ := ecs.Get(w, overlay, component.TransformComponent.Kind())
	assert.Equal(t, x0+40, after.X)
}

func TestPickupNotificationSystemWithoutPlayer(t *testing.T) {
	w := ecs.NewWorld()
	player := addPlayer(t, w, 0, 0)
	overlay := addOverlay(t, w, 10, 5, 3)
	sys := NewPickupNotificationSystem()

	sys.Update(w)
	tr, _ := ecs.Get(w, overlay, component.TransformComponent.Kind())
	x, y := tr.X, tr.Y

	ecs.DestroyEntity(w, player)
	sys.Update(w)
	sys.Update(w)

	tr, _ = ecs.Get(w, overlay, component.TransformComponent.Kind())
	assert.Equal(t, x, tr.X)
	assert.Equal(t, y, tr.Y)
	n, _ := ecs.Get(w, overlay, component.PickupNotificationComponent.Kind())
	assert.Equal(t, 3, n.Step)
}

func TestCancelPickupNotifications(t *testing.T) {
	w := ecs.NewWorld()
	a := addOverlay(t, w, 60, 30, 1)
	b := addOverlay(t, w, 60, 30, 1)

	assert.Equal(t, 2, OpenPickupNotifications(w))
	assert.Equal(t, 2, CancelPickupNotifications(w))
	assert.Equal(t, 0, CancelPickupNotifications(w), "already closed")
	assert.Equal(t, 0, OpenPickupNotifications(w))

	NewPickupNotificationSystem().Update(w)
	assert.False(t, ecs.IsAlive(w, a))
	assert.False(t, ecs.IsAlive(w, b))
}
