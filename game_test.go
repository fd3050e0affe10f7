package main

import (
	"testing"

	"github.com/milk9111/getitemanim/ecs"
	"github.com/milk9111/getitemanim/ecs/component"
	"github.com/milk9111/getitemanim/ecs/entity"
	"github.com/milk9111/getitemanim/ecs/system"
	"github.com/milk9111/getitemanim/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stateOnlyOverlay(w *ecs.World, spec entity.PickupNotificationSpec) (ecs.Entity, error) {
	n := component.NewPickupNotification(spec.Duration, spec.FadeDelay, spec.Speed, spec.Width, spec.Height)
	e := ecs.CreateEntity(w)
	return e, ecs.Add(w, e, component.PickupNotificationComponent.Kind(), &n)
}

func newTestGame(t *testing.T) (*Game, *component.Input) {
	t.Helper()
	w := ecs.NewWorld()

	player := ecs.CreateEntity(w)
	in := &component.Input{}
	require.NoError(t, ecs.Add(w, player, component.PlayerTagComponent.Kind(), &component.PlayerTag{}))
	require.NoError(t, ecs.Add(w, player, component.PlayerComponent.Kind(), &component.Player{Width: 32, Height: 40}))
	require.NoError(t, ecs.Add(w, player, component.TransformComponent.Kind(), &component.Transform{X: 84, Y: 260}))
	require.NoError(t, ecs.Add(w, player, component.InputComponent.Kind(), in))

	cfg := notify.DefaultConfig()
	cfg.SoundEnabled = false
	cfg.AnimationEnabled = true
	n := notify.New(w, cfg, notify.WithOverlayBuilder(stateOnlyOverlay))
	w.AddSystem(system.NewPickupNotificationSystem())

	return &Game{
		world:    w,
		notifier: n,
		gain:     n.Wrap(notify.PartyGainItem(w)),
		items:    notify.NewItemDatabase(&notify.Item{ID: 1, Name: "Potion", IconIndex: 5}),
	}, in
}

func TestRandomGainAdvancesInSameFrame(t *testing.T) {
	g, in := newTestGame(t)

	in.RandomPressed = true
	g.step()

	var overlays []*component.PickupNotification
	ecs.ForEach(g.world, component.PickupNotificationComponent.Kind(), func(_ ecs.Entity, n *component.PickupNotification) {
		overlays = append(overlays, n)
	})
	require.Len(t, overlays, 1)
	assert.Equal(t, 1, overlays[0].Step, "step 0 is drawn on the spawning frame only")
}

func TestStepWithoutCommandsSpawnsNothing(t *testing.T) {
	g, _ := newTestGame(t)

	g.step()
	assert.Zero(t, ecs.Count(g.world, component.PickupNotificationComponent.Kind()))
}
