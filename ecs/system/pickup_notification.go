package system

import (
	"github.com/milk9111/getitemanim/ecs"
	"github.com/milk9111/getitemanim/ecs/component"
)

// DefaultTileHeight is used when no map entity exists.
const DefaultTileHeight = 48.0

// PickupNotificationSystem advances every pickup overlay one step per frame
// and destroys overlays closed on an earlier frame.
type PickupNotificationSystem struct{}

func NewPickupNotificationSystem() *PickupNotificationSystem {
	return &PickupNotificationSystem{}
}

// PlayerAnchor returns the player's screen anchor (horizontal center, feet)
// and the map tile height. ok is false when there is no player.
func PlayerAnchor(w *ecs.World) (x, y, tileHeight float64, ok bool) {
	tileHeight = DefaultTileHeight
	if w == nil {
		return 0, 0, tileHeight, false
	}
	if mapEnt, found := ecs.First(w, component.MapInfoComponent.Kind()); found {
		if info, _ := ecs.Get(w, mapEnt, component.MapInfoComponent.Kind()); info != nil && info.TileHeight > 0 {
			tileHeight = info.TileHeight
		}
	}

	player, found := ecs.First(w, component.PlayerTagComponent.Kind())
	if !found {
		return 0, 0, tileHeight, false
	}
	t, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return 0, 0, tileHeight, false
	}
	p, ok := ecs.Get(w, player, component.PlayerComponent.Kind())
	if !ok {
		return t.X, t.Y, tileHeight, true
	}
	return p.ScreenX(t), p.ScreenY(t), tileHeight, true
}

func (s *PickupNotificationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	px, py, tileHeight, anchored := PlayerAnchor(w)

	ecs.ForEach(w, component.PickupNotificationComponent.Kind(), func(e ecs.Entity, n *component.PickupNotification) {
		if n.Closed() {
			ecs.DestroyEntity(w, e)
			return
		}

		// The final step is still drawn; a closed overlay is destroyed on
		// the next update.
		if anchored {
			n.Advance(px, py, tileHeight)
		} else {
			n.Tick()
		}

		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			t.X = n.X
			t.Y = n.Y
		}
		if o, ok := ecs.Get(w, e, component.OpacityComponent.Kind()); ok {
			o.Value = n.Opacity()
		}
	})
}

// CancelPickupNotifications closes every open overlay; they are destroyed on
// the next update. It returns how many were open.
func CancelPickupNotifications(w *ecs.World) int {
	if w == nil {
		return 0
	}
	cancelled := 0
	ecs.ForEach(w, component.PickupNotificationComponent.Kind(), func(_ ecs.Entity, n *component.PickupNotification) {
		if n.Closed() {
			return
		}
		n.Cancel()
		cancelled++
	})
	return cancelled
}

// OpenPickupNotifications counts overlays that are still animating.
func OpenPickupNotifications(w *ecs.World) int {
	open := 0
	ecs.ForEach(w, component.PickupNotificationComponent.Kind(), func(_ ecs.Entity, n *component.PickupNotification) {
		if !n.Closed() {
			open++
		}
	})
	return open
}
