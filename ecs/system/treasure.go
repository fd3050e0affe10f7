package system

import (
	"math"

	"github.com/milk9111/getitemanim/ecs"
	"github.com/milk9111/getitemanim/ecs/component"
)

const openedChestOpacity = 96

// GainFunc receives the item id and amount of an opened chest.
type GainFunc func(itemID, amount int)

// TreasureSystem opens the nearest chest within reach when the player
// presses action.
type TreasureSystem struct {
	gain GainFunc
}

func NewTreasureSystem(gain GainFunc) *TreasureSystem {
	return &TreasureSystem{gain: gain}
}

func (s *TreasureSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	in, ok := ecs.Get(w, player, component.InputComponent.Kind())
	if !ok || !in.ActionPressed {
		return
	}
	px, py, ok := entityCenter(w, player)
	if !ok {
		return
	}

	var (
		nearest     ecs.Entity
		nearestDist = math.Inf(1)
	)
	ecs.ForEach2(w, component.TreasureComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, tr *component.Treasure, _ *component.Transform) {
		if tr.Opened {
			return
		}
		cx, cy, ok := entityCenter(w, e)
		if !ok {
			return
		}
		d := math.Hypot(cx-px, cy-py)
		if d <= tr.Reach && d < nearestDist {
			nearest, nearestDist = e, d
		}
	})
	if !nearest.Valid() {
		return
	}

	tr, _ := ecs.Get(w, nearest, component.TreasureComponent.Kind())
	tr.Opened = true
	if o, ok := ecs.Get(w, nearest, component.OpacityComponent.Kind()); ok {
		o.Value = openedChestOpacity
	}
	if s.gain != nil {
		s.gain(tr.ItemID, tr.Amount)
	}
}

// entityCenter is the middle of an entity's sprite, or its transform origin
// when it has no image.
func entityCenter(w *ecs.World, e ecs.Entity) (float64, float64, bool) {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return 0, 0, false
	}
	if pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok {
		return t.X + pb.Width/2, t.Y + pb.Height/2, true
	}
	if s, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok && s.Image != nil {
		b := s.Image.Bounds()
		return t.X + float64(b.Dx())/2, t.Y + float64(b.Dy())/2, true
	}
	return t.X, t.Y, true
}
