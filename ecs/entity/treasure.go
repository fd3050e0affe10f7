package entity

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/getitemanim/ecs"
	"github.com/milk9111/getitemanim/ecs/component"
	"github.com/milk9111/getitemanim/prefabs"
	"golang.org/x/image/colornames"
)

const treasureLayer = 50

// NewTreasureAt spawns a chest filling one tile with its top-left at (x, y).
func NewTreasureAt(w *ecs.World, spec prefabs.TreasureSpec, x, y, tileWidth, tileHeight float64) (ecs.Entity, error) {
	amount := spec.Amount
	if amount == 0 {
		amount = 1
	}
	reach := spec.Reach
	if reach <= 0 {
		reach = 1.25 * max(tileWidth, tileHeight)
	}

	tw, th := float32(tileWidth), float32(tileHeight)
	img := ebiten.NewImage(int(tileWidth), int(tileHeight))
	vector.FillRect(img, tw*0.1, th*0.25, tw*0.8, th*0.6, spec.Color.Or(colornames.Saddlebrown), false)
	vector.StrokeRect(img, tw*0.1, th*0.25, tw*0.8, th*0.6, 2, colornames.Black, false)
	vector.FillRect(img, tw*0.1, th*0.45, tw*0.8, th*0.08, colornames.Gold, false)
	vector.FillRect(img, tw*0.45, th*0.4, tw*0.1, th*0.18, colornames.Gold, false)

	ent := ecs.CreateEntity(w)
	if err := ecs.Add(w, ent, component.TreasureComponent.Kind(), &component.Treasure{ItemID: spec.Item, Amount: amount, Reach: reach}); err != nil {
		return 0, fmt.Errorf("treasure: add treasure: %w", err)
	}
	if err := ecs.Add(w, ent, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("treasure: add transform: %w", err)
	}
	if err := ecs.Add(w, ent, component.SpriteComponent.Kind(), &component.Sprite{Image: img}); err != nil {
		return 0, fmt.Errorf("treasure: add sprite: %w", err)
	}
	if err := ecs.Add(w, ent, component.OpacityComponent.Kind(), &component.Opacity{Value: component.FullOpacity}); err != nil {
		return 0, fmt.Errorf("treasure: add opacity: %w", err)
	}
	if err := ecs.Add(w, ent, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: treasureLayer}); err != nil {
		return 0, fmt.Errorf("treasure: add layer: %w", err)
	}
	return ent, nil
}
