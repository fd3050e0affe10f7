package entity

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/getitemanim/ecs"
	"github.com/milk9111/getitemanim/ecs/component"
	"github.com/milk9111/getitemanim/prefabs"
	"golang.org/x/image/colornames"
)

const (
	playerLayer = 100
	playerMass  = 1.0

	defaultPlayerSpeed = 160.0
	defaultPlayerSize  = 32.0
)

// NewPlayerAt spawns the player with its top-left corner at (x, y).
func NewPlayerAt(w *ecs.World, spec prefabs.PlayerSpec, x, y float64) (ecs.Entity, error) {
	width := orDefault(spec.Width, defaultPlayerSize)
	height := orDefault(spec.Height, defaultPlayerSize)
	speed := orDefault(spec.MoveSpeed, defaultPlayerSpeed)

	body := cp.NewBody(playerMass, cp.INFINITY)
	body.SetPosition(cp.Vector{X: x + width/2, Y: y + height/2})
	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(0)
	shape.SetElasticity(0)

	img := ebiten.NewImage(int(math.Ceil(width)), int(math.Ceil(height)))
	img.Fill(spec.Color.Or(colornames.Goldenrod))
	eye := float32(math.Max(2, width/10))
	vector.FillRect(img, float32(width*0.3)-eye/2, float32(height*0.3), eye, eye*1.5, colornames.Black, false)
	vector.FillRect(img, float32(width*0.7)-eye/2, float32(height*0.3), eye, eye*1.5, colornames.Black, false)

	ent := ecs.CreateEntity(w)
	if err := ecs.Add(w, ent, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add tag: %w", err)
	}
	if err := ecs.Add(w, ent, component.PlayerComponent.Kind(), &component.Player{MoveSpeed: speed, Width: width, Height: height}); err != nil {
		return 0, fmt.Errorf("player: add player: %w", err)
	}
	if err := ecs.Add(w, ent, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}
	if err := ecs.Add(w, ent, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}
	if err := ecs.Add(w, ent, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Body: body, Shape: shape, Width: width, Height: height}); err != nil {
		return 0, fmt.Errorf("player: add body: %w", err)
	}
	if err := ecs.Add(w, ent, component.SpriteComponent.Kind(), &component.Sprite{Image: img}); err != nil {
		return 0, fmt.Errorf("player: add sprite: %w", err)
	}
	if err := ecs.Add(w, ent, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: playerLayer}); err != nil {
		return 0, fmt.Errorf("player: add layer: %w", err)
	}
	return ent, nil
}
