package entity

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/getitemanim/assets"
	"github.com/milk9111/getitemanim/ecs"
	"github.com/milk9111/getitemanim/ecs/component"
)

const (
	hintLayer    = 1200
	hintFontSize = 16.0
	hintPad      = 6.0
)

var hintBackground = color.NRGBA{A: 170}

// NewHint shows a short status line in the top-left corner for frames ticks.
func NewHint(w *ecs.World, msg string, frames int) (ecs.Entity, error) {
	src, err := assets.FontSource()
	if err != nil {
		return 0, fmt.Errorf("hint: %w", err)
	}
	face := &text.GoTextFace{Source: src, Size: hintFontSize}
	tw, th := text.Measure(msg, face, 0)
	img := ebiten.NewImage(int(math.Ceil(tw+2*hintPad)), int(math.Ceil(th+2*hintPad)))
	img.Fill(hintBackground)
	op := &text.DrawOptions{}
	op.GeoM.Translate(hintPad, hintPad)
	text.Draw(img, msg, face, op)

	// A new hint replaces the current one.
	ecs.ForEach(w, component.HintTagComponent.Kind(), func(e ecs.Entity, _ *component.HintTag) {
		ecs.DestroyEntity(w, e)
	})

	ent := ecs.CreateEntity(w)
	if err := ecs.Add(w, ent, component.TransformComponent.Kind(), &component.Transform{X: 8, Y: 8, ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("hint: add transform: %w", err)
	}
	if err := ecs.Add(w, ent, component.SpriteComponent.Kind(), &component.Sprite{Image: img}); err != nil {
		return 0, fmt.Errorf("hint: add sprite: %w", err)
	}
	if err := ecs.Add(w, ent, component.ScreenSpaceComponent.Kind(), &component.ScreenSpace{}); err != nil {
		return 0, fmt.Errorf("hint: add screen-space: %w", err)
	}
	if err := ecs.Add(w, ent, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: hintLayer}); err != nil {
		return 0, fmt.Errorf("hint: add layer: %w", err)
	}
	if err := ecs.Add(w, ent, component.TTLComponent.Kind(), &component.TTL{Frames: frames}); err != nil {
		return 0, fmt.Errorf("hint: add ttl: %w", err)
	}
	if err := ecs.Add(w, ent, component.HintTagComponent.Kind(), &component.HintTag{}); err != nil {
		return 0, fmt.Errorf("hint: add tag: %w", err)
	}
	return ent, nil
}
