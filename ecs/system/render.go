package system

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/getitemanim/ecs"
	"github.com/milk9111/getitemanim/ecs/component"
	"golang.org/x/image/colornames"
)

// screenSpaceLayerBase keeps UI entities above every map layer.
const screenSpaceLayerBase = 1 << 20

type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Update(_ *ecs.World) {}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	r.drawMap(w, screen)

	entities := make([]ecs.Entity, 0)
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, _ *component.Transform, _ *component.Sprite) {
		entities = append(entities, e)
	})
	sort.SliceStable(entities, func(i, j int) bool {
		li, lj := drawLayer(w, entities[i]), drawLayer(w, entities[j])
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		s, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
		if !ok || s.Image == nil {
			continue
		}

		if frame, ok := ecs.Get(w, e, component.WindowFrameComponent.Kind()); ok && frame.Slice != nil {
			frame.Slice.Draw(screen, frame.Width, frame.Height, func(op *ebiten.DrawImageOptions) {
				op.GeoM.Translate(t.X, t.Y)
			})
		}

		img := s.Image
		if s.UseSource {
			if sub, ok := s.Image.SubImage(s.Source).(*ebiten.Image); ok {
				img = sub
			}
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-s.OriginX, -s.OriginY)

		sx := t.ScaleX
		if sx == 0 {
			sx = 1
		}
		sy := t.ScaleY
		if sy == 0 {
			sy = 1
		}
		op.GeoM.Scale(sx, sy)
		op.GeoM.Rotate(t.Rotation)
		op.GeoM.Translate(t.X+s.OffsetX, t.Y+s.OffsetY)

		if o, ok := ecs.Get(w, e, component.OpacityComponent.Kind()); ok {
			op.ColorScale.ScaleAlpha(float32(alpha(o.Value)))
		}

		screen.DrawImage(img, op)
	}
}

func (r *RenderSystem) drawMap(w *ecs.World, screen *ebiten.Image) {
	ent, ok := ecs.First(w, component.MapInfoComponent.Kind())
	if !ok {
		return
	}
	info, ok := ecs.Get(w, ent, component.MapInfoComponent.Kind())
	if !ok {
		return
	}

	floor := orColor(info.Floor, colornames.Darkslategray)
	wall := orColor(info.Wall, colornames.Black)

	mw, mh := info.PixelSize()
	vector.FillRect(screen, 0, 0, float32(mw), float32(mh), floor, false)
	tw, th := float32(info.TileWidth), float32(info.TileHeight)
	for _, cell := range info.Walls {
		x, y := float32(cell[0])*tw, float32(cell[1])*th
		vector.FillRect(screen, x, y, tw, th, wall, false)
		vector.StrokeRect(screen, x+0.5, y+0.5, tw-1, th-1, 1, color.RGBA{A: 96}, false)
	}
}

func drawLayer(w *ecs.World, e ecs.Entity) int {
	layer := 0
	if l, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
		layer = l.Index
	}
	if ecs.Has(w, e, component.ScreenSpaceComponent.Kind()) {
		layer += screenSpaceLayerBase
	}
	return layer
}

// alpha maps a 0-255 opacity to a color scale, clamped.
func alpha(v float64) float64 {
	switch {
	case v <= 0:
		return 0
	case v >= component.FullOpacity:
		return 1
	}
	return v / component.FullOpacity
}

func orColor(c, fallback color.Color) color.Color {
	if c == nil {
		return fallback
	}
	return c
}
