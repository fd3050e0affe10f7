package entity

import (
	"fmt"
	"image/color"
	"math"

	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/getitemanim/assets"
	"github.com/milk9111/getitemanim/ecs"
	"github.com/milk9111/getitemanim/ecs/component"
	log "github.com/sirupsen/logrus"
)

// Overlay contents geometry: the icon sits at the origin and the caption
// starts at OverlayTextX, vertically centered in one line.
const (
	OverlayTextX      = 48.0
	OverlayLineHeight = 36.0
	OverlayIconSize   = float64(assets.IconSize)

	pickupNotificationLayer = 1100
	captionOutline          = 2.0
	frameBorder             = 2
)

var (
	frameBody   = color.NRGBA{R: 16, G: 20, B: 40, A: 200}
	frameEdge   = color.NRGBA{R: 220, G: 220, B: 230, A: 255}
	captionFill = color.White
	captionEdge = color.NRGBA{A: 160}
)

// PickupNotificationSpec is everything needed to spawn one overlay. Width,
// Height and Padding come from the caller's layout; the player anchor
// places step 0.
type PickupNotificationSpec struct {
	Caption    string
	IconIndex  int
	FontSize   float64
	ShowWindow bool
	Padding    float64
	Width      float64
	Height     float64

	ContentWidth  int
	ContentHeight int

	Duration  int
	FadeDelay int
	Speed     float64

	PlayerX    float64
	PlayerY    float64
	TileHeight float64
}

func NewPickupNotification(w *ecs.World, spec PickupNotificationSpec) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("pickup notification: nil world")
	}

	state := component.NewPickupNotification(spec.Duration, spec.FadeDelay, spec.Speed, spec.Width, spec.Height)
	if state.Closed() {
		return 0, fmt.Errorf("pickup notification: duration %d must exceed fade delay %d", spec.Duration, spec.FadeDelay)
	}
	state.Place(spec.PlayerX, spec.PlayerY, spec.TileHeight)

	contents := drawContents(spec)

	ent := ecs.CreateEntity(w)
	if err := ecs.Add(w, ent, component.PickupNotificationComponent.Kind(), &state); err != nil {
		return 0, fmt.Errorf("pickup notification: add state: %w", err)
	}
	if err := ecs.Add(w, ent, component.TransformComponent.Kind(), &component.Transform{X: state.X, Y: state.Y, ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("pickup notification: add transform: %w", err)
	}
	if err := ecs.Add(w, ent, component.SpriteComponent.Kind(), &component.Sprite{Image: contents, OffsetX: spec.Padding, OffsetY: spec.Padding}); err != nil {
		return 0, fmt.Errorf("pickup notification: add sprite: %w", err)
	}
	if err := ecs.Add(w, ent, component.OpacityComponent.Kind(), &component.Opacity{Value: component.FullOpacity}); err != nil {
		return 0, fmt.Errorf("pickup notification: add opacity: %w", err)
	}
	if err := ecs.Add(w, ent, component.ScreenSpaceComponent.Kind(), &component.ScreenSpace{}); err != nil {
		return 0, fmt.Errorf("pickup notification: add screen-space: %w", err)
	}
	if err := ecs.Add(w, ent, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: pickupNotificationLayer}); err != nil {
		return 0, fmt.Errorf("pickup notification: add layer: %w", err)
	}
	if spec.ShowWindow {
		frame := &component.WindowFrame{
			Slice:  imageui.NewBorderedNineSliceColor(frameBody, frameEdge, frameBorder),
			Width:  int(math.Ceil(spec.Width)),
			Height: int(math.Ceil(spec.Height)),
		}
		if err := ecs.Add(w, ent, component.WindowFrameComponent.Kind(), frame); err != nil {
			return 0, fmt.Errorf("pickup notification: add window frame: %w", err)
		}
	}

	return ent, nil
}

// fontSource is swapped in tests.
var fontSource = assets.FontSource

// drawContents renders the icon and caption once; only opacity changes
// afterwards. A missing icon or font drops that part, never the overlay.
func drawContents(spec PickupNotificationSpec) *ebiten.Image {
	cw, ch := max(spec.ContentWidth, 1), max(spec.ContentHeight, 1)
	img := ebiten.NewImage(cw, ch)

	if icon, err := assets.Icon(spec.IconIndex); err != nil {
		log.WithFields(log.Fields{"icon": spec.IconIndex}).WithError(err).Warn("pickup notification: icon skipped")
	} else {
		img.DrawImage(icon, &ebiten.DrawImageOptions{})
	}

	if spec.Caption == "" {
		return img
	}
	src, err := fontSource()
	if err != nil {
		log.WithFields(log.Fields{"caption": spec.Caption}).WithError(err).Warn("pickup notification: caption skipped")
		return img
	}
	face := &text.GoTextFace{Source: src, Size: spec.FontSize}
	m := face.Metrics()
	y := (OverlayLineHeight - (m.HAscent + m.HDescent)) / 2

	drawCaption := func(dx, dy float64, clr color.Color) {
		op := &text.DrawOptions{}
		op.GeoM.Translate(OverlayTextX+dx, y+dy)
		op.ColorScale.ScaleWithColor(clr)
		text.Draw(img, spec.Caption, face, op)
	}
	for _, d := range [][2]float64{{-1, -1}, {0, -1}, {1, -1}, {-1, 0}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}} {
		drawCaption(d[0]*captionOutline, d[1]*captionOutline, captionEdge)
	}
	drawCaption(0, 0, captionFill)

	return img
}
