package main

import (
	"fmt"
	"image/color"

	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

var controls = []string{
	"Move        WASD / arrows",
	"Open chest  Z / Enter / Space",
	"Animation   T",
	"Close all   C",
	"Random item G",
	"Pause       Esc",
}

// NewPauseUI builds the centered pause panel: a control reference, the
// current animation toggle, and buttons for the runtime commands.
func NewPauseUI(g *Game) *ebitenui.UI {
	// semi-transparent panel background
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnPressed := imageui.NewNineSliceColor(color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 255})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	dim := color.NRGBA{R: 0xbb, G: 0xbb, B: 0xbb, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white}
	center := widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}

	title := widget.NewText(
		widget.TextOpts.Text("Paused", &face, white),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(center)),
	)
	g.pauseStatus = widget.NewText(
		widget.TextOpts.Text(animationLabel(g.notifier.AnimationEnabled()), &face, white),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(center)),
	)

	button := func(label string, clicked func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnPressed}),
			widget.ButtonOpts.Text(label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(center)),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				clicked()
			}),
		)
	}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(8),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(int(g.width/2), int(g.height/2)),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(title)
	for _, line := range controls {
		panel.AddChild(widget.NewText(widget.TextOpts.Text(line, &face, dim)))
	}
	panel.AddChild(g.pauseStatus)
	panel.AddChild(button("Resume", func() {
		g.paused = false
	}))
	panel.AddChild(button("Toggle animation", func() {
		g.toggleAnimation()
		g.refreshPauseUI()
	}))
	panel.AddChild(button("Close notifications", func() {
		g.cancelOverlays()
	}))
	panel.AddChild(button("Quit", func() {
		g.quit = true
	}))

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}

func (g *Game) refreshPauseUI() {
	if g.pauseStatus == nil {
		return
	}
	g.pauseStatus.Label = animationLabel(g.notifier.AnimationEnabled())
}

func animationLabel(on bool) string {
	state := "off"
	if on {
		state = "on"
	}
	return fmt.Sprintf("Pickup animation: %s", state)
}
