package component

import imageui "github.com/ebitenui/ebitenui/image"

// WindowFrame draws a nine-slice background under an entity's sprite. The
// frame ignores Opacity; only the contents fade.
type WindowFrame struct {
	Slice  *imageui.NineSlice
	Width  int
	Height int
}

var WindowFrameComponent = NewComponent[WindowFrame]()
