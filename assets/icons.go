package assets

import (
	"fmt"
	"image"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// Icon sheet layout.
const (
	IconSize    = 32
	IconColumns = 16
)

var loadIconSheet = sync.OnceValues(func() (*ebiten.Image, error) {
	img, err := LoadImage("icons.png")
	if err != nil {
		return nil, fmt.Errorf("assets: icon sheet: %w", err)
	}
	return img, nil
})

// IconRect returns the sheet rectangle of an icon index.
func IconRect(index int) image.Rectangle {
	if index < 0 {
		index = 0
	}
	x := (index % IconColumns) * IconSize
	y := (index / IconColumns) * IconSize
	return image.Rect(x, y, x+IconSize, y+IconSize)
}

// Icon returns the sub-image for index. Indices past the sheet are an error.
func Icon(index int) (*ebiten.Image, error) {
	sheet, err := loadIconSheet()
	if err != nil {
		return nil, err
	}
	r := IconRect(index)
	if !r.In(sheet.Bounds()) {
		return nil, fmt.Errorf("assets: icon %d outside sheet %v", index, sheet.Bounds())
	}
	return sheet.SubImage(r).(*ebiten.Image), nil
}
