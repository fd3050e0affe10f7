package component

import "image/color"

// MapInfo describes the tile grid the player walks on.
type MapInfo struct {
	Name       string
	TileWidth  float64
	TileHeight float64
	Cols       int
	Rows       int
	Floor      color.Color
	Wall       color.Color
	Walls      [][2]int
}

func (m *MapInfo) PixelSize() (float64, float64) {
	if m == nil {
		return 0, 0
	}
	return float64(m.Cols) * m.TileWidth, float64(m.Rows) * m.TileHeight
}

var MapInfoComponent = NewComponent[MapInfo]()
