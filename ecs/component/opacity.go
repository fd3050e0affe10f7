package component

// Opacity scales a sprite's alpha. Value is on the 0-255 scale used by the
// parameter files; the render system clamps it.
type Opacity struct {
	Value float64
}

var OpacityComponent = NewComponent[Opacity]()
