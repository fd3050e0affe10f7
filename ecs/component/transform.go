package component

// Transform is a screen-space position for this runtime: the map is drawn
// without a camera, so world and screen coordinates coincide.
type Transform struct {
	X        float64
	Y        float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()
