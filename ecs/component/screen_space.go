package component

// ScreenSpace marks UI entities drawn above the map regardless of their
// render layer.
type ScreenSpace struct{}

var ScreenSpaceComponent = NewComponent[ScreenSpace]()
