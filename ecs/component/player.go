package component

type Player struct {
	MoveSpeed float64
	// Width/Height of the player's footprint; ScreenX/ScreenY derive from it.
	Width  float64
	Height float64
}

// ScreenX is the horizontal center of the player's footprint.
func (p *Player) ScreenX(t *Transform) float64 {
	if p == nil || t == nil {
		return 0
	}
	return t.X + p.Width/2
}

// ScreenY is the bottom edge of the player's footprint.
func (p *Player) ScreenY(t *Transform) float64 {
	if p == nil || t == nil {
		return 0
	}
	return t.Y + p.Height
}

var PlayerComponent = NewComponent[Player]()
