package component

// Treasure is a chest on the map that grants an item once.
type Treasure struct {
	ItemID int
	Amount int
	Opened bool
	// Reach is how close (in pixels, center to center) the player must be.
	Reach float64
}

var TreasureComponent = NewComponent[Treasure]()
