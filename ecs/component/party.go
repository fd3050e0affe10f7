package component

// Party is the inventory the gain-item event mutates.
type Party struct {
	Items    map[int]int
	MaxItems int
}

// NumItems returns how many of an item the party holds.
func (p *Party) NumItems(itemID int) int {
	if p == nil {
		return 0
	}
	return p.Items[itemID]
}

var PartyComponent = NewComponent[Party]()
