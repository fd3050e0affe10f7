package notify

import (
	"github.com/milk9111/getitemanim/common"
	"github.com/milk9111/getitemanim/ecs"
	"github.com/milk9111/getitemanim/ecs/component"
)

// PartyGainItem is the inventory mutation for the demo: it adds amount to
// the first party's stack, clamped to [0, MaxItems]. includeEquip only
// matters for removals of equipped gear, which this inventory does not
// track.
func PartyGainItem(w *ecs.World) GainItemFunc {
	return func(item *Item, amount int, _ bool) {
		if item == nil || w == nil {
			return
		}
		ent, ok := ecs.First(w, component.PartyComponent.Kind())
		if !ok {
			return
		}
		party, ok := ecs.Get(w, ent, component.PartyComponent.Kind())
		if !ok {
			return
		}
		if party.Items == nil {
			party.Items = make(map[int]int)
		}
		limit := party.MaxItems
		if limit <= 0 {
			limit = 99
		}
		party.Items[item.ID] = common.Clamp(party.Items[item.ID]+amount, 0, limit)
		if party.Items[item.ID] == 0 {
			delete(party.Items, item.ID)
		}
	}
}
