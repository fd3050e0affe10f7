package entity

import (
	"fmt"

	"github.com/milk9111/getitemanim/ecs"
	"github.com/milk9111/getitemanim/ecs/component"
)

// DefaultMaxItems is the per-item stack limit.
const DefaultMaxItems = 99

func NewParty(w *ecs.World) (ecs.Entity, error) {
	ent := ecs.CreateEntity(w)
	party := &component.Party{Items: make(map[int]int), MaxItems: DefaultMaxItems}
	if err := ecs.Add(w, ent, component.PartyComponent.Kind(), party); err != nil {
		return 0, fmt.Errorf("party: add party: %w", err)
	}
	return ent, nil
}
