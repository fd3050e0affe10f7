package notify

import (
	"fmt"
	"slices"
	"strings"

	"github.com/milk9111/getitemanim/prefabs"
)

type ItemKind uint8

const (
	KindItem ItemKind = iota
	KindWeapon
	KindArmor
)

func (k ItemKind) String() string {
	switch k {
	case KindWeapon:
		return "weapon"
	case KindArmor:
		return "armor"
	default:
		return "item"
	}
}

func parseItemKind(s string) (ItemKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "item":
		return KindItem, nil
	case "weapon":
		return KindWeapon, nil
	case "armor":
		return KindArmor, nil
	}
	return KindItem, fmt.Errorf("unknown kind %q", s)
}

// Item is an item definition with its pickup override resolved at load time.
type Item struct {
	ID        int
	Name      string
	IconIndex int
	Kind      ItemKind
	Note      string
	Override  ItemOverride
}

// ItemDatabase holds item definitions keyed by id.
type ItemDatabase struct {
	items map[int]*Item
}

func NewItemDatabase(items ...*Item) *ItemDatabase {
	db := &ItemDatabase{items: make(map[int]*Item, len(items))}
	for _, it := range items {
		if it != nil {
			db.items[it.ID] = it
		}
	}
	return db
}

func (db *ItemDatabase) Get(id int) (*Item, bool) {
	if db == nil {
		return nil, false
	}
	it, ok := db.items[id]
	return it, ok
}

func (db *ItemDatabase) Len() int {
	if db == nil {
		return 0
	}
	return len(db.items)
}

// Items returns every item sorted by id.
func (db *ItemDatabase) Items() []*Item {
	if db == nil {
		return nil
	}
	out := make([]*Item, 0, len(db.items))
	for _, it := range db.items {
		out = append(out, it)
	}
	slices.SortFunc(out, func(a, b *Item) int { return a.ID - b.ID })
	return out
}

// ItemsFromSpecs builds the database from the item prefab. Note tags are
// parsed first and the structured pickup block is applied on top.
func ItemsFromSpecs(specs []prefabs.ItemSpec) (*ItemDatabase, error) {
	db := NewItemDatabase()
	for _, s := range specs {
		if _, dup := db.items[s.ID]; dup {
			return nil, fmt.Errorf("items: item %d: duplicate id", s.ID)
		}
		kind, err := parseItemKind(s.Kind)
		if err != nil {
			return nil, fmt.Errorf("items: item %d: %w", s.ID, err)
		}
		override, err := ParseNoteTags(s.Note)
		if err != nil {
			return nil, fmt.Errorf("items: item %d: %w", s.ID, err)
		}
		if s.Pickup != nil {
			override = override.Merge(overrideFromSpec(s.Pickup))
		}
		if err := override.validate(); err != nil {
			return nil, fmt.Errorf("items: item %d: %w", s.ID, err)
		}
		db.items[s.ID] = &Item{
			ID:        s.ID,
			Name:      s.Name,
			IconIndex: s.Icon,
			Kind:      kind,
			Note:      s.Note,
			Override:  override,
		}
	}
	return db, nil
}

// LoadItems reads the item prefab.
func LoadItems() (*ItemDatabase, error) {
	spec, err := prefabs.LoadItemsSpec()
	if err != nil {
		return nil, err
	}
	return ItemsFromSpecs(spec.Items)
}

func overrideFromSpec(p *prefabs.PickupSpec) ItemOverride {
	return ItemOverride{
		Sound:          p.Sound,
		Volume:         p.Volume,
		Pitch:          p.Pitch,
		Pan:            p.Pan,
		ShowName:       p.ShowName,
		ForceAnimation: p.ForceAnimation,
	}
}
