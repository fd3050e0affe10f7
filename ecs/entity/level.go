package entity

import (
	"fmt"

	"github.com/milk9111/getitemanim/ecs"
	"github.com/milk9111/getitemanim/ecs/component"
	"github.com/milk9111/getitemanim/prefabs"
)

// NewMap creates the map entity: tile size, colors and wall cells.
func NewMap(w *ecs.World, spec *prefabs.MapSpec) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("map: nil spec")
	}
	cols, rows := spec.Size()
	info := &component.MapInfo{
		Name:       spec.Name,
		TileWidth:  spec.TileWidth,
		TileHeight: spec.TileHeight,
		Cols:       cols,
		Rows:       rows,
		Floor:      spec.Floor.Or(nil),
		Wall:       spec.Wall.Or(nil),
	}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if spec.Cell(col, row) == '#' {
				info.Walls = append(info.Walls, [2]int{col, row})
			}
		}
	}

	ent := ecs.CreateEntity(w)
	if err := ecs.Add(w, ent, component.MapTagComponent.Kind(), &component.MapTag{}); err != nil {
		return 0, fmt.Errorf("map: add tag: %w", err)
	}
	if err := ecs.Add(w, ent, component.MapInfoComponent.Kind(), info); err != nil {
		return 0, fmt.Errorf("map: add info: %w", err)
	}
	return ent, nil
}

// LoadLevelToWorld spawns the map, the player at '@' and a chest for every
// treasure key in the layout.
func LoadLevelToWorld(w *ecs.World, spec *prefabs.MapSpec) (player ecs.Entity, err error) {
	if _, err := NewMap(w, spec); err != nil {
		return 0, err
	}

	cols, rows := spec.Size()
	tw, th := spec.TileWidth, spec.TileHeight
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x, y := float64(col)*tw, float64(row)*th
			switch c := spec.Cell(col, row); c {
			case '#', '.', ' ':
			case '@':
				pw := orDefault(spec.Player.Width, defaultPlayerSize)
				ph := orDefault(spec.Player.Height, defaultPlayerSize)
				player, err = NewPlayerAt(w, spec.Player, x+(tw-pw)/2, y+(th-ph)/2)
				if err != nil {
					return 0, err
				}
			default:
				ts, ok := spec.Treasures[string(c)]
				if !ok {
					continue
				}
				if _, err := NewTreasureAt(w, ts, x, y, tw, th); err != nil {
					return 0, fmt.Errorf("level: treasure %q: %w", c, err)
				}
			}
		}
	}
	if !player.Valid() {
		return 0, fmt.Errorf("level: %s has no player start", spec.Name)
	}
	return player, nil
}

func orDefault(v, fallback float64) float64 {
	if v <= 0 {
		return fallback
	}
	return v
}
