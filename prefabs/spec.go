package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Prefab file names.
const (
	PluginFile = "get_item_anim.yaml"
	ItemsFile  = "items.yaml"
	MapFile    = "map.yaml"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// PluginSpec holds the notifier parameters as raw strings, keyed by their
// display names ("Pickup Sound", "Animation Duration", ...).
type PluginSpec struct {
	Name       string            `yaml:"name"`
	Parameters map[string]string `yaml:"parameters"`
}

func LoadPluginSpec() (*PluginSpec, error) {
	spec, err := LoadSpec[PluginSpec](PluginFile)
	if err != nil {
		return nil, err
	}
	if spec.Parameters == nil {
		spec.Parameters = map[string]string{}
	}
	return &spec, nil
}

type ItemsSpec struct {
	Items []ItemSpec `yaml:"items"`
}

type ItemSpec struct {
	ID   int    `yaml:"id"`
	Name string `yaml:"name"`
	Icon int    `yaml:"icon"`
	Kind string `yaml:"kind"`
	// Note may carry <GetItem...> tags; Pickup is the structured form and
	// wins where both set a field.
	Note   string      `yaml:"note"`
	Pickup *PickupSpec `yaml:"pickup"`
}

type PickupSpec struct {
	Sound          *string  `yaml:"sound"`
	Volume         *float64 `yaml:"volume"`
	Pitch          *float64 `yaml:"pitch"`
	Pan            *float64 `yaml:"pan"`
	ShowName       bool     `yaml:"show_name"`
	ForceAnimation bool     `yaml:"force_animation"`
}

func LoadItemsSpec() (*ItemsSpec, error) {
	spec, err := LoadSpec[ItemsSpec](ItemsFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// MapSpec is a character grid: '#' wall, '.' floor, '@' player start and
// any key of Treasures a chest.
type MapSpec struct {
	Name       string                  `yaml:"name"`
	TileWidth  float64                 `yaml:"tile_width"`
	TileHeight float64                 `yaml:"tile_height"`
	Floor      *YAMLColor              `yaml:"floor"`
	Wall       *YAMLColor              `yaml:"wall"`
	Layout     []string                `yaml:"layout"`
	Treasures  map[string]TreasureSpec `yaml:"treasures"`
	Player     PlayerSpec              `yaml:"player"`
}

type TreasureSpec struct {
	Item   int        `yaml:"item"`
	Amount int        `yaml:"amount"`
	Reach  float64    `yaml:"reach"`
	Color  *YAMLColor `yaml:"color"`
}

type PlayerSpec struct {
	MoveSpeed float64    `yaml:"move_speed"`
	Width     float64    `yaml:"width"`
	Height    float64    `yaml:"height"`
	Color     *YAMLColor `yaml:"color"`
}

func LoadMapSpec() (*MapSpec, error) {
	spec, err := LoadSpec[MapSpec](MapFile)
	if err != nil {
		return nil, err
	}
	if err := spec.validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", MapFile, err)
	}
	return &spec, nil
}

// Size returns the grid dimensions; short rows count as floor.
func (m *MapSpec) Size() (cols, rows int) {
	for _, row := range m.Layout {
		cols = max(cols, len(row))
	}
	return cols, len(m.Layout)
}

// Cell returns the layout character at (col, row), '.' outside the grid.
func (m *MapSpec) Cell(col, row int) byte {
	if row < 0 || row >= len(m.Layout) || col < 0 || col >= len(m.Layout[row]) {
		return '.'
	}
	return m.Layout[row][col]
}

func (m *MapSpec) validate() error {
	if m.TileWidth <= 0 || m.TileHeight <= 0 {
		return fmt.Errorf("tile size %vx%v must be positive", m.TileWidth, m.TileHeight)
	}
	starts := 0
	for row, line := range m.Layout {
		for col := 0; col < len(line); col++ {
			switch c := line[col]; c {
			case '#', '.', ' ':
			case '@':
				starts++
			default:
				if _, ok := m.Treasures[string(c)]; !ok {
					return fmt.Errorf("unknown tile %q at %d,%d", c, col, row)
				}
			}
		}
	}
	if starts != 1 {
		return fmt.Errorf("layout needs exactly one player start, found %d", starts)
	}
	return nil
}

type YAMLColor struct {
	color.Color
}

// Or returns the wrapped color, or fallback when c is unset.
func (c *YAMLColor) Or(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
