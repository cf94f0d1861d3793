package frogger

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed levels.yaml
var defaultLevelsYAML []byte

// Level is one authored board layout.
type Level struct {
	Number  int
	Name    string
	Lanes   int          // Bug lanes, 3 or 4
	Objects []GridObject // Gem values are filled in when the level starts
}

// IsLane reports whether row carries a bug in this level.
func (l Level) IsLane(row int) bool {
	return row >= 1 && row <= l.Lanes
}

// Map renders the layout as one string per grid row:
// ~ water, = lane, . grass, # rock, g/b/o gems, S start.
func (l Level) Map() []string {
	rows := make([]string, GridRows)
	for r := 0; r < GridRows; r++ {
		var sb strings.Builder
		for c := MinCol; c <= MaxCol; c++ {
			sb.WriteByte(l.cellGlyph(r, c))
		}
		rows[r] = sb.String()
	}
	return rows
}

func (l Level) cellGlyph(row, col int) byte {
	for _, o := range l.Objects {
		if !o.At(row, col) {
			continue
		}
		if o.Kind == KindRock {
			return '#'
		}
		return o.Color[0] // green, blue, orange: g, b, o
	}
	switch {
	case row == 0:
		return '~'
	case l.IsLane(row):
		return '='
	case row == StartRow && col == StartCol:
		return 'S'
	default:
		return '.'
	}
}

type yamlLevels struct {
	Levels []yamlLevel `yaml:"levels"`
}

type yamlLevel struct {
	Name    string       `yaml:"name"`
	Lanes   int          `yaml:"lanes"`
	Objects []yamlObject `yaml:"objects"`
}

type yamlObject struct {
	Kind  string `yaml:"kind"`
	Color string `yaml:"color"`
	Row   int    `yaml:"row"`
	Col   int    `yaml:"col"`
}

// DefaultLevels returns the embedded level set.
func DefaultLevels() ([]Level, error) {
	return ParseLevels(defaultLevelsYAML)
}

// LoadLevelsFile reads a level set from a YAML file.
func LoadLevelsFile(path string) ([]Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("frogger: cannot read levels: %w", err)
	}
	return ParseLevels(data)
}

// ParseLevels decodes and validates a level set.
func ParseLevels(data []byte) ([]Level, error) {
	var doc yamlLevels
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("frogger: cannot parse levels: %w", err)
	}
	if len(doc.Levels) == 0 {
		return nil, errors.New("frogger: level set is empty")
	}

	levels := make([]Level, 0, len(doc.Levels))
	for i, yl := range doc.Levels {
		lvl, err := buildLevel(i+1, yl)
		if err != nil {
			return nil, fmt.Errorf("frogger: level %d: %w", i+1, err)
		}
		levels = append(levels, lvl)
	}
	return levels, nil
}

func buildLevel(number int, yl yamlLevel) (Level, error) {
	lvl := Level{Number: number, Name: yl.Name, Lanes: yl.Lanes}
	if lvl.Name == "" {
		lvl.Name = fmt.Sprintf("Level %d", number)
	}

	var errs []error
	if yl.Lanes != 3 && yl.Lanes != 4 {
		errs = append(errs, fmt.Errorf("lanes must be 3 or 4, got %d", yl.Lanes))
	}

	occupied := make(map[[2]int]bool)
	blockedWater := 0
	for _, yo := range yl.Objects {
		obj, err := buildObject(yo)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		cell := [2]int{obj.Row, obj.Col}
		if occupied[cell] {
			errs = append(errs, fmt.Errorf("cell (%d,%d) holds more than one object", obj.Row, obj.Col))
			continue
		}
		occupied[cell] = true
		if obj.Row == 0 {
			blockedWater++
		}
		lvl.Objects = append(lvl.Objects, obj)
	}
	if blockedWater >= GridCols {
		errs = append(errs, errors.New("every water cell is blocked"))
	}

	return lvl, errors.Join(errs...)
}

func buildObject(yo yamlObject) (GridObject, error) {
	obj := GridObject{Row: yo.Row, Col: yo.Col}

	minRow := MinRow
	switch yo.Kind {
	case "rock":
		obj.Kind = KindRock
		minRow = 0 // Rocks in the water block crossings
	case "gem":
		obj.Kind = KindGem
		switch c := GemColor(yo.Color); c {
		case GemGreen, GemBlue, GemOrange:
			obj.Color = c
		default:
			return obj, fmt.Errorf("unknown gem color %q", yo.Color)
		}
	default:
		return obj, fmt.Errorf("unknown object kind %q", yo.Kind)
	}

	if yo.Row < minRow || yo.Row > MaxRow || yo.Col < MinCol || yo.Col > MaxCol {
		return obj, fmt.Errorf("%s at (%d,%d) is off the board", yo.Kind, yo.Row, yo.Col)
	}
	if yo.Row == StartRow && yo.Col == StartCol {
		return obj, fmt.Errorf("%s on the start cell", yo.Kind)
	}
	return obj, nil
}

// levelFor returns the layout for a 1-based level number. Numbers past the
// end of the set replay the last level.
func levelFor(levels []Level, number int) Level {
	idx := number - 1
	if idx >= len(levels) {
		idx = len(levels) - 1
	}
	if idx < 0 {
		idx = 0
	}
	lvl := levels[idx]
	lvl.Number = number
	return lvl
}
