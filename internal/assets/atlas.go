// Package assets loads the sprite atlas the game draws with.
//
// Sprites are small pieces of character art keyed by name. The whole manifest
// is loaded and checked in one batch before the first frame; a missing or
// malformed sprite is a startup error, never a render-time one.
package assets

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/frogger-arcade/internal/core"
)

// Sprite size limits, in terminal cells.
const (
	MaxSpriteWidth  = 11
	MaxSpriteHeight = 3
)

// Sprite keys referenced by the game.
const (
	WaterBlock       = "water-block"
	StoneBlock       = "stone-block"
	GrassBlock       = "grass-block"
	EnemyBug         = "enemy-bug"
	CharBoy          = "char-boy"
	CharCatGirl      = "char-cat-girl"
	CharHornGirl     = "char-horn-girl"
	CharPinkGirl     = "char-pink-girl"
	CharPrincessGirl = "char-princess-girl"
	Rock             = "rock"
	GemGreen         = "gem-green"
	GemBlue          = "gem-blue"
	GemOrange        = "gem-orange"
)

// Characters lists the selectable player sprites in selection order.
var Characters = []string{CharBoy, CharCatGirl, CharHornGirl, CharPinkGirl, CharPrincessGirl}

// Manifest is every sprite that must be present before the game starts.
var Manifest = []string{
	WaterBlock, StoneBlock, GrassBlock,
	EnemyBug,
	CharBoy, CharCatGirl, CharHornGirl, CharPinkGirl, CharPrincessGirl,
	Rock, GemGreen, GemBlue, GemOrange,
}

// ErrMissingSprite is returned when a manifest key has no sprite.
var ErrMissingSprite = errors.New("assets: missing sprite")

//go:embed sprites.yaml
var defaultSpritesYAML []byte

// Sprite is a piece of colored character art.
type Sprite struct {
	Key    string
	Color  core.Color
	Art    []string
	Width  int
	Height int
}

// Draw blits the sprite with its top-left corner at (x, y). Spaces are
// transparent so sprites layer over background blocks.
func (s Sprite) Draw(dst *core.Screen, x, y int) {
	s.DrawClipped(dst, x, y, core.NewRect(0, 0, dst.Width(), dst.Height()))
}

// DrawClipped is Draw restricted to cells inside clip.
func (s Sprite) DrawClipped(dst *core.Screen, x, y int, clip core.Rect) {
	for dy, line := range s.Art {
		col := 0
		for _, r := range line {
			if r != ' ' && clip.Contains(x+col, y+dy) {
				dst.SetWithColor(x+col, y+dy, r, s.Color)
			}
			col++
		}
	}
}

// Atlas holds loaded sprites by key.
type Atlas struct {
	sprites map[string]Sprite
}

type yamlAtlas struct {
	Sprites []yamlSprite `yaml:"sprites"`
}

type yamlSprite struct {
	Key   string   `yaml:"key"`
	Color string   `yaml:"color"`
	Art   []string `yaml:"art"`
}

// LoadDefault loads the embedded atlas and checks it against Manifest.
func LoadDefault() (*Atlas, error) {
	return Load(defaultSpritesYAML, Manifest)
}

// LoadFile loads an atlas from a YAML file and checks it against Manifest.
func LoadFile(path string) (*Atlas, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot read %s: %w", path, err)
	}
	atlas, err := Load(data, Manifest)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return atlas, nil
}

// Load parses atlas YAML and verifies every key in manifest is present.
func Load(data []byte, manifest []string) (*Atlas, error) {
	var ya yamlAtlas
	if err := yaml.Unmarshal(data, &ya); err != nil {
		return nil, fmt.Errorf("assets: cannot parse atlas: %w", err)
	}

	atlas := &Atlas{sprites: make(map[string]Sprite, len(ya.Sprites))}
	for _, ys := range ya.Sprites {
		sprite, err := buildSprite(ys)
		if err != nil {
			return nil, err
		}
		if _, dup := atlas.sprites[sprite.Key]; dup {
			return nil, fmt.Errorf("assets: duplicate sprite %q", sprite.Key)
		}
		atlas.sprites[sprite.Key] = sprite
	}

	for _, key := range manifest {
		if _, ok := atlas.sprites[key]; !ok {
			return nil, fmt.Errorf("%w %q", ErrMissingSprite, key)
		}
	}

	return atlas, nil
}

func buildSprite(ys yamlSprite) (Sprite, error) {
	if ys.Key == "" {
		return Sprite{}, errors.New("assets: sprite without key")
	}

	color := core.ColorDefault
	if ys.Color != "" {
		c, ok := core.ParseColor(ys.Color)
		if !ok {
			return Sprite{}, fmt.Errorf("assets: sprite %q: unknown color %q", ys.Key, ys.Color)
		}
		color = c
	}

	if len(ys.Art) == 0 || len(ys.Art) > MaxSpriteHeight {
		return Sprite{}, fmt.Errorf("assets: sprite %q: art must have 1-%d rows, got %d", ys.Key, MaxSpriteHeight, len(ys.Art))
	}

	width := 0
	for _, line := range ys.Art {
		w := len([]rune(line))
		if w > MaxSpriteWidth {
			return Sprite{}, fmt.Errorf("assets: sprite %q: row %q wider than %d", ys.Key, line, MaxSpriteWidth)
		}
		width = max(width, w)
	}

	return Sprite{
		Key:    ys.Key,
		Color:  color,
		Art:    ys.Art,
		Width:  width,
		Height: len(ys.Art),
	}, nil
}

// Get looks a sprite up by key.
func (a *Atlas) Get(key string) (Sprite, bool) {
	s, ok := a.sprites[key]
	return s, ok
}

// Keys returns all sprite keys in sorted order.
func (a *Atlas) Keys() []string {
	keys := make([]string, 0, len(a.sprites))
	for k := range a.sprites {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// CharacterName turns a sprite key like "char-cat-girl" into "Cat Girl".
func CharacterName(key string) string {
	words := strings.Fields(strings.ReplaceAll(strings.TrimPrefix(key, "char-"), "-", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
