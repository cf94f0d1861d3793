package frogger

import (
	"github.com/vovakirdan/frogger-arcade/internal/assets"
	"github.com/vovakirdan/frogger-arcade/internal/core"
)

// Player is the character crossing the board.
type Player struct {
	Row, Col int
	Lives    int
	Score    int
	Sprite   string
}

// Reset restores a fresh player: full lives, no score, start cell.
func (p *Player) Reset() {
	p.Lives = StartLives
	p.Score = 0
	p.Spawn()
}

// Spawn puts the player back on the start cell.
func (p *Player) Spawn() {
	p.Row = StartRow
	p.Col = StartCol
}

// X returns the player's left pixel edge.
func (p *Player) X() float64 { return ColumnX(p.Col) }

// Y returns the player's sprite pixel y.
func (p *Player) Y() float64 { return PlayerY(p.Row) }

// Hitbox returns the horizontal interval the player occupies, narrowed by
// sidePad on each side.
func (p *Player) Hitbox(sidePad float64) core.Span {
	x := p.X()
	return core.NewSpan(x+sidePad, x+ImageWidth-sidePad)
}

// Enemy is a bug running left to right along one lane.
type Enemy struct {
	Row   int
	X     float64
	Speed float64 // Pixels per second
}

// NewEnemy places a bug just off the left edge of lane row.
func NewEnemy(row int, speed float64) *Enemy {
	return &Enemy{Row: row, X: -ImageWidth, Speed: speed}
}

// Update advances the bug by dt seconds. Once it has fully left the right
// edge it re-enters on the left with a speed drawn from redraw.
func (e *Enemy) Update(dt float64, redraw func() float64) {
	e.X += e.Speed * dt
	if e.X > CanvasWidth+ImageWidth {
		e.X = -ImageWidth
		e.Speed = redraw()
	}
}

// Hitbox returns the bug's horizontal interval narrowed by pad on each side.
func (e *Enemy) Hitbox(pad float64) core.Span {
	return core.NewSpan(e.X+pad, e.X+ImageWidth-pad)
}

// ObjectKind tags a GridObject.
type ObjectKind int

const (
	KindRock ObjectKind = iota
	KindGem
)

func (k ObjectKind) String() string {
	switch k {
	case KindRock:
		return "rock"
	case KindGem:
		return "gem"
	default:
		return "unknown"
	}
}

// GemColor names a gem variety.
type GemColor string

const (
	GemGreen  GemColor = "green"
	GemBlue   GemColor = "blue"
	GemOrange GemColor = "orange"
)

// GridObject is a static rock or gem occupying one cell.
type GridObject struct {
	Kind  ObjectKind
	Row   int
	Col   int
	Color GemColor // Gems only
	Value int      // Gems only
}

// Blocks reports whether the player may not enter the object's cell.
func (o GridObject) Blocks() bool {
	return o.Kind == KindRock
}

// At reports whether the object sits on (row, col).
func (o GridObject) At(row, col int) bool {
	return o.Row == row && o.Col == col
}

// SpriteKey returns the atlas key used to draw the object.
func (o GridObject) SpriteKey() string {
	if o.Kind == KindRock {
		return assets.Rock
	}
	switch o.Color {
	case GemBlue:
		return assets.GemBlue
	case GemOrange:
		return assets.GemOrange
	default:
		return assets.GemGreen
	}
}
