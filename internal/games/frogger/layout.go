// Package frogger implements the crossing game: pick a character, dodge the
// bugs, collect gems and reach the water.
package frogger

// Logical canvas geometry. Positions and collisions are computed in these
// pixel units and projected onto the terminal only when rendering.
const (
	CanvasWidth     = 505.0
	CanvasHeight    = 606.0
	ImageWidth      = 101.0
	ImageHeight     = 171.0
	RowHeight       = 83.0
	CanvasOffsetTop = 50.0
	PlayerOffset    = 55.0 // Lifts the player sprite so its feet sit on the row
)

// Grid bounds. Row 0 is the water the player is trying to reach; the player
// itself always stays within [MinRow, MaxRow] x [MinCol, MaxCol].
const (
	GridRows = 6
	GridCols = 5
	MinRow   = 1
	MaxRow   = 5
	MinCol   = 1
	MaxCol   = 5
	StartRow = 5
	StartCol = 3

	StartLives = 3
)

// Terminal projection: every grid cell is a CellW x CellH block of runes.
const (
	CellW     = 11
	CellH     = 3
	BoardW    = GridCols * CellW
	BoardH    = GridRows * CellH
	HUDHeight = 2
)

// ColumnX returns the left pixel edge of a 1-based column.
func ColumnX(col int) float64 {
	return float64(col-1) * ImageWidth
}

// PlayerY returns the pixel y of the player sprite standing on row.
func PlayerY(row int) float64 {
	return CanvasHeight - ImageHeight - PlayerOffset - float64(MaxRow-row)*RowHeight
}

// EnemyY returns the pixel y of a bug running in lane row.
func EnemyY(row int) float64 {
	return CanvasOffsetTop + float64(row)*RowHeight
}

// pixelToCell maps a logical x coordinate to a terminal column offset
// within the board.
func pixelToCell(x float64) int {
	v := x * BoardW / CanvasWidth
	if v < 0 {
		return int(v - 0.5)
	}
	return int(v + 0.5)
}
