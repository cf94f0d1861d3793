package frogger

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/frogger-arcade/internal/assets"
	"github.com/vovakirdan/frogger-arcade/internal/core"
)

// Render draws the active screen.
func (g *Game) Render(screen *core.Screen) {
	screen.Clear()

	w, h := screen.Width(), screen.Height()
	if w < BoardW || h < BoardH+HUDHeight {
		g.renderTooSmall(screen)
		return
	}

	ox := (w - BoardW) / 2
	hudY := (h - BoardH - HUDHeight) / 2
	board := core.NewRect(ox, hudY+HUDHeight, BoardW, BoardH)

	switch g.status {
	case StatusWelcome:
		g.renderWelcome(screen, board)
	case StatusCharacterSelection:
		g.renderSelection(screen, board)
	default:
		g.renderHUD(screen, ox, hudY)
		g.renderBoard(screen, board)
		switch g.status {
		case StatusLevelBanner:
			drawPanel(screen, board, core.ColorBrightYellow,
				fmt.Sprintf("Level %d", g.level),
				g.levelName,
				"",
				"Press any key")
		case StatusLivesBanner:
			drawPanel(screen, board, core.ColorBrightRed,
				"Ouch!",
				livesText(g.player.Lives),
				"",
				"Press any key")
		case StatusLose:
			drawPanel(screen, board, core.ColorRed,
				"GAME OVER",
				"",
				fmt.Sprintf("Score %d   Level %d", g.player.Score, g.level),
				fmt.Sprintf("Session best %d", g.sessionBest),
				"",
				optionLine([]string{"Retry", "Restart"}, g.loseOption-1))
		}
	}
}

func (g *Game) renderTooSmall(screen *core.Screen) {
	y := screen.Height() / 2
	screen.DrawTextCentered(y-1, "Terminal too small", core.ColorBrightYellow)
	screen.DrawTextCentered(y, fmt.Sprintf("need %dx%d", BoardW, BoardH+HUDHeight), core.ColorGray)
}

func (g *Game) renderWelcome(screen *core.Screen, board core.Rect) {
	lines := g.intro.Visible()
	top := board.Y + (board.H-len(lines))/2
	for i, line := range lines {
		c := core.ColorWhite
		if i == 0 {
			c = core.ColorBrightGreen
		}
		x := board.X + (board.W-core.TextWidth(introLines[i]))/2
		screen.DrawTextColor(x, top+i, line, c)
	}
}

func (g *Game) renderSelection(screen *core.Screen, board core.Rect) {
	centerText(screen, board, board.Y+2, "Choose your character", core.ColorBrightWhite)

	y := board.Y + (board.H-CellH)/2
	for i, key := range assets.Characters {
		cellX := board.X + i*CellW
		if i == g.selection {
			screen.DrawBox(core.NewRect(cellX, y-1, CellW, CellH+2), core.ColorBrightYellow)
		}
		if s, ok := g.atlas.Get(key); ok {
			s.Draw(screen, cellX+(CellW-s.Width)/2, y)
		}
	}

	name := assets.CharacterName(assets.Characters[g.selection])
	centerText(screen, board, y+CellH+2, name, core.ColorBrightYellow)
	centerText(screen, board, board.Bottom()-2, "← → choose   Enter start", core.ColorGray)
}

func (g *Game) renderHUD(screen *core.Screen, x, y int) {
	screen.DrawTextColor(x, y, fmt.Sprintf("Score = %d", g.player.Score), core.ColorBrightWhite)
	lives := fmt.Sprintf("Lives = %d", g.player.Lives)
	screen.DrawTextColor(x+BoardW-core.TextWidth(lives), y, lives, core.ColorBrightWhite)
	centerText(screen, core.NewRect(x, y, BoardW, 1), y+1,
		fmt.Sprintf("Level %d: %s", g.level, g.levelName), core.ColorGray)
}

// renderBoard draws the rows, objects, bugs and the player, back to front.
func (g *Game) renderBoard(screen *core.Screen, board core.Rect) {
	for row := 0; row < GridRows; row++ {
		block, ok := g.atlas.Get(g.rowBlock(row))
		if !ok {
			continue
		}
		for col := MinCol; col <= MaxCol; col++ {
			block.Draw(screen, board.X+(col-1)*CellW, board.Y+row*CellH)
		}
	}

	for _, o := range g.objects {
		g.drawInCell(screen, board, o.SpriteKey(), o.Row, o.Col)
	}

	if bug, ok := g.atlas.Get(assets.EnemyBug); ok {
		for _, e := range g.enemies {
			bug.DrawClipped(screen, board.X+pixelToCell(e.X), board.Y+e.Row*CellH, board)
		}
	}

	g.drawInCell(screen, board, g.player.Sprite, g.player.Row, g.player.Col)
}

// rowBlock picks the background tile for a grid row.
func (g *Game) rowBlock(row int) string {
	switch {
	case row == 0:
		return assets.WaterBlock
	case row <= g.lanes:
		return assets.StoneBlock
	default:
		return assets.GrassBlock
	}
}

func (g *Game) drawInCell(screen *core.Screen, board core.Rect, key string, row, col int) {
	s, ok := g.atlas.Get(key)
	if !ok {
		return
	}
	x := board.X + (col-1)*CellW + (CellW-s.Width)/2
	s.Draw(screen, x, board.Y+row*CellH)
}

// drawPanel draws a boxed block of centered lines in the middle of area.
func drawPanel(screen *core.Screen, area core.Rect, c core.Color, lines ...string) {
	inner := 0
	for _, l := range lines {
		inner = max(inner, core.TextWidth(l))
	}
	w := inner + 6
	h := len(lines) + 2
	box := core.NewRect(area.X+(area.W-w)/2, area.Y+(area.H-h)/2, w, h)

	screen.FillRect(box, ' ', core.ColorDefault)
	screen.DrawBox(box, c)
	for i, l := range lines {
		centerText(screen, box, box.Y+1+i, l, core.ColorBrightWhite)
	}
}

func centerText(screen *core.Screen, area core.Rect, y int, text string, c core.Color) {
	screen.DrawTextColor(area.X+(area.W-core.TextWidth(text))/2, y, text, c)
}

// optionLine lays out options side by side, bracketing the selected one.
func optionLine(options []string, selected int) string {
	parts := make([]string, len(options))
	for i, o := range options {
		if i == selected {
			parts[i] = "[ " + o + " ]"
		} else {
			parts[i] = "  " + o + "  "
		}
	}
	return strings.Join(parts, "  ")
}

func livesText(n int) string {
	if n == 1 {
		return "1 life left"
	}
	return fmt.Sprintf("%d lives left", n)
}
