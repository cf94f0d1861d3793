package frogger

import (
	"github.com/vovakirdan/frogger-arcade/internal/assets"
	"github.com/vovakirdan/frogger-arcade/internal/audio"
	"github.com/vovakirdan/frogger-arcade/internal/core"
)

// introLines type themselves out on the welcome screen.
var introLines = []string{
	"F R O G G E R",
	"",
	"Bugs race along the stone lanes.",
	"Cross them, grab the gems, reach the water.",
	"",
	"Arrows move. Enter accepts.",
}

// typewriter reveals a block of lines one rune at a time, line after line.
type typewriter struct {
	lines    [][]rune
	speed    float64 // Runes per second
	revealed float64
	total    int
}

func newTypewriter(lines []string, speed float64) *typewriter {
	t := &typewriter{speed: speed}
	for _, l := range lines {
		r := []rune(l)
		t.lines = append(t.lines, r)
		t.total += len(r)
	}
	return t
}

func (t *typewriter) Reset() { t.revealed = 0 }

func (t *typewriter) Update(dt float64) {
	t.revealed = min(t.revealed+dt*t.speed, float64(t.total))
}

// Finish reveals everything at once.
func (t *typewriter) Finish() { t.revealed = float64(t.total) }

// Done reports whether every line has been typed out.
func (t *typewriter) Done() bool { return int(t.revealed) >= t.total }

// Visible returns the text typed so far, one entry per line.
func (t *typewriter) Visible() []string {
	left := int(t.revealed)
	out := make([]string, len(t.lines))
	for i, l := range t.lines {
		n := min(left, len(l))
		out[i] = string(l[:n])
		left -= n
	}
	return out
}

// updateWelcome arms the delayed move to character selection once the intro
// has finished, and fires it when the deadline passes.
func (g *Game) updateWelcome(dt float64) {
	g.intro.Update(dt)

	if g.intro.Done() && !g.pending {
		g.pending = true
		g.deadline = g.elapsed + g.cfg.Timing.WelcomeDelay
	}
	if g.pending && g.elapsed >= g.deadline {
		g.pending = false
		g.transition(StatusCharacterSelection)
	}
}

// Enter skips the typing; the delay still applies.
func (g *Game) handleWelcomeInput(a core.Action) {
	if a == core.ActionAccept {
		g.intro.Finish()
	}
}

func (g *Game) handleSelectionInput(a core.Action) {
	switch a {
	case core.ActionLeft:
		g.moveSelection(-1)
	case core.ActionRight:
		g.moveSelection(1)
	case core.ActionAccept:
		g.character = assets.Characters[g.selection]
		g.player.Sprite = g.character
		g.logger.Info("character selected", "character", g.character)
		g.enterLevelBanner()
	}
}

// moveSelection shifts the cursor without wrapping. Hitting an end is silent.
func (g *Game) moveSelection(delta int) {
	next := core.Clamp(g.selection+delta, 0, len(assets.Characters)-1)
	if next == g.selection {
		return
	}
	g.selection = next
	g.sound.Play(audio.CueOptionMove)
}

// dismissBanner resumes play on any key.
func (g *Game) dismissBanner() {
	g.sound.Stop(audio.CueLevelStart)
	g.transition(StatusPlay)
}

func (g *Game) handleLoseInput(a core.Action) {
	switch a {
	case core.ActionLeft, core.ActionRight:
		delta := -1
		if a == core.ActionRight {
			delta = 1
		}
		next := core.Clamp(g.loseOption+delta, 1, 2)
		if next == g.loseOption {
			return
		}
		g.loseOption = next
		g.sound.Play(audio.CueOptionMove)
	case core.ActionAccept:
		retry := g.loseOption == 1
		g.fullReset()
		if retry {
			g.logger.Info("retry", "character", g.character)
			g.enterLevelBanner()
			return
		}
		g.logger.Info("restart")
		g.enterWelcome()
	}
}

