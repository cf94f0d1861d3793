package frogger

import "github.com/vovakirdan/frogger-arcade/internal/audio"

// checkCollisions runs once per play tick after the bugs have moved.
func (g *Game) checkCollisions() {
	if g.enemyHit() {
		g.playerHit()
		return
	}
	g.collectGems()
}

// enemyHit reports whether any bug in the player's row overlaps the player.
// A hit needs one of the player's padded edges strictly inside the bug's
// padded interval.
func (g *Game) enemyHit() bool {
	player := g.player.Hitbox(g.cfg.Hitbox.PlayerSidePadding)
	for _, e := range g.enemies {
		if e.Row != g.player.Row {
			continue
		}
		if e.Hitbox(g.cfg.Hitbox.EnemyPadding).EndpointInside(player) {
			return true
		}
	}
	return false
}

// playerHit costs a life. The last life ends the run.
func (g *Game) playerHit() {
	g.sound.Play(audio.CueImpact)
	if g.player.Lives > 0 {
		g.player.Lives--
	}
	g.player.Spawn()

	if g.player.Lives > 0 {
		g.logger.Info("life lost", "lives", g.player.Lives, "level", g.level)
		g.transition(StatusLivesBanner)
		return
	}

	g.sound.Play(audio.CueLose)
	g.recordRun()
	g.loseOption = 1
	g.transition(StatusLose)
}

// collectGems awards and removes any gem on the player's cell.
func (g *Game) collectGems() {
	kept := g.objects[:0]
	for _, o := range g.objects {
		if o.Kind == KindGem && o.At(g.player.Row, g.player.Col) {
			g.player.Score += o.Value
			g.sound.Play(audio.CueGemPickup)
			g.logger.Debug("gem collected", "color", o.Color, "value", o.Value, "score", g.player.Score)
			continue
		}
		kept = append(kept, o)
	}
	g.objects = kept
}
