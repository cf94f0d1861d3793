package frogger

import (
	"testing"
	"time"

	"github.com/vovakirdan/frogger-arcade/internal/audio"
	"github.com/vovakirdan/frogger-arcade/internal/core"
)

// recorder is an audio.Player that remembers every call.
type recorder struct {
	played  []audio.Cue
	stopped []audio.Cue
}

func (r *recorder) Play(c audio.Cue) { r.played = append(r.played, c) }
func (r *recorder) Stop(c audio.Cue) { r.stopped = append(r.stopped, c) }

func (r *recorder) count(c audio.Cue) int {
	n := 0
	for _, p := range r.played {
		if p == c {
			n++
		}
	}
	return n
}

func (r *recorder) reset() {
	r.played = nil
	r.stopped = nil
}

// fakeHistory keeps runs in a slice.
type fakeHistory struct {
	scores []int
	chars  []string
}

func (h *fakeHistory) RecordRun(score, level int, character string) error {
	h.scores = append(h.scores, score)
	h.chars = append(h.chars, character)
	return nil
}

func (h *fakeHistory) SessionBest() (int, error) {
	best := 0
	for _, s := range h.scores {
		best = max(best, s)
	}
	return best, nil
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{Seed: 42, ScreenW: 80, ScreenH: 24, TickRate: 60}
}

func newTestGame(t *testing.T) (*Game, *recorder) {
	t.Helper()
	rec := &recorder{}
	g, err := New(Deps{Sound: rec})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	g.Reset(testConfig())
	return g, rec
}

// toCharacterSelection skips the intro and waits out the welcome delay.
func toCharacterSelection(t *testing.T, g *Game) {
	t.Helper()
	g.HandleAction(core.ActionAccept)
	g.Step(0)
	g.Step(g.cfg.Timing.WelcomeDelay)
	if g.status != StatusCharacterSelection {
		t.Fatalf("Expected character selection, got %s", g.status)
	}
}

// toPlay walks from the welcome screen into level 1.
func toPlay(t *testing.T, g *Game) {
	t.Helper()
	toCharacterSelection(t, g)
	g.HandleAction(core.ActionAccept)
	g.HandleAction(core.ActionOther)
	if g.status != StatusPlay {
		t.Fatalf("Expected play, got %s", g.status)
	}
}

// goToLevel configures a level directly and resumes play.
func goToLevel(g *Game, level int) {
	g.level = level
	g.configureLevel()
	g.player.Spawn()
	g.status = StatusPlay
}

const noTime = time.Duration(0)
