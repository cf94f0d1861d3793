package frogger

import (
	"math/rand"
	"testing"
)

func TestEnemyWrap(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	redraw := func() float64 { return 100 + rng.Float64()*200 }

	e := NewEnemy(2, redraw())
	if e.X != -ImageWidth {
		t.Fatalf("New bug should start at %v, got %v", -ImageWidth, e.X)
	}

	wraps := 0
	for i := 0; i < 5000; i++ {
		prev := e.X
		e.Update(rng.Float64()*0.25, redraw)

		if e.X > CanvasWidth+ImageWidth {
			t.Fatalf("Bug at %v past the wrap point after tick %d", e.X, i)
		}
		if e.X < -ImageWidth {
			t.Fatalf("Bug at %v before the left edge after tick %d", e.X, i)
		}
		if e.X < prev {
			wraps++
			if e.X != -ImageWidth {
				t.Fatalf("Wrapped bug should restart at %v, got %v", -ImageWidth, e.X)
			}
		}
		if e.Speed < 100 || e.Speed >= 300 {
			t.Fatalf("Speed %v outside [100,300)", e.Speed)
		}
		if e.Row != 2 {
			t.Fatalf("Bug changed lane to %d", e.Row)
		}
	}
	if wraps == 0 {
		t.Error("Expected the bug to wrap at least once")
	}
}

func TestEnemyWrapRedrawsSpeed(t *testing.T) {
	e := &Enemy{Row: 1, X: CanvasWidth + ImageWidth - 1, Speed: 100}
	e.Update(0.5, func() float64 { return 123 })

	if e.X != -ImageWidth {
		t.Errorf("Expected wrap to %v, got %v", -ImageWidth, e.X)
	}
	if e.Speed != 123 {
		t.Errorf("Expected redrawn speed 123, got %v", e.Speed)
	}
}

func TestPlayerPosition(t *testing.T) {
	var p Player
	p.Reset()

	if p.Row != StartRow || p.Col != StartCol || p.Lives != StartLives || p.Score != 0 {
		t.Errorf("Unexpected reset player %+v", p)
	}
	if p.X() != (CanvasWidth-ImageWidth)/2 {
		t.Errorf("Start column should be centered, X = %v", p.X())
	}
	if p.Y() != CanvasHeight-ImageHeight-PlayerOffset {
		t.Errorf("Start row Y = %v", p.Y())
	}

	p.Row = 4
	if p.Y() != CanvasHeight-ImageHeight-PlayerOffset-RowHeight {
		t.Errorf("Row 4 Y = %v", p.Y())
	}
}

func TestHitboxes(t *testing.T) {
	p := Player{Row: 3, Col: 1}
	if hb := p.Hitbox(33); hb.Start != 33 || hb.End != 68 {
		t.Errorf("Player hitbox = %+v", hb)
	}

	e := Enemy{X: 10}
	if hb := e.Hitbox(2); hb.Start != 12 || hb.End != 109 {
		t.Errorf("Enemy hitbox = %+v", hb)
	}
}

func TestGridObject(t *testing.T) {
	tests := []struct {
		obj    GridObject
		blocks bool
		sprite string
	}{
		{GridObject{Kind: KindRock}, true, "rock"},
		{GridObject{Kind: KindGem, Color: GemGreen}, false, "gem-green"},
		{GridObject{Kind: KindGem, Color: GemBlue}, false, "gem-blue"},
		{GridObject{Kind: KindGem, Color: GemOrange}, false, "gem-orange"},
	}
	for _, tt := range tests {
		if tt.obj.Blocks() != tt.blocks {
			t.Errorf("%v Blocks() = %v", tt.obj, tt.obj.Blocks())
		}
		if tt.obj.SpriteKey() != tt.sprite {
			t.Errorf("%v SpriteKey() = %q, want %q", tt.obj, tt.obj.SpriteKey(), tt.sprite)
		}
	}
}

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		from, to Status
		ok       bool
	}{
		{StatusWelcome, StatusCharacterSelection, true},
		{StatusWelcome, StatusPlay, false},
		{StatusCharacterSelection, StatusLevelBanner, true},
		{StatusCharacterSelection, StatusPlay, false},
		{StatusLevelBanner, StatusPlay, true},
		{StatusLivesBanner, StatusPlay, true},
		{StatusLivesBanner, StatusLose, false},
		{StatusPlay, StatusLivesBanner, true},
		{StatusPlay, StatusLose, true},
		{StatusPlay, StatusLevelBanner, true},
		{StatusPlay, StatusWelcome, false},
		{StatusLose, StatusLevelBanner, true},
		{StatusLose, StatusWelcome, true},
		{StatusLose, StatusPlay, false},
	}
	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.ok {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.ok)
		}
	}
}

func TestIllegalTransitionPanics(t *testing.T) {
	g, _ := newTestGame(t)

	defer func() {
		if recover() == nil {
			t.Error("Expected panic on welcome -> play")
		}
	}()
	g.transition(StatusPlay)
}

