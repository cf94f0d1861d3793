package frogger

// Snapshot captures the game state for tests and determinism checks.
type Snapshot struct {
	Tick        uint64
	Status      Status
	Level       int
	LevelName   string
	Lanes       int
	Character   string
	Selection   int
	LoseOption  int
	PlayerRow   int
	PlayerCol   int
	Lives       int
	Score       int
	EnemyRows   []int
	EnemyX      []float64
	Gems        int
	Rocks       int
	Pending     bool
	SessionBest int
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:        g.tick,
		Status:      g.status,
		Level:       g.level,
		LevelName:   g.levelName,
		Lanes:       g.lanes,
		Character:   g.character,
		Selection:   g.selection,
		LoseOption:  g.loseOption,
		PlayerRow:   g.player.Row,
		PlayerCol:   g.player.Col,
		Lives:       g.player.Lives,
		Score:       g.player.Score,
		Pending:     g.pending,
		SessionBest: g.sessionBest,
	}
	for _, e := range g.enemies {
		s.EnemyRows = append(s.EnemyRows, e.Row)
		s.EnemyX = append(s.EnemyX, e.X)
	}
	for _, o := range g.objects {
		if o.Kind == KindGem {
			s.Gems++
		} else {
			s.Rocks++
		}
	}
	return s
}
