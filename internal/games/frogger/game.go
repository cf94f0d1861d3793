package frogger

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/frogger-arcade/internal/assets"
	"github.com/vovakirdan/frogger-arcade/internal/audio"
	"github.com/vovakirdan/frogger-arcade/internal/config"
	"github.com/vovakirdan/frogger-arcade/internal/core"
	"github.com/vovakirdan/frogger-arcade/internal/logging"
)

// History records finished runs for the session.
type History interface {
	RecordRun(score, level int, character string) error
	SessionBest() (int, error)
}

// Deps are the collaborators a Game is built from. Zero fields fall back to
// embedded defaults, silence, and a discarding logger.
type Deps struct {
	Config  *config.FroggerConfig
	Atlas   *assets.Atlas
	Levels  []Level
	Sound   audio.Player
	History History
	Logger  *log.Logger
}

// Game owns every piece of mutable state: the active screen, the player,
// the bugs and the objects of the current level.
type Game struct {
	cfg        config.FroggerConfig
	difficulty *config.DifficultyManager
	atlas      *assets.Atlas
	levels     []Level
	sound      audio.Player
	history    History
	logger     *log.Logger

	rng     *rand.Rand
	tick    uint64
	elapsed time.Duration
	status  Status

	// Welcome screen
	intro    *typewriter
	pending  bool          // Delayed transition armed
	deadline time.Duration // Elapsed time at which it fires

	// Character selection
	selection int
	character string

	// Current level
	level     int
	levelName string
	lanes     int
	player    Player
	enemies   []*Enemy
	objects   []GridObject

	// Lose screen
	loseOption  int // 1 = retry, 2 = restart
	sessionBest int
}

// New creates a game. Call Reset before the first Step.
func New(deps Deps) (*Game, error) {
	g := &Game{
		sound:   deps.Sound,
		history: deps.History,
		logger:  deps.Logger,
		atlas:   deps.Atlas,
		levels:  deps.Levels,
	}

	if deps.Config != nil {
		g.cfg = *deps.Config
	} else {
		g.cfg = config.DefaultFroggerConfig()
	}
	if err := g.cfg.Validate(); err != nil {
		return nil, err
	}
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	if g.sound == nil {
		g.sound = audio.Silent{}
	}
	if g.logger == nil {
		g.logger = logging.Discard()
	}
	if g.atlas == nil {
		atlas, err := assets.LoadDefault()
		if err != nil {
			return nil, err
		}
		g.atlas = atlas
	}
	if len(g.levels) == 0 {
		levels, err := DefaultLevels()
		if err != nil {
			return nil, err
		}
		g.levels = levels
	}

	g.intro = newTypewriter(introLines, g.cfg.Timing.TypingSpeed)
	g.rng = rand.New(rand.NewSource(1))
	return g, nil
}

// ID returns the game identifier.
func (g *Game) ID() string { return "frogger" }

// Title returns the display name.
func (g *Game) Title() string { return "Frogger" }

// Reset starts over from the welcome screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.elapsed = 0
	g.selection = 0
	g.character = assets.Characters[0]
	g.player.Sprite = g.character
	g.sessionBest = 0
	g.fullReset()
	g.status = StatusWelcome
	g.enterWelcome()
}

// HandleAction applies one key press to the active screen.
func (g *Game) HandleAction(a core.Action) {
	if a == core.ActionNone {
		return
	}
	switch g.status {
	case StatusWelcome:
		g.handleWelcomeInput(a)
	case StatusCharacterSelection:
		g.handleSelectionInput(a)
	case StatusLevelBanner, StatusLivesBanner:
		g.dismissBanner()
	case StatusPlay:
		g.movePlayer(a)
	case StatusLose:
		g.handleLoseInput(a)
	}
}

// Step advances the game by dt.
func (g *Game) Step(dt time.Duration) core.StepResult {
	g.tick++
	g.elapsed += dt
	secs := dt.Seconds()

	switch g.status {
	case StatusWelcome:
		g.updateWelcome(secs)
	case StatusPlay:
		g.updateEnemies(secs)
		g.checkCollisions()
	case StatusLose:
		// Bugs keep running behind the lose screen
		g.updateEnemies(secs)
	}

	return core.StepResult{State: g.State()}
}

// State returns the summary shown by the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.player.Score,
		Lives:  g.player.Lives,
		Level:  g.level,
		Status: g.status.String(),
		AnyKey: g.status == StatusLevelBanner || g.status == StatusLivesBanner,
	}
}

// Status returns the active screen.
func (g *Game) Status() Status { return g.status }

// fullReset restores lives, score, position, level, bugs and objects.
func (g *Game) fullReset() {
	g.level = 1
	g.player.Reset()
	g.configureLevel()
	g.loseOption = 1
}

// configureLevel loads the layout for g.level and respawns every bug.
func (g *Game) configureLevel() {
	lvl := levelFor(g.levels, g.level)
	g.levelName = lvl.Name
	g.lanes = lvl.Lanes

	g.objects = make([]GridObject, 0, len(lvl.Objects))
	for _, o := range lvl.Objects {
		if o.Kind == KindGem {
			o.Value = g.gemValue(o.Color)
		}
		g.objects = append(g.objects, o)
	}

	g.enemies = make([]*Enemy, 0, lvl.Lanes)
	for row := 1; row <= lvl.Lanes; row++ {
		g.enemies = append(g.enemies, NewEnemy(row, g.newSpeed()))
	}
}

func (g *Game) gemValue(c GemColor) int {
	switch c {
	case GemBlue:
		return g.cfg.Gems.Blue
	case GemOrange:
		return g.cfg.Gems.Orange
	default:
		return g.cfg.Gems.Green
	}
}

// newSpeed draws a bug speed in [min, max) for the current level.
func (g *Game) newSpeed() float64 {
	lo, hi := g.difficulty.SpeedRange(g.cfg.Enemies.MinSpeed, g.cfg.Enemies.MaxSpeed, g.level)
	return lo + g.rng.Float64()*(hi-lo)
}

func (g *Game) updateEnemies(dt float64) {
	for _, e := range g.enemies {
		e.Update(dt, g.newSpeed)
	}
}

// blockedAt reports whether a rock sits on (row, col).
func (g *Game) blockedAt(row, col int) bool {
	for _, o := range g.objects {
		if o.Blocks() && o.At(row, col) {
			return true
		}
	}
	return false
}

// movePlayer tries to step one cell. Moves off the grid or onto a rock are
// ignored; stepping up from the top lane row clears the level.
func (g *Game) movePlayer(a core.Action) {
	row, col := g.player.Row, g.player.Col
	switch a {
	case core.ActionUp:
		row--
	case core.ActionDown:
		row++
	case core.ActionLeft:
		col--
	case core.ActionRight:
		col++
	default:
		return
	}

	if row > MaxRow || col < MinCol || col > MaxCol {
		return
	}
	if g.blockedAt(row, col) {
		return
	}

	g.sound.Play(audio.CueCharacterMove)
	if row < MinRow {
		g.advanceLevel()
		return
	}
	g.player.Row, g.player.Col = row, col
}

// advanceLevel moves to the next layout and shows its banner.
func (g *Game) advanceLevel() {
	g.level++
	g.sound.Play(audio.CueWin)
	g.configureLevel()
	g.player.Spawn()
	g.logger.Info("level cleared", "level", g.level, "name", g.levelName, "score", g.player.Score)
	g.enterLevelBanner()
}

func (g *Game) enterLevelBanner() {
	g.transition(StatusLevelBanner)
	g.sound.Play(audio.CueLevelStart)
}

// enterWelcome shows the intro from the beginning.
func (g *Game) enterWelcome() {
	if g.status != StatusWelcome {
		g.transition(StatusWelcome)
	}
	g.intro.Reset()
	g.pending = false
	g.sound.Play(audio.CueOpen)
}

// recordRun stores the finished run and refreshes the session best.
func (g *Game) recordRun() {
	score := g.player.Score
	g.logger.Info("run finished", "score", score, "level", g.level, "character", g.character)

	if g.history == nil {
		g.sessionBest = max(g.sessionBest, score)
		return
	}
	if err := g.history.RecordRun(score, g.level, g.character); err != nil {
		g.logger.Warn("could not record run", "error", err)
		g.sessionBest = max(g.sessionBest, score)
		return
	}
	best, err := g.history.SessionBest()
	if err != nil {
		g.logger.Warn("could not read session best", "error", err)
		g.sessionBest = max(g.sessionBest, score)
		return
	}
	g.sessionBest = best
}
