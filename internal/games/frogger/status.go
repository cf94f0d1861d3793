package frogger

import "fmt"

// Status selects the active screen.
type Status int

const (
	StatusWelcome Status = iota
	StatusCharacterSelection
	StatusLevelBanner
	StatusLivesBanner
	StatusPlay
	StatusLose
)

// String returns the screen name used in logs and snapshots.
func (s Status) String() string {
	switch s {
	case StatusWelcome:
		return "welcome"
	case StatusCharacterSelection:
		return "character_selection"
	case StatusLevelBanner:
		return "level_banner"
	case StatusLivesBanner:
		return "lives_banner"
	case StatusPlay:
		return "play"
	case StatusLose:
		return "lose"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// transitions lists every legal edge of the screen state machine.
var transitions = map[Status][]Status{
	StatusWelcome:            {StatusCharacterSelection},
	StatusCharacterSelection: {StatusLevelBanner},
	StatusLevelBanner:        {StatusPlay},
	StatusLivesBanner:        {StatusPlay},
	StatusPlay:               {StatusLivesBanner, StatusLose, StatusLevelBanner},
	StatusLose:               {StatusLevelBanner, StatusWelcome},
}

// CanTransition reports whether the state machine allows from -> to.
func CanTransition(from, to Status) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// transition moves to a new screen. An edge missing from the table is a
// programming error and panics.
func (g *Game) transition(to Status) {
	if !CanTransition(g.status, to) {
		panic(fmt.Sprintf("frogger: illegal transition %s -> %s", g.status, to))
	}
	g.logger.Debug("transition", "from", g.status, "to", to)
	g.status = to
}
