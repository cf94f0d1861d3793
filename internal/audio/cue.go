// Package audio plays the game's named sound cues.
//
// Cues are synthesized on the fly with beep oscillators, so the game ships
// without sound files. When no audio device is available the Silent player
// takes its place and the game runs unchanged.
package audio

// Cue names a sound the game can request.
type Cue int

const (
	CueOpen          Cue = iota // Welcome screen
	CueCharacterMove            // Player stepped one cell
	CueLevelStart               // Level banner shown
	CueGemPickup                // Gem collected
	CueOptionMove               // Selection cursor moved
	CueImpact                   // Bug hit the player
	CueWin                      // Far row reached
	CueLose                     // Last life lost
)

// Cues lists every cue in declaration order.
var Cues = []Cue{
	CueOpen, CueCharacterMove, CueLevelStart, CueGemPickup,
	CueOptionMove, CueImpact, CueWin, CueLose,
}

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueOpen:
		return "open"
	case CueCharacterMove:
		return "character-move"
	case CueLevelStart:
		return "level-start"
	case CueGemPickup:
		return "gem-pickup"
	case CueOptionMove:
		return "option-move"
	case CueImpact:
		return "impact"
	case CueWin:
		return "win"
	case CueLose:
		return "lose"
	default:
		return "unknown"
	}
}

// Player is what the game needs from an audio backend.
type Player interface {
	// Play starts a cue from the beginning, restarting it if already playing.
	Play(c Cue)
	// Stop halts a cue and rewinds it. Stopping a silent cue is a no-op.
	Stop(c Cue)
}

// Silent discards every cue.
type Silent struct{}

// Play does nothing.
func (Silent) Play(Cue) {}

// Stop does nothing.
func (Silent) Stop(Cue) {}
