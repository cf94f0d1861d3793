package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Note frequencies used by the cue table.
const (
	noteC4 = 261.63
	noteD4 = 293.66
	noteF4 = 349.23
	noteG4 = 392.00
	noteC5 = 523.25
	noteE5 = 659.25
	noteG5 = 783.99
	noteC6 = 1046.50
	noteE6 = 1318.51
	noteB6 = 1975.53
)

// amplitude keeps synthesized cues well below clipping when mixed.
const amplitude = 0.2

// tone is one step of a cue.
type tone struct {
	freq     float64
	duration time.Duration
	wave     WaveType
}

// cueTones describes each cue as a sequence of tones.
var cueTones = map[Cue][]tone{
	CueOpen: {
		{noteC5, 120 * time.Millisecond, WaveSine},
		{noteE5, 120 * time.Millisecond, WaveSine},
		{noteG5, 120 * time.Millisecond, WaveSine},
		{noteC6, 240 * time.Millisecond, WaveSine},
	},
	CueCharacterMove: {
		{180, 40 * time.Millisecond, WaveSquare},
	},
	CueLevelStart: {
		{noteG4, 180 * time.Millisecond, WaveSquare},
		{noteC5, 180 * time.Millisecond, WaveSquare},
		{noteE5, 180 * time.Millisecond, WaveSquare},
		{noteG5, 360 * time.Millisecond, WaveSquare},
	},
	CueGemPickup: {
		{noteE6, 70 * time.Millisecond, WaveSine},
		{noteB6, 110 * time.Millisecond, WaveSine},
	},
	CueOptionMove: {
		{660, 40 * time.Millisecond, WaveSine},
	},
	CueImpact: {
		{0, 160 * time.Millisecond, WaveNoise},
		{90, 120 * time.Millisecond, WaveSquare},
	},
	CueWin: {
		{noteC5, 100 * time.Millisecond, WaveSaw},
		{noteE5, 100 * time.Millisecond, WaveSaw},
		{noteG5, 100 * time.Millisecond, WaveSaw},
		{noteC6, 100 * time.Millisecond, WaveSaw},
		{noteE6, 200 * time.Millisecond, WaveSaw},
	},
	CueLose: {
		{noteG4, 220 * time.Millisecond, WaveSaw},
		{noteF4, 220 * time.Millisecond, WaveSaw},
		{noteD4, 220 * time.Millisecond, WaveSaw},
		{noteC4, 440 * time.Millisecond, WaveSaw},
	},
}

// oscillator generates a raw wave with a short linear fade-out.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a bounded streamer for a single tone.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	if o.position >= o.duration {
		return 0, false
	}
	for i := range samples {
		if o.position >= o.duration {
			return i, true
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		// Fade the last fifth to avoid clicks between tones
		env := 1.0
		tail := o.duration / 5
		if remaining := o.duration - o.position; tail > 0 && remaining < tail {
			env = float64(remaining) / float64(tail)
		}

		val *= amplitude * env
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// cueStreamer builds a fresh streamer for a cue. Each call starts from the
// beginning, which is how cues are rewound.
func cueStreamer(c Cue, rate beep.SampleRate) beep.Streamer {
	tones := cueTones[c]
	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		parts = append(parts, NewOscillator(t.freq, t.duration, t.wave, rate))
	}
	return beep.Seq(parts...)
}

// cueLength returns the total number of samples a cue produces.
func cueLength(c Cue, rate beep.SampleRate) int {
	n := 0
	for _, t := range cueTones[c] {
		n += rate.N(t.duration)
	}
	return n
}
