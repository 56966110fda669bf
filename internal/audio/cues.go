package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Cue identifies a short sound effect.
type Cue int

const (
	CueNone Cue = iota
	CueJump
	CueHit
	CuePickup
	CuePowerUp
	CueBossWarning
	CueBossDefeated
	CueGameOver
	CueNewHighScore
)

var cueNames = map[Cue]string{
	CueJump:         "jump",
	CueHit:          "hit",
	CuePickup:       "pickup",
	CuePowerUp:      "powerup",
	CueBossWarning:  "boss_warning",
	CueBossDefeated: "boss_defeated",
	CueGameOver:     "game_over",
	CueNewHighScore: "high_score",
}

func (c Cue) String() string {
	if name, ok := cueNames[c]; ok {
		return name
	}
	return "none"
}

// CueFor maps a simulation event to its sound. Events without a sound map to CueNone.
func CueFor(kind core.EventKind) Cue {
	switch kind {
	case core.EventJump:
		return CueJump
	case core.EventHit:
		return CueHit
	case core.EventPickup:
		return CuePickup
	case core.EventPowerUp:
		return CuePowerUp
	case core.EventBossWarning:
		return CueBossWarning
	case core.EventBossDefeated:
		return CueBossDefeated
	case core.EventGameOver:
		return CueGameOver
	case core.EventNewHighScore:
		return CueNewHighScore
	}
	return CueNone
}

// Streamer synthesises the cue at rate. CueNone returns nil.
func (c Cue) Streamer(rate beep.SampleRate) beep.Streamer {
	ms := time.Millisecond
	switch c {
	case CueJump:
		return gain(Envelope(Slide(rate, 330, 660, 90*ms, WaveSquare), rate, 90*ms, 3*ms, 40*ms), 0.15)
	case CueHit:
		return gain(Envelope(Slide(rate, 180, 70, 140*ms, WaveSquare), rate, 140*ms, 2*ms, 60*ms), 0.2)
	case CuePickup:
		return gain(beep.Seq(
			note(rate, 880, 60*ms, WaveSine),
			note(rate, 1318.51, 90*ms, WaveSine),
		), 0.3)
	case CuePowerUp:
		return gain(beep.Seq(
			note(rate, 523.25, 60*ms, WaveTriangle),
			note(rate, 659.25, 60*ms, WaveTriangle),
			note(rate, 783.99, 60*ms, WaveTriangle),
			note(rate, 1046.5, 120*ms, WaveTriangle),
		), 0.3)
	case CueBossWarning:
		return gain(beep.Seq(
			note(rate, 440, 150*ms, WaveSquare),
			note(rate, 330, 150*ms, WaveSquare),
			note(rate, 440, 150*ms, WaveSquare),
			note(rate, 330, 150*ms, WaveSquare),
		), 0.15)
	case CueBossDefeated:
		return gain(beep.Mix(
			note(rate, 523.25, 400*ms, WaveSine),
			note(rate, 659.25, 400*ms, WaveSine),
			note(rate, 783.99, 400*ms, WaveSine),
		), 0.2)
	case CueGameOver:
		return gain(Envelope(Slide(rate, 392, 98, 700*ms, WaveTriangle), rate, 700*ms, 10*ms, 300*ms), 0.35)
	case CueNewHighScore:
		return gain(beep.Seq(
			note(rate, 783.99, 80*ms, WaveSquare),
			note(rate, 1046.5, 80*ms, WaveSquare),
			note(rate, 1567.98, 160*ms, WaveSquare),
		), 0.12)
	}
	return nil
}
