// Package audio plays synthesised sound cues for simulation events.
//
// The Player owns the speaker. When the speaker cannot be opened (no sound
// device, SSH sessions, CI) it stays in silent mode and every call is a no-op.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// SampleRate is the output rate of every cue.
const SampleRate = beep.SampleRate(44100)

// Player mixes cues and the background loop onto the speaker.
type Player struct {
	mu     sync.Mutex
	logger *log.Logger
	mixer  *beep.Mixer
	master *effects.Volume
	music  *beep.Ctrl
	ready  bool
	muted  bool
	played int
}

// NewPlayer creates a player in silent mode. Call Init to open the speaker.
func NewPlayer(logger *log.Logger, muted bool) *Player {
	if logger == nil {
		logger = log.Default()
	}
	mixer := &beep.Mixer{}
	music := &beep.Ctrl{Streamer: Music(SampleRate), Paused: true}
	mixer.Add(music)
	return &Player{
		logger: logger,
		mixer:  mixer,
		master: &effects.Volume{Streamer: mixer, Base: 2, Silent: muted},
		music:  music,
		muted:  muted,
	}
}

// Init opens the speaker. On failure the player stays silent and the
// error is returned for the caller to report.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		p.logger.Warn("audio unavailable, running silent", "err", err)
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(p.master)
	p.ready = true
	p.logger.Debug("audio ready", "rate", int(SampleRate), "muted", p.muted)
	return nil
}

// Close stops playback and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.ready = false
}

// Ready reports whether the speaker is open.
func (p *Player) Ready() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ready
}

// Muted reports the global mute flag.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// SetMuted silences or restores every cue and the background loop.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.muted = muted
	p.withSpeaker(func() { p.master.Silent = muted })
}

// ToggleMute flips the mute flag and returns the new value.
func (p *Player) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.muted = !p.muted
	muted := p.muted
	p.withSpeaker(func() { p.master.Silent = muted })
	return muted
}

// SetMusic starts or pauses the background loop.
func (p *Player) SetMusic(on bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.withSpeaker(func() { p.music.Paused = !on })
}

// Play queues the cue of every event that has one.
// Game over also stops the background loop.
func (p *Player) Play(events []core.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, e := range events {
		if e.Kind == core.EventGameOver {
			p.withSpeaker(func() { p.music.Paused = true })
		}
		cue := CueFor(e.Kind)
		if cue == CueNone {
			continue
		}
		p.played++
		if !p.ready || p.muted {
			continue
		}
		s := cue.Streamer(SampleRate)
		speaker.Lock()
		p.mixer.Add(s)
		speaker.Unlock()
	}
}

// withSpeaker runs fn under the speaker lock when playback is live.
// In silent mode fn runs directly since nothing else reads the streamers.
func (p *Player) withSpeaker(fn func()) {
	if !p.ready {
		fn()
		return
	}
	speaker.Lock()
	fn()
	speaker.Unlock()
}
