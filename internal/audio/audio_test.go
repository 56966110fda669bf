package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// drain streams s to completion and returns the sample count.
func drain(t *testing.T, s beep.Streamer, limit int) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for total < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if buf[i][0] < -1 || buf[i][0] > 1 {
				t.Fatalf("sample %d out of range: %f", total+i, buf[i][0])
			}
		}
		total += n
		if !ok {
			return total
		}
	}
	return total
}

func TestToneLength(t *testing.T) {
	tests := []struct {
		wave Wave
		d    time.Duration
	}{
		{WaveSine, 100 * time.Millisecond},
		{WaveSquare, 50 * time.Millisecond},
		{WaveTriangle, 10 * time.Millisecond},
	}

	for _, tt := range tests {
		s := Tone(SampleRate, 440, tt.d, tt.wave)
		want := SampleRate.N(tt.d)
		if got := drain(t, s, want*2); got != want {
			t.Errorf("wave %d: streamed %d samples, want %d", tt.wave, got, want)
		}
		if s.Err() != nil {
			t.Errorf("wave %d: unexpected error %v", tt.wave, s.Err())
		}
	}
}

func TestEnvelopeFadesOut(t *testing.T) {
	d := 20 * time.Millisecond
	s := Envelope(Tone(SampleRate, 440, d, WaveSquare), SampleRate, d, time.Millisecond, 5*time.Millisecond)

	buf := make([][2]float64, SampleRate.N(d))
	n, _ := s.Stream(buf)
	if n != len(buf) {
		t.Fatalf("streamed %d of %d samples", n, len(buf))
	}
	if buf[0][0] != 0 {
		t.Errorf("first sample = %f, want silent attack start", buf[0][0])
	}
	last := buf[n-1][0]
	if last > 0.01 || last < -0.01 {
		t.Errorf("last sample = %f, want faded out", last)
	}
}

func TestCueFor(t *testing.T) {
	tests := []struct {
		kind core.EventKind
		want Cue
	}{
		{core.EventJump, CueJump},
		{core.EventHit, CueHit},
		{core.EventPickup, CuePickup},
		{core.EventPowerUp, CuePowerUp},
		{core.EventBossWarning, CueBossWarning},
		{core.EventBossDefeated, CueBossDefeated},
		{core.EventGameOver, CueGameOver},
		{core.EventNewHighScore, CueNewHighScore},
		{core.EventPowerExpired, CueNone},
		{core.EventBossStart, CueNone},
	}
	for _, tt := range tests {
		if got := CueFor(tt.kind); got != tt.want {
			t.Errorf("CueFor(%s) = %s, want %s", tt.kind, got, tt.want)
		}
	}
}

func TestCuesAreFinite(t *testing.T) {
	for c := CueJump; c <= CueNewHighScore; c++ {
		s := c.Streamer(SampleRate)
		if s == nil {
			t.Fatalf("%s has no streamer", c)
		}
		limit := SampleRate.N(2 * time.Second)
		n := drain(t, s, limit)
		if n == 0 || n >= limit {
			t.Errorf("%s streamed %d samples, want a short finite cue", c, n)
		}
	}
	if CueNone.Streamer(SampleRate) != nil {
		t.Error("CueNone should have no streamer")
	}
}

func TestMusicLoops(t *testing.T) {
	s := Music(SampleRate)
	limit := SampleRate.N(3 * time.Second)
	if n := drain(t, s, limit); n < limit {
		t.Errorf("background loop ended after %d samples", n)
	}
}

func TestSilentPlayer(t *testing.T) {
	p := NewPlayer(nil, false)
	if p.Ready() {
		t.Fatal("player should start silent until Init")
	}

	p.Play([]core.Event{
		{Kind: core.EventJump},
		{Kind: core.EventPowerExpired},
		{Kind: core.EventGameOver},
	})
	if p.played != 2 {
		t.Errorf("played %d cues, want 2", p.played)
	}
	if !p.music.Paused {
		t.Error("game over should pause the background loop")
	}

	p.SetMusic(true)
	if p.music.Paused {
		t.Error("SetMusic(true) should resume the loop")
	}
	p.Close()
}

func TestMuteToggle(t *testing.T) {
	p := NewPlayer(nil, true)
	if !p.Muted() || !p.master.Silent {
		t.Fatal("player should honour the persisted mute flag")
	}

	if p.ToggleMute() {
		t.Error("ToggleMute should unmute")
	}
	if p.master.Silent {
		t.Error("master volume still silent after unmute")
	}

	p.SetMuted(true)
	if !p.Muted() || !p.master.Silent {
		t.Error("SetMuted(true) did not silence output")
	}
}
