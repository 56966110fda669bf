package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave selects an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveTriangle
)

// tone is a fixed-length oscillator with an optional pitch slide.
type tone struct {
	rate     beep.SampleRate
	from, to float64
	wave     Wave
	phase    float64
	pos      int
	total    int
}

// Tone returns a streamer playing a single note for d.
func Tone(rate beep.SampleRate, freq float64, d time.Duration, wave Wave) beep.Streamer {
	return Slide(rate, freq, freq, d, wave)
}

// Slide returns a streamer gliding linearly from one pitch to another over d.
func Slide(rate beep.SampleRate, from, to float64, d time.Duration, wave Wave) beep.Streamer {
	return &tone{rate: rate, from: from, to: to, wave: wave, total: rate.N(d)}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}
		v := oscillate(t.wave, t.phase)
		samples[i][0] = v
		samples[i][1] = v

		freq := t.from + (t.to-t.from)*float64(t.pos)/float64(t.total)
		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

func oscillate(w Wave, phase float64) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveTriangle:
		return 4*math.Abs(phase-0.5) - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// envelope shapes a stream with a linear attack and release.
type envelope struct {
	s       beep.Streamer
	pos     int
	attack  int
	release int
	total   int
}

// Envelope fades s in over attack and out over the last release of d.
func Envelope(s beep.Streamer, rate beep.SampleRate, d, attack, release time.Duration) beep.Streamer {
	return &envelope{s: s, attack: rate.N(attack), release: rate.N(release), total: rate.N(d)}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.s.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.pos < e.attack {
			vol = float64(e.pos) / float64(e.attack)
		}
		if left := e.total - e.pos; left < e.release {
			vol = math.Max(0, float64(left)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.s.Err() }

// gain scales s by a linear factor. Zero or less is silent.
func gain(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// note plays freq for d with a short click-free envelope.
func note(rate beep.SampleRate, freq float64, d time.Duration, wave Wave) beep.Streamer {
	return Envelope(Tone(rate, freq, d, wave), rate, d, 5*time.Millisecond, d/3)
}

// music is an endless bass arpeggio used as the background loop.
type music struct {
	rate  beep.SampleRate
	notes []float64
	step  int
	pos   int
	phase float64
}

// Music returns the background loop. It never ends on its own.
func Music(rate beep.SampleRate) beep.Streamer {
	return &music{
		rate:  rate,
		notes: []float64{110, 164.81, 130.81, 164.81, 98, 146.83, 123.47, 146.83},
		step:  rate.N(250 * time.Millisecond),
	}
}

func (m *music) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		idx := (m.pos / m.step) % len(m.notes)
		within := float64(m.pos%m.step) / float64(m.step)
		decay := math.Exp(-within * 3)
		v := 0.35 * decay * oscillate(WaveTriangle, m.phase)
		samples[i][0] = v
		samples[i][1] = v

		m.phase += m.notes[idx] / float64(m.rate)
		m.phase -= math.Floor(m.phase)
		m.pos++
	}
	return len(samples), true
}

func (m *music) Err() error { return nil }
