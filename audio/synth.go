package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/hollow/vmath"
)

// Wave selects the oscillator shape
type Wave uint8

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// tone is a fixed-length oscillator with an optional linear frequency glide
type tone struct {
	from, to float64
	phase    float64
	position int
	length   int
	wave     Wave
	rate     beep.SampleRate
	rng      *vmath.FastRand
}

// Tone generates a constant-frequency wave of the given duration
func Tone(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return Glide(freq, freq, d, wave, rate)
}

// Glide generates a wave sweeping linearly from one frequency to another
func Glide(from, to float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &tone{
		from:   from,
		to:     to,
		length: rate.N(d),
		wave:   wave,
		rate:   rate,
		rng:    vmath.NewFastRand(uint64(from*1000) + 1),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.position >= t.length {
		return 0, false
	}
	for i := range samples {
		if t.position >= t.length {
			return i, true
		}
		progress := float64(t.position) / float64(t.length)
		freq := t.from + (t.to-t.from)*progress

		var v float64
		switch t.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			if t.phase < 0.5 {
				v = 0.5
			} else {
				v = -0.5
			}
		case WaveSaw:
			v = 2*t.phase - 1
		case WaveNoise:
			v = t.rng.Float64()*2 - 1
		}
		samples[i][0] = v
		samples[i][1] = v

		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// shape applies linear attack and release ramps to a streamer of known length
type shape struct {
	s        beep.Streamer
	position int
	length   int
	attack   int
	release  int
}

// Shape wraps s with an attack/release envelope; output stops after d
func Shape(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &shape{
		s:       s,
		length:  rate.N(d),
		attack:  rate.N(attack),
		release: rate.N(release),
	}
}

func (e *shape) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.length {
		return 0, false
	}
	if rest := e.length - e.position; len(samples) > rest {
		samples = samples[:rest]
	}
	n, ok = e.s.Stream(samples)
	for i := 0; i < n; i++ {
		g := e.gain(e.position)
		samples[i][0] *= g
		samples[i][1] *= g
		e.position++
	}
	return n, ok
}

func (e *shape) gain(pos int) float64 {
	g := 1.0
	if e.attack > 0 && pos < e.attack {
		g = float64(pos) / float64(e.attack)
	}
	if tail := e.length - pos; e.release > 0 && tail < e.release {
		g = math.Min(g, float64(tail)/float64(e.release))
	}
	return g
}

func (e *shape) Err() error { return e.s.Err() }

// gain scales a streamer on a log2 curve; zero or negative volume is silence
func gain(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   math.Log2(vol),
	}
}
