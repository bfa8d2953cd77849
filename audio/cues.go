package audio

import (
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/hollow/config"
	"github.com/lixenwraith/hollow/event"
	"github.com/lixenwraith/hollow/parameter"
)

// Cue identifies a short synthesized sound effect
type Cue uint8

const (
	CuePush Cue = iota
	CueFall
	CueDoor
	CueTorch
	CueSolved
	CueCaught
	CueVictory
	cueCount
)

var cueNames = [cueCount]string{"push", "fall", "door", "torch", "solved", "caught", "victory"}

func (c Cue) String() string {
	if c >= cueCount {
		return "unknown"
	}
	return cueNames[c]
}

// Duration returns the nominal length of a cue
func (c Cue) Duration() time.Duration {
	switch c {
	case CuePush:
		return parameter.CuePushDuration
	case CueFall:
		return parameter.CueFallDuration
	case CueDoor:
		return parameter.CueDoorDuration
	case CueTorch:
		return parameter.CueTorchDuration
	case CueSolved:
		return parameter.CueSolvedDuration
	case CueCaught:
		return parameter.CueCaughtDuration
	case CueVictory:
		return parameter.CueWinDuration
	}
	return 0
}

// Synth builds the streamer for a cue at the given sample rate
// Every returned streamer ends after c.Duration()
func Synth(c Cue, rate beep.SampleRate) beep.Streamer {
	d := c.Duration()
	envelope := func(s beep.Streamer, d time.Duration) beep.Streamer {
		return Shape(s, d, parameter.CueAttack, parameter.CueRelease, rate)
	}

	switch c {
	case CuePush:
		return envelope(Tone(110, d, WaveSquare, rate), d)
	case CueFall:
		return envelope(Glide(600, 120, d, WaveSine, rate), d)
	case CueDoor:
		half := d / 2
		lo, err := generators.SineTone(rate, 330)
		if err != nil {
			return envelope(Tone(330, d, WaveSine, rate), d)
		}
		hi, err := generators.SineTone(rate, 440)
		if err != nil {
			return envelope(Tone(440, d, WaveSine, rate), d)
		}
		return beep.Seq(
			envelope(lo, half),
			envelope(hi, d-half),
		)
	case CueTorch:
		return envelope(gain(Tone(900, d, WaveNoise, rate), 0.4), d)
	case CueSolved:
		return arpeggio(rate, d, envelope, 523.25, 659.25, 783.99)
	case CueCaught:
		return envelope(beep.Mix(
			gain(Glide(160, 60, d, WaveSaw, rate), 0.7),
			gain(Tone(1, d, WaveNoise, rate), 0.3),
		), d)
	case CueVictory:
		return arpeggio(rate, d, envelope, 523.25, 659.25, 783.99, 1046.5)
	}
	return beep.Silence(0)
}

// arpeggio plays notes back to back, splitting d evenly
func arpeggio(rate beep.SampleRate, d time.Duration, envelope func(beep.Streamer, time.Duration) beep.Streamer, notes ...float64) beep.Streamer {
	step := d / time.Duration(len(notes))
	parts := make([]beep.Streamer, 0, len(notes))
	for i, f := range notes {
		length := step
		if i == len(notes)-1 {
			length = d - step*time.Duration(len(notes)-1)
		}
		parts = append(parts, envelope(Tone(f, length, WaveSine, rate), length))
	}
	return beep.Seq(parts...)
}

// Sink receives cue streams for playback
type Sink interface {
	Play(s beep.Streamer)
}

// Cues turns game events into sound effects
type Cues struct {
	sink   Sink
	rate   beep.SampleRate
	volume float64
	muted  bool
}

// NewCues creates a cue player; a nil sink or disabled audio leaves it silent
func NewCues(cfg config.AudioConfig, sink Sink) *Cues {
	return &Cues{
		sink:   sink,
		rate:   beep.SampleRate(parameter.AudioSampleRate),
		volume: cfg.MasterVolume,
		muted:  !cfg.Enabled,
	}
}

// EventTypes implements event.Handler
func (c *Cues) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventBlockPushed,
		event.EventHoleFilled,
		event.EventRoomChangeRequest,
		event.EventTorchToggled,
		event.EventRoomSolved,
		event.EventPlayerCaught,
		event.EventVictory,
	}
}

// HandleEvent implements event.Handler
func (c *Cues) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventBlockPushed:
		c.Play(CuePush)
	case event.EventHoleFilled:
		c.Play(CueFall)
	case event.EventRoomChangeRequest:
		c.Play(CueDoor)
	case event.EventTorchToggled:
		c.Play(CueTorch)
	case event.EventRoomSolved:
		c.Play(CueSolved)
	case event.EventPlayerCaught:
		c.Play(CueCaught)
	case event.EventVictory:
		c.Play(CueVictory)
	}
}

// Play sends a cue to the sink, returns false when nothing was played
func (c *Cues) Play(cue Cue) bool {
	if c.muted || c.sink == nil {
		return false
	}
	c.sink.Play(gain(Synth(cue, c.rate), c.volume))
	return true
}

// ToggleMute flips the mute flag and returns the new value
func (c *Cues) ToggleMute() bool {
	c.muted = !c.muted
	log.Printf("[audio] muted=%v", c.muted)
	return c.muted
}

func (c *Cues) Muted() bool { return c.muted }
