package audio

import (
	"fmt"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/hollow/parameter"
)

// Speaker mixes cue streams onto the system audio device
type Speaker struct {
	mixer *beep.Mixer
}

// OpenSpeaker initializes the audio device and starts an empty mixer
func OpenSpeaker() (*Speaker, error) {
	rate := beep.SampleRate(parameter.AudioSampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferWindow)); err != nil {
		return nil, fmt.Errorf("speaker init: %w", err)
	}
	mixer := &beep.Mixer{}
	speaker.Play(mixer)
	return &Speaker{mixer: mixer}, nil
}

// Play implements Sink
func (s *Speaker) Play(st beep.Streamer) {
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Close stops playback and releases the device
func (s *Speaker) Close() {
	speaker.Clear()
	speaker.Close()
}
