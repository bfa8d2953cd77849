package parameter

import "time"

// Audio Cues
const (
	AudioSampleRate   = 44100
	AudioBufferWindow = 100 * time.Millisecond
	AudioMasterVolume = 0.5

	CuePushDuration   = 60 * time.Millisecond
	CueFallDuration   = 300 * time.Millisecond
	CueDoorDuration   = 180 * time.Millisecond
	CueSolvedDuration = 400 * time.Millisecond
	CueCaughtDuration = 700 * time.Millisecond
	CueTorchDuration  = 120 * time.Millisecond
	CueWinDuration    = 900 * time.Millisecond
	CueAttack         = 5 * time.Millisecond
	CueRelease        = 40 * time.Millisecond
)
