package constant

import "time"

// Ambience audio
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// AudioVolume is the default master volume (0..1)
	AudioVolume = 0.4

	// WindCycle is the period of one wind swell
	WindCycle = 6 * time.Second

	// WindCutoff is the one-pole low-pass coefficient applied to wind noise (0..1, lower is darker)
	WindCutoff = 0.04

	// BellInterval is the gap between sleigh bell chimes
	BellInterval = 9 * time.Second

	// BellDuration is the audible length of one chime
	BellDuration = 900 * time.Millisecond

	BellAttack             = 5 * time.Millisecond
	BellFundamentalRelease = 800 * time.Millisecond
	BellOvertoneRelease    = 400 * time.Millisecond
	BellFundamentalFreq    = 1318.5 // E6
	BellOvertoneFreq       = 2637.0
	BellFundamentalMix     = 0.7
	BellOvertoneMix        = 0.3
	WindLevel              = 0.6
	BellLevel              = 0.35
)
