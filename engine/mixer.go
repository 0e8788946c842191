package engine

import (
	"log"
	"math"
)

// ChannelID identifies one voice slot. Non-negative values are buffer
// channel indices in 0..N; ChannelStream is the single distinguished
// streaming slot; ChannelInvalid marks "no channel" (a failed allocation or
// a handle that isn't currently playing anywhere).
type ChannelID int

const (
	// ChannelInvalid marks the absence of a channel: preemption failed, the
	// mixer rejected playback, or a handle has no live voice.
	ChannelInvalid ChannelID = -1

	// ChannelStream is the single streaming-music slot. At most one
	// PlayingSound may ever hold this channel at a time.
	ChannelStream ChannelID = -100
)

// MaxVolume is the integer volume ceiling the Mixer contract expects;
// float gains in [0,1] are rounded to the nearest int in [0, MaxVolume]
// before being pushed to the mixer (see gainToVolume).
const MaxVolume = 128

// Mixer is the external collaborator the engine core drives. It owns a
// fixed pool of buffer channels plus one streaming slot, and is assumed to
// be thread-safe — the engine calls it synchronously from a single
// game-logic thread, but the mixer backend may run its own audio thread
// internally.
//
// Implementations are out of scope for this package; a real implementation
// binds these methods to something like SDL_mixer, oto, or miniaudio.
type Mixer interface {
	// OpenAudio initializes the output device. Returns an error if the
	// requested format cannot be opened.
	OpenAudio(freq, channels, bufferSize int) error

	// AllocateChannels sets the buffer-channel pool size to n and returns
	// the number actually allocated.
	AllocateChannels(n int) int

	// AllocatedChannelCount returns the current buffer-channel pool size.
	AllocatedChannelCount() int

	// PlayChannel starts playback of data on ch. loops == -1 means play
	// forever; loops == 0 means play once.
	PlayChannel(ch ChannelID, data []byte, loops int) error

	// PlayMusic starts the single streaming voice. loops has the same
	// meaning as in PlayChannel.
	PlayMusic(data []byte, loops int) error

	// Playing reports whether ch currently holds a live voice.
	Playing(ch ChannelID) bool

	// PlayingMusic reports whether the streaming voice is live.
	PlayingMusic() bool

	// Halt stops ch immediately, with no fade.
	Halt(ch ChannelID) error

	// HaltMusic stops the streaming voice immediately.
	HaltMusic() error

	// FadeOut stops ch over the given number of milliseconds.
	FadeOut(ch ChannelID, ms int) error

	// FadeOutMusic stops the streaming voice over the given number of
	// milliseconds.
	FadeOutMusic(ms int) error

	// Volume sets ch's output volume in [0, MaxVolume].
	Volume(ch ChannelID, v int) error

	// CurrentVolume returns ch's current output volume in [0, MaxVolume].
	// ChannelHandle.Stop uses this to decide between a fade and a hard
	// halt (fading from zero volume is both inaudible and, on some
	// backends, refused outright).
	CurrentVolume(ch ChannelID) int

	// VolumeMusic sets the streaming voice's output volume.
	VolumeMusic(v int) error

	// CurrentVolumeMusic returns the streaming voice's current volume.
	CurrentVolumeMusic() int

	// Pause suspends every buffer channel and the streaming voice.
	Pause()

	// Resume resumes every buffer channel and the streaming voice.
	Resume()
}

// isPlaying dispatches ch's is-playing predicate to the stream or buffer
// form of Mixer.Playing, per the ChannelStream sentinel contract.
func isPlaying(mixer Mixer, ch ChannelID) bool {
	if ch == ChannelStream {
		return mixer.PlayingMusic()
	}
	return mixer.Playing(ch)
}

// haltChannel dispatches ch's immediate stop to the stream or buffer form.
// A mixer error here is logged and ignored, never propagated.
func haltChannel(logger *log.Logger, mixer Mixer, ch ChannelID) {
	var err error
	if ch == ChannelStream {
		err = mixer.HaltMusic()
	} else {
		err = mixer.Halt(ch)
	}
	if err != nil {
		logger.Printf("engine: error halting channel %d: %v", ch, err)
	}
}

// fadeOutChannel dispatches ch's fade-out stop to the stream or buffer
// form, logging and ignoring any mixer error.
func fadeOutChannel(logger *log.Logger, mixer Mixer, ch ChannelID, ms int) {
	var err error
	if ch == ChannelStream {
		err = mixer.FadeOutMusic(ms)
	} else {
		err = mixer.FadeOut(ch, ms)
	}
	if err != nil {
		logger.Printf("engine: error fading out channel %d: %v", ch, err)
	}
}

// channelVolume dispatches ch's current-volume query to the stream or
// buffer form.
func channelVolume(mixer Mixer, ch ChannelID) int {
	if ch == ChannelStream {
		return mixer.CurrentVolumeMusic()
	}
	return mixer.CurrentVolume(ch)
}

// gainToVolume rounds gain (expected in [0,1], but not assumed clamped) to
// the nearest integer volume and clamps it to [0, MaxVolume].
func gainToVolume(gain float64) int {
	v := int(math.Round(gain * MaxVolume))
	if v < 0 {
		return 0
	}
	if v > MaxVolume {
		return MaxVolume
	}
	return v
}

// setChannelVolume dispatches ch's volume push to the stream or buffer
// form, logging and ignoring any mixer error.
func setChannelVolume(logger *log.Logger, mixer Mixer, ch ChannelID, v int) {
	var err error
	if ch == ChannelStream {
		err = mixer.VolumeMusic(v)
	} else {
		err = mixer.Volume(ch, v)
	}
	if err != nil {
		logger.Printf("engine: error setting volume on channel %d: %v", ch, err)
	}
}
