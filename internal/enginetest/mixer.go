// Package enginetest provides a hand-rolled, inspectable Mixer
// implementation for exercising the engine package without a real audio
// backend, in the style of internal/audiotest's mock audio.Source.
package enginetest

import "github.com/NoelToby/pindrop/engine"

// channelState is one buffer channel's (or the streaming slot's) recorded
// state, inspectable by tests after driving an AudioEngine.
type channelState struct {
	playing bool
	data    []byte
	loops   int
	volume  int
}

// FakeMixer is a Mixer that records every call instead of producing audio,
// so tests can assert on exactly what the engine asked of it. It is not
// safe for concurrent use, matching the engine's single-goroutine contract.
type FakeMixer struct {
	opened     bool
	freq       int
	channels   int
	bufferSize int

	pool   []channelState
	music  channelState
	paused bool

	// OpenAudioErr, PlayChannelErr, PlayMusicErr, HaltErr, FadeOutErr, and
	// VolumeErr let a test force a failure path without a real backend.
	OpenAudioErr   error
	PlayChannelErr error
	PlayMusicErr   error
	HaltErr        error
	FadeOutErr     error
	VolumeErr      error

	// Calls records the name of every method invoked, in order, for tests
	// that want to assert on the call sequence rather than just end state.
	Calls []string
}

// NewFakeMixer returns a FakeMixer with no channels allocated yet; call
// AllocateChannels (or let engine.New do it) before use.
func NewFakeMixer() *FakeMixer {
	return &FakeMixer{}
}

func (m *FakeMixer) OpenAudio(freq, channels, bufferSize int) error {
	m.Calls = append(m.Calls, "OpenAudio")
	if m.OpenAudioErr != nil {
		return m.OpenAudioErr
	}
	m.opened = true
	m.freq, m.channels, m.bufferSize = freq, channels, bufferSize
	return nil
}

func (m *FakeMixer) AllocateChannels(n int) int {
	m.Calls = append(m.Calls, "AllocateChannels")
	m.pool = make([]channelState, n)
	return n
}

func (m *FakeMixer) AllocatedChannelCount() int { return len(m.pool) }

func (m *FakeMixer) PlayChannel(ch engine.ChannelID, data []byte, loops int) error {
	m.Calls = append(m.Calls, "PlayChannel")
	if m.PlayChannelErr != nil {
		return m.PlayChannelErr
	}
	i := int(ch)
	if i < 0 || i >= len(m.pool) {
		return nil
	}
	m.pool[i] = channelState{playing: true, data: data, loops: loops, volume: m.pool[i].volume}
	return nil
}

func (m *FakeMixer) PlayMusic(data []byte, loops int) error {
	m.Calls = append(m.Calls, "PlayMusic")
	if m.PlayMusicErr != nil {
		return m.PlayMusicErr
	}
	m.music = channelState{playing: true, data: data, loops: loops, volume: m.music.volume}
	return nil
}

func (m *FakeMixer) Playing(ch engine.ChannelID) bool {
	i := int(ch)
	if i < 0 || i >= len(m.pool) {
		return false
	}
	return m.pool[i].playing
}

func (m *FakeMixer) PlayingMusic() bool { return m.music.playing }

func (m *FakeMixer) Halt(ch engine.ChannelID) error {
	m.Calls = append(m.Calls, "Halt")
	if m.HaltErr != nil {
		return m.HaltErr
	}
	i := int(ch)
	if i < 0 || i >= len(m.pool) {
		return nil
	}
	m.pool[i].playing = false
	return nil
}

func (m *FakeMixer) HaltMusic() error {
	m.Calls = append(m.Calls, "HaltMusic")
	if m.HaltErr != nil {
		return m.HaltErr
	}
	m.music.playing = false
	return nil
}

func (m *FakeMixer) FadeOut(ch engine.ChannelID, ms int) error {
	m.Calls = append(m.Calls, "FadeOut")
	if m.FadeOutErr != nil {
		return m.FadeOutErr
	}
	i := int(ch)
	if i < 0 || i >= len(m.pool) {
		return nil
	}
	m.pool[i].playing = false
	return nil
}

func (m *FakeMixer) FadeOutMusic(ms int) error {
	m.Calls = append(m.Calls, "FadeOutMusic")
	if m.FadeOutErr != nil {
		return m.FadeOutErr
	}
	m.music.playing = false
	return nil
}

func (m *FakeMixer) Volume(ch engine.ChannelID, v int) error {
	m.Calls = append(m.Calls, "Volume")
	if m.VolumeErr != nil {
		return m.VolumeErr
	}
	i := int(ch)
	if i < 0 || i >= len(m.pool) {
		return nil
	}
	m.pool[i].volume = v
	return nil
}

func (m *FakeMixer) CurrentVolume(ch engine.ChannelID) int {
	i := int(ch)
	if i < 0 || i >= len(m.pool) {
		return 0
	}
	return m.pool[i].volume
}

func (m *FakeMixer) VolumeMusic(v int) error {
	m.Calls = append(m.Calls, "VolumeMusic")
	if m.VolumeErr != nil {
		return m.VolumeErr
	}
	m.music.volume = v
	return nil
}

func (m *FakeMixer) CurrentVolumeMusic() int { return m.music.volume }

func (m *FakeMixer) Pause() {
	m.Calls = append(m.Calls, "Pause")
	m.paused = true
}

func (m *FakeMixer) Resume() {
	m.Calls = append(m.Calls, "Resume")
	m.paused = false
}

// Paused reports whether Pause was called more recently than Resume.
func (m *FakeMixer) Paused() bool { return m.paused }
