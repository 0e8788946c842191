package engine

import "errors"

// Sentinel errors surfaced to callers per the engine's error taxonomy.
// AdvanceFrame never returns one of these; mixer failures during the
// per-frame volume push are logged and ignored instead (see engine.go).
var (
	// ErrMixerOpenFailed is returned from New when the mixer backend
	// refuses the requested output format.
	ErrMixerOpenFailed = errors.New("engine: mixer failed to open audio output")

	// ErrUnknownBus is returned from New when a BusDef's ChildBuses or
	// DuckBuses names a bus that does not exist in the same BusDefList.
	ErrUnknownBus = errors.New("engine: unknown bus name")

	// ErrNoMasterBus is returned from New when no bus is named "master".
	ErrNoMasterBus = errors.New("engine: no bus named \"master\"")

	// ErrBusCycle is returned from New when the child-bus graph contains a
	// cycle, which would make updateGain recurse forever.
	ErrBusCycle = errors.New("engine: bus graph contains a cycle")

	// ErrBankNotLoaded is returned by UnloadSoundBank when the named bank
	// is not currently registered. This is a programmer error: callers
	// should treat it as fatal in development builds.
	ErrBankNotLoaded = errors.New("engine: sound bank not loaded")

	// ErrBankInitFailed is returned by LoadSoundBank if the supplied loader
	// fails partway through a bank that was not previously registered; the
	// bank is not left half-registered. Wraps the underlying cause (an
	// unknown bus, a decode failure, ...), so errors.Is/As against that
	// cause still works through this sentinel.
	ErrBankInitFailed = errors.New("engine: sound bank failed to initialize")

	// ErrNoBusSpecified is returned when a SoundCollectionDef names no bus.
	ErrNoBusSpecified = errors.New("engine: sound collection specifies no bus")

	// ErrInvalidHandle is returned by PlaySound for a nil SoundHandle and
	// by PlaySoundByName for a name with no loaded collection, alongside a
	// ChannelHandle on ChannelInvalid. It lets callers distinguish "no
	// handle" from "no free channel".
	ErrInvalidHandle = errors.New("engine: invalid sound handle")

	// ErrNoFreeChannel is returned when every channel is full and the new
	// request is not strictly higher priority than the lowest-priority
	// currently-playing sound.
	ErrNoFreeChannel = errors.New("engine: no free channel and nothing to preempt")

	// ErrMixerPlayFailed is returned when the mixer backend rejects a play
	// request; the caller's sound is not recorded as playing.
	ErrMixerPlayFailed = errors.New("engine: mixer rejected play request")
)
