// Package engine implements the audio engine core: channel arbitration and
// priority preemption over a fixed mixer channel pool, a hierarchical bus
// graph with cross-bus ducking, and reference-counted sound bank loading.
//
// The package consumes an abstract Mixer (see Mixer) rather than owning a
// concrete audio backend. A host application supplies a Mixer implementation,
// a thin binding over whatever output library it already uses (SDL_mixer,
// oto, miniaudio, ...), and drives the engine with AudioEngine.PlaySound and
// AudioEngine.AdvanceFrame.
//
// # Quick start
//
//	cfg := pindrop.AudioConfig{OutputFrequency: 44100, OutputChannels: 2, MixerChannels: 16}
//	buses := pindrop.BusDefList{Buses: []pindrop.BusDef{{Name: "master"}}}
//	eng, err := engine.New(cfg, buses, myMixer)
//	if err != nil {
//		// handle InitFailure
//	}
//	if err := eng.LoadSoundBank(bankDef, loader); err != nil {
//		// handle load failure
//	}
//	handle := eng.GetSoundHandle("explosion")
//	ch, err := eng.PlaySound(handle)
//	eng.AdvanceFrame(worldTimeMs)
package engine
