// SPDX-License-Identifier: EPL-2.0

// Package audpbx defines the data records a host application builds to
// configure and drive the audio playback engine in package engine:
// AudioConfig (mixer backend parameters), BusDefList (the mixer bus graph),
// and SoundCollectionDef/SoundBankDef (the loadable sound catalog).
//
// The core never parses these from a serialized asset format itself — that
// is the host application's job, via whatever loader implements
// engine.CollectionLoader for its own asset pipeline.
//
// # Building an engine
//
//	cfg := audpbx.AudioConfig{
//	    OutputFrequency:  22050,
//	    OutputChannels:   1,
//	    OutputBufferSize: 2048,
//	    MixerChannels:    16,
//	}
//	buses := audpbx.BusDefList{Buses: []audpbx.BusDef{
//	    {Name: "master", Gain: 1, ChildBuses: []string{"sfx", "music"}},
//	    {Name: "sfx", Gain: 1, DuckBuses: []string{"music"}},
//	    {Name: "music", Gain: 0.8, DuckFadeInMs: 150, DuckFadeOutMs: 400},
//	}}
//
//	e, err := engine.New(cfg, buses, mixer)
//
// # Loading sound banks
//
// A SoundBankDef names the SoundCollectionDef files a bank loads together;
// engine.AudioEngine.LoadSoundBank resolves each path through a
// engine.CollectionLoader and shares any collection already referenced by
// another loaded bank:
//
//	bank := audpbx.SoundBankDef{
//	    Name:      "level1",
//	    Filenames: []string{"sfx/explosion.def", "sfx/footstep.def"},
//	}
//	err := e.LoadSoundBank(bank, loader)
//
// # Decoding and resampling
//
// The audio subpackage decodes sample files and resamples/downmixes them
// to the engine's output rate; see its package documentation for the
// pipeline engine.decodeAndResample builds from it.
package audpbx
