// SPDX-License-Identifier: EPL-2.0

// Package audio is the decode-and-convert layer the playback engine's sound
// bank loader sits on top of: a format-agnostic Source/Decoder/Registry
// trio, a Resampler, and a MonoMixer, composed by engine.decodeAndResample
// into the fixed pipeline every sound variant goes through once, at load
// time, before it becomes mixer-ready PCM.
//
// # Source interface
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Each format package (formats/wav, formats/mp3, formats/vorbis,
// formats/aiff) decodes its container into a Source; nothing past that
// point in the pipeline cares which format produced it.
//
// # Resampling and downmixing
//
// The engine's target output rate (AudioConfig.OutputFrequency) rarely
// matches a variant's source rate, and most source material isn't
// pre-mixed to mono, so every load passes through both stages:
//
//	resampler := audio.NewResampler(source, targetRate)
//	mono := audio.NewMonoMixer(resampler)
//
// ResampleToMono16PCM wires both stages together and collects the result
// as the interleaved 16-bit PCM a Mixer voice expects; this is what
// engine.decodeAndResample calls, once per variant, on first load of a
// sound collection.
//
// # Format registry
//
// engine.DefaultDecoderRegistry registers the four bundled format
// decoders by extension; a CollectionLoader never needs to know which
// format a sample filename names, only how to open it:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.Get("wav")
//
// # Sample format
//
// Samples are float32 in [-1.0, 1.0] at every stage except the final PCM16
// encode; clamping to that range happens once, at the int16 conversion, not
// at each intermediate stage.
package audio
