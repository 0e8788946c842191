package engine

import (
	"github.com/NoelToby/pindrop/audio"
	"github.com/NoelToby/pindrop/formats/aiff"
	"github.com/NoelToby/pindrop/formats/mp3"
	"github.com/NoelToby/pindrop/formats/vorbis"
	"github.com/NoelToby/pindrop/formats/wav"
)

// DefaultDecoderRegistry returns an audio.Registry with the four bundled
// format decoders registered by file extension. New uses this unless a
// caller supplies its own via WithDecoderRegistry.
func DefaultDecoderRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	return reg
}
