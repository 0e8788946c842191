package engine

import (
	"log"

	"github.com/NoelToby/pindrop/audio"
)

// Option configures an AudioEngine at construction time.
type Option func(*AudioEngine)

// WithLogger overrides the default logger used for the engine's non-fatal
// "logged and ignored" error paths (volume-push mixer failures, Stop mixer
// failures). Defaults to log.Default().
func WithLogger(l *log.Logger) Option {
	return func(e *AudioEngine) { e.logger = l }
}

// WithDecoderRegistry overrides the audio.Registry used to resolve sample
// files during sound bank loading. Defaults to DefaultDecoderRegistry.
func WithDecoderRegistry(reg *audio.Registry) Option {
	return func(e *AudioEngine) { e.decoders = reg }
}
