package engine

import (
	"fmt"
	"log"

	pindrop "github.com/NoelToby/pindrop"
)

// Source is one loaded, playable variant of a SoundCollection: decoded
// audio data plus a kind tag. Play/SetGain delegate straight to the Mixer;
// decoding and resampling happen once, ahead of time, in newSoundCollection.
type Source struct {
	kind SourceKind
	gain float32
	pcm  []byte // decoded, resampled PCM handed to the mixer verbatim
}

// SourceKind distinguishes a buffer-playable variant from a stream-only
// one. A collection whose def has Stream set holds at most one Source, of
// kind SourceStream (see newSoundCollection).
type SourceKind int

const (
	SourceBuffer SourceKind = iota
	SourceStream
)

// Gain returns this variant's own gain, to be multiplied against the
// owning collection's gain before being pushed to the mixer.
func (s *Source) Gain() float32 { return s.gain }

// Play starts this variant on ch (ignored for stream sources; the mixer
// has exactly one streaming slot). loop forces infinite looping.
func (s *Source) Play(mixer Mixer, ch ChannelID, loop bool) error {
	loops := 0
	if loop {
		loops = -1
	}
	if s.kind == SourceStream {
		return mixer.PlayMusic(s.pcm, loops)
	}
	return mixer.PlayChannel(ch, s.pcm, loops)
}

// SetGain pushes this variant's mixer volume for ch (or the stream slot),
// logging and ignoring a mixer error the same way the per-frame volume
// push does.
func (s *Source) SetGain(logger *log.Logger, mixer Mixer, ch ChannelID, gain float32) {
	setChannelVolume(logger, mixer, ch, gainToVolume(float64(gain)))
}

// SoundCollection is a named logical sound: a bus binding, a priority, loop
// and stream flags, and the loaded variants a play request selects among.
type SoundCollection struct {
	def      pindrop.SoundCollectionDef
	bus      *Bus
	sources  []*Source
	nextPick int // round-robin cursor; see Select
	refCount int
}

// Def returns the collection's immutable definition record.
func (c *SoundCollection) Def() pindrop.SoundCollectionDef { return c.def }

// Bus returns the bus this collection is routed to.
func (c *SoundCollection) Bus() *Bus { return c.bus }

// Select chooses one loaded Source. The policy is round-robin: stable,
// deterministic, and requires no seeded RNG, which keeps variant selection
// trivially reproducible in tests.
func (c *SoundCollection) Select() *Source {
	if len(c.sources) == 0 {
		return nil
	}
	s := c.sources[c.nextPick%len(c.sources)]
	c.nextPick++
	return s
}

// newSoundCollection decodes every variant named in def.Variants via
// decode, and stores the results as Source values. decode resolves a
// filename to raw PCM bytes already in the mixer's expected wire format
// (interleaved 16-bit signed little-endian); see CollectionLoader and
// decodeAndResample.
func newSoundCollection(def pindrop.SoundCollectionDef, bus *Bus, decode func(filename string) ([]byte, error)) (*SoundCollection, error) {
	if def.Bus == "" {
		return nil, ErrNoBusSpecified
	}
	c := &SoundCollection{def: def, bus: bus}

	kind := SourceBuffer
	if def.Stream {
		kind = SourceStream
	}

	for _, variant := range def.Variants {
		pcm, err := decode(variant.Filename)
		if err != nil {
			return nil, fmt.Errorf("loading variant %q for collection %q: %w", variant.Filename, def.Name, err)
		}
		c.sources = append(c.sources, &Source{kind: kind, gain: variant.Gain, pcm: pcm})
		if def.Stream {
			// Invariant: stream collections hold exactly one source.
			break
		}
	}

	return c, nil
}
