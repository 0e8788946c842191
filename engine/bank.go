package engine

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	pindrop "github.com/NoelToby/pindrop"
	"github.com/NoelToby/pindrop/audio"
)

// CollectionLoader resolves the two kinds of path a SoundBankDef names:
// a SoundCollectionDef file, and the individual audio sample files each
// collection's variants point at. The engine never parses a serialized
// format itself; it only needs these two accessors.
type CollectionLoader interface {
	// LoadCollectionDef resolves path to its parsed definition.
	LoadCollectionDef(path string) (pindrop.SoundCollectionDef, error)

	// OpenAudioFile opens filename for decoding. The caller closes it.
	OpenAudioFile(filename string) (io.ReadCloser, error)
}

// SoundBank is a named, reference-counted group of SoundCollections loaded
// together. Two banks that reference the same collection by name share one
// entry in the engine's collection registry (see AudioEngine.collections).
type SoundBank struct {
	name        string
	collections []string // names of collections this bank references
	refCount    int
}

// Name returns the bank's name.
func (b *SoundBank) Name() string { return b.name }

// LoadSoundBank registers def's collections, sharing any collection already
// referenced by another loaded bank. If the bank is already registered,
// this only increments its reference count.
func (e *AudioEngine) LoadSoundBank(def pindrop.SoundBankDef, loader CollectionLoader) error {
	if bank, ok := e.banks[def.Name]; ok {
		bank.refCount++
		return nil
	}

	bank := &SoundBank{name: def.Name}
	for _, path := range def.Filenames {
		collName, err := e.loadCollectionForBank(path, loader)
		if err != nil {
			return fmt.Errorf("%w: bank %q: %w", ErrBankInitFailed, def.Name, err)
		}
		bank.collections = append(bank.collections, collName)
	}

	bank.refCount = 1
	e.banks[def.Name] = bank
	return nil
}

// UnloadSoundBank decrements the bank's reference count, deinitializing it
// (and decrementing every collection it references) once the count reaches
// zero. Unloading a bank that isn't loaded is a programmer error; it
// returns ErrBankNotLoaded rather than asserting.
func (e *AudioEngine) UnloadSoundBank(name string) error {
	bank, ok := e.banks[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrBankNotLoaded, name)
	}

	bank.refCount--
	if bank.refCount > 0 {
		return nil
	}

	for _, collName := range bank.collections {
		e.releaseCollection(collName)
	}
	delete(e.banks, name)
	return nil
}

// loadCollectionForBank resolves path to a SoundCollectionDef (sharing an
// already-loaded collection keyed by the same def path), loads and decodes
// its variants on first use, and returns the collection's name. Each
// variant's sample filename is indexed separately in e.filenameIndex so
// GetSoundHandleFromFile can resolve a collection from the audio file a
// caller actually has in hand, not the def path that named it.
func (e *AudioEngine) loadCollectionForBank(path string, loader CollectionLoader) (string, error) {
	if name, ok := e.defPathIndex[path]; ok {
		if coll, ok := e.collections[name]; ok {
			coll.refCount++
			return name, nil
		}
	}

	def, err := loader.LoadCollectionDef(path)
	if err != nil {
		return "", fmt.Errorf("loading collection def %q: %w", path, err)
	}

	if coll, ok := e.collections[def.Name]; ok {
		coll.refCount++
		e.defPathIndex[path] = def.Name
		return def.Name, nil
	}

	bus := e.FindBus(def.Bus)
	if bus == nil {
		return "", fmt.Errorf("collection %q: %w: %q", def.Name, ErrUnknownBus, def.Bus)
	}

	coll, err := newSoundCollection(def, bus, func(filename string) ([]byte, error) {
		return decodeAndResample(loader, e.decoders, filename, e.targetRate)
	})
	if err != nil {
		return "", err
	}
	coll.refCount = 1

	e.collections[def.Name] = coll
	e.defPathIndex[path] = def.Name
	for _, variant := range def.Variants {
		e.filenameIndex[variant.Filename] = def.Name
	}
	return def.Name, nil
}

// releaseCollection decrements the named collection's reference count,
// removing it from the registry (and its def-path and sample-filename index
// entries) once the count reaches zero.
func (e *AudioEngine) releaseCollection(name string) {
	coll, ok := e.collections[name]
	if !ok {
		return
	}
	coll.refCount--
	if coll.refCount > 0 {
		return
	}
	delete(e.collections, name)
	for path, n := range e.defPathIndex {
		if n == name {
			delete(e.defPathIndex, path)
		}
	}
	for filename, n := range e.filenameIndex {
		if n == name {
			delete(e.filenameIndex, filename)
		}
	}
}

// decodeAndResample opens filename via loader, decodes it with reg (keyed
// by file extension), and runs it through audio.ResampleToMono16PCM to
// produce interleaved 16-bit little-endian PCM at targetRate ready for a
// Mixer.
func decodeAndResample(loader CollectionLoader, reg *audio.Registry, filename string, targetRate int) ([]byte, error) {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	dec, ok := reg.Get(ext)
	if !ok {
		return nil, fmt.Errorf("engine: no decoder registered for %q (file %q)", ext, filename)
	}

	f, err := loader.OpenAudioFile(filename)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", filename, err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", filename, err)
	}
	defer src.Close()

	pcm, err := audio.ResampleToMono16PCM(src, targetRate, 4096)
	if err != nil {
		return nil, fmt.Errorf("resampling %q: %w", filename, err)
	}
	return pcm, nil
}
