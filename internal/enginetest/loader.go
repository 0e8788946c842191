package enginetest

import (
	"errors"
	"fmt"
	"io"
	"strings"

	pindrop "github.com/NoelToby/pindrop"
)

// ErrNoSuchFile is returned by FakeLoader.OpenAudioFile for a filename it
// was not seeded with.
var ErrNoSuchFile = errors.New("enginetest: no such file")

// FakeLoader is a CollectionLoader backed by in-memory maps, so bank-loading
// tests need no filesystem or asset-pipeline format, matching the style of
// internal/audiotest's in-memory mock audio.Source.
type FakeLoader struct {
	Defs  map[string]pindrop.SoundCollectionDef
	Files map[string][]byte
}

// NewFakeLoader returns a loader with nothing registered yet; use AddDef and
// AddFile to seed it.
func NewFakeLoader() *FakeLoader {
	return &FakeLoader{
		Defs:  make(map[string]pindrop.SoundCollectionDef),
		Files: make(map[string][]byte),
	}
}

// AddDef registers def under path, returned verbatim by LoadCollectionDef.
func (l *FakeLoader) AddDef(path string, def pindrop.SoundCollectionDef) {
	l.Defs[path] = def
}

// AddFile registers raw bytes under filename, readable via OpenAudioFile. It
// is valid "wav" content when named with a .wav extension, so the real
// decoder stack can run unmodified against it.
func (l *FakeLoader) AddFile(filename string, data []byte) {
	l.Files[filename] = data
}

func (l *FakeLoader) LoadCollectionDef(path string) (pindrop.SoundCollectionDef, error) {
	def, ok := l.Defs[path]
	if !ok {
		return pindrop.SoundCollectionDef{}, fmt.Errorf("%w: %q", ErrNoSuchFile, path)
	}
	return def, nil
}

func (l *FakeLoader) OpenAudioFile(filename string) (io.ReadCloser, error) {
	data, ok := l.Files[filename]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoSuchFile, filename)
	}
	return io.NopCloser(strings.NewReader(string(data))), nil
}
