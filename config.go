package audpbx

// AudioConfig holds the parameters used to open the mixer backend. The core
// never parses these from disk itself — callers build one from whatever
// serialized format their asset pipeline uses and hand it to engine.New.
type AudioConfig struct {
	OutputFrequency  int
	OutputChannels   int
	OutputBufferSize int
	MixerChannels    int
}

// BusDef is an immutable bus description, resolved by name at engine init
// time. ChildBuses and DuckBuses reference other BusDef.Name values.
type BusDef struct {
	Name       string
	Gain       float32
	ChildBuses []string
	DuckBuses  []string

	// DuckFadeInMs and DuckFadeOutMs are the per-bus interpolation rates for
	// duck gain (see engine.Bus.updateDuckGain). Zero selects the engine's
	// default rate (150 ms).
	DuckFadeInMs  float64
	DuckFadeOutMs float64
}

// BusDefList is the top-level record produced by whatever bus-definition
// loader the host application uses.
type BusDefList struct {
	Buses []BusDef
}

// AudioSample names one playable file and its per-variant gain.
type AudioSample struct {
	Filename string
	Gain     float32
}

// SoundCollectionDef is an immutable logical-sound description: a bus
// binding, a priority, loop/stream flags, and the list of variants a play
// request selects among.
type SoundCollectionDef struct {
	Name      string
	Bus       string
	Gain      float32
	Priority  float64
	Loop      bool
	Stream    bool
	Variants  []AudioSample
}

// SoundBankDef names the sound collection definition files a SoundBank
// loads together. Filenames map to already-resolved SoundCollectionDef
// paths; resolving a path to a SoundCollectionDef is the loader's job, not
// the core's (see engine.CollectionLoader).
type SoundBankDef struct {
	Name      string
	Filenames []string
}
