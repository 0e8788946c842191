package engine

import (
	"fmt"
	"log"
	"sort"

	pindrop "github.com/NoelToby/pindrop"
	"github.com/NoelToby/pindrop/audio"
)

// SoundHandle is a stable reference into the engine's collection registry,
// returned by GetSoundHandle / GetSoundHandleFromFile. A nil handle is the
// "not found" marker.
type SoundHandle = *SoundCollection

// AudioEngine is the top-level façade: it owns the bus graph, the
// collection and sound-bank registries, the currently-playing-sounds
// table, and the master clock, and implements the PlaySound arbitration
// policy and per-frame bus evaluation.
type AudioEngine struct {
	mixer Mixer

	buses     []*Bus
	busByName map[string]int
	masterBus *Bus

	masterGain float64
	mute       bool

	collections   map[string]*SoundCollection
	filenameIndex map[string]string // sample filename -> collection name
	defPathIndex  map[string]string // collection-def path -> collection name, for bank-load sharing
	banks         map[string]*SoundBank

	playing   playingTable
	worldTime WorldTime

	channelCount int
	decoders     *audio.Registry
	targetRate   int

	logger *log.Logger
}

// New opens the mixer, allocates the channel pool, and builds the bus graph
// from busDefs. All steps must succeed or New returns a wrapped error.
func New(cfg pindrop.AudioConfig, busDefs pindrop.BusDefList, mixer Mixer, opts ...Option) (*AudioEngine, error) {
	e := &AudioEngine{
		mixer:         mixer,
		busByName:     make(map[string]int, len(busDefs.Buses)),
		collections:   make(map[string]*SoundCollection),
		filenameIndex: make(map[string]string),
		defPathIndex:  make(map[string]string),
		banks:         make(map[string]*SoundBank),
		channelCount:  cfg.MixerChannels,
		decoders:      DefaultDecoderRegistry(),
		targetRate:    cfg.OutputFrequency,
		logger:        log.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}

	if err := mixer.OpenAudio(cfg.OutputFrequency, cfg.OutputChannels, cfg.OutputBufferSize); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMixerOpenFailed, err)
	}
	mixer.AllocateChannels(cfg.MixerChannels)
	e.playing.entries = make([]PlayingSound, 0, cfg.MixerChannels)

	e.buses = make([]*Bus, len(busDefs.Buses))
	for i, def := range busDefs.Buses {
		e.buses[i] = newBus(def)
		e.busByName[def.Name] = i
	}

	if err := e.resolveBuses(); err != nil {
		return nil, err
	}
	if err := e.detectBusCycle(); err != nil {
		return nil, err
	}

	idx, ok := e.busByName["master"]
	if !ok {
		return nil, ErrNoMasterBus
	}
	e.masterBus = e.buses[idx]

	e.mute = false
	e.masterGain = 1.0

	return e, nil
}

func (e *AudioEngine) resolveBuses() error {
	for _, bus := range e.buses {
		children, err := e.resolveBusNames(bus.def.ChildBuses)
		if err != nil {
			return err
		}
		bus.children = children

		ducks, err := e.resolveBusNames(bus.def.DuckBuses)
		if err != nil {
			return err
		}
		bus.ducks = ducks
	}
	return nil
}

func (e *AudioEngine) resolveBusNames(names []string) ([]int, error) {
	if len(names) == 0 {
		return nil, nil
	}
	out := make([]int, 0, len(names))
	for _, name := range names {
		idx, ok := e.busByName[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownBus, name)
		}
		out = append(out, idx)
	}
	return out, nil
}

// busColor tracks DFS visitation state for detectBusCycle.
type busColor int

const (
	busWhite busColor = iota // unvisited
	busGray                  // on the current recursion path
	busBlack                 // fully explored, known acyclic
)

// detectBusCycle walks the child-bus graph depth-first, failing if any bus
// reaches itself via its own ChildBuses edges. Bus.updateGain recurses
// along these same edges every frame, so an undetected cycle would hang.
func (e *AudioEngine) detectBusCycle() error {
	colors := make([]busColor, len(e.buses))
	var visit func(i int) error
	visit = func(i int) error {
		switch colors[i] {
		case busGray:
			return fmt.Errorf("%w: at bus %q", ErrBusCycle, e.buses[i].Name())
		case busBlack:
			return nil
		}
		colors[i] = busGray
		for _, child := range e.buses[i].children {
			if err := visit(child); err != nil {
				return err
			}
		}
		colors[i] = busBlack
		return nil
	}
	for i := range e.buses {
		if err := visit(i); err != nil {
			return err
		}
	}
	return nil
}

// FindBus returns the bus named name, or nil if no such bus exists.
func (e *AudioEngine) FindBus(name string) *Bus {
	if idx, ok := e.busByName[name]; ok {
		return e.buses[idx]
	}
	return nil
}

// SetMasterGain sets the gain applied at the root of the bus graph.
func (e *AudioEngine) SetMasterGain(gain float64) { e.masterGain = gain }

// MasterGain returns the current master gain.
func (e *AudioEngine) MasterGain() float64 { return e.masterGain }

// SetMute mutes (or unmutes) the entire engine; while muted, every bus's
// effective gain is zero regardless of MasterGain.
func (e *AudioEngine) SetMute(mute bool) { e.mute = mute }

// Mute reports whether the engine is currently muted.
func (e *AudioEngine) Mute() bool { return e.mute }

// Pause suspends every buffer channel and the streaming voice atomically
// from the caller's view.
func (e *AudioEngine) Pause(pause bool) {
	if pause {
		e.mixer.Pause()
		return
	}
	e.mixer.Resume()
}

// Stop fades channel out over a small fixed duration, logging and
// continuing if the mixer reports an error doing so.
func (e *AudioEngine) Stop(ch ChannelID) {
	if ch == ChannelInvalid {
		return
	}
	if channelVolume(e.mixer, ch) == 0 {
		haltChannel(e.logger, e.mixer, ch)
		return
	}
	fadeOutChannel(e.logger, e.mixer, ch, channelFadeOutMs)
}

// GetSoundHandle returns a handle to the collection named name, or nil if
// no loaded bank provides it.
func (e *AudioEngine) GetSoundHandle(name string) SoundHandle {
	return e.collections[name]
}

// GetSoundHandleFromFile resolves a handle via the filename-to-collection
// index maintained by LoadSoundBank.
func (e *AudioEngine) GetSoundHandleFromFile(filename string) SoundHandle {
	name, ok := e.filenameIndex[filename]
	if !ok {
		return nil
	}
	return e.GetSoundHandle(name)
}

// compareDefs orders two SoundCollectionDefs for priority purposes: a
// stream always ranks above any buffer sound; otherwise higher numeric
// priority ranks higher. Returns <0 when a ranks higher than b, >0 when
// lower, 0 when equal. This intentionally ignores start time: the
// newer-wins tiebreak only applies when sorting already-playing sounds
// against each other (see comparePlaying), not when testing a brand-new
// request against the current lowest-priority voice.
func compareDefs(a, b pindrop.SoundCollectionDef) int {
	if a.Stream != b.Stream {
		if a.Stream {
			return -1
		}
		return 1
	}
	if a.Priority == b.Priority {
		return 0
	}
	if a.Priority > b.Priority {
		return -1
	}
	return 1
}

// comparePlaying orders two PlayingSound entries for preemption purposes:
// compareDefs, tie-broken by start time with the later (newer) entry
// ranking higher.
func comparePlaying(a, b PlayingSound) int {
	if r := compareDefs(a.Collection.def, b.Collection.def); r != 0 {
		return r
	}
	if a.StartTime == b.StartTime {
		return 0
	}
	if a.StartTime > b.StartTime {
		return -1
	}
	return 1
}

// findFreeChannel scans the buffer channel pool for the first one the
// mixer reports idle. Returns ChannelStream unconditionally when stream is
// true (there is always exactly one streaming slot to contend for), or
// ChannelInvalid if every buffer channel is busy.
func (e *AudioEngine) findFreeChannel(stream bool) ChannelID {
	if stream {
		return ChannelStream
	}
	for i := 0; i < e.channelCount; i++ {
		if !isPlaying(e.mixer, ChannelID(i)) {
			return ChannelID(i)
		}
	}
	return ChannelInvalid
}

// PlaySound plays handle, preempting a lower-priority voice if every
// channel is full.
func (e *AudioEngine) PlaySound(handle SoundHandle) (ChannelHandle, error) {
	invalid := ChannelHandle{engine: e, ch: ChannelInvalid}

	if handle == nil {
		return invalid, ErrInvalidHandle
	}

	e.playing.pruneFinished(e.mixer)

	stream := handle.def.Stream
	ch := e.findFreeChannel(stream)

	if ch == ChannelInvalid {
		sort.SliceStable(e.playing.entries, func(i, j int) bool {
			return comparePlaying(e.playing.entries[i], e.playing.entries[j]) < 0
		})
		n := e.playing.len()
		if n == 0 {
			// Pool is reported full but nothing is tracked: a real mixer
			// channel is occupied by something this engine didn't play.
			return invalid, ErrNoFreeChannel
		}
		victim := e.playing.entries[n-1]
		if compareDefs(handle.def, victim.Collection.def) < 0 {
			ch = victim.Channel
			haltChannel(e.logger, e.mixer, ch)
			e.playing.removeAt(n - 1)
		} else {
			return invalid, ErrNoFreeChannel
		}
	} else if ch == ChannelStream {
		if isPlaying(e.mixer, ChannelStream) {
			haltChannel(e.logger, e.mixer, ChannelStream)
			e.playing.eraseStream()
		}
	}

	source := handle.Select()
	if source == nil {
		return invalid, fmt.Errorf("%w: collection %q has no loaded variants", ErrMixerPlayFailed, handle.def.Name)
	}

	gain := source.Gain() * handle.def.Gain
	source.SetGain(e.logger, e.mixer, ch, gain)
	if err := source.Play(e.mixer, ch, handle.def.Loop); err != nil {
		return invalid, fmt.Errorf("%w: %v", ErrMixerPlayFailed, err)
	}

	e.playing.insert(PlayingSound{Collection: handle, Channel: ch, StartTime: e.worldTime})
	return ChannelHandle{engine: e, ch: ch}, nil
}

// PlaySoundByName looks up name and plays it.
func (e *AudioEngine) PlaySoundByName(name string) (ChannelHandle, error) {
	handle := e.GetSoundHandle(name)
	if handle == nil {
		return ChannelHandle{engine: e, ch: ChannelInvalid}, fmt.Errorf("%w: %q", ErrInvalidHandle, name)
	}
	return e.PlaySound(handle)
}

// AdvanceFrame recomputes bus gains and pushes the resulting volume to
// every currently-playing channel: it resets each bus's duck target,
// accumulates fresh duck targets from buses with active sounds, eases duck
// gain toward those targets, propagates gain down from the master bus, and
// finally pushes each playing channel's volume.
func (e *AudioEngine) AdvanceFrame(worldTime WorldTime) {
	delta := float64(worldTime - e.worldTime)
	if delta < 0 {
		delta = 0
	}
	e.worldTime = worldTime

	for _, bus := range e.buses {
		bus.resetDuckTarget()
	}
	for _, bus := range e.buses {
		if bus.soundCounter <= 0 {
			continue
		}
		for _, idx := range bus.ducks {
			e.buses[idx].duckTarget = 0
		}
	}
	for _, bus := range e.buses {
		bus.updateDuckGain(delta)
	}

	if e.masterBus != nil {
		parentGain := e.masterGain
		if e.mute {
			parentGain = 0
		}
		e.masterBus.updateGain(parentGain, e.buses)
	}

	for _, p := range e.playing.entries {
		gain := 0.0
		if p.Collection != nil && p.Collection.bus != nil {
			gain = p.Collection.bus.gain
		}
		setChannelVolume(e.logger, e.mixer, p.Channel, gainToVolume(gain))
	}
}
