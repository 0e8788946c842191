package engine

import (
	pindrop "github.com/NoelToby/pindrop"
	"github.com/NoelToby/pindrop/utils"
)

// Bus is one node of the mixer graph. Buses are resolved once at
// AudioEngine construction time and never added or removed afterward; the
// only fields that change per frame are gain, duckGain, duckTarget,
// transition, and soundCounter.
type Bus struct {
	def pindrop.BusDef

	// children and ducks are indices into the owning AudioEngine's buses
	// slice, resolved by name at construction (see resolveBuses). Indices
	// are used instead of pointers so the collection/bank registries can
	// be mutated freely without risking a dangling reference into this
	// slice, per the package's pointers-vs-indices design note.
	children []int
	ducks    []int

	gain         float64
	duckGain     float64
	duckTarget   float64
	transition   float64 // 0 (undamped) .. 1 (fully ducked), eased via utils.CubicInterpolate
	soundCounter int
}

func newBus(def pindrop.BusDef) *Bus {
	return &Bus{
		def:        def,
		duckGain:   1.0,
		duckTarget: 1.0,
		transition: 0.0,
	}
}

// Name returns the bus's definition name.
func (b *Bus) Name() string { return b.def.Name }

// Gain returns the bus's last-computed effective gain (parent contribution,
// own gain, and duck gain already multiplied in).
func (b *Bus) Gain() float64 { return b.gain }

// SoundCounter returns how many PlayingSound entries currently route to
// this bus. Exposed for tests verifying the channel-accounting invariant.
func (b *Bus) SoundCounter() int { return b.soundCounter }

func (b *Bus) incrementSoundCounter() { b.soundCounter++ }

func (b *Bus) decrementSoundCounter() {
	if b.soundCounter == 0 {
		return
	}
	b.soundCounter--
}

// resetDuckTarget begins a new frame's duck accumulation; every bus starts
// assuming it will not be ducked this frame.
func (b *Bus) resetDuckTarget() { b.duckTarget = 1.0 }

// rateMs returns the configured attack (fading toward target 0) or release
// (fading toward target 1) time in milliseconds exactly as the def gives
// it; updateDuckGain substitutes defaultDuckFadeMs when it is zero or
// negative, so an unset fade rate eases at the default speed rather than
// never moving.
func (b *Bus) rateMs(attack bool) float64 {
	if attack {
		return b.def.DuckFadeInMs
	}
	return b.def.DuckFadeOutMs
}

const defaultDuckFadeMs = 150.0

// updateDuckGain advances this bus's "duckedness" toward the state implied
// by duckTarget (0 == should be ducked, 1 == should be at rest) by an amount
// bounded by its configured attack/release rate, then eases duckGain with
// utils.CubicInterpolate instead of a bare linear step, reusing the same
// interpolation primitive the decode pipeline uses for sample smoothing.
func (b *Bus) updateDuckGain(deltaMs float64) {
	wantDucked := b.duckTarget < 1
	fadeMs := b.rateMs(wantDucked)
	if fadeMs <= 0 {
		fadeMs = defaultDuckFadeMs
	}

	if wantDucked {
		b.transition += deltaMs / fadeMs
	} else {
		b.transition -= deltaMs / fadeMs
	}
	if b.transition > 1 {
		b.transition = 1
	} else if b.transition < 0 {
		b.transition = 0
	}

	// transition 0 == at rest (duckGain 1), transition 1 == fully ducked
	// (duckGain 0); eased with duplicated endpoints so the ramp settles
	// smoothly instead of arriving at a hard corner.
	eased := utils.CubicInterpolate(1.0, 1.0, 0.0, 0.0, float32(b.transition))

	gain := float64(eased)
	if gain < 0 {
		gain = 0
	} else if gain > 1 {
		gain = 1
	}
	b.duckGain = gain
}

// updateGain recomputes this bus's effective gain from parentGain, then
// recurses into children. buses is the owning AudioEngine's full bus slice,
// indexed by the children/ducks fields.
func (b *Bus) updateGain(parentGain float64, buses []*Bus) {
	b.gain = parentGain * float64(b.def.Gain) * b.duckGain
	for _, idx := range b.children {
		buses[idx].updateGain(b.gain, buses)
	}
}
