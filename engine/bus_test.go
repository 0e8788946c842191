package engine

import (
	"testing"

	pindrop "github.com/NoelToby/pindrop"
)

func TestBusSoundCounterNeverGoesNegative(t *testing.T) {
	b := newBus(pindrop.BusDef{Name: "sfx", Gain: 1})
	b.decrementSoundCounter()
	if got := b.SoundCounter(); got != 0 {
		t.Fatalf("SoundCounter() = %d, want 0", got)
	}
	b.incrementSoundCounter()
	b.incrementSoundCounter()
	b.decrementSoundCounter()
	if got := b.SoundCounter(); got != 1 {
		t.Fatalf("SoundCounter() = %d, want 1", got)
	}
}

func TestBusUpdateDuckGainConverges(t *testing.T) {
	b := newBus(pindrop.BusDef{Name: "music", Gain: 1, DuckFadeInMs: 100, DuckFadeOutMs: 100})
	b.duckTarget = 0

	for i := 0; i < 20; i++ {
		b.updateDuckGain(10)
	}
	if b.duckGain > 0.01 {
		t.Fatalf("duckGain = %v after sustained duck target 0, want near 0", b.duckGain)
	}

	b.duckTarget = 1
	for i := 0; i < 20; i++ {
		b.updateDuckGain(10)
	}
	if b.duckGain < 0.99 {
		t.Fatalf("duckGain = %v after release, want near 1", b.duckGain)
	}
}

func TestBusUpdateDuckGainZeroFadeUsesDefaultRate(t *testing.T) {
	b := newBus(pindrop.BusDef{Name: "music", Gain: 1})
	b.duckTarget = 0
	b.updateDuckGain(defaultDuckFadeMs)
	if b.duckGain > 0.01 {
		t.Fatalf("duckGain = %v after one default-rate step, want near 0", b.duckGain)
	}
}

func TestBusUpdateGainPropagatesThroughChildren(t *testing.T) {
	master := newBus(pindrop.BusDef{Name: "master", Gain: 0.5})
	sfx := newBus(pindrop.BusDef{Name: "sfx", Gain: 0.5})
	master.children = []int{1}
	buses := []*Bus{master, sfx}

	master.updateGain(1.0, buses)

	if got, want := master.Gain(), 0.5; got != want {
		t.Fatalf("master.Gain() = %v, want %v", got, want)
	}
	if got, want := sfx.Gain(), 0.25; got != want {
		t.Fatalf("sfx.Gain() = %v, want %v", got, want)
	}
}
