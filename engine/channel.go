package engine

// channelFadeOutMs is the fixed fade duration ChannelHandle.Stop uses to
// avoid clicks.
const channelFadeOutMs = 10

// Vec3 is a minimal 3-component position, carried on a ChannelHandle (and a
// Listener) purely as inert data the mixer backend may or may not consume
// for spatialization. No 3-D vector library fits here (the one vector
// package available, kvartborg/vector, is a 2-D type built for platformer
// physics), so this stays a plain struct rather than reaching for an
// unrelated dependency.
type Vec3 struct {
	X, Y, Z float32
}

// ChannelHandle is a stable, safe reference to one currently-playing voice,
// returned to callers for stop/query after AudioEngine.PlaySound.
type ChannelHandle struct {
	engine *AudioEngine
	ch     ChannelID
	loc    Vec3
}

// Valid reports whether this handle refers to an allocated channel at all
// (it does not check whether the voice is still playing; use Playing).
func (h ChannelHandle) Valid() bool {
	return h.engine != nil && h.ch != ChannelInvalid
}

// Playing reports whether the voice is currently live at the mixer.
func (h ChannelHandle) Playing() bool {
	if !h.Valid() {
		return false
	}
	return isPlaying(h.engine.mixer, h.ch)
}

// Stop fades the voice out over a small fixed duration to avoid clicks. If
// the channel's current gain is already zero, it halts immediately instead:
// a fade from silence is inaudible and some mixer backends refuse it
// outright.
func (h ChannelHandle) Stop() {
	if !h.Valid() {
		return
	}
	if channelVolume(h.engine.mixer, h.ch) == 0 {
		haltChannel(h.engine.logger, h.engine.mixer, h.ch)
		return
	}
	fadeOutChannel(h.engine.logger, h.engine.mixer, h.ch, channelFadeOutMs)
}

// Location returns the spatial position carried on this voice.
func (h ChannelHandle) Location() Vec3 { return h.loc }

// SetLocation updates the spatial position carried on this voice. The core
// never reads it back for DSP purposes (no spatial DSP is in scope); a
// mixer backend that supports panning may consult it via its own channel
// bookkeeping.
func (h *ChannelHandle) SetLocation(loc Vec3) { h.loc = loc }

// Listener is an inert position/orientation carrier supplementing
// ChannelHandle.Location. Spatial attenuation itself is out of scope; this
// exists so a mixer backend that does implement panning/attenuation has
// somewhere conventional to read the player's viewpoint from.
type Listener struct {
	loc Vec3
}

// Location returns the listener's current position.
func (l *Listener) Location() Vec3 { return l.loc }

// SetLocation updates the listener's position.
func (l *Listener) SetLocation(loc Vec3) { l.loc = loc }
