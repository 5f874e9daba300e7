package rgss

import "math"

// Wave defaults.
const (
	defaultWaveLength = 180
	defaultWaveSpeed  = 360

	// waveBand is the height in screen pixels of one distortion band. Bands
	// are aligned to multiples of it on screen.
	waveBand = 8
)

// waveState holds the wave parameters and the geometry derived from them.
type waveState struct {
	amp    int
	length int
	speed  int
	phase  float64 // degrees

	active bool
	dirty  bool
	quads  QuadArray
}

func newWaveState() waveState {
	return waveState{length: defaultWaveLength, speed: defaultWaveSpeed}
}

// WaveAmp returns the wave amplitude in pixels.
func (s *Sprite) WaveAmp() int { return s.wave.amp }

// SetWaveAmp sets the wave amplitude. Zero disables the wave.
func (s *Sprite) SetWaveAmp(v int) {
	if s.wave.amp == v {
		return
	}
	s.wave.amp = v
	s.wave.dirty = true
}

// WaveLength returns the wavelength in pixels.
func (s *Sprite) WaveLength() int { return s.wave.length }

// SetWaveLength sets the wavelength in pixels.
func (s *Sprite) SetWaveLength(v int) {
	if s.wave.length == v {
		return
	}
	s.wave.length = v
	s.wave.dirty = true
}

// WaveSpeed returns the phase advance per tick. The phase advances by
// speed/180 degrees (integer division) each Update.
func (s *Sprite) WaveSpeed() int { return s.wave.speed }

// SetWaveSpeed sets the phase advance per tick.
func (s *Sprite) SetWaveSpeed(v int) {
	if s.wave.speed == v {
		return
	}
	s.wave.speed = v
	s.wave.dirty = true
}

// WavePhase returns the phase in degrees.
func (s *Sprite) WavePhase() float64 { return s.wave.phase }

// SetWavePhase sets the phase in degrees.
func (s *Sprite) SetWavePhase(v float64) {
	if s.wave.phase == v {
		return
	}
	s.wave.phase = v
	s.wave.dirty = true
}

// advanceWave moves the phase forward by one tick.
func (s *Sprite) advanceWave() {
	s.wave.phase += float64(s.wave.speed / 180)
	s.wave.dirty = true
}

// updateWave regenerates the wave quads. Without a bitmap the previous
// geometry is left untouched.
func (s *Sprite) updateWave() {
	if s.bitmap == nil {
		return
	}
	w := &s.wave
	if w.amp == 0 {
		w.active = false
		w.quads.Resize(0)
		w.quads.Commit()
		return
	}
	w.active = true

	r := s.srcRect.current()
	width := r.Width()
	height := r.Height()

	// The distortion would fold the sprite onto itself; draw nothing.
	if w.amp <= -(width / 2) {
		w.quads.Resize(0)
		w.quads.Commit()
		return
	}

	// Negative amplitudes shrink the sprite horizontally instead of
	// displacing it.
	if w.amp < 0 {
		a := -w.amp
		rect := FloatRect{
			X:      float64(a),
			Y:      float64(r.Y()),
			Width:  float64(width - 2*a),
			Height: float64(height),
		}
		w.quads.Resize(1)
		w.quads.SetTexPosRect(0, rect, rect)
		w.quads.Commit()
		return
	}

	zoomY := s.trans.Scale().Y
	visibleLength := int(float64(height) * zoomY)

	// Bands are aligned to the screen grid, not to the sprite.
	posY := int(math.Floor(s.trans.Position().Y))
	firstLength := ((posY % waveBand) + waveBand) % waveBand

	chunks := 0
	lastLength := 0
	if rest := visibleLength - firstLength; rest > 0 {
		chunks = rest / waveBand
		lastLength = rest % waveBand
	}

	n := chunks
	if firstLength > 0 {
		n++
	}
	if lastLength > 0 {
		n++
	}
	w.quads.Resize(n)

	phase := w.phase * math.Pi / 180
	i := 0
	if firstLength > 0 {
		s.emitWaveChunk(i, phase, width, zoomY, 0, firstLength)
		i++
	}
	for c := 0; c < chunks; c++ {
		s.emitWaveChunk(i, phase, width, zoomY, firstLength+c*waveBand, waveBand)
		i++
	}
	if lastLength > 0 {
		s.emitWaveChunk(i, phase, width, zoomY, firstLength+chunks*waveBand, lastLength)
	}
	w.quads.Commit()
}

// emitWaveChunk writes band i covering screen rows [chunkY, chunkY+chunkLength)
// of the sprite, shifted horizontally by the wave at that row.
func (s *Sprite) emitWaveChunk(i int, phase float64, width int, zoomY float64, chunkY, chunkLength int) {
	wavePos := phase + (float64(chunkY)/float64(s.wave.length))*math.Pi*2
	tex := FloatRect{
		X:      0,
		Y:      float64(chunkY) / zoomY,
		Width:  float64(width),
		Height: float64(chunkLength) / zoomY,
	}
	pos := tex
	pos.X = float64(s.wave.amp) * math.Sin(wavePos)
	s.wave.quads.SetTexPosRect(i, tex, pos)
}
