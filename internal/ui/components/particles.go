package components

import (
	"math"
	"math/rand/v2"
	"time"
)

// Particle rises from below the bottom edge to above the top edge while
// drifting between two columns
type Particle struct {
	FromX    float64
	ToX      float64
	Period   time.Duration
	Delay    time.Duration
	progress float64
}

// Position returns the particle cell in a width x height field.
// ok is false while the particle is outside the field or still delayed.
func (p *Particle) Position(width, height int) (x, y int, ok bool) {
	if p.progress <= 0 || width <= 0 || height <= 0 {
		return 0, 0, false
	}
	fx := p.FromX + (p.ToX-p.FromX)*p.progress
	// from height+1 (just below) to -1 (just above)
	fy := float64(height+1) - float64(height+2)*p.progress
	x, y = int(fx*float64(width)), int(math.Floor(fy))
	if x < 0 || x >= width || y < 0 || y >= height {
		return 0, 0, false
	}
	return x, y, true
}

// ParticleField holds the floating particles behind the welcome screen
type ParticleField struct {
	Particles []Particle
	rng       *rand.Rand
	elapsed   time.Duration
}

// NewParticleField creates count particles with random columns, 10-20s periods
// and up to 5s of start delay
func NewParticleField(count int, rng *rand.Rand) *ParticleField {
	f := &ParticleField{
		Particles: make([]Particle, count),
		rng:       rng,
	}
	for i := range f.Particles {
		f.Particles[i] = Particle{
			FromX:  rng.Float64(),
			ToX:    rng.Float64(),
			Period: 10*time.Second + time.Duration(rng.Float64()*float64(10*time.Second)),
			Delay:  time.Duration(rng.Float64() * float64(5*time.Second)),
		}
	}
	return f
}

// Advance moves every particle by dt. Particles loop forever.
func (f *ParticleField) Advance(dt time.Duration) {
	f.elapsed += dt
	for i := range f.Particles {
		p := &f.Particles[i]
		running := f.elapsed - p.Delay
		if running <= 0 {
			continue
		}
		cycle := running % p.Period
		p.progress = float64(cycle) / float64(p.Period)
	}
}

// Plot draws the particles onto a canvas
func (f *ParticleField) Plot(c *Canvas) {
	for i := range f.Particles {
		if x, y, ok := f.Particles[i].Position(c.Width, c.Height); ok {
			c.Set(x, y, "•", ParticleStyle)
		}
	}
}

// Star twinkles in place: it fades in and out over two seconds, then rests
type Star struct {
	X, Y        float64
	Delay       time.Duration
	RepeatDelay time.Duration
}

// starTwinkle is the length of one fade in/out
const starTwinkle = 2 * time.Second

// Intensity returns the star brightness in [0, 1] at t since the field appeared
func (s Star) Intensity(t time.Duration) float64 {
	local := t - s.Delay
	if local < 0 {
		return 0
	}
	local %= starTwinkle + s.RepeatDelay
	if local >= starTwinkle {
		return 0
	}
	phase := float64(local) / float64(starTwinkle)
	return 1 - math.Abs(2*phase-1)
}

// StarField holds the stars shown once the secondary effect turns on
type StarField struct {
	Stars   []Star
	visible bool
	elapsed time.Duration
}

// NewStarField creates count stars at random positions, each with a random
// first delay of up to 3s and a rest of 2-7s between twinkles
func NewStarField(count int, rng *rand.Rand) *StarField {
	f := &StarField{Stars: make([]Star, count)}
	for i := range f.Stars {
		f.Stars[i] = Star{
			X:           rng.Float64(),
			Y:           rng.Float64(),
			Delay:       time.Duration(rng.Float64() * float64(3*time.Second)),
			RepeatDelay: 2*time.Second + time.Duration(rng.Float64()*float64(5*time.Second)),
		}
	}
	return f
}

// Show makes the field visible; stars start their cycle from here
func (f *StarField) Show() {
	if !f.visible {
		f.visible = true
		f.elapsed = 0
	}
}

// Visible reports whether the field has been shown
func (f *StarField) Visible() bool {
	return f.visible
}

// Advance moves the twinkle clock by dt while the field is visible
func (f *StarField) Advance(dt time.Duration) {
	if f.visible {
		f.elapsed += dt
	}
}

// Plot draws the visible stars onto a canvas
func (f *StarField) Plot(c *Canvas) {
	if !f.visible {
		return
	}
	for _, s := range f.Stars {
		glyph, ok := starGlyph(s.Intensity(f.elapsed))
		if !ok {
			continue
		}
		x := int(s.X * float64(c.Width))
		y := int(s.Y * float64(c.Height))
		if glyph == "·" {
			c.Set(x, y, glyph, StarDimStyle)
		} else {
			c.Set(x, y, glyph, StarStyle)
		}
	}
}

func starGlyph(intensity float64) (string, bool) {
	switch {
	case intensity <= 0.05:
		return "", false
	case intensity < 0.4:
		return "·", true
	case intensity < 0.8:
		return "+", true
	default:
		return "✦", true
	}
}
