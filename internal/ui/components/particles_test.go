package components

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParticlePosition(t *testing.T) {
	f := &ParticleField{Particles: []Particle{
		{FromX: 0.5, ToX: 0.5, Period: 10 * time.Second},
		{FromX: 0.1, ToX: 0.9, Period: 10 * time.Second, Delay: 20 * time.Second},
	}}

	_, _, ok := f.Particles[0].Position(20, 10)
	assert.False(t, ok, "a particle that has not moved is below the field")

	f.Advance(5 * time.Second)
	x, y, ok := f.Particles[0].Position(20, 10)
	assert.True(t, ok)
	assert.Equal(t, 10, x)
	assert.Equal(t, 5, y)

	_, _, ok = f.Particles[1].Position(20, 10)
	assert.False(t, ok, "delayed particles stay hidden")

	f.Advance(10 * time.Second)
	x, y, ok = f.Particles[0].Position(20, 10)
	assert.True(t, ok, "particles loop")
	assert.Equal(t, 10, x)
	assert.Equal(t, 5, y)
}

func TestParticleFieldPlot(t *testing.T) {
	f := &ParticleField{Particles: []Particle{{FromX: 0.5, ToX: 0.5, Period: 10 * time.Second}}}
	f.Advance(5 * time.Second)

	c := NewCanvas(20, 10)
	f.Plot(c)
	assert.Equal(t, "•", c.At(10, 5))
}

func TestNewParticleFieldRanges(t *testing.T) {
	f := NewParticleField(20, rand.New(rand.NewPCG(1, 2)))

	assert.Len(t, f.Particles, 20)
	for _, p := range f.Particles {
		assert.GreaterOrEqual(t, p.Period, 10*time.Second)
		assert.Less(t, p.Period, 20*time.Second)
		assert.GreaterOrEqual(t, p.Delay, time.Duration(0))
		assert.Less(t, p.Delay, 5*time.Second)
		assert.GreaterOrEqual(t, p.FromX, 0.0)
		assert.Less(t, p.FromX, 1.0)
	}
}

func TestFieldsAreSeeded(t *testing.T) {
	a := NewParticleField(5, rand.New(rand.NewPCG(7, 7)))
	b := NewParticleField(5, rand.New(rand.NewPCG(7, 7)))
	assert.Equal(t, a.Particles, b.Particles)

	s1 := NewStarField(5, rand.New(rand.NewPCG(7, 7)))
	s2 := NewStarField(5, rand.New(rand.NewPCG(7, 7)))
	assert.Equal(t, s1.Stars, s2.Stars)
}

func TestStarIntensity(t *testing.T) {
	star := Star{Delay: time.Second, RepeatDelay: 2 * time.Second}

	testCases := []struct {
		name     string
		t        time.Duration
		expected float64
	}{
		{name: "before delay", t: 500 * time.Millisecond, expected: 0},
		{name: "start of twinkle", t: time.Second, expected: 0},
		{name: "half way up", t: 1500 * time.Millisecond, expected: 0.5},
		{name: "peak", t: 2 * time.Second, expected: 1},
		{name: "resting", t: 3500 * time.Millisecond, expected: 0},
		{name: "second peak", t: 6 * time.Second, expected: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, star.Intensity(tc.t), 1e-9)
		})
	}
}

func TestStarGlyph(t *testing.T) {
	testCases := []struct {
		intensity float64
		glyph     string
		ok        bool
	}{
		{intensity: 0, glyph: "", ok: false},
		{intensity: 0.2, glyph: "·", ok: true},
		{intensity: 0.5, glyph: "+", ok: true},
		{intensity: 1, glyph: "✦", ok: true},
	}

	for _, tc := range testCases {
		glyph, ok := starGlyph(tc.intensity)
		assert.Equal(t, tc.glyph, glyph)
		assert.Equal(t, tc.ok, ok)
	}
}

func TestStarFieldHiddenUntilShown(t *testing.T) {
	f := &StarField{Stars: []Star{{X: 0.5, Y: 0.5, RepeatDelay: 2 * time.Second}}}

	f.Advance(time.Second)
	c := NewCanvas(10, 10)
	f.Plot(c)
	assert.False(t, f.Visible())
	assert.Equal(t, " ", c.At(5, 5))

	f.Show()
	f.Advance(time.Second)
	f.Plot(c)
	assert.True(t, f.Visible())
	assert.Equal(t, "✦", c.At(5, 5))
}
