package components

import (
	"testing"
	"time"

	"github.com/karthickk/welcome/pkg/typewriter"
	"github.com/stretchr/testify/assert"
)

func TestTypewriterModel(t *testing.T) {
	m := NewTypewriter("ab", 10*time.Millisecond)

	cmd := m.Init()
	assert.NotNil(t, cmd)
	assert.Equal(t, "", m.Text())

	m, cmd = m.Update(TypewriterTickMsg{ID: m.ID() + 1000})
	assert.Nil(t, cmd, "ticks for another typewriter are ignored")
	assert.Equal(t, "", m.Text())

	m, cmd = m.Update(TypewriterTickMsg{ID: m.ID()})
	assert.NotNil(t, cmd)
	assert.Equal(t, "a", m.Text())

	m, cmd = m.Update(TypewriterTickMsg{ID: m.ID()})
	assert.Nil(t, cmd, "no tick is scheduled after the last character")
	assert.Equal(t, "ab", m.Text())
	assert.True(t, m.Done())

	m, cmd = m.Update(TypewriterTickMsg{ID: m.ID()})
	assert.Nil(t, cmd)
	assert.Equal(t, "ab", m.Text())
}

func TestTypewriterModelDefaults(t *testing.T) {
	a := NewTypewriter("x", 0)
	b := NewTypewriter("x", 0)

	assert.Equal(t, typewriter.DefaultTick, a.tick)
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestTypewriterCursorBlinks(t *testing.T) {
	m := NewTypewriter("ab", time.Millisecond)
	m.Init()

	assert.Contains(t, m.ViewAt(0), "|")
	assert.NotContains(t, m.ViewAt(cursorBlink), "|")
	assert.Contains(t, m.ViewAt(2*cursorBlink), "|")
}
