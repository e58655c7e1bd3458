package components

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/karthickk/welcome/pkg/sequencer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	testingclock "k8s.io/utils/clock/testing"
)

func newTestScreen(t *testing.T, skipOnKeypress bool) (*WelcomeScreen, *sequencer.Sequencer, *testingclock.FakeClock) {
	t.Helper()
	clk := testingclock.NewFakeClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	seq := sequencer.New(clk, sequencer.DefaultTiming())
	m := NewWelcomeScreen(seq, WelcomeOptions{
		Heading:        "Welcome To My",
		Title:          "Hi",
		URL:            "www.ogijksn.my.id",
		TypewriterTick: 10 * time.Millisecond,
		FrameRate:      50 * time.Millisecond,
		Particles:      20,
		Stars:          50,
		Seed:           42,
		SkipOnKeypress: skipOnKeypress,
	})
	t.Cleanup(m.Release)
	return m, seq, clk
}

// nextEvent steps the clock and waits for the event it produces
func nextEvent(t *testing.T, clk *testingclock.FakeClock, seq *sequencer.Sequencer, d time.Duration) tea.Msg {
	t.Helper()
	clk.Step(d)
	done := make(chan tea.Msg, 1)
	go func() { done <- WaitForEvent(seq.Events())() }()
	select {
	case msg := <-done:
		return msg
	case <-time.After(time.Second):
		t.Fatal("no sequencer event")
		return nil
	}
}

func TestWelcomeScreenFollowsSequencer(t *testing.T) {
	m, seq, clk := newTestScreen(t, false)
	require.NotNil(t, m.Init())
	assert.Equal(t, 3, seq.Pending())
	assert.True(t, m.State().IsLoading)

	msg := nextEvent(t, clk, seq, 2*time.Second)
	assert.Equal(t, SequencerMsg{Event: sequencer.EventSecondaryEffect}, msg)
	_, cmd := m.Update(msg)
	assert.NotNil(t, cmd, "keeps listening for events")
	assert.True(t, m.State().ShowSecondaryEffect)
	assert.True(t, m.State().IsLoading)
	assert.True(t, m.stars.Visible())

	msg = nextEvent(t, clk, seq, 3*time.Second)
	assert.Equal(t, SequencerMsg{Event: sequencer.EventLoadingDone}, msg)
	m.Update(msg)
	assert.False(t, m.State().IsLoading)
	assert.False(t, m.Done())

	msg = nextEvent(t, clk, seq, time.Second)
	assert.Equal(t, SequencerMsg{Event: sequencer.EventComplete}, msg)
	_, cmd = m.Update(msg)
	require.NotNil(t, cmd)
	assert.Equal(t, CompleteMsg{Skipped: false}, cmd())
	assert.True(t, m.Done())
	assert.True(t, m.State().Completed)
	assert.False(t, clk.HasWaiters())
}

func TestWelcomeScreenSkip(t *testing.T) {
	testCases := []struct {
		name           string
		skipOnKeypress bool
		key            tea.KeyMsg
		skips          bool
	}{
		{name: "enter skips", key: tea.KeyMsg{Type: tea.KeyEnter}, skips: true},
		{name: "s skips", key: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")}, skips: true},
		{name: "other key ignored", key: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, skips: false},
		{name: "any key skips when enabled", skipOnKeypress: true, key: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, skips: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, seq, clk := newTestScreen(t, tc.skipOnKeypress)
			m.Init()

			_, cmd := m.Update(tc.key)
			if !tc.skips {
				assert.Nil(t, cmd)
				assert.Equal(t, 3, seq.Pending())
				return
			}

			require.NotNil(t, cmd)
			assert.Equal(t, CompleteMsg{Skipped: true}, cmd())
			assert.Equal(t, 0, seq.Pending())
			assert.False(t, clk.HasWaiters())

			_, cmd = m.Update(tc.key)
			assert.Nil(t, cmd, "completion is reported once")
		})
	}
}

func TestWelcomeScreenQuit(t *testing.T) {
	m, seq, clk := newTestScreen(t, true)
	m.Init()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.Quitting())
	assert.False(t, m.Done())
	assert.Equal(t, 0, seq.Pending())
	assert.False(t, clk.HasWaiters())
}

func TestWelcomeScreenFrames(t *testing.T) {
	m, _, _ := newTestScreen(t, false)
	m.Init()

	_, cmd := m.Update(frameMsg{})
	assert.NotNil(t, cmd)
	assert.Equal(t, 50*time.Millisecond, m.Elapsed())

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	_, cmd = m.Update(frameMsg{})
	assert.Nil(t, cmd, "frames stop once the splash is done")
	assert.Equal(t, 50*time.Millisecond, m.Elapsed())
}

func TestWelcomeScreenTypewriter(t *testing.T) {
	m, _, _ := newTestScreen(t, false)
	m.Init()

	_, cmd := m.Update(TypewriterTickMsg{ID: m.typer.ID()})
	assert.NotNil(t, cmd)
	assert.Equal(t, "w", m.typer.Text())
}

func TestWelcomeScreenView(t *testing.T) {
	m, _, _ := newTestScreen(t, false)
	m.Init()

	view := m.View()
	assert.Len(t, strings.Split(view, "\n"), 24, "defaults to 80x24 before the first resize")
	assert.NotContains(t, view, "Welcome To My", "heading is hidden at first")

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	for m.Elapsed() < 4*time.Second {
		m.Update(frameMsg{})
	}

	view = m.View()
	assert.Len(t, strings.Split(view, "\n"), 40)
	assert.Contains(t, view, "Welcome To My")
	assert.Contains(t, view, "━")
	assert.Contains(t, view, "revealing in")
}
