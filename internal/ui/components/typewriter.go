package components

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/karthickk/welcome/pkg/typewriter"
)

var lastTypewriterID atomic.Int64

const cursorBlink = 800 * time.Millisecond

// TypewriterTickMsg advances the typewriter with the matching id
type TypewriterTickMsg struct {
	ID int
}

// TypewriterModel shows a string one character per tick followed by a
// blinking cursor. It stops ticking once the full text is shown.
type TypewriterModel struct {
	tw   *typewriter.Typewriter
	tick time.Duration
	id   int
}

// NewTypewriter creates a typewriter component
func NewTypewriter(text string, tick time.Duration) TypewriterModel {
	if tick <= 0 {
		tick = typewriter.DefaultTick
	}
	return TypewriterModel{
		tw:   typewriter.New(text),
		tick: tick,
		id:   int(lastTypewriterID.Add(1)),
	}
}

// ID identifies this typewriter's tick messages
func (m TypewriterModel) ID() int {
	return m.id
}

// Init shows the empty prefix and schedules the first tick
func (m TypewriterModel) Init() tea.Cmd {
	m.tw.Next()
	return m.schedule()
}

func (m TypewriterModel) schedule() tea.Cmd {
	id := m.id
	return tea.Tick(m.tick, func(time.Time) tea.Msg {
		return TypewriterTickMsg{ID: id}
	})
}

// Update reveals the next character on a matching tick
func (m TypewriterModel) Update(msg tea.Msg) (TypewriterModel, tea.Cmd) {
	tick, ok := msg.(TypewriterTickMsg)
	if !ok || tick.ID != m.id {
		return m, nil
	}
	if _, more := m.tw.Next(); !more {
		return m, nil
	}
	if m.tw.Done() {
		return m, nil
	}
	return m, m.schedule()
}

// Text returns what is currently shown
func (m TypewriterModel) Text() string {
	return m.tw.Current()
}

// Done reports whether the whole text is shown
func (m TypewriterModel) Done() bool {
	return m.tw.Done()
}

// ViewAt renders the text with the cursor blinking on elapsed
func (m TypewriterModel) ViewAt(elapsed time.Duration) string {
	cursor := " "
	if (elapsed/cursorBlink)%2 == 0 {
		cursor = CursorStyle.Render("|")
	}
	return LinkStyle.Render(m.tw.Current()) + cursor
}
