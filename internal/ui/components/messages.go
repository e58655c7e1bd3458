package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/karthickk/welcome/pkg/sequencer"
)

// SequencerMsg carries one sequencer transition into the update loop
type SequencerMsg struct {
	Event sequencer.Event
}

// sequencerClosedMsg is sent when the event channel closes
type sequencerClosedMsg struct{}

// CompleteMsg tells the parent the splash may be removed
type CompleteMsg struct {
	Skipped bool
}

// WaitForEvent returns a command that blocks until the next sequencer event
func WaitForEvent(events <-chan sequencer.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return sequencerClosedMsg{}
		}
		return SequencerMsg{Event: ev}
	}
}
