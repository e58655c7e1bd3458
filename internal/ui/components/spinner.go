package components

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// PulseDots is three dots pulsing one after the other
var PulseDots = spinner.Spinner{
	Frames: []string{"● · ·", "● ● ·", "· ● ●", "· · ●", "· · ·"},
	FPS:    time.Second / 5,
}

// LoadingIndicator is the pulsing dots plus a progress bar under the link
type LoadingIndicator struct {
	spinner spinner.Model
	bar     progress.Model
	message string
}

// NewLoadingIndicator creates the indicator
func NewLoadingIndicator(message string) LoadingIndicator {
	s := spinner.New(
		spinner.WithSpinner(PulseDots),
		spinner.WithStyle(DotStyle),
	)
	bar := progress.New(
		progress.WithGradient(string(ColorViolet), string(ColorIndigo)),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)
	return LoadingIndicator{
		spinner: s,
		bar:     bar,
		message: message,
	}
}

// Init starts the dots
func (m LoadingIndicator) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles spinner ticks
func (m LoadingIndicator) Update(msg tea.Msg) (LoadingIndicator, tea.Cmd) {
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

// SetMessage updates the footer message
func (m *LoadingIndicator) SetMessage(message string) {
	m.message = message
}

// Dots renders the pulsing dots
func (m LoadingIndicator) Dots() string {
	return m.spinner.View()
}

// Bar renders the progress bar at percent in [0, 1]
func (m LoadingIndicator) Bar(percent float64) string {
	return m.bar.ViewAs(percent)
}

// Footer renders the message with a countdown
func (m LoadingIndicator) Footer(remaining string) string {
	if m.message == "" {
		return FooterStyle.Render(remaining)
	}
	return FooterStyle.Render(fmt.Sprintf("%s · %s", m.message, remaining))
}
