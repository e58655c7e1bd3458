package components

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Icon is one badge of the icon row
type Icon struct {
	Glyph string
	Label string
}

// DefaultIcons are the code, user, github and globe badges
var DefaultIcons = []Icon{
	{Glyph: "</>", Label: "code"},
	{Glyph: "◉", Label: "about"},
	{Glyph: "⎇", Label: "github"},
	{Glyph: "◍", Label: "web"},
}

var sparkleFrames = []string{"✧", "✦", "✶", "✦"}

const (
	iconFirstDelay = 800 * time.Millisecond
	iconStagger    = 200 * time.Millisecond
	sparklePeriod  = 4 * time.Second
)

// IconRow renders the badges, each appearing after its staggered delay
type IconRow struct {
	Icons []Icon
}

// NewIconRow creates an icon row
func NewIconRow(icons []Icon) *IconRow {
	return &IconRow{Icons: icons}
}

// RevealAt returns when icon i appears
func (r *IconRow) RevealAt(i int) time.Duration {
	return iconFirstDelay + time.Duration(i)*iconStagger
}

// Visible returns how many icons have appeared at elapsed
func (r *IconRow) Visible(elapsed time.Duration) int {
	n := 0
	for i := range r.Icons {
		if elapsed >= r.RevealAt(i) {
			n++
		}
	}
	return n
}

// Sparkle returns the sparkle glyph at elapsed
func Sparkle(elapsed time.Duration) string {
	step := sparklePeriod / time.Duration(len(sparkleFrames))
	return sparkleFrames[int(elapsed/step)%len(sparkleFrames)]
}

// View renders the row; hidden icons keep their space so the row does not shift
func (r *IconRow) View(elapsed time.Duration) string {
	badges := make([]string, len(r.Icons))
	for i, icon := range r.Icons {
		badge := IconBoxStyle.Render(IconStyle.Render(icon.Glyph) + " " + SparkleStyle.Render(Sparkle(elapsed)))
		if elapsed < r.RevealAt(i) {
			w, h := lipgloss.Width(badge), lipgloss.Height(badge)
			badge = strings.TrimSuffix(strings.Repeat(strings.Repeat(" ", w)+"\n", h), "\n")
		}
		badges[i] = badge
	}

	row := make([]string, 0, len(badges)*2)
	for i, b := range badges {
		if i > 0 {
			row = append(row, "    ")
		}
		row = append(row, b)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, row...)
}
