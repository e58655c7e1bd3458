package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"
)

// Logo is the heading block of the welcome screen: a plain heading line,
// a block-letter title and the site URL
type Logo struct {
	Heading string
	Title   string
	URL     string
	Owner   string
}

// NewLogo creates a new logo component
func NewLogo(heading, title string) *Logo {
	return &Logo{
		Heading: heading,
		Title:   title,
	}
}

// BigLetters renders text in pterm's block font and returns it line by line
// without color codes
func BigLetters(text string) []string {
	s, err := pterm.DefaultBigText.WithLetters(pterm.NewLettersFromString(text)).Srender()
	if err != nil || strings.TrimSpace(s) == "" {
		return []string{text}
	}

	lines := strings.Split(pterm.RemoveColorFromString(s), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	return lines
}

// TitleLines returns the block-letter title with the gradient applied
func (l *Logo) TitleLines() []string {
	art := BigLetters(l.Title)
	out := make([]string, len(art))
	for i, line := range art {
		color := TitleGradient[i%len(TitleGradient)]
		out[i] = lipgloss.NewStyle().Foreground(color).Bold(true).Render(line)
	}
	return out
}

// TitleWidth is the display width of the block-letter title
func (l *Logo) TitleWidth() int {
	width := 0
	for _, line := range BigLetters(l.Title) {
		if w := lipgloss.Width(line); w > width {
			width = w
		}
	}
	return width
}

// Underline renders an underline of the title width scaled by progress in [0, 1]
func (l *Logo) Underline(progress float64) string {
	if progress <= 0 {
		return ""
	}
	if progress > 1 {
		progress = 1
	}
	width := int(float64(l.TitleWidth())*progress + 0.5)
	return UnderlineStyle.Render(strings.Repeat("━", width))
}

// Render returns the full logo centered in width
func (l *Logo) Render(width int) string {
	var lines []string
	if l.Heading != "" {
		lines = append(lines, HeadingStyle.Render(l.Heading), "")
	}
	lines = append(lines, l.TitleLines()...)
	lines = append(lines, l.Underline(1))
	if l.URL != "" {
		lines = append(lines, "", LinkStyle.Render(l.URL))
	}
	return CenterLines(lines, width)
}

// CenterLines pads every line so it sits in the middle of width
func CenterLines(lines []string, width int) string {
	var centered strings.Builder
	for i, line := range lines {
		if w := lipgloss.Width(line); w < width {
			centered.WriteString(strings.Repeat(" ", (width-w)/2))
		}
		centered.WriteString(line)
		if i < len(lines)-1 {
			centered.WriteString("\n")
		}
	}
	return centered.String()
}

// WelcomeMessage returns a styled welcome message
func WelcomeMessage(message string) string {
	style := lipgloss.NewStyle().
		Foreground(ColorInfo).
		Bold(true).
		MarginTop(1).
		MarginBottom(2)

	return style.Render("✨ " + message)
}
