package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	ColorViolet    = lipgloss.Color("#8B5CF6")
	ColorVioletDim = lipgloss.Color("#6D28D9")
	ColorVioletLt  = lipgloss.Color("#C4B5FD")
	ColorIndigo    = lipgloss.Color("#6366F1")
	ColorPurple    = lipgloss.Color("#9333EA")
	ColorBlue      = lipgloss.Color("#60A5FA")
	ColorWhite     = lipgloss.Color("#F5F3FF")
	ColorMuted     = lipgloss.Color("244") // Gray
	ColorFaint     = lipgloss.Color("238")
	ColorSuccess   = lipgloss.Color("42")  // Green
	ColorError     = lipgloss.Color("196") // Red
	ColorWarning   = lipgloss.Color("214") // Orange
	ColorInfo      = lipgloss.Color("86")  // Cyan
)

// TitleGradient colors the block-letter title from top to bottom
var TitleGradient = []lipgloss.Color{
	"#A78BFA", "#8B5CF6", "#7C3AED", "#6366F1", "#6D28D9", "#9333EA",
}

// Common styles
var (
	HeadingStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorWhite)

	UnderlineStyle = lipgloss.NewStyle().
		Foreground(ColorIndigo)

	LinkStyle = lipgloss.NewStyle().
		Foreground(ColorVioletLt).
		Bold(true)

	LinkBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorVioletDim).
		Padding(0, 3)

	CursorStyle = lipgloss.NewStyle().
		Foreground(ColorBlue)

	IconStyle = lipgloss.NewStyle().
		Foreground(ColorVioletLt).
		Bold(true)

	IconBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorViolet).
		Padding(0, 1)

	SparkleStyle = lipgloss.NewStyle().
		Foreground(ColorVioletLt)

	ZapStyle = lipgloss.NewStyle().
		Foreground(ColorPurple)

	ParticleStyle = lipgloss.NewStyle().
		Foreground(ColorVioletDim)

	StarDimStyle = lipgloss.NewStyle().
		Foreground(ColorFaint)

	StarStyle = lipgloss.NewStyle().
		Foreground(ColorVioletLt)

	DotStyle = lipgloss.NewStyle().
		Foreground(ColorBlue).
		Bold(true)

	FadeStyle = lipgloss.NewStyle().
		Foreground(ColorFaint).
		Faint(true)

	// Site page
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorWhite).
		Background(ColorVioletDim).
		Padding(0, 2).
		MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		MarginBottom(1)

	BoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorViolet).
		Padding(1, 2).
		Margin(1, 0)

	SelectedStyle = lipgloss.NewStyle().
		Foreground(ColorVioletLt).
		Background(lipgloss.Color("236")).
		Bold(true)

	ItemStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	DescriptionStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Italic(true)

	NumberStyle = lipgloss.NewStyle().
		Foreground(ColorIndigo).
		Bold(true)

	// Message styles
	SuccessMessageStyle = lipgloss.NewStyle().
		Foreground(ColorSuccess).
		Bold(true)

	ErrorMessageStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)

	WarningMessageStyle = lipgloss.NewStyle().
		Foreground(ColorWarning).
		Bold(true)

	InfoMessageStyle = lipgloss.NewStyle().
		Foreground(ColorInfo)

	// Help styles
	HelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("240")).
		PaddingTop(1).
		MarginTop(1)

	KeyStyle = lipgloss.NewStyle().
		Foreground(ColorViolet).
		Bold(true)

	FooterStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	// App container
	AppStyle = lipgloss.NewStyle().
		Padding(1, 2)
)

func RenderTitle(title, subtitle string) string {
	var result string
	result += TitleStyle.Render(title)
	if subtitle != "" {
		result += "\n" + SubtitleStyle.Render(subtitle)
	}
	return result
}

func RenderMessage(messageType, message string) string {
	switch messageType {
	case "success":
		return SuccessMessageStyle.Render("✓ " + message)
	case "error":
		return ErrorMessageStyle.Render("✗ " + message)
	case "warning":
		return WarningMessageStyle.Render("⚠ " + message)
	case "info":
		return InfoMessageStyle.Render("ℹ " + message)
	default:
		return ItemStyle.Render(message)
	}
}

func RenderKeyBinding(key, description string) string {
	return KeyStyle.Render(key) + " " + DescriptionStyle.Render(description)
}
