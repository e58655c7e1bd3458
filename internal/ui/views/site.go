package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/karthickk/welcome/internal/ui/components"
	"github.com/karthickk/welcome/pkg/config"
)

var siteQuitKey = key.NewBinding(
	key.WithKeys("q", "ctrl+c", "esc"),
	key.WithHelp("q", "quit"),
)

// SiteModel is the page revealed once the welcome screen is gone
type SiteModel struct {
	site     config.SiteConfig
	logo     *components.Logo
	menu     components.Menu
	opened   *components.MenuItem
	width    int
	height   int
	quitting bool
}

// NewSiteModel builds the site page from the site configuration
func NewSiteModel(site config.SiteConfig) *SiteModel {
	logo := components.NewLogo(site.Heading, site.Title)
	logo.URL = site.URL
	logo.Owner = site.Owner

	return &SiteModel{
		site: site,
		logo: logo,
		menu: components.NewMenu("Sections", siteSections(site)),
	}
}

func siteSections(site config.SiteConfig) []components.MenuItem {
	items := []components.MenuItem{
		{
			ID:          "about",
			Title:       "About",
			Description: fmt.Sprintf("%s's portfolio", site.Owner),
			Icon:        "◉",
			Shortcut:    "a",
		},
		{
			ID:          "website",
			Title:       "Website",
			Description: site.URL,
			Icon:        "◍",
			Shortcut:    "w",
		},
	}
	if site.GitHub != "" {
		items = append(items, components.MenuItem{
			ID:          "github",
			Title:       "GitHub",
			Description: site.GitHub,
			Icon:        "⎇",
			Shortcut:    "h",
		})
	}
	for i, link := range site.Links {
		items = append(items, components.MenuItem{
			ID:          fmt.Sprintf("link-%d", i),
			Title:       link,
			Description: link,
			Icon:        "→",
		})
	}
	return items
}

// Init initializes the site page
func (m *SiteModel) Init() tea.Cmd {
	return nil
}

// SetSize records the terminal size
func (m *SiteModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles navigation in the section menu
func (m *SiteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case components.MenuSelectedMsg:
		item := msg.Item
		m.opened = &item
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, siteQuitKey) {
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

// Quitting reports whether the user asked to quit
func (m *SiteModel) Quitting() bool {
	return m.quitting
}

// Opened returns the last section opened with enter
func (m *SiteModel) Opened() *components.MenuItem {
	return m.opened
}

// View renders the site page
func (m *SiteModel) View() string {
	width := m.width
	if width <= 0 {
		width = 80
	}

	var b strings.Builder
	b.WriteString(m.logo.Render(width))
	b.WriteString("\n")
	b.WriteString(components.WelcomeMessage("You're on " + m.site.Owner + "'s portfolio"))
	b.WriteString("\n")

	panel := m.menu.View()
	if m.opened != nil {
		detail := components.RenderTitle(m.opened.Title, m.opened.Description)
		if m.opened.ID != "about" {
			detail += "\n" + components.RenderMessage("info", "open "+m.opened.Description+" in your browser")
		}
		panel = lipgloss.JoinHorizontal(lipgloss.Top, panel, "    ", detail)
	}
	b.WriteString(components.BoxStyle.Render(panel))
	b.WriteString("\n")

	help := []string{m.menu.Help(), components.RenderKeyBinding(siteQuitKey.Help().Key, siteQuitKey.Help().Desc)}
	b.WriteString(components.HelpStyle.Render(strings.Join(help, " • ")))

	return components.AppStyle.Render(b.String())
}
