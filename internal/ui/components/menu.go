package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// MenuItem represents a single menu item
type MenuItem struct {
	ID          string
	Title       string
	Description string
	Icon        string
	Shortcut    string
}

// MenuSelectedMsg is sent when an item is chosen with enter
type MenuSelectedMsg struct {
	Item MenuItem
}

type menuKeys struct {
	Up     key.Binding
	Down   key.Binding
	Home   key.Binding
	End    key.Binding
	Select key.Binding
}

var defaultMenuKeys = menuKeys{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Home:   key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first")),
	End:    key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last")),
	Select: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "open")),
}

// Menu is a vertical list of site sections
type Menu struct {
	Title    string
	Items    []MenuItem
	selected int
	keys     menuKeys
}

// NewMenu creates a new menu
func NewMenu(title string, items []MenuItem) Menu {
	return Menu{
		Title: title,
		Items: items,
		keys:  defaultMenuKeys,
	}
}

// Update handles menu navigation
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.selected < len(m.Items)-1 {
			m.selected++
		}
	case key.Matches(keyMsg, m.keys.Home):
		m.selected = 0
	case key.Matches(keyMsg, m.keys.End):
		m.selected = len(m.Items) - 1
	case key.Matches(keyMsg, m.keys.Select):
		item := m.Items[m.selected]
		return m, func() tea.Msg { return MenuSelectedMsg{Item: item} }
	default:
		// number and letter shortcuts
		s := keyMsg.String()
		if len(s) == 1 && s >= "1" && s <= "9" {
			if index := int(s[0] - '1'); index < len(m.Items) {
				m.selected = index
			}
			return m, nil
		}
		for i, item := range m.Items {
			if item.Shortcut != "" && item.Shortcut == s {
				m.selected = i
			}
		}
	}

	return m, nil
}

// View renders the menu
func (m Menu) View() string {
	var b strings.Builder

	if m.Title != "" {
		b.WriteString(HeadingStyle.Render(m.Title))
		b.WriteString("\n\n")
	}

	for i, item := range m.Items {
		if i == m.selected {
			b.WriteString("▸ ")
		} else {
			b.WriteString("  ")
		}

		if i < 9 {
			b.WriteString(NumberStyle.Render(fmt.Sprintf("%d.", i+1)))
			b.WriteString(" ")
		}

		if item.Icon != "" {
			b.WriteString(item.Icon)
			b.WriteString(" ")
		}

		title := item.Title
		if item.Shortcut != "" {
			title += fmt.Sprintf(" (%s)", item.Shortcut)
		}
		if i == m.selected {
			b.WriteString(SelectedStyle.Render(title))
		} else {
			b.WriteString(ItemStyle.Render(title))
		}
		b.WriteString("\n")

		// Description only for the selected item
		if i == m.selected && item.Description != "" {
			b.WriteString(strings.Repeat(" ", 6))
			b.WriteString(DescriptionStyle.Render(item.Description))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// Help renders the key hints
func (m Menu) Help() string {
	help := []string{
		RenderKeyBinding(m.keys.Up.Help().Key, m.keys.Up.Help().Desc),
		RenderKeyBinding(m.keys.Down.Help().Key, m.keys.Down.Help().Desc),
		RenderKeyBinding(m.keys.Select.Help().Key, m.keys.Select.Help().Desc),
		RenderKeyBinding("1-9", "quick select"),
	}
	return strings.Join(help, " • ")
}

// GetSelected returns the currently selected item
func (m Menu) GetSelected() *MenuItem {
	if m.selected >= 0 && m.selected < len(m.Items) {
		return &m.Items[m.selected]
	}
	return nil
}

// SetSelected sets the selected index
func (m *Menu) SetSelected(index int) {
	if index >= 0 && index < len(m.Items) {
		m.selected = index
	}
}
