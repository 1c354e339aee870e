package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-wordplay/internal/catalog"
	"github.com/vovakirdan/tui-wordplay/internal/registry"
)

// Launcher lists playable items and builds games for them.
type Launcher interface {
	Items() []catalog.Item
	Launch(item catalog.Item, player string) (registry.Game, error)
	FormatScore(gameID string, score int) string
}

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuSectionStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	menuErrorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// MenuModel is the Bubble Tea model for the puzzle picker.
type MenuModel struct {
	items       []catalog.Item
	cursor      int
	width       int
	height      int
	keys        MenuKeyMap
	help        help.Model
	err         string
	quitting    bool
	selected    *catalog.Item // Set when user selects a puzzle
	openResults bool          // True if user pressed Tab for results
}

// NewMenuModel creates a new menu model.
func NewMenuModel(items []catalog.Item, width, height int) MenuModel {
	h := help.New()
	h.Width = width
	return MenuModel{
		items:  items,
		width:  width,
		height: height,
		keys:   DefaultMenuKeyMap(),
		help:   h,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start game
		}

	case key.Matches(msg, m.keys.Results):
		m.openResults = true
		return m, tea.Quit // Exit menu to show results
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("  W O R D P L A Y  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Pick a puzzle", m.width))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(centerText("No puzzles found", m.width))
		b.WriteString("\n")
	}

	section := ""
	for i, item := range m.items {
		if title := gameTitle(item.GameID); title != section {
			if section != "" {
				b.WriteString("\n")
			}
			section = title
			b.WriteString(centerText(menuSectionStyle.Render(title), m.width))
			b.WriteString("\n")
		}

		line := fmt.Sprintf("  %s  ", item.Title)
		if i == m.cursor {
			line = menuSelectedStyle.Render(fmt.Sprintf("> %s  ", item.Title))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if m.err != "" {
		b.WriteString("\n")
		b.WriteString(centerText(menuErrorStyle.Render(m.err), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(helpStyle.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")

	return b.String()
}

// WithError returns the menu showing err, with any selection cleared.
func (m MenuModel) WithError(err error) MenuModel {
	m.err = err.Error()
	m.selected = nil
	m.openResults = false
	return m
}

// Selected returns the selected item, or nil if none selected.
func (m MenuModel) Selected() *catalog.Item {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsResults returns true if user requested the results screen.
func (m MenuModel) WantsResults() bool {
	return m.openResults
}

// Size returns the last known terminal size.
func (m MenuModel) Size() (width, height int) {
	return m.width, m.height
}

func gameTitle(gameID string) string {
	if info, ok := registry.Info(gameID); ok {
		return info.Title
	}
	return gameID
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
