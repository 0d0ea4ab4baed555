package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// LaunchChoice is an entry of the launcher menu.
type LaunchChoice int

const (
	LaunchNone     LaunchChoice = iota
	LaunchTerminal              // Play in this terminal
	LaunchWindow                // Play in a desktop window
	LaunchScores                // Show the scoreboard
	LaunchQuit
)

// MenuItem represents a selectable launcher entry.
type MenuItem struct {
	Choice LaunchChoice
	Title  string
}

// DefaultMenuItems returns the launcher entries. The window entry is left
// out when no desktop is available.
func DefaultMenuItems(withWindow bool) []MenuItem {
	items := []MenuItem{{Choice: LaunchTerminal, Title: "Play in terminal"}}
	if withWindow {
		items = append(items, MenuItem{Choice: LaunchWindow, Title: "Play in window"})
	}
	return append(items,
		MenuItem{Choice: LaunchScores, Title: "High scores"},
		MenuItem{Choice: LaunchQuit, Title: "Quit"},
	)
}

// MenuModel is the Bubble Tea model for the launcher menu.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selected  LaunchChoice
}

// NewMenuModel creates a new menu model.
func NewMenuModel(items []MenuItem, width, height int) MenuModel {
	return MenuModel{
		items:     items,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
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
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.selected = LaunchQuit
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			m.selected = m.items[m.cursor].Choice
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.selected != LaunchNone {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	cursorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("M A T H   B R E A K O U T"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Every brick is a question", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Title + "  "
		if i == m.cursor {
			line = cursorStyle.Render("> " + item.Title + "  ")
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Up/Down: Navigate  |  Enter: Select  |  Q: Quit", m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen entry, LaunchNone while the menu runs.
func (m MenuModel) Selected() LaunchChoice {
	return m.selected
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunMenu runs the launcher menu and returns the choice.
func RunMenu(items []MenuItem, width, height int) (LaunchChoice, error) {
	p := tea.NewProgram(
		NewMenuModel(items, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return LaunchQuit, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.Selected() == LaunchNone {
		return LaunchQuit, nil
	}
	return m.Selected(), nil
}
