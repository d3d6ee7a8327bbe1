package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Action is the operation picked from the interactive menu.
type Action int

const (
	// ActionNone means the menu was dismissed without a choice.
	ActionNone Action = iota
	// ActionList lists starred repositories.
	ActionList
	// ActionDetail shows details for a selected starred repository.
	ActionDetail
	// ActionStar stars a repository entered by hand.
	ActionStar
	// ActionUnstar removes a star from a selected repository.
	ActionUnstar
	// ActionQuit leaves interactive mode.
	ActionQuit
)

// menuEntry pairs an action with its menu line and shortcut keys.
type menuEntry struct {
	action Action
	label  string
	keys   []string
}

var menuEntries = []menuEntry{
	{ActionList, "List starred repositories", []string{"1", "l"}},
	{ActionDetail, "Get repository details", []string{"2", "g"}},
	{ActionStar, "Star a repository", []string{"3", "s"}},
	{ActionUnstar, "Unstar a repository", []string{"4", "u"}},
	{ActionQuit, "Quit", nil},
}

// Menu is the top-level interactive model. It resolves to exactly one
// Action per run; the command layer loops, re-running the menu after each
// completed operation until ActionQuit.
type Menu struct {
	cursor int
	choice Action
	keys   KeyMap
	styles Styles
}

// NewMenu creates the action menu.
func NewMenu() Menu {
	return Menu{
		choice: ActionNone,
		keys:   DefaultKeyMap(),
		styles: DefaultStyles(),
	}
}

// Choice returns the action picked during the run, or ActionNone.
func (m Menu) Choice() Action {
	return m.choice
}

// Init implements tea.Model.
func (m Menu) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Menu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.choice = ActionQuit
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(menuEntries)-1 {
			m.cursor++
		}
		return m, nil
	case key.Matches(keyMsg, m.keys.Select):
		m.choice = menuEntries[m.cursor].action
		return m, tea.Quit
	}

	// Digit and mnemonic shortcuts pick an entry directly.
	for _, entry := range menuEntries {
		for _, k := range entry.keys {
			if keyMsg.String() == k {
				m.choice = entry.action
				return m, tea.Quit
			}
		}
	}

	return m, nil
}

// View implements tea.Model.
func (m Menu) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("starfetch interactive mode"))
	b.WriteString("\n\n")

	for i, entry := range menuEntries {
		label := entry.label
		if len(entry.keys) > 0 {
			label = strings.Join(entry.keys, "/") + ": " + label
		}
		if i == m.cursor {
			b.WriteString(m.styles.Selected.Render(label))
		} else {
			b.WriteString(m.styles.Item.Render(label))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("↑/↓ move · enter select · q quit"))
	b.WriteString("\n")
	return b.String()
}
