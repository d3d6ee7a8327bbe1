package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Prompt collects a repository reference (owner, then name) from typed
// input. It resolves to both values, or to none when dismissed.
type Prompt struct {
	input    textinput.Model
	owner    string
	name     string
	onName   bool
	canceled bool
	styles   Styles
}

// NewPrompt creates an owner/name prompt.
func NewPrompt() Prompt {
	input := textinput.New()
	input.Placeholder = "owner"
	input.CharLimit = 100
	input.Focus()

	return Prompt{
		input:  input,
		styles: DefaultStyles(),
	}
}

// Values returns the collected owner and name. ok is false when the prompt
// was canceled or either value is empty.
func (p Prompt) Values() (owner, name string, ok bool) {
	if p.canceled || p.owner == "" || p.name == "" {
		return "", "", false
	}
	return p.owner, p.name, true
}

// Init implements tea.Model.
func (p Prompt) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (p Prompt) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc", "ctrl+c":
			p.canceled = true
			return p, tea.Quit
		case "enter":
			value := strings.TrimSpace(p.input.Value())
			if value == "" {
				return p, nil
			}
			if !p.onName {
				p.owner = value
				p.onName = true
				p.input.SetValue("")
				p.input.Placeholder = "repository"
				return p, nil
			}
			p.name = value
			return p, tea.Quit
		}
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

// View implements tea.Model.
func (p Prompt) View() string {
	var b strings.Builder
	if !p.onName {
		b.WriteString(p.styles.Title.Render("Repository owner"))
	} else {
		b.WriteString(p.styles.Title.Render("Repository name (owner: " + p.owner + ")"))
	}
	b.WriteString("\n\n")
	b.WriteString(p.input.View())
	b.WriteString("\n\n")
	b.WriteString(p.styles.Help.Render("enter confirm · esc cancel"))
	b.WriteString("\n")
	return b.String()
}
