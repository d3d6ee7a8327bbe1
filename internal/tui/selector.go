package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/starfetchhq/starfetch/internal/github"
)

// Selector presents a navigable list of repositories and resolves to the
// chosen one, or to none when dismissed.
type Selector struct {
	title  string
	repos  []github.RepoSummary
	cursor int
	chosen bool
	keys   KeyMap
	styles Styles
}

// NewSelector creates a repository selector with the given title.
func NewSelector(title string, repos []github.RepoSummary) Selector {
	return Selector{
		title:  title,
		repos:  repos,
		keys:   DefaultKeyMap(),
		styles: DefaultStyles(),
	}
}

// Selection returns the chosen repository, or nil when the selector was
// dismissed or the list was empty.
func (s Selector) Selection() *github.RepoSummary {
	if !s.chosen || len(s.repos) == 0 {
		return nil
	}
	repo := s.repos[s.cursor]
	return &repo
}

// Init implements tea.Model.
func (s Selector) Init() tea.Cmd {
	if len(s.repos) == 0 {
		return tea.Quit
	}
	return nil
}

// Update implements tea.Model.
func (s Selector) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch {
	case key.Matches(keyMsg, s.keys.Quit):
		s.chosen = false
		return s, tea.Quit
	case key.Matches(keyMsg, s.keys.Up):
		if s.cursor > 0 {
			s.cursor--
		}
	case key.Matches(keyMsg, s.keys.Down):
		if s.cursor < len(s.repos)-1 {
			s.cursor++
		}
	case key.Matches(keyMsg, s.keys.Select):
		if len(s.repos) > 0 {
			s.chosen = true
		}
		return s, tea.Quit
	}

	return s, nil
}

// View implements tea.Model.
func (s Selector) View() string {
	var b strings.Builder
	b.WriteString(s.styles.Title.Render(s.title))
	b.WriteString("\n\n")

	if len(s.repos) == 0 {
		b.WriteString(s.styles.Help.Render("no repositories"))
		b.WriteString("\n")
		return b.String()
	}

	for i, repo := range s.repos {
		line := fmt.Sprintf("%s (★ %d)", repo.FullName(), repo.Stars)
		if i == s.cursor {
			b.WriteString(s.styles.Selected.Render(line))
		} else {
			b.WriteString(s.styles.Item.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(s.styles.Help.Render("↑/↓ move · enter select · esc cancel"))
	b.WriteString("\n")
	return b.String()
}
