package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/starfetchhq/starfetch/internal/github"
)

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestMenuShortcuts(t *testing.T) {
	tests := []struct {
		key  string
		want Action
	}{
		{"1", ActionList},
		{"l", ActionList},
		{"2", ActionDetail},
		{"g", ActionDetail},
		{"3", ActionStar},
		{"s", ActionStar},
		{"4", ActionUnstar},
		{"u", ActionUnstar},
		{"q", ActionQuit},
		{"esc", ActionQuit},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			model, cmd := NewMenu().Update(keyPress(tt.key))
			menu := model.(Menu)
			if menu.Choice() != tt.want {
				t.Errorf("Choice() = %v, want %v", menu.Choice(), tt.want)
			}
			if cmd == nil {
				t.Error("expected tea.Quit command after a choice")
			}
		})
	}
}

func TestMenuCursorNavigation(t *testing.T) {
	var model tea.Model = NewMenu()

	// Down twice, then select: third entry (star).
	model, _ = model.Update(keyPress("down"))
	model, _ = model.Update(keyPress("down"))
	model, _ = model.Update(keyPress("enter"))

	if got := model.(Menu).Choice(); got != ActionStar {
		t.Errorf("Choice() = %v, want ActionStar", got)
	}
}

func TestMenuCursorClamps(t *testing.T) {
	var model tea.Model = NewMenu()
	model, _ = model.Update(keyPress("up")) // already at the top
	model, _ = model.Update(keyPress("enter"))

	if got := model.(Menu).Choice(); got != ActionList {
		t.Errorf("Choice() = %v, want first entry", got)
	}
}

func TestMenuViewListsActions(t *testing.T) {
	view := NewMenu().View()
	for _, want := range []string{"List starred", "Star a repository", "Quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestSelectorSelection(t *testing.T) {
	repos := []github.RepoSummary{
		{ID: 1, Name: "repo1", Owner: github.Owner{Login: "user1"}, Stars: 10},
		{ID: 2, Name: "repo2", Owner: github.Owner{Login: "user2"}, Stars: 20},
	}

	var model tea.Model = NewSelector("Starred repositories", repos)
	model, _ = model.Update(keyPress("down"))
	model, _ = model.Update(keyPress("enter"))

	selection := model.(Selector).Selection()
	if selection == nil {
		t.Fatal("expected a selection")
	}
	if selection.Name != "repo2" {
		t.Errorf("selected %q, want repo2", selection.Name)
	}
}

func TestSelectorDismissed(t *testing.T) {
	repos := []github.RepoSummary{
		{ID: 1, Name: "repo1", Owner: github.Owner{Login: "user1"}},
	}

	var model tea.Model = NewSelector("Starred repositories", repos)
	model, _ = model.Update(keyPress("esc"))

	if selection := model.(Selector).Selection(); selection != nil {
		t.Errorf("Selection() = %+v, want nil after dismissal", selection)
	}
}

func TestSelectorEmptyListQuitsImmediately(t *testing.T) {
	selector := NewSelector("Starred repositories", nil)
	if cmd := selector.Init(); cmd == nil {
		t.Error("Init() on an empty list should quit")
	}
	if selection := selector.Selection(); selection != nil {
		t.Errorf("Selection() = %+v, want nil", selection)
	}
}

func TestPromptCollectsOwnerAndName(t *testing.T) {
	var model tea.Model = NewPrompt()

	for _, r := range "octocat" {
		model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	model, _ = model.Update(keyPress("enter"))
	for _, r := range "hello-world" {
		model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	model, _ = model.Update(keyPress("enter"))

	owner, name, ok := model.(Prompt).Values()
	if !ok {
		t.Fatal("Values() not ok after both entries")
	}
	if owner != "octocat" || name != "hello-world" {
		t.Errorf("Values() = %q/%q", owner, name)
	}
}

func TestPromptIgnoresEmptyEntry(t *testing.T) {
	var model tea.Model = NewPrompt()
	model, _ = model.Update(keyPress("enter")) // empty owner, stays on owner

	if _, _, ok := model.(Prompt).Values(); ok {
		t.Error("Values() ok after empty submission")
	}
}

func TestPromptCanceled(t *testing.T) {
	var model tea.Model = NewPrompt()
	for _, r := range "octocat" {
		model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	model, _ = model.Update(keyPress("esc"))

	if _, _, ok := model.(Prompt).Values(); ok {
		t.Error("Values() ok after cancel")
	}
}
