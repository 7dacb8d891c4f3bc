package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	confirmYes = key.NewBinding(key.WithKeys("y", "Y"))
	confirmNo  = key.NewBinding(key.WithKeys("n", "N", "enter", "esc", "ctrl+c"))
)

type confirmModel struct {
	prompt    string
	confirmed bool
	done      bool
	theme     Theme
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, confirmYes):
			m.confirmed = true
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, confirmNo):
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}
	promptStyle := lipgloss.NewStyle().Bold(true).Foreground(m.theme.Primary)
	return fmt.Sprintf("%s %s ", promptStyle.Render(m.prompt), m.theme.DangerStyle().Render("[y/N]"))
}

// Confirm asks a yes/no question and reports whether the user answered yes.
// Anything but y counts as no.
func Confirm(prompt string, theme Theme) (bool, error) {
	p := tea.NewProgram(confirmModel{prompt: prompt, theme: theme})
	result, err := p.Run()
	if err != nil {
		return false, err
	}
	return result.(confirmModel).confirmed, nil
}
