package greetinput

import (
	"github.com/andersonjoseph/primer/internal/components"
	"github.com/andersonjoseph/primer/internal/messages"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var promptStyle lipgloss.Style = lipgloss.NewStyle().Foreground(components.ColorWhite)

// Model lets the user re-run the greeter step with a name of their own.
type Model struct {
	ID        int
	IsFocused bool
	textInput textinput.Model
}

func New(id int) Model {
	ti := textinput.New()
	ti.Placeholder = "name to greet..."
	ti.CharLimit = 64
	ti.Width = 40
	ti.Prompt = "> "
	ti.PromptStyle = promptStyle

	return Model{
		ID:        id,
		textInput: ti,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case messages.WindowFocused:
		m.IsFocused = int(msg) == m.ID
		if m.IsFocused {
			m.textInput.Focus()
		} else {
			m.textInput.Blur()
		}

		return m, func() tea.Msg {
			return messages.TextInputFocused(m.IsFocused)
		}

	case tea.KeyMsg:
		if !m.IsFocused {
			return m, nil
		}

		switch msg.Type {
		case tea.KeyEnter:
			name := m.textInput.Value()
			if name == "" {
				return m, nil
			}

			m.textInput.Reset()
			return m, func() tea.Msg {
				return messages.GreetRequested(name)
			}

		case tea.KeyEsc:
			m.IsFocused = false
			m.textInput.Blur()
			return m, func() tea.Msg {
				return messages.TextInputFocused(false)
			}
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.textInput.View()
}
