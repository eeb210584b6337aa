package sourceview

import (
	"fmt"
	"strings"

	"github.com/andersonjoseph/primer/internal/lesson"
	"github.com/andersonjoseph/primer/internal/messages"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type Model struct {
	ID      int
	steps   []lesson.Step
	cm      contentManager
	content string
	title   string
	width   int
	height  int
}

func New(id int, steps []lesson.Step) Model {
	m := Model{
		ID:    id,
		steps: steps,
		cm:    newContentManager(),
	}

	if len(steps) > 0 {
		m.setStep(0)
	}

	return m
}

func (m Model) Init() tea.Cmd { return nil }
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case messages.StepChanged:
		if err := m.setStep(int(msg)); err != nil {
			return m, messages.ErrorCmd(err)
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) setStep(index int) error {
	if index < 0 || index >= len(m.steps) {
		return fmt.Errorf("error showing source: no step %d", index)
	}

	step := m.steps[index]
	m.title = step.Title

	content, err := m.cm.getSource(step.Title, step.Source)
	if err != nil {
		return fmt.Errorf("error showing source: %w", err)
	}
	m.content = content

	return nil
}

func (m Model) View() string {
	// Reset ANSI codes per line so the highlight doesn't bleed into the
	// border drawn around this pane.
	lines := strings.Split(strings.TrimRight(m.content, "\n"), "\n")
	for i := range lines {
		lines[i] = lines[i] + "\033[0m"
	}

	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Render(strings.Join(lines, "\n"))
}
