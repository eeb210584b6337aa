package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/andersonjoseph/primer/internal/components/greetinput"
	"github.com/andersonjoseph/primer/internal/components/outputview"
	"github.com/andersonjoseph/primer/internal/components/sourceview"
	"github.com/andersonjoseph/primer/internal/components/status"
	"github.com/andersonjoseph/primer/internal/components/window"
	"github.com/andersonjoseph/primer/internal/lesson"
	"github.com/andersonjoseph/primer/internal/messages"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

const (
	windowBindings = 1
	windowSteps    = 2
	windowSource   = 3
	windowOutput   = 4
	windowGreet    = 5
)

type model struct {
	sidebar sidebar
	source  window.Model
	output  window.Model
	greet   greetinput.Model
	status  status.Model

	steps            []lesson.Step
	currentStep      int
	transcript       string
	focusedWindow    int
	textInputFocused bool
	logger           *zap.Logger
}

func newModel(logger *zap.Logger) (model, error) {
	steps := lesson.Steps()

	transcript, err := lesson.Transcript(1)
	if err != nil {
		return model{}, fmt.Errorf("error building initial transcript: %w", err)
	}

	return model{
		sidebar: newSidebar(steps),
		source:  window.New(windowSource, "Source", sourceview.New(windowSource, steps)),
		output:  window.New(windowOutput, "Output", outputview.New(windowOutput)),
		greet:   greetinput.New(windowGreet),
		status:  status.New(),

		steps:      steps,
		transcript: transcript,
		logger:     logger,
	}, nil
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg {
			return messages.TranscriptUpdated(m.transcript)
		},
		func() tea.Msg {
			return messages.WindowFocused(windowOutput)
		},
		func() tea.Msg {
			return messages.UpdatedHint(m.hint())
		},
		m.output.Init(),
	)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case messages.Error:
		m.status, cmd = m.status.Update(msg)
		return m, cmd

	case messages.TextInputFocused:
		m.textInputFocused = bool(msg)
		return m, nil

	case messages.GreetRequested:
		cmd = m.runGreet(string(msg))
		return m, cmd

	case messages.TranscriptUpdated:
		m.transcript = string(msg)
		cmd = m.broadcast(msg)
		return m, cmd

	case messages.WindowFocused:
		m.focusedWindow = int(msg)
		cmd = m.broadcast(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		cmd = m.handleResize(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)

	default:
		cmd = m.broadcast(msg)
		return m, cmd
	}
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	if m.textInputFocused {
		m.greet, cmd = m.greet.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "n", "right":
		cmd = m.setStep(m.currentStep + 1)
		return m, cmd

	case "p", "left":
		cmd = m.setStep(m.currentStep - 1)
		return m, cmd
	}

	if id, err := strconv.Atoi(msg.String()); err == nil {
		if id == windowGreet && m.currentStep != len(m.steps)-1 {
			return m, nil
		}
		if id >= windowBindings && id <= windowGreet {
			return m, func() tea.Msg {
				return messages.WindowFocused(id)
			}
		}
		return m, nil
	}

	cmds = append(cmds, m.broadcast(msg))

	return m, tea.Batch(cmds...)
}

func (m *model) setStep(index int) tea.Cmd {
	if index < 0 || index >= len(m.steps) {
		return nil
	}
	m.currentStep = index

	transcript, err := lesson.Transcript(index + 1)
	if err != nil {
		return messages.ErrorCmd(err)
	}

	m.logger.Info("step changed",
		zap.Int("step", index),
		zap.String("title", m.steps[index].Title),
	)

	cmds := []tea.Cmd{
		func() tea.Msg { return messages.StepChanged(index) },
		func() tea.Msg { return messages.TranscriptUpdated(transcript) },
		func() tea.Msg { return messages.NewBindings(m.steps[index].Bindings) },
		func() tea.Msg { return messages.UpdatedHint(m.hint()) },
	}

	if index == len(m.steps)-1 {
		cmds = append(cmds, func() tea.Msg {
			return messages.WindowFocused(windowGreet)
		})
	}

	return tea.Batch(cmds...)
}

func (m *model) runGreet(name string) tea.Cmd {
	sb := strings.Builder{}
	if err := lesson.Greet(&sb, name); err != nil {
		return messages.ErrorCmd(err)
	}

	m.logger.Info("greeted", zap.String("name", name))

	transcript := m.transcript + sb.String()
	return func() tea.Msg {
		return messages.TranscriptUpdated(transcript)
	}
}

func (m model) hint() string {
	if m.currentStep == len(m.steps)-1 {
		return fmt.Sprintf("step %d of %d, type a name and press enter, q: quit", m.currentStep+1, len(m.steps))
	}

	return fmt.Sprintf("step %d of %d, n/p: step forward/back, q: quit", m.currentStep+1, len(m.steps))
}

func (m *model) broadcast(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	m.sidebar.bindings, cmd = m.sidebar.bindings.Update(msg)
	cmds = append(cmds, cmd)

	m.sidebar.steps, cmd = m.sidebar.steps.Update(msg)
	cmds = append(cmds, cmd)

	m.source, cmd = m.source.Update(msg)
	cmds = append(cmds, cmd)

	m.output, cmd = m.output.Update(msg)
	cmds = append(cmds, cmd)

	m.greet, cmd = m.greet.Update(msg)
	cmds = append(cmds, cmd)

	m.status, cmd = m.status.Update(msg)
	cmds = append(cmds, cmd)

	return tea.Batch(cmds...)
}

func (m model) View() string {
	mainColumn := []string{
		m.source.View(),
		m.output.View(),
	}

	if m.currentStep == len(m.steps)-1 {
		mainColumn = append(mainColumn, m.greet.View())
	}

	return lipgloss.JoinVertical(
		lipgloss.Top,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			lipgloss.JoinVertical(
				lipgloss.Top,
				m.sidebar.bindings.View(),
				m.sidebar.steps.View(),
			),
			lipgloss.JoinVertical(lipgloss.Top, mainColumn...),
		),
		m.status.View(),
	)
}

func (m *model) handleResize(msg tea.WindowSizeMsg) tea.Cmd {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	sidebarWidth, sidebarHeight := m.sidebar.calcSize(msg.Width, msg.Height)

	m.sidebar.bindings, cmd = m.sidebar.bindings.Update(tea.WindowSizeMsg{Width: sidebarWidth, Height: sidebarHeight})
	cmds = append(cmds, cmd)

	m.sidebar.steps, cmd = m.sidebar.steps.Update(tea.WindowSizeMsg{Width: sidebarWidth, Height: sidebarHeight})
	cmds = append(cmds, cmd)

	sourceHeight := max(msg.Height/3, 5)
	mainWidth := (msg.Width - sidebarWidth) - 4

	m.source, cmd = m.source.Update(tea.WindowSizeMsg{Width: mainWidth, Height: sourceHeight})
	cmds = append(cmds, cmd)

	outputHeight := max((msg.Height-sourceHeight)-8, 2)
	m.output, cmd = m.output.Update(tea.WindowSizeMsg{Width: mainWidth, Height: outputHeight})
	cmds = append(cmds, cmd)

	m.status, cmd = m.status.Update(tea.WindowSizeMsg{Width: msg.Width, Height: 1})
	cmds = append(cmds, cmd)

	return tea.Batch(cmds...)
}
