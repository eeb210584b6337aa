package messages

import (
	"github.com/andersonjoseph/primer/internal/lesson"
	tea "github.com/charmbracelet/bubbletea"
)

type Error error

func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		return Error(err)
	}
}

type WindowFocused int
type TextInputFocused bool

type StepChanged int
type TranscriptUpdated string
type NewBindings []lesson.Binding

type GreetRequested string

type UpdatedHint string
