package main

import (
	"fmt"
	"os"

	"github.com/andersonjoseph/primer/internal/logging"
	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	logger, err := logging.New()
	if err != nil {
		fmt.Println("Error setting up logging:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	m, err := newModel(logger)
	if err != nil {
		fmt.Println("Error building walkthrough:", err)
		os.Exit(1)
	}

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		fmt.Println("Error running program:", err)
		os.Exit(1)
	}
}
