package main

import (
	"fmt"
	"os"

	"github.com/andersonjoseph/primer/internal/lesson"
)

func main() {
	if err := lesson.Run(os.Stdout); err != nil {
		fmt.Println("Error running lesson:", err)
		os.Exit(1)
	}
}
