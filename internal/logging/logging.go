// Package logging configures the walkthrough's logger. The walkthrough owns
// the terminal while it runs, so nothing may log to stdout or stderr; logs go
// to a file instead, and only when one is asked for.
package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

const envVar = "PRIMER_LOG"

// New returns a file-backed logger when PRIMER_LOG names a path, and a no-op
// logger otherwise.
func New() (*zap.Logger, error) {
	path := os.Getenv(envVar)
	if path == "" {
		return zap.NewNop(), nil
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("error building logger: %w", err)
	}

	return logger, nil
}
