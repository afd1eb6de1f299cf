package cli

import (
	"context"
	"io"
	"os"

	"github.com/aretw0/deferio/internal/config"
)

// DefaultProgram runs when no program is named.
const DefaultProgram = "main"

// DefaultQuitWords end an interactive session as if input had closed.
var DefaultQuitWords = []string{"q", "quit", "exit"}

// RunOptions contains all the configuration for the Run command.
type RunOptions struct {
	// Program is a catalog name or a path to a YAML script.
	Program  string
	JSON     bool
	Debug    bool
	Metrics  bool
	LogLevel string
	Prompt   string
	Quit     bool

	// Streams default to the process streams when nil.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// OptionsFromConfig seeds RunOptions with environment settings. Flags override them afterwards.
func OptionsFromConfig(cfg config.Config) RunOptions {
	return RunOptions{
		JSON:     cfg.JSON,
		Debug:    cfg.Debug,
		Metrics:  cfg.Metrics,
		LogLevel: cfg.LogLevel,
		Prompt:   cfg.Prompt,
		Quit:     cfg.Quit,
	}
}

func (o RunOptions) withDefaults() RunOptions {
	if o.Program == "" {
		o.Program = DefaultProgram
	}
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	return o
}

// Execute handles the 'run' command logic.
func Execute(ctx context.Context, opts RunOptions) error {
	return RunSession(ctx, opts)
}
