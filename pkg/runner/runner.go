package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/deferio"
	"github.com/aretw0/deferio/internal/logging"
	"github.com/aretw0/deferio/pkg/action"
	"github.com/aretw0/deferio/pkg/domain"
	"github.com/aretw0/deferio/pkg/ports"
)

// Outcome summarizes one finished session.
type Outcome struct {
	// Result is the text result of the program. Empty when input closed early.
	Result string

	// InputClosed is true when the program stopped because input ended (io.EOF).
	InputClosed bool
}

// Runner hosts a program: it resolves the console, builds the Engine and performs the program.
// This allows for easy testing and integration with different frontends (CLI, pipes, tests).
type Runner struct {
	// Console is the channel pair. If nil, one is built from Input/Output/JSON/Prompt.
	Console ports.Console

	// Logger is used for session logging. If nil, a no-op logger is used.
	Logger *slog.Logger

	Hooks     domain.LifecycleHooks
	Input     io.Reader
	Output    io.Writer
	JSON      bool
	Prompt    string
	QuitWords []string
	Name      string
}

// NewRunner creates a new Runner with default Stdin/Stdout.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{}
	for _, opt := range opts {
		opt(r)
	}
	if r.Logger == nil {
		r.Logger = logging.NewNop()
	}
	return r
}

// Run performs program until it completes.
// End of input (io.EOF) is not an error: it is reported through Outcome.InputClosed.
// Any other console failure is returned wrapped.
func (r *Runner) Run(ctx context.Context, program action.Action) (Outcome, error) {
	console := WithQuit(r.resolveConsole(), r.QuitWords...)

	engine, err := deferio.New(console,
		deferio.WithLogger(r.Logger),
		deferio.WithLifecycleHooks(r.Hooks),
		deferio.WithName(r.Name),
	)
	if err != nil {
		return Outcome{}, err
	}

	r.Logger.Debug("session started", "program", r.Name)
	result, err := engine.Perform(ctx, program)
	if err != nil {
		if errors.Is(err, io.EOF) {
			r.Logger.Debug("input closed before the program finished", "program", r.Name)
			return Outcome{InputClosed: true}, nil
		}
		return Outcome{}, fmt.Errorf("session failed: %w", err)
	}
	r.Logger.Debug("session finished", "program", r.Name)
	return Outcome{Result: result}, nil
}

// resolveConsole ensures a valid Console is set.
func (r *Runner) resolveConsole() ports.Console {
	if r.Console != nil {
		return r.Console
	}
	var c ports.Console
	if r.JSON {
		c = NewJSONConsole(r.Input, r.Output)
	} else {
		c = NewTextConsole(r.Input, r.Output, WithPrompt(r.Prompt))
	}
	// Memoize so buffered input survives subsequent Run() calls
	r.Console = c
	return c
}
