package deferio

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aretw0/deferio/internal/logging"
	"github.com/aretw0/deferio/internal/runtime"
	"github.com/aretw0/deferio/pkg/action"
	"github.com/aretw0/deferio/pkg/domain"
	"github.com/aretw0/deferio/pkg/ports"
)

// Version is the current release of the deferio module.
const Version = "0.4.0"

// ErrNoConsole is returned by New when no console is supplied.
var ErrNoConsole = errors.New("deferio: a console is required")

// Engine is the high-level entry point for the deferio library.
// It wraps the internal evaluator and provides a simplified API for consumers.
type Engine struct {
	evaluator *runtime.Evaluator
	console   ports.Console
	hooks     domain.LifecycleHooks
	logger    *slog.Logger
	Name      string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
// Calling it more than once merges the hooks in registration order.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = e.hooks.Merge(hooks)
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithName labels the engine; the name is attached to every log record.
func WithName(name string) Option {
	return func(e *Engine) {
		e.Name = name
	}
}

// New initializes an Engine that performs effects against console.
func New(console ports.Console, opts ...Option) (*Engine, error) {
	if console == nil {
		return nil, ErrNoConsole
	}
	eng := &Engine{console: console}

	for _, opt := range opts {
		opt(eng)
	}

	// Ensure logger is initialized (so we don't pass nil to runtime)
	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}
	if eng.Name != "" {
		eng.logger = eng.logger.With("program", eng.Name)
	}

	eng.evaluator = runtime.NewEvaluator(
		console,
		runtime.WithLogger(eng.logger),
		runtime.WithLifecycleHooks(eng.hooks),
	)
	return eng, nil
}

// Perform executes every effect described by a, in order, and returns its text result.
// Console failures, including io.EOF at end of input, are returned unchanged.
func (e *Engine) Perform(ctx context.Context, a action.Action) (string, error) {
	return e.evaluator.Perform(ctx, a)
}

// Console returns the console the engine performs effects against.
func (e *Engine) Console() ports.Console {
	return e.console
}

// Perform is a shortcut for New(console) followed by Engine.Perform.
func Perform(ctx context.Context, console ports.Console, a action.Action) (string, error) {
	eng, err := New(console)
	if err != nil {
		return "", err
	}
	return eng.Perform(ctx, a)
}
