package runner

import (
	"io"
	"log/slog"

	"github.com/aretw0/deferio/pkg/domain"
	"github.com/aretw0/deferio/pkg/ports"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithConsole configures a custom console. It takes precedence over the stream options.
func WithConsole(console ports.Console) Option {
	return func(r *Runner) {
		r.Console = console
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithStreams sets the input and output used to build the default console.
func WithStreams(in io.Reader, out io.Writer) Option {
	return func(r *Runner) {
		r.Input = in
		r.Output = out
	}
}

// WithJSON switches the default console to NDJSON.
func WithJSON(enabled bool) Option {
	return func(r *Runner) {
		r.JSON = enabled
	}
}

// WithTextPrompt sets the prompt of the default text console.
func WithTextPrompt(prompt string) Option {
	return func(r *Runner) {
		r.Prompt = prompt
	}
}

// WithQuitWords makes the listed replies end the session as if input had closed.
func WithQuitWords(words ...string) Option {
	return func(r *Runner) {
		r.QuitWords = words
	}
}

// WithLifecycleHooks registers observability hooks; repeated calls are merged.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(r *Runner) {
		r.Hooks = r.Hooks.Merge(hooks)
	}
}

// WithName labels the session in log records.
func WithName(name string) Option {
	return func(r *Runner) {
		r.Name = name
	}
}
