package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/deferio/internal/logging"
	"github.com/aretw0/deferio/pkg/action"
	"github.com/aretw0/deferio/pkg/domain"
	"github.com/aretw0/deferio/pkg/ports"
)

// Evaluator is the only component that performs the effects an Action describes.
type Evaluator struct {
	console ports.Console
	logger  *slog.Logger
	hooks   domain.LifecycleHooks
	now     func() time.Time
}

// EvaluatorOption defines a functional option for configuring the Evaluator.
type EvaluatorOption func(*Evaluator)

// WithLogger sets the structured logger used for per-step debug output.
func WithLogger(logger *slog.Logger) EvaluatorOption {
	return func(e *Evaluator) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EvaluatorOption {
	return func(e *Evaluator) {
		e.hooks = hooks
	}
}

// WithClock overrides the time source used for event timestamps.
func WithClock(now func() time.Time) EvaluatorOption {
	return func(e *Evaluator) {
		if now != nil {
			e.now = now
		}
	}
}

// NewEvaluator creates an evaluator bound to a console.
func NewEvaluator(console ports.Console, opts ...EvaluatorOption) *Evaluator {
	if console == nil {
		panic("runtime: NewEvaluator with nil console")
	}
	e := &Evaluator{
		console: console,
		logger:  logging.NewNop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Perform runs a and returns its text result.
//
// Composite chains are unfolded iteratively: the continuations still waiting for a
// result are kept on an explicit stack, so neither deeply left-nested nor long
// right-nested chains grow the Go call stack. Each effect completes before the
// next continuation is invoked.
//
// A console failure stops evaluation at once and is returned unchanged.
func (e *Evaluator) Perform(ctx context.Context, a action.Action) (string, error) {
	if a == nil {
		panic("runtime: Perform on nil Action")
	}

	var (
		pending []action.Continuation // innermost last
		current = a
		step    int
	)

	for {
		var result string

		switch x := current.(type) {
		case action.Composite:
			pending = append(pending, x.Next)
			current = x.First
			continue

		case action.LineRead:
			start := e.now()
			line, err := e.console.ReadLine(ctx)
			if err != nil {
				e.logger.Debug("read failed", "step", step+1, "err", err)
				return "", err
			}
			step++
			result = line
			e.emit(ctx, e.hooks.OnRead, domain.EffectRead, line, step, e.now().Sub(start))

		case action.LineWrite:
			start := e.now()
			if err := e.console.WriteLine(ctx, x.Text); err != nil {
				e.logger.Debug("write failed", "step", step+1, "err", err)
				return "", err
			}
			step++
			e.emit(ctx, e.hooks.OnWrite, domain.EffectWrite, x.Text, step, e.now().Sub(start))

		case action.Wrapped:
			step++
			result = x.Text
			e.emit(ctx, e.hooks.OnWrap, domain.EffectWrap, x.Text, step, 0)

		case nil:
			panic("runtime: continuation returned nil Action")

		default:
			panic(fmt.Sprintf("runtime: unknown action type %T", current))
		}

		n := len(pending)
		if n == 0 {
			e.logger.Debug("evaluation complete", "steps", step)
			return result, nil
		}
		k := pending[n-1]
		pending[n-1] = nil
		pending = pending[:n-1]

		current = k(result)
		step++
		e.emit(ctx, e.hooks.OnContinue, domain.EffectContinue, result, step, 0)
	}
}

func (e *Evaluator) emit(ctx context.Context, hook func(context.Context, *domain.EffectEvent), kind domain.EffectKind, text string, step int, d time.Duration) {
	e.logger.Debug("step", "kind", kind, "step", step, "text", text)
	if hook == nil {
		return
	}
	hook(ctx, &domain.EffectEvent{
		Timestamp: e.now(),
		Kind:      kind,
		Text:      text,
		Step:      step,
		Duration:  d,
	})
}
