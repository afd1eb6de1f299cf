package cli

import (
	"context"
	"fmt"

	"github.com/aretw0/deferio"
	"github.com/aretw0/deferio/internal/presentation/tui"
	"github.com/aretw0/deferio/pkg/observability"
	"github.com/aretw0/deferio/pkg/runner"
	"github.com/prometheus/client_golang/prometheus"
)

// RunSession resolves the program, builds the console and performs the program once.
// Input ending early is a normal exit.
func RunSession(ctx context.Context, opts RunOptions) error {
	opts = opts.withDefaults()

	logger, err := createLogger(opts)
	if err != nil {
		return err
	}

	program, name, err := resolveProgram(opts.Program)
	if err != nil {
		return err
	}

	interactive := !opts.JSON && tui.IsTerminal(opts.Stdin)
	if interactive {
		tui.PrintBanner(opts.Stderr, deferio.Version)
	}

	runnerOpts := []runner.Option{
		runner.WithLogger(logger),
		runner.WithStreams(opts.Stdin, opts.Stdout),
		runner.WithJSON(opts.JSON),
		runner.WithName(name),
	}
	if interactive {
		runnerOpts = append(runnerOpts, runner.WithTextPrompt(opts.Prompt))
		if opts.Quit {
			runnerOpts = append(runnerOpts, runner.WithQuitWords(DefaultQuitWords...))
		}
	}

	var metrics *observability.Metrics
	if opts.Metrics {
		metrics, err = observability.NewMetrics(prometheus.NewRegistry())
		if err != nil {
			return fmt.Errorf("failed to init metrics: %w", err)
		}
		runnerOpts = append(runnerOpts, runner.WithLifecycleHooks(metrics.Hooks()))
	}

	logger.Debug("starting session", "program", name, "json", opts.JSON, "interactive", interactive)
	outcome, runErr := runner.NewRunner(runnerOpts...).Run(ctx, program)

	if metrics != nil {
		if err := printMetrics(opts.Stderr, metrics); err != nil {
			logger.Warn("failed to gather metrics", "error", err)
		}
	}

	logCompletion(opts.Stderr, name, outcome, runErr, !interactive)
	return runErr
}
