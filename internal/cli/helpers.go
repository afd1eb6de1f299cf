package cli

import (
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/aretw0/deferio/internal/logging"
	"github.com/aretw0/deferio/pkg/observability"
	"github.com/aretw0/deferio/pkg/runner"
)

// createLogger configures the application logger.
// It writes to Stderr (to separate from the dialogue on Stdout).
func createLogger(opts RunOptions) (*slog.Logger, error) {
	if opts.Debug {
		return logging.NewWithWriter(opts.Stderr, slog.LevelDebug), nil
	}
	level, err := logging.ParseLevel(opts.LogLevel)
	if err != nil {
		return nil, err
	}
	return logging.NewWithWriter(opts.Stderr, level), nil
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}

// printMetrics writes the session counters, one per line, in name order.
func printMetrics(w io.Writer, m *observability.Metrics) error {
	snapshot, err := m.Snapshot()
	if err != nil {
		return err
	}
	keys := make([]string, 0, len(snapshot))
	for k := range snapshot {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		printSystemMessage(w, "%s %g", k, snapshot[k])
	}
	return nil
}

func logCompletion(w io.Writer, program string, outcome runner.Outcome, err error, quiet bool) {
	if quiet {
		return
	}
	switch {
	case err != nil:
		printSystemMessage(w, "'%s' failed.", program)
	case outcome.InputClosed:
		printSystemMessage(w, "Input closed, '%s' stopped.", program)
	default:
		printSystemMessage(w, "Finished '%s'.", program)
	}
}
