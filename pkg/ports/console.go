package ports

import "context"

// Console is the line-oriented channel pair an evaluator performs effects against.
// Implementations are used by one evaluator at a time.
type Console interface {
	// ReadLine blocks until one line is available and returns it without its terminator.
	// End of input is reported as io.EOF.
	ReadLine(ctx context.Context) (string, error)

	// WriteLine emits text followed by exactly one line terminator.
	WriteLine(ctx context.Context, text string) error
}
