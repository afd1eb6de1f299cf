package runner

import (
	"context"
	"io"
	"slices"

	"github.com/aretw0/deferio/pkg/ports"
)

// quitConsole reports io.EOF when the user types one of the quit words.
type quitConsole struct {
	ports.Console
	words []string
}

// WithQuit wraps console so that a reply equal to one of words ends input.
func WithQuit(console ports.Console, words ...string) ports.Console {
	if len(words) == 0 {
		return console
	}
	return &quitConsole{Console: console, words: words}
}

func (c *quitConsole) ReadLine(ctx context.Context) (string, error) {
	line, err := c.Console.ReadLine(ctx)
	if err != nil {
		return "", err
	}
	if slices.Contains(c.words, line) {
		return "", io.EOF
	}
	return line, nil
}
