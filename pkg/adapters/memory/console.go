package memory

import (
	"context"
	"io"
	"sync"
)

// EntryKind tells whether a transcript entry was consumed input or produced output.
type EntryKind string

const (
	EntryRead  EntryKind = "read"
	EntryWrite EntryKind = "write"
)

// Entry is one line of a Console transcript.
type Entry struct {
	Kind EntryKind
	Text string
}

// Console implements ports.Console over a scripted list of input lines.
// Every line read or written is appended to an ordered transcript.
// Safe for concurrent use.
type Console struct {
	input      []string
	transcript []Entry
	mu         sync.Mutex
}

// NewConsole creates a console that will answer reads with the given lines, in order.
func NewConsole(input ...string) *Console {
	return &Console{
		input: append([]string(nil), input...),
	}
}

// ReadLine pops the next scripted line. It returns io.EOF once the script is exhausted.
func (c *Console) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.input) == 0 {
		return "", io.EOF
	}
	line := c.input[0]
	c.input = c.input[1:]
	c.transcript = append(c.transcript, Entry{Kind: EntryRead, Text: line})
	return line, nil
}

// WriteLine records text as output.
func (c *Console) WriteLine(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.transcript = append(c.transcript, Entry{Kind: EntryWrite, Text: text})
	return nil
}

// Feed appends more input lines to the script.
func (c *Console) Feed(lines ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.input = append(c.input, lines...)
}

// Output returns the written lines, in order.
func (c *Console) Output() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]string, 0, len(c.transcript))
	for _, e := range c.transcript {
		if e.Kind == EntryWrite {
			out = append(out, e.Text)
		}
	}
	return out
}

// Transcript returns a copy of every read and write, in the order they happened.
func (c *Console) Transcript() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Entry(nil), c.transcript...)
}

// Remaining reports how many scripted input lines have not been read yet.
func (c *Console) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.input)
}
