package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// TextConsole implements ports.Console over plain text streams.
type TextConsole struct {
	Reader *bufio.Reader
	Writer io.Writer

	// Prompt is written before every read. Empty means no prompt.
	Prompt string
}

// TextConsoleOption defines configuration for TextConsole.
type TextConsoleOption func(*TextConsole)

// WithPrompt configures the prompt written before each read.
func WithPrompt(prompt string) TextConsoleOption {
	return func(c *TextConsole) {
		c.Prompt = prompt
	}
}

// NewTextConsole creates a console for standard text IO.
// Nil streams default to os.Stdin and os.Stdout.
func NewTextConsole(r io.Reader, w io.Writer, opts ...TextConsoleOption) *TextConsole {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	c := &TextConsole{
		Reader: bufio.NewReader(r),
		Writer: w,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ReadLine returns the next line without its "\n" or "\r\n" terminator.
// A final line without terminator is still returned; the read after it yields io.EOF.
func (c *TextConsole) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if c.Prompt != "" {
		if _, err := fmt.Fprint(c.Writer, c.Prompt); err != nil {
			return "", err
		}
	}

	text, err := c.Reader.ReadString('\n')
	if err != nil {
		// If we got text together with EOF, the stream ended without a terminator.
		if err != io.EOF || text == "" {
			return "", err
		}
	}
	text = strings.TrimSuffix(text, "\n")
	text = strings.TrimSuffix(text, "\r")
	return text, nil
}

// WriteLine writes text followed by a single "\n".
func (c *TextConsole) WriteLine(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(c.Writer, text)
	return err
}
