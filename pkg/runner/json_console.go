package runner

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"
)

// Message types emitted by JSONConsole.
const (
	MessageWrite = "write"
	MessageRead  = "read"
)

// Message is one NDJSON line emitted by JSONConsole.
type Message struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// JSONConsole implements ports.Console for structured JSON-Lines communication.
// Each write is emitted as {"type":"write","text":...}; each read is announced
// with {"type":"read"} before a line is consumed from the input.
type JSONConsole struct {
	Reader  *bufio.Reader
	Encoder *json.Encoder
}

// NewJSONConsole creates a console for JSON IO.
// Nil streams default to os.Stdin and os.Stdout.
func NewJSONConsole(r io.Reader, w io.Writer) *JSONConsole {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &JSONConsole{
		Reader:  bufio.NewReader(r),
		Encoder: json.NewEncoder(w),
	}
}

// ReadLine accepts either a JSON string literal or raw text per line.
func (c *JSONConsole) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := c.Encoder.Encode(Message{Type: MessageRead}); err != nil {
		return "", err
	}

	text, err := c.Reader.ReadString('\n')
	if err != nil && (err != io.EOF || text == "") {
		return "", err
	}
	text = strings.TrimSuffix(text, "\n")
	text = strings.TrimSuffix(text, "\r")

	// Try to unquote if it's a JSON string
	var val string
	if strings.HasPrefix(text, `"`) {
		if err := json.Unmarshal([]byte(text), &val); err == nil {
			return val, nil
		}
	}

	// Fallback: return raw text (e.g. if they just sent plain text)
	return text, nil
}

// WriteLine emits text as a single write message.
func (c *JSONConsole) WriteLine(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return c.Encoder.Encode(Message{Type: MessageWrite, Text: text})
}
