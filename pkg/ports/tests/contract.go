package tests

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aretw0/deferio/pkg/ports"
)

// ConsoleFactory builds a Console fed with the given input lines. The returned
// function reports the texts written so far, in order, without terminators.
type ConsoleFactory func(t *testing.T, input []string) (ports.Console, func() []string)

// RunConsoleContract is a reusable test suite that verifies if an adapter complies with ports.Console.
func RunConsoleContract(t *testing.T, factory ConsoleFactory) {
	t.Helper()
	ctx := context.Background()

	t.Run("ReadLine_InOrder", func(t *testing.T) {
		console, _ := factory(t, []string{"Paul", "", "4"})
		for _, want := range []string{"Paul", "", "4"} {
			got, err := console.ReadLine(ctx)
			if err != nil {
				t.Fatalf("unexpected error reading %q: %v", want, err)
			}
			if got != want {
				t.Errorf("line mismatch. got %q, want %q", got, want)
			}
		}
	})

	t.Run("ReadLine_EOF", func(t *testing.T) {
		console, _ := factory(t, []string{"only"})
		if _, err := console.ReadLine(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, err := console.ReadLine(ctx)
		if !errors.Is(err, io.EOF) {
			t.Errorf("expected io.EOF after last line, got %v", err)
		}
	})

	t.Run("WriteLine_InOrder", func(t *testing.T) {
		console, written := factory(t, nil)
		texts := []string{"Enter your name", "", "Hello Paul."}
		for _, text := range texts {
			if err := console.WriteLine(ctx, text); err != nil {
				t.Fatalf("unexpected error writing %q: %v", text, err)
			}
		}
		got := written()
		if len(got) != len(texts) {
			t.Fatalf("expected %d lines, got %d: %q", len(texts), len(got), got)
		}
		for i := range texts {
			if got[i] != texts[i] {
				t.Errorf("line %d mismatch. got %q, want %q", i, got[i], texts[i])
			}
		}
	})

	t.Run("CancelledContext", func(t *testing.T) {
		console, written := factory(t, []string{"ignored"})
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		if _, err := console.ReadLine(cancelled); !errors.Is(err, context.Canceled) {
			t.Errorf("ReadLine: expected context.Canceled, got %v", err)
		}
		if err := console.WriteLine(cancelled, "x"); !errors.Is(err, context.Canceled) {
			t.Errorf("WriteLine: expected context.Canceled, got %v", err)
		}
		if got := written(); len(got) != 0 {
			t.Errorf("expected no output after cancellation, got %q", got)
		}
	})
}
