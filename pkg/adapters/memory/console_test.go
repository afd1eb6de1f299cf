package memory_test

import (
	"context"
	"io"
	"testing"

	"github.com/aretw0/deferio/pkg/adapters/memory"
	"github.com/aretw0/deferio/pkg/ports"
	"github.com/aretw0/deferio/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryConsole_Contract(t *testing.T) {
	tests.RunConsoleContract(t, func(t *testing.T, input []string) (ports.Console, func() []string) {
		c := memory.NewConsole(input...)
		return c, c.Output
	})
}

func TestMemoryConsole_Transcript(t *testing.T) {
	ctx := context.Background()
	c := memory.NewConsole("Paul")

	require.NoError(t, c.WriteLine(ctx, "Enter your name"))
	name, err := c.ReadLine(ctx)
	require.NoError(t, err)
	require.NoError(t, c.WriteLine(ctx, "Hello "+name+"."))

	assert.Equal(t, []memory.Entry{
		{Kind: memory.EntryWrite, Text: "Enter your name"},
		{Kind: memory.EntryRead, Text: "Paul"},
		{Kind: memory.EntryWrite, Text: "Hello Paul."},
	}, c.Transcript())
	assert.Equal(t, 0, c.Remaining())
}

func TestMemoryConsole_Feed(t *testing.T) {
	ctx := context.Background()
	c := memory.NewConsole()

	_, err := c.ReadLine(ctx)
	assert.ErrorIs(t, err, io.EOF)

	c.Feed("late")
	got, err := c.ReadLine(ctx)
	require.NoError(t, err)
	assert.Equal(t, "late", got)
}

func TestMemoryConsole_TranscriptIsACopy(t *testing.T) {
	c := memory.NewConsole()
	require.NoError(t, c.WriteLine(context.Background(), "a"))

	snapshot := c.Transcript()
	snapshot[0].Text = "mutated"

	assert.Equal(t, []string{"a"}, c.Output())
}
