package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/deferio/pkg/domain"
	"github.com/aretw0/deferio/pkg/script"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type streams struct {
	stdout, stderr bytes.Buffer
}

func newOptions(program, input string, s *streams) RunOptions {
	return RunOptions{
		Program:  program,
		LogLevel: "info",
		Prompt:   "> ",
		Quit:     true,
		Stdin:    strings.NewReader(input),
		Stdout:   &s.stdout,
		Stderr:   &s.stderr,
	}
}

func TestRunSession_Main(t *testing.T) {
	var s streams
	err := RunSession(context.Background(), newOptions("", "Paul\n5\n4\n", &s))
	require.NoError(t, err)

	want := "Enter your name\nHello Paul.\nWhat is 2 + 2?\n5 sorry...\nWhat is 2 + 2?\nThat's the right answer!\nGoodbye Paul.\n"
	assert.Equal(t, want, s.stdout.String())
	assert.Empty(t, s.stderr.String(), "piped sessions print no banner, prompt or system messages")
}

func TestRunSession_QuitWordsOnlyWhenInteractive(t *testing.T) {
	var s streams
	err := RunSession(context.Background(), newOptions("quiz", "quit\n4\n", &s))
	require.NoError(t, err)

	assert.Equal(t, "What is 2 + 2?\nquit sorry...\nWhat is 2 + 2?\nThat's the right answer!\n", s.stdout.String())
}

func TestRunSession_InputClosedIsNotAnError(t *testing.T) {
	var s streams
	err := RunSession(context.Background(), newOptions("quiz", "1\n", &s))
	require.NoError(t, err)
	assert.Equal(t, "What is 2 + 2?\n1 sorry...\nWhat is 2 + 2?\n", s.stdout.String())
}

func TestRunSession_JSON(t *testing.T) {
	var s streams
	opts := newOptions("greet", "\"Paul\"\n", &s)
	opts.JSON = true

	require.NoError(t, RunSession(context.Background(), opts))
	assert.Equal(t,
		`{"type":"write","text":"Enter your name"}`+"\n"+
			`{"type":"read"}`+"\n"+
			`{"type":"write","text":"Hello Paul."}`+"\n",
		s.stdout.String())
}

func TestRunSession_ScriptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hello.yaml")
	require.NoError(t, os.WriteFile(path, []byte("steps:\n  - ask: who\n  - say: \"hi {{.who}}\"\n"), 0o644))

	var s streams
	require.NoError(t, RunSession(context.Background(), newOptions(path, "Ana\n", &s)))
	assert.Equal(t, "hi Ana\n", s.stdout.String())
}

func TestRunSession_BrokenScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("steps:\n  - say: \"{{.who}}\"\n"), 0o644))

	var s streams
	err := RunSession(context.Background(), newOptions(path, "", &s))
	assert.ErrorIs(t, err, script.ErrUndefinedVariable)
	assert.Empty(t, s.stdout.String())
}

func TestRunSession_UnknownProgram(t *testing.T) {
	var s streams
	err := RunSession(context.Background(), newOptions("nope", "", &s))
	assert.ErrorIs(t, err, domain.ErrProgramNotFound)
}

func TestRunSession_DebugAndMetrics(t *testing.T) {
	var s streams
	opts := newOptions("greet", "Paul\n", &s)
	opts.Debug = true
	opts.Metrics = true

	require.NoError(t, RunSession(context.Background(), opts))

	logs := s.stderr.String()
	assert.Contains(t, logs, "level=DEBUG")
	// One record per effect, from the evaluator only.
	assert.Equal(t, 2, strings.Count(logs, "kind=write step="))
	assert.Equal(t, 1, strings.Count(logs, "kind=read step="))
	assert.NotContains(t, logs, "msg=effect")
	assert.Contains(t, logs, ">>> deferio_effects_total{kind=read} 1")
	assert.Contains(t, logs, ">>> deferio_effects_total{kind=write} 2")
}

func TestRunSession_InvalidLogLevel(t *testing.T) {
	var s streams
	opts := newOptions("greet", "", &s)
	opts.LogLevel = "loud"
	assert.Error(t, RunSession(context.Background(), opts))
}
