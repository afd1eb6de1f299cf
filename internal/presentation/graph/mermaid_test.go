package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/deferio/internal/presentation/graph"
	"github.com/aretw0/deferio/pkg/script"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const greetQuiz = `
name: greet-quiz
steps:
  - say: "Enter your name"
  - ask: name
  - set: { var: tag, value: "[{{.name}}]" }
  - quiz:
      question: "What is 2 + 2?"
      answer: "4"
      wrong: "{{.input}} sorry..."
      right: "That's the right answer!"
`

func TestGenerateMermaid(t *testing.T) {
	s, err := script.Parse([]byte(greetQuiz))
	require.NoError(t, err)
	s.Name = "greet-quiz"

	out := graph.GenerateMermaid(s)

	tests := []struct {
		name     string
		contains []string
	}{
		{"Header", []string{"graph TD\n"}},
		{"Entry", []string{`start(("greet-quiz"))`, "start --> s1"}},
		{"Say Shape", []string{`s1["say: Enter your name"]`}},
		{"Ask Shape", []string{`s2[/"ask: name"/]`, "s1 --> s2"}},
		{"Set Shape", []string{`s3[["set: tag"]]`}},
		{"Quiz Shape And Loop", []string{`s4{{"quiz: What is 2 + 2?"}}`, `s4 -. "wrong" .-> s4`}},
		{"Exit After Correct Answer", []string{`s4 -- "4" --> done`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, c := range tt.contains {
				assert.Contains(t, out, c)
			}
		})
	}
}

func TestGenerateMermaid_UnnamedScript(t *testing.T) {
	s, err := script.Parse([]byte("steps:\n  - say: \"\"\n  - ask: name\n"))
	require.NoError(t, err)
	require.Empty(t, s.Name)

	out := graph.GenerateMermaid(s)
	assert.Contains(t, out, `start(("script"))`)
	assert.Contains(t, out, `s1["say: "]`)
	assert.Contains(t, out, "s2 --> done")
	assert.Equal(t, 1, strings.Count(out, `done(("end"))`))
}

func TestGenerateMermaid_EscapesQuotes(t *testing.T) {
	s, err := script.Parse([]byte(`steps:
  - say: 'She said "hi"'
`))
	require.NoError(t, err)

	out := graph.GenerateMermaid(s)
	assert.Contains(t, out, `s1["say: She said 'hi'"]`)
	assert.Contains(t, out, "s1 --> done")
}
