package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/deferio/pkg/script"
)

// GenerateMermaid produces a Mermaid flowchart of a script's steps.
// It applies semantic styling:
// - Entry and exit: ((Circle))
// - Ask: [/Parallelogram/]
// - Set: [[Subroutine]]
// - Quiz: {{Hexagon}} with a self loop for wrong replies
// - Say: [Rectangle]
func GenerateMermaid(s *script.Script) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	name := s.Name
	if name == "" {
		name = "script"
	}
	fmt.Fprintf(&sb, "    start((\"%s\"))\n", escapeLabel(name))

	prev, arrow := "start", "-->"
	for i, st := range s.Steps {
		id := stepID(i + 1)
		kind, _ := st.Kind()

		switch kind {
		case script.StepAsk:
			fmt.Fprintf(&sb, "    %s[/\"ask: %s\"/]\n", id, escapeLabel(st.Ask))
		case script.StepSet:
			fmt.Fprintf(&sb, "    %s[[\"set: %s\"]]\n", id, escapeLabel(st.Set.Var))
		case script.StepQuiz:
			fmt.Fprintf(&sb, "    %s{{\"quiz: %s\"}}\n", id, escapeLabel(st.Quiz.Question))
			fmt.Fprintf(&sb, "    %s -. \"wrong\" .-> %s\n", id, id)
		default:
			fmt.Fprintf(&sb, "    %s[\"say: %s\"]\n", id, escapeLabel(st.Say))
		}

		fmt.Fprintf(&sb, "    %s %s %s\n", prev, arrow, id)
		prev = id
		arrow = "-->"
		if kind == script.StepQuiz {
			arrow = fmt.Sprintf("-- \"%s\" -->", escapeLabel(st.Quiz.Answer))
		}
	}

	sb.WriteString("    done((\"end\"))\n")
	fmt.Fprintf(&sb, "    %s %s done\n", prev, arrow)

	return sb.String()
}

func stepID(n int) string {
	return fmt.Sprintf("s%d", n)
}

// escapeLabel makes text safe inside a quoted Mermaid label.
func escapeLabel(s string) string {
	s = strings.ReplaceAll(s, "\"", "'")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}
