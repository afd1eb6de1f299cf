package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/deferio/internal/presentation/graph"
	"github.com/aretw0/deferio/internal/presentation/tui"
	"github.com/aretw0/deferio/internal/scripts"
	"github.com/aretw0/deferio/internal/validator"
)

// List renders the program catalog as a markdown table.
func List(w io.Writer) error {
	entries, err := scripts.Describe()
	if err != nil {
		return fmt.Errorf("failed to describe catalog: %w", err)
	}

	out, err := tui.NewRenderer(w)(catalogMarkdown(entries))
	if err != nil {
		return fmt.Errorf("failed to render catalog: %w", err)
	}
	_, err = fmt.Fprint(w, out)
	return err
}

func catalogMarkdown(entries []scripts.Entry) string {
	var sb strings.Builder
	sb.WriteString("# Programs\n\n")
	sb.WriteString("| Name | Source | Description |\n")
	sb.WriteString("| --- | --- | --- |\n")
	for _, e := range entries {
		desc := strings.ReplaceAll(e.Description, "|", `\|`)
		fmt.Fprintf(&sb, "| %s | %s | %s |\n", e.Name, e.Source, desc)
	}
	return sb.String()
}

// Graph writes a Mermaid flowchart of the script behind ref.
func Graph(w io.Writer, ref string) error {
	s, err := loadScript(ref)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, graph.GenerateMermaid(s))
	return err
}

// Validate compiles and lints the script behind ref, printing every issue.
// Warnings are printed but only errors make it fail.
func Validate(w io.Writer, ref string) error {
	s, err := loadScript(ref)
	if err != nil {
		return err
	}

	issues := validator.ValidateScript(s)
	for _, issue := range issues {
		fmt.Fprintln(w, issue)
	}
	if err := validator.Check(s); err != nil {
		return err
	}
	if len(issues) == 0 {
		fmt.Fprintf(w, "%s: ok\n", s.Name)
	}
	return nil
}
