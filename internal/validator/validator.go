package validator

import (
	"fmt"
	"sort"
	"strings"
	"text/template/parse"

	"github.com/aretw0/deferio/pkg/script"
)

// Issue is one finding about a script. Step is 1-based; 0 means the whole script.
type Issue struct {
	Step    int
	Message string
	Warning bool
}

func (i Issue) String() string {
	level := "error"
	if i.Warning {
		level = "warning"
	}
	if i.Step == 0 {
		return fmt.Sprintf("%s: %s", level, i.Message)
	}
	return fmt.Sprintf("%s: step %d: %s", level, i.Step, i.Message)
}

// ValidateScript compiles s and lints it for mistakes that compile but misbehave:
// variables that are never read and quiz answers that are easy to miss.
func ValidateScript(s *script.Script) []Issue {
	var issues []Issue
	if _, err := s.Compile(); err != nil {
		issues = append(issues, Issue{Message: err.Error()})
	}

	declared := map[string]int{}
	used := map[string]bool{}
	for i, st := range s.Steps {
		n := i + 1
		for _, src := range templates(st) {
			for _, name := range references(src) {
				used[name] = true
			}
		}

		kind, _ := st.Kind()
		switch kind {
		case script.StepAsk:
			declare(declared, st.Ask, n, &issues)
		case script.StepSet:
			declare(declared, st.Set.Var, n, &issues)
		case script.StepQuiz:
			answer := st.Quiz.Answer
			if answer == "" {
				issues = append(issues, Issue{Step: n, Message: "quiz answer is empty; only an empty line ends it", Warning: true})
			} else if strings.TrimSpace(answer) != answer {
				issues = append(issues, Issue{Step: n, Message: fmt.Sprintf("quiz answer %q has surrounding spaces; replies must repeat them exactly", answer), Warning: true})
			}
		}
	}

	for name, step := range declared {
		if !used[name] {
			issues = append(issues, Issue{Step: step, Message: fmt.Sprintf("variable %q is never used", name), Warning: true})
		}
	}
	sortIssues(issues)
	return issues
}

// Check returns an error listing every non-warning issue, or nil.
func Check(s *script.Script) error {
	var errors []string
	for _, issue := range ValidateScript(s) {
		if !issue.Warning {
			errors = append(errors, issue.String())
		}
	}
	if len(errors) > 0 {
		return fmt.Errorf("found %d errors:\n- %s", len(errors), strings.Join(errors, "\n- "))
	}
	return nil
}

func declare(declared map[string]int, name string, step int, issues *[]Issue) {
	if prev, ok := declared[name]; ok {
		*issues = append(*issues, Issue{Step: step, Message: fmt.Sprintf("variable %q already set at step %d", name, prev), Warning: true})
		return
	}
	declared[name] = step
}

func templates(st script.Step) []string {
	kind, _ := st.Kind()
	switch kind {
	case script.StepSay:
		return []string{st.Say}
	case script.StepSet:
		return []string{st.Set.Value}
	case script.StepQuiz:
		return []string{st.Quiz.Question, st.Quiz.Wrong, st.Quiz.Right}
	}
	return nil
}

// references lists the top-level fields a template reads. Unparsable sources yield nothing;
// Compile reports them.
func references(src string) []string {
	tree := parse.New("step")
	tree.Mode = parse.SkipFuncCheck
	if _, err := tree.Parse(src, "", "", map[string]*parse.Tree{}); err != nil {
		return nil
	}
	var names []string
	walk(tree.Root, &names)
	return names
}

func walk(node parse.Node, names *[]string) {
	switch n := node.(type) {
	case *parse.ListNode:
		if n == nil {
			return
		}
		for _, child := range n.Nodes {
			walk(child, names)
		}
	case *parse.ActionNode:
		walk(n.Pipe, names)
	case *parse.PipeNode:
		if n == nil {
			return
		}
		for _, cmd := range n.Cmds {
			walk(cmd, names)
		}
	case *parse.CommandNode:
		for _, arg := range n.Args {
			walk(arg, names)
		}
	case *parse.FieldNode:
		if len(n.Ident) > 0 {
			*names = append(*names, n.Ident[0])
		}
	case *parse.IfNode:
		walkBranch(&n.BranchNode, names)
	case *parse.RangeNode:
		walkBranch(&n.BranchNode, names)
	case *parse.WithNode:
		walkBranch(&n.BranchNode, names)
	}
}

func walkBranch(b *parse.BranchNode, names *[]string) {
	walk(b.Pipe, names)
	walk(b.List, names)
	walk(b.ElseList, names)
}

func sortIssues(issues []Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].Step != issues[j].Step {
			return issues[i].Step < issues[j].Step
		}
		return issues[i].Message < issues[j].Message
	})
}
