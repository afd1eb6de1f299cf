package script

import (
	"fmt"
	"maps"
	"regexp"
	"strings"
	"text/template"
	"text/template/parse"

	"github.com/aretw0/deferio/pkg/action"
	"github.com/aretw0/deferio/pkg/dsl"
)

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// vars is the immutable environment threaded through continuations.
type vars map[string]string

func (v vars) with(name, value string) vars {
	next := make(vars, len(v)+1)
	maps.Copy(next, v)
	next[name] = value
	return next
}

// text is a compiled template. tmpl is nil for plain text.
type text struct {
	source string
	tmpl   *template.Template
}

func (t text) render(env vars) string {
	if t.tmpl == nil {
		return t.source
	}
	var b strings.Builder
	if err := t.tmpl.Execute(&b, env); err != nil {
		// parseText only admits lookups of defined names, which cannot fail.
		panic(fmt.Sprintf("script: checked template %q failed: %v", t.source, err))
	}
	return b.String()
}

type compiledStep struct {
	kind     StepKind
	say      text
	variable string
	value    text
	quiz     *compiledQuiz
}

type compiledQuiz struct {
	question, wrong, right text
	answer                 string
}

// Compile checks every template and returns the program the script describes.
// The program yields the result of its last step: "" for say and quiz steps,
// the line read for ask and the rendered value for set.
func (s *Script) Compile() (action.Action, error) {
	if len(s.Steps) == 0 {
		return nil, ErrEmptyScript
	}

	defined := map[string]bool{}
	steps := make([]compiledStep, 0, len(s.Steps))
	for i, st := range s.Steps {
		cs, err := compileStep(st, defined)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		steps = append(steps, cs)
	}

	return run(steps, 0, vars{}), nil
}

func compileStep(st Step, defined map[string]bool) (compiledStep, error) {
	kind, err := st.Kind()
	if err != nil {
		return compiledStep{}, fmt.Errorf("%w: %v", ErrInvalidStep, err)
	}
	cs := compiledStep{kind: kind}

	switch kind {
	case StepSay:
		cs.say, err = parseText(st.Say, defined)
	case StepAsk:
		cs.variable, err = declare(st.Ask, defined)
	case StepSet:
		if cs.value, err = parseText(st.Set.Value, defined); err == nil {
			cs.variable, err = declare(st.Set.Var, defined)
		}
	case StepQuiz:
		cs.quiz, err = compileQuiz(st.Quiz, defined)
	}
	return cs, err
}

func compileQuiz(q *Quiz, defined map[string]bool) (*compiledQuiz, error) {
	if q.Question == "" || q.Right == "" || q.Wrong == "" {
		return nil, fmt.Errorf("%w: quiz needs question, right and wrong", ErrInvalidStep)
	}

	cq := &compiledQuiz{answer: q.Answer}
	var err error
	if cq.question, err = parseText(q.Question, defined); err != nil {
		return nil, err
	}

	withInput := maps.Clone(defined)
	withInput[InputVariable] = true
	if cq.wrong, err = parseText(q.Wrong, withInput); err != nil {
		return nil, err
	}
	if cq.right, err = parseText(q.Right, withInput); err != nil {
		return nil, err
	}
	return cq, nil
}

func declare(name string, defined map[string]bool) (string, error) {
	if !identifier.MatchString(name) {
		return "", fmt.Errorf("%w: variable name %q", ErrInvalidStep, name)
	}
	if name == InputVariable {
		return "", fmt.Errorf("%w: %q", ErrReservedVariable, name)
	}
	defined[name] = true
	return name, nil
}

// parseText parses source and checks every action in it. Templates may only
// print or test defined names ({{.name}}, {{if .name}}...{{else}}...{{end}}),
// so a template that compiles always renders.
func parseText(source string, defined map[string]bool) (text, error) {
	if !strings.Contains(source, "{{") {
		return text{source: source}, nil
	}
	tmpl, err := template.New("step").Option("missingkey=error").Parse(source)
	if err != nil {
		return text{}, fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
	}
	if err := checkNode(tmpl.Tree.Root, defined); err != nil {
		return text{}, fmt.Errorf("%w in %q", err, source)
	}
	return text{source: source, tmpl: tmpl}, nil
}

func checkNode(node parse.Node, defined map[string]bool) error {
	switch n := node.(type) {
	case *parse.ListNode:
		if n == nil {
			return nil
		}
		for _, child := range n.Nodes {
			if err := checkNode(child, defined); err != nil {
				return err
			}
		}
		return nil
	case *parse.TextNode, *parse.CommentNode:
		return nil
	case *parse.ActionNode:
		return checkPipe(n.Pipe, defined)
	case *parse.IfNode:
		if err := checkPipe(n.Pipe, defined); err != nil {
			return err
		}
		if err := checkNode(n.List, defined); err != nil {
			return err
		}
		return checkNode(n.ElseList, defined)
	default:
		return fmt.Errorf("%w: unsupported %q", ErrInvalidTemplate, node.String())
	}
}

// checkPipe accepts a pipeline that is exactly one field lookup of a defined name.
func checkPipe(pipe *parse.PipeNode, defined map[string]bool) error {
	if pipe == nil {
		return fmt.Errorf("%w: empty action", ErrInvalidTemplate)
	}
	if len(pipe.Decl) > 0 || len(pipe.Cmds) != 1 || len(pipe.Cmds[0].Args) != 1 {
		return fmt.Errorf("%w: unsupported %q", ErrInvalidTemplate, pipe.String())
	}
	field, ok := pipe.Cmds[0].Args[0].(*parse.FieldNode)
	if !ok || len(field.Ident) != 1 {
		return fmt.Errorf("%w: unsupported %q", ErrInvalidTemplate, pipe.String())
	}
	if !defined[field.Ident[0]] {
		return ErrUndefinedVariable
	}
	return nil
}

// run builds the Action for steps[i:]. Later steps are only built once the
// continuation before them receives its result.
func run(steps []compiledStep, i int, env vars) action.Action {
	st := steps[i]
	last := i == len(steps)-1

	var (
		current action.Action
		bind    = func(result string) vars { return env }
	)

	switch st.kind {
	case StepSay:
		current = action.WriteLine(st.say.render(env))
	case StepAsk:
		current = action.ReadLine()
		bind = func(line string) vars { return env.with(st.variable, line) }
	case StepSet:
		current = action.Wrap(st.value.render(env))
		bind = func(value string) vars { return env.with(st.variable, value) }
	case StepQuiz:
		current = quiz(st.quiz, env)
	}

	if last {
		return current
	}
	return current.Bind(func(result string) action.Action {
		return run(steps, i+1, bind(result))
	})
}

func quiz(q *compiledQuiz, env vars) action.Action {
	return dsl.Repeat(
		func() action.Action { return dsl.Prompt(q.question.render(env)) },
		func(reply string) (action.Action, bool) {
			local := env.with(InputVariable, reply)
			if reply == q.answer {
				return action.WriteLine(q.right.render(local)), true
			}
			return action.WriteLine(q.wrong.render(local)), false
		},
	)
}
