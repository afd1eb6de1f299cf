package script

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyScript        = errors.New("script has no steps")
	ErrUnknownStep        = errors.New("unknown step kind")
	ErrInvalidStep        = errors.New("invalid step")
	ErrUndefinedVariable  = errors.New("undefined variable")
	ErrInvalidTemplate    = errors.New("invalid template")
	ErrReservedVariable   = errors.New("reserved variable name")
	errMultipleStepFields = errors.New("a step must have exactly one of say, ask, set or quiz")
)

// StepKind names what a step does.
type StepKind string

const (
	StepSay  StepKind = "say"
	StepAsk  StepKind = "ask"
	StepSet  StepKind = "set"
	StepQuiz StepKind = "quiz"
)

// InputVariable holds the current reply inside quiz templates.
const InputVariable = "input"

// Script is a parsed dialogue definition.
type Script struct {
	Name        string `yaml:"name" mapstructure:"name"`
	Description string `yaml:"description" mapstructure:"description"`
	Steps       []Step `yaml:"-" mapstructure:"-"`
}

// Step is one entry of Script.Steps. Exactly one field is set.
type Step struct {
	Say  string `mapstructure:"say"`
	Ask  string `mapstructure:"ask"`
	Set  *Set   `mapstructure:"set"`
	Quiz *Quiz  `mapstructure:"quiz"`

	// kind is the key the step was written with, so that empty values keep their meaning.
	kind StepKind
}

// Set binds Value (a template) to Var.
type Set struct {
	Var   string `mapstructure:"var"`
	Value string `mapstructure:"value"`
}

// Quiz repeats Question until the reply equals Answer.
type Quiz struct {
	Question string `mapstructure:"question"`
	Answer   string `mapstructure:"answer"`
	Wrong    string `mapstructure:"wrong"`
	Right    string `mapstructure:"right"`
}

// Kind reports what the step does. Parsed steps answer with the key they were written
// with; steps built in Go are classified by their non-empty fields.
func (s Step) Kind() (StepKind, error) {
	if s.kind != "" {
		return s.kind, nil
	}
	var kinds []StepKind
	if s.Say != "" {
		kinds = append(kinds, StepSay)
	}
	if s.Ask != "" {
		kinds = append(kinds, StepAsk)
	}
	if s.Set != nil {
		kinds = append(kinds, StepSet)
	}
	if s.Quiz != nil {
		kinds = append(kinds, StepQuiz)
	}
	if len(kinds) != 1 {
		return "", errMultipleStepFields
	}
	return kinds[0], nil
}

// document mirrors the YAML layout before steps are decoded.
type document struct {
	Name        string           `yaml:"name"`
	Description string           `yaml:"description"`
	Steps       []map[string]any `yaml:"steps"`
}

// Parse decodes a YAML script.
func Parse(data []byte) (*Script, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	if len(doc.Steps) == 0 {
		return nil, ErrEmptyScript
	}

	s := &Script{Name: doc.Name, Description: doc.Description}
	for i, raw := range doc.Steps {
		step, err := decodeStep(raw)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		s.Steps = append(s.Steps, step)
	}
	return s, nil
}

func decodeStep(raw map[string]any) (Step, error) {
	var kind StepKind
	for key := range raw {
		switch StepKind(key) {
		case StepSay, StepAsk, StepSet, StepQuiz:
			kind = StepKind(key)
		default:
			return Step{}, fmt.Errorf("%w: %q", ErrUnknownStep, key)
		}
	}
	if len(raw) != 1 {
		return Step{}, fmt.Errorf("%w: %v", ErrInvalidStep, errMultipleStepFields)
	}

	var step Step
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused:      true,
		WeaklyTypedInput: true, // answer: 4 is the natural way to write a numeric answer
		Result:           &step,
	})
	if err != nil {
		return Step{}, err
	}
	if err := decoder.Decode(raw); err != nil {
		return Step{}, fmt.Errorf("%w: %v", ErrInvalidStep, err)
	}
	if (kind == StepSet && step.Set == nil) || (kind == StepQuiz && step.Quiz == nil) {
		return Step{}, fmt.Errorf("%w: %s needs a mapping", ErrInvalidStep, kind)
	}
	step.kind = kind
	return step, nil
}

// Load reads and parses a script file. The file name (without extension) is used
// when the script does not declare a name.
func Load(filePath string) (*Script, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return parseNamed(data, filePath)
}

// LoadFS reads and parses a script from fsys.
func LoadFS(fsys fs.FS, name string) (*Script, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return parseNamed(data, name)
}

func parseNamed(data []byte, filePath string) (*Script, error) {
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	if s.Name == "" {
		s.Name = NameFromPath(filePath)
	}
	return s, nil
}

// NameFromPath strips directories and the YAML extension from a script path.
func NameFromPath(p string) string {
	base := path.Base(strings.ReplaceAll(p, `\`, "/"))
	for _, ext := range []string{".yaml", ".yml"} {
		if strings.HasSuffix(base, ext) {
			return strings.TrimSuffix(base, ext)
		}
	}
	return base
}

// IsScriptPath reports whether p looks like a YAML script file.
func IsScriptPath(p string) bool {
	return strings.HasSuffix(p, ".yaml") || strings.HasSuffix(p, ".yml")
}
