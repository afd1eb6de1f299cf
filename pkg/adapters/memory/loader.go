package memory

import (
	"fmt"
	"sort"

	"github.com/aretw0/deferio/pkg/action"
	"github.com/aretw0/deferio/pkg/domain"
)

// Builder produces a fresh program each time it is called.
type Builder func() action.Action

// Loader implements ports.ProgramLoader using an in-memory map of builders.
type Loader struct {
	programs map[string]Builder
}

// NewLoader creates a new Loader with the provided builders.
func NewLoader(programs map[string]Builder) *Loader {
	copied := make(map[string]Builder, len(programs))
	for name, b := range programs {
		copied[name] = b
	}
	return &Loader{programs: copied}
}

// GetProgram builds the named program.
func (l *Loader) GetProgram(name string) (action.Action, error) {
	build, ok := l.programs[name]
	if !ok || build == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrProgramNotFound, name)
	}
	return build(), nil
}

// ListPrograms returns all available program names.
func (l *Loader) ListPrograms() ([]string, error) {
	keys := make([]string, 0, len(l.programs))
	for k := range l.programs {
		keys = append(keys, k)
	}
	sort.Strings(keys) // Deterministic order
	return keys, nil
}
