package cli

import (
	"errors"
	"fmt"

	"github.com/aretw0/deferio/internal/scripts"
	"github.com/aretw0/deferio/pkg/action"
	"github.com/aretw0/deferio/pkg/domain"
	"github.com/aretw0/deferio/pkg/script"
)

// ErrNotAScript is returned when a drawing is requested for a program written in Go.
var ErrNotAScript = errors.New("program is not a script")

// resolveProgram returns the program named by ref and the name to report it under.
// A ref ending in .yaml or .yml is read from disk; anything else is looked up in the catalog.
func resolveProgram(ref string) (action.Action, string, error) {
	if script.IsScriptPath(ref) {
		s, err := script.Load(ref)
		if err != nil {
			return nil, "", err
		}
		program, err := s.Compile()
		if err != nil {
			return nil, "", fmt.Errorf("%s: %w", ref, err)
		}
		return program, s.Name, nil
	}

	program, err := scripts.Catalog().GetProgram(ref)
	if err != nil {
		return nil, "", err
	}
	return program, ref, nil
}

// loadScript returns the script behind ref: a YAML file or a catalog script.
func loadScript(ref string) (*script.Script, error) {
	if script.IsScriptPath(ref) {
		return script.Load(ref)
	}

	s, err := script.NewFSLoader(scripts.Scripts()).GetScript(ref)
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, domain.ErrProgramNotFound) {
		return nil, err
	}

	if _, lookupErr := scripts.Catalog().GetProgram(ref); lookupErr == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotAScript, ref)
	}
	return nil, err
}
