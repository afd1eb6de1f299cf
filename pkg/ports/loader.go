package ports

import "github.com/aretw0/deferio/pkg/action"

// ProgramLoader defines how the CLI and host applications look up named programs.
// This allows program sources (Go builders, embedded scripts, files) to be decoupled.
type ProgramLoader interface {
	// GetProgram builds a fresh top-level Action for the named program.
	// It returns domain.ErrProgramNotFound if the name is unknown.
	GetProgram(name string) (action.Action, error)

	// ListPrograms returns the names of all available programs in deterministic order.
	ListPrograms() ([]string, error)
}
