package script

import (
	"fmt"
	"io/fs"
	"sort"

	"github.com/aretw0/deferio/pkg/action"
	"github.com/aretw0/deferio/pkg/domain"
)

// FSLoader implements ports.ProgramLoader over the YAML scripts at the root of a file system.
// Programs are named after their file, without extension.
type FSLoader struct {
	fsys fs.FS
}

// NewFSLoader creates a loader for fsys (for example os.DirFS(dir) or an embed.FS).
func NewFSLoader(fsys fs.FS) *FSLoader {
	return &FSLoader{fsys: fsys}
}

// GetScript parses the named script without compiling it.
func (l *FSLoader) GetScript(name string) (*Script, error) {
	file, err := l.find(name)
	if err != nil {
		return nil, err
	}
	return LoadFS(l.fsys, file)
}

// GetProgram parses and compiles the named script.
func (l *FSLoader) GetProgram(name string) (action.Action, error) {
	s, err := l.GetScript(name)
	if err != nil {
		return nil, err
	}
	program, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return program, nil
}

// ListPrograms returns the names of all scripts in deterministic order.
func (l *FSLoader) ListPrograms() ([]string, error) {
	files, err := l.files()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, NameFromPath(f))
	}
	sort.Strings(names)
	return names, nil
}

func (l *FSLoader) find(name string) (string, error) {
	files, err := l.files()
	if err != nil {
		return "", err
	}
	for _, f := range files {
		if NameFromPath(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %s", domain.ErrProgramNotFound, name)
}

func (l *FSLoader) files() ([]string, error) {
	entries, err := fs.ReadDir(l.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to list scripts: %w", err)
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && IsScriptPath(e.Name()) {
			files = append(files, e.Name())
		}
	}
	return files, nil
}
