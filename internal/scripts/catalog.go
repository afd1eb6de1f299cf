package scripts

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/aretw0/deferio/pkg/action"
	"github.com/aretw0/deferio/pkg/adapters/memory"
	"github.com/aretw0/deferio/pkg/domain"
	"github.com/aretw0/deferio/pkg/ports"
	"github.com/aretw0/deferio/pkg/script"
)

//go:embed yaml/*.yaml
var embedded embed.FS

// Entry describes one program of the catalog.
type Entry struct {
	Name        string
	Description string
	Source      string // "go" or "yaml"
}

var builtins = map[string]memory.Builder{
	"greet": Greeting,
	"quiz":  Quiz,
	"main":  Main,
}

var descriptions = map[string]string{
	"greet": "Asks for a name and says hello.",
	"quiz":  "Asks what 2 + 2 is until the answer is 4.",
	"main":  "The greeting, then the quiz, then a goodbye by name.",
}

// Scripts returns the embedded YAML scripts as a file system.
func Scripts() fs.FS {
	sub, err := fs.Sub(embedded, "yaml")
	if err != nil {
		panic(err) // the embed pattern guarantees the directory
	}
	return sub
}

// Catalog returns a loader for the built-in Go programs followed by the embedded scripts.
func Catalog() ports.ProgramLoader {
	return Chain(memory.NewLoader(builtins), script.NewFSLoader(Scripts()))
}

// Describe lists every catalog program with its description.
func Describe() ([]Entry, error) {
	var entries []Entry
	for name := range builtins {
		entries = append(entries, Entry{Name: name, Description: descriptions[name], Source: "go"})
	}

	yamlLoader := script.NewFSLoader(Scripts())
	names, err := yamlLoader.ListPrograms()
	if err != nil {
		return nil, err
	}
	for _, name := range names {
		s, err := yamlLoader.GetScript(name)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Name: name, Description: s.Description, Source: "yaml"})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

// Chain returns a loader that asks each loader in turn; earlier loaders win on name clashes.
func Chain(loaders ...ports.ProgramLoader) ports.ProgramLoader {
	return chain(loaders)
}

type chain []ports.ProgramLoader

func (c chain) GetProgram(name string) (action.Action, error) {
	for _, l := range c {
		program, err := l.GetProgram(name)
		if err == nil {
			return program, nil
		}
		if !errors.Is(err, domain.ErrProgramNotFound) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrProgramNotFound, name)
}

func (c chain) ListPrograms() ([]string, error) {
	seen := map[string]bool{}
	var names []string
	for _, l := range c {
		list, err := l.ListPrograms()
		if err != nil {
			return nil, err
		}
		for _, n := range list {
			if !seen[n] {
				seen[n] = true
				names = append(names, n)
			}
		}
	}
	sort.Strings(names)
	return names, nil
}
