package memory_test

import (
	"testing"

	"github.com/aretw0/deferio/pkg/action"
	"github.com/aretw0/deferio/pkg/adapters/memory"
	"github.com/aretw0/deferio/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_GetProgram(t *testing.T) {
	builds := 0
	loader := memory.NewLoader(map[string]memory.Builder{
		"hello": func() action.Action {
			builds++
			return action.WriteLine("hello")
		},
	})

	got, err := loader.GetProgram("hello")
	require.NoError(t, err)
	assert.Equal(t, action.WriteLine("hello"), got)

	_, err = loader.GetProgram("hello")
	require.NoError(t, err)
	assert.Equal(t, 2, builds, "each lookup must build a fresh program")
}

func TestLoader_NotFound(t *testing.T) {
	loader := memory.NewLoader(nil)

	_, err := loader.GetProgram("missing")
	assert.ErrorIs(t, err, domain.ErrProgramNotFound)
	assert.Contains(t, err.Error(), "missing")
}

func TestLoader_ListPrograms(t *testing.T) {
	noop := func() action.Action { return action.Wrap("") }
	loader := memory.NewLoader(map[string]memory.Builder{"quiz": noop, "greet": noop, "main": noop})

	names, err := loader.ListPrograms()
	require.NoError(t, err)
	assert.Equal(t, []string{"greet", "main", "quiz"}, names)
}
