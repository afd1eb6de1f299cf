package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintBanner_PlainWhenNotTerminal(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, "1.2.3")

	out := buf.String()
	assert.Contains(t, out, "v1.2.3")
	assert.Contains(t, out, `\__,_|`)
	assert.True(t, strings.HasPrefix(out, "\n"))
}

func TestNewRenderer_PassThroughWhenNotTerminal(t *testing.T) {
	render := NewRenderer(&bytes.Buffer{})
	md := "| Name | Source |\n| --- | --- |\n| greet | builtin |\n"

	out, err := render(md)
	require.NoError(t, err)
	assert.Equal(t, md, out)
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
	assert.False(t, IsTerminal(nil))
}
