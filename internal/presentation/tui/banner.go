package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the deferio ASCII art banner and version to w.
// Colors follow the color profile of w; plain text when w is not a terminal.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	lines := []struct {
		text  string
		color string
	}{
		{`      _       __           _       `, "#38bdf8"},
		{`   __| | ___ / _| ___ _ __(_) ___  `, "#22d3ee"},
		{`  / _' |/ _ \ |_ / _ \ '__| |/ _ \ `, "#2dd4bf"},
		{` | (_| |  __/  _|  __/ |  | | (_) |`, "#34d399"},
		{`  \__,_|\___|_|  \___|_|  |_|\___/ `, "#4ade80"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(w, out.String(fmt.Sprintf("  v%s", version)).Faint())
	fmt.Fprintln(w)
}
