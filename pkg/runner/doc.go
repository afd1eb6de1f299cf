/*
Package runner hosts deferio programs on real input and output streams.

It acts as the bridge between the Engine and the outside world: it picks a console (plain text
or NDJSON), applies session conventions such as quit words, and turns end of input into a normal
outcome instead of an error.

# Key Components

  - Runner: resolves the console, builds the Engine and performs one program.
  - TextConsole: line-based text over any io.Reader / io.Writer, optionally with a prompt.
  - JSONConsole: the same over NDJSON, for driving a program from another process.

# Usage

	r := runner.NewRunner(
		runner.WithStreams(os.Stdin, os.Stdout),
		runner.WithTextPrompt("> "),
		runner.WithQuitWords("exit", "quit"),
	)

	outcome, err := r.Run(ctx, program)
	if err != nil {
		log.Fatal(err)
	}
*/
package runner
