/*
Package deferio separates the description of a line-based dialogue from its execution.

A program is an ordinary Go value built from the constructors in package action: ReadLine,
WriteLine, Wrap and Bind. Building it performs no input or output. Only the Engine performs the
described effects, walking the chain step by step and feeding every result to the continuation
that decides what happens next.

# Concept

deferio follows the same hexagonal split as the rest of the module: actions are pure data
(pkg/action), the channels they act upon are ports (pkg/ports), and concrete channels are adapters
(a scripted in-memory console in pkg/adapters/memory, text and NDJSON consoles in pkg/runner).

# Usage

	package main

	import (
		"context"
		"log"

		"github.com/aretw0/deferio"
		"github.com/aretw0/deferio/pkg/action"
		"github.com/aretw0/deferio/pkg/runner"
	)

	func main() {
		greet := action.WriteLine("Enter your name").
			Bind(func(string) action.Action { return action.ReadLine() }).
			Bind(func(name string) action.Action {
				return action.WriteLine("Hello " + name + ".")
			})

		eng, err := deferio.New(runner.NewTextConsole(nil, nil))
		if err != nil {
			log.Fatal(err)
		}
		if _, err := eng.Perform(context.Background(), greet); err != nil {
			log.Fatal(err)
		}
	}

# Errors

The Engine never invents errors of its own. A failing console (end of input, a closed pipe, a
cancelled context) stops evaluation and its error is returned exactly as the console produced it.
Wrong answers and similar domain outcomes are ordinary control flow inside continuations.
*/
package deferio
