/*
Package action describes line-based interactions with the outside world as inert values.

An Action is a description, not an execution: building one never reads or writes anything.
Actions are chained with Bind, which pairs an earlier Action with a Continuation that picks
the next Action from the earlier one's text result. Only an evaluator (see the deferio Engine)
performs the described effects.

# Variants

  - LineRead: read one line from the input channel.
  - LineWrite: write one line to the output channel; the result is the empty string.
  - Wrapped: produce a text value without any interaction.
  - Composite: run First, pass its result to Next, run the Action that Next returns.

# Usage

	hello := action.WriteLine("Enter your name").
		Bind(func(string) action.Action { return action.ReadLine() }).
		Bind(func(name string) action.Action {
			return action.WriteLine("Hello " + name + ".")
		})

The set of variants is closed: the evaluator switches over exactly these four types.
*/
package action
