/*
Package dsl provides combinators for assembling deferio programs in plain Go.

Everything here is built from action.Bind and the primitive constructors; the helpers only save
typing and never perform effects. Nesting is preserved: a continuation passed to Ask is still a
closure, so values read earlier stay visible to every step written inside it.

Example usage:

	program := dsl.Ask("Enter your name", func(name string) action.Action {
		return dsl.Sequence(
			action.WriteLine("Hello "+name+"."),
			dsl.Repeat(
				func() action.Action { return dsl.Prompt("What is 2 + 2?") },
				func(answer string) (action.Action, bool) {
					if answer == "4" {
						return action.WriteLine("That's the right answer, " + name + "!"), true
					}
					return action.WriteLine(answer + " sorry..."), false
				},
			),
		)
	})
*/
package dsl
