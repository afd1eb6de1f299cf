package dsl

import "github.com/aretw0/deferio/pkg/action"

// Then runs a, discards its result and runs b.
func Then(a, b action.Action) action.Action {
	return a.Bind(func(string) action.Action { return b })
}

// Sequence runs the actions left to right and yields the last result.
// An empty sequence yields the empty string.
func Sequence(actions ...action.Action) action.Action {
	if len(actions) == 0 {
		return action.Wrap("")
	}
	seq := actions[0]
	for _, next := range actions[1:] {
		seq = Then(seq, next)
	}
	return seq
}

// Prompt writes question and then reads the answer.
func Prompt(question string) action.Action {
	return Then(action.WriteLine(question), action.ReadLine())
}

// Ask writes question, reads the answer and hands it to k.
func Ask(question string, k action.Continuation) action.Action {
	return Prompt(question).Bind(k)
}

// Map transforms the result of a without any further interaction.
func Map(a action.Action, f func(string) string) action.Action {
	return a.Bind(func(r string) action.Action { return action.Wrap(f(r)) })
}

// Repeat runs a freshly built body and passes its result to decide.
// When decide reports done, the returned Action ends the loop and supplies its result;
// otherwise it runs and the loop starts over with a new body.
func Repeat(body func() action.Action, decide func(result string) (next action.Action, done bool)) action.Action {
	var loop func() action.Action
	loop = func() action.Action {
		return body().Bind(func(r string) action.Action {
			next, done := decide(r)
			if done {
				return next
			}
			return next.Bind(func(string) action.Action { return loop() })
		})
	}
	return loop()
}
