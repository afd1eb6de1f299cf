// Package scripts holds the sample dialogues shipped with deferio.
package scripts

import (
	"github.com/aretw0/deferio/pkg/action"
)

// Sample dialogue text.
const (
	NamePrompt  = "Enter your name"
	Question    = "What is 2 + 2?"
	Answer      = "4"
	RightAnswer = "That's the right answer!"
)

// Greeting asks for a name and greets it.
func Greeting() action.Action {
	return greet(func(string) action.Action { return action.Wrap("") })
}

// Quiz asks Question until the reply is exactly Answer.
// Any other reply, numeric or not, is answered with "<reply> sorry..." and the question is asked again.
func Quiz() action.Action {
	return action.WriteLine(Question).
		Bind(func(string) action.Action { return action.ReadLine() }).
		Bind(func(reply string) action.Action {
			if reply == Answer {
				return action.WriteLine(RightAnswer)
			}
			return action.WriteLine(reply + " sorry...").
				Bind(func(string) action.Action { return Quiz() })
		})
}

// Main greets the user, runs the quiz and says goodbye by name.
// The goodbye continuation is nested inside the one that received the name.
func Main() action.Action {
	return greet(func(name string) action.Action {
		return Quiz().Bind(func(string) action.Action {
			return action.WriteLine("Goodbye " + name + ".")
		})
	})
}

// greet writes the greeting and hands the name to k.
func greet(k action.Continuation) action.Action {
	return action.WriteLine(NamePrompt).
		Bind(func(string) action.Action { return action.ReadLine() }).
		Bind(func(name string) action.Action {
			return action.WriteLine("Hello " + name + ".").
				Bind(func(string) action.Action { return k(name) })
		})
}
