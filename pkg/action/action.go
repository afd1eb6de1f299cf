package action

import (
	"fmt"
	"strconv"
)

// Action is a deferred, composable description of one interaction step.
// Every Action yields a text result once performed.
type Action interface {
	// Bind returns a Composite that runs the receiver and feeds its result to k.
	// It performs nothing.
	Bind(k Continuation) Action

	// String renders a diagnostic description. It never invokes a Continuation.
	String() string

	sealed()
}

// Continuation maps the text result of a prior Action to the next Action to run.
// It must not perform effects itself; only the returned Action may, once evaluated.
type Continuation func(result string) Action

// LineRead reads one line from the input channel.
type LineRead struct{}

// LineWrite writes Text followed by one line terminator to the output channel.
// Its result is the empty string.
type LineWrite struct {
	Text string
}

// Wrapped produces Text without any interaction.
type Wrapped struct {
	Text string
}

// Composite runs First, passes its result to Next and runs the returned Action.
// The result of a Composite is the result of that follow-up Action.
type Composite struct {
	First Action
	Next  Continuation
}

// ReadLine returns an Action that reads one line of input.
func ReadLine() Action {
	return LineRead{}
}

// WriteLine returns an Action that writes text as one line of output.
func WriteLine(text string) Action {
	return LineWrite{Text: text}
}

// Wrap returns an Action that produces text with no interaction.
func Wrap(text string) Action {
	return Wrapped{Text: text}
}

// Bind is the free-function form of [Action.Bind].
func Bind(a Action, k Continuation) Action {
	if a == nil {
		panic("action: Bind on nil Action")
	}
	return a.Bind(k)
}

func (a LineRead) Bind(k Continuation) Action  { return compose(a, k) }
func (a LineWrite) Bind(k Continuation) Action { return compose(a, k) }
func (a Wrapped) Bind(k Continuation) Action   { return compose(a, k) }
func (a Composite) Bind(k Continuation) Action { return compose(a, k) }

func compose(first Action, k Continuation) Action {
	if k == nil {
		panic("action: Bind with nil Continuation")
	}
	return Composite{First: first, Next: k}
}

func (LineRead) String() string { return "ReadLine" }

func (a LineWrite) String() string { return "WriteLine(" + strconv.Quote(a.Text) + ")" }

func (a Wrapped) String() string { return "Wrap(" + strconv.Quote(a.Text) + ")" }

// String describes the known part of the chain. Follow-up actions are decided at
// run time, so the continuation is shown as an opaque λ.
func (a Composite) String() string {
	return fmt.Sprintf("Bind(%v, λ)", a.First)
}

func (LineRead) sealed()  {}
func (LineWrite) sealed() {}
func (Wrapped) sealed()   {}
func (Composite) sealed() {}
