/*
Package script compiles declarative YAML dialogues into deferio programs.

A script is a list of steps. Compiling it yields an action.Action whose continuations carry the
variables captured so far, so a name read in the first step is still available to the last one.

	name: greet-quiz
	steps:
	  - say: "Enter your name"
	  - ask: name
	  - say: "Hello {{.name}}."
	  - quiz:
	      question: "What is 2 + 2?"
	      answer: "4"
	      wrong: "{{.input}} sorry..."
	      right: "That's the right answer!"

# Steps

  - say: write a line rendered from a text/template.
  - ask: read a line into the named variable.
  - set: bind a rendered value to a variable without any interaction ({var, value}).
  - quiz: ask question until the reply equals answer exactly; the reply is visible as .input.

A step's kind is the key it is written with, so say: "" writes an empty line. Scalar values are
read as text, so answer: 4 and answer: "4" are the same quiz.

Templates may only print or test variables: {{.name}} and {{if .name}}...{{else}}...{{end}}.
Anything else (functions, pipelines, range, with) is rejected, as is a reference to a variable no
earlier step defines, so a compiled program never fails while it runs.
*/
package script
