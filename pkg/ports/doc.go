/*
Package ports defines the driven ports (interfaces) for the deferio evaluator.

These interfaces decouple the evaluator from the concrete input and output streams, so the same
program can run against a terminal, a NDJSON pipe or a scripted in-memory transcript.

# Key Interfaces

  - Console: reads one line of input or writes one line of output per call.

The tests subpackage holds a contract suite every Console adapter is expected to pass.
*/
package ports
