/*
Package observability turns evaluator lifecycle events into Prometheus metrics.

Metrics.Hooks returns domain.LifecycleHooks, which can be merged with other hooks and handed to
the Engine with deferio.WithLifecycleHooks. Per-effect log records come from the evaluator itself
when its logger is at debug level.
*/
package observability
