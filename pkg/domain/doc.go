/*
Package domain contains the plain data types shared by the deferio evaluator and its observers.

It is kept free of I/O: the interaction descriptions themselves live in package action, and the
channels they act upon are defined in package ports.

# Key Entities

  - EffectKind: the category of an evaluation step (read, write, wrap, continue).
  - EffectEvent: a record of one completed step, delivered to LifecycleHooks.
  - LifecycleHooks: optional callbacks for logging, metrics or tracing.
*/
package domain
