package domain

import (
	"context"
	"time"
)

// EffectKind defines the category of an evaluation step.
type EffectKind string

const (
	EffectRead     EffectKind = "read"
	EffectWrite    EffectKind = "write"
	EffectWrap     EffectKind = "wrap"
	EffectContinue EffectKind = "continue"
)

// EffectEvent describes one completed evaluation step.
type EffectEvent struct {
	Timestamp time.Time     `json:"timestamp"`
	Kind      EffectKind    `json:"kind"`
	Text      string        `json:"text,omitempty"` // line read, line written, or wrapped value
	Step      int           `json:"step"`           // 1-based position within a single Perform call
	Duration  time.Duration `json:"duration,omitempty"`
}

// LifecycleHooks defines callbacks for evaluator observability.
// Hooks run after the step completes and cannot alter its result.
type LifecycleHooks struct {
	OnRead     func(context.Context, *EffectEvent)
	OnWrite    func(context.Context, *EffectEvent)
	OnWrap     func(context.Context, *EffectEvent)
	OnContinue func(context.Context, *EffectEvent)
}

// Merge returns hooks that call h first and then other for every event.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnRead:     chain(h.OnRead, other.OnRead),
		OnWrite:    chain(h.OnWrite, other.OnWrite),
		OnWrap:     chain(h.OnWrap, other.OnWrap),
		OnContinue: chain(h.OnContinue, other.OnContinue),
	}
}

func chain(a, b func(context.Context, *EffectEvent)) func(context.Context, *EffectEvent) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e *EffectEvent) {
		a(ctx, e)
		b(ctx, e)
	}
}
