package domain_test

import (
	"context"
	"testing"

	"github.com/aretw0/deferio/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestLifecycleHooks_Merge(t *testing.T) {
	var calls []string
	record := func(tag string) func(context.Context, *domain.EffectEvent) {
		return func(_ context.Context, e *domain.EffectEvent) {
			calls = append(calls, tag+":"+string(e.Kind))
		}
	}

	a := domain.LifecycleHooks{OnRead: record("a"), OnWrite: record("a")}
	b := domain.LifecycleHooks{OnRead: record("b"), OnWrap: record("b")}
	merged := a.Merge(b)

	ctx := context.Background()
	merged.OnRead(ctx, &domain.EffectEvent{Kind: domain.EffectRead})
	merged.OnWrite(ctx, &domain.EffectEvent{Kind: domain.EffectWrite})
	merged.OnWrap(ctx, &domain.EffectEvent{Kind: domain.EffectWrap})

	assert.Nil(t, merged.OnContinue)
	assert.Equal(t, []string{"a:read", "b:read", "a:write", "b:wrap"}, calls)
}
