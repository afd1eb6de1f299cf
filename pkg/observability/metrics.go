package observability

import (
	"context"
	"fmt"

	"github.com/aretw0/deferio/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Metrics holds the Prometheus collectors fed by evaluator hooks.
type Metrics struct {
	registry     *prometheus.Registry
	effects      *prometheus.CounterVec
	writtenBytes prometheus.Counter
	readWait     prometheus.Histogram
}

// NewMetrics creates the collectors and registers them on reg.
// A nil reg gets a fresh private registry.
func NewMetrics(reg *prometheus.Registry) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	m := &Metrics{
		registry: reg,
		effects: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "deferio_effects_total",
				Help: "Total number of evaluation steps, by kind",
			},
			[]string{"kind"},
		),
		writtenBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "deferio_written_bytes_total",
			Help: "Bytes of text written by WriteLine, excluding terminators",
		}),
		readWait: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "deferio_read_wait_seconds",
			Help:    "Time spent blocked waiting for a line of input",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
	}
	for _, c := range []prometheus.Collector{m.effects, m.writtenBytes, m.readWait} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
	}
	return m, nil
}

// Registry returns the registry the collectors live on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Hooks returns lifecycle hooks that record every step.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	count := func(_ context.Context, e *domain.EffectEvent) {
		m.effects.WithLabelValues(string(e.Kind)).Inc()
	}
	return domain.LifecycleHooks{
		OnRead: func(ctx context.Context, e *domain.EffectEvent) {
			count(ctx, e)
			m.readWait.Observe(e.Duration.Seconds())
		},
		OnWrite: func(ctx context.Context, e *domain.EffectEvent) {
			count(ctx, e)
			m.writtenBytes.Add(float64(len(e.Text)))
		},
		OnWrap:     count,
		OnContinue: count,
	}
}

// Snapshot gathers counter and histogram-count values keyed by metric name,
// with label values appended as name{label=value}.
func (m *Metrics) Snapshot() (map[string]float64, error) {
	families, err := m.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("failed to gather metrics: %w", err)
	}

	out := make(map[string]float64)
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			key := mf.GetName() + labelSuffix(metric.GetLabel())
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				out[key] = metric.GetCounter().GetValue()
			case dto.MetricType_HISTOGRAM:
				out[key+"_count"] = float64(metric.GetHistogram().GetSampleCount())
			}
		}
	}
	return out, nil
}

func labelSuffix(labels []*dto.LabelPair) string {
	if len(labels) == 0 {
		return ""
	}
	s := "{"
	for i, l := range labels {
		if i > 0 {
			s += ","
		}
		s += l.GetName() + "=" + l.GetValue()
	}
	return s + "}"
}
