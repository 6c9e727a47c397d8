// Package monitoring provides Prometheus metrics for the numeric provider.
//
// Collectors register against an injected registry so concurrent hosts and
// tests never contend on process-wide state; the numeric core itself records
// nothing, metrics are observed at the provider boundary.
package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds all Prometheus collectors for the numeric service.
type Metrics struct {
	// Tool metrics
	ToolCalls    *prometheus.CounterVec
	ToolDuration *prometheus.HistogramVec
	ToolErrors   *prometheus.CounterVec

	// Gradient metrics
	GradientComponents   prometheus.Counter
	GradientNonConverged prometheus.Counter
}

// NewMetrics creates and registers the collectors. A nil registry creates
// unregistered collectors, which tests use freely.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ToolCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "numeric_tool_calls_total",
				Help: "Total numeric tool executions by tool and status",
			},
			[]string{"tool", "status"},
		),
		ToolDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "numeric_tool_duration_seconds",
				Help:    "Numeric tool execution duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"tool"},
		),
		ToolErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "numeric_tool_errors_total",
				Help: "Total numeric tool failures by tool",
			},
			[]string{"tool"},
		),
		GradientComponents: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "numeric_gradient_components_total",
				Help: "Total gradient components estimated",
			},
		),
		GradientNonConverged: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "numeric_gradient_nonconverged_total",
				Help: "Gradient components that fell back to a flat derivative",
			},
		),
	}

	if reg != nil {
		reg.MustRegister(
			m.ToolCalls,
			m.ToolDuration,
			m.ToolErrors,
			m.GradientComponents,
			m.GradientNonConverged,
		)
	}
	return m
}

// Timer measures one tool execution.
type Timer struct {
	metrics *Metrics
	tool    string
	start   time.Time
}

// NewTimer starts timing a tool execution.
func NewTimer(m *Metrics, tool string) *Timer {
	return &Timer{metrics: m, tool: tool, start: time.Now()}
}

// Stop records the duration and outcome.
func (t *Timer) Stop(status string) {
	t.metrics.ToolDuration.WithLabelValues(t.tool).Observe(time.Since(t.start).Seconds())
	t.metrics.ToolCalls.WithLabelValues(t.tool, status).Inc()
	if status != "success" {
		t.metrics.ToolErrors.WithLabelValues(t.tool).Inc()
	}
}
