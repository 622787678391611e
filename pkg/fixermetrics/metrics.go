// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package fixermetrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/holomush/datafixer/pkg/fixer"
)

// Metrics holds the Prometheus collectors this package registers.
type Metrics struct {
	InfoTotal *prometheus.CounterVec
	WarnTotal *prometheus.CounterVec
}

// NewMetrics creates and registers the datafixer metrics against reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		InfoTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "datafixer_context_info_total",
				Help: "Total number of Context.Info diagnostics emitted during migration, by type reference.",
			},
			[]string{"type_reference"},
		),
		WarnTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "datafixer_context_warn_total",
				Help: "Total number of Context.Warn diagnostics emitted during migration, by type reference.",
			},
			[]string{"type_reference"},
		),
	}
	reg.MustRegister(m.InfoTotal, m.WarnTotal)
	return m
}

// contextFor implements fixer.Context, attributing every Info/Warn call to
// one TypeReference's counters while still forwarding the formatted
// message to a delegate (typically fixer.Slog) so metrics don't
// come at the cost of losing the human-readable log line.
type contextFor struct {
	metrics  *Metrics
	typeRef  fixer.TypeReference
	delegate fixer.Context
}

// ContextFor returns a fixer.Context that increments m's counters for
// typeRef, forwarding every call to delegate (use fixer.Silent() if no
// further handling is wanted).
func (m *Metrics) ContextFor(typeRef fixer.TypeReference, delegate fixer.Context) fixer.Context {
	return &contextFor{metrics: m, typeRef: typeRef, delegate: delegate}
}

func (c *contextFor) Info(format string, args ...any) {
	c.metrics.InfoTotal.WithLabelValues(string(c.typeRef)).Inc()
	c.delegate.Info(format, args...)
}

func (c *contextFor) Warn(format string, args ...any) {
	c.metrics.WarnTotal.WithLabelValues(string(c.typeRef)).Inc()
	c.delegate.Warn(format, args...)
}
