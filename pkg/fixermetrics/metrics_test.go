// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package fixermetrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holomush/datafixer/pkg/fixer"
)

func counterValue(t *testing.T, vec *prometheus.CounterVec, labels ...string) float64 {
	t.Helper()
	c, err := vec.GetMetricWithLabelValues(labels...)
	require.NoError(t, err)
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func TestContextFor_CountsInfoAndWarnPerTypeReference(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	ctx := m.ContextFor(fixer.TypeReference("player"), fixer.Silent())
	ctx.Info("migrated %s", "a")
	ctx.Info("migrated %s", "b")
	ctx.Warn("skipped %s", "c")

	assert.Equal(t, float64(2), counterValue(t, m.InfoTotal, "player"))
	assert.Equal(t, float64(1), counterValue(t, m.WarnTotal, "player"))
}

func TestContextFor_ForwardsToDelegate(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	rec := fixer.Recording()

	ctx := m.ContextFor(fixer.TypeReference("world"), rec)
	ctx.Info("hello %s", "world")

	assert.Equal(t, []string{"hello world"}, rec.Infos())
	assert.Equal(t, float64(1), counterValue(t, m.InfoTotal, "world"))
}

func TestContextFor_SeparatesCountersByTypeReference(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.ContextFor(fixer.TypeReference("player"), fixer.Silent()).Info("x")
	m.ContextFor(fixer.TypeReference("world"), fixer.Silent()).Info("y")
	m.ContextFor(fixer.TypeReference("world"), fixer.Silent()).Info("z")

	assert.Equal(t, float64(1), counterValue(t, m.InfoTotal, "player"))
	assert.Equal(t, float64(2), counterValue(t, m.InfoTotal, "world"))
}
