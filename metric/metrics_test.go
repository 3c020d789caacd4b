/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package metric

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	require.NoError(t, err)

	m.ObserveResolution(OutcomeShape)
	m.ObserveResolution(OutcomeShape)
	m.ObserveResolution(OutcomeInvalidKey)
	m.SetRegistryEntries("shapes", 28)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Resolutions.WithLabelValues(OutcomeShape)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Resolutions.WithLabelValues(OutcomeInvalidKey)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Resolutions.WithLabelValues(OutcomeUnknown)))
	assert.Equal(t, 28.0, testutil.ToFloat64(m.RegistryEntries.WithLabelValues("shapes")))

	_, err = NewMetrics(reg)
	assert.Error(t, err, "second registration on the same registry fails")
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveResolution(OutcomeCodec)
		m.SetRegistryEntries("codecs", 18)
	})
}

func TestUnregisteredMetrics(t *testing.T) {
	m, err := NewMetrics(nil)
	require.NoError(t, err)
	m.ObserveResolution(OutcomeCodec)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Resolutions.WithLabelValues(OutcomeCodec)))
}
