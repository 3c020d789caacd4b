/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package metric

import (
	stderrors "errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Resolution outcomes reported in klv_resolutions_total.
const (
	OutcomeShape      = "shape"
	OutcomeCodec      = "codec"
	OutcomeUnknown    = "unknown"
	OutcomeInvalidKey = "invalid_key"
)

// Metrics holds the resolver's Prometheus collectors.
type Metrics struct {
	Resolutions     *prometheus.CounterVec
	RegistryEntries *prometheus.GaugeVec
}

// NewMetrics creates the collectors and registers them with reg. A nil reg
// leaves them unregistered, which is convenient in tests.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "klv",
			Name:      "resolutions_total",
			Help:      "KLV key resolutions by outcome.",
		}, []string{"outcome"}),
		RegistryEntries: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "klv",
			Name:      "registry_entries",
			Help:      "Distinct labels per registry table.",
		}, []string{"table"}),
	}

	// Pre-create every outcome so dashboards see zeroes.
	for _, o := range []string{OutcomeShape, OutcomeCodec, OutcomeUnknown, OutcomeInvalidKey} {
		m.Resolutions.WithLabelValues(o)
	}

	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.Resolutions, m.RegistryEntries} {
		if err := reg.Register(c); err != nil {
			var already prometheus.AlreadyRegisteredError
			if stderrors.As(err, &already) {
				return nil, fmt.Errorf("klv metrics already registered: %w", err)
			}
			return nil, fmt.Errorf("failed to register klv metrics: %w", err)
		}
	}
	return m, nil
}

// ObserveResolution counts one resolution outcome.
func (m *Metrics) ObserveResolution(outcome string) {
	if m == nil {
		return
	}
	m.Resolutions.WithLabelValues(outcome).Inc()
}

// SetRegistryEntries records the size of a registry table.
func (m *Metrics) SetRegistryEntries(table string, n int) {
	if m == nil {
		return
	}
	m.RegistryEntries.WithLabelValues(table).Set(float64(n))
}
