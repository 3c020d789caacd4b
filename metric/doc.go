// Package metric exposes Prometheus collectors for KLV key resolution.
package metric
