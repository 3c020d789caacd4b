/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package klvregistry

import (
	"go.uber.org/zap"

	"github.com/suparena/klvregistry/codec"
	"github.com/suparena/klvregistry/dictionary"
	"github.com/suparena/klvregistry/metric"
	"github.com/suparena/klvregistry/registry"
)

// Option configures a Resolver.
type Option func(*options)

type options struct {
	shapes    *registry.ShapeRegistry
	catalog   *codec.Catalog
	localTags *registry.LocalTagDictionary
	dicts     []*dictionary.Dictionary
	logger    *zap.Logger
	metrics   *metric.Metrics
}

// WithShapeRegistry replaces the default shape registry.
func WithShapeRegistry(r *registry.ShapeRegistry) Option {
	return func(o *options) {
		o.shapes = r
	}
}

// WithCatalog replaces the default codec catalog.
func WithCatalog(c *codec.Catalog) Option {
	return func(o *options) {
		o.catalog = c
	}
}

// WithLocalTags replaces the default local-tag dictionary.
func WithLocalTags(d *registry.LocalTagDictionary) Option {
	return func(o *options) {
		o.localTags = d
	}
}

// WithDictionary adds extension labels on top of the shape registry and
// codec catalog. It may be given more than once.
func WithDictionary(d *dictionary.Dictionary) Option {
	return func(o *options) {
		if d != nil {
			o.dicts = append(o.dicts, d)
		}
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithMetrics sets the collectors resolutions are counted in.
func WithMetrics(m *metric.Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}
