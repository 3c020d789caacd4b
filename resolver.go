/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package klvregistry

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/suparena/klvregistry/codec"
	"github.com/suparena/klvregistry/metric"
	"github.com/suparena/klvregistry/registry"
	"github.com/suparena/klvregistry/ul"
)

// Resolver maps KLV keys onto metadata shapes and codec tags. Its tables are
// built by New and never change afterwards, so a Resolver is safe for
// concurrent use.
type Resolver struct {
	shapes    *registry.ShapeRegistry
	catalog   *codec.Catalog
	localTags *registry.LocalTagDictionary
	logger    *zap.Logger
	metrics   *metric.Metrics
}

// New builds a resolver from the default tables, replaced or extended by
// opts. Conflicting labels across the defaults and any dictionary make New
// fail with a DuplicateKeyConflictError.
func New(opts ...Option) (*Resolver, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	shapes, err := buildShapes(o)
	if err != nil {
		return nil, fmt.Errorf("building shape registry: %w", err)
	}
	catalog, err := buildCatalog(o)
	if err != nil {
		return nil, fmt.Errorf("building codec catalog: %w", err)
	}
	localTags := o.localTags
	if localTags == nil {
		if localTags, err = registry.NewDefaultLocalTagDictionary(); err != nil {
			return nil, fmt.Errorf("building local tag dictionary: %w", err)
		}
	}

	r := &Resolver{
		shapes:    shapes,
		catalog:   catalog,
		localTags: localTags,
		logger:    o.logger,
		metrics:   o.metrics,
	}

	r.metrics.SetRegistryEntries(registry.ShapeTableName, shapes.Len())
	r.metrics.SetRegistryEntries(codec.CatalogTableName, catalog.Len())
	r.metrics.SetRegistryEntries(registry.LocalTagTableName, localTags.Len())

	r.logger.Info("resolver built",
		zap.Int("shapes", shapes.Len()),
		zap.Int("shapeAliases", shapes.Aliases()),
		zap.Int("codecs", catalog.Len()),
		zap.Int("localTags", localTags.Len()),
		zap.Int("dictionaries", len(o.dicts)),
	)
	return r, nil
}

func buildShapes(o options) (*registry.ShapeRegistry, error) {
	var extra []registry.ShapeEntry
	for _, d := range o.dicts {
		extra = append(extra, d.Shapes...)
	}
	if o.shapes != nil && len(extra) == 0 {
		return o.shapes, nil
	}

	base := registry.DefaultShapeEntries()
	if o.shapes != nil {
		base = o.shapes.Entries()
	}
	return registry.NewShapeRegistry(append(base, extra...)...)
}

func buildCatalog(o options) (*codec.Catalog, error) {
	var extra []codec.Variant
	for _, d := range o.dicts {
		extra = append(extra, d.Variants...)
	}
	if o.catalog != nil && len(extra) == 0 {
		return o.catalog, nil
	}

	base := codec.DefaultVariants()
	if o.catalog != nil {
		base = o.catalog.Variants()
	}
	return codec.NewCatalog(append(base, extra...)...)
}

// Default returns the process-wide resolver over the default tables. It is
// built on first use and shared afterwards.
var Default = sync.OnceValues(func() (*Resolver, error) {
	return New()
})

// Resolve classifies a raw KLV key. A key that is not exactly 16 bytes
// returns an InvalidLengthError; any well-formed key resolves, to Unknown if
// no table knows it.
func (r *Resolver) Resolve(rawKey []byte, expect Expectation) (Resolution, error) {
	key, err := ul.FromBytes(rawKey)
	if err != nil {
		r.logger.Warn("invalid KLV key", zap.Int("length", len(rawKey)))
		r.metrics.ObserveResolution(metric.OutcomeInvalidKey)
		return nil, err
	}
	return r.ResolveUL(key, expect), nil
}

// ResolveUL classifies a parsed key. The shape registry is consulted first;
// the codec catalog only when expect is ExpectEssenceCoding.
func (r *Resolver) ResolveUL(key ul.UL, expect Expectation) Resolution {
	if e, ok := r.shapes.Entry(key); ok {
		r.metrics.ObserveResolution(metric.OutcomeShape)
		return ShapeResolution{UL: key, Shape: e.Shape, Name: e.Name}
	}

	if expect == ExpectEssenceCoding {
		if v, ok := r.catalog.Variant(key); ok {
			r.metrics.ObserveResolution(metric.OutcomeCodec)
			return CodecResolution{UL: key, Codec: v.Codec, Variant: v.Name}
		}
	}

	r.logger.Debug("unknown KLV key", zap.Stringer("ul", key), zap.Stringer("expect", expect))
	r.metrics.ObserveResolution(metric.OutcomeUnknown)
	return Unknown{UL: key}
}

// LookupShape looks key up in the shape registry only.
func (r *Resolver) LookupShape(key ul.UL) (registry.Shape, bool) {
	return r.shapes.Lookup(key)
}

// LookupCodec looks key up in the codec catalog only.
func (r *Resolver) LookupCodec(key ul.UL) (codec.Codec, bool) {
	return r.catalog.Lookup(key)
}

// LookupLocalTag returns the item definition for a local tag.
func (r *Resolver) LookupLocalTag(tag uint16) (registry.LocalTagItem, bool) {
	return r.localTags.Lookup(tag)
}

// ExpectationForLocalTag returns the expectation under which the value of
// a local-set item is resolved.
func (r *Resolver) ExpectationForLocalTag(tag uint16) Expectation {
	if it, ok := r.localTags.Lookup(tag); ok && it.EssenceCoding {
		return ExpectEssenceCoding
	}
	return ExpectMetadata
}

// Shapes returns the shape registry.
func (r *Resolver) Shapes() *registry.ShapeRegistry {
	return r.shapes
}

// Catalog returns the codec catalog.
func (r *Resolver) Catalog() *codec.Catalog {
	return r.catalog
}
