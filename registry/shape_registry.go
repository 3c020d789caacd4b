/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"

	"github.com/suparena/klvregistry/errors"
	"github.com/suparena/klvregistry/ul"
)

// ShapeTableName is the table name reported in shape conflict errors.
const ShapeTableName = "shapes"

// ShapeEntry maps one set label to the shape that parses it.
type ShapeEntry struct {
	Name  string
	UL    ul.UL
	Shape Shape
}

// ShapeRegistry is the build-once metadata-shape registry. It is safe for
// concurrent use once constructed.
type ShapeRegistry struct {
	table   *Table[Shape]
	entries map[ul.UL]ShapeEntry
	aliases int
}

// NewShapeRegistry builds a registry from entries. A label registered twice
// with different shapes fails with a DuplicateKeyConflictError; the same
// shape twice is accepted and the first entry's name is kept.
func NewShapeRegistry(entries ...ShapeEntry) (*ShapeRegistry, error) {
	b := NewTableBuilder[Shape](ShapeTableName)
	byKey := make(map[ul.UL]ShapeEntry, len(entries))
	for _, e := range entries {
		if !e.Shape.Valid() {
			return nil, errors.NewValidationError("shape", fmt.Sprintf("entry %q has invalid shape %s", e.Name, e.Shape))
		}
		if err := b.Add(e.UL, e.Shape); err != nil {
			return nil, fmt.Errorf("registering %s: %w", e.Name, err)
		}
		if _, exists := byKey[e.UL]; !exists {
			byKey[e.UL] = e
		}
	}
	return &ShapeRegistry{
		table:   b.Build(),
		entries: byKey,
		aliases: b.Aliases(),
	}, nil
}

// NewDefaultShapeRegistry builds a registry from DefaultShapeEntries.
func NewDefaultShapeRegistry() (*ShapeRegistry, error) {
	return NewShapeRegistry(DefaultShapeEntries()...)
}

// Lookup returns the shape for an exact label match. A miss is a normal
// outcome: the caller skips the element using its KLV length.
func (r *ShapeRegistry) Lookup(key ul.UL) (Shape, bool) {
	return r.table.Lookup(key)
}

// Entry returns the named entry registered for key.
func (r *ShapeRegistry) Entry(key ul.UL) (ShapeEntry, bool) {
	e, ok := r.entries[key]
	return e, ok
}

// Len returns the number of distinct labels.
func (r *ShapeRegistry) Len() int {
	return r.table.Len()
}

// Aliases returns how many redundant duplicate entries were folded.
func (r *ShapeRegistry) Aliases() int {
	return r.aliases
}

// Entries returns the registered entries in registration order.
func (r *ShapeRegistry) Entries() []ShapeEntry {
	keys := r.table.Keys()
	out := make([]ShapeEntry, 0, len(keys))
	for _, k := range keys {
		out = append(out, r.entries[k])
	}
	return out
}
