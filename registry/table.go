/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"

	"github.com/suparena/klvregistry/errors"
	"github.com/suparena/klvregistry/ul"
)

// Table is an immutable UL-keyed lookup table produced by a TableBuilder.
type Table[V comparable] struct {
	name    string
	entries map[ul.UL]V
	keys    []ul.UL
}

// TableBuilder accumulates entries for a Table. A key added twice with the
// same value is kept as one entry; a key added with a different value is a
// DuplicateKeyConflictError.
type TableBuilder[V comparable] struct {
	name    string
	entries map[ul.UL]V
	keys    []ul.UL
	aliases int
}

// NewTableBuilder creates an empty builder. The name appears in conflict errors.
func NewTableBuilder[V comparable](name string) *TableBuilder[V] {
	return &TableBuilder[V]{
		name:    name,
		entries: make(map[ul.UL]V),
	}
}

// Add registers key → value.
func (b *TableBuilder[V]) Add(key ul.UL, value V) error {
	if existing, exists := b.entries[key]; exists {
		if existing == value {
			b.aliases++
			return nil
		}
		return errors.NewDuplicateKeyConflictError(b.name, key.String(), fmt.Sprint(existing), fmt.Sprint(value))
	}
	b.entries[key] = value
	b.keys = append(b.keys, key)
	return nil
}

// Aliases returns how many redundant duplicates were folded so far.
func (b *TableBuilder[V]) Aliases() int {
	return b.aliases
}

// Build snapshots the builder into a Table. The builder may keep being used;
// later additions do not affect tables already built.
func (b *TableBuilder[V]) Build() *Table[V] {
	entries := make(map[ul.UL]V, len(b.entries))
	for k, v := range b.entries {
		entries[k] = v
	}
	return &Table[V]{
		name:    b.name,
		entries: entries,
		keys:    append([]ul.UL(nil), b.keys...),
	}
}

// Name returns the table name.
func (t *Table[V]) Name() string {
	return t.name
}

// Lookup returns the value registered for an exact key match.
func (t *Table[V]) Lookup(key ul.UL) (V, bool) {
	v, ok := t.entries[key]
	return v, ok
}

// Len returns the number of distinct keys.
func (t *Table[V]) Len() int {
	return len(t.entries)
}

// Keys returns the keys in registration order.
func (t *Table[V]) Keys() []ul.UL {
	return append([]ul.UL(nil), t.keys...)
}
