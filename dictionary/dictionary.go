/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package dictionary

import (
	stderrors "errors"
	"fmt"

	"github.com/suparena/klvregistry/codec"
	"github.com/suparena/klvregistry/errors"
	"github.com/suparena/klvregistry/registry"
	"github.com/suparena/klvregistry/ul"
)

// Dictionary is a named set of extension labels added on top of the
// default tables when a resolver is built.
type Dictionary struct {
	Name     string
	Shapes   []registry.ShapeEntry
	Variants []codec.Variant
}

// Len returns the number of labels in d.
func (d *Dictionary) Len() int {
	return len(d.Shapes) + len(d.Variants)
}

// Merge concatenates dictionaries in order. Conflicts between them surface
// when the tables are built.
func Merge(name string, dicts ...*Dictionary) *Dictionary {
	out := &Dictionary{Name: name}
	for _, d := range dicts {
		if d == nil {
			continue
		}
		out.Shapes = append(out.Shapes, d.Shapes...)
		out.Variants = append(out.Variants, d.Variants...)
	}
	return out
}

func parseShapeEntry(field, name, label, shape string) (registry.ShapeEntry, error) {
	if name == "" {
		return registry.ShapeEntry{}, errors.NewValidationError(field+".name", "must not be empty")
	}
	key, err := ul.Parse(label)
	if err != nil {
		return registry.ShapeEntry{}, errors.NewValidationError(field+".ul", reason(err))
	}
	s, err := registry.ParseShape(shape)
	if err != nil {
		return registry.ShapeEntry{}, errors.NewValidationError(field+".shape", reason(err))
	}
	return registry.ShapeEntry{Name: name, UL: key, Shape: s}, nil
}

func parseVariant(field, name, label, tag string) (codec.Variant, error) {
	if name == "" {
		return codec.Variant{}, errors.NewValidationError(field+".name", "must not be empty")
	}
	key, err := ul.Parse(label)
	if err != nil {
		return codec.Variant{}, errors.NewValidationError(field+".ul", reason(err))
	}
	c, err := codec.Parse(tag)
	if err != nil {
		return codec.Variant{}, errors.NewValidationError(field+".codec", reason(err))
	}
	return codec.Variant{Name: name, UL: key, Codec: c}, nil
}

func indexed(section string, i int) string {
	return fmt.Sprintf("%s[%d]", section, i)
}

// reason drops the field prefix of a nested validation error.
func reason(err error) string {
	var ve *errors.ValidationError
	if stderrors.As(err, &ve) {
		return ve.Message
	}
	return err.Error()
}
