/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package klvregistry

import (
	"fmt"

	"github.com/suparena/klvregistry/codec"
	"github.com/suparena/klvregistry/registry"
	"github.com/suparena/klvregistry/ul"
)

// Expectation tells the resolver what kind of label the caller's context
// allows. Codec labels are only reported where an essence-coding label is
// expected.
type Expectation int

const (
	// ExpectMetadata is the context of a top-level KLV key.
	ExpectMetadata Expectation = iota
	// ExpectEssenceCoding is the context of a descriptor's essence coding
	// item, e.g. local tag 0x3201.
	ExpectEssenceCoding
)

func (e Expectation) String() string {
	switch e {
	case ExpectMetadata:
		return "metadata"
	case ExpectEssenceCoding:
		return "essence-coding"
	default:
		return fmt.Sprintf("Expectation(%d)", int(e))
	}
}

// Resolution is the outcome of resolving a key: exactly one of
// ShapeResolution, CodecResolution or Unknown.
type Resolution interface {
	// Key returns the resolved label.
	Key() ul.UL
	fmt.Stringer
	isResolution()
}

// ShapeResolution routes the element to the structural parser for Shape.
type ShapeResolution struct {
	UL    ul.UL
	Shape registry.Shape
	// Name is the registered entry name, e.g. "TimelineTrack".
	Name string
}

// CodecResolution names the essence decoder. Codec is codec.None for raw
// essence, which is a successful resolution.
type CodecResolution struct {
	UL      ul.UL
	Codec   codec.Codec
	Variant string
}

// Unknown means the label is in neither table. The caller skips the
// element by its declared length.
type Unknown struct {
	UL ul.UL
}

func (r ShapeResolution) Key() ul.UL { return r.UL }
func (r CodecResolution) Key() ul.UL { return r.UL }
func (r Unknown) Key() ul.UL         { return r.UL }

func (ShapeResolution) isResolution() {}
func (CodecResolution) isResolution() {}
func (Unknown) isResolution()         {}

func (r ShapeResolution) String() string {
	return fmt.Sprintf("%s shape %s (%s)", r.UL, r.Shape, r.Name)
}

func (r CodecResolution) String() string {
	return fmt.Sprintf("%s codec %s (%s)", r.UL, r.Codec, r.Variant)
}

func (r Unknown) String() string {
	return fmt.Sprintf("%s unknown", r.UL)
}
