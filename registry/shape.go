/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"strings"

	"github.com/suparena/klvregistry/errors"
)

// Shape identifies the structural parser that consumes a metadata element.
type Shape int

const (
	ShapeInvalid Shape = iota
	PartitionPack
	ContentStorage
	MaterialPackage
	SourcePackage
	Sequence
	SourceClip
	Track
	IndexTableSegment
	GenericDescriptor
)

var shapeNames = [...]string{
	ShapeInvalid:      "Invalid",
	PartitionPack:     "PartitionPack",
	ContentStorage:    "ContentStorage",
	MaterialPackage:   "MaterialPackage",
	SourcePackage:     "SourcePackage",
	Sequence:          "Sequence",
	SourceClip:        "SourceClip",
	Track:             "Track",
	IndexTableSegment: "IndexTableSegment",
	GenericDescriptor: "GenericDescriptor",
}

// Shapes returns every valid shape.
func Shapes() []Shape {
	return []Shape{
		PartitionPack,
		ContentStorage,
		MaterialPackage,
		SourcePackage,
		Sequence,
		SourceClip,
		Track,
		IndexTableSegment,
		GenericDescriptor,
	}
}

func (s Shape) String() string {
	if s < 0 || int(s) >= len(shapeNames) {
		return fmt.Sprintf("Shape(%d)", int(s))
	}
	return shapeNames[s]
}

// Valid reports whether s is one of the known shapes.
func (s Shape) Valid() bool {
	return s > ShapeInvalid && int(s) < len(shapeNames)
}

// ParseShape accepts a shape name, case-insensitively.
func ParseShape(name string) (Shape, error) {
	for _, s := range Shapes() {
		if strings.EqualFold(name, s.String()) {
			return s, nil
		}
	}
	return ShapeInvalid, errors.NewValidationError("shape", fmt.Sprintf("unknown shape %q", name))
}

// MarshalText implements encoding.TextMarshaler.
func (s Shape) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, errors.NewValidationError("shape", fmt.Sprintf("cannot marshal %s", s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Shape) UnmarshalText(text []byte) error {
	parsed, err := ParseShape(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
