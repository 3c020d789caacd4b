/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package dictionary

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type fileFormat struct {
	Name   string      `yaml:"name"`
	Shapes []fileShape `yaml:"shapes"`
	Codecs []fileCodec `yaml:"codecs"`
}

type fileShape struct {
	Name  string `yaml:"name"`
	UL    string `yaml:"ul"`
	Shape string `yaml:"shape"`
}

type fileCodec struct {
	Name  string `yaml:"name"`
	UL    string `yaml:"ul"`
	Codec string `yaml:"codec"`
}

// Load decodes a YAML dictionary:
//
//	name: vendor-x
//	shapes:
//	  - name: VendorTimelineTrack
//	    ul: 06.0e.2b.34.02.53.01.01.0d.01.01.01.01.01.3b.00
//	    shape: Track
//	codecs:
//	  - name: VendorJ2K
//	    ul: 06.0e.2b.34.04.01.01.07.0d.0e.0e.0e.01.02.03.04
//	    codec: jpeg2000
//
// Unknown fields are rejected. An empty document yields an empty dictionary.
func Load(r io.Reader) (*Dictionary, error) {
	var f fileFormat
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decoding dictionary: %w", err)
	}

	d := &Dictionary{Name: f.Name}
	for i, s := range f.Shapes {
		e, err := parseShapeEntry(indexed("shapes", i), s.Name, s.UL, s.Shape)
		if err != nil {
			return nil, err
		}
		d.Shapes = append(d.Shapes, e)
	}
	for i, c := range f.Codecs {
		v, err := parseVariant(indexed("codecs", i), c.Name, c.UL, c.Codec)
		if err != nil {
			return nil, err
		}
		d.Variants = append(d.Variants, v)
	}
	return d, nil
}

// LoadFile reads a YAML dictionary from path. A dictionary without a name
// is named after the file.
func LoadFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if d.Name == "" {
		d.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return d, nil
}

// Marshal encodes d in the format Load reads.
func Marshal(d *Dictionary) ([]byte, error) {
	f := fileFormat{Name: d.Name}
	for _, s := range d.Shapes {
		f.Shapes = append(f.Shapes, fileShape{Name: s.Name, UL: s.UL.String(), Shape: s.Shape.String()})
	}
	for _, v := range d.Variants {
		f.Codecs = append(f.Codecs, fileCodec{Name: v.Name, UL: v.UL.String(), Codec: v.Codec.String()})
	}
	return yaml.Marshal(f)
}
