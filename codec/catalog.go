/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package codec

import (
	"fmt"

	"github.com/suparena/klvregistry/errors"
	"github.com/suparena/klvregistry/registry"
	"github.com/suparena/klvregistry/ul"
)

// CatalogTableName is the table name reported in catalog conflict errors.
const CatalogTableName = "codecs"

// Variant is one registered essence-coding label. Several variants share a
// codec tag; the variant keeps the profile/level distinction.
type Variant struct {
	Name  string
	UL    ul.UL
	Codec Codec
}

// Catalog is the closed, build-once set of essence-coding labels.
type Catalog struct {
	table    *registry.Table[Codec]
	variants map[ul.UL]Variant
}

// NewCatalog builds a catalog. A label listed twice with different codecs
// fails with a DuplicateKeyConflictError.
func NewCatalog(variants ...Variant) (*Catalog, error) {
	b := registry.NewTableBuilder[Codec](CatalogTableName)
	byKey := make(map[ul.UL]Variant, len(variants))
	for _, v := range variants {
		if !v.Codec.Valid() {
			return nil, errors.NewValidationError("codec", fmt.Sprintf("variant %q has invalid codec %s", v.Name, v.Codec))
		}
		if err := b.Add(v.UL, v.Codec); err != nil {
			return nil, fmt.Errorf("registering %s: %w", v.Name, err)
		}
		if _, exists := byKey[v.UL]; !exists {
			byKey[v.UL] = v
		}
	}
	return &Catalog{table: b.Build(), variants: byKey}, nil
}

// NewDefaultCatalog builds a catalog from DefaultVariants.
func NewDefaultCatalog() (*Catalog, error) {
	return NewCatalog(DefaultVariants()...)
}

// Lookup returns the codec for an exact label match. Raw variants return
// (None, true); a label outside the catalog returns false and should be
// reported as unsupported essence, not as a parse failure.
func (c *Catalog) Lookup(key ul.UL) (Codec, bool) {
	return c.table.Lookup(key)
}

// Variant returns the registered variant for key.
func (c *Catalog) Variant(key ul.UL) (Variant, bool) {
	v, ok := c.variants[key]
	return v, ok
}

// Len returns the number of distinct labels.
func (c *Catalog) Len() int {
	return c.table.Len()
}

// Variants returns the variants in registration order.
func (c *Catalog) Variants() []Variant {
	keys := c.table.Keys()
	out := make([]Variant, 0, len(keys))
	for _, k := range keys {
		out = append(out, c.variants[k])
	}
	return out
}

// DefaultVariants returns the built-in essence-coding labels. PCM labels are
// registered with their unused trailing bytes zeroed.
func DefaultVariants() []Variant {
	return []Variant{
		{"MPEG2_ML", ul.New(0x06, 0x0e, 0x2b, 0x34, 0x04, 0x01, 0x01, 0x03, 0x04, 0x01, 0x02, 0x02, 0x01, 0x01, 0x11, 0x00), MPEG2},
		{"MPEG2_D10_PAL", ul.New(0x06, 0x0e, 0x2b, 0x34, 0x04, 0x01, 0x01, 0x01, 0x04, 0x01, 0x02, 0x02, 0x01, 0x02, 0x01, 0x01), MPEG2},
		{"MPEG2_HL", ul.New(0x06, 0x0e, 0x2b, 0x34, 0x04, 0x01, 0x01, 0x03, 0x04, 0x01, 0x02, 0x02, 0x01, 0x03, 0x03, 0x00), MPEG2},
		{"MPEG2_HL_422_I", ul.New(0x06, 0x0e, 0x2b, 0x34, 0x04, 0x01, 0x01, 0x03, 0x04, 0x01, 0x02, 0x02, 0x01, 0x04, 0x02, 0x00), MPEG2},
		{"MPEG4_XDCAM_PROXY", ul.New(0x06, 0x0e, 0x2b, 0x34, 0x04, 0x01, 0x01, 0x03, 0x04, 0x01, 0x02, 0x02, 0x01, 0x20, 0x02, 0x03), MPEG4},
		{"DV_25_PAL", ul.New(0x06, 0x0e, 0x2b, 0x34, 0x04, 0x01, 0x01, 0x01, 0x04, 0x01, 0x02, 0x02, 0x02, 0x01, 0x02, 0x00), DV},
		{"JPEG2000", ul.New(0x06, 0x0e, 0x2b, 0x34, 0x04, 0x01, 0x01, 0x07, 0x04, 0x01, 0x02, 0x02, 0x03, 0x01, 0x01, 0x00), JPEG2000},
		{"RAW", ul.New(0x06, 0x0e, 0x2b, 0x34, 0x04, 0x01, 0x01, 0x01, 0x04, 0x01, 0x02, 0x01, 0x7f, 0x00, 0x00, 0x00), None},
		{"VC3_DNXD", ul.New(0x06, 0x0e, 0x2b, 0x34, 0x04, 0x01, 0x01, 0x01, 0x04, 0x01, 0x02, 0x02, 0x03, 0x02, 0x00, 0x00), VC3},
		{"AVC_INTRA", ul.New(0x06, 0x0e, 0x2b, 0x34, 0x04, 0x01, 0x01, 0x0a, 0x04, 0x01, 0x02, 0x02, 0x01, 0x32, 0x00, 0x00), H264},
		{"V210", ul.New(0x06, 0x0e, 0x2b, 0x34, 0x04, 0x01, 0x01, 0x0a, 0x04, 0x01, 0x02, 0x01, 0x01, 0x02, 0x02, 0x00), V210},
		{"PCM_S16LE_1", ul.New(0x06, 0x0e, 0x2b, 0x34, 0x04, 0x01, 0x01, 0x01, 0x04, 0x02, 0x02, 0x01, 0x00), None},
		{"PCM_S16LE_3", ul.New(0x06, 0x0e, 0x2b, 0x34, 0x04, 0x01, 0x01, 0x01, 0x04, 0x02, 0x02, 0x01, 0x01), None},
		{"PCM_S16LE_2", ul.New(0x06, 0x0e, 0x2b, 0x34, 0x04, 0x01, 0x01, 0x01, 0x04, 0x02, 0x02, 0x01, 0x7f), None},
		{"PCM_S16BE", ul.New(0x06, 0x0e, 0x2b, 0x34, 0x04, 0x01, 0x01, 0x07, 0x04, 0x02, 0x02, 0x01, 0x7e), None},
		{"PCM_ALAW", ul.New(0x06, 0x0e, 0x2b, 0x34, 0x04, 0x01, 0x01, 0x04, 0x04, 0x02, 0x02, 0x02, 0x03, 0x01, 0x01, 0x00), ALaw},
		{"AC3", ul.New(0x06, 0x0e, 0x2b, 0x34, 0x04, 0x01, 0x01, 0x01, 0x04, 0x02, 0x02, 0x02, 0x03, 0x02, 0x01, 0x00), AC3},
		{"MP2", ul.New(0x06, 0x0e, 0x2b, 0x34, 0x04, 0x01, 0x01, 0x01, 0x04, 0x02, 0x02, 0x02, 0x03, 0x02, 0x05, 0x00), MP2},
	}
}
