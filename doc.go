/*
Package klvregistry resolves SMPTE Universal Labels read as KLV keys from an
MXF file onto the component that handles them.

A key resolves to one of:
  - ShapeResolution: a structural metadata set, routed to its parser
  - CodecResolution: an essence coding label, routed to a decoder
  - Unknown: a label neither table knows; skip it by its declared length

Shape labels are always checked first. Codec labels are only reported where
the caller expects an essence coding label, typically the value of local tag
0x3201 (Picture Essence Coding) or 0x3D06 (Sound Essence Compression):

	r, err := klvregistry.Default()
	res, err := r.Resolve(key, klvregistry.ExpectMetadata)
	switch res := res.(type) {
	case klvregistry.ShapeResolution:
	    parse(res.Shape, payload)
	case klvregistry.CodecResolution:
	    decoder(res.Codec)
	case klvregistry.Unknown:
	    // skip
	}

Resolver tables are built once by New and never mutated. Extension labels
come from dictionaries loaded beforehand:

	d, err := dictionary.LoadFile("vendor.yaml")
	r, err := klvregistry.New(
	    klvregistry.WithDictionary(d),
	    klvregistry.WithLogger(logger),
	    klvregistry.WithMetrics(m),
	)

A key that is not 16 bytes long is the only resolution error; it is an
errors.InvalidLengthError.
*/
package klvregistry
