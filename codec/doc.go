/*
Package codec is the closed catalog of essence-coding labels.

Each Variant pairs one label with an abstract Codec tag. Profile and level
variants collapse onto one tag (four MPEG-2 labels all report MPEG2) while the
Variant keeps the finer distinction. Raw picture and PCM sound labels report
None, which is a successful lookup meaning "no decoder, read samples as is":

	catalog, err := codec.NewDefaultCatalog()
	c, ok := catalog.Lookup(key)
	switch {
	case !ok:
	    // unsupported essence; keep parsing the rest of the file
	case c.IsRaw():
	    // uncompressed
	}

The catalog is only consulted when the caller already expects an
essence-coding label (the Picture Essence Coding or Sound Essence Compression
item of a descriptor). Structural labels live in package registry; the two
key spaces are never merged.
*/
package codec
