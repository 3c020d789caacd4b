/*
Package ul implements the SMPTE Universal Label, the 16-byte key that tags
every KLV element in an MXF file.

A UL is a plain value type and can be used directly as a map key:

	key, err := ul.FromBytes(raw)
	if err != nil {
	    // errors.IsInvalidLength(err): skip the element using its declared length
	}
	fmt.Println(key) // 06.0e.2b.34.02.53.01.01.0d.01.01.01.01.01.18.00

Matching is exact over all 16 bytes. Registries built on top of this type do
not treat any byte position as a wildcard; callers that want to ignore the
registry version byte must normalise the key first with WithVersion.
*/
package ul
