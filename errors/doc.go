/*
Package errors provides semantic error types for the KLV label registry.

The package defines the registry's error taxonomy with specific types that can
be checked using the standard errors.Is() function or the provided helpers.

Common Errors:

	var (
	    ErrInvalidLength        = errors.New("invalid key length")
	    ErrDuplicateKeyConflict = errors.New("duplicate key conflict")
	    ErrNotFound             = errors.New("label not found")
	    ErrInvalidInput         = errors.New("invalid input")
	)

An InvalidLength error is local to one KLV element: the caller skips the
element using its declared length and keeps parsing. A DuplicateKeyConflict
is a defect in a label table and is fatal to registry construction.

Usage:

	res, err := resolver.Resolve(rawKey, klvregistry.ExpectMetadata)
	if err != nil {
	    if errors.IsInvalidLength(err) {
	        // skip this element
	    }
	}

	// Create typed errors
	err := errors.NewInvalidLengthError(15)
	err := errors.NewDuplicateKeyConflictError("shapes", key.String(), "Track", "Sequence")

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
*/
package errors
