/*
Package dictionary loads extension labels from YAML files or a label store.

A Dictionary only lists entries. It is merged into the shape registry and the
codec catalog when a resolver is built, so the duplicate policy of those
tables applies to it:

	d, err := dictionary.LoadFile("vendor.yaml")
	r, err := klvregistry.New(klvregistry.WithDictionary(d))

LoadFromStore reads a dictionary published with Publish from a label store.
*/
package dictionary
