/*
Package registry holds the build-once label tables used to route KLV elements.

Table:
A generic UL-keyed table built through a TableBuilder. Adding the same label
twice with the same value folds it into one entry; adding it with a different
value fails with a DuplicateKeyConflictError:

	b := registry.NewTableBuilder[registry.Shape]("shapes")
	_ = b.Add(key, registry.Track)
	err := b.Add(key, registry.Sequence) // errors.IsDuplicateKeyConflict(err)
	table := b.Build()

Shape Registry:
Maps set labels onto the structural parser that reads them. Several labels
resolve to the same shape by design (eleven partition pack variants, four
track kinds, seven descriptor subtypes):

	shapes, err := registry.NewDefaultShapeRegistry()
	shape, ok := shapes.Lookup(key)

Local Tags:
Maps the 2-byte local tags used inside local sets onto full item labels. Items
flagged EssenceCoding carry an essence-coding label as their value; that is
the context in which a caller asks the codec catalog rather than the shape
registry.

Every table is immutable after construction and safe for concurrent reads.
*/
package registry
