/*
Package storagemodels defines the data structures shared by label stores.

LabelRecord:
An extension label persisted outside the binary, loaded into the shape
registry or the codec catalog before the resolver is built:

	rec := storagemodels.LabelRecord{
	    ID:         storagemodels.LabelID("vendor-x", storagemodels.KindShape, "06.0e.2b.34.02.53.01.01.0d.01.01.01.01.01.3b.00"),
	    Dictionary: "vendor-x",
	    Kind:       storagemodels.KindShape,
	    Name:       "VendorTimelineTrack",
	    UL:         "06.0e.2b.34.02.53.01.01.0d.01.01.01.01.01.3b.00",
	    Tag:        "Track",
	}
	rec.Touch(time.Now())

QueryParams:
Parameters for querying a store. DictionaryPartition gives the GSI1
partition value grouping one dictionary.

StreamResult and StreamOptions:
Results from streaming operations with metadata, configured through
functional options:

	opts := []StreamOption{
	    WithBufferSize(100),
	    WithPageSize(25),
	    WithMaxRetries(3),
	    WithProgressHandler(progressFunc),
	}

These types provide a consistent interface across different storage implementations.
*/
package storagemodels
