/*
Package datastore defines the persistence interface for extension label
dictionaries.

The main interface is DataStore[T], which provides generic operations for any record type T:

	type DataStore[T any] interface {
	    GetOne(ctx context.Context, key string) (*T, error)
	    Put(ctx context.Context, entity T) error
	    Query(ctx context.Context, params *storagemodels.QueryParams) ([]T, error)
	    Stream(ctx context.Context, params *storagemodels.QueryParams, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult[T]
	    Delete(ctx context.Context, key string) error
	}

Implementations:
  - ddb: DynamoDB implementation with a single-table layout driven by an index map
  - mock: In-memory mock implementation for testing

Stores are only read while building a resolver; lookups never touch them.
*/
package datastore
