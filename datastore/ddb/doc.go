/*
Package ddb provides a DynamoDB implementation of the DataStore interface.

The DynamodbDataStore supports:
  - Single-table design with macro-based key expansion (e.g., "LABEL#{Id}")
  - Sparse GSI attributes: a field whose macro does not resolve is not written
  - Paginated streaming with retry and progress reporting

Macro Expansion:
Key attributes are rendered from entity fields on Put and from the string key
on GetOne and Delete:

	store, err := ddb.NewDynamodbDataStore[storagemodels.LabelRecord](
	    client, "labels", storagemodels.LabelIndexMap)

Dictionaries:
DictionaryQuery selects every label of one dictionary through GSI1:

	results := store.Stream(ctx, ddb.DictionaryQuery("labels", "vendor-x"),
	    storagemodels.WithPageSize(25),
	    storagemodels.WithMaxRetries(3),
	)

Client is the subset of the SDK client the store calls; NewDynamoDBClient
builds one from config.AWSConfig.
*/
package ddb
