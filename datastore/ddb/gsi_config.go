/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

// GSIConfig holds the configuration for GSI key mappings
type GSIConfig struct {
	// IndexName is the actual GSI name in DynamoDB (e.g., "GSI1")
	IndexName string
	// PartitionKeyName is the actual partition key attribute name in the GSI (e.g., "PK1")
	PartitionKeyName string
	// SortKeyName is the actual sort key attribute name in the GSI (e.g., "SK1")
	SortKeyName string
}

// DictionaryGSI is the index grouping label records by dictionary. Its key
// attributes match the PK1/SK1 entries of storagemodels.LabelIndexMap.
var DictionaryGSI = GSIConfig{
	IndexName:        "GSI1",
	PartitionKeyName: "PK1",
	SortKeyName:      "SK1",
}
