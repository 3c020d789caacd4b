/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/klvregistry/storagemodels"
)

// Query performs a single-page query against the DynamoDB table using the
// provided parameters and unmarshals every item into T. Use Stream to walk
// all pages.
func (d *DynamodbDataStore[T]) Query(ctx context.Context, params *storagemodels.QueryParams) ([]T, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	out, err := d.client.Query(ctx, d.queryInput(params))
	if err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}

	results := make([]T, 0, len(out.Items))
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &results); err != nil {
		return nil, fmt.Errorf("failed to unmarshal query items: %w", err)
	}
	return results, nil
}

func (d *DynamodbDataStore[T]) queryInput(params *storagemodels.QueryParams) *dynamodb.QueryInput {
	tableName := params.TableName
	if tableName == "" {
		tableName = d.tableName
	}
	return &dynamodb.QueryInput{
		TableName:                 &tableName,
		KeyConditionExpression:    &params.KeyConditionExpression,
		ExpressionAttributeValues: params.ExpressionAttributeValues,
		FilterExpression:          params.FilterExpression,
		IndexName:                 params.IndexName,
		Limit:                     params.Limit,
		ExclusiveStartKey:         params.ExclusiveStartKey,
		ScanIndexForward:          params.ScanIndexForward,
	}
}

// DictionaryQuery returns the parameters selecting every label stored under
// the named dictionary through DictionaryGSI.
func DictionaryQuery(tableName, dictionary string) *storagemodels.QueryParams {
	index := DictionaryGSI.IndexName
	return &storagemodels.QueryParams{
		TableName:              tableName,
		KeyConditionExpression: DictionaryGSI.PartitionKeyName + " = :dict",
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":dict": &types.AttributeValueMemberS{Value: storagemodels.DictionaryPartition(dictionary)},
		},
		IndexName: &index,
	}
}
