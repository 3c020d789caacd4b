/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/klvregistry/errors"
)

// QueryParams selects records from a label table, either by primary key or
// through a secondary index. Query and Stream share it.
type QueryParams struct {
	// TableName defaults to the store's table when empty.
	TableName              string
	KeyConditionExpression string
	FilterExpression       *string
	// ExpressionAttributeValues binds the placeholders of both expressions.
	ExpressionAttributeValues map[string]types.AttributeValue
	// IndexName is nil for the base table.
	IndexName *string
	// Limit caps a single page.
	Limit *int32
	// ExclusiveStartKey resumes after a previous page.
	ExclusiveStartKey map[string]types.AttributeValue
	// ScanIndexForward orders by sort key, ascending when nil or true.
	ScanIndexForward *bool
}

// Validate reports parameters no store can run.
func (p *QueryParams) Validate() error {
	if p == nil {
		return errors.NewValidationError("params", "must not be nil")
	}
	if p.KeyConditionExpression == "" {
		return errors.NewValidationError("KeyConditionExpression", "must not be empty")
	}
	if p.Limit != nil && *p.Limit <= 0 {
		return errors.NewValidationError("Limit", "must be positive")
	}
	return nil
}
