/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	klverrors "github.com/suparena/klvregistry/errors"
)

// DynamodbDataStore implements datastore.DataStore[T] by using AWS DynamoDB as the underlying data store.
type DynamodbDataStore[T any] struct {
	client    Client
	tableName string
	indexMap  map[string]string
	logger    *zap.Logger
}

// Option configures a DynamodbDataStore.
type Option func(*options)

type options struct {
	logger *zap.Logger
}

// WithLogger sets the logger used for retry and paging diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

var macroPattern = regexp.MustCompile(`{([^}]+)}`)

func expandMacros(indexMap map[string]string, keysInput any) (map[string]string, error) {
	av, err := attributevalue.MarshalMap(keysInput)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal keysInput: %w", err)
	}

	res := make(map[string]string, len(indexMap))

	for fieldName, template := range indexMap {
		missing := false
		expanded := macroPattern.ReplaceAllStringFunc(template, func(macro string) string {
			key := strings.Trim(macro, "{}")

			var v string
			switch tv := av[key].(type) {
			case *types.AttributeValueMemberS:
				v = tv.Value
			case *types.AttributeValueMemberN:
				v = tv.Value
			case *types.AttributeValueMemberBOOL:
				v = fmt.Sprintf("%v", tv.Value)
			}
			// sets, binaries and NULL have no key form
			if v == "" {
				missing = true
			}
			return v
		})
		if missing {
			// an unresolved macro leaves the field unset
			expanded = ""
		}
		res[fieldName] = expanded
	}

	return res, nil
}

// NewDynamodbDataStore constructs a new DynamodbDataStore for type T. The
// index map templates the key attributes written on Put, e.g.
// storagemodels.LabelIndexMap.
func NewDynamodbDataStore[T any](client Client, tableName string, indexMap map[string]string, opts ...Option) (*DynamodbDataStore[T], error) {
	if client == nil {
		return nil, klverrors.NewValidationError("client", "must not be nil")
	}
	if tableName == "" {
		return nil, klverrors.NewValidationError("tableName", "must not be empty")
	}
	if _, ok := indexMap["PK"]; !ok {
		return nil, klverrors.NewValidationError("indexMap", "missing PK template")
	}
	if _, ok := indexMap["SK"]; !ok {
		return nil, klverrors.NewValidationError("indexMap", "missing SK template")
	}

	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	return &DynamodbDataStore[T]{
		client:    client,
		tableName: tableName,
		indexMap:  indexMap,
		logger:    o.logger.With(zap.String("table", tableName)),
	}, nil
}

// TableName returns the DynamoDB table the store reads and writes.
func (d *DynamodbDataStore[T]) TableName() string {
	return d.tableName
}

// GetOne retrieves a single item from DynamoDB using a string key.
// A missing item yields a NotFoundError.
func (d *DynamodbDataStore[T]) GetOne(ctx context.Context, key string) (*T, error) {
	keyMap, err := buildKeyFromExpanded(expandStringKey(d.indexMap, key))
	if err != nil {
		return nil, fmt.Errorf("failed to build key: %w", err)
	}

	out, err := d.client.GetItem(ctx, &sdk.GetItemInput{
		TableName: &d.tableName,
		Key:       keyMap,
	})
	if err != nil {
		return nil, fmt.Errorf("GetItem error: %w", err)
	}
	if out.Item == nil {
		var zero T
		return nil, klverrors.NewNotFoundError(fmt.Sprintf("%T", zero), key)
	}

	result := new(T)
	if err := attributevalue.UnmarshalMap(out.Item, result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item: %w", err)
	}
	return result, nil
}

// Put stores the given 'entity' using macros in the index map to populate
// partition/sort keys and GSI keys.
func (d *DynamodbDataStore[T]) Put(ctx context.Context, entity T) error {
	av, err := attributevalue.MarshalMap(entity)
	if err != nil {
		return fmt.Errorf("failed to marshal entity: %w", err)
	}

	expanded, err := expandMacros(d.indexMap, entity)
	if err != nil {
		return err
	}
	if _, err := buildKeyFromExpanded(expanded); err != nil {
		return fmt.Errorf("failed to build key for Put: %w", err)
	}

	for k, v := range expanded {
		if v == "" {
			continue
		}
		av[k] = &types.AttributeValueMemberS{Value: v}
	}

	_, err = d.client.PutItem(ctx, &sdk.PutItemInput{
		TableName: &d.tableName,
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("PutItem failed: %w", err)
	}
	return nil
}

// Delete removes an item from DynamoDB using a string key.
func (d *DynamodbDataStore[T]) Delete(ctx context.Context, key string) error {
	keyMap, err := buildKeyFromExpanded(expandStringKey(d.indexMap, key))
	if err != nil {
		return fmt.Errorf("failed to build key for Delete: %w", err)
	}

	_, err = d.client.DeleteItem(ctx, &sdk.DeleteItemInput{
		TableName: &d.tableName,
		Key:       keyMap,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return fmt.Errorf("delete condition failed: %w", err)
		}
		return fmt.Errorf("failed to delete item in DynamoDB: %w", err)
	}
	return nil
}

// buildKeyFromExpanded builds a DynamoDB key from the expanded index map.
// It requires non-empty values for "PK" and "SK".
func buildKeyFromExpanded(expanded map[string]string) (map[string]types.AttributeValue, error) {
	pk, okPK := expanded["PK"]
	sk, okSK := expanded["SK"]

	if !okPK || !okSK || pk == "" || sk == "" {
		return nil, fmt.Errorf("expanded index map missing valid PK or SK")
	}

	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: pk},
		"SK": &types.AttributeValueMemberS{Value: sk},
	}, nil
}

// expandStringKey replaces every macro in the index map templates with key.
// Templates without a macro keep their literal value, so an empty key
// leaves macro-only templates empty and buildKeyFromExpanded rejects them.
func expandStringKey(indexMap map[string]string, key string) map[string]string {
	expanded := make(map[string]string, len(indexMap))
	for field, template := range indexMap {
		if key == "" && macroPattern.MatchString(template) {
			expanded[field] = ""
			continue
		}
		expanded[field] = macroPattern.ReplaceAllLiteralString(template, key)
	}
	return expanded
}
