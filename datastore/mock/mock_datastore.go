/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides in-memory implementations of the DataStore interface for testing
package mock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/klvregistry/errors"
	"github.com/suparena/klvregistry/storagemodels"
)

// DataStore is an in-memory datastore.DataStore[T]. Entities are returned
// in insertion order.
type DataStore[T any] struct {
	mu          sync.RWMutex
	data        map[string]T
	order       []string
	getKeyFunc  func(entity T) string
	matchFunc   func(params *storagemodels.QueryParams, entity T) bool
	putError    error
	deleteError error
	queryError  error
}

// New creates a new mock DataStore
func New[T any]() *DataStore[T] {
	return &DataStore[T]{
		data: make(map[string]T),
	}
}

// NewLabelStore returns a mock keyed by LabelRecord.ID whose queries select
// records by the dictionary partition bound to ":dict".
func NewLabelStore() *DataStore[storagemodels.LabelRecord] {
	return New[storagemodels.LabelRecord]().
		WithGetKeyFunc(func(r storagemodels.LabelRecord) string { return r.ID }).
		WithMatchFunc(func(params *storagemodels.QueryParams, r storagemodels.LabelRecord) bool {
			v, ok := params.ExpressionAttributeValues[":dict"].(*types.AttributeValueMemberS)
			return !ok || v.Value == storagemodels.DictionaryPartition(r.Dictionary)
		})
}

// WithGetKeyFunc sets a custom function to extract keys from entities
func (m *DataStore[T]) WithGetKeyFunc(f func(T) string) *DataStore[T] {
	m.getKeyFunc = f
	return m
}

// WithMatchFunc sets the predicate Query and Stream apply to each entity.
// Without one every entity matches.
func (m *DataStore[T]) WithMatchFunc(f func(*storagemodels.QueryParams, T) bool) *DataStore[T] {
	m.matchFunc = f
	return m
}

// WithPutError makes Put operations return an error
func (m *DataStore[T]) WithPutError(err error) *DataStore[T] {
	m.putError = err
	return m
}

// WithDeleteError makes Delete operations return an error
func (m *DataStore[T]) WithDeleteError(err error) *DataStore[T] {
	m.deleteError = err
	return m
}

// WithQueryError makes Query fail and Stream emit a single error result
func (m *DataStore[T]) WithQueryError(err error) *DataStore[T] {
	m.queryError = err
	return m
}

// GetOne retrieves an entity by key
func (m *DataStore[T]) GetOne(ctx context.Context, key string) (*T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if entity, exists := m.data[key]; exists {
		return &entity, nil
	}

	var zero T
	return nil, errors.NewNotFoundError(fmt.Sprintf("%T", zero), key)
}

// Put stores an entity
func (m *DataStore[T]) Put(ctx context.Context, entity T) error {
	if m.putError != nil {
		return m.putError
	}

	key := m.extractKey(entity)
	if key == "" {
		return errors.NewValidationError("key", "unable to extract key from entity")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.data[key]; !exists {
		m.order = append(m.order, key)
	}
	m.data[key] = entity
	return nil
}

// Query returns every matching entity, ignoring Limit
func (m *DataStore[T]) Query(ctx context.Context, params *storagemodels.QueryParams) ([]T, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if m.queryError != nil {
		return nil, m.queryError
	}
	return m.matching(params), nil
}

// Stream sends every matching entity, grouped into pages of the configured
// page size.
func (m *DataStore[T]) Stream(ctx context.Context, params *storagemodels.QueryParams, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult[T] {
	options := storagemodels.NewStreamOptions(opts...)
	resultChan := make(chan storagemodels.StreamResult[T], options.BufferSize)

	go func() {
		defer close(resultChan)

		err := params.Validate()
		if err == nil {
			err = m.queryError
		}
		if err != nil {
			select {
			case <-ctx.Done():
			case resultChan <- storagemodels.StreamResult[T]{
				Error: err,
				Meta:  storagemodels.StreamMeta{Timestamp: time.Now()},
			}:
			}
			return
		}

		pageSize := int64(options.PageSize)
		for i, v := range m.matching(params) {
			index := int64(i)
			select {
			case <-ctx.Done():
				return
			case resultChan <- storagemodels.StreamResult[T]{
				Item: v,
				Meta: storagemodels.StreamMeta{
					Index:      index,
					PageNumber: int(index/pageSize) + 1,
					Timestamp:  time.Now(),
				},
			}:
			}
		}
	}()

	return resultChan
}

// Delete removes an entity by key
func (m *DataStore[T]) Delete(ctx context.Context, key string) error {
	if m.deleteError != nil {
		return m.deleteError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.data[key]; !exists {
		var zero T
		return errors.NewNotFoundError(fmt.Sprintf("%T", zero), key)
	}

	delete(m.data, key)
	for i, k := range m.order {
		if k == key {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

// Helper methods for testing

// Count returns the number of stored entities
func (m *DataStore[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

// Clear removes all data
func (m *DataStore[T]) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make(map[string]T)
	m.order = nil
}

func (m *DataStore[T]) matching(params *storagemodels.QueryParams) []T {
	m.mu.RLock()
	defer m.mu.RUnlock()

	results := make([]T, 0, len(m.order))
	for _, k := range m.order {
		v := m.data[k]
		if m.matchFunc == nil || m.matchFunc(params, v) {
			results = append(results, v)
		}
	}
	return results
}

// extractKey attempts to extract a key from an entity
func (m *DataStore[T]) extractKey(entity T) string {
	if m.getKeyFunc != nil {
		return m.getKeyFunc(entity)
	}
	return fmt.Sprintf("key_%v", entity)
}
