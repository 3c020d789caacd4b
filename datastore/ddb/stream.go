/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"github.com/suparena/klvregistry/storagemodels"
)

// Stream walks every page of a query, sending one result per item. The
// channel is closed when the query is exhausted, fails or ctx is done.
func (d *DynamodbDataStore[T]) Stream(ctx context.Context, params *storagemodels.QueryParams, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult[T] {
	options := storagemodels.NewStreamOptions(opts...)
	resultCh := make(chan storagemodels.StreamResult[T], options.BufferSize)

	if err := params.Validate(); err != nil {
		resultCh <- storagemodels.StreamResult[T]{
			Error: err,
			Meta:  storagemodels.StreamMeta{Timestamp: time.Now()},
		}
		close(resultCh)
		return resultCh
	}

	s := &streamState[T]{
		store:   d,
		options: options,
		out:     resultCh,
		start:   time.Now(),
	}
	go s.run(ctx, params)

	return resultCh
}

// streamState is owned by the stream goroutine.
type streamState[T any] struct {
	store   *DynamodbDataStore[T]
	options storagemodels.StreamOptions
	out     chan<- storagemodels.StreamResult[T]

	start time.Time
	items int64
	pages int
	errs  []error
}

func (s *streamState[T]) run(ctx context.Context, params *storagemodels.QueryParams) {
	defer close(s.out)

	input := s.store.queryInput(params)
	input.Limit = aws.Int32(s.options.PageSize)

	for ctx.Err() == nil {
		out, err := s.queryPage(ctx, input)
		if err != nil {
			s.send(ctx, storagemodels.StreamResult[T]{
				Error: fmt.Errorf("query failed: %w", err),
				Meta:  s.meta(),
			})
			return
		}

		s.pages++
		for _, item := range out.Items {
			result := s.store.processItem(item, s.meta())
			if !s.send(ctx, result) {
				return
			}
			s.items++
			if result.Error != nil {
				s.errs = append(s.errs, result.Error)
			}
		}
		s.report(out.LastEvaluatedKey)

		if len(out.LastEvaluatedKey) == 0 {
			s.report(nil)
			return
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func (s *streamState[T]) send(ctx context.Context, r storagemodels.StreamResult[T]) bool {
	select {
	case <-ctx.Done():
		return false
	case s.out <- r:
		return true
	}
}

func (s *streamState[T]) meta() storagemodels.StreamMeta {
	return storagemodels.StreamMeta{
		Index:      s.items,
		PageNumber: s.pages,
		Timestamp:  time.Now(),
	}
}

func (s *streamState[T]) report(lastKey map[string]types.AttributeValue) {
	if s.options.ProgressHandler == nil {
		return
	}
	p := storagemodels.StreamProgress{
		ItemsProcessed: s.items,
		PagesProcessed: s.pages,
		LastKey:        lastKey,
		Errors:         s.errs,
		StartTime:      s.start,
	}
	if elapsed := time.Since(s.start).Seconds(); elapsed > 0 {
		p.CurrentRate = float64(s.items) / elapsed
	}
	s.options.ProgressHandler(p)
}

// queryPage fetches one page with at most MaxRetries retries and linear
// backoff. Throttling and server errors are always retried; any other error
// is retried only when the error handler accepts it.
func (s *streamState[T]) queryPage(ctx context.Context, input *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
	var lastErr error

	for attempt := 0; attempt <= s.options.MaxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		out, err := s.store.client.Query(ctx, input)
		if err == nil {
			return out, nil
		}
		lastErr = err

		if !s.retryable(err) {
			return nil, err
		}
		s.store.logger.Debug("retrying query",
			zap.Int("page", s.pages+1),
			zap.Int("attempt", attempt+1),
			zap.Error(err))

		if attempt < s.options.MaxRetries {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(attempt+1) * s.options.RetryBackoff):
			}
		}
	}

	return nil, fmt.Errorf("query failed after %d retries: %w", s.options.MaxRetries, lastErr)
}

func (s *streamState[T]) retryable(err error) bool {
	if isRetryableError(err) {
		return true
	}
	if s.options.ErrorHandler == nil || !s.options.ErrorHandler(err) {
		return false
	}
	s.errs = append(s.errs, err)
	return true
}

// processItem converts a DynamoDB item to a typed result
func (d *DynamodbDataStore[T]) processItem(item map[string]types.AttributeValue, meta storagemodels.StreamMeta) storagemodels.StreamResult[T] {
	raw := make(map[string]types.AttributeValue, len(item))
	for k, v := range item {
		raw[k] = v
	}

	var result T
	if err := attributevalue.UnmarshalMap(item, &result); err != nil {
		return storagemodels.StreamResult[T]{
			Error: fmt.Errorf("failed to unmarshal item to type %T: %w", result, err),
			Raw:   raw,
			Meta:  meta,
		}
	}
	return storagemodels.StreamResult[T]{Item: result, Raw: raw, Meta: meta}
}

// isRetryableError determines if a DynamoDB error is retryable
func isRetryableError(err error) bool {
	var (
		throughput *types.ProvisionedThroughputExceededException
		limit      *types.RequestLimitExceeded
		internal   *types.InternalServerError
	)
	if errors.As(err, &throughput) || errors.As(err, &limit) || errors.As(err, &internal) {
		return true
	}

	var retryable interface{ IsRetryable() bool }
	if errors.As(err, &retryable) {
		return retryable.IsRetryable()
	}

	return false
}
