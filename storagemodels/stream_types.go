/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// StreamResult carries one streamed record, or the error that ended or
// interrupted the stream.
type StreamResult[T any] struct {
	Item  T
	Raw   map[string]types.AttributeValue // nil for in-memory stores
	Error error
	Meta  StreamMeta
}

// StreamMeta locates a result in the stream.
type StreamMeta struct {
	Index      int64 // 0-based
	PageNumber int   // 1-based
	Timestamp  time.Time
}

// StreamOptions configures a stream. Build it with NewStreamOptions.
type StreamOptions struct {
	BufferSize      int
	MaxRetries      int // retries of one page, whatever the cause
	RetryBackoff    time.Duration
	PageSize        int32
	ProgressHandler func(StreamProgress)
	// ErrorHandler decides whether a page failing with an error other than
	// throttling or a server error is retried (true) or ends the stream
	// (false). Its retries count against MaxRetries.
	ErrorHandler func(error) bool
}

// StreamProgress is reported after every page and once more at the end.
type StreamProgress struct {
	ItemsProcessed int64
	PagesProcessed int
	LastKey        map[string]types.AttributeValue
	Errors         []error // non-fatal errors so far
	StartTime      time.Time
	CurrentRate    float64 // items per second
}

// StreamOption is a functional option for configuring streaming
type StreamOption func(*StreamOptions)

// DefaultStreamOptions returns default streaming options
func DefaultStreamOptions() StreamOptions {
	return StreamOptions{
		BufferSize:   100,
		MaxRetries:   3,
		RetryBackoff: time.Second,
		PageSize:     100,
	}
}

// NewStreamOptions applies opts over the defaults. Out-of-range values fall
// back to the nearest usable setting.
func NewStreamOptions(opts ...StreamOption) StreamOptions {
	o := DefaultStreamOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.BufferSize < 0 {
		o.BufferSize = 0
	}
	if o.MaxRetries < 0 {
		o.MaxRetries = 0
	}
	if o.PageSize <= 0 {
		o.PageSize = DefaultStreamOptions().PageSize
	}
	return o
}

func WithBufferSize(size int) StreamOption {
	return func(opts *StreamOptions) {
		opts.BufferSize = size
	}
}

func WithMaxRetries(retries int) StreamOption {
	return func(opts *StreamOptions) {
		opts.MaxRetries = retries
	}
}

func WithRetryBackoff(backoff time.Duration) StreamOption {
	return func(opts *StreamOptions) {
		opts.RetryBackoff = backoff
	}
}

// WithPageSize sets the number of records fetched per page.
func WithPageSize(size int32) StreamOption {
	return func(opts *StreamOptions) {
		opts.PageSize = size
	}
}

func WithProgressHandler(handler func(StreamProgress)) StreamOption {
	return func(opts *StreamOptions) {
		opts.ProgressHandler = handler
	}
}

func WithErrorHandler(handler func(error) bool) StreamOption {
	return func(opts *StreamOptions) {
		opts.ErrorHandler = handler
	}
}
