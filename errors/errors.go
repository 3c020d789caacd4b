/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrInvalidLength is returned when a raw key is not exactly 16 bytes
	ErrInvalidLength = errors.New("invalid key length")

	// ErrDuplicateKeyConflict is returned when a table maps one label to two different tags
	ErrDuplicateKeyConflict = errors.New("duplicate key conflict")

	// ErrNotFound is returned when a label record is not found
	ErrNotFound = errors.New("label not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)

// InvalidLengthError represents a raw key whose length is not 16 bytes
type InvalidLengthError struct {
	Length int
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("key has %d bytes, want 16", e.Length)
}

func (e *InvalidLengthError) Is(target error) bool {
	return target == ErrInvalidLength
}

// DuplicateKeyConflictError represents a label registered twice with different tags
type DuplicateKeyConflictError struct {
	Table    string
	Key      string
	Existing string
	Incoming string
}

func (e *DuplicateKeyConflictError) Error() string {
	return fmt.Sprintf("%s: key %s already mapped to %s, cannot map to %s", e.Table, e.Key, e.Existing, e.Incoming)
}

func (e *DuplicateKeyConflictError) Is(target error) bool {
	return target == ErrDuplicateKeyConflict
}

// NotFoundError represents an error when a stored label is not found
type NotFoundError struct {
	Type string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with key %q not found", e.Type, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ValidationError represents an input validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Helper functions for creating errors

// NewInvalidLengthError creates a new InvalidLengthError
func NewInvalidLengthError(length int) error {
	return &InvalidLengthError{Length: length}
}

// NewDuplicateKeyConflictError creates a new DuplicateKeyConflictError
func NewDuplicateKeyConflictError(table, key, existing, incoming string) error {
	return &DuplicateKeyConflictError{Table: table, Key: key, Existing: existing, Incoming: incoming}
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(entityType, key string) error {
	return &NotFoundError{Type: entityType, Key: key}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsInvalidLength checks if an error is an invalid key length error
func IsInvalidLength(err error) bool {
	return errors.Is(err, ErrInvalidLength)
}

// IsDuplicateKeyConflict checks if an error is a duplicate key conflict
func IsDuplicateKeyConflict(err error) bool {
	return errors.Is(err, ErrDuplicateKeyConflict)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
