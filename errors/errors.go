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
	// ErrNotFound is returned when a type or stored struct is not found
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is returned when registering a type name twice
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput is returned when a type definition or value fails validation
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnexpectedType is returned when a value has a shape the converter does not accept
	ErrUnexpectedType = errors.New("unexpected type")

	// ErrNoConverter is returned when no converter is registered for a type category
	ErrNoConverter = errors.New("no converter registered for type category")
)

// NotFoundError represents an error when a named type or stored struct is not found
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

// AlreadyExistsError represents an error when a type is already registered
type AlreadyExistsError struct {
	Type string
	Key  string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s with key %q already exists", e.Type, e.Key)
}

func (e *AlreadyExistsError) Is(target error) bool {
	return target == ErrAlreadyExists
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

// UnexpectedTypeError is raised when a value is none of the shapes a converter accepts.
// Expected names the accepted shapes, Actual the Go type that was found.
type UnexpectedTypeError struct {
	Expected string
	Actual   string
}

func (e *UnexpectedTypeError) Error() string {
	return fmt.Sprintf("unexpected type: expected %s, found %s", e.Expected, e.Actual)
}

func (e *UnexpectedTypeError) Is(target error) bool {
	return target == ErrUnexpectedType
}

// NoConverterError reports a type category without a registered converter
type NoConverterError struct {
	Category string
}

func (e *NoConverterError) Error() string {
	return fmt.Sprintf("no converter registered for type category %s", e.Category)
}

func (e *NoConverterError) Is(target error) bool {
	return target == ErrNoConverter
}

// Helper functions for creating errors

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(kind, key string) error {
	return &NotFoundError{Type: kind, Key: key}
}

// NewAlreadyExistsError creates a new AlreadyExistsError
func NewAlreadyExistsError(kind, key string) error {
	return &AlreadyExistsError{Type: kind, Key: key}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewUnexpectedTypeError creates a new UnexpectedTypeError for the given value
func NewUnexpectedTypeError(expected string, actual any) error {
	return &UnexpectedTypeError{Expected: expected, Actual: fmt.Sprintf("%T", actual)}
}

// NewNoConverterError creates a new NoConverterError
func NewNoConverterError(category fmt.Stringer) error {
	return &NoConverterError{Category: category.String()}
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsUnexpectedType checks if an error is an unexpected type error
func IsUnexpectedType(err error) bool {
	return errors.Is(err, ErrUnexpectedType)
}

// IsNoConverter checks if an error is a missing converter error
func IsNoConverter(err error) bool {
	return errors.Is(err, ErrNoConverter)
}
