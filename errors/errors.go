// Package errors provides error handling for condax.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Hints and details for CLI users
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := loadTable(); err != nil {
//	    return errors.Wrap(err, "failed to load table")
//	}
//
//	// Classify a table problem
//	return errors.NewConfigurationError("policy references unknown axis %q", name)
//
//	// Check errors
//	if errors.IsConfigurationError(err) {
//	    // table is structurally broken, do not retry
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is             = crdb.Is
	IsAny          = crdb.IsAny
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Assertions
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Sentinel errors for condax.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrConfiguration indicates a structurally invalid domain table:
	// unknown axes or values, overlapping policy lists, out-of-range limits.
	// Always fatal for the domain that produced it.
	ErrConfiguration = New("invalid configuration")

	// ErrInvalidInput indicates the sampler was handed an unusable option
	// set: no values, or a non-positive weight.
	ErrInvalidInput = New("invalid input")

	// ErrNotFound indicates the requested domain, axis or archetype does not exist
	ErrNotFound = New("not found")

	// ErrConflict indicates a name is already taken (e.g., duplicate domain)
	ErrConflict = New("conflict")
)

// IsConfigurationError checks if an error is or wraps ErrConfiguration
func IsConfigurationError(err error) bool {
	return err != nil && Is(err, ErrConfiguration)
}

// IsInvalidInputError checks if an error is or wraps ErrInvalidInput
func IsInvalidInputError(err error) bool {
	return err != nil && Is(err, ErrInvalidInput)
}

// IsNotFoundError checks if an error is or wraps ErrNotFound
func IsNotFoundError(err error) bool {
	return err != nil && Is(err, ErrNotFound)
}

// IsConflictError checks if an error is or wraps ErrConflict
func IsConflictError(err error) bool {
	return err != nil && Is(err, ErrConflict)
}

// NewConfigurationError creates a configuration error with a formatted message
func NewConfigurationError(format string, args ...interface{}) error {
	return Wrap(ErrConfiguration, Newf(format, args...).Error())
}

// NewInvalidInputError creates an invalid-input error with a formatted message
func NewInvalidInputError(format string, args ...interface{}) error {
	return Wrap(ErrInvalidInput, Newf(format, args...).Error())
}

// NewNotFoundError creates a not-found error with a formatted message
func NewNotFoundError(format string, args ...interface{}) error {
	return Wrap(ErrNotFound, Newf(format, args...).Error())
}

// NewConflictError creates a conflict error with a formatted message
func NewConflictError(format string, args ...interface{}) error {
	return Wrap(ErrConflict, Newf(format, args...).Error())
}

// WrapConfiguration marks an existing error as a configuration error,
// keeping its message and adding context.
func WrapConfiguration(err error, context string) error {
	if err == nil {
		return nil
	}
	return Wrap(Wrap(ErrConfiguration, err.Error()), context)
}
