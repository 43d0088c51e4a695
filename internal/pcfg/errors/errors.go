package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// Document errors
	ErrNotLoaded      = errors.New("no configuration file is loaded")
	ErrEmptySection   = errors.New("section name cannot be empty")
	ErrSectionMissing = errors.New("section not found")
	ErrKeyMissing     = errors.New("key not found")

	// Form errors
	ErrInvalidValue   = errors.New("invalid value")
	ErrUnknownVariant = errors.New("unknown product variant")

	// Card file errors
	ErrEmptyCardPath = errors.New("card file path is empty")

	// File system errors
	ErrFileNotFound     = errors.New("file not found")
	ErrInvalidPath      = errors.New("invalid path")
	ErrPermissionDenied = errors.New("permission denied")

	// History errors
	ErrHistoryDisabled = errors.New("history is disabled")
	ErrSnapshotMissing = errors.New("snapshot not found")

	// Prompt errors
	ErrCancelled = errors.New("cancelled by user")
)

// Wrap wraps an error with additional context
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf wraps an error with formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is checks if the error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As checks if the error can be unwrapped to the target type
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
