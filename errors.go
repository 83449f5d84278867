// errors.go: structured error handling for quickleaf cache operations
//
// This file provides structured error types using the go-errors library,
// enabling rich error context, categorization, and standardized error codes
// for all cache operations.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package quickleaf

import (
	goerrors "errors"
	"fmt"

	"github.com/agilira/go-errors"
)

// Error codes for quickleaf cache operations
const (
	// Configuration errors
	ErrCodeInvalidConfig   errors.ErrorCode = "QUICKLEAF_INVALID_CONFIG"
	ErrCodeInvalidCapacity errors.ErrorCode = "QUICKLEAF_INVALID_CAPACITY"
	ErrCodeInvalidTTL      errors.ErrorCode = "QUICKLEAF_INVALID_TTL"

	// Lookup/mutation errors
	ErrCodeKeyNotFound  errors.ErrorCode = "QUICKLEAF_KEY_NOT_FOUND"
	ErrCodeEmptyKey     errors.ErrorCode = "QUICKLEAF_EMPTY_KEY"
	ErrCodeInvalidRange errors.ErrorCode = "QUICKLEAF_INVALID_RANGE"

	// Persistence errors
	ErrCodePersistenceUnavailable errors.ErrorCode = "QUICKLEAF_PERSISTENCE_UNAVAILABLE"
	ErrCodeSaveFailed             errors.ErrorCode = "QUICKLEAF_SAVE_FAILED"
	ErrCodeLoadFailed             errors.ErrorCode = "QUICKLEAF_LOAD_FAILED"
	ErrCodeCodecFailure           errors.ErrorCode = "QUICKLEAF_CODEC_FAILURE"

	// Internal errors
	ErrCodeInternalError  errors.ErrorCode = "QUICKLEAF_INTERNAL_ERROR"
	ErrCodePanicRecovered errors.ErrorCode = "QUICKLEAF_PANIC_RECOVERED"
)

// Common error messages
const (
	msgInvalidCapacity        = "invalid capacity: must be greater than 0"
	msgInvalidTTL             = "invalid TTL: must be non-negative"
	msgKeyNotFound            = "key not found in cache"
	msgEmptyKey               = "key cannot be empty"
	msgInvalidRange           = "start_after is not a well-formed key"
	msgPersistenceUnavailable = "durable store could not be opened or migrated"
	msgSaveFailed             = "failed to persist entry to durable store"
	msgLoadFailed             = "failed to reload durable store at startup"
	msgCodecFailure           = "value could not be decoded from its durable representation"
	msgInternalError          = "internal cache error"
	msgPanicRecovered         = "panic recovered in cache operation"
)

// =============================================================================
// CONFIGURATION ERRORS
// =============================================================================

// NewErrInvalidCapacity creates an error for a non-positive capacity
func NewErrInvalidCapacity(capacity int) error {
	return errors.NewWithContext(ErrCodeInvalidCapacity, msgInvalidCapacity, map[string]interface{}{
		"provided_capacity": capacity,
		"minimum_required":  1,
	})
}

// NewErrInvalidTTL creates an error for a negative TTL
func NewErrInvalidTTL(ttl interface{}) error {
	return errors.NewWithContext(ErrCodeInvalidTTL, msgInvalidTTL, map[string]interface{}{
		"provided_ttl": ttl,
	})
}

// =============================================================================
// LOOKUP / MUTATION ERRORS
// =============================================================================

// NewErrKeyNotFound creates the error returned by Remove for an absent key
func NewErrKeyNotFound(key string) error {
	return errors.NewWithField(ErrCodeKeyNotFound, msgKeyNotFound, "key", key)
}

// NewErrEmptyKey creates an error for an empty key where one isn't allowed
func NewErrEmptyKey(operation string) error {
	return errors.NewWithField(ErrCodeEmptyKey, msgEmptyKey, "operation", operation)
}

// NewErrInvalidRange creates the error returned by List for a malformed
// StartAfter key
func NewErrInvalidRange(startAfter string) error {
	return errors.NewWithField(ErrCodeInvalidRange, msgInvalidRange, "start_after", startAfter)
}

// =============================================================================
// PERSISTENCE ERRORS
// =============================================================================

// NewErrPersistenceUnavailable creates an error for a durable store that
// cannot be opened or migrated at construction time
func NewErrPersistenceUnavailable(path string, cause error) error {
	return errors.Wrap(cause, ErrCodePersistenceUnavailable, msgPersistenceUnavailable).
		WithContext("path", path)
}

// NewErrSaveFailed creates an error when the write-behind worker cannot
// persist a queued write
func NewErrSaveFailed(key string, cause error) error {
	return errors.Wrap(cause, ErrCodeSaveFailed, msgSaveFailed).
		WithContext("key", key).
		AsRetryable()
}

// NewErrLoadFailed creates an error when the durable store cannot be
// scanned during crash recovery
func NewErrLoadFailed(path string, cause error) error {
	return errors.Wrap(cause, ErrCodeLoadFailed, msgLoadFailed).
		WithContext("path", path)
}

// NewErrCodecFailure creates an error for a row whose blob cannot be decoded
func NewErrCodecFailure(key string, cause error) error {
	return errors.Wrap(cause, ErrCodeCodecFailure, msgCodecFailure).
		WithContext("key", key)
}

// =============================================================================
// INTERNAL ERRORS
// =============================================================================

// NewErrInternal creates a generic internal error
func NewErrInternal(operation string, cause error) error {
	if cause != nil {
		return errors.Wrap(cause, ErrCodeInternalError, msgInternalError).
			WithContext("operation", operation).
			WithSeverity("warning")
	}
	return errors.NewWithField(ErrCodeInternalError, msgInternalError, "operation", operation).
		WithSeverity("warning")
}

// NewErrPanicRecovered creates an error for a recovered panic
func NewErrPanicRecovered(operation string, panicValue interface{}) error {
	return errors.NewWithContext(ErrCodePanicRecovered, msgPanicRecovered, map[string]interface{}{
		"operation":   operation,
		"panic_value": fmt.Sprintf("%v", panicValue),
	}).WithSeverity("critical")
}

// =============================================================================
// ERROR CHECKING HELPERS
// =============================================================================

// IsNotFound checks if err is a key-not-found error
func IsNotFound(err error) bool {
	return errors.HasCode(err, ErrCodeKeyNotFound)
}

// IsEmptyKey checks if err is an empty-key error
func IsEmptyKey(err error) bool {
	return errors.HasCode(err, ErrCodeEmptyKey)
}

// IsInvalidRange checks if err is a malformed-StartAfter error
func IsInvalidRange(err error) bool {
	return errors.HasCode(err, ErrCodeInvalidRange)
}

// IsPersistenceUnavailable checks if err is a construction-time persistence
// error
func IsPersistenceUnavailable(err error) bool {
	return errors.HasCode(err, ErrCodePersistenceUnavailable)
}

// IsCodecFailure checks if err is a decode failure encountered during
// recovery
func IsCodecFailure(err error) bool {
	return errors.HasCode(err, ErrCodeCodecFailure)
}

// IsConfigError checks if err is a configuration error
func IsConfigError(err error) bool {
	if err == nil {
		return false
	}
	var coder errors.ErrorCoder
	if goerrors.As(err, &coder) {
		code := coder.ErrorCode()
		return code == ErrCodeInvalidCapacity || code == ErrCodeInvalidTTL || code == ErrCodeInvalidConfig
	}
	return false
}

// IsPersistenceError checks if err is any persistence-related error
func IsPersistenceError(err error) bool {
	if err == nil {
		return false
	}
	var coder errors.ErrorCoder
	if goerrors.As(err, &coder) {
		code := coder.ErrorCode()
		return code == ErrCodePersistenceUnavailable || code == ErrCodeSaveFailed ||
			code == ErrCodeLoadFailed || code == ErrCodeCodecFailure
	}
	return false
}

// IsRetryable checks if err can be retried
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	var retryable errors.Retryable
	if goerrors.As(err, &retryable) {
		return retryable.IsRetryable()
	}
	return false
}

// GetErrorCode extracts the error code from err, if any
func GetErrorCode(err error) errors.ErrorCode {
	if err == nil {
		return ""
	}
	var coder errors.ErrorCoder
	if goerrors.As(err, &coder) {
		return coder.ErrorCode()
	}
	return ""
}

// GetErrorContext extracts structured context from err, if any
func GetErrorContext(err error) map[string]interface{} {
	if err == nil {
		return nil
	}
	var qlErr *errors.Error
	if goerrors.As(err, &qlErr) {
		return qlErr.Context
	}
	return nil
}
