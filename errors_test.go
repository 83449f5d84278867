// errors_test.go: unit tests for structured error construction and helpers
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package quickleaf

import "testing"

func TestNewErrKeyNotFound(t *testing.T) {
	err := NewErrKeyNotFound("missing")
	if !IsNotFound(err) {
		t.Error("expected IsNotFound true")
	}
	if GetErrorCode(err) != ErrCodeKeyNotFound {
		t.Errorf("expected ErrCodeKeyNotFound, got %v", GetErrorCode(err))
	}

	ctx := GetErrorContext(err)
	if ctx["key"] != "missing" {
		t.Errorf("expected context key=missing, got %v", ctx)
	}
}

func TestNewErrInvalidCapacity(t *testing.T) {
	err := NewErrInvalidCapacity(-5)
	if !IsConfigError(err) {
		t.Error("expected IsConfigError true")
	}
	if GetErrorCode(err) != ErrCodeInvalidCapacity {
		t.Errorf("expected ErrCodeInvalidCapacity, got %v", GetErrorCode(err))
	}
}

func TestNewErrPersistenceUnavailable(t *testing.T) {
	cause := NewErrInternal("open", nil)
	err := NewErrPersistenceUnavailable("/tmp/cache.db", cause)

	if !IsPersistenceUnavailable(err) {
		t.Error("expected IsPersistenceUnavailable true")
	}
	if !IsPersistenceError(err) {
		t.Error("expected IsPersistenceError true")
	}
}

func TestNewErrSaveFailed_IsRetryable(t *testing.T) {
	err := NewErrSaveFailed("k", NewErrInternal("write", nil))
	if !IsRetryable(err) {
		t.Error("expected save-failed error to be retryable")
	}
}

func TestIsNotFound_NilError(t *testing.T) {
	if IsNotFound(nil) {
		t.Error("expected IsNotFound(nil) to be false")
	}
}

func TestGetErrorCode_PlainError(t *testing.T) {
	if GetErrorCode(nil) != "" {
		t.Error("expected empty error code for nil error")
	}
}

func TestIsCodecFailure(t *testing.T) {
	err := NewErrCodecFailure("k", NewErrInternal("decode", nil))
	if !IsCodecFailure(err) {
		t.Error("expected IsCodecFailure true")
	}
	if !IsPersistenceError(err) {
		t.Error("expected codec failure classified as a persistence error")
	}
}
