package firefly

import (
	"fmt"

	"github.com/google/uuid"
	internalTypes "github.com/lampyrid/lampyrid-go/internal/types"
	"github.com/pkg/errors"
)

// Sentinel errors re-exported from the internal package
var (
	// ErrNotAuthenticated is returned when no credential is configured
	ErrNotAuthenticated = internalTypes.ErrNotAuthenticated

	// ErrAuthExpired is returned when the upstream rejects the credential
	ErrAuthExpired = internalTypes.ErrAuthExpired

	// ErrNotFound is returned when a resource is absent upstream
	ErrNotFound = internalTypes.ErrNotFound

	// ErrRateLimited is returned when the upstream rate limits us
	ErrRateLimited = internalTypes.ErrRateLimited

	// ErrTimeout is returned on request timeout
	ErrTimeout = internalTypes.ErrTimeout
)

// UpstreamError represents a 4xx rejection from the upstream API
type UpstreamError = internalTypes.UpstreamError

// UnavailableError represents a 5xx or transport-level failure
type UnavailableError = internalTypes.UnavailableError

// ValidationError reports malformed caller input. It is produced before any
// network call is issued and is never retried.
type ValidationError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Reason)
}

// DeserializationError reports an upstream payload that did not match the
// expected shape (missing field, malformed amount or date).
type DeserializationError struct {
	Err error
}

// Error implements the error interface
func (e *DeserializationError) Error() string {
	return fmt.Sprintf("failed to decode upstream payload: %v", e.Err)
}

// Unwrap returns the wrapped error
func (e *DeserializationError) Unwrap() error {
	return e.Err
}

// ErrorKind classifies a failure for callers that need a stable taxonomy
// rather than a Go error chain.
type ErrorKind string

const (
	// KindValidation marks malformed caller input
	KindValidation ErrorKind = "validation"

	// KindNotFound marks a resource absent upstream
	KindNotFound ErrorKind = "not_found"

	// KindUpstreamRejected marks an upstream 4xx rejection
	KindUpstreamRejected ErrorKind = "upstream_rejected"

	// KindUpstreamUnavailable marks a 5xx, timeout, or transport failure
	KindUpstreamUnavailable ErrorKind = "upstream_unavailable"

	// KindAuthExpired marks an invalid or expired credential
	KindAuthExpired ErrorKind = "auth_expired"

	// KindInternal marks an unexpected failure inside this layer
	KindInternal ErrorKind = "internal"
)

// ErrorReport is the structured form of a failure handed to callers. The
// internal kind carries a correlation ID instead of raw detail.
type ErrorReport struct {
	Kind          ErrorKind `json:"kind"`
	Message       string    `json:"message"`
	Field         string    `json:"field,omitempty"`
	CorrelationID string    `json:"correlationId,omitempty"`
}

// Report classifies err into an ErrorReport. Anything unrecognized becomes
// an internal report with a fresh correlation ID; the caller is expected to
// log the original error against that ID.
func Report(err error) *ErrorReport {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return &ErrorReport{Kind: KindValidation, Message: vErr.Reason, Field: vErr.Field}
	}

	if errors.Is(err, ErrNotFound) {
		return &ErrorReport{Kind: KindNotFound, Message: "resource not found"}
	}

	if errors.Is(err, ErrAuthExpired) || errors.Is(err, ErrNotAuthenticated) {
		return &ErrorReport{Kind: KindAuthExpired, Message: "credential expired or invalid"}
	}

	var upErr *UpstreamError
	if errors.As(err, &upErr) {
		return &ErrorReport{Kind: KindUpstreamRejected, Message: upErr.Message}
	}

	var unErr *UnavailableError
	if errors.As(err, &unErr) {
		return &ErrorReport{Kind: KindUpstreamUnavailable, Message: unErr.Cause}
	}

	// Rate limiting is transient: callers may retry with backoff.
	if errors.Is(err, ErrRateLimited) {
		return &ErrorReport{Kind: KindUpstreamUnavailable, Message: "rate limited"}
	}

	return &ErrorReport{
		Kind:          KindInternal,
		Message:       "internal error",
		CorrelationID: uuid.New().String(),
	}
}

// IsRetryable reports whether the failure is safe to retry with backoff
func IsRetryable(err error) bool {
	var unErr *UnavailableError
	if errors.As(err, &unErr) {
		return true
	}
	return errors.Is(err, ErrRateLimited) || errors.Is(err, ErrTimeout)
}

// IsAuthError reports whether the failure calls for re-authentication
func IsAuthError(err error) bool {
	return errors.Is(err, ErrAuthExpired) || errors.Is(err, ErrNotAuthenticated)
}

// IsNotFound reports whether the referenced resource is absent upstream
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
