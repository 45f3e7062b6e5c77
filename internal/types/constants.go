package types

import (
	"errors"
	"time"
)

const (
	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	// UserAgent is the user agent string
	UserAgent = "lampyrid-go/1.0.0"

	// APIPrefix is the Firefly III API path prefix
	APIPrefix = "/api/v1"
)

// Common errors
var (
	// ErrNotAuthenticated is returned when no credential is configured
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrAuthExpired is returned when the upstream rejects the credential
	ErrAuthExpired = errors.New("credential expired or invalid")

	// ErrNotFound is returned when a resource is absent upstream
	ErrNotFound = errors.New("resource not found")

	// ErrRateLimited is returned when the upstream rate limits us
	ErrRateLimited = errors.New("rate limited")

	// ErrTimeout is returned on request timeout
	ErrTimeout = errors.New("request timeout")
)
