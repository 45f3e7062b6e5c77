package types

import (
	"context"
	"net/http"
	"time"
)

// Logger interface for logging
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// RetryConfig configures retry behavior for transient upstream failures
type RetryConfig struct {
	MaxRetries int           `json:"maxRetries"`
	RetryWait  time.Duration `json:"retryWait"`
	MaxWait    time.Duration `json:"maxWait"`
}

// Hooks provides lifecycle hooks for requests
type Hooks struct {
	OnRequest  func(ctx context.Context, req *http.Request)
	OnResponse func(ctx context.Context, resp *http.Response, duration time.Duration)
	OnError    func(ctx context.Context, err error)
}

// CredentialSource supplies the bearer token attached to every upstream
// request. It is consulted fresh on each call so a credential store can
// rotate tokens without a process restart.
type CredentialSource interface {
	Token() (string, error)
}

// StaticToken is a CredentialSource frozen at construction time.
type StaticToken string

// Token implements CredentialSource
func (t StaticToken) Token() (string, error) {
	if t == "" {
		return "", ErrNotAuthenticated
	}
	return string(t), nil
}
