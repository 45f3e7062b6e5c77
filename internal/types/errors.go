package types

import "fmt"

// UpstreamError represents a 4xx rejection from the upstream API. The
// request reached the server and was refused; it is never retried.
type UpstreamError struct {
	StatusCode int                    `json:"statusCode"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("upstream rejected request (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("upstream rejected request (%d)", e.StatusCode)
}

// UnavailableError represents a 5xx or transport-level failure. Safe to
// retry with backoff; the retry policy belongs to the caller.
type UnavailableError struct {
	Cause string `json:"cause"`
	Err   error  `json:"-"`
}

func (e *UnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("upstream unavailable (%s): %v", e.Cause, e.Err)
	}
	return fmt.Sprintf("upstream unavailable (%s)", e.Cause)
}

// Unwrap returns the wrapped error
func (e *UnavailableError) Unwrap() error {
	return e.Err
}
