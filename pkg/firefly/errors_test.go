package firefly

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport_Classification(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind ErrorKind
	}{
		{
			name: "validation",
			err:  &ValidationError{Field: "amount", Reason: "must be positive"},
			kind: KindValidation,
		},
		{
			name: "not found",
			err:  ErrNotFound,
			kind: KindNotFound,
		},
		{
			name: "wrapped not found",
			err:  errors.Wrap(ErrNotFound, "fetching transaction"),
			kind: KindNotFound,
		},
		{
			name: "auth expired",
			err:  ErrAuthExpired,
			kind: KindAuthExpired,
		},
		{
			name: "not authenticated",
			err:  ErrNotAuthenticated,
			kind: KindAuthExpired,
		},
		{
			name: "upstream rejection",
			err:  &UpstreamError{StatusCode: 422, Message: "duplicate transaction"},
			kind: KindUpstreamRejected,
		},
		{
			name: "upstream unavailable",
			err:  &UnavailableError{Cause: "server error: 503"},
			kind: KindUpstreamUnavailable,
		},
		{
			name: "rate limited",
			err:  ErrRateLimited,
			kind: KindUpstreamUnavailable,
		},
		{
			name: "unknown error",
			err:  errors.New("something unexpected"),
			kind: KindInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Report(tt.err)
			assert.Equal(t, tt.kind, report.Kind)
		})
	}
}

func TestReport_ValidationCarriesField(t *testing.T) {
	report := Report(&ValidationError{Field: "source_id", Reason: "required"})
	assert.Equal(t, "source_id", report.Field)
	assert.Equal(t, "required", report.Message)
	assert.Empty(t, report.CorrelationID)
}

func TestReport_InternalCarriesCorrelationID(t *testing.T) {
	report := Report(errors.New("boom"))
	require.Equal(t, KindInternal, report.Kind)
	assert.NotEmpty(t, report.CorrelationID)
	// The raw message never leaks into the report
	assert.Equal(t, "internal error", report.Message)
}

func TestReport_InternalIDsAreUnique(t *testing.T) {
	first := Report(errors.New("boom"))
	second := Report(errors.New("boom"))
	assert.NotEqual(t, first.CorrelationID, second.CorrelationID)
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(&UnavailableError{Cause: "timeout", Err: ErrTimeout}))
	assert.True(t, IsRetryable(ErrRateLimited))
	assert.False(t, IsRetryable(&UpstreamError{StatusCode: 422, Message: "rejected"}))
	assert.False(t, IsRetryable(&ValidationError{Field: "x", Reason: "y"}))
	assert.False(t, IsRetryable(ErrNotFound))
}

func TestIsAuthError(t *testing.T) {
	assert.True(t, IsAuthError(ErrAuthExpired))
	assert.True(t, IsAuthError(errors.Wrap(ErrNotAuthenticated, "loading token")))
	assert.False(t, IsAuthError(ErrNotFound))
}
