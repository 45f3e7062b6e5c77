package firefly

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePagination(t *testing.T) {
	// Zero means unset and passes through for upstream defaults
	assert.NoError(t, validatePagination(0, 0))
	assert.NoError(t, validatePagination(1, 1))
	assert.NoError(t, validatePagination(3, maxPageLimit))

	var vErr *ValidationError

	err := validatePagination(-1, 0)
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "page", vErr.Field)
	assert.Equal(t, "must not be negative", vErr.Reason)

	err = validatePagination(0, -5)
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "limit", vErr.Field)
	assert.Equal(t, "must not be negative", vErr.Reason)

	err = validatePagination(0, maxPageLimit+1)
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "limit", vErr.Field)
	assert.Equal(t, "must not exceed 500", vErr.Reason)
}
