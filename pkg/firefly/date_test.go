package firefly

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantDay string
		wantErr bool
	}{
		{name: "date only", input: "2026-08-15", wantDay: "2026-08-15"},
		{name: "rfc3339", input: "2026-08-15T10:30:00+02:00", wantDay: "2026-08-15"},
		{name: "no zone", input: "2026-08-15T10:30:00", wantDay: "2026-08-15"},
		{name: "empty", input: "", wantErr: true},
		{name: "whitespace", input: "   ", wantErr: true},
		{name: "garbage", input: "not-a-date", wantErr: true},
		{name: "wrong order", input: "15-08-2026", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDay, d.String())
		})
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	d := NewDate(time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC))

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-08-15"`, string(raw))

	var parsed Date
	require.NoError(t, json.Unmarshal(raw, &parsed))
	assert.Equal(t, d.String(), parsed.String())
}

func TestDate_UnmarshalNull(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte("null"), &d))
	assert.True(t, d.IsZero())
	assert.Empty(t, d.String())
}

func TestDate_MarshalZero(t *testing.T) {
	raw, err := json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(raw))
}

func TestDate_UnmarshalTimestampFromUpstream(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2026-08-15T00:00:00+01:00"`), &d))
	assert.Equal(t, "2026-08-15", d.String())
}
