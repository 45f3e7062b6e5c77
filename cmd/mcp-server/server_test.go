package main

import (
	"testing"

	"github.com/lampyrid/lampyrid-go/pkg/firefly"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestServerInitialization verifies that the server can initialize without panicking.
// This catches jsonschema validation errors and other startup issues.
func TestServerInitialization(t *testing.T) {
	client := &firefly.Client{}

	impl := &mcp.Implementation{
		Name:    "lampyrid",
		Version: serverVersion,
	}

	server := mcp.NewServer(impl, nil)

	// This should not panic - if it does, the test fails
	// This catches jsonschema tag errors, tool registration issues, etc.
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("Server initialization panicked: %v", r)
		}
	}()

	err := registerTools(server, &fireflyTools{client: client})
	require.NoError(t, err)
}

func TestRegisterTools_AllToolsPresent(t *testing.T) {
	server := mcp.NewServer(&mcp.Implementation{Name: "lampyrid", Version: serverVersion}, nil)

	err := registerTools(server, &fireflyTools{client: &firefly.Client{}})
	require.NoError(t, err)
}

func TestRegisterEntries_DuplicateNameFailsStartup(t *testing.T) {
	server := mcp.NewServer(&mcp.Implementation{Name: "lampyrid", Version: serverVersion}, nil)

	entries := toolEntries(server, &fireflyTools{client: &firefly.Client{}})
	require.NotEmpty(t, entries)

	// A second entry under an already-registered name must fail the whole
	// registration, and its add must never run.
	added := false
	entries = append(entries, toolEntry{
		name: entries[0].name,
		add:  func() { added = true },
	})

	err := registerEntries(entries)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate tool name")
	assert.Contains(t, err.Error(), entries[0].name)
	assert.False(t, added)
}

func TestSlogAdapter_Levels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", ""} {
		adapter := newSlogAdapter(level)
		assert.NotNil(t, adapter)

		// None of these should panic
		adapter.Debug("debug message", "key", "value")
		adapter.Info("info message", "key", "value")
		adapter.Warn("warn message", "key", "value")
		adapter.Error("error message", "key", "value")
	}
}
