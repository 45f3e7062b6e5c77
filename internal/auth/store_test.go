package auth

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lampyrid/lampyrid-go/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials")

	store, err := NewStore(path, "test-secret")
	require.NoError(t, err)

	require.NoError(t, store.Save("my-access-token"))

	token, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "my-access-token", token)

	// A fresh store with the same secret reads the same file
	reopened, err := NewStore(path, "test-secret")
	require.NoError(t, err)
	token, err = reopened.Load()
	require.NoError(t, err)
	assert.Equal(t, "my-access-token", token)
}

func TestStore_TokenNotStoredInPlaintext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials")

	store, err := NewStore(path, "test-secret")
	require.NoError(t, err)
	require.NoError(t, store.Save("super-secret-token"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "super-secret-token")
}

func TestStore_WrongSecretFailsAuthentication(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials")

	store, err := NewStore(path, "original-secret")
	require.NoError(t, err)
	require.NoError(t, store.Save("my-access-token"))

	// Rotating the sealing secret invalidates every stored token
	reopened, err := NewStore(path, "rotated-secret")
	require.NoError(t, err)

	_, err = reopened.Load()
	assert.ErrorIs(t, err, types.ErrNotAuthenticated)
}

func TestStore_MissingFile(t *testing.T) {
	store, err := NewStore(filepath.Join(t.TempDir(), "absent"), "secret")
	require.NoError(t, err)

	_, err = store.Load()
	assert.ErrorIs(t, err, types.ErrNotAuthenticated)
}

func TestStore_Rotate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials")

	store, err := NewStore(path, "secret")
	require.NoError(t, err)
	require.NoError(t, store.Save("old-token"))

	require.NoError(t, store.Rotate("new-token"))

	token, err := store.Token()
	require.NoError(t, err)
	assert.Equal(t, "new-token", token)
}

func TestStore_Clear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials")

	store, err := NewStore(path, "secret")
	require.NoError(t, err)
	require.NoError(t, store.Save("token"))
	require.NoError(t, store.Clear())

	_, err = store.Token()
	assert.ErrorIs(t, err, types.ErrNotAuthenticated)

	// Clearing twice is fine
	assert.NoError(t, store.Clear())
}

func TestNewStore_Validation(t *testing.T) {
	_, err := NewStore("", "secret")
	assert.Error(t, err)

	_, err = NewStore("/tmp/creds", "")
	assert.Error(t, err)
}
