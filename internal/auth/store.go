// Package auth persists access tokens encrypted at rest. Tokens are sealed
// with AES-256-GCM under a key supplied by the operator; rotating the key
// invalidates every stored token, which forces re-authentication.
package auth

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/lampyrid/lampyrid-go/internal/types"
	"github.com/pkg/errors"
)

// Store holds an encrypted token on disk and serves it as a credential
// source. Safe for concurrent use.
type Store struct {
	mu   sync.RWMutex
	path string
	gcm  cipher.AEAD

	// cached decrypted token; cleared on Rotate
	token string
}

// NewStore creates a store writing to path, sealed under the given secret.
// The secret is stretched to a 256-bit key; it is never written to disk.
func NewStore(path, secret string) (*Store, error) {
	if path == "" {
		return nil, errors.New("store path is required")
	}
	if secret == "" {
		return nil, errors.New("encryption secret is required")
	}

	key := sha256.Sum256([]byte(secret))
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize cipher")
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize GCM")
	}

	return &Store{path: path, gcm: gcm}, nil
}

// Save encrypts and persists the token
func (s *Store) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	nonce := make([]byte, s.gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return errors.Wrap(err, "failed to generate nonce")
	}

	sealed := s.gcm.Seal(nonce, nonce, []byte(token), nil)
	encoded := base64.StdEncoding.EncodeToString(sealed)

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return errors.Wrap(err, "failed to create credential directory")
	}
	if err := os.WriteFile(s.path, []byte(encoded), 0600); err != nil {
		return errors.Wrap(err, "failed to write credential file")
	}

	s.token = token
	return nil
}

// Load decrypts the stored token. A store sealed under a different secret
// fails authentication here.
func (s *Store) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

func (s *Store) loadLocked() (string, error) {
	if s.token != "" {
		return s.token, nil
	}

	encoded, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", types.ErrNotAuthenticated
		}
		return "", errors.Wrap(err, "failed to read credential file")
	}

	sealed, err := base64.StdEncoding.DecodeString(string(encoded))
	if err != nil {
		return "", errors.Wrap(err, "credential file is corrupt")
	}
	if len(sealed) < s.gcm.NonceSize() {
		return "", errors.New("credential file is corrupt")
	}

	nonce, ciphertext := sealed[:s.gcm.NonceSize()], sealed[s.gcm.NonceSize():]
	plaintext, err := s.gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		// wrong key or tampered file
		return "", types.ErrNotAuthenticated
	}

	s.token = string(plaintext)
	return s.token, nil
}

// Rotate replaces the stored token atomically with respect to readers
func (s *Store) Rotate(token string) error {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()
	return s.Save(token)
}

// Clear removes the stored token
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "failed to remove credential file")
	}
	return nil
}

// Token implements types.CredentialSource. It is read fresh on every
// request, so a rotated token takes effect without restarting the client.
func (s *Store) Token() (string, error) {
	return s.Load()
}

var _ types.CredentialSource = (*Store)(nil)
