package tokenstore

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
)

const (
	secretFile = "device.secret"
	secretSize = 32
	sealInfo   = "carrot-token-slot"
)

// sealer encrypts slot values with a key derived from a per-device secret
// kept beside the store.
type sealer struct {
	key []byte
}

func newSealer(dataDir string) (*sealer, error) {
	secret, err := loadSecret(filepath.Join(dataDir, secretFile))
	if err != nil {
		return nil, err
	}
	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, secret, nil, []byte(sealInfo)), key); err != nil {
		return nil, fmt.Errorf("%w: deriving key: %v", ErrStorage, err)
	}
	return &sealer{key: key}, nil
}

func loadSecret(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err == nil && len(b) == secretSize {
		return b, nil
	}
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: reading device secret: %v", ErrStorage, err)
	}

	b = make([]byte, secretSize)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, fmt.Errorf("%w: generating device secret: %v", ErrStorage, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("%w: creating data directory: %v", ErrStorage, err)
	}
	if err := os.WriteFile(path, b, 0600); err != nil {
		return nil, fmt.Errorf("%w: writing device secret: %v", ErrStorage, err)
	}
	return b, nil
}

// seal returns nonce||ciphertext. The slot name is bound as associated data.
func (s *sealer) seal(slot string, plaintext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(s.key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	nonce := make([]byte, aead.NonceSize(), aead.NonceSize()+len(plaintext)+aead.Overhead())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("%w: generating nonce: %v", ErrStorage, err)
	}
	return aead.Seal(nonce, nonce, plaintext, []byte(slot)), nil
}

func (s *sealer) open(slot string, blob []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(s.key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if len(blob) < aead.NonceSize() {
		return nil, fmt.Errorf("%w: sealed value too short", ErrStorage)
	}
	nonce, ct := blob[:aead.NonceSize()], blob[aead.NonceSize():]
	plain, err := aead.Open(nil, nonce, ct, []byte(slot))
	if err != nil {
		return nil, fmt.Errorf("%w: opening sealed value: %v", ErrStorage, err)
	}
	return plain, nil
}
