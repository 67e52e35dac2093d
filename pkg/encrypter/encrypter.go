package encrypter

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrInvalidKeySize indicates the key is not 16, 24 or 32 bytes.
	ErrInvalidKeySize = errors.New("encryption key must be 16, 24 or 32 bytes")

	// ErrCiphertextTooShort indicates the ciphertext is shorter than a nonce.
	ErrCiphertextTooShort = errors.New("ciphertext too short")
)

// Encrypter encrypts and decrypts small secrets (refresh tokens) for
// at-rest storage. Implementations must be safe for concurrent use.
type Encrypter interface {
	// Encrypt returns an opaque base64 string containing nonce + ciphertext.
	Encrypt(plaintext string) (string, error)

	// Decrypt reverses Encrypt. Tampered input fails the authentication
	// check and returns an error rather than corrupted plaintext.
	Decrypt(encoded string) (string, error)
}

type aesGCM struct {
	aead cipher.AEAD
}

// New creates an AES-GCM Encrypter from a raw key.
func New(key []byte) (Encrypter, error) {
	switch len(key) {
	case 16, 24, 32:
	default:
		return nil, ErrInvalidKeySize
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return &aesGCM{aead: aead}, nil
}

func (e *aesGCM) Encrypt(plaintext string) (string, error) {
	// Fresh random nonce per write.
	nonce := make([]byte, e.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	sealed := e.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

func (e *aesGCM) Decrypt(encoded string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("failed to decode ciphertext: %w", err)
	}

	if len(raw) < e.aead.NonceSize() {
		return "", ErrCiphertextTooShort
	}

	nonce, ciphertext := raw[:e.aead.NonceSize()], raw[e.aead.NonceSize():]
	plaintext, err := e.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt: %w", err)
	}

	return string(plaintext), nil
}
