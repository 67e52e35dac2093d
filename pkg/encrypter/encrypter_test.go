package encrypter

import (
	"encoding/base64"
	"strings"
	"testing"
)

func TestEncrypter_RoundTrip(t *testing.T) {
	enc, err := New([]byte("0123456789abcdef0123456789abcdef"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []string{
		"1//0abcRefreshToken",
		"",
		"token with spaces and unicode ✓",
	}

	for _, plaintext := range cases {
		sealed, err := enc.Encrypt(plaintext)
		if err != nil {
			t.Fatalf("Encrypt(%q) failed: %v", plaintext, err)
		}

		got, err := enc.Decrypt(sealed)
		if err != nil {
			t.Fatalf("Decrypt failed: %v", err)
		}
		if got != plaintext {
			t.Errorf("round trip mismatch: got %q, want %q", got, plaintext)
		}
	}
}

func TestEncrypter_NonceVariesPerWrite(t *testing.T) {
	enc, _ := New([]byte("0123456789abcdef"))

	a, _ := enc.Encrypt("same plaintext")
	b, _ := enc.Encrypt("same plaintext")
	if a == b {
		t.Error("expected distinct ciphertexts for repeated writes")
	}
}

func TestEncrypter_TamperedCiphertextFailsClosed(t *testing.T) {
	enc, _ := New([]byte("0123456789abcdef0123456789abcdef"))

	sealed, err := enc.Encrypt("secret refresh token")
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	raw, _ := base64.StdEncoding.DecodeString(sealed)
	raw[len(raw)-1] ^= 0xff
	tampered := base64.StdEncoding.EncodeToString(raw)

	if _, err := enc.Decrypt(tampered); err == nil {
		t.Error("expected tampered ciphertext to fail decryption")
	}
}

func TestEncrypter_BadInput(t *testing.T) {
	enc, _ := New([]byte("0123456789abcdef"))

	t.Run("not base64", func(t *testing.T) {
		if _, err := enc.Decrypt("%%%not-base64%%%"); err == nil {
			t.Error("expected error for invalid base64")
		}
	})

	t.Run("too short", func(t *testing.T) {
		short := base64.StdEncoding.EncodeToString([]byte("ab"))
		if _, err := enc.Decrypt(short); err == nil || !strings.Contains(err.Error(), "too short") {
			t.Errorf("expected too-short error, got %v", err)
		}
	})

	t.Run("bad key size", func(t *testing.T) {
		if _, err := New([]byte("short")); err != ErrInvalidKeySize {
			t.Errorf("expected ErrInvalidKeySize, got %v", err)
		}
	})
}
