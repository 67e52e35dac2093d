package credstore

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/denissa4/ads-manager/pkg/encrypter"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	enc, err := encrypter.New([]byte("0123456789abcdef0123456789abcdef"))
	if err != nil {
		t.Fatalf("failed to create encrypter: %v", err)
	}

	store, err := NewSQLite(filepath.Join(t.TempDir(), "creds.db"), enc)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func TestSQLiteStore_PutGet(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	creds := &Credentials{
		UserID:       "user-1",
		CustomerID:   "1234567890",
		RefreshToken: "1//refresh-token-secret",
		Email:        "ads@example.com",
	}
	if err := store.Put(ctx, creds); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := store.Get(ctx, "user-1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.CustomerID != creds.CustomerID {
		t.Errorf("expected customer ID %q, got %q", creds.CustomerID, got.CustomerID)
	}
	if got.RefreshToken != creds.RefreshToken {
		t.Errorf("expected refresh token %q, got %q", creds.RefreshToken, got.RefreshToken)
	}
	if got.Email != creds.Email {
		t.Errorf("expected email %q, got %q", creds.Email, got.Email)
	}
}

func TestSQLiteStore_GetNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get(context.Background(), "unknown")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSQLiteStore_PutOverwrites(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	first := &Credentials{UserID: "user-1", CustomerID: "111", RefreshToken: "old"}
	if err := store.Put(ctx, first); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	second := &Credentials{UserID: "user-1", CustomerID: "222", RefreshToken: "new"}
	if err := store.Put(ctx, second); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := store.Get(ctx, "user-1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.CustomerID != "222" || got.RefreshToken != "new" {
		t.Errorf("expected overwritten credentials, got customer=%q token=%q",
			got.CustomerID, got.RefreshToken)
	}
}

func TestSQLiteStore_TokenEncryptedAtRest(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	creds := &Credentials{UserID: "user-1", CustomerID: "111", RefreshToken: "plaintext-token"}
	if err := store.Put(ctx, creds); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	var stored string
	row := store.db.QueryRowContext(ctx, `SELECT refresh_token_enc FROM credentials WHERE user_id = ?`, "user-1")
	if err := row.Scan(&stored); err != nil {
		t.Fatalf("failed to read raw row: %v", err)
	}
	if stored == "plaintext-token" {
		t.Error("refresh token stored in plaintext")
	}
}

func TestSQLiteStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	creds := &Credentials{UserID: "user-1", CustomerID: "111", RefreshToken: "tok"}
	if err := store.Put(ctx, creds); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := store.Delete(ctx, "user-1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	_, err := store.Get(ctx, "user-1")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
