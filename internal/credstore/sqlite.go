package credstore

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/denissa4/ads-manager/pkg/encrypter"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using SQLite. Refresh tokens are
// encrypted with AES-GCM before they touch disk.
type SQLiteStore struct {
	db  *sql.DB
	enc encrypter.Encrypter
}

// NewSQLite creates a new SQLite-backed credential store.
func NewSQLite(dbPath string, enc encrypter.Encrypter) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	// Open database with WAL mode for better concurrency.
	dsn := dbPath + "?_journal=WAL&_sync=NORMAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	store := &SQLiteStore{db: db, enc: enc}
	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	query := `
	PRAGMA busy_timeout = 5000;
	CREATE TABLE IF NOT EXISTS credentials (
		user_id TEXT PRIMARY KEY,
		customer_id TEXT NOT NULL,
		refresh_token_enc TEXT NOT NULL,
		email TEXT,
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	);
	`
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Get retrieves and decrypts the credentials for a user.
func (s *SQLiteStore) Get(ctx context.Context, userID string) (*Credentials, error) {
	query := `
		SELECT user_id, customer_id, refresh_token_enc, email, created_at, updated_at
		FROM credentials WHERE user_id = ?`

	row := s.db.QueryRowContext(ctx, query, userID)

	var creds Credentials
	var tokenEnc string
	var email sql.NullString
	var createdAt, updatedAt int64

	err := row.Scan(&creds.UserID, &creds.CustomerID, &tokenEnc, &email, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan credentials row: %w", err)
	}

	token, err := s.enc.Decrypt(tokenEnc)
	if err != nil {
		return nil, fmt.Errorf("decrypt refresh token: %w", err)
	}

	creds.RefreshToken = token
	creds.Email = email.String
	creds.CreatedAt = time.Unix(createdAt, 0)
	creds.UpdatedAt = time.Unix(updatedAt, 0)

	return &creds, nil
}

// Put encrypts the refresh token and upserts the credentials.
func (s *SQLiteStore) Put(ctx context.Context, creds *Credentials) error {
	tokenEnc, err := s.enc.Encrypt(creds.RefreshToken)
	if err != nil {
		return fmt.Errorf("encrypt refresh token: %w", err)
	}

	query := `
	INSERT INTO credentials (user_id, customer_id, refresh_token_enc, email, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?)
	ON CONFLICT(user_id) DO UPDATE SET
		customer_id = excluded.customer_id,
		refresh_token_enc = excluded.refresh_token_enc,
		email = excluded.email,
		updated_at = excluded.updated_at`

	var email interface{}
	if creds.Email != "" {
		email = creds.Email
	}

	now := time.Now().Unix()
	_, err = s.db.ExecContext(ctx, query,
		creds.UserID, creds.CustomerID, tokenEnc, email, now, now,
	)
	if err != nil {
		return fmt.Errorf("upsert credentials: %w", err)
	}
	return nil
}

// Delete removes the credentials for a user.
func (s *SQLiteStore) Delete(ctx context.Context, userID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM credentials WHERE user_id = ?`, userID)
	if err != nil {
		return fmt.Errorf("delete credentials: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	return nil
}
