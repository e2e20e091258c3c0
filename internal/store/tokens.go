// ABOUTME: Access token store methods for the SQLite store
// ABOUTME: Tokens are stored as SHA-256 digests and looked up by digest on MCP requests

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CreateAccessToken persists a new access token record.
// The caller is responsible for only ever storing the digest.
func (s *SQLiteStore) CreateAccessToken(ctx context.Context, token *AccessToken) error {
	if token.ID == "" {
		token.ID = uuid.New().String()
	}
	if token.CreatedAt.IsZero() {
		token.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO access_tokens (id, digest, label, capabilities, created_at) VALUES (?, ?, ?, ?, ?)",
		token.ID,
		token.Digest,
		token.Label,
		strings.Join(token.Capabilities, ","),
		token.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		if isConstraintViolation(err) {
			return fmt.Errorf("access token already exists")
		}
		return fmt.Errorf("inserting access token: %w", err)
	}

	s.logger.Debug("created access token", "id", token.ID, "label", token.Label)
	return nil
}

// GetAccessTokenByDigest looks up a token record by its SHA-256 digest.
// Returns ErrNotFound if no token matches.
func (s *SQLiteStore) GetAccessTokenByDigest(ctx context.Context, digest string) (*AccessToken, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, digest, label, capabilities, created_at FROM access_tokens WHERE digest = ?",
		digest,
	)
	return scanAccessToken(row.Scan)
}

// ListAccessTokens returns all access tokens ordered by creation time.
func (s *SQLiteStore) ListAccessTokens(ctx context.Context) ([]*AccessToken, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, digest, label, capabilities, created_at FROM access_tokens ORDER BY created_at",
	)
	if err != nil {
		return nil, fmt.Errorf("querying access tokens: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var tokens []*AccessToken
	for rows.Next() {
		token, err := scanAccessToken(rows.Scan)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating access token rows: %w", err)
	}
	return tokens, nil
}

// DeleteAccessToken revokes a token by ID.
// Returns ErrNotFound if the token does not exist.
func (s *SQLiteStore) DeleteAccessToken(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM access_tokens WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting access token: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	s.logger.Debug("deleted access token", "id", id)
	return nil
}

func scanAccessToken(scan func(dest ...any) error) (*AccessToken, error) {
	var token AccessToken
	var capabilities string
	var createdAt string

	err := scan(&token.ID, &token.Digest, &token.Label, &capabilities, &createdAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning access token row: %w", err)
	}

	if capabilities != "" {
		token.Capabilities = strings.Split(capabilities, ",")
	}
	if parsed, err := time.Parse(time.RFC3339, createdAt); err == nil {
		token.CreatedAt = parsed
	}
	return &token, nil
}
