// ABOUTME: MCP access token lookup backed by the persistent store.
// ABOUTME: Tokens are stored as SHA-256 digests; the raw token is shown once at mint time.

package mcp

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"github.com/google/uuid"

	"github.com/ghlkit/ghl-gateway/internal/store"
)

// TokenStore validates MCP access tokens against the persistent store.
// Only digests are persisted, so a database leak does not expose usable
// tokens.
type TokenStore struct {
	store store.AccessTokenStore
}

// NewTokenStore creates a token store over the given backing store.
func NewTokenStore(s store.AccessTokenStore) *TokenStore {
	return &TokenStore{store: s}
}

// Digest returns the hex SHA-256 digest used to persist a token.
func Digest(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// Mint creates a new token with the given label and capabilities and
// persists its digest. The returned raw token is not recoverable later.
func (s *TokenStore) Mint(ctx context.Context, label string, capabilities []string) (string, error) {
	raw := uuid.NewString() + uuid.NewString()
	tok := &store.AccessToken{
		Digest:       Digest(raw),
		Label:        label,
		Capabilities: capabilities,
	}
	if err := s.store.CreateAccessToken(ctx, tok); err != nil {
		return "", err
	}
	return raw, nil
}

// Lookup resolves a raw token to its capability list. The second return
// value reports whether the token is valid; a valid token with an empty
// capability list grants access to every tool.
func (s *TokenStore) Lookup(ctx context.Context, token string) ([]string, bool) {
	rec, err := s.store.GetAccessTokenByDigest(ctx, Digest(token))
	if err != nil {
		return nil, false
	}
	return rec.Capabilities, true
}
