// ABOUTME: Tests for access token store functionality
// ABOUTME: Covers creation, digest lookup, listing and revocation

package store

import (
	"context"
	"errors"
	"testing"
)

func TestCreateAccessToken(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	token := &AccessToken{
		Digest:       "abc123",
		Label:        "claude-desktop",
		Capabilities: []string{"contacts", "calendars"},
	}
	if err := store.CreateAccessToken(ctx, token); err != nil {
		t.Fatalf("CreateAccessToken failed: %v", err)
	}
	if token.ID == "" {
		t.Error("expected ID to be set")
	}
	if token.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}

	// Duplicate digest is rejected
	dup := &AccessToken{Digest: "abc123", Label: "other"}
	if err := store.CreateAccessToken(ctx, dup); err == nil {
		t.Error("expected error for duplicate digest")
	}
}

func TestGetAccessTokenByDigest(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	token := &AccessToken{Digest: "deadbeef", Label: "ops"}
	if err := store.CreateAccessToken(ctx, token); err != nil {
		t.Fatalf("CreateAccessToken failed: %v", err)
	}

	got, err := store.GetAccessTokenByDigest(ctx, "deadbeef")
	if err != nil {
		t.Fatalf("GetAccessTokenByDigest failed: %v", err)
	}
	if got.Label != "ops" {
		t.Errorf("expected label %q, got %q", "ops", got.Label)
	}
	if len(got.Capabilities) != 0 {
		t.Errorf("expected no capabilities, got %v", got.Capabilities)
	}

	if _, err := store.GetAccessTokenByDigest(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestAccessTokenCapabilitiesRoundTrip(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	token := &AccessToken{Digest: "d1", Label: "scoped", Capabilities: []string{"accounts", "payments"}}
	if err := store.CreateAccessToken(ctx, token); err != nil {
		t.Fatalf("CreateAccessToken failed: %v", err)
	}

	got, err := store.GetAccessTokenByDigest(ctx, "d1")
	if err != nil {
		t.Fatalf("GetAccessTokenByDigest failed: %v", err)
	}
	if len(got.Capabilities) != 2 || got.Capabilities[0] != "accounts" || got.Capabilities[1] != "payments" {
		t.Errorf("unexpected capabilities: %v", got.Capabilities)
	}
}

func TestDeleteAccessToken(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	token := &AccessToken{Digest: "d2", Label: "temp"}
	if err := store.CreateAccessToken(ctx, token); err != nil {
		t.Fatalf("CreateAccessToken failed: %v", err)
	}

	if err := store.DeleteAccessToken(ctx, token.ID); err != nil {
		t.Fatalf("DeleteAccessToken failed: %v", err)
	}
	if _, err := store.GetAccessTokenByDigest(ctx, "d2"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	if err := store.DeleteAccessToken(ctx, token.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for second delete, got %v", err)
	}
}

func TestListAccessTokens(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	for _, tok := range []*AccessToken{
		{Digest: "d1", Label: "first"},
		{Digest: "d2", Label: "second"},
	} {
		if err := store.CreateAccessToken(ctx, tok); err != nil {
			t.Fatalf("CreateAccessToken failed: %v", err)
		}
	}

	tokens, err := store.ListAccessTokens(ctx)
	if err != nil {
		t.Fatalf("ListAccessTokens failed: %v", err)
	}
	if len(tokens) != 2 {
		t.Errorf("expected 2 tokens, got %d", len(tokens))
	}
}
