// ABOUTME: Tests for the in-memory mock store
// ABOUTME: Verifies behavior parity with the SQLite store for tenant operations

package store

import (
	"context"
	"errors"
	"testing"
)

func TestMockStoreDefaultInvariant(t *testing.T) {
	store := NewMockStore()
	ctx := context.Background()

	if err := store.UpsertTenant(ctx, &TenantCredential{ID: "a", Name: "Alpha", APIKey: "ka", IsDefault: true}); err != nil {
		t.Fatalf("UpsertTenant failed: %v", err)
	}
	if err := store.UpsertTenant(ctx, &TenantCredential{ID: "b", Name: "Beta", APIKey: "kb", IsDefault: true}); err != nil {
		t.Fatalf("UpsertTenant failed: %v", err)
	}

	def, err := store.GetDefaultTenant(ctx)
	if err != nil {
		t.Fatalf("GetDefaultTenant failed: %v", err)
	}
	if def.ID != "b" {
		t.Errorf("expected default b, got %s", def.ID)
	}

	if err := store.SetDefaultTenant(ctx, "a"); err != nil {
		t.Fatalf("SetDefaultTenant failed: %v", err)
	}
	def, _ = store.GetDefaultTenant(ctx)
	if def.ID != "a" {
		t.Errorf("expected default a, got %s", def.ID)
	}
	b, _ := store.GetTenant(ctx, "b")
	if b.IsDefault {
		t.Error("expected b to lose its default flag")
	}
}

func TestMockStoreFuzzyNameMatch(t *testing.T) {
	store := NewMockStore()
	ctx := context.Background()

	for _, cred := range []*TenantCredential{
		{ID: "1", Name: "Dr. Smith Dental", APIKey: "k1"},
		{ID: "2", Name: "Bayside Dental Group", APIKey: "k2"},
	} {
		if err := store.UpsertTenant(ctx, cred); err != nil {
			t.Fatalf("UpsertTenant failed: %v", err)
		}
	}

	got, err := store.GetTenantByName(ctx, "DENTAL")
	if err != nil {
		t.Fatalf("GetTenantByName failed: %v", err)
	}
	if got.ID != "2" {
		t.Errorf("expected lexically first match (Bayside), got %s", got.ID)
	}
}

func TestMockStoreReturnsCopies(t *testing.T) {
	store := NewMockStore()
	ctx := context.Background()

	if err := store.UpsertTenant(ctx, &TenantCredential{ID: "a", Name: "Alpha", APIKey: "k"}); err != nil {
		t.Fatalf("UpsertTenant failed: %v", err)
	}

	got, _ := store.GetTenant(ctx, "a")
	got.Name = "mutated"

	again, _ := store.GetTenant(ctx, "a")
	if again.Name != "Alpha" {
		t.Errorf("mock store leaked internal state: %q", again.Name)
	}
}

func TestMockStoreNotFound(t *testing.T) {
	store := NewMockStore()
	ctx := context.Background()

	if _, err := store.GetTenant(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := store.DeleteTenant(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := store.SetDefaultTenant(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
