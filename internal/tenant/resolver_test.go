// ABOUTME: Tests for tenant resolution precedence
// ABOUTME: Covers stored lookups, default selection, and environment fallback

package tenant

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ghlkit/ghl-gateway/internal/ghl"
	"github.com/ghlkit/ghl-gateway/internal/store"
)

func newTestResolver(t *testing.T, s store.TenantStore) (*Resolver, *http.Request) {
	t.Helper()

	var captured http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = *r
		w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	r, err := NewResolver(Config{
		Store:    s,
		Fallback: Fallback{APIKey: "env-key", LocationID: "env-loc"},
		BaseURL:  srv.URL,
	})
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}
	return r, &captured
}

func seedTenants(t *testing.T, s store.TenantStore) {
	t.Helper()
	ctx := context.Background()
	if err := s.UpsertTenant(ctx, &store.TenantCredential{
		ID: "loc-a", Name: "Agency A", APIKey: "key-a", Kind: store.KindSubAccount,
	}); err != nil {
		t.Fatalf("seed loc-a: %v", err)
	}
	if err := s.UpsertTenant(ctx, &store.TenantCredential{
		ID: "loc-b", Name: "Agency B", APIKey: "key-b", Kind: store.KindSubAccount, IsDefault: true,
	}); err != nil {
		t.Fatalf("seed loc-b: %v", err)
	}
}

func TestResolveExplicitStoredTenant(t *testing.T) {
	s := store.NewMockStore()
	seedTenants(t, s)
	r, captured := newTestResolver(t, s)

	client, err := r.Resolve(context.Background(), "loc-a")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got := client.LocationID(); got != "loc-a" {
		t.Errorf("LocationID = %q, want loc-a", got)
	}

	if _, err := client.Request(context.Background(), http.MethodGet, "/ping", ghl.RequestOptions{}); err != nil {
		t.Fatalf("Request: %v", err)
	}
	if got := captured.Header.Get("Authorization"); got != "Bearer key-a" {
		t.Errorf("Authorization = %q, want Bearer key-a", got)
	}
}

func TestResolveDefaultTenant(t *testing.T) {
	s := store.NewMockStore()
	seedTenants(t, s)
	r, captured := newTestResolver(t, s)

	client, err := r.Resolve(context.Background(), "")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got := client.LocationID(); got != "loc-b" {
		t.Errorf("LocationID = %q, want loc-b", got)
	}

	if _, err := client.Request(context.Background(), http.MethodGet, "/ping", ghl.RequestOptions{}); err != nil {
		t.Fatalf("Request: %v", err)
	}
	if got := captured.Header.Get("Authorization"); got != "Bearer key-b" {
		t.Errorf("Authorization = %q, want Bearer key-b", got)
	}
}

func TestResolveChangedDefault(t *testing.T) {
	s := store.NewMockStore()
	seedTenants(t, s)
	if err := s.SetDefaultTenant(context.Background(), "loc-a"); err != nil {
		t.Fatalf("SetDefaultTenant: %v", err)
	}
	r, _ := newTestResolver(t, s)

	client, err := r.Resolve(context.Background(), "")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got := client.LocationID(); got != "loc-a" {
		t.Errorf("LocationID = %q, want loc-a", got)
	}
}

func TestResolveUnregisteredIDUsesFallbackKey(t *testing.T) {
	s := store.NewMockStore()
	seedTenants(t, s)
	r, captured := newTestResolver(t, s)

	client, err := r.Resolve(context.Background(), "loc-c")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	// The environment key is used but the scope stays with the
	// requested location, not the fallback one.
	if got := client.LocationID(); got != "loc-c" {
		t.Errorf("LocationID = %q, want loc-c", got)
	}

	if _, err := client.Request(context.Background(), http.MethodGet, "/ping", ghl.RequestOptions{}); err != nil {
		t.Fatalf("Request: %v", err)
	}
	if got := captured.Header.Get("Authorization"); got != "Bearer env-key" {
		t.Errorf("Authorization = %q, want Bearer env-key", got)
	}
}

func TestResolveNoDefaultUsesFallbackPair(t *testing.T) {
	s := store.NewMockStore()
	r, captured := newTestResolver(t, s)

	client, err := r.Resolve(context.Background(), "")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got := client.LocationID(); got != "env-loc" {
		t.Errorf("LocationID = %q, want env-loc", got)
	}

	if _, err := client.Request(context.Background(), http.MethodGet, "/ping", ghl.RequestOptions{}); err != nil {
		t.Fatalf("Request: %v", err)
	}
	if got := captured.Header.Get("Authorization"); got != "Bearer env-key" {
		t.Errorf("Authorization = %q, want Bearer env-key", got)
	}
}

type failingStore struct {
	store.TenantStore
}

func (f *failingStore) GetTenant(ctx context.Context, id string) (*store.TenantCredential, error) {
	return nil, errors.New("disk on fire")
}

func TestResolveStoreErrorPropagates(t *testing.T) {
	r, _ := newTestResolver(t, &failingStore{TenantStore: store.NewMockStore()})

	if _, err := r.Resolve(context.Background(), "loc-a"); err == nil {
		t.Fatal("expected error from failing store")
	}
}

func TestNewResolverRequiresStore(t *testing.T) {
	if _, err := NewResolver(Config{}); err == nil {
		t.Fatal("expected error for nil store")
	}
}
