// ABOUTME: Mock Store implementation for testing
// ABOUTME: Allows tests to run without SQLite

package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MockStore is an in-memory Store implementation for testing.
type MockStore struct {
	mu      sync.RWMutex
	tenants map[string]*TenantCredential // keyed by tenant ID
	tokens  map[string]*AccessToken      // keyed by token ID
}

// NewMockStore creates a new MockStore.
func NewMockStore() *MockStore {
	return &MockStore{
		tenants: make(map[string]*TenantCredential),
		tokens:  make(map[string]*AccessToken),
	}
}

// UpsertTenant stores a tenant credential, clearing other default flags
// when the new record is marked default.
func (m *MockStore) UpsertTenant(ctx context.Context, cred *TenantCredential) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now().UTC()
	c := *cred
	if existing, ok := m.tenants[c.ID]; ok {
		c.CreatedAt = existing.CreatedAt
	} else if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now
	if c.Kind == "" {
		c.Kind = KindSubAccount
	}

	if c.IsDefault {
		for _, t := range m.tenants {
			t.IsDefault = false
		}
	}
	m.tenants[c.ID] = &c
	return nil
}

// GetTenant retrieves a tenant by ID.
func (m *MockStore) GetTenant(ctx context.Context, id string) (*TenantCredential, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	t, ok := m.tenants[id]
	if !ok {
		return nil, ErrNotFound
	}
	result := *t
	return &result, nil
}

// GetTenantByName finds a tenant by case-insensitive substring match,
// lexically first name winning on ties.
func (m *MockStore) GetTenantByName(ctx context.Context, name string) (*TenantCredential, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var matches []*TenantCredential
	needle := strings.ToLower(name)
	for _, t := range m.tenants {
		if strings.Contains(strings.ToLower(t.Name), needle) {
			matches = append(matches, t)
		}
	}
	if len(matches) == 0 {
		return nil, ErrNotFound
	}
	sort.Slice(matches, func(i, j int) bool {
		return strings.ToLower(matches[i].Name) < strings.ToLower(matches[j].Name)
	})
	result := *matches[0]
	return &result, nil
}

// GetDefaultTenant returns the tenant flagged default.
func (m *MockStore) GetDefaultTenant(ctx context.Context) (*TenantCredential, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, t := range m.tenants {
		if t.IsDefault {
			result := *t
			return &result, nil
		}
	}
	return nil, ErrNotFound
}

// SetDefaultTenant moves the default flag to the given tenant.
func (m *MockStore) SetDefaultTenant(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	target, ok := m.tenants[id]
	if !ok {
		return ErrNotFound
	}
	for _, t := range m.tenants {
		t.IsDefault = false
	}
	target.IsDefault = true
	target.UpdatedAt = time.Now().UTC()
	return nil
}

// UpdateTenantAPIKey rotates a tenant's API key.
func (m *MockStore) UpdateTenantAPIKey(ctx context.Context, id, apiKey string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.tenants[id]
	if !ok {
		return ErrNotFound
	}
	t.APIKey = apiKey
	t.UpdatedAt = time.Now().UTC()
	return nil
}

// DeleteTenant removes a tenant by ID.
func (m *MockStore) DeleteTenant(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.tenants[id]; !ok {
		return ErrNotFound
	}
	delete(m.tenants, id)
	return nil
}

// ListTenants returns all tenants ordered by name.
func (m *MockStore) ListTenants(ctx context.Context) ([]*TenantCredential, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	tenants := make([]*TenantCredential, 0, len(m.tenants))
	for _, t := range m.tenants {
		result := *t
		tenants = append(tenants, &result)
	}
	sort.Slice(tenants, func(i, j int) bool {
		return strings.ToLower(tenants[i].Name) < strings.ToLower(tenants[j].Name)
	})
	return tenants, nil
}

// CreateAccessToken stores an access token record.
func (m *MockStore) CreateAccessToken(ctx context.Context, token *AccessToken) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := *token
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	m.tokens[t.ID] = &t
	*token = t
	return nil
}

// GetAccessTokenByDigest finds a token by digest.
func (m *MockStore) GetAccessTokenByDigest(ctx context.Context, digest string) (*AccessToken, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, t := range m.tokens {
		if t.Digest == digest {
			result := *t
			return &result, nil
		}
	}
	return nil, ErrNotFound
}

// ListAccessTokens returns all tokens ordered by creation time.
func (m *MockStore) ListAccessTokens(ctx context.Context) ([]*AccessToken, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	tokens := make([]*AccessToken, 0, len(m.tokens))
	for _, t := range m.tokens {
		result := *t
		tokens = append(tokens, &result)
	}
	sort.Slice(tokens, func(i, j int) bool {
		return tokens[i].CreatedAt.Before(tokens[j].CreatedAt)
	})
	return tokens, nil
}

// DeleteAccessToken removes a token by ID.
func (m *MockStore) DeleteAccessToken(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.tokens[id]; !ok {
		return ErrNotFound
	}
	delete(m.tokens, id)
	return nil
}

// Close is a no-op for the mock store.
func (m *MockStore) Close() error {
	return nil
}

// Ensure MockStore implements Store.
var _ Store = (*MockStore)(nil)
