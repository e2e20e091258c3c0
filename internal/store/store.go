// ABOUTME: Store interfaces and data types for ghl-gateway persistence
// ABOUTME: Defines TenantCredential, AccessToken and the store interfaces

package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// Tenant kinds. Informational only; resolution does not depend on them.
const (
	KindAgency     = "agency"
	KindSubAccount = "sub_account"
)

// TenantCredential holds the stored API credential for one GHL sub-account.
// The ID is the GHL location ID and is the primary key.
type TenantCredential struct {
	ID        string
	Name      string
	APIKey    string
	Kind      string // "agency" or "sub_account"
	IsDefault bool
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TenantStore defines CRUD over tenant credential records.
// At most one record has IsDefault set at any time; implementations
// must clear the flag on all other records when setting it.
type TenantStore interface {
	UpsertTenant(ctx context.Context, cred *TenantCredential) error
	GetTenant(ctx context.Context, id string) (*TenantCredential, error)
	GetTenantByName(ctx context.Context, name string) (*TenantCredential, error)
	GetDefaultTenant(ctx context.Context) (*TenantCredential, error)
	SetDefaultTenant(ctx context.Context, id string) error
	UpdateTenantAPIKey(ctx context.Context, id, apiKey string) error
	DeleteTenant(ctx context.Context, id string) error
	ListTenants(ctx context.Context) ([]*TenantCredential, error)
}

// AccessToken is an MCP access token. Only the SHA-256 digest of the
// token is stored; the plaintext is shown once at creation time.
type AccessToken struct {
	ID           string
	Digest       string // hex-encoded SHA-256 of the token
	Label        string
	Capabilities []string // pack IDs this token may use; empty = all
	CreatedAt    time.Time
}

// AccessTokenStore defines methods for managing MCP access tokens.
type AccessTokenStore interface {
	CreateAccessToken(ctx context.Context, token *AccessToken) error
	GetAccessTokenByDigest(ctx context.Context, digest string) (*AccessToken, error)
	ListAccessTokens(ctx context.Context) ([]*AccessToken, error)
	DeleteAccessToken(ctx context.Context, id string) error
}

// Store combines all store interfaces implemented by SQLiteStore.
type Store interface {
	TenantStore
	AccessTokenStore
	Close() error
}
