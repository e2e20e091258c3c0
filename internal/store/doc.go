// Package store provides persistent storage for ghl-gateway using SQLite.
//
// # Architecture
//
// The store package uses an interface-driven architecture:
//
//   - TenantStore: CRUD over tenant credential records (GHL sub-accounts)
//   - AccessTokenStore: MCP access token management
//
// SQLiteStore implements both interfaces in a single struct. The store is
// injected into the tenant resolver, the tool packs, and the admin API; it
// is never reached through a package-level singleton.
//
// # Data Models
//
//   - TenantCredential: stored API key plus metadata for one sub-account.
//     At most one record is flagged default; UpsertTenant and
//     SetDefaultTenant clear competing flags inside the same transaction.
//   - AccessToken: MCP access token, persisted as a SHA-256 digest with an
//     optional capability list scoping it to specific tool packs.
//
// # SQLite Configuration
//
// The store uses SQLite with WAL mode for concurrent reads:
//
//	PRAGMA journal_mode=WAL;
//
// Schema creation is idempotent and runs on every open.
//
// # Error Handling
//
// ErrNotFound is returned when a requested entity does not exist. All
// methods accept context.Context for cancellation support.
//
// # Testing
//
// Use NewMockStore() for unit tests, or NewSQLiteStore with a t.TempDir()
// path for integration tests against real SQLite.
package store
