// ABOUTME: Tenant credential store methods for the SQLite store
// ABOUTME: Enforces the single-default invariant inside one transaction

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// UpsertTenant inserts or replaces a tenant credential record keyed by ID.
// If the record is marked default, every other default flag is cleared in
// the same transaction so the single-default invariant is never observable
// as violated.
func (s *SQLiteStore) UpsertTenant(ctx context.Context, cred *TenantCredential) error {
	now := time.Now().UTC()
	if cred.CreatedAt.IsZero() {
		cred.CreatedAt = now
	}
	cred.UpdatedAt = now
	if cred.Kind == "" {
		cred.Kind = KindSubAccount
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if cred.IsDefault {
		if _, err := tx.ExecContext(ctx, "UPDATE tenant_credentials SET is_default = 0 WHERE is_default = 1"); err != nil {
			return fmt.Errorf("clearing default flags: %w", err)
		}
	}

	// Preserve created_at on replace
	query := `
		INSERT INTO tenant_credentials (id, name, api_key, kind, is_default, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			api_key = excluded.api_key,
			kind = excluded.kind,
			is_default = excluded.is_default,
			notes = excluded.notes,
			updated_at = excluded.updated_at
	`
	_, err = tx.ExecContext(ctx, query,
		cred.ID,
		cred.Name,
		cred.APIKey,
		cred.Kind,
		boolToInt(cred.IsDefault),
		nullString(cred.Notes),
		cred.CreatedAt.Format(time.RFC3339),
		cred.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting tenant: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	s.logger.Debug("upserted tenant", "id", cred.ID, "name", cred.Name, "is_default", cred.IsDefault)
	return nil
}

// GetTenant retrieves a tenant credential by location ID.
// Returns ErrNotFound if no record exists.
func (s *SQLiteStore) GetTenant(ctx context.Context, id string) (*TenantCredential, error) {
	row := s.db.QueryRowContext(ctx, selectTenant+" WHERE id = ?", id)
	return scanTenant(row.Scan)
}

// GetTenantByName finds a tenant by case-insensitive substring match on the
// display name. When several records match, the lexically first name wins;
// the ordering is deterministic but otherwise arbitrary.
func (s *SQLiteStore) GetTenantByName(ctx context.Context, name string) (*TenantCredential, error) {
	row := s.db.QueryRowContext(ctx,
		selectTenant+" WHERE name LIKE '%' || ? || '%' COLLATE NOCASE ORDER BY name COLLATE NOCASE LIMIT 1",
		name,
	)
	return scanTenant(row.Scan)
}

// GetDefaultTenant returns the record flagged default, or ErrNotFound.
func (s *SQLiteStore) GetDefaultTenant(ctx context.Context) (*TenantCredential, error) {
	row := s.db.QueryRowContext(ctx, selectTenant+" WHERE is_default = 1 LIMIT 1")
	return scanTenant(row.Scan)
}

// SetDefaultTenant clears the default flag everywhere and sets it on id.
// Returns ErrNotFound if the tenant does not exist. Runs in one transaction.
func (s *SQLiteStore) SetDefaultTenant(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "UPDATE tenant_credentials SET is_default = 0 WHERE is_default = 1"); err != nil {
		return fmt.Errorf("clearing default flags: %w", err)
	}

	result, err := tx.ExecContext(ctx,
		"UPDATE tenant_credentials SET is_default = 1, updated_at = ? WHERE id = ?",
		time.Now().UTC().Format(time.RFC3339), id,
	)
	if err != nil {
		return fmt.Errorf("setting default flag: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	s.logger.Debug("set default tenant", "id", id)
	return nil
}

// UpdateTenantAPIKey rotates the stored API key for a tenant.
// Returns ErrNotFound if the tenant does not exist.
func (s *SQLiteStore) UpdateTenantAPIKey(ctx context.Context, id, apiKey string) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE tenant_credentials SET api_key = ?, updated_at = ? WHERE id = ?",
		apiKey, time.Now().UTC().Format(time.RFC3339), id,
	)
	if err != nil {
		return fmt.Errorf("updating tenant api key: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	s.logger.Debug("rotated tenant api key", "id", id)
	return nil
}

// DeleteTenant removes a tenant credential by ID.
// Returns ErrNotFound if the tenant does not exist.
func (s *SQLiteStore) DeleteTenant(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM tenant_credentials WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting tenant: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	s.logger.Debug("deleted tenant", "id", id)
	return nil
}

// ListTenants returns all tenant credentials ordered by name.
func (s *SQLiteStore) ListTenants(ctx context.Context) ([]*TenantCredential, error) {
	rows, err := s.db.QueryContext(ctx, selectTenant+" ORDER BY name COLLATE NOCASE")
	if err != nil {
		return nil, fmt.Errorf("querying tenants: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var tenants []*TenantCredential
	for rows.Next() {
		cred, err := scanTenant(rows.Scan)
		if err != nil {
			return nil, err
		}
		tenants = append(tenants, cred)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tenant rows: %w", err)
	}
	return tenants, nil
}

const selectTenant = `
	SELECT id, name, api_key, kind, is_default, notes, created_at, updated_at
	FROM tenant_credentials`

func scanTenant(scan func(dest ...any) error) (*TenantCredential, error) {
	var cred TenantCredential
	var isDefault int
	var notes sql.NullString
	var createdAt, updatedAt string

	err := scan(
		&cred.ID,
		&cred.Name,
		&cred.APIKey,
		&cred.Kind,
		&isDefault,
		&notes,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning tenant row: %w", err)
	}

	cred.IsDefault = isDefault == 1
	if notes.Valid {
		cred.Notes = notes.String
	}
	if parsed, err := time.Parse(time.RFC3339, createdAt); err == nil {
		cred.CreatedAt = parsed
	}
	if parsed, err := time.Parse(time.RFC3339, updatedAt); err == nil {
		cred.UpdatedAt = parsed
	}
	return &cred, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
