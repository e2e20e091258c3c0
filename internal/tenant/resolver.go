// ABOUTME: Resolves an optional tenant ID to a GHL client bound to one credential set
// ABOUTME: Precedence: explicit request > stored default > environment fallback

package tenant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ghlkit/ghl-gateway/internal/ghl"
	"github.com/ghlkit/ghl-gateway/internal/store"
)

// Fallback holds the environment-level credentials consulted when
// store-based resolution yields nothing.
type Fallback struct {
	APIKey     string
	LocationID string
}

// Resolver turns an optional caller-supplied tenant ID into a client
// bound to exactly one credential set. Every tool invocation resolves
// from scratch; nothing is cached across calls, so a rotated key takes
// effect on the next invocation.
type Resolver struct {
	store      store.TenantStore
	fallback   Fallback
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// Config holds construction parameters for a Resolver.
type Config struct {
	Store      store.TenantStore
	Fallback   Fallback
	BaseURL    string       // GHL API origin, defaults to ghl.DefaultBaseURL
	HTTPClient *http.Client // shared outbound client, defaults to http.DefaultClient
	Logger     *slog.Logger
}

// NewResolver creates a Resolver over the given tenant store.
func NewResolver(cfg Config) (*Resolver, error) {
	if cfg.Store == nil {
		return nil, errors.New("tenant store is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default().With("component", "tenant")
	}
	return &Resolver{
		store:      cfg.Store,
		fallback:   cfg.Fallback,
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
		logger:     logger,
	}, nil
}

// Resolve returns a client for the requested tenant.
//
// With a requested ID, a stored record wins; an unregistered ID falls back
// to the environment key but keeps the requested ID as the scope, since
// agency-level keys may still be valid for locations that were never
// registered. Without a requested ID, the stored default record wins over
// the environment pair.
//
// Resolution itself only fails on store I/O errors; an invalid resolved
// key surfaces later as an authentication error from the API call.
func (r *Resolver) Resolve(ctx context.Context, requestedID string) (*ghl.Client, error) {
	if requestedID != "" {
		cred, err := r.store.GetTenant(ctx, requestedID)
		switch {
		case err == nil:
			r.logger.Debug("resolved stored tenant", "tenant_id", cred.ID)
			return r.newClient(cred.APIKey, cred.ID), nil
		case errors.Is(err, store.ErrNotFound):
			r.logger.Debug("tenant not registered, using environment key", "tenant_id", requestedID)
			return r.newClient(r.fallback.APIKey, requestedID), nil
		default:
			return nil, fmt.Errorf("looking up tenant %q: %w", requestedID, err)
		}
	}

	cred, err := r.store.GetDefaultTenant(ctx)
	switch {
	case err == nil:
		r.logger.Debug("resolved default tenant", "tenant_id", cred.ID)
		return r.newClient(cred.APIKey, cred.ID), nil
	case errors.Is(err, store.ErrNotFound):
		r.logger.Debug("no default tenant, using environment credentials", "tenant_id", r.fallback.LocationID)
		return r.newClient(r.fallback.APIKey, r.fallback.LocationID), nil
	default:
		return nil, fmt.Errorf("looking up default tenant: %w", err)
	}
}

func (r *Resolver) newClient(apiKey, locationID string) *ghl.Client {
	return ghl.NewClient(ghl.Config{
		BaseURL:    r.baseURL,
		APIKey:     apiKey,
		LocationID: locationID,
		HTTPClient: r.httpClient,
		Logger:     r.logger.With("component", "ghl"),
	})
}
