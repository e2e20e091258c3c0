// ABOUTME: Location, tag and custom value endpoints of the GHL API

package ghl

import (
	"context"
	"encoding/json"
	"net/http"
)

// GetLocation fetches the bound location's details.
func (c *Client) GetLocation(ctx context.Context) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, "/locations/"+c.locationID, RequestOptions{
		Version: VersionStandard,
	})
}

// UpdateLocation edits the bound location's settings.
func (c *Client) UpdateLocation(ctx context.Context, data map[string]any) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodPut, "/locations/"+c.locationID, RequestOptions{
		Body:    data,
		Version: VersionStandard,
	})
}

// ListLocationTags lists the location's contact tags.
func (c *Client) ListLocationTags(ctx context.Context) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, "/locations/"+c.locationID+"/tags", RequestOptions{
		Version: VersionStandard,
	})
}

// CreateTag creates a contact tag.
func (c *Client) CreateTag(ctx context.Context, name string) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodPost, "/locations/"+c.locationID+"/tags", RequestOptions{
		Body:    map[string]any{"name": name},
		Version: VersionStandard,
	})
}

// DeleteTag removes a contact tag.
func (c *Client) DeleteTag(ctx context.Context, tagID string) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodDelete, "/locations/"+c.locationID+"/tags/"+tagID, RequestOptions{
		Version: VersionStandard,
	})
}

// ListCustomValues lists the location's custom values.
func (c *Client) ListCustomValues(ctx context.Context) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, "/locations/"+c.locationID+"/customValues", RequestOptions{
		Version: VersionStandard,
	})
}

// CreateCustomValue creates a named custom value.
func (c *Client) CreateCustomValue(ctx context.Context, name, value string) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodPost, "/locations/"+c.locationID+"/customValues", RequestOptions{
		Body:    map[string]any{"name": name, "value": value},
		Version: VersionStandard,
	})
}

// ListUsers lists users with access to the bound location.
func (c *Client) ListUsers(ctx context.Context) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, "/users/", RequestOptions{
		Query:   map[string]string{"locationId": c.locationID},
		Version: VersionStandard,
	})
}
