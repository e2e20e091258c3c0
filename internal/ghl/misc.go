// ABOUTME: Product, company and phone number endpoints of the GHL API

package ghl

import (
	"context"
	"encoding/json"
	"net/http"
)

// ListProducts lists products in the bound location.
func (c *Client) ListProducts(ctx context.Context, query map[string]string) (json.RawMessage, error) {
	q := map[string]string{"locationId": c.locationID}
	for k, v := range query {
		q[k] = v
	}
	return c.Request(ctx, http.MethodGet, "/products/", RequestOptions{
		Query:   q,
		Version: VersionStandard,
	})
}

// GetProduct fetches one product.
func (c *Client) GetProduct(ctx context.Context, productID string) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, "/products/"+productID, RequestOptions{
		Query:   map[string]string{"locationId": c.locationID},
		Version: VersionStandard,
	})
}

// CreateProduct creates a product.
func (c *Client) CreateProduct(ctx context.Context, data map[string]any) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodPost, "/products/", RequestOptions{
		Body:    c.withLocation(data),
		Version: VersionStandard,
	})
}

// DeleteProduct removes a product.
func (c *Client) DeleteProduct(ctx context.Context, productID string) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodDelete, "/products/"+productID, RequestOptions{
		Query:   map[string]string{"locationId": c.locationID},
		Version: VersionStandard,
	})
}

// ListProductPrices lists the prices of one product.
func (c *Client) ListProductPrices(ctx context.Context, productID string) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, "/products/"+productID+"/price", RequestOptions{
		Query:   map[string]string{"locationId": c.locationID},
		Version: VersionStandard,
	})
}

// GetCompany fetches agency-level company details.
func (c *Client) GetCompany(ctx context.Context, companyID string) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, "/companies/"+companyID, RequestOptions{
		Version: VersionStandard,
	})
}

// ListPhoneNumbers lists the phone numbers provisioned for the bound location.
func (c *Client) ListPhoneNumbers(ctx context.Context) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, "/phone-system/numbers/location/"+c.locationID, RequestOptions{
		Version: VersionStandard,
	})
}

// ListMediaFiles lists files in the media library.
func (c *Client) ListMediaFiles(ctx context.Context, query map[string]string) (json.RawMessage, error) {
	q := map[string]string{
		"altId":     c.locationID,
		"altType":   "location",
		"sortBy":    "createdAt",
		"sortOrder": "asc",
	}
	for k, v := range query {
		q[k] = v
	}
	return c.Request(ctx, http.MethodGet, "/medias/files", RequestOptions{
		Query:   q,
		Version: VersionStandard,
	})
}

// ListCustomObjects lists the custom object schemas defined for the
// bound location.
func (c *Client) ListCustomObjects(ctx context.Context) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, "/objects/", RequestOptions{
		Query:   map[string]string{"locationId": c.locationID},
		Version: VersionStandard,
	})
}

// SearchCustomObjectRecords searches records of one custom object schema.
func (c *Client) SearchCustomObjectRecords(ctx context.Context, objectKey string, data map[string]any) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodPost, "/objects/"+objectKey+"/records/search", RequestOptions{
		Body:    c.withLocation(data),
		Version: VersionStandard,
	})
}
