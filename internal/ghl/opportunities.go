// ABOUTME: Opportunity and pipeline endpoints of the GHL API

package ghl

import (
	"context"
	"encoding/json"
	"net/http"
)

// SearchOpportunities searches opportunities within the bound location.
func (c *Client) SearchOpportunities(ctx context.Context, query map[string]string) (json.RawMessage, error) {
	q := map[string]string{"location_id": c.locationID}
	for k, v := range query {
		q[k] = v
	}
	return c.Request(ctx, http.MethodGet, "/opportunities/search", RequestOptions{
		Query:   q,
		Version: VersionStandard,
	})
}

// GetOpportunity fetches one opportunity.
func (c *Client) GetOpportunity(ctx context.Context, opportunityID string) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, "/opportunities/"+opportunityID, RequestOptions{
		Version: VersionStandard,
	})
}

// CreateOpportunity creates an opportunity in a pipeline.
func (c *Client) CreateOpportunity(ctx context.Context, data map[string]any) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodPost, "/opportunities/", RequestOptions{
		Body:    c.withLocation(data),
		Version: VersionStandard,
	})
}

// UpdateOpportunity edits an opportunity (stage, status, value).
func (c *Client) UpdateOpportunity(ctx context.Context, opportunityID string, data map[string]any) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodPut, "/opportunities/"+opportunityID, RequestOptions{
		Body:    data,
		Version: VersionStandard,
	})
}

// DeleteOpportunity removes an opportunity.
func (c *Client) DeleteOpportunity(ctx context.Context, opportunityID string) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodDelete, "/opportunities/"+opportunityID, RequestOptions{
		Version: VersionStandard,
	})
}

// ListPipelines lists the location's sales pipelines and stages.
func (c *Client) ListPipelines(ctx context.Context) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, "/opportunities/pipelines", RequestOptions{
		Query:   map[string]string{"locationId": c.locationID},
		Version: VersionStandard,
	})
}
