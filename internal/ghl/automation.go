// ABOUTME: Workflow, form and survey endpoints of the GHL API

package ghl

import (
	"context"
	"encoding/json"
	"net/http"
)

// ListWorkflows lists automation workflows in the bound location.
func (c *Client) ListWorkflows(ctx context.Context) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, "/workflows/", RequestOptions{
		Query:   map[string]string{"locationId": c.locationID},
		Version: VersionStandard,
	})
}

// ListForms lists forms in the bound location.
func (c *Client) ListForms(ctx context.Context, limit, skip string) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, "/forms/", RequestOptions{
		Query: map[string]string{
			"locationId": c.locationID,
			"limit":      limit,
			"skip":       skip,
		},
		Version: VersionStandard,
	})
}

// GetFormSubmissions pages through a form's submissions.
func (c *Client) GetFormSubmissions(ctx context.Context, query map[string]string) (json.RawMessage, error) {
	q := map[string]string{"locationId": c.locationID}
	for k, v := range query {
		q[k] = v
	}
	return c.Request(ctx, http.MethodGet, "/forms/submissions", RequestOptions{
		Query:   q,
		Version: VersionStandard,
	})
}

// ListSurveys lists surveys in the bound location.
func (c *Client) ListSurveys(ctx context.Context, limit, skip string) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, "/surveys/", RequestOptions{
		Query: map[string]string{
			"locationId": c.locationID,
			"limit":      limit,
			"skip":       skip,
		},
		Version: VersionStandard,
	})
}

// GetSurveySubmissions pages through a survey's submissions.
func (c *Client) GetSurveySubmissions(ctx context.Context, query map[string]string) (json.RawMessage, error) {
	q := map[string]string{"locationId": c.locationID}
	for k, v := range query {
		q[k] = v
	}
	return c.Request(ctx, http.MethodGet, "/surveys/submissions", RequestOptions{
		Query:   q,
		Version: VersionStandard,
	})
}
