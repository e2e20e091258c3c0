// ABOUTME: Campaign, email template and funnel endpoints of the GHL API

package ghl

import (
	"context"
	"encoding/json"
	"net/http"
)

// ListCampaigns lists marketing campaigns in the bound location.
func (c *Client) ListCampaigns(ctx context.Context) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, "/campaigns/", RequestOptions{
		Query:   map[string]string{"locationId": c.locationID},
		Version: VersionLegacy,
	})
}

// ListEmailTemplates lists email builder templates.
func (c *Client) ListEmailTemplates(ctx context.Context, query map[string]string) (json.RawMessage, error) {
	q := map[string]string{"locationId": c.locationID}
	for k, v := range query {
		q[k] = v
	}
	return c.Request(ctx, http.MethodGet, "/emails/builder", RequestOptions{
		Query:   q,
		Version: VersionStandard,
	})
}

// DeleteEmailTemplate removes an email builder template.
func (c *Client) DeleteEmailTemplate(ctx context.Context, templateID string) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodDelete, "/emails/builder/"+c.locationID+"/"+templateID, RequestOptions{
		Version: VersionStandard,
	})
}

// ListFunnels lists funnels in the bound location.
func (c *Client) ListFunnels(ctx context.Context, query map[string]string) (json.RawMessage, error) {
	q := map[string]string{"locationId": c.locationID}
	for k, v := range query {
		q[k] = v
	}
	return c.Request(ctx, http.MethodGet, "/funnels/funnel/list", RequestOptions{
		Query:   q,
		Version: VersionStandard,
	})
}

// ListFunnelPages lists the pages of one funnel.
func (c *Client) ListFunnelPages(ctx context.Context, funnelID, limit, offset string) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, "/funnels/page", RequestOptions{
		Query: map[string]string{
			"locationId": c.locationID,
			"funnelId":   funnelID,
			"limit":      limit,
			"offset":     offset,
		},
		Version: VersionStandard,
	})
}

// ListTriggerLinks lists trigger links.
func (c *Client) ListTriggerLinks(ctx context.Context) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, "/links/", RequestOptions{
		Query:   map[string]string{"locationId": c.locationID},
		Version: VersionStandard,
	})
}

// CreateTriggerLink creates a trigger link.
func (c *Client) CreateTriggerLink(ctx context.Context, data map[string]any) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodPost, "/links/", RequestOptions{
		Body:    c.withLocation(data),
		Version: VersionStandard,
	})
}
