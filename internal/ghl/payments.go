// ABOUTME: Invoice, order, transaction and subscription endpoints of the GHL API

package ghl

import (
	"context"
	"encoding/json"
	"net/http"
)

// ListInvoices lists invoices for the bound location.
func (c *Client) ListInvoices(ctx context.Context, query map[string]string) (json.RawMessage, error) {
	q := map[string]string{"altId": c.locationID, "altType": "location"}
	for k, v := range query {
		q[k] = v
	}
	return c.Request(ctx, http.MethodGet, "/invoices/", RequestOptions{
		Query:   q,
		Version: VersionStandard,
	})
}

// GetInvoice fetches one invoice.
func (c *Client) GetInvoice(ctx context.Context, invoiceID string) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, "/invoices/"+invoiceID, RequestOptions{
		Query:   map[string]string{"altId": c.locationID, "altType": "location"},
		Version: VersionStandard,
	})
}

// SendInvoice delivers an invoice to its contact.
func (c *Client) SendInvoice(ctx context.Context, invoiceID string) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodPost, "/invoices/"+invoiceID+"/send", RequestOptions{
		Body:    map[string]any{"altId": c.locationID, "altType": "location"},
		Version: VersionStandard,
	})
}

// VoidInvoice voids an invoice.
func (c *Client) VoidInvoice(ctx context.Context, invoiceID string) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodPost, "/invoices/"+invoiceID+"/void", RequestOptions{
		Body:    map[string]any{"altId": c.locationID, "altType": "location"},
		Version: VersionStandard,
	})
}

// ListOrders lists payment orders.
func (c *Client) ListOrders(ctx context.Context, query map[string]string) (json.RawMessage, error) {
	q := map[string]string{"altId": c.locationID, "altType": "location"}
	for k, v := range query {
		q[k] = v
	}
	return c.Request(ctx, http.MethodGet, "/payments/orders", RequestOptions{
		Query:   q,
		Version: VersionStandard,
	})
}

// GetOrder fetches one payment order.
func (c *Client) GetOrder(ctx context.Context, orderID string) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, "/payments/orders/"+orderID, RequestOptions{
		Query:   map[string]string{"altId": c.locationID, "altType": "location"},
		Version: VersionStandard,
	})
}

// ListTransactions lists payment transactions.
func (c *Client) ListTransactions(ctx context.Context, query map[string]string) (json.RawMessage, error) {
	q := map[string]string{"altId": c.locationID, "altType": "location"}
	for k, v := range query {
		q[k] = v
	}
	return c.Request(ctx, http.MethodGet, "/payments/transactions", RequestOptions{
		Query:   q,
		Version: VersionStandard,
	})
}

// ListSubscriptions lists payment subscriptions.
func (c *Client) ListSubscriptions(ctx context.Context, query map[string]string) (json.RawMessage, error) {
	q := map[string]string{"altId": c.locationID, "altType": "location"}
	for k, v := range query {
		q[k] = v
	}
	return c.Request(ctx, http.MethodGet, "/payments/subscriptions", RequestOptions{
		Query:   q,
		Version: VersionStandard,
	})
}
