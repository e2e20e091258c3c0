// ABOUTME: Core HTTP client for the GoHighLevel REST API
// ABOUTME: One outbound request per call, bound to a single resolved credential

package ghl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

// DefaultBaseURL is the production GoHighLevel API origin.
const DefaultBaseURL = "https://services.leadconnectorhq.com"

// API version tags sent in the Version header. The GHL API ships two
// revisions; most endpoints use the standard tag, a handful of older
// surfaces (calendars, campaigns) still require the legacy one.
const (
	VersionStandard = "2021-07-28"
	VersionLegacy   = "2021-04-15"
)

// Client executes requests against the GHL API using one bound credential.
// It is stateless apart from the credential pair: construct one per
// resolved tenant context and discard it after the call completes.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	locationID string
	logger     *slog.Logger
}

// Config holds construction parameters for a Client.
type Config struct {
	BaseURL    string // defaults to DefaultBaseURL
	APIKey     string
	LocationID string
	HTTPClient *http.Client // defaults to http.DefaultClient
	Logger     *slog.Logger
}

// NewClient creates a client bound to one credential set.
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default().With("component", "ghl")
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     cfg.APIKey,
		locationID: cfg.LocationID,
		logger:     logger,
	}
}

// LocationID returns the tenant scope this client is bound to.
func (c *Client) LocationID() string {
	return c.locationID
}

// RequestOptions carries the per-call request parameters.
type RequestOptions struct {
	// Query parameters; entries with empty values are omitted entirely.
	Query map[string]string
	// Body is JSON-serialized for non-GET verbs; nil means no body.
	Body any
	// Version is the required API revision tag for the endpoint.
	// Callers pass VersionStandard or VersionLegacy.
	Version string
}

// Request issues one HTTP request and decodes the 2xx response body as JSON.
// Non-2xx responses produce an *APIError carrying the status code and the
// raw body text. There are no retries and no timeout beyond the context.
func (c *Client) Request(ctx context.Context, method, path string, opts RequestOptions) (json.RawMessage, error) {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return nil, fmt.Errorf("building request URL: %w", err)
	}

	if len(opts.Query) > 0 {
		q := u.Query()
		for k, v := range opts.Query {
			if v == "" {
				continue
			}
			q.Set(k, v)
		}
		u.RawQuery = q.Encode()
	}

	var body io.Reader
	if opts.Body != nil && method != http.MethodGet {
		payload, err := json.Marshal(opts.Body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if opts.Version != "" {
		req.Header.Set("Version", opts.Version)
	}

	c.logger.Debug("GHL request", "method", method, "path", path, "location_id", c.locationID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Best effort: a failed body read still produces a usable error
		detail, _ := io.ReadAll(resp.Body)
		apiErr := &APIError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("GHL API Error %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
			Details:    string(detail),
		}
		c.logger.Debug("GHL error response", "method", method, "path", path, "status", resp.StatusCode)
		return nil, apiErr
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	// Validate the payload is JSON; decode failures propagate unchanged
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}
