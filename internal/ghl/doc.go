// Package ghl is a minimal client for the GoHighLevel REST API.
//
// A Client is bound to exactly one credential pair (API key + location ID)
// at construction and never re-resolves it; the tenant resolver constructs
// a fresh client per tool invocation. Domain methods are thin wrappers
// that fix the path, verb and API version tag and delegate to Request.
//
// Request payloads and responses are treated as opaque JSON documents
// (map[string]any in, json.RawMessage out); the upstream API's schemas are
// deliberately not modeled here.
//
// Error handling: non-2xx responses become *APIError with the status code,
// a "GHL API Error <code>: <status text>" message, and the raw body as
// Details. The client performs no retries, backoff or rate limiting.
package ghl
