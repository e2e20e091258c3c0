// ABOUTME: Package documentation for the admin API
// ABOUTME: Describes the JSON management surface and its auth model

// Package admin exposes the management API for tenant credentials and
// MCP access tokens.
//
// Every route lives under /admin/ and expects the admin password as a
// bearer token (see auth.RequirePassword). Responses never contain an
// unmasked tenant API key. Minted access tokens are returned exactly
// once; afterwards only the digest exists server-side.
package admin
