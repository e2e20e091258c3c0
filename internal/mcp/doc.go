// Package mcp implements the Streamable HTTP transport of the Model
// Context Protocol for the gateway's tool packs.
//
// A single /mcp endpoint accepts JSON-RPC 2.0 over POST. The initialize
// handshake creates an in-memory session identified by the
// Mcp-Session-Id header; tools/list and tools/call require one.
// Notifications are acknowledged with HTTP 202 and no body.
//
// Authentication is flexible: an access token in the URL path
// (/mcp/<token>) or token query parameter is checked against the
// persistent token store, and a bearer JWT is accepted as a fallback.
// The capabilities attached to the credential decide which tool packs
// the session can see and call; a credential without capabilities is
// unrestricted.
//
// Tool failures never surface as JSON-RPC errors. The dispatcher folds
// them into the tool result envelope with isError set, so agents always
// receive the failure text as tool output.
package mcp
