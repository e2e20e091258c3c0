// Package auth provides the two credential checks the gateway uses:
// HS256 JWT verification for MCP clients, with capabilities carried in
// a "caps" claim, and bcrypt password checking for the admin API.
package auth
