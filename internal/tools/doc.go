// Package tools defines the tool packs exposed over MCP: the accounts
// pack manages tenant credentials in the store, and the remaining
// packs wrap the GHL REST API through per-call tenant resolution.
//
// Every API-backed tool accepts an optional locationId input that
// selects the tenant account; omitting it routes the call through the
// default account. Handlers are thin: decode input, resolve a client,
// make one API call, pretty-print the response. API keys never appear
// unmasked in any tool output.
package tools
