// Package packs implements the tool pack framework: named groups of
// tools with JSON-schema inputs, a collision-checked registry, and a
// dispatcher that runs handlers in-process.
//
// The pack ID doubles as a capability name. An access token scoped to
// a set of capabilities sees and may call only the tools whose packs
// those capabilities name; a token with no capability list sees
// everything.
//
// The dispatcher normalizes outcomes: any failure inside a handler,
// including a panic, is returned as a Result with IsError set. Only an
// unregistered tool name surfaces as a Go error, which the transport
// layer maps to an invalid-params response.
package packs
