// Package tenant maps an optional caller-supplied tenant ID onto a
// concrete credential set and hands back an API client bound to it.
//
// Precedence is fixed: an explicitly requested tenant uses its stored
// record, an unregistered requested tenant uses the environment key
// scoped to the requested ID, no requested tenant uses the stored
// default record, and absent a default the environment key and
// location pair is used. Resolution happens per invocation with no
// caching, so credential changes apply immediately.
package tenant
