// Package identity resolves the claimed caller of a request.
//
// The ledger's authorization model compares user IDs: loan owners may
// mutate and share, grant holders may read. Where those IDs come from is
// this package's concern, isolated behind the Resolver interface.
//
// Two resolvers exist today:
//
//   - HeaderResolver trusts a caller-supplied X-Ledger-User header or
//     user_id query parameter. This matches the historical behavior where
//     the request simply names its own user and is the default.
//   - TokenResolver validates an HS256 bearer token and reads the user ID
//     from its subject claim.
//
// Handlers fetch the resolved identity from the request context:
//
//	id, ok := identity.Get(r.Context())
package identity
