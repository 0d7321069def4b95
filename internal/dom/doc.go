// Package dom provides the SQLite-backed element store: the external
// document-object collaborator that demos query by identifier or tag.
//
// A lookup returns a handle or absence - absence is an ordinary result,
// never an error. On top of the raw lookup the package exposes the two
// cast idioms for reaching the richer input shape:
//
//   - MustInput asserts presence and shape in one narrow primitive. The
//     caller vouches for both; a wrong assertion is a caller-side
//     violation and fails fast with a panic at the point of use. There is
//     no guarded fallback on this path - that is its contract.
//
//   - WithInput verifies presence first and runs the caller's function
//     only inside the verified branch. It can never fail on absence: an
//     absent element is a silent no-op success.
//
// Keeping the unchecked assertion confined to MustInput makes the trust
// boundary auditable: every unguarded dereference in the codebase goes
// through this one primitive.
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - foreign_keys=ON: enforce referential integrity
//
// All multi-row queries order by seq ASC, id ASC COLLATE BINARY so
// results are identical across runs.
package dom
