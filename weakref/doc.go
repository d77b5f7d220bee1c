// Package weakref provides shared-ownership handles for graph entities
// and identity-based equality and hashing over their non-owning views.
//
// A graph owns its nodes and edges through Shared handles; everything
// else — adjacency, indices, back-references — holds Weak handles, so
// secondary structures never extend an entity's lifetime or create
// ownership cycles.
//
// ✨ Key concepts:
//
//   - Ownership group: every Shared and Weak handle referring to the
//     same entity shares one control block; identity is defined over
//     that group, never over a handle's bit pattern or pointee value.
//   - Explicit ownership: NewShared creates a group with one owner,
//     Clone adds an owner, Release drops one. When the last owner
//     releases, the group expires and the value is dropped.
//   - Fallible resolution: Weak.Resolve returns a temporary owning
//     handle, or reports false once the group has expired. It never
//     revives an expired group.
//   - Identity operations: OwnerBefore is a strict weak order over
//     ownership groups; Equal holds iff neither handle orders before
//     the other; Hash resolves the weak handle and hashes the strong
//     handle's group identity, so Equal handles always hash alike.
//
// Weak[T] is comparable, and Go's == on Weak coincides with ownership
// group identity — a Weak handle works directly as a map key:
//
//	index := map[weakref.Weak[Node]]int{}
//	index[shared.Downgrade()] = degree
//
// ⚠️ Contract: Equal and Hash require live handles. Check liveness
// first with Expired or Resolve; comparing a handle that can expire
// concurrently with the call is unspecified. Resolution itself is a
// single atomic step with respect to a concurrent last-owner release.
//
// The package owns no container and spawns no goroutines; callers keep
// whatever concurrency discipline their containers need.
package weakref
