// Package quickqanava is the topology extension layer behind the
// QuickQanava graph stack: the small set of contracts a generic graph
// structure needs to stay independent of its storage backend.
//
// 🚀 What lives here?
//
//	A thread-safe, zero-dependency layer that brings together:
//		• Container adaptation: insert/remove protocols resolved at build
//		  time, so the graph never names a concrete container type
//		• Weak-reference identity: equality & hashing over ownership
//		  groups, safe to use as associative-container keys
//		• Invariant assertions: unconditional checks raising typed,
//		  recoverable topology errors
//
// ✨ Why this shape?
//
//   - Backend-agnostic – swap slices, sets or custom containers without
//     touching graph code
//   - No artificial lifetimes – adjacency and indices hold weak handles,
//     never extending node lifetime or creating ownership cycles
//   - Fail fast – a missing container adaptation is a build error, not a
//     silent no-op; a broken invariant is a typed error, not an abort
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under three subpackages:
//
//	adapter/   — container configuration protocol (Inserter, Remover, Ops)
//	weakref/   — Shared/Weak ownership handles, identity Equal & Hash
//	invariant/ — Assert/Assertf/AssertWith + TopologyError
//
// The graph structure itself, traversal and serialization are external
// consumers of these contracts and deliberately live elsewhere.
//
//	go get github.com/Guyiguang/QuickQanava
package quickqanava
