// Package adapter defines the container configuration protocol that
// lets a generic graph structure mutate its backing containers —
// slices, sets, GUI-framework models, custom stores — without ever
// naming a concrete container type.
//
// The protocol is two capabilities, bound per concrete container type:
//
//	Inserter[C, T] — store a value into a container of type C
//	Remover[C, T]  — remove a matching value from a container of type C
//	Ops[C, T]      — both together: one container configuration unit
//
// Dispatch is resolved at build time through generic constraints. The
// protocol level ships no implementation at all: a graph structure
// instantiated with a container type whose Ops is missing fails to
// compile at the instantiation site — never a silent no-op at run
// time. That fail-fast contract is the point of the layer.
//
// Semantics belong to each implementation, not to the protocol:
//
//   - Insert follows the container family's own rules — sequence
//     containers append, set-like containers insert-or-no-op.
//   - Remove multiplicity (first match vs. all matches) is fixed and
//     documented by each implementation; no global policy exists.
//   - Side effects are limited to the requested container mutation.
//
// The package owns no container and takes no locks; the caller keeps
// whatever concurrency discipline its containers need.
//
// ⚙️ Usage:
//
//	type edgeListOps struct{}
//
//	func (edgeListOps) Insert(into *[]Edge, e Edge) { *into = append(*into, e) }
//	func (edgeListOps) Remove(from *[]Edge, e Edge) { /* first match */ }
//
//	// Graph code generic over its configuration:
//	func attach[C, T any](ops adapter.Ops[C, T], c *C, v T) {
//		adapter.InsertInto(ops, c, v)
//	}
//
// For one-off configurations, OpsFunc adapts plain functions to Ops in
// the http.HandlerFunc manner.
package adapter
