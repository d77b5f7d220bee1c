// Package invariant provides unconditional topology invariant checks
// that raise typed, recoverable errors instead of aborting.
//
// A graph structure validates its preconditions and postconditions at
// every mutation. Those checks are correctness gates, not debug-only
// sanity checks: Assert runs identically in every build configuration,
// with no tag or flag that compiles it out.
//
// ✨ Key points:
//   - Assert(cond, msg) — nil on success, *TopologyError on violation
//   - Assertf(cond, format, args...) — formatted diagnostic
//   - AssertWith(cond, newErr, msg) — substitute a more specific error
//     kind, any type constructible from a diagnostic string
//   - errors.Is(err, ErrTopology) and errors.As with **TopologyError
//     both match a raised violation
//
// The package never recovers or suppresses an error it raises; all
// recovery decisions belong to the caller. A failed invariant signals a
// logic or state inconsistency, so there is nothing to retry.
//
// ⚙️ Usage:
//
//	if err := invariant.Assert(node != nil, "insert: node must not be nil"); err != nil {
//		return err
//	}
//
// The diagnostic must localize the violated invariant on its own — this
// layer attaches no contextual state.
package invariant
