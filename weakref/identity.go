package weakref

import (
	"encoding/binary"
	"hash/fnv"
)

// OwnerBefore reports whether a's ownership group orders strictly
// before b's. It is a strict weak order over ownership groups: two
// handles into the same group never order before each other in either
// direction, regardless of which owner they were taken from. The zero
// Weak orders before every bound handle.
//
// Complexity: O(1)
func OwnerBefore[T any](a, b Weak[T]) bool {
	return groupID(a) < groupID(b)
}

// Equal reports whether a and b are non-owning views of the same
// underlying entity: neither ownership group orders before the other.
// Equality is defined over the ownership group — not handle addresses,
// not pointee values.
//
// Contract: both handles must reference a live entity (gate with
// Expired or Resolve first); comparing an expired handle is outside
// the contract, although Equal still answers by group identity.
//
// Complexity: O(1)
func Equal[T any](a, b Weak[T]) bool {
	return !OwnerBefore(a, b) && !OwnerBefore(b, a)
}

// Hash returns a hash of w consistent with Equal: any two handles
// Equal considers the same hash identically. The weak handle is first
// resolved to a temporary owning handle and the hash is taken over
// that strong handle's group identity, so every copy of a weak
// reference to the same entity observes the same hash. An expired
// handle (outside the contract) hashes as the zero group.
//
// Complexity: O(1)
func Hash[T any](w Weak[T]) uint64 {
	s, ok := w.Resolve()
	if !ok {
		return hashGroupID(0)
	}
	defer s.Release()

	return hashGroupID(s.g.id)
}

// groupID extracts the ownership group identity; 0 for the zero Weak.
func groupID[T any](w Weak[T]) uint64 {
	if w.g == nil {
		return 0
	}

	return w.g.id
}

// hashGroupID spreads sequential group IDs with 64-bit FNV-1a.
func hashGroupID(id uint64) uint64 {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], id)
	h := fnv.New64a()
	_, _ = h.Write(buf[:])

	return h.Sum64()
}
