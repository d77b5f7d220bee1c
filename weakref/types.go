package weakref

import (
	"sync"
	"sync/atomic"
)

// groupIDs issues a unique, monotonically increasing identity to every
// ownership group. ID order is the strict weak order behind OwnerBefore.
// ID 0 is reserved for the zero Weak handle.
var groupIDs atomic.Uint64

// group is the control block shared by every handle, owning and
// non-owning, that refers to the same underlying entity.
//
// mu guards owners and value; resolve and release are atomic steps
// under it, so a resolve racing the last release either obtains an
// owner or observes expiry, never a half-dead group.
type group[T any] struct {
	id uint64

	mu     sync.Mutex
	owners int // live owning handles; 0 == expired
	value  *T  // dropped at expiry
}

// Shared is an owning handle to a shared entity. Each Shared accounts
// for exactly one owner in its group; Release drops it. Copying the
// struct does not add an owner — use Clone.
type Shared[T any] struct {
	g        *group[T]
	released atomic.Bool
}

// Weak is a non-owning handle into an ownership group. It never keeps
// the entity alive and stays bound to its group after expiry, so
// identity stays stable for the handle's lifetime.
//
// Weak is comparable; == between Weak handles coincides with ownership
// group identity. The zero Weak belongs to no group and is permanently
// expired.
type Weak[T any] struct {
	g *group[T]
}
