package weakref

// NewShared places v under shared ownership and returns the group's
// first owning handle (use count 1).
//
// Complexity: O(1)
func NewShared[T any](v T) *Shared[T] {
	return &Shared[T]{g: &group[T]{
		id:     groupIDs.Add(1),
		owners: 1,
		value:  &v,
	}}
}

// Get returns the owned value, or nil once this handle has been
// released. The pointer stays valid while at least one owner holds the
// group.
func (s *Shared[T]) Get() *T {
	if s == nil || s.released.Load() {
		return nil
	}
	s.g.mu.Lock()
	defer s.g.mu.Unlock()

	return s.g.value
}

// Clone registers an additional owner of the same entity and returns
// its handle. Cloning a released handle returns nil.
//
// Complexity: O(1)
func (s *Shared[T]) Clone() *Shared[T] {
	if s == nil || s.released.Load() {
		return nil
	}
	s.g.mu.Lock()
	defer s.g.mu.Unlock()
	s.g.owners++

	return &Shared[T]{g: s.g}
}

// Release drops this handle's ownership. When the last owner releases,
// the group expires and the stored value is dropped. Release is
// idempotent per handle: a second call on the same handle is a no-op.
//
// Complexity: O(1)
func (s *Shared[T]) Release() {
	if s == nil || !s.released.CompareAndSwap(false, true) {
		return
	}
	s.g.mu.Lock()
	defer s.g.mu.Unlock()
	s.g.owners--
	if s.g.owners == 0 {
		s.g.value = nil
	}
}

// Downgrade returns a non-owning view of the entity. The weak handle
// does not count as an owner and stays bound to the group after
// expiry. Downgrading a nil handle yields the zero Weak.
//
// Complexity: O(1)
func (s *Shared[T]) Downgrade() Weak[T] {
	if s == nil {
		return Weak[T]{}
	}

	return Weak[T]{g: s.g}
}

// Resolve attempts to upgrade the weak handle to a temporary owning
// handle. On success the group gains an owner and the caller must
// Release the returned handle. Resolve reports false once the group
// has expired; it never revives an expired group.
//
// Resolution is a single atomic step: racing a concurrent last-owner
// release, it either obtains ownership or observes expiry.
//
// Complexity: O(1)
func (w Weak[T]) Resolve() (*Shared[T], bool) {
	if w.g == nil {
		return nil, false
	}
	w.g.mu.Lock()
	defer w.g.mu.Unlock()
	if w.g.owners == 0 {
		return nil, false
	}
	w.g.owners++

	return &Shared[T]{g: w.g}, true
}

// Expired reports whether the last owner has released the entity. The
// zero Weak is always expired.
func (w Weak[T]) Expired() bool {
	if w.g == nil {
		return true
	}
	w.g.mu.Lock()
	defer w.g.mu.Unlock()

	return w.g.owners == 0
}

// UseCount returns the number of owning handles currently alive in the
// group; 0 means expired.
func (w Weak[T]) UseCount() int {
	if w.g == nil {
		return 0
	}
	w.g.mu.Lock()
	defer w.g.mu.Unlock()

	return w.g.owners
}
