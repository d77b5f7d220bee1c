package adapter

// Inserter stores a value into a container of concrete type C holding
// elements of type T. Ordering and uniqueness semantics are the
// implementation's: sequence containers append, set-like containers
// insert-or-no-op.
type Inserter[C, T any] interface {
	Insert(into *C, v T)
}

// Remover removes the element(s) matching v from a container of
// concrete type C. Each implementation fixes and documents its own
// multiplicity — first match or all matches; the protocol imposes no
// global policy. Removing an absent value must be a no-op.
type Remover[C, T any] interface {
	Remove(from *C, v T)
}

// Ops is a container configuration: one value binding a concrete
// container type to both mutations the topology layer performs on it.
//
// There is no default implementation. Graph code generic over
// Ops[C, T] fails to compile when instantiated with a container type
// nobody wrote an Ops for — the intended fail-fast behavior.
type Ops[C, T any] interface {
	Inserter[C, T]
	Remover[C, T]
}

// OpsFunc adapts plain functions to Ops, for ad-hoc configurations
// that do not warrant a named type. Both funcs must be non-nil; a nil
// func panics at the call site, surfacing the missing capability at
// the first mutation.
type OpsFunc[C, T any] struct {
	InsertFunc func(into *C, v T)
	RemoveFunc func(from *C, v T)
}

// Insert calls InsertFunc.
func (o OpsFunc[C, T]) Insert(into *C, v T) { o.InsertFunc(into, v) }

// Remove calls RemoveFunc.
func (o OpsFunc[C, T]) Remove(from *C, v T) { o.RemoveFunc(from, v) }

// InsertInto stores v into the container through the supplied
// configuration. Side effects are limited to the requested mutation.
func InsertInto[C, T any](ops Ops[C, T], into *C, v T) {
	ops.Insert(into, v)
}

// RemoveFrom removes v's match(es) from the container through the
// supplied configuration, with the multiplicity that configuration
// documents.
func RemoveFrom[C, T any](ops Ops[C, T], from *C, v T) {
	ops.Remove(from, v)
}
