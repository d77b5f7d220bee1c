package adapter_test

import (
	"testing"

	"github.com/Guyiguang/QuickQanava/adapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sliceOps is a sequence-container configuration: Insert appends,
// Remove drops the first match and preserves the relative order of the
// remaining elements.
type sliceOps[T comparable] struct{}

func (sliceOps[T]) Insert(into *[]T, v T) { *into = append(*into, v) }

func (sliceOps[T]) Remove(from *[]T, v T) {
	for i, x := range *from {
		if x == v {
			*from = append((*from)[:i], (*from)[i+1:]...)

			return
		}
	}
}

// set is a set-like container in the map[T]struct{} shape.
type set[T comparable] map[T]struct{}

// setOps is a set-container configuration: Insert is insert-or-no-op,
// Remove drops the only occurrence and ignores absent values.
type setOps[T comparable] struct{}

func (setOps[T]) Insert(into *set[T], v T) {
	if *into == nil {
		*into = set[T]{}
	}
	(*into)[v] = struct{}{}
}

func (setOps[T]) Remove(from *set[T], v T) { delete(*from, v) }

// Compile-time checks: both configurations satisfy the protocol.
var (
	_ adapter.Ops[[]int, int]    = sliceOps[int]{}
	_ adapter.Ops[set[int], int] = setOps[int]{}
)

// TestSliceOps_InsertAppends verifies sequence semantics: insertion
// order is preserved, duplicates allowed.
func TestSliceOps_InsertAppends(t *testing.T) {
	var seq []int
	ops := sliceOps[int]{}

	for _, v := range []int{1, 2, 3, 2} {
		adapter.InsertInto(ops, &seq, v)
	}
	assert.Equal(t, []int{1, 2, 3, 2}, seq, "sequence insert must append in order")
}

// TestSliceOps_RemoveFirstMatch verifies the documented multiplicity:
// inserting [1,2,3] then removing 2 yields [1,3], order preserved.
func TestSliceOps_RemoveFirstMatch(t *testing.T) {
	var seq []int
	ops := sliceOps[int]{}

	for _, v := range []int{1, 2, 3} {
		adapter.InsertInto(ops, &seq, v)
	}
	adapter.RemoveFrom(ops, &seq, 2)

	assert.Equal(t, []int{1, 3}, seq, "first-match removal must preserve remaining order")
}

// TestSliceOps_RemoveOnlyFirstOfDuplicates pins first-match (not
// all-match) behavior in the presence of duplicates.
func TestSliceOps_RemoveOnlyFirstOfDuplicates(t *testing.T) {
	seq := []int{2, 1, 2, 3}
	ops := sliceOps[int]{}

	adapter.RemoveFrom(ops, &seq, 2)
	assert.Equal(t, []int{1, 2, 3}, seq, "only the first match may be removed")
}

// TestSliceOps_RemoveAbsentIsNoOp verifies absent-value removal leaves
// the sequence untouched.
func TestSliceOps_RemoveAbsentIsNoOp(t *testing.T) {
	seq := []int{1, 3}
	ops := sliceOps[int]{}

	adapter.RemoveFrom(ops, &seq, 42)
	assert.Equal(t, []int{1, 3}, seq)
}

// TestSetOps_InsertIsIdempotent verifies set semantics: inserting the
// same value twice leaves exactly one occurrence.
func TestSetOps_InsertIsIdempotent(t *testing.T) {
	var s set[string]
	ops := setOps[string]{}

	adapter.InsertInto(ops, &s, "n1")
	adapter.InsertInto(ops, &s, "n1")

	require.Len(t, s, 1, "double insert must leave one occurrence")
	assert.Contains(t, s, "n1")
}

// TestSetOps_RemoveAbsentIsNoOp verifies that removing a value never
// inserted neither errors nor mutates the set.
func TestSetOps_RemoveAbsentIsNoOp(t *testing.T) {
	var s set[string]
	ops := setOps[string]{}

	adapter.InsertInto(ops, &s, "n1")
	assert.NotPanics(t, func() {
		adapter.RemoveFrom(ops, &s, "ghost")
	}, "absent-value removal must be a no-op")
	assert.Len(t, s, 1)
}

// TestSetOps_InsertRemoveRoundTrip verifies the basic mutation cycle.
func TestSetOps_InsertRemoveRoundTrip(t *testing.T) {
	var s set[string]
	ops := setOps[string]{}

	adapter.InsertInto(ops, &s, "n1")
	adapter.InsertInto(ops, &s, "n2")
	adapter.RemoveFrom(ops, &s, "n1")

	require.Len(t, s, 1)
	assert.Contains(t, s, "n2")
	assert.NotContains(t, s, "n1")
}

// TestOpsFunc_AdaptsPlainFunctions verifies the functional adapter
// satisfies the protocol end to end.
func TestOpsFunc_AdaptsPlainFunctions(t *testing.T) {
	ops := adapter.OpsFunc[[]string, string]{
		InsertFunc: func(into *[]string, v string) { *into = append(*into, v) },
		RemoveFunc: func(from *[]string, v string) {
			for i, x := range *from {
				if x == v {
					*from = append((*from)[:i], (*from)[i+1:]...)

					return
				}
			}
		},
	}

	var seq []string
	adapter.InsertInto(ops, &seq, "a")
	adapter.InsertInto(ops, &seq, "b")
	adapter.RemoveFrom(ops, &seq, "a")

	assert.Equal(t, []string{"b"}, seq)
}

// TestOpsFunc_MissingCapabilityPanics pins the fail-fast behavior of
// an incomplete functional configuration.
func TestOpsFunc_MissingCapabilityPanics(t *testing.T) {
	ops := adapter.OpsFunc[[]int, int]{
		InsertFunc: func(into *[]int, v int) { *into = append(*into, v) },
		// RemoveFunc deliberately nil.
	}

	var seq []int
	adapter.InsertInto(ops, &seq, 1)
	assert.Panics(t, func() {
		adapter.RemoveFrom(ops, &seq, 1)
	}, "a missing capability must fail loudly at the first mutation")
}
