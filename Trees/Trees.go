package Trees

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Tree represents an ordered set implemented using linked nodes.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined. For example, if calling Predecessor
// with the smallest element, the return value will be (x T, false bool). In
// this case the value of x is the zero value of T and shouldn't be used.
// Receivers that can fail because the tree is empty return an error instead.
// Lookups may restructure the tree, so even read operations require exclusive
// access. None of the implementations are safe for concurrent use.
type Tree[T any, S constraints.Unsigned] interface {
	//Add v to the Tree. Returns true if v wasn't in the Tree before.
	Add(v T) bool
	//Remove v from the Tree. Returns true if v was in the Tree. Removing
	//an absent value is a no-op.
	Remove(v T) bool
	//Has element v.
	Has(v T) bool
	//Min element of the tree, *EmptyTreeError if the tree is empty.
	Min() (T, error)
	//Max element of the tree, *EmptyTreeError if the tree is empty.
	Max() (T, error)
	//Predecessor returns the greatest element less than v.
	Predecessor(v T) (T, bool)
	//Successor returns the smallest element greater than v.
	Successor(v T) (T, bool)
	//Size of the tree.
	Size() S
	//Empty reports whether Size()==0.
	Empty() bool
	//Clear removes all elements.
	Clear()
	//InOrder returns a sequence of the elements in ascending order.
	//The sequence is lazy and can be ranged over many times, each time
	//starting from the current first element. The tree must not be
	//modified while a sequence is being ranged over.
	InOrder() iter.Seq[T]
	//PreOrder is InOrder but in pre-order.
	PreOrder() iter.Seq[T]
	//PostOrder is InOrder but in post-order.
	PostOrder() iter.Seq[T]
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node violates the ordering, or the links between nodes are
	//inconsistent.
	Corrupt() bool
}

var _ Tree[int, uint] = (*SplayTree[int, uint])(nil)
