package Trees

import (
	"cmp"
	"iter"

	"golang.org/x/exp/constraints"
)

// SplayTree is a self-adjusting binary search tree with no repeated values.
// Every access moves the accessed node, or the node closest to the accessed
// value, to the root through zig, zig-zig and zig-zag rotations. No balance
// information is stored in nodes; the shape depends only on the access
// history. All operations take amortized O(log n) time, while a single
// operation can take O(n) on a degenerated tree.
// T is the type of values it will hold, S is the type used for the element
// count. S must be wide enough to hold the number of elements: the count
// wraps around silently otherwise, after which Size and Empty are wrong
// (e.g. a uint8 tree holding 256 elements reports Empty()==true) and Corrupt
// reports true.
// Lookups restructure the tree, so Has, Min, Max, Predecessor and Successor
// are mutations as far as concurrency is concerned. Traversals never
// restructure the tree.
type SplayTree[T any, S constraints.Unsigned] struct {
	root *node[T]
	size S
	cmp  func(T, T) int
}

// New returns an empty SplayTree ordered by cmp.Compare.
func New[T cmp.Ordered, S constraints.Unsigned]() *SplayTree[T, S] {
	return &SplayTree[T, S]{cmp: cmp.Compare[T]}
}

// From returns a SplayTree ordered by cmp.Compare holding vs. vs is added
// in order, so the order affects the shape but not the content; repeated
// values collapse into one.
// Time: amortized O(n*log(n))
func From[T cmp.Ordered, S constraints.Unsigned](vs ...T) *SplayTree[T, S] {
	u := New[T, S]()
	for _, v := range vs {
		u.Add(v)
	}
	return u
}

// NewFunc returns an empty SplayTree ordered by compare, which must define a
// total order: negative when a<b, 0 when a==b, positive when a>b.
func NewFunc[T any, S constraints.Unsigned](compare func(T, T) int) (*SplayTree[T, S], error) {
	if compare == nil {
		return nil, &NilArgumentError{"compare"}
	}
	return &SplayTree[T, S]{cmp: compare}, nil
}

// Collect the values of seq into a new SplayTree ordered by compare.
func Collect[T any, S constraints.Unsigned](seq iter.Seq[T], compare func(T, T) int) (*SplayTree[T, S], error) {
	if seq == nil {
		return nil, &NilArgumentError{"seq"}
	}
	u, err := NewFunc[T, S](compare)
	if err != nil {
		return nil, err
	}
	for v := range seq {
		u.Add(v)
	}
	return u, nil
}

// Size returns the number of elements.
// Time: O(1); Space: O(1)
func (u *SplayTree[T, S]) Size() S {
	return u.size
}

// Empty reports whether there's no element.
// Time: O(1); Space: O(1)
func (u *SplayTree[T, S]) Empty() bool {
	return u.size == 0
}

// Clear the tree.
// Time: O(1); Space: O(1)
func (u *SplayTree[T, S]) Clear() {
	u.root, u.size = nil, 0
}

// find descends from the root looking for v. The search stops at the node
// equal to v, or at the last node visited when v isn't present, which is
// then either the predecessor or the successor of v. That node is splayed
// to the root and returned. Returns nil only when the tree is empty.
func (u *SplayTree[T, S]) find(v T) *node[T] {
	var last *node[T]
	for cur := u.root; cur != nil; {
		last = cur
		if c := u.cmp(v, cur.v); c < 0 {
			cur = cur.l
		} else if c > 0 {
			cur = cur.r
		} else {
			break
		}
	}
	if last != nil {
		splay(last)
		u.root = last
	}
	return last
}

// split the tree by v into two detached trees, l holding the values less
// than v and r holding the values greater than v. If v is present, its node
// is discarded, size is decremented and found is true. u.root is left nil;
// the caller owns both parts.
func (u *SplayTree[T, S]) split(v T) (l, r *node[T], found bool) {
	n := u.find(v)
	if n == nil {
		return nil, nil, false
	}
	u.root = nil
	if c := u.cmp(v, n.v); c == 0 {
		l, r = n.l, n.r
		setParent(l, nil)
		setParent(r, nil)
		n.l, n.r = nil, nil
		u.size--
		return l, r, true
	} else if c < 0 {
		l = n.l
		n.l = nil
		setParent(l, nil)
		return l, n, false
	} else {
		r = n.r
		n.r = nil
		setParent(r, nil)
		return n, r, false
	}
}

// Add v to the tree. Returns true if v wasn't in the tree. When an equal
// value is present, it is replaced by v and the size stays the same.
// Time: amortized O(log n)
func (u *SplayTree[T, S]) Add(v T) bool {
	l, r, found := u.split(v)
	n := &node[T]{v: v, l: l, r: r}
	setParent(l, n)
	setParent(r, n)
	u.root = n
	u.size++
	return !found
}

// Remove v from the tree. Returns true if v was in the tree; removing an
// absent value leaves the content unchanged.
// Time: amortized O(log n)
func (u *SplayTree[T, S]) Remove(v T) bool {
	l, r, found := u.split(v)
	u.root = merge(l, r)
	return found
}

// Has element v. The node visited last becomes the root.
// Time: amortized O(log n)
func (u *SplayTree[T, S]) Has(v T) bool {
	n := u.find(v)
	return n != nil && u.cmp(v, n.v) == 0
}

// Min element; it becomes the root.
// Time: amortized O(log n)
func (u *SplayTree[T, S]) Min() (T, error) {
	if u.root == nil {
		return *new(T), &EmptyTreeError{"Min"}
	}
	n := leftmost(u.root)
	splay(n)
	u.root = n
	return n.v, nil
}

// Max element; it becomes the root.
// Time: amortized O(log n)
func (u *SplayTree[T, S]) Max() (T, error) {
	if u.root == nil {
		return *new(T), &EmptyTreeError{"Max"}
	}
	n := rightmost(u.root)
	splay(n)
	u.root = n
	return n.v, nil
}

// Predecessor returns the greatest element less than v. The returned
// element becomes the root.
// Time: amortized O(log n)
func (u *SplayTree[T, S]) Predecessor(v T) (T, bool) {
	n := u.find(v)
	if n == nil {
		return *new(T), false
	} else if u.cmp(n.v, v) < 0 {
		return n.v, true
	} else if n.l == nil {
		return *new(T), false
	}
	n = rightmost(n.l)
	splay(n)
	u.root = n
	return n.v, true
}

// Successor returns the smallest element greater than v. The returned
// element becomes the root.
// Time: amortized O(log n)
func (u *SplayTree[T, S]) Successor(v T) (T, bool) {
	n := u.find(v)
	if n == nil {
		return *new(T), false
	} else if u.cmp(n.v, v) > 0 {
		return n.v, true
	} else if n.r == nil {
		return *new(T), false
	}
	n = leftmost(n.r)
	splay(n)
	u.root = n
	return n.v, true
}

// traverse returns a sequence walking from first(root) through next.
func (u *SplayTree[T, S]) traverse(first, next func(*node[T]) *node[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if u.root == nil {
			return
		}
		for cur := first(u.root); cur != nil; cur = next(cur) {
			if !yield(cur.v) {
				return
			}
		}
	}
}

// InOrder [Tree.InOrder]
// Time: O(n) for the whole sequence; Space: O(1)
func (u *SplayTree[T, S]) InOrder() iter.Seq[T] {
	return u.traverse(leftmost[T], inOrderNext[T])
}

// PreOrder [Tree.PreOrder]
// Time: O(n) for the whole sequence; Space: O(1)
func (u *SplayTree[T, S]) PreOrder() iter.Seq[T] {
	return u.traverse(func(n *node[T]) *node[T] { return n }, preOrderNext[T])
}

// PostOrder [Tree.PostOrder]
// Time: O(n) for the whole sequence; Space: O(1)
func (u *SplayTree[T, S]) PostOrder() iter.Seq[T] {
	return u.traverse(postOrderFirst[T], postOrderNext[T])
}

// Backward returns a sequence of the elements in descending order.
// Time: O(n) for the whole sequence; Space: O(1)
func (u *SplayTree[T, S]) Backward() iter.Seq[T] {
	return u.traverse(rightmost[T], inOrderPrev[T])
}

// Corrupt [Tree.Corrupt]
// Time: O(n); Space: O(D)
func (u *SplayTree[T, S]) Corrupt() bool {
	if u.root == nil {
		return u.size != 0
	} else if u.root.p != nil {
		return true
	}
	var count S
	for st := []*node[T]{u.root}; len(st) > 0; {
		n := st[len(st)-1]
		st = st[:len(st)-1]
		if count++; count > u.size {
			return true
		}
		for _, c := range [2]*node[T]{n.l, n.r} {
			if c != nil {
				if c.p != n {
					return true
				}
				st = append(st, c)
			}
		}
	}
	if count != u.size {
		return true
	}
	prev := leftmost(u.root)
	for cur := inOrderNext(prev); cur != nil; prev, cur = cur, inOrderNext(cur) {
		if u.cmp(prev.v, cur.v) >= 0 {
			return true
		}
	}
	return false
}
