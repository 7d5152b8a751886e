package Trees

// A node in the SplayTree
// l and r own the subtrees; p only points back to the node owning this one
// and is nil exactly for the root of a tree. For every node n with a child c,
// c.p==n.
type node[T any] struct {
	v       T
	l, r, p *node[T]
}

// setParent of c to p, c may be nil.
func setParent[T any](c, p *node[T]) {
	if c != nil {
		c.p = p
	}
}

// rotate moves c above its parent, keeping the in-order sequence. c takes the
// position of its parent under the grandparent, and the parent becomes c's
// child, adopting the subtree c gives up. c.p mustn't be nil.
// Time: O(1); Space: O(1)
func rotate[T any](c *node[T]) {
	p := c.p
	g := p.p
	if g != nil {
		if g.l == p {
			g.l = c
		} else {
			g.r = c
		}
	}
	if p.l == c {
		p.l = c.r
		setParent(c.r, p)
		c.r = p
	} else {
		p.r = c.l
		setParent(c.l, p)
		c.l = p
	}
	p.p, c.p = c, g
}

// splay n to the root of the tree it's in. The caller is responsible for
// recording n as the new root.
// Time: amortized O(log n)
func splay[T any](n *node[T]) {
	for p := n.p; p != nil; p = n.p {
		if g := p.p; g == nil { //zig
			rotate(n)
		} else if (g.l == p) == (p.l == n) { //zig-zig
			rotate(p)
			rotate(n)
		} else { //zig-zag
			rotate(n)
			rotate(n)
		}
	}
}

// merge two detached trees where every value in l is less than every value
// in r. Returns the root of the result.
func merge[T any](l, r *node[T]) *node[T] {
	if l == nil {
		return r
	} else if r == nil {
		return l
	}
	m := rightmost(l)
	splay(m)
	m.r, r.p = r, m
	return m
}

func leftmost[T any](n *node[T]) *node[T] {
	for n.l != nil {
		n = n.l
	}
	return n
}

func rightmost[T any](n *node[T]) *node[T] {
	for n.r != nil {
		n = n.r
	}
	return n
}

// inOrderNext returns the node after n in in-order, nil if n is the last.
func inOrderNext[T any](n *node[T]) *node[T] {
	if n.r != nil {
		return leftmost(n.r)
	}
	for n.p != nil && n.p.r == n {
		n = n.p
	}
	return n.p
}

// inOrderPrev is the mirror of inOrderNext.
func inOrderPrev[T any](n *node[T]) *node[T] {
	if n.l != nil {
		return rightmost(n.l)
	}
	for n.p != nil && n.p.l == n {
		n = n.p
	}
	return n.p
}

func preOrderNext[T any](n *node[T]) *node[T] {
	if n.l != nil {
		return n.l
	} else if n.r != nil {
		return n.r
	}
	for ; n.p != nil; n = n.p {
		if n.p.l == n && n.p.r != nil {
			return n.p.r
		}
	}
	return nil
}

// postOrderFirst is the deepest node reachable from n preferring left children.
func postOrderFirst[T any](n *node[T]) *node[T] {
	for {
		if n.l != nil {
			n = n.l
		} else if n.r != nil {
			n = n.r
		} else {
			return n
		}
	}
}

func postOrderNext[T any](n *node[T]) *node[T] {
	if p := n.p; p != nil && p.l == n && p.r != nil {
		return postOrderFirst(p.r)
	}
	return n.p
}
