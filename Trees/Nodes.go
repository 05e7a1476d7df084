package Trees

import "golang.org/x/exp/constraints"

// Node is an element of a SplayTree. A node owns its left and right children;
// parent is only a back reference used for walking upwards.
// Nodes are created by SplayTree.Insert and handed out read-only, all accessors
// are safe to call on a nil *Node.
type Node[T constraints.Ordered] struct {
	key                 T
	parent, left, right *Node[T]
}

// Key held by the node.
func (n *Node[T]) Key() (k T) {
	if n != nil {
		k = n.key
	}
	return
}

// Left child, nil if absent.
func (n *Node[T]) Left() *Node[T] {
	if n == nil {
		return nil
	}
	return n.left
}

// Right child, nil if absent.
func (n *Node[T]) Right() *Node[T] {
	if n == nil {
		return nil
	}
	return n.right
}

// Parent of the node, nil for the root.
func (n *Node[T]) Parent() *Node[T] {
	if n == nil {
		return nil
	}
	return n.parent
}

// Min returns the node holding the smallest key in the subtree rooted at n.
// No splaying is done.
// Time: O(D); Space: O(1)
func (n *Node[T]) Min() *Node[T] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

// Max returns the node holding the greatest key in the subtree rooted at n.
// No splaying is done.
// Time: O(D); Space: O(1)
func (n *Node[T]) Max() *Node[T] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}

// Successor is the next node of n in in-order, or nil if n is the last one.
// Time: O(D); Space: O(1)
func (n *Node[T]) Successor() *Node[T] {
	if n == nil {
		return nil
	}
	if n.right != nil {
		return n.right.Min()
	}
	p := n.parent
	for p != nil && n == p.right {
		n, p = p, p.parent
	}
	return p
}

// Predecessor is the previous node of n in in-order, or nil if n is the first one.
// Time: O(D); Space: O(1)
func (n *Node[T]) Predecessor() *Node[T] {
	if n == nil {
		return nil
	}
	if n.left != nil {
		return n.left.Max()
	}
	p := n.parent
	for p != nil && n == p.left {
		n, p = p, p.parent
	}
	return p
}

// replaceChild re-points whichever link referred to old (the child link of
// old's parent, or *root when old has no parent) to nw, and sets nw's parent.
func replaceChild[T constraints.Ordered](old, nw *Node[T], root **Node[T]) {
	p := old.parent
	if p == nil {
		*root = nw
	} else if old == p.left {
		p.left = nw
	} else {
		p.right = nw
	}
	if nw != nil {
		nw.parent = p
	}
}
