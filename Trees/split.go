package Trees

import "golang.org/x/exp/constraints"

// split detaches the right subtree of x, which must have no parent.
// s is x with no right child, t is the former right subtree. Every key of s is
// <= every key of t.
// Time: O(1); Space: O(1)
func split[T constraints.Ordered](x *Node[T]) (s, t *Node[T]) {
	if t = x.right; t != nil {
		t.parent = nil
		x.right = nil
	}
	return x, t
}

// join merges two parentless subtrees where every key of s is <= every key of
// t. The maximum of s is splayed to the top of s and t hangs off its right.
// Returns the combined root; if either side is nil the other is returned as is.
// Time: amortized O(log n); Space: O(1)
func join[T constraints.Ordered](s, t *Node[T]) *Node[T] {
	if s == nil {
		return t
	}
	if t == nil {
		return s
	}
	x := s.Max()
	splay(x, &s)
	x.right = t
	t.parent = x
	return x
}

// Delete [Tree.Delete]
// The scan walks right on keys <= v and left otherwise, remembering the last
// node holding v, and nothing is splayed during it. With duplicates this picks
// the deepest match on the path. The match is splayed to the root, split off,
// and the root becomes the join of its two subtrees.
// On a miss the tree is untouched and a *KeyNotFoundError is returned.
// Time: amortized O(log n); Space: O(1)
func (u *SplayTree[T]) Delete(v T) error {
	var x *Node[T]
	for cur := u.root; cur != nil; {
		if cur.key == v {
			x = cur
		}
		if cur.key <= v {
			cur = cur.right
		} else {
			cur = cur.left
		}
	}
	if x == nil {
		return &KeyNotFoundError[T]{v}
	}
	splay(x, &u.root)
	s, t := split(x)
	l := s.left
	if l != nil {
		l.parent = nil
		s.left = nil
	}
	u.root = join(l, t)
	u.size--
	return nil
}

// Remove [Tree.Remove]
func (u *SplayTree[T]) Remove(v T) bool {
	return u.Delete(v) == nil
}
