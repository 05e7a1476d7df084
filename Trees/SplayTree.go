package Trees

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/containers"
	"golang.org/x/exp/constraints"
)

var (
	_ Tree[int]            = (*SplayTree[int])(nil)
	_ containers.Container = (*SplayTree[int])(nil)
)

// SplayTree is a self adjusting binary search tree. Every successful Search,
// every Insert and every Delete splays the accessed node to the root, so
// recently used keys stay close to the top. A sequence of m operations on a
// tree with at most n nodes takes O(m log n); a single operation can still take
// O(n).
// Keys that compare equal are allowed: a new key goes to the right of its
// equals. After rotations an equal key may also sit in a left subtree, so the
// order kept is "in-order is non-decreasing".
// The zero value is an empty tree ready to use. It isn't safe for concurrent use.
type SplayTree[T constraints.Ordered] struct {
	root *Node[T]
	size int
}

// New returns an empty SplayTree.
func New[T constraints.Ordered]() *SplayTree[T] {
	return new(SplayTree[T])
}

// From returns a SplayTree holding keys, inserted in the given order.
// Time: amortized O(n log n)
func From[T constraints.Ordered](keys ...T) *SplayTree[T] {
	u := New[T]()
	for _, k := range keys {
		u.Insert(k)
	}
	return u
}

// Root [Tree.Root]
func (u *SplayTree[T]) Root() *Node[T] {
	return u.root
}

// Size [Tree.Size]
// Time: O(1); Space: O(1)
func (u *SplayTree[T]) Size() int {
	return u.size
}

// Empty reports whether the tree has no keys.
func (u *SplayTree[T]) Empty() bool {
	return u.root == nil
}

// Clear drops every node.
func (u *SplayTree[T]) Clear() {
	u.root, u.size = nil, 0
}

// Values returns all keys in in-order.
// Time: O(n); Space: O(n)
func (u *SplayTree[T]) Values() []interface{} {
	vs := make([]interface{}, 0, u.size)
	for n := range u.Walk(InOrder) {
		vs = append(vs, n.key)
	}
	return vs
}

func (u *SplayTree[T]) String() string {
	var sb strings.Builder
	sb.WriteString("SplayTree\n")
	for i, v := range u.Values() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, v)
	}
	return sb.String()
}

// Insert [Tree.Insert]
// The new node is attached as a leaf, left of its parent if v is smaller than
// the parent's key and right otherwise, then splayed to the root.
// Time: amortized O(log n); Space: O(1)
func (u *SplayTree[T]) Insert(v T) *Node[T] {
	n := &Node[T]{key: v}
	var p *Node[T]
	for cur := u.root; cur != nil; {
		p = cur
		if v < cur.key {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	n.parent = p
	if p == nil {
		u.root = n
	} else if v < p.key {
		p.left = n
	} else {
		p.right = n
	}
	u.size++
	splay(n, &u.root)
	return n
}

// find descends from the root to the first node holding v. Nothing is splayed.
// Time: O(D); Space: O(1)
func (u *SplayTree[T]) find(v T) *Node[T] {
	cur := u.root
	for cur != nil && cur.key != v {
		if v < cur.key {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	return cur
}

// Search [Tree.Search]
// A found node is splayed to the root. A miss leaves the tree untouched.
// Time: amortized O(log n); Space: O(1)
func (u *SplayTree[T]) Search(v T) *Node[T] {
	n := u.find(v)
	if n != nil {
		splay(n, &u.root)
	}
	return n
}

// Has [Tree.Has]
// It is an access like Search, so a found key becomes the root.
func (u *SplayTree[T]) Has(v T) bool {
	return u.Search(v) != nil
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *SplayTree[T]) Minimum() (T, bool) {
	n := u.root.Min()
	return n.Key(), n != nil
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *SplayTree[T]) Maximum() (T, bool) {
	n := u.root.Max()
	return n.Key(), n != nil
}

// MinimumOf is the node with the smallest key under n, n itself included.
func (u *SplayTree[T]) MinimumOf(n *Node[T]) *Node[T] {
	return n.Min()
}

// MaximumOf is the node with the greatest key under n, n itself included.
func (u *SplayTree[T]) MaximumOf(n *Node[T]) *Node[T] {
	return n.Max()
}

// Successor of n in the tree, nil if n holds the maximum.
func (u *SplayTree[T]) Successor(n *Node[T]) *Node[T] {
	return n.Successor()
}

// Predecessor of n in the tree, nil if n holds the minimum.
func (u *SplayTree[T]) Predecessor(n *Node[T]) *Node[T] {
	return n.Predecessor()
}

// Corrupt [Tree.Corrupt]
// Checks that every child points back to its parent, that no node is reachable
// twice, that the root has no parent, that in-order is non-decreasing and that
// the node count equals Size.
// Time: O(n); Space: O(n)
func (u *SplayTree[T]) Corrupt() bool {
	if u.root == nil {
		return u.size != 0
	}
	if u.root.parent != nil {
		return true
	}
	seen := make(map[*Node[T]]struct{}, u.size)
	st := []*Node[T]{u.root}
	for len(st) > 0 {
		n := st[len(st)-1]
		st = st[:len(st)-1]
		if _, dup := seen[n]; dup {
			return true
		}
		seen[n] = struct{}{}
		if len(seen) > u.size {
			return true
		}
		for _, c := range [2]*Node[T]{n.left, n.right} {
			if c != nil {
				if c.parent != n {
					return true
				}
				st = append(st, c)
			}
		}
	}
	if len(seen) != u.size {
		return true
	}
	next := u.InOrder()
	prev, _ := next()
	for v, ok := next(); ok; v, ok = next() {
		if v < prev {
			return true
		}
		prev = v
	}
	return false
}
