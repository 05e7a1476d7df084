package Trees

import (
	"iter"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/g-m-twostay/go-splay/Queues"
	"golang.org/x/exp/constraints"
)

// Order of a depth first or breadth first walk.
type Order byte

const (
	PreOrder Order = iota
	InOrder
	PostOrder
	LevelOrder
)

func (o Order) String() string {
	switch o {
	case PreOrder:
		return "preorder"
	case InOrder:
		return "inorder"
	case PostOrder:
		return "postorder"
	case LevelOrder:
		return "levelorder"
	}
	return "unknown"
}

type frame[T constraints.Ordered] struct {
	n        *Node[T]
	d        int
	expanded bool
}

// Walk [Tree.Walk]
// The root has depth 0. The returned sequence is lazy, doesn't splay or
// otherwise change the tree, and can be ranged over any number of times.
// The tree must not be modified while a walk is in progress.
// Stack usage is independent of the tree's height: depth first orders keep
// their pending nodes in an explicit stack, LevelOrder in a queue.
// Time: O(n) per full walk; Space: O(D), O(width) for LevelOrder
func (u *SplayTree[T]) Walk(o Order) iter.Seq2[*Node[T], int] {
	switch o {
	case PreOrder:
		return u.preOrder
	case InOrder:
		return u.inOrder
	case PostOrder:
		return u.postOrder
	case LevelOrder:
		return u.levelOrder
	}
	panic("Trees: unknown walk order " + o.String())
}

func (u *SplayTree[T]) preOrder(yield func(*Node[T], int) bool) {
	if u.root == nil {
		return
	}
	st := arraystack.New()
	st.Push(frame[T]{n: u.root})
	for v, ok := st.Pop(); ok; v, ok = st.Pop() {
		f := v.(frame[T])
		if !yield(f.n, f.d) {
			return
		}
		if f.n.right != nil {
			st.Push(frame[T]{n: f.n.right, d: f.d + 1})
		}
		if f.n.left != nil {
			st.Push(frame[T]{n: f.n.left, d: f.d + 1})
		}
	}
}

func (u *SplayTree[T]) inOrder(yield func(*Node[T], int) bool) {
	st := arraystack.New()
	cur, d := u.root, 0
	for {
		for ; cur != nil; cur, d = cur.left, d+1 {
			st.Push(frame[T]{n: cur, d: d})
		}
		v, ok := st.Pop()
		if !ok {
			return
		}
		f := v.(frame[T])
		if !yield(f.n, f.d) {
			return
		}
		cur, d = f.n.right, f.d+1
	}
}

func (u *SplayTree[T]) postOrder(yield func(*Node[T], int) bool) {
	if u.root == nil {
		return
	}
	st := arraystack.New()
	st.Push(frame[T]{n: u.root})
	for v, ok := st.Pop(); ok; v, ok = st.Pop() {
		f := v.(frame[T])
		if f.expanded {
			if !yield(f.n, f.d) {
				return
			}
			continue
		}
		f.expanded = true
		st.Push(f)
		if f.n.right != nil {
			st.Push(frame[T]{n: f.n.right, d: f.d + 1})
		}
		if f.n.left != nil {
			st.Push(frame[T]{n: f.n.left, d: f.d + 1})
		}
	}
}

func (u *SplayTree[T]) levelOrder(yield func(*Node[T], int) bool) {
	if u.root == nil {
		return
	}
	q := Queues.NewArrayQueue[frame[T]](4)
	q.Push(frame[T]{n: u.root})
	for !q.Empty() {
		f, _ := q.Pop()
		if !yield(f.n, f.d) {
			return
		}
		if f.n.left != nil {
			q.Push(frame[T]{n: f.n.left, d: f.d + 1})
		}
		if f.n.right != nil {
			q.Push(frame[T]{n: f.n.right, d: f.d + 1})
		}
	}
}

// Keys of the tree in the given order.
// Time: O(n); Space: O(n)
func (u *SplayTree[T]) Keys(o Order) []T {
	ks := make([]T, 0, u.size)
	for n := range u.Walk(o) {
		ks = append(ks, n.key)
	}
	return ks
}

// InOrder [Tree.InOrder]
// The iterator follows successor links, so it needs no extra memory and never
// writes to the tree.
// Time: f(): amortized O(1) at each call to the returned function. Space: O(1)
func (u *SplayTree[T]) InOrder() func() (T, bool) {
	cur := u.root.Min()
	return func() (r T, has bool) {
		if cur == nil {
			return
		}
		r, has = cur.key, true
		cur = cur.Successor()
		return
	}
}
