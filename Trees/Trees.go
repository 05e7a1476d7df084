package Trees

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Tree is an ordered container of keys built from linked Nodes.
// Methods with a bool as the second return value use it to tell whether the
// first one is defined; on an empty tree Minimum returns (x T, false) and x
// shouldn't be used.
// Duplicate keys are allowed and kept next to each other in in-order.
// Methods implemented recursively should be noted, otherwise functions are
// implemented iteratively.
type Tree[T constraints.Ordered] interface {
	//Insert v and return the node holding it.
	Insert(v T) *Node[T]
	//Search for a node holding v, nil if there's none.
	Search(v T) *Node[T]
	//Delete one occurrence of v. The error matches ErrKeyNotFound if v is absent.
	Delete(v T) error
	//Remove is Delete reporting success as a bool.
	Remove(v T) bool
	//Has element v.
	Has(v T) bool
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Root node, nil when empty. The returned node must be treated as read-only.
	Root() *Node[T]
	//Size of the tree.
	Size() int
	//InOrder returns A closure function f acting like an iterator. f
	//gives values in the in-order traversal of the tree.
	//val, valid=f(); val is meaningful only if valid is true. When valid==false,
	//then f is exhausted. The tree must not be modified during the iteration.
	InOrder() func() (T, bool)
	//Walk the tree in the given order, yielding every node with its depth.
	Walk(o Order) iter.Seq2[*Node[T], int]
	//Corrupt returns whether the tree has corrupt structures.
	Corrupt() bool
}
