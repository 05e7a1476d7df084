// Package printer renders trees from package Trees for people: key sequences
// in a chosen traversal order and indented diagrams. It only reads the tree.
package printer

import (
	"bufio"
	"fmt"
	"io"
	"iter"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/g-m-twostay/go-splay/Trees"
	"github.com/xlab/treeprint"
	"golang.org/x/exp/constraints"
)

// Source is the read-only view of a tree the printer needs.
type Source[T constraints.Ordered] interface {
	Root() *Trees.Node[T]
	Walk(o Trees.Order) iter.Seq2[*Trees.Node[T], int]
}

// WriteOrder writes the keys of src in order o to w, separated by single
// spaces and followed by a newline. An empty tree writes just the newline.
func WriteOrder[T constraints.Ordered](w io.Writer, src Source[T], o Trees.Order) error {
	bw := bufio.NewWriter(w)
	first := true
	for n := range src.Walk(o) {
		if !first {
			bw.WriteByte(' ')
		}
		first = false
		fmt.Fprint(bw, n.Key())
	}
	bw.WriteByte('\n')
	return bw.Flush()
}

type branch[T constraints.Ordered] struct {
	n  *Trees.Node[T]
	tp treeprint.Tree
}

// Diagram draws src as an indented tree, one key per line. Children are
// labelled [L] or [R] so a lone child's side is visible. An empty tree gives
// the line "<empty>".
func Diagram[T constraints.Ordered](src Source[T]) string {
	root := src.Root()
	if root == nil {
		return "<empty>\n"
	}
	tp := treeprint.NewWithRoot(root.Key())
	st := arraystack.New()
	st.Push(branch[T]{root, tp})
	for v, ok := st.Pop(); ok; v, ok = st.Pop() {
		b := v.(branch[T])
		for _, c := range [2]struct {
			side string
			n    *Trees.Node[T]
		}{{"L", b.n.Left()}, {"R", b.n.Right()}} {
			if c.n == nil {
				continue
			}
			if c.n.Left() == nil && c.n.Right() == nil {
				b.tp.AddMetaNode(c.side, c.n.Key())
			} else {
				st.Push(branch[T]{c.n, b.tp.AddMetaBranch(c.side, c.n.Key())})
			}
		}
	}
	return tp.String()
}
