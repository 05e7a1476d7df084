package Trees

import "golang.org/x/exp/constraints"

// splay rotates x up until it has no parent, i.e. until *root == x.
// Each step looks at x, its parent p and grandparent g:
//   - zig: p is the top, one rotation on p.
//   - zig-zig: x and p are children on the same side, rotate g then p.
//   - zig-zag: x and p are on opposite sides, rotate p then g.
//
// Every step moves x at least one level up.
// Time: amortized O(log n)
func splay[T constraints.Ordered](x *Node[T], root **Node[T]) {
	for x.parent != nil {
		p := x.parent
		g := p.parent
		switch {
		case g == nil:
			if x == p.left {
				rotateRight(p, root)
			} else {
				rotateLeft(p, root)
			}
		case x == p.left && p == g.left:
			rotateRight(g, root)
			rotateRight(p, root)
		case x == p.right && p == g.right:
			rotateLeft(g, root)
			rotateLeft(p, root)
		case x == p.right && p == g.left:
			rotateLeft(p, root)
			rotateRight(g, root)
		default: // x == p.left && p == g.right
			rotateRight(p, root)
			rotateLeft(g, root)
		}
	}
}
