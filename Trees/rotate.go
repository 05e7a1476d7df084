package Trees

import "golang.org/x/exp/constraints"

// rotateLeft promotes x.right into x's position. The promoted node's former
// left child becomes x's right child and x becomes its left child. root is the
// reference that holds x when x has no parent. In-order is unchanged.
// Panics with RotationError if x has no right child.
// Time: O(1); Space: O(1)
func rotateLeft[T constraints.Ordered](x *Node[T], root **Node[T]) {
	y := x.right
	if y == nil {
		panic(RotationError{"rotateLeft", "right"})
	}
	x.right = y.left
	if y.left != nil {
		y.left.parent = x
	}
	replaceChild(x, y, root)
	y.left = x
	x.parent = y
}

// rotateRight is the mirror of rotateLeft.
// Panics with RotationError if x has no left child.
// Time: O(1); Space: O(1)
func rotateRight[T constraints.Ordered](x *Node[T], root **Node[T]) {
	y := x.left
	if y == nil {
		panic(RotationError{"rotateRight", "left"})
	}
	x.left = y.right
	if y.right != nil {
		y.right.parent = x
	}
	replaceChild(x, y, root)
	y.right = x
	x.parent = y
}
