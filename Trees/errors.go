package Trees

import (
	"errors"
	"fmt"
)

// ErrKeyNotFound is matched by every KeyNotFoundError through errors.Is.
var ErrKeyNotFound = errors.New("key not found")

// KeyNotFoundError is returned by SplayTree.Delete when no node holds Key.
type KeyNotFoundError[T any] struct {
	Key T
}

func (e *KeyNotFoundError[T]) Error() string {
	return fmt.Sprintf("key %v not found in tree", e.Key)
}

func (e *KeyNotFoundError[T]) Is(target error) bool {
	return target == ErrKeyNotFound
}

// RotationError is the panic value of a rotation whose required child is
// absent. It signals a broken internal contract, callers of the public API
// never cause it.
type RotationError struct {
	Op, Side string
}

func (e RotationError) Error() string {
	return e.Op + ": node has no " + e.Side + " child"
}
