package Queues

var _ Queue[int] = (*ArrayQueue[int])(nil)

// ArrayQueue is a Queue backed by a circular slice that grows by half when full.
// The zero value is an empty queue ready to use.
type ArrayQueue[T any] struct {
	sz, head uint
	content  []T
}

// NewArrayQueue with room for initCap items before the first resize.
func NewArrayQueue[T any](initCap uint) *ArrayQueue[T] {
	return &ArrayQueue[T]{content: make([]T, initCap)}
}

func (u *ArrayQueue[T]) Empty() bool {
	return u.sz == 0
}

func (u *ArrayQueue[T]) Size() uint {
	return u.sz
}

// resize moves the items to a new slice of length newLen>=sz, oldest first.
func (u *ArrayQueue[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if n := copy(nc, u.content[u.head:]); uint(n) < u.sz {
		copy(nc[n:], u.content[:u.sz-uint(n)])
	}
	u.content, u.head = nc, 0
}

// Shrink the backing slice to fit the current items.
func (u *ArrayQueue[T]) Shrink() {
	u.resize(u.sz | 1)
}

// Clear the queue, keeping the backing slice.
func (u *ArrayQueue[T]) Clear() {
	clear(u.content)
	u.head, u.sz = 0, 0
}

// Push [Queue.Push]
// Time: amortized O(1)
func (u *ArrayQueue[T]) Push(item T) {
	if l := uint(len(u.content)); u.sz == l {
		u.resize(max(l+l>>1, 4))
	}
	u.content[(u.head+u.sz)%uint(len(u.content))] = item
	u.sz++
}

// Pop [Queue.Pop]
// Time: O(1)
func (u *ArrayQueue[T]) Pop() (T, error) {
	if u.sz == 0 {
		return *new(T), &EmptyQueueError{}
	}
	t := u.content[u.head]
	u.content[u.head] = *new(T)
	u.head = (u.head + 1) % uint(len(u.content))
	u.sz--
	return t, nil
}

// Peek [Queue.Peek]
func (u *ArrayQueue[T]) Peek() (T, bool) {
	if u.sz == 0 {
		return *new(T), false
	}
	return u.content[u.head], true
}
