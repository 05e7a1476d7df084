package Queues

// Queue is a first-in first-out sequence.
type Queue[T any] interface {
	Push(item T)
	//Pop the oldest item. Fails with *EmptyQueueError when there is none.
	Pop() (T, error)
	//Peek at the oldest item without removing it, false if empty.
	Peek() (T, bool)
	Empty() bool
	Size() uint
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
