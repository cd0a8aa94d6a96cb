package Queues

// Queue is a first-out container. What comes out first depends on the
// implementation: insertion order for ArrayQueue, priority for a heap.
type Queue[T any] interface {
	Push(item T)
	//Pop returns *EmptyQueueError when the queue is empty.
	Pop() (T, error)
	//Peek returns the item Pop would return, or the zero value of T when empty.
	Peek() T
	Empty() bool
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
