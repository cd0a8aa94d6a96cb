package Queues

var _ Queue[int] = (*ArrayQueue[int])(nil)

// ArrayQueue is a FIFO queue in a growable ring buffer.
type ArrayQueue[T any] struct {
	sz, head, tail uint
	content        []T
}

// New returns an empty ArrayQueue with room for initCap items.
func New[T any](initCap uint) *ArrayQueue[T] {
	return &ArrayQueue[T]{content: make([]T, initCap|1)}
}

func (u *ArrayQueue[T]) Empty() bool {
	return u.sz == 0
}

// resize the buffer to newLen>=sz, moving the items to the front.
func (u *ArrayQueue[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if u.head < u.tail {
		copy(nc, u.content[u.head:u.tail])
	} else if u.sz > 0 {
		n := copy(nc, u.content[u.head:])
		copy(nc[n:], u.content[:u.tail])
	}
	u.content = nc
	u.head, u.tail = 0, u.sz%newLen
}

// Shrink the buffer to fit the items.
func (u *ArrayQueue[T]) Shrink() {
	u.resize(u.sz | 1)
}

// Clear the queue, keeping the buffer.
func (u *ArrayQueue[T]) Clear() {
	clear(u.content)
	u.tail, u.head, u.sz = 0, 0, 0
}

func (u *ArrayQueue[T]) Size() uint {
	return u.sz
}

func (u *ArrayQueue[T]) Push(item T) {
	if u.sz == uint(len(u.content)) {
		u.resize(u.sz*3/2 + 1)
	}
	u.content[u.tail] = item
	u.tail = (u.tail + 1) % uint(len(u.content))
	u.sz++
}

func (u *ArrayQueue[T]) Pop() (item T, e error) {
	if u.Empty() {
		return *new(T), &EmptyQueueError{}
	}
	item = u.content[u.head]
	u.content[u.head] = *new(T)
	u.head = (u.head + 1) % uint(len(u.content))
	u.sz--
	return item, nil
}

func (u *ArrayQueue[T]) Peek() (item T) {
	if u.Empty() {
		return *new(T)
	}
	return u.content[u.head]
}
