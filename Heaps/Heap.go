package Heaps

import (
	"cmp"

	"github.com/g-m-twostay/go-containers/Queues"
)

var _ Queues.Queue[int] = (*Heap[int])(nil)

// Heap is a binary heap adaptor over a slice. The front is the element e for which
// less(e, x) is false for every other x, so less=cmp.Less gives a max heap.
type Heap[T any] struct {
	vs   []T
	less func(a, b T) bool
}

// NewFunc returns a heap ordered by less holding a copy of vs.
// Time: O(n)
func NewFunc[T any](less func(a, b T) bool, vs ...T) *Heap[T] {
	u := &Heap[T]{append([]T(nil), vs...), less}
	u.heapify()
	return u
}

// NewMax returns a heap with the largest element at the front.
func NewMax[T cmp.Ordered](vs ...T) *Heap[T] {
	return NewFunc(cmp.Less[T], vs...)
}

// NewMin returns a heap with the smallest element at the front.
func NewMin[T cmp.Ordered](vs ...T) *Heap[T] {
	return NewFunc(func(a, b T) bool { return cmp.Less(b, a) }, vs...)
}

func (u *Heap[T]) heapify() {
	for i := len(u.vs)/2 - 1; i >= 0; i-- {
		u.down(i, len(u.vs))
	}
}

func (u *Heap[T]) up(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !u.less(u.vs[p], u.vs[i]) {
			break
		}
		u.vs[p], u.vs[i] = u.vs[i], u.vs[p]
		i = p
	}
}

// down sifts vs[i] within vs[:n].
func (u *Heap[T]) down(i, n int) {
	for {
		c := 2*i + 1
		if c >= n {
			return
		}
		if r := c + 1; r < n && u.less(u.vs[c], u.vs[r]) {
			c = r
		}
		if !u.less(u.vs[i], u.vs[c]) {
			return
		}
		u.vs[i], u.vs[c] = u.vs[c], u.vs[i]
		i = c
	}
}

// Push v onto the heap.
// Time: O(log n)
func (u *Heap[T]) Push(v T) {
	u.vs = append(u.vs, v)
	u.up(len(u.vs) - 1)
}

// Pop the front. Returns *Queues.EmptyQueueError if the heap is empty.
// Time: O(log n)
func (u *Heap[T]) Pop() (T, error) {
	if len(u.vs) == 0 {
		return *new(T), &Queues.EmptyQueueError{}
	}
	n := len(u.vs) - 1
	top := u.vs[0]
	u.vs[0] = u.vs[n]
	u.vs[n] = *new(T)
	u.vs = u.vs[:n]
	u.down(0, n)
	return top, nil
}

// Peek returns the front, or the zero value of T if the heap is empty.
func (u *Heap[T]) Peek() T {
	v, _ := u.Front()
	return v
}

// Front returns the front and true, or (zero, false) if the heap is empty.
func (u *Heap[T]) Front() (T, bool) {
	if len(u.vs) == 0 {
		return *new(T), false
	}
	return u.vs[0], true
}

func (u *Heap[T]) Size() uint {
	return uint(len(u.vs))
}

func (u *Heap[T]) Empty() bool {
	return len(u.vs) == 0
}

// Clear the heap, keeping its capacity.
func (u *Heap[T]) Clear() {
	clear(u.vs)
	u.vs = u.vs[:0]
}

// Reserve room for n more elements.
func (u *Heap[T]) Reserve(n int) {
	if free := cap(u.vs) - len(u.vs); n > free {
		vs := make([]T, len(u.vs), len(u.vs)+n)
		copy(vs, u.vs)
		u.vs = vs
	}
}

// Shrink the capacity to the size.
func (u *Heap[T]) Shrink() {
	u.vs = append([]T(nil), u.vs...)
}

// Slice returns the underlying heap-ordered storage. It must not be modified.
func (u *Heap[T]) Slice() []T {
	return u.vs
}

// Sorted returns a copy of the elements in ascending order according to less,
// so the front comes last.
// Time: O(n log n)
func (u *Heap[T]) Sorted() []T {
	c := Heap[T]{append([]T(nil), u.vs...), u.less}
	for n := len(c.vs) - 1; n > 0; n-- {
		c.vs[0], c.vs[n] = c.vs[n], c.vs[0]
		c.down(0, n)
	}
	return c.vs
}
