package Lists

import (
	"iter"

	"github.com/g-m-twostay/go-containers/Queues"
)

var _ Queues.Queue[int] = (*Circular[int])(nil)

// Element is a node of a Circular list.
type Element[T any] struct {
	prev, next *Element[T]
	list       *Circular[T]
	Value      T
}

// Next returns the following element. The element after the back is the front.
// Returns nil once e has been removed.
func (e *Element[T]) Next() *Element[T] {
	if e.list == nil {
		return nil
	}
	return e.next
}

// Prev returns the preceding element. The element before the front is the back.
// Returns nil once e has been removed.
func (e *Element[T]) Prev() *Element[T] {
	if e.list == nil {
		return nil
	}
	return e.prev
}

// ForeignElementError is panicked with when an element that isn't in the list is passed to it.
type ForeignElementError struct {
	Op string
}

func (e *ForeignElementError) Error() string {
	return "Lists: " + e.Op + ": element doesn't belong to this list"
}

// Circular is a doubly-linked circular list. head is the front and head.prev the back.
// The zero value is an empty list ready to use.
type Circular[T any] struct {
	head *Element[T]
	n    uint
}

// New returns a list holding vs in order.
func New[T any](vs ...T) *Circular[T] {
	u := new(Circular[T])
	for _, v := range vs {
		u.PushBack(v)
	}
	return u
}

func (u *Circular[T]) Len() uint {
	return u.n
}

func (u *Circular[T]) Empty() bool {
	return u.n == 0
}

// Front element, nil if empty.
func (u *Circular[T]) Front() *Element[T] {
	return u.head
}

// Back element, nil if empty.
func (u *Circular[T]) Back() *Element[T] {
	if u.head == nil {
		return nil
	}
	return u.head.prev
}

// link a new element holding v right before mark, or as the only element.
func (u *Circular[T]) link(v T, mark *Element[T]) *Element[T] {
	e := &Element[T]{list: u, Value: v}
	if mark == nil {
		e.prev, e.next = e, e
		u.head = e
	} else {
		e.prev, e.next = mark.prev, mark
		mark.prev.next = e
		mark.prev = e
	}
	u.n++
	return e
}

func (u *Circular[T]) PushBack(v T) *Element[T] {
	return u.link(v, u.head)
}

func (u *Circular[T]) PushFront(v T) *Element[T] {
	e := u.link(v, u.head)
	u.head = e
	return e
}

// InsertBefore inserts v right before mark. Panics with *ForeignElementError if mark isn't in u.
func (u *Circular[T]) InsertBefore(v T, mark *Element[T]) *Element[T] {
	u.own(mark, "InsertBefore")
	e := u.link(v, mark)
	if mark == u.head {
		u.head = e
	}
	return e
}

// InsertAfter inserts v right after mark. Panics with *ForeignElementError if mark isn't in u.
func (u *Circular[T]) InsertAfter(v T, mark *Element[T]) *Element[T] {
	u.own(mark, "InsertAfter")
	return u.link(v, mark.next)
}

func (u *Circular[T]) own(e *Element[T], op string) {
	if e == nil || e.list != u {
		panic(&ForeignElementError{op})
	}
}

// Remove e from the list and return its value. Panics with *ForeignElementError if e isn't in u.
func (u *Circular[T]) Remove(e *Element[T]) T {
	u.own(e, "Remove")
	if u.n == 1 {
		u.head = nil
	} else {
		e.prev.next = e.next
		e.next.prev = e.prev
		if e == u.head {
			u.head = e.next
		}
	}
	e.prev, e.next, e.list = nil, nil, nil
	u.n--
	return e.Value
}

// PopFront returns *Queues.EmptyQueueError if the list is empty.
func (u *Circular[T]) PopFront() (T, error) {
	if u.head == nil {
		return *new(T), &Queues.EmptyQueueError{}
	}
	return u.Remove(u.head), nil
}

// PopBack returns *Queues.EmptyQueueError if the list is empty.
func (u *Circular[T]) PopBack() (T, error) {
	if u.head == nil {
		return *new(T), &Queues.EmptyQueueError{}
	}
	return u.Remove(u.head.prev), nil
}

// Push appends v, the list acting as a FIFO queue.
func (u *Circular[T]) Push(v T) {
	u.PushBack(v)
}

// Pop removes the front.
func (u *Circular[T]) Pop() (T, error) {
	return u.PopFront()
}

// Peek returns the front value, or the zero value of T if the list is empty.
func (u *Circular[T]) Peek() T {
	if u.head == nil {
		return *new(T)
	}
	return u.head.Value
}

// Rotate the front k steps forward, or -k steps backward when k<0.
// Time: O(min(|k| mod n, n - |k| mod n))
func (u *Circular[T]) Rotate(k int) {
	if u.n < 2 {
		return
	}
	n := int(u.n)
	if k %= n; k < 0 {
		k += n
	}
	if k <= n/2 {
		for ; k > 0; k-- {
			u.head = u.head.next
		}
	} else {
		for k = n - k; k > 0; k-- {
			u.head = u.head.prev
		}
	}
}

// Clear unlinks every element.
func (u *Circular[T]) Clear() {
	for e := u.head; u.n > 0; u.n-- {
		nx := e.next
		e.prev, e.next, e.list = nil, nil, nil
		e = nx
	}
	u.head = nil
}

// All yields the values from the front once around the ring. The list must not be modified during the iteration.
func (u *Circular[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		e := u.head
		for k := u.n; k > 0; k-- {
			if !yield(e.Value) {
				return
			}
			e = e.next
		}
	}
}

// Backward yields the values from the back once around the ring.
func (u *Circular[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		e := u.Back()
		for k := u.n; k > 0; k-- {
			if !yield(e.Value) {
				return
			}
			e = e.prev
		}
	}
}

// Values returns the values from the front in a new slice.
func (u *Circular[T]) Values() []T {
	vs := make([]T, 0, u.n)
	for v := range u.All() {
		vs = append(vs, v)
	}
	return vs
}
