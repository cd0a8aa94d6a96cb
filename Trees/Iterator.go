package Trees

import "golang.org/x/exp/constraints"

// Iterator is a cursor to a node of a Splay, or to the End sentinel.
// It doesn't own the node: erasing the node invalidates every iterator to it, and
// using an invalidated iterator panics with *IteratorError. Lookups splay the tree
// and change which nodes are adjacent, but never which value an iterator refers to.
// The zero value is an End iterator of no tree.
type Iterator[T any, S constraints.Unsigned] struct {
	u   *Splay[T, S]
	i   S
	gen uint32
}

// IsEnd reports whether it is the End sentinel.
func (it Iterator[T, S]) IsEnd() bool {
	return it.i == 0
}

// Value at it.
func (it Iterator[T, S]) Value() T {
	return it.u.ns[it.u.check(it, "Value")].v
}

// Ref returns a pointer to the value at it. The pointer is valid until the next
// insertion into the tree. Writes through it must not change the value's order.
func (it Iterator[T, S]) Ref() *T {
	return &it.u.ns[it.u.check(it, "Ref")].v
}

// Next returns an iterator to the in-order successor, End after the maximum.
// Panics if it is End.
// Time: amortized O(1)
func (it Iterator[T, S]) Next() Iterator[T, S] {
	return it.u.iter(it.u.next(it.u.check(it, "Next")))
}

// Prev returns an iterator to the in-order predecessor, End before the minimum.
// Prev of End is the maximum; it panics if the tree is empty.
// Time: amortized O(1)
func (it Iterator[T, S]) Prev() Iterator[T, S] {
	if it.i == 0 {
		if it.u == nil || it.u.root == 0 {
			panic(&IteratorError{"Prev", "end iterator of an empty tree"})
		}
		return it.u.iter(it.u.maxOf(it.u.root))
	}
	return it.u.iter(it.u.prev(it.u.check(it, "Prev")))
}

// Equal reports whether it and o refer to the same node of the same tree, or are both its End.
func (it Iterator[T, S]) Equal(o Iterator[T, S]) bool {
	return it.u == o.u && it.i == o.i && it.gen == o.gen
}

// ReverseIterator walks a Splay from the maximum down. REnd sits before the minimum.
type ReverseIterator[T any, S constraints.Unsigned] struct {
	it Iterator[T, S]
}

// Base returns the forward iterator to the same node.
func (r ReverseIterator[T, S]) Base() Iterator[T, S] {
	return r.it
}

func (r ReverseIterator[T, S]) IsEnd() bool {
	return r.it.IsEnd()
}

func (r ReverseIterator[T, S]) Value() T {
	return r.it.Value()
}

func (r ReverseIterator[T, S]) Ref() *T {
	return r.it.Ref()
}

// Next moves towards the minimum. Panics if r is REnd.
func (r ReverseIterator[T, S]) Next() ReverseIterator[T, S] {
	u := r.it.u
	return ReverseIterator[T, S]{u.iter(u.prev(u.check(r.it, "Next")))}
}

// Prev moves towards the maximum. Prev of REnd is the minimum; it panics if the tree is empty.
func (r ReverseIterator[T, S]) Prev() ReverseIterator[T, S] {
	u := r.it.u
	if r.it.i == 0 {
		if u == nil || u.root == 0 {
			panic(&IteratorError{"Prev", "end iterator of an empty tree"})
		}
		return ReverseIterator[T, S]{u.iter(u.minOf(u.root))}
	}
	return ReverseIterator[T, S]{u.iter(u.next(u.check(r.it, "Prev")))}
}

func (r ReverseIterator[T, S]) Equal(o ReverseIterator[T, S]) bool {
	return r.it.Equal(o.it)
}
