package Arrays

import (
	"fmt"
	"iter"
)

// OutOfRangeError is returned by At and Set, and panicked with by Get, when an
// index is not less than the length.
type OutOfRangeError struct {
	Index, Len uint
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("Arrays: index %d out of range [0,%d)", e.Index, e.Len)
}

// Fixed is an array whose length is chosen at runtime and never changes afterwards,
// except through Clear which releases the storage.
type Fixed[T any] struct {
	vs []T
}

// New returns a Fixed of length n holding zero values.
func New[T any](n uint) *Fixed[T] {
	return &Fixed[T]{make([]T, n)}
}

// From returns a Fixed holding a copy of vs.
func From[T any](vs []T) *Fixed[T] {
	return &Fixed[T]{append(make([]T, 0, len(vs)), vs...)}
}

func (u *Fixed[T]) Len() uint {
	return uint(len(u.vs))
}

// At returns the element at i, or *OutOfRangeError.
func (u *Fixed[T]) At(i uint) (T, error) {
	if i >= uint(len(u.vs)) {
		return *new(T), &OutOfRangeError{i, uint(len(u.vs))}
	}
	return u.vs[i], nil
}

// Get returns a pointer to the element at i. It panics with *OutOfRangeError.
func (u *Fixed[T]) Get(i uint) *T {
	if i >= uint(len(u.vs)) {
		panic(&OutOfRangeError{i, uint(len(u.vs))})
	}
	return &u.vs[i]
}

// Set the element at i to v, or return *OutOfRangeError.
func (u *Fixed[T]) Set(i uint, v T) error {
	if i >= uint(len(u.vs)) {
		return &OutOfRangeError{i, uint(len(u.vs))}
	}
	u.vs[i] = v
	return nil
}

// Front returns the first element and true, or (zero, false) if the length is 0.
func (u *Fixed[T]) Front() (T, bool) {
	if len(u.vs) == 0 {
		return *new(T), false
	}
	return u.vs[0], true
}

// Back returns the last element and true, or (zero, false) if the length is 0.
func (u *Fixed[T]) Back() (T, bool) {
	if len(u.vs) == 0 {
		return *new(T), false
	}
	return u.vs[len(u.vs)-1], true
}

// Fill every element with v.
func (u *Fixed[T]) Fill(v T) {
	for i := range u.vs {
		u.vs[i] = v
	}
}

// Clear releases the storage; the length becomes 0.
func (u *Fixed[T]) Clear() {
	u.vs = nil
}

// Slice returns the storage. Its length must not be changed.
func (u *Fixed[T]) Slice() []T {
	return u.vs
}

func (u *Fixed[T]) Clone() *Fixed[T] {
	return From(u.vs)
}

// All yields index-element pairs from the front.
func (u *Fixed[T]) All() iter.Seq2[uint, T] {
	return func(yield func(uint, T) bool) {
		for i, v := range u.vs {
			if !yield(uint(i), v) {
				return
			}
		}
	}
}

// Backward yields index-element pairs from the back.
func (u *Fixed[T]) Backward() iter.Seq2[uint, T] {
	return func(yield func(uint, T) bool) {
		for i := len(u.vs) - 1; i >= 0; i-- {
			if !yield(uint(i), u.vs[i]) {
				return
			}
		}
	}
}
