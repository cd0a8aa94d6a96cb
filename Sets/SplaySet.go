package Sets

import (
	"cmp"
	"iter"

	"github.com/g-m-twostay/go-containers/Trees"
	"golang.org/x/exp/constraints"
)

var _ ExtendedSet[int] = (*SplaySet[int, uint])(nil)

// SplaySet is an ordered set stored in a Trees.Splay. Has splays like Trees.Splay.Contains,
// so a SplaySet isn't safe for concurrent use even when only read.
type SplaySet[E any, S constraints.Unsigned] struct {
	t    *Trees.Splay[E, S]
	cmp  func(E, E) int
	opts []Trees.Option
}

// New returns an empty SplaySet ordered by the natural ascending order of E.
func New[E cmp.Ordered, S constraints.Unsigned](opts ...Trees.Option) *SplaySet[E, S] {
	return NewFunc[E, S](cmp.Compare[E], opts...)
}

// NewFunc returns an empty SplaySet ordered by compare, see Trees.NewFunc.
func NewFunc[E any, S constraints.Unsigned](compare func(E, E) int, opts ...Trees.Option) *SplaySet[E, S] {
	return &SplaySet[E, S]{Trees.NewFunc[E, S](compare, opts...), compare, opts}
}

// From returns a SplaySet holding vs without repetitions.
func From[E cmp.Ordered, S constraints.Unsigned](vs ...E) *SplaySet[E, S] {
	u := New[E, S](Trees.WithCapacity(len(vs)))
	for _, v := range vs {
		u.Put(v)
	}
	return u
}

// Put e, returns false if it's already present. Panics with *Trees.CapacityError.
func (u *SplaySet[E, S]) Put(e E) bool {
	return u.t.Insert(e)
}

func (u *SplaySet[E, S]) Has(e E) bool {
	return u.t.Contains(e)
}

func (u *SplaySet[E, S]) Remove(e E) bool {
	return u.t.Remove(e)
}

func (u *SplaySet[E, S]) Size() uint {
	return u.t.Size()
}

func (u *SplaySet[E, S]) Empty() bool {
	return u.t.Empty()
}

func (u *SplaySet[E, S]) Clear() {
	u.t.Clear()
}

// Take removes and returns the minimum.
// Time: amortized O(log n)
func (u *SplaySet[E, S]) Take() (e E, ok bool) {
	if it := u.t.Begin(); !it.IsEnd() {
		e, ok = it.Value(), true
		u.t.Erase(it)
	}
	return
}

func (u *SplaySet[E, S]) Min() (E, bool) {
	return u.t.Minimum()
}

func (u *SplaySet[E, S]) Max() (E, bool) {
	return u.t.Maximum()
}

// Range calls f on the elements in ascending order until f returns false.
// The set must not be modified by f.
func (u *SplaySet[E, S]) Range(f func(E) bool) {
	for e := range u.t.All() {
		if !f(e) {
			return
		}
	}
}

// All yields the elements in ascending order.
func (u *SplaySet[E, S]) All() iter.Seq[E] {
	return u.t.All()
}

// PutAll puts every element of o, returning how many were new.
func (u *SplaySet[E, S]) PutAll(o Set[E]) (n uint) {
	o.Range(func(e E) bool {
		if u.Put(e) {
			n++
		}
		return true
	})
	return
}

// RemoveAll removes every element of o, returning how many were present.
func (u *SplaySet[E, S]) RemoveAll(o Set[E]) (n uint) {
	if o == Set[E](u) {
		n = u.Size()
		u.Clear()
		return
	}
	o.Range(func(e E) bool {
		if u.Remove(e) {
			n++
		}
		return true
	})
	return
}

// Eq reports whether u and o hold the same elements.
func (u *SplaySet[E, S]) Eq(o Set[E]) bool {
	if u.Size() != o.Size() {
		return false
	}
	for e := range u.t.All() {
		if !o.Has(e) {
			return false
		}
	}
	return true
}

// Intersect removes the elements that o doesn't have.
func (u *SplaySet[E, S]) Intersect(o Set[E]) {
	for it := u.t.Begin(); !it.IsEnd(); {
		if o.Has(it.Value()) {
			it = it.Next()
		} else {
			it = u.t.Erase(it)
		}
	}
}

// Filter returns a new set of the elements for which f is true.
func (u *SplaySet[E, S]) Filter(f func(E) bool) ExtendedSet[E] {
	r := NewFunc[E, S](u.cmp, u.opts...)
	for e := range u.t.All() {
		if f(e) {
			r.Put(e)
		}
	}
	return r
}
