package Maps

import (
	"cmp"
	"iter"

	"github.com/g-m-twostay/go-containers/Trees"
	"golang.org/x/exp/constraints"
)

var _ Map[int, int] = (*SplayMap[int, int, uint])(nil)

// Entry is the value stored in the tree of a SplayMap. Only Key takes part in ordering.
type Entry[K, V any] struct {
	Key K
	Val V
}

// SplayMap is an ordered map backed by a Trees.Splay of entries compared by key.
// It has the same contract as the tree: lookups splay, duplicates are rejected by
// Insert, and it isn't safe for concurrent use.
type SplayMap[K, V any, S constraints.Unsigned] struct {
	t *Trees.Splay[Entry[K, V], S]
}

// New returns an empty SplayMap ordered by the natural ascending order of K.
func New[K cmp.Ordered, V any, S constraints.Unsigned](opts ...Trees.Option) *SplayMap[K, V, S] {
	return NewFunc[K, V, S](cmp.Compare[K], opts...)
}

// NewFunc returns an empty SplayMap ordered by compare, see Trees.NewFunc.
func NewFunc[K, V any, S constraints.Unsigned](compare func(K, K) int, opts ...Trees.Option) *SplayMap[K, V, S] {
	return &SplayMap[K, V, S]{Trees.NewFunc[Entry[K, V], S](func(a, b Entry[K, V]) int {
		return compare(a.Key, b.Key)
	}, opts...)}
}

func probe[K, V any](k K) Entry[K, V] {
	return Entry[K, V]{Key: k}
}

// Insert [Map.Insert]. Panics with *Trees.CapacityError when the handle type is exhausted.
func (u *SplayMap[K, V, S]) Insert(k K, v V) bool {
	return u.t.Insert(Entry[K, V]{k, v})
}

// TryInsert is Insert returning the capacity failure instead of panicking.
func (u *SplayMap[K, V, S]) TryInsert(k K, v V) (Trees.Iterator[Entry[K, V], S], bool, error) {
	return u.t.TryInsert(Entry[K, V]{k, v})
}

// Set [Map.Set]. Panics with *Trees.CapacityError when the handle type is exhausted.
func (u *SplayMap[K, V, S]) Set(k K, v V) (old V, added bool) {
	it, added, err := u.t.TryInsert(Entry[K, V]{k, v})
	if err != nil {
		panic(err)
	}
	if !added {
		e := it.Ref()
		old, e.Val = e.Val, v
	}
	return old, added
}

// Get [Map.Get]. Splays like Trees.Splay.Find.
func (u *SplayMap[K, V, S]) Get(k K) (V, bool) {
	if it := u.t.Find(probe[K, V](k)); !it.IsEnd() {
		return it.Ref().Val, true
	}
	return *new(V), false
}

// Contains [Map.Contains]
func (u *SplayMap[K, V, S]) Contains(k K) bool {
	return u.t.Contains(probe[K, V](k))
}

// Find returns an iterator to the entry of k, or End.
func (u *SplayMap[K, V, S]) Find(k K) Trees.Iterator[Entry[K, V], S] {
	return u.t.Find(probe[K, V](k))
}

// Erase the entry at it, returning an iterator to the next entry.
func (u *SplayMap[K, V, S]) Erase(it Trees.Iterator[Entry[K, V], S]) Trees.Iterator[Entry[K, V], S] {
	return u.t.Erase(it)
}

// Remove [Map.Remove]
func (u *SplayMap[K, V, S]) Remove(k K) bool {
	return u.t.Remove(probe[K, V](k))
}

func (u *SplayMap[K, V, S]) Min() (K, bool) {
	e, ok := u.t.Minimum()
	return e.Key, ok
}

func (u *SplayMap[K, V, S]) Max() (K, bool) {
	e, ok := u.t.Maximum()
	return e.Key, ok
}

func (u *SplayMap[K, V, S]) Size() uint {
	return u.t.Size()
}

func (u *SplayMap[K, V, S]) Empty() bool {
	return u.t.Empty()
}

func (u *SplayMap[K, V, S]) Clear() {
	u.t.Clear()
}

func (u *SplayMap[K, V, S]) Begin() Trees.Iterator[Entry[K, V], S] {
	return u.t.Begin()
}

func (u *SplayMap[K, V, S]) End() Trees.Iterator[Entry[K, V], S] {
	return u.t.End()
}

func (u *SplayMap[K, V, S]) RBegin() Trees.ReverseIterator[Entry[K, V], S] {
	return u.t.RBegin()
}

func (u *SplayMap[K, V, S]) REnd() Trees.ReverseIterator[Entry[K, V], S] {
	return u.t.REnd()
}

// All [Map.All]
func (u *SplayMap[K, V, S]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for e := range u.t.All() {
			if !yield(e.Key, e.Val) {
				return
			}
		}
	}
}

// Backward [Map.Backward]
func (u *SplayMap[K, V, S]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for e := range u.t.Backward() {
			if !yield(e.Key, e.Val) {
				return
			}
		}
	}
}

// Keys yields the keys in ascending order.
func (u *SplayMap[K, V, S]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for e := range u.t.All() {
			if !yield(e.Key) {
				return
			}
		}
	}
}

// Values yields the values in ascending key order.
func (u *SplayMap[K, V, S]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for e := range u.t.All() {
			if !yield(e.Val) {
				return
			}
		}
	}
}
