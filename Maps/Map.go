package Maps

import "iter"

// Map is an ordered key-value container. Lookups may restructure the map, so
// Get and Contains count as writes when the map is shared.
type Map[K, V any] interface {
	//Insert k->v if k isn't present. Returns whether it was inserted.
	Insert(k K, v V) bool
	//Set k->v, returning the former value and false if k was present,
	//or the zero value and true otherwise.
	Set(k K, v V) (V, bool)
	Get(k K) (V, bool)
	Contains(k K) bool
	Remove(k K) bool
	Min() (K, bool)
	Max() (K, bool)
	Size() uint
	Empty() bool
	Clear()
	//All yields the pairs in ascending key order.
	All() iter.Seq2[K, V]
	//Backward yields the pairs in descending key order.
	Backward() iter.Seq2[K, V]
}
