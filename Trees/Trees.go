package Trees

import "iter"

// Tree represents a set like structure implemented using nodes.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined. For example, if calling Minimum on
// an empty tree, the return value will be (x T, false bool). In this
// case the value of x is the zero value of T and shouldn't be used.
// Self-adjusting implementations may restructure themselves on lookups, so
// every method must be treated as a write when the tree is shared.
type Tree[T any] interface {
	//Insert v to the Tree. Returning true if successful, false if v is already present.
	Insert(v T) bool
	//Remove v from the Tree. Returning true if successful, false otherwise.
	Remove(v T) bool
	//Contains element v.
	Contains(v T) bool
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Predecessor returns the greatest element less than v.
	Predecessor(v T) (T, bool)
	//Successor returns the smallest element greater than v.
	Successor(v T) (T, bool)
	//Size of the tree.
	Size() uint
	//Empty reports whether Size()==0.
	Empty() bool
	//Clear removes every element.
	Clear()
	//InOrder returns a closure function f acting like an iterator. f
	//gives values in the in-order traversal of the tree.
	//Calling f is like calling "Next()" of iterators: val, valid=f()
	//val is meaningful only if valid is true. When valid==false,
	//then f is exhausted. valid can't turn true after it first became false.
	//The tree must not be modified during the iteration of f.
	InOrder() func() (T, bool)
	//All yields the elements in ascending order.
	All() iter.Seq[T]
	//Corrupt returns whether the tree has corrupt structures: broken links,
	//values out of order, or a size that disagrees with the node count.
	Corrupt() bool
}
