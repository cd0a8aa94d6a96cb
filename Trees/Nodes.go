package Trees

import "golang.org/x/exp/constraints"

// A node in the Splay tree.
// p, l, r are handles into the arena; 0 is nil. gen is bumped every time the
// slot is released so that iterators holding the old generation can be told apart.
type node[T any, S constraints.Unsigned] struct {
	v       T
	p, l, r S
	gen     uint32
}

// arena owns every node of a tree. ns[0] is the nil sentinel and is never linked.
// free is the beginning of the linked list that contains all the free handles; node[T, S]::l represents next.
type arena[T any, S constraints.Unsigned] struct {
	ns   []node[T, S]
	free S
}

func makeArena[T any, S constraints.Unsigned](hint int) arena[T, S] {
	return arena[T, S]{ns: make([]node[T, S], 1, hint+1)}
}

// full reports whether another node can't be addressed by S.
func (u *arena[T, S]) full() bool {
	return u.free == 0 && uint64(len(u.ns)) > uint64(^S(0))
}

// alloc a node holding v under parent p. Holes are filled first before appending.
// The caller must check full beforehand.
func (u *arena[T, S]) alloc(v T, p S) S {
	if i := u.popFree(); i != 0 {
		n := &u.ns[i]
		n.v, n.p, n.l, n.r = v, p, 0, 0
		return i
	}
	u.ns = append(u.ns, node[T, S]{v: v, p: p})
	return S(len(u.ns) - 1)
}

// release handle i once. The value is zeroed so the arena doesn't keep it reachable.
func (u *arena[T, S]) release(i S) {
	n := &u.ns[i]
	n.v = *new(T)
	n.p, n.r = 0, 0
	n.gen++
	n.l = u.free
	u.free = i
}

// popFree handle once. Returns 0 when there's no free handle(when u.free==0).
func (u *arena[T, S]) popFree() S {
	b := u.free
	if b != 0 {
		u.free = u.ns[b].l
	}
	return b
}

// minOf returns the leftmost handle of the subtree rooted at i, i must not be 0.
func (u *arena[T, S]) minOf(i S) S {
	for u.ns[i].l != 0 {
		i = u.ns[i].l
	}
	return i
}

// maxOf returns the rightmost handle of the subtree rooted at i, i must not be 0.
func (u *arena[T, S]) maxOf(i S) S {
	for u.ns[i].r != 0 {
		i = u.ns[i].r
	}
	return i
}

// next returns the in-order successor of i, or 0.
func (u *arena[T, S]) next(i S) S {
	if r := u.ns[i].r; r != 0 {
		return u.minOf(r)
	}
	p := u.ns[i].p
	for p != 0 && u.ns[p].r == i {
		i, p = p, u.ns[p].p
	}
	return p
}

// prev returns the in-order predecessor of i, or 0.
func (u *arena[T, S]) prev(i S) S {
	if l := u.ns[i].l; l != 0 {
		return u.maxOf(l)
	}
	p := u.ns[i].p
	for p != 0 && u.ns[p].l == i {
		i, p = p, u.ns[p].p
	}
	return p
}
