package Trees

import (
	"cmp"
	"iter"
	"log/slog"

	"github.com/g-m-twostay/go-containers/Queues"
	"golang.org/x/exp/constraints"
)

var _ Tree[int] = (*Splay[int, uint])(nil)

// Splay is a self-adjusting binary search tree with no repeated values.
// Every insertion and lookup rotates the last touched node up to the root,
// which gives amortized O(log n) access and keeps recently used values near the top.
// T is the type of values it will hold, S is the type of the handles used to
// address nodes in the arena; the tree holds at most ^S(0) nodes.
// The zero value isn't usable, create one with New or NewFunc.
// Lookups restructure the tree, so a Splay must not be shared between
// goroutines without external locking, even for read-only use.
type Splay[T any, S constraints.Unsigned] struct {
	arena[T, S]
	root S
	size uint
	cmp  func(T, T) int
	log  *slog.Logger
}

// New returns an empty Splay ordered by the natural ascending order of T.
func New[T cmp.Ordered, S constraints.Unsigned](opts ...Option) *Splay[T, S] {
	return NewFunc[T, S](cmp.Compare[T], opts...)
}

// NewFunc returns an empty Splay ordered by compare, which returns a negative number
// when a<b, a positive number when a>b and 0 when they are equivalent. compare must
// be a strict weak ordering.
func NewFunc[T any, S constraints.Unsigned](compare func(T, T) int, opts ...Option) *Splay[T, S] {
	c := makeConfig(opts)
	return &Splay[T, S]{arena: makeArena[T, S](c.capacity), cmp: compare, log: c.logger}
}

// rotate node x over its parent. The parent becomes a child of x and the child of x
// on the parent's side is reattached to the parent.
// Time: O(1); Space: O(1)
func (u *Splay[T, S]) rotate(x S) {
	ns := u.ns
	y := ns[x].p
	z := ns[y].p
	if ns[y].l == x {
		b := ns[x].r
		ns[y].l = b
		if b != 0 {
			ns[b].p = y
		}
		ns[x].r = y
	} else {
		b := ns[x].l
		ns[y].r = b
		if b != 0 {
			ns[b].p = y
		}
		ns[x].l = y
	}
	ns[y].p, ns[x].p = x, z
	switch {
	case z == 0:
		u.root = x
	case ns[z].l == y:
		ns[z].l = x
	default:
		ns[z].r = x
	}
}

// splay node x to the root using zig, zig-zig and zig-zag steps.
// Time: amortized O(log n)
func (u *Splay[T, S]) splay(x S) {
	ns := u.ns
	for y := ns[x].p; y != 0; y = ns[x].p {
		if z := ns[y].p; z != 0 {
			if (ns[z].l == y) == (ns[y].l == x) { //zig-zig
				u.rotate(y)
			} else { //zig-zag
				u.rotate(x)
			}
		}
		u.rotate(x)
	}
}

// search descends from the root. Returns the last visited node and whether it holds v.
func (u *Splay[T, S]) search(v T) (last S, found bool) {
	for cur := u.root; cur != 0; {
		last = cur
		c := u.cmp(v, u.ns[cur].v)
		if c == 0 {
			return cur, true
		} else if c < 0 {
			cur = u.ns[cur].l
		} else {
			cur = u.ns[cur].r
		}
	}
	return last, false
}

// access is search followed by splaying the last visited node.
func (u *Splay[T, S]) access(v T) (S, bool) {
	last, found := u.search(v)
	if last != 0 {
		u.splay(last)
	}
	return last, found
}

func (u *Splay[T, S]) iter(i S) Iterator[T, S] {
	return Iterator[T, S]{u, i, u.ns[i].gen}
}

// check validates it for op and returns its handle. It panics with *IteratorError.
func (u *Splay[T, S]) check(it Iterator[T, S], op string) S {
	switch {
	case it.u != u:
		panic(&IteratorError{op, "iterator belongs to another tree"})
	case it.i == 0:
		panic(&IteratorError{op, "end iterator"})
	case int(it.i) >= len(u.ns) || u.ns[it.i].gen != it.gen:
		panic(&IteratorError{op, "node has been erased"})
	}
	return it.i
}

// Size returns the number of values in the tree.
// Time: O(1); Space: O(1)
func (u *Splay[T, S]) Size() uint {
	return u.size
}

// Empty [Tree.Empty]
func (u *Splay[T, S]) Empty() bool {
	return u.root == 0
}

// TryInsert v to the tree. If v is new it's linked as a leaf and splayed to the root.
// If an equivalent value is already present nothing changes and the iterator points
// to the present value. When S can't address another node a *CapacityError is
// returned and the tree is left untouched.
// Time: amortized O(log n)
func (u *Splay[T, S]) TryInsert(v T) (Iterator[T, S], bool, error) {
	p, c := S(0), 0
	for cur := u.root; cur != 0; {
		p = cur
		if c = u.cmp(v, u.ns[cur].v); c < 0 {
			cur = u.ns[cur].l
		} else if c > 0 {
			cur = u.ns[cur].r
		} else {
			return u.iter(cur), false, nil
		}
	}
	if u.full() {
		return u.End(), false, &CapacityError{uint64(^S(0))}
	}
	x := u.alloc(v, p)
	if p == 0 {
		u.root = x
	} else if c < 0 {
		u.ns[p].l = x
	} else {
		u.ns[p].r = x
	}
	u.size++
	u.splay(x)
	return u.iter(x), true, nil
}

// Insert [Tree.Insert]. After a successful insertion v is at the root. Duplicates
// are rejected without restructuring. Panics with *CapacityError when the handle
// type is exhausted, see TryInsert.
// Time: amortized O(log n)
func (u *Splay[T, S]) Insert(v T) bool {
	_, ok, err := u.TryInsert(v)
	if err != nil {
		panic(err)
	}
	return ok
}

// Contains [Tree.Contains]. The last visited node is splayed to the root whether v is found or not.
// Time: amortized O(log n)
func (u *Splay[T, S]) Contains(v T) bool {
	_, found := u.access(v)
	return found
}

// Count returns 1 if v is in the tree, 0 otherwise. It splays like Contains.
func (u *Splay[T, S]) Count(v T) uint {
	if u.Contains(v) {
		return 1
	}
	return 0
}

// Find returns an iterator to v, or End if v isn't present. It splays like Contains.
// Time: amortized O(log n)
func (u *Splay[T, S]) Find(v T) Iterator[T, S] {
	if i, found := u.access(v); found {
		return u.iter(i)
	}
	return u.End()
}

// Erase the node at it and return an iterator to its successor. it and every copy of
// it become invalid. Panics with *IteratorError if it is End, stale, or belongs to another tree.
// Time: amortized O(log n)
func (u *Splay[T, S]) Erase(it Iterator[T, S]) Iterator[T, S] {
	x := u.check(it, "Erase")
	succ := u.next(x)
	u.splay(x)
	l, r := u.ns[x].l, u.ns[x].r
	switch {
	case l == 0:
		u.root = r
		if r != 0 {
			u.ns[r].p = 0
		}
	case r == 0:
		u.root = l
		u.ns[l].p = 0
	default:
		//detach the left subtree and bring its maximum to the top; it has no right child then.
		u.ns[l].p = 0
		u.root = l
		m := u.maxOf(l)
		u.splay(m)
		u.ns[m].r = r
		u.ns[r].p = m
	}
	u.release(x)
	u.size--
	return u.iter(succ)
}

// Remove [Tree.Remove]
// Time: amortized O(log n)
func (u *Splay[T, S]) Remove(v T) bool {
	if it := u.Find(v); !it.IsEnd() {
		u.Erase(it)
		return true
	}
	return false
}

// Clear releases every node, children before their parent. Handles are kept for reuse.
// Time: O(n); Space: O(1)
func (u *Splay[T, S]) Clear() {
	for cur := u.root; cur != 0; {
		n := &u.ns[cur]
		if n.l != 0 {
			cur = n.l
		} else if n.r != 0 {
			cur = n.r
		} else {
			p := n.p
			if p != 0 {
				if u.ns[p].l == cur {
					u.ns[p].l = 0
				} else {
					u.ns[p].r = 0
				}
			}
			u.release(cur)
			cur = p
		}
	}
	u.root, u.size = 0, 0
}

// Minimum [Tree.Minimum]. Doesn't splay.
// Time: O(D); Space: O(1)
func (u *Splay[T, S]) Minimum() (T, bool) {
	if u.root == 0 {
		return *new(T), false
	}
	return u.ns[u.minOf(u.root)].v, true
}

// Maximum [Tree.Maximum]. Doesn't splay.
// Time: O(D); Space: O(1)
func (u *Splay[T, S]) Maximum() (T, bool) {
	if u.root == 0 {
		return *new(T), false
	}
	return u.ns[u.maxOf(u.root)].v, true
}

// Predecessor [Tree.Predecessor]. The last visited node is splayed.
// Time: amortized O(log n)
func (u *Splay[T, S]) Predecessor(v T) (T, bool) {
	var last, best S
	for cur := u.root; cur != 0; {
		last = cur
		if u.cmp(v, u.ns[cur].v) <= 0 {
			cur = u.ns[cur].l
		} else {
			best = cur
			cur = u.ns[cur].r
		}
	}
	if last != 0 {
		u.splay(last)
	}
	return u.ns[best].v, best != 0
}

// Successor [Tree.Successor]. The last visited node is splayed.
// Time: amortized O(log n)
func (u *Splay[T, S]) Successor(v T) (T, bool) {
	var last, best S
	for cur := u.root; cur != 0; {
		last = cur
		if u.cmp(v, u.ns[cur].v) < 0 {
			best = cur
			cur = u.ns[cur].l
		} else {
			cur = u.ns[cur].r
		}
	}
	if last != 0 {
		u.splay(last)
	}
	return u.ns[best].v, best != 0
}

// Begin returns an iterator to the minimum, or End if the tree is empty.
func (u *Splay[T, S]) Begin() Iterator[T, S] {
	if u.root == 0 {
		return u.End()
	}
	return u.iter(u.minOf(u.root))
}

// End returns the sentinel iterator past the maximum.
func (u *Splay[T, S]) End() Iterator[T, S] {
	return Iterator[T, S]{u: u}
}

// RBegin returns a reverse iterator to the maximum, or REnd if the tree is empty.
func (u *Splay[T, S]) RBegin() ReverseIterator[T, S] {
	if u.root == 0 {
		return u.REnd()
	}
	return ReverseIterator[T, S]{u.iter(u.maxOf(u.root))}
}

// REnd returns the sentinel reverse iterator before the minimum.
func (u *Splay[T, S]) REnd() ReverseIterator[T, S] {
	return ReverseIterator[T, S]{u.End()}
}

// InOrder [Tree.InOrder]
// Time: f(): amortized O(1) at each call to the returned function. Space: O(1)
func (u *Splay[T, S]) InOrder() func() (T, bool) {
	cur := S(0)
	if u.root != 0 {
		cur = u.minOf(u.root)
	}
	return func() (r T, has bool) {
		if cur == 0 {
			return
		}
		r, has = u.ns[cur].v, true
		cur = u.next(cur)
		return
	}
}

// All [Tree.All]. The tree must not be modified during the iteration.
func (u *Splay[T, S]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if u.root == 0 {
			return
		}
		for i := u.minOf(u.root); i != 0 && yield(u.ns[i].v); i = u.next(i) {
		}
	}
}

// Backward yields the elements in descending order. The tree must not be modified during the iteration.
func (u *Splay[T, S]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if u.root == 0 {
			return
		}
		for i := u.maxOf(u.root); i != 0 && yield(u.ns[i].v); i = u.prev(i) {
		}
	}
}

// levels walks the tree breadth first, calling f with the handles on each depth.
// level is reused between calls.
func (u *Splay[T, S]) levels(f func(depth uint, level []S) bool) {
	if u.root == 0 {
		return
	}
	q := Queues.New[S](16)
	q.Push(u.root)
	var level []S
	for d := uint(0); !q.Empty(); d++ {
		level = level[:0]
		for k := q.Size(); k > 0; k-- {
			i, _ := q.Pop()
			level = append(level, i)
			if l := u.ns[i].l; l != 0 {
				q.Push(l)
			}
			if r := u.ns[i].r; r != 0 {
				q.Push(r)
			}
		}
		if !f(d, level) {
			return
		}
	}
}

// Height returns the number of levels in the tree, 0 when empty.
// Time: O(n); Space: O(n)
func (u *Splay[T, S]) Height() (h uint) {
	u.levels(func(d uint, _ []S) bool {
		h = d + 1
		return true
	})
	return
}

// Dump logs the tree level by level at debug level.
func (u *Splay[T, S]) Dump() {
	u.log.Debug("splay tree", slog.Uint64("size", uint64(u.size)))
	u.levels(func(d uint, level []S) bool {
		vs := make([]T, len(level))
		for k, i := range level {
			vs[k] = u.ns[i].v
		}
		u.log.Debug("level", slog.Uint64("depth", uint64(d)), slog.Any("values", vs))
		return true
	})
}

func (u *Splay[T, S]) corrupt(reason string, i S) bool {
	u.log.Debug("corrupt splay tree", slog.String("reason", reason), slog.Uint64("handle", uint64(i)))
	return true
}

// Corrupt [Tree.Corrupt]. The walk only follows child links, so it terminates even when parent links are broken.
// Time: O(n); Space: O(D)
func (u *Splay[T, S]) Corrupt() bool {
	if u.root == 0 {
		if u.size != 0 {
			return u.corrupt("empty tree with non zero size", 0)
		}
		return false
	}
	if u.ns[u.root].p != 0 {
		return u.corrupt("root has a parent", u.root)
	}
	var count uint
	var prev S
	st := make([]S, 0, 32)
	for cur := u.root; cur != 0 || len(st) > 0; {
		for ; cur != 0; cur = u.ns[cur].l {
			if l := u.ns[cur].l; l != 0 && u.ns[l].p != cur {
				return u.corrupt("left child doesn't link back", cur)
			}
			if r := u.ns[cur].r; r != 0 && u.ns[r].p != cur {
				return u.corrupt("right child doesn't link back", cur)
			}
			if st = append(st, cur); uint(len(st)) > u.size {
				return u.corrupt("cycle or more nodes than size", cur)
			}
		}
		cur, st = st[len(st)-1], st[:len(st)-1]
		if prev != 0 && u.cmp(u.ns[prev].v, u.ns[cur].v) >= 0 {
			return u.corrupt("values out of order", cur)
		}
		prev = cur
		if count++; count > u.size {
			return u.corrupt("more nodes than size", cur)
		}
		cur = u.ns[cur].r
	}
	if count != u.size {
		return u.corrupt("fewer nodes than size", u.root)
	}
	return false
}
