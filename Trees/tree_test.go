package Trees

import (
	"math/rand"
	"slices"
	"testing"

	"golang.org/x/exp/constraints"
)

var rg = *rand.New(rand.NewSource(0))

const (
	tAddN        = 40000
	tAddValRange = 80000
)

func collect[T any, S constraints.Unsigned](u *Splay[T, S]) []T {
	return slices.Collect(u.All())
}

func TestSplay_Insert(t *testing.T) {
	tree := New[int, uint16]()
	content := make(map[int]struct{})
	for range tAddN {
		b := rg.Intn(tAddValRange)
		_, in := content[b]
		if c := tree.Insert(b); c == in {
			t.Errorf("insert of %v returned %v, present %v", b, c, in)
		}
		if v := tree.ns[tree.root].v; !in && v != b {
			t.Errorf("root is %v after inserting %v", v, b)
		}
		content[b] = struct{}{}
	}
	if int(tree.Size()) != len(content) {
		t.Errorf("tree size is %d, want %d", tree.Size(), len(content))
	}
	if tree.Corrupt() {
		t.Errorf("tree is corrupt")
	}
	for k := range content {
		if !tree.Contains(k) {
			t.Errorf("tree does not have key %v", k)
		}
	}
	for v := range tree.All() {
		if _, in := content[v]; !in {
			t.Errorf("tree has non existent key %v", v)
		}
	}
}

func TestSplay_Remove(t *testing.T) {
	tree := New[int, uint16]()
	content := make(map[int]struct{})
	if tree.Remove(0) {
		t.Errorf("empty tree has non existent key %v", 0)
	}
	a := make([]int, tAddN)
	for i := range a {
		a[i] = rg.Intn(tAddValRange)
		tree.Insert(a[i])
		content[a[i]] = struct{}{}
	}
	for i := range rg.Intn(len(a)) {
		_, in := content[a[i]]
		if b := tree.Remove(a[i]); b != in {
			t.Errorf("failed to delete key %v", a[i])
		}
		if tree.Remove(a[i]) {
			t.Errorf("can delete a second time key %v", a[i])
		}
		delete(content, a[i])
		if i%4096 == 0 && tree.Corrupt() {
			t.Fatalf("tree is corrupt after deleting %v", a[i])
		}
	}
	if int(tree.Size()) != len(content) {
		t.Errorf("tree size is %d, want %d", tree.Size(), len(content))
	}
	if tree.Corrupt() {
		t.Errorf("tree is corrupt")
	}
	for k := range content {
		if !tree.Contains(k) {
			t.Errorf("tree does not have key %v", k)
		}
	}
}

func TestSplay_InsertRemove(t *testing.T) {
	tree := New[int, uint32](WithCapacity(tAddN))
	content := make(map[int]struct{})
	for range 4 * tAddN {
		v := rg.Intn(tAddValRange / 8)
		_, in := content[v]
		switch rg.Intn(3) {
		case 0:
			if tree.Remove(v) != in {
				t.Fatalf("remove of %v disagrees with content", v)
			}
			delete(content, v)
		case 1:
			if tree.Insert(v) == in {
				t.Fatalf("insert of %v disagrees with content", v)
			}
			content[v] = struct{}{}
		default:
			last, _ := tree.search(v)
			if tree.Contains(v) != in {
				t.Fatalf("contains of %v disagrees with content", v)
			}
			if tree.root != last {
				t.Fatalf("root is %d after looking up %v, want last visited %d", tree.root, v, last)
			}
		}
	}
	if int(tree.Size()) != len(content) {
		t.Errorf("tree size is %d, want %d", tree.Size(), len(content))
	}
	if tree.Corrupt() {
		t.Errorf("tree is corrupt")
	}
	// erased slots are reused before the arena grows.
	if uint(len(tree.ns)-1) > uint(tAddValRange/8) {
		t.Errorf("arena holds %d slots for at most %d values", len(tree.ns)-1, tAddValRange/8)
	}
}

func TestSplay_InOrder(t *testing.T) {
	tree := New[int, uint16]()
	content := make(map[int]struct{})
	for range tAddN {
		b := rg.Intn(tAddValRange)
		tree.Insert(b)
		content[b] = struct{}{}
	}
	var s []int
	f := tree.InOrder()
	for v, ok := f(); ok; v, ok = f() {
		s = append(s, v)
	}
	if _, ok := f(); ok {
		t.Errorf("exhausted InOrder turned valid")
	}
	if len(s) != len(content) {
		t.Errorf("sorted size is %d, want %d", len(s), len(content))
	}
	if !slices.IsSorted(s) {
		t.Errorf("sorted is not sorted")
	}
	b := slices.Collect(tree.Backward())
	slices.Reverse(b)
	if !slices.Equal(b, s) {
		t.Errorf("backward isn't the reverse of in-order")
	}
	for _, v := range s {
		if _, in := content[v]; !in {
			t.Errorf("sorted has non existent key %v", v)
		}
	}
}

func TestSplay_PredecessorSuccessor(t *testing.T) {
	tree := New[int, uint16]()
	sorted := make([]int, 0, 1000)
	for range 1000 {
		v := 2 * rg.Intn(5000)
		if tree.Insert(v) {
			sorted = append(sorted, v)
		}
	}
	slices.Sort(sorted)
	for range 2000 {
		q := rg.Intn(10001) - 1
		i, _ := slices.BinarySearch(sorted, q)
		p, okP := tree.Predecessor(q)
		if wantOk := i > 0; okP != wantOk || okP && p != sorted[i-1] {
			t.Errorf("Predecessor(%d) = %d, %v", q, p, okP)
		}
		j, found := slices.BinarySearch(sorted, q)
		if found {
			j++
		}
		s, okS := tree.Successor(q)
		if wantOk := j < len(sorted); okS != wantOk || okS && s != sorted[j] {
			t.Errorf("Successor(%d) = %d, %v", q, s, okS)
		}
	}
	if tree.Corrupt() {
		t.Errorf("tree is corrupt")
	}
}

func TestSplay_Height(t *testing.T) {
	tree := New[int, uint8]()
	if tree.Height() != 0 {
		t.Errorf("empty tree has height %d", tree.Height())
	}
	for i := 1; i <= 16; i++ {
		tree.Insert(i)
	}
	// ascending inserts leave a left path.
	if tree.Height() != 16 {
		t.Errorf("path has height %d, want 16", tree.Height())
	}
	// zig-zig steps roughly halve the depth of the path; single rotations would keep it at 16.
	tree.Contains(1)
	if h := tree.Height(); h != 10 {
		t.Errorf("height after splaying the deepest node is %d, want 10", h)
	}
	if tree.ns[tree.root].v != 1 {
		t.Errorf("root is %v, want 1", tree.ns[tree.root].v)
	}
}
