package Trees

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

type SplayTestSuite struct {
	suite.Suite
	tree *Splay[int, uint32]
}

func (s *SplayTestSuite) SetupTest() {
	s.tree = New[int, uint32]()
}

func TestSplaySuite(t *testing.T) {
	suite.Run(t, new(SplayTestSuite))
}

// shape returns the values of the root and its children, -1 for nil.
func (s *SplayTestSuite) shape(u *Splay[int, uint32]) (root, left, right int) {
	val := func(i uint32) int {
		if i == 0 {
			return -1
		}
		return u.ns[i].v
	}
	return val(u.root), val(u.ns[u.root].l), val(u.ns[u.root].r)
}

func (s *SplayTestSuite) TestEmpty() {
	s.True(s.tree.Empty())
	s.Equal(uint(0), s.tree.Size())
	s.False(s.tree.Contains(1))
	s.True(s.tree.Find(1).IsEnd())
	s.True(s.tree.Begin().Equal(s.tree.End()))
	s.True(s.tree.RBegin().Equal(s.tree.REnd()))
	_, ok := s.tree.Minimum()
	s.False(ok)
	_, ok = s.tree.Maximum()
	s.False(ok)
	s.False(s.tree.Corrupt())
	s.Empty(collect(s.tree))
}

func (s *SplayTestSuite) TestRoundTrip() {
	for _, v := range []int{1, 2, 3} {
		s.True(s.tree.Insert(v))
	}
	s.Equal([]int{1, 2, 3}, collect(s.tree))
	r, l, _ := s.shape(s.tree)
	s.Equal(3, r)
	s.Equal(2, l)

	s.True(s.tree.Contains(2))
	r, l, rr := s.shape(s.tree)
	s.Equal([]int{2, 1, 3}, []int{r, l, rr})

	s.False(s.tree.Contains(5))
	s.Equal([]int{1, 2, 3}, collect(s.tree))
	r, _, _ = s.shape(s.tree)
	s.Equal(3, r, "a miss splays the last visited node")
	s.False(s.tree.Corrupt())
}

func (s *SplayTestSuite) TestDuplicateInsert() {
	s.True(s.tree.Insert(5))
	s.True(s.tree.Insert(7))
	s.False(s.tree.Insert(5))
	s.Equal(uint(2), s.tree.Size())
	r, _, _ := s.shape(s.tree)
	s.Equal(7, r, "a rejected duplicate doesn't splay")

	it, added, err := s.tree.TryInsert(5)
	s.NoError(err)
	s.False(added)
	s.Equal(5, it.Value())
}

func (s *SplayTestSuite) TestZigZig() {
	for _, v := range []int{1, 2, 3} {
		s.tree.Insert(v)
	}
	// 3(2(1)) -> 1(-, 2(-, 3))
	s.True(s.tree.Contains(1))
	r, l, rr := s.shape(s.tree)
	s.Equal([]int{1, -1, 2}, []int{r, l, rr})
	two := s.tree.ns[s.tree.root].r
	s.Equal(3, s.tree.ns[s.tree.ns[two].r].v)
	s.Equal(uint(3), s.tree.Height())
	s.False(s.tree.Corrupt())
}

func (s *SplayTestSuite) TestZigZag() {
	// 1(-, 3(2)) with 2 inserted last -> 2(1, 3)
	for _, v := range []int{3, 1, 2} {
		s.tree.Insert(v)
	}
	r, l, rr := s.shape(s.tree)
	s.Equal([]int{2, 1, 3}, []int{r, l, rr})
	s.Equal(uint(2), s.tree.Height())
	s.False(s.tree.Corrupt())
}

func (s *SplayTestSuite) TestEraseEachOfThree() {
	for _, erased := range []int{1, 2, 3} {
		u := New[int, uint32]()
		for _, v := range []int{1, 2, 3} {
			u.Insert(v)
		}
		it := u.Find(erased)
		s.Equal(erased, u.ns[u.root].v, "find splays the target to the root")
		next := u.Erase(it)
		s.Equal(uint(2), u.Size())
		s.False(u.Contains(erased))
		s.False(u.Corrupt())
		var want []int
		for _, v := range []int{1, 2, 3} {
			if v != erased {
				want = append(want, v)
			}
		}
		s.Equal(want, collect(u))
		if erased == 3 {
			s.True(next.IsEnd())
		} else {
			s.Equal(erased+1, next.Value())
		}
	}
}

func (s *SplayTestSuite) TestEraseWithBothChildren() {
	for _, v := range []int{3, 1, 2} {
		s.tree.Insert(v)
	}
	next := s.tree.Erase(s.tree.Find(2))
	s.Equal(3, next.Value())
	r, l, rr := s.shape(s.tree)
	s.Equal([]int{1, -1, 3}, []int{r, l, rr}, "the predecessor becomes the root")
	s.False(s.tree.Corrupt())
}

func (s *SplayTestSuite) TestEraseLast() {
	s.tree.Insert(42)
	next := s.tree.Erase(s.tree.Begin())
	s.True(next.IsEnd())
	s.True(s.tree.Empty())
	s.Equal(uint(0), s.tree.Size())
	s.False(s.tree.Corrupt())
	s.True(s.tree.Insert(42))
	s.Equal(2, len(s.tree.ns), "the released slot is reused")
}

func (s *SplayTestSuite) TestEraseWhileIterating() {
	for i := range 100 {
		s.tree.Insert(i)
	}
	for it := s.tree.Begin(); !it.IsEnd(); {
		if it.Value()%2 == 0 {
			it = s.tree.Erase(it)
		} else {
			it = it.Next()
		}
	}
	s.Equal(uint(50), s.tree.Size())
	for v := range s.tree.All() {
		s.Equal(1, v%2)
	}
	s.False(s.tree.Corrupt())
}

func (s *SplayTestSuite) TestClear() {
	s.tree.Clear()
	s.True(s.tree.Empty())
	for i := range 64 {
		s.tree.Insert(i * 7 % 64)
	}
	it := s.tree.Find(10)
	s.tree.Clear()
	s.True(s.tree.Empty())
	s.Equal(uint(0), s.tree.Size())
	s.tree.Clear()
	s.True(s.tree.Empty())
	s.False(s.tree.Corrupt())
	s.Panics(func() { it.Value() })
	for i := range 64 {
		s.tree.Insert(i)
	}
	s.Equal(65, len(s.tree.ns), "cleared slots are reused")
	s.False(s.tree.Corrupt())
}

func (s *SplayTestSuite) TestIterators() {
	for _, v := range []int{5, 1, 9, 3, 7} {
		s.tree.Insert(v)
	}
	var fwd []int
	for it := s.tree.Begin(); !it.Equal(s.tree.End()); it = it.Next() {
		fwd = append(fwd, it.Value())
	}
	s.Equal([]int{1, 3, 5, 7, 9}, fwd)

	var rev []int
	for it := s.tree.RBegin(); !it.Equal(s.tree.REnd()); it = it.Next() {
		rev = append(rev, it.Value())
	}
	s.Equal([]int{9, 7, 5, 3, 1}, rev)

	s.Equal(9, s.tree.End().Prev().Value())
	s.True(s.tree.Begin().Prev().IsEnd())
	s.Equal(1, s.tree.REnd().Prev().Value())
	s.True(s.tree.RBegin().Prev().IsEnd())
	s.Equal(7, s.tree.RBegin().Next().Base().Value())

	it := s.tree.Find(5)
	s.True(it.Equal(s.tree.Find(5)))
	s.False(it.Equal(s.tree.Find(7)))
	s.Equal(7, it.Next().Value())
	s.Equal(3, it.Prev().Value())
}

func (s *SplayTestSuite) TestRefKeepsIdentity() {
	u := NewFunc[[2]int, uint32](func(a, b [2]int) int { return a[0] - b[0] })
	u.Insert([2]int{1, 0})
	it := u.Find([2]int{1})
	it.Ref()[1] = 100
	for i := 2; i < 50; i++ {
		u.Insert([2]int{i, i})
	}
	s.Equal([2]int{1, 100}, it.Value(), "splaying never changes which value a node holds")
}

func (s *SplayTestSuite) TestIteratorPreconditions() {
	s.tree.Insert(1)
	s.tree.Insert(2)
	s.PanicsWithError("Trees: Value: end iterator", func() { s.tree.End().Value() })
	s.PanicsWithError("Trees: Next: end iterator", func() { s.tree.End().Next() })
	s.PanicsWithError("Trees: Erase: end iterator", func() { s.tree.Erase(s.tree.End()) })
	s.PanicsWithError("Trees: Prev: end iterator of an empty tree", func() { New[int, uint32]().End().Prev() })

	other := New[int, uint32]()
	other.Insert(1)
	s.PanicsWithError("Trees: Erase: iterator belongs to another tree", func() { s.tree.Erase(other.Begin()) })

	it := s.tree.Find(1)
	s.tree.Erase(it)
	s.PanicsWithError("Trees: Value: node has been erased", func() { it.Value() })
	s.tree.Insert(3)
	s.PanicsWithError("Trees: Erase: node has been erased", func() { s.tree.Erase(it) })
	s.Equal([]int{2, 3}, collect(s.tree))

	defer func() {
		var ie *IteratorError
		s.True(errors.As(recover().(error), &ie))
		s.Equal("Ref", ie.Op)
	}()
	it.Ref()
}

func (s *SplayTestSuite) TestCapacity() {
	u := New[int, uint8]()
	for i := range 255 {
		s.True(u.Insert(i))
	}
	it, added, err := u.TryInsert(255)
	s.False(added)
	s.True(it.IsEnd())
	var ce *CapacityError
	s.Require().ErrorAs(err, &ce)
	s.Equal(uint64(255), ce.Max)
	s.Equal(uint(255), u.Size())
	s.False(u.Contains(255))
	s.False(u.Corrupt())
	s.Panics(func() { u.Insert(256) })

	s.True(u.Remove(0))
	s.True(u.Insert(255))
	s.Equal(uint(255), u.Size())
	s.False(u.Corrupt())
}

func (s *SplayTestSuite) TestComparator() {
	u := NewFunc[string, uint16](func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	s.True(u.Insert("b"))
	s.True(u.Insert("A"))
	s.False(u.Insert("a"))
	s.True(u.Contains("B"))
	s.Equal(uint(1), u.Count("a"))
	s.Equal(uint(0), u.Count("c"))
	s.Equal([]string{"A", "b"}, collect(u))
}

func (s *SplayTestSuite) TestCorruptDetection() {
	var buf bytes.Buffer
	u := New[int, uint32](WithLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))))
	for _, v := range []int{1, 2, 3} {
		u.Insert(v)
	}
	s.False(u.Corrupt())
	l := u.ns[u.root].l
	u.ns[l].v = 10
	s.True(u.Corrupt())
	s.Contains(buf.String(), "values out of order")

	u.ns[l].v = 2
	u.ns[l].p = 0
	s.True(u.Corrupt())
	s.Contains(buf.String(), "left child doesn't link back")
}

func (s *SplayTestSuite) TestDump() {
	var buf bytes.Buffer
	u := New[int, uint32](WithLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))))
	for _, v := range []int{3, 1, 2} {
		u.Insert(v)
	}
	u.Dump()
	out := buf.String()
	s.Contains(out, "size=3")
	s.Contains(out, "depth=0 values=[2]")
	s.Contains(out, "depth=1 values=\"[1 3]\"")
}
