package pq_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gridpath/pq"
)

// HeapSuite exercises the indexed heap.
type HeapSuite struct {
	suite.Suite
	h *pq.Heap[string, int]
}

func (s *HeapSuite) SetupTest() {
	s.h = pq.NewHeap[string, int](func(a, b int) bool { return a < b })
}

// TestPopOrder verifies ascending extraction.
func (s *HeapSuite) TestPopOrder() {
	for k, p := range map[string]int{"c": 3, "a": 1, "e": 5, "b": 2, "d": 4} {
		s.h.Push(k, p)
	}
	require.Equal(s.T(), 5, s.h.Len())
	var got []string
	for s.h.Len() > 0 {
		k, _, ok := s.h.Pop()
		require.True(s.T(), ok)
		got = append(got, k)
	}
	require.Equal(s.T(), []string{"a", "b", "c", "d", "e"}, got)
	_, _, ok := s.h.Pop()
	require.False(s.T(), ok, "pop on empty heap")
}

// TestDecreaseKey verifies that re-pushing updates in place.
func (s *HeapSuite) TestDecreaseKey() {
	s.h.Push("x", 10)
	s.h.Push("y", 5)
	s.h.Push("x", 1)
	require.Equal(s.T(), 2, s.h.Len(), "no duplicate slot for x")
	p, ok := s.h.Priority("x")
	require.True(s.T(), ok)
	require.Equal(s.T(), 1, p)

	k, p, ok := s.h.Peek()
	require.True(s.T(), ok)
	require.Equal(s.T(), "x", k)
	require.Equal(s.T(), 1, p)

	s.h.Push("x", 20) // increase-key
	k, _, _ = s.h.Pop()
	require.Equal(s.T(), "y", k)
}

// TestStableTies verifies first-pushed order among equal priorities.
func (s *HeapSuite) TestStableTies() {
	keys := []string{"k1", "k2", "k3", "k4", "k5", "k6"}
	for _, k := range keys {
		s.h.Push(k, 7)
	}
	for _, want := range keys {
		k, _, _ := s.h.Pop()
		require.Equal(s.T(), want, k)
	}
}

// TestRemove verifies arbitrary removal keeps the heap valid.
func (s *HeapSuite) TestRemove() {
	for i, k := range []string{"a", "b", "c", "d", "e", "f"} {
		s.h.Push(k, 10-i)
	}
	require.True(s.T(), s.h.Remove("c"))
	require.False(s.T(), s.h.Remove("zz"))
	require.False(s.T(), s.h.Contains("c"))
	var got []string
	for s.h.Len() > 0 {
		k, _, _ := s.h.Pop()
		got = append(got, k)
	}
	require.Equal(s.T(), []string{"f", "e", "d", "b", "a"}, got)
}

// TestRandomAgainstSort cross-checks against a sorted reference with updates.
func (s *HeapSuite) TestRandomAgainstSort() {
	h := pq.NewHeap[int, int](func(a, b int) bool { return a < b })
	rng := rand.New(rand.NewSource(42))
	final := map[int]int{}
	for i := 0; i < 2000; i++ {
		k := rng.Intn(300)
		p := rng.Intn(1000)
		h.Push(k, p)
		final[k] = p
	}
	require.Equal(s.T(), len(final), h.Len())
	var prios []int
	for _, p := range final {
		prios = append(prios, p)
	}
	sort.Ints(prios)
	for _, want := range prios {
		k, p, ok := h.Pop()
		require.True(s.T(), ok)
		require.Equal(s.T(), want, p)
		require.Equal(s.T(), final[k], p)
	}
}

func TestHeapSuite(t *testing.T) {
	suite.Run(t, new(HeapSuite))
}

// TestQueue_FIFOAcrossCompaction pushes and pops in waves so the head
// crosses the compaction threshold many times.
func TestQueue_FIFOAcrossCompaction(t *testing.T) {
	q := pq.NewQueue[int](0)
	next, expect := 0, 0
	for wave := 0; wave < 50; wave++ {
		for i := 0; i < 37; i++ {
			q.Push(next)
			next++
		}
		for i := 0; i < 29; i++ {
			v, ok := q.Pop()
			require.True(t, ok)
			require.Equal(t, expect, v)
			expect++
		}
	}
	require.Equal(t, next-expect, q.Len())
	front, ok := q.Peek()
	require.True(t, ok)
	require.Equal(t, expect, front)
	for q.Len() > 0 {
		v, _ := q.Pop()
		require.Equal(t, expect, v)
		expect++
	}
	_, ok = q.Pop()
	require.False(t, ok)
}

// TestQueue_ZeroValue checks the zero value is usable.
func TestQueue_ZeroValue(t *testing.T) {
	var q pq.Queue[string]
	q.Push("a")
	q.Push("b")
	v, _ := q.Pop()
	require.Equal(t, "a", v)
	require.Equal(t, 1, q.Len())
}

// TestStack verifies LIFO order.
func TestStack(t *testing.T) {
	s := pq.NewStack[int](4)
	for i := 1; i <= 5; i++ {
		s.Push(i)
	}
	top, ok := s.Peek()
	require.True(t, ok)
	require.Equal(t, 5, top)
	for want := 5; want >= 1; want-- {
		v, ok := s.Pop()
		require.True(t, ok)
		require.Equal(t, want, v)
	}
	_, ok = s.Pop()
	require.False(t, ok)
}
