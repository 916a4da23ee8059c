package cache

import (
	"slices"
	"strconv"
	"testing"
)

func TestWeightedGetAdd(t *testing.T) {
	c := NewWeighted[string, int](0, nil)
	c.Add("a", 1, 10)
	c.Add("b", 2, 20)

	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Errorf("Get(a) = %v, %v; want 1, true", v, ok)
	}
	if _, ok := c.Get("missing"); ok {
		t.Error("Get(missing) found a value")
	}
	if c.Len() != 2 || c.Cost() != 30 {
		t.Errorf("Len/Cost = %d/%d, want 2/30", c.Len(), c.Cost())
	}
	if got := c.Keys(); !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("Keys() = %v, want [a b] after touching a", got)
	}
}

func TestWeightedEviction(t *testing.T) {
	var evicted []string
	c := NewWeighted[string, int](100, func(k string, _ int) { evicted = append(evicted, k) })

	c.Add("a", 1, 40)
	c.Add("b", 2, 40)
	c.Get("a")
	if n := c.Add("c", 3, 40); n != 1 {
		t.Errorf("Add(c) evicted %d entries, want 1", n)
	}
	if !slices.Equal(evicted, []string{"b"}) {
		t.Errorf("evicted %v, want [b]", evicted)
	}
	if c.Cost() != 80 {
		t.Errorf("Cost() = %d, want 80", c.Cost())
	}
	if _, ok := c.Peek("b"); ok {
		t.Error("b still cached")
	}
}

func TestWeightedOversizedEntry(t *testing.T) {
	var evicted []string
	c := NewWeighted[string, int](50, func(k string, _ int) { evicted = append(evicted, k) })

	c.Add("a", 1, 10)
	c.Add("huge", 2, 500)
	if !slices.Equal(evicted, []string{"a"}) {
		t.Errorf("evicted %v, want [a]", evicted)
	}
	if _, ok := c.Peek("huge"); !ok {
		t.Fatal("newest entry evicted by its own insertion")
	}
	c.Add("small", 3, 1)
	if _, ok := c.Peek("huge"); ok {
		t.Error("oversized entry should go once something newer arrives")
	}
}

func TestWeightedReplace(t *testing.T) {
	var evicted []int
	c := NewWeighted[string, int](0, func(_ string, v int) { evicted = append(evicted, v) })
	c.Add("a", 1, 10)
	c.Add("a", 2, 5)

	if v, _ := c.Peek("a"); v != 2 {
		t.Errorf("Peek(a) = %d, want 2", v)
	}
	if c.Len() != 1 || c.Cost() != 5 {
		t.Errorf("Len/Cost = %d/%d, want 1/5", c.Len(), c.Cost())
	}
	if !slices.Equal(evicted, []int{1}) {
		t.Errorf("replaced values %v, want [1]", evicted)
	}
	if c.Stats().Evictions != 0 {
		t.Error("replacement counted as eviction")
	}
}

func TestWeightedRemovePurge(t *testing.T) {
	released := 0
	c := NewWeighted[int, int](0, func(int, int) { released++ })
	for i := 0; i < 5; i++ {
		c.Add(i, i, 1)
	}
	if !c.Remove(2) || c.Remove(2) {
		t.Error("Remove should succeed once")
	}
	c.Purge()
	if c.Len() != 0 || c.Cost() != 0 {
		t.Errorf("after Purge Len/Cost = %d/%d", c.Len(), c.Cost())
	}
	if released != 5 {
		t.Errorf("onEvict called %d times, want 5", released)
	}
}

func TestWeightedStats(t *testing.T) {
	c := NewWeighted[string, int](10, nil)
	c.Add("a", 1, 6)
	c.Get("a")
	c.Get("a")
	c.Get("x")
	c.Add("b", 2, 6)

	s := c.Stats()
	want := Stats{Len: 1, Cost: 6, Budget: 10, Hits: 2, Misses: 1, Evictions: 1}
	want.HitRate = 2.0 / 3.0
	if s != want {
		t.Errorf("Stats() = %+v, want %+v", s, want)
	}
}

func TestLRUList(t *testing.T) {
	var l lruList[string, int]
	nodes := make([]*lruNode[string, int], 3)
	for i, k := range []string{"a", "b", "c"} {
		nodes[i] = &lruNode[string, int]{key: k}
		l.PushFront(nodes[i])
	}
	if l.Len() != 3 || l.Oldest().key != "a" {
		t.Fatalf("Len/Oldest = %d/%s, want 3/a", l.Len(), l.Oldest().key)
	}

	l.MoveToFront(nodes[0])
	if l.Oldest().key != "b" || l.Len() != 3 {
		t.Errorf("after MoveToFront(a): oldest %s len %d", l.Oldest().key, l.Len())
	}
	l.Remove(nodes[1])
	if l.Oldest().key != "c" || l.Len() != 2 {
		t.Errorf("after Remove(b): oldest %s len %d", l.Oldest().key, l.Len())
	}
	l.Clear()
	if l.Len() != 0 || l.Oldest() != nil {
		t.Error("list not empty after Clear")
	}
}

func TestLRUListEmptyOperations(t *testing.T) {
	var l lruList[int, int]
	if l.Oldest() != nil {
		t.Error("Oldest on empty list should be nil")
	}
	l.Remove(nil)
	l.MoveToFront(nil)
}

func BenchmarkWeightedGet(b *testing.B) {
	c := NewWeighted[string, int](0, nil)
	for i := 0; i < 100; i++ {
		c.Add(strconv.Itoa(i), i, 1)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get("50")
	}
}

func BenchmarkWeightedAddEvict(b *testing.B) {
	c := NewWeighted[int, int](64, nil)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Add(i, i, 1)
	}
}
