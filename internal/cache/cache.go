package cache

// Weighted is an LRU cache bounded by the total cost of its entries.
//
// When an insertion pushes the total cost over the budget, least recently
// used entries are evicted until it fits again. The entry just inserted is
// never evicted by its own insertion, so a single entry larger than the
// budget stays until something newer replaces it.
//
// Weighted is not safe for concurrent use; callers must synchronize.
type Weighted[K comparable, V any] struct {
	entries map[K]*lruNode[K, V]
	lru     lruList[K, V]
	budget  int64
	total   int64
	onEvict func(K, V)

	hits      uint64
	misses    uint64
	evictions uint64
}

// NewWeighted creates a cache holding at most budget units of cost. A
// budget of 0 or less means unlimited. onEvict, if non-nil, is called for
// every entry that leaves the cache through eviction, replacement, Remove
// or Purge.
func NewWeighted[K comparable, V any](budget int64, onEvict func(K, V)) *Weighted[K, V] {
	return &Weighted[K, V]{
		entries: make(map[K]*lruNode[K, V]),
		budget:  budget,
		onEvict: onEvict,
	}
}

// Get returns the value for key and marks it most recently used.
func (c *Weighted[K, V]) Get(key K) (V, bool) {
	node, ok := c.entries[key]
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}
	c.hits++
	c.lru.MoveToFront(node)
	return node.value, true
}

// Peek returns the value for key without touching its recency.
func (c *Weighted[K, V]) Peek(key K) (V, bool) {
	node, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	return node.value, true
}

// Add stores value under key with the given cost, replacing any previous
// value, and evicts old entries while the total cost exceeds the budget.
// It returns the number of entries evicted.
func (c *Weighted[K, V]) Add(key K, value V, cost int64) int {
	if old, ok := c.entries[key]; ok {
		c.drop(old)
	}
	node := &lruNode[K, V]{key: key, value: value, cost: cost}
	c.entries[key] = node
	c.lru.PushFront(node)
	c.total += cost

	evicted := 0
	for c.budget > 0 && c.total > c.budget {
		oldest := c.lru.Oldest()
		if oldest == nil || oldest == node {
			break
		}
		c.drop(oldest)
		c.evictions++
		evicted++
	}
	return evicted
}

// Remove deletes key from the cache. It reports whether the key was
// present.
func (c *Weighted[K, V]) Remove(key K) bool {
	node, ok := c.entries[key]
	if !ok {
		return false
	}
	c.drop(node)
	return true
}

// Purge removes every entry, oldest first.
func (c *Weighted[K, V]) Purge() {
	for node := c.lru.Oldest(); node != nil; node = c.lru.Oldest() {
		c.drop(node)
	}
	c.lru.Clear()
	c.total = 0
}

// Len returns the number of entries.
func (c *Weighted[K, V]) Len() int {
	return c.lru.Len()
}

// Cost returns the total cost of all entries.
func (c *Weighted[K, V]) Cost() int64 {
	return c.total
}

// Budget returns the cost budget; 0 means unlimited.
func (c *Weighted[K, V]) Budget() int64 {
	return c.budget
}

// Keys returns the keys from most to least recently used.
func (c *Weighted[K, V]) Keys() []K {
	keys := make([]K, 0, c.lru.Len())
	for node := c.lru.head; node != nil; node = node.next {
		keys = append(keys, node.key)
	}
	return keys
}

// Stats returns cache statistics.
func (c *Weighted[K, V]) Stats() Stats {
	s := Stats{
		Len:       c.lru.Len(),
		Cost:      c.total,
		Budget:    c.budget,
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
	}
	if lookups := c.hits + c.misses; lookups > 0 {
		s.HitRate = float64(c.hits) / float64(lookups)
	}
	return s
}

// drop unlinks node and reports it to onEvict.
func (c *Weighted[K, V]) drop(node *lruNode[K, V]) {
	c.lru.Remove(node)
	delete(c.entries, node.key)
	c.total -= node.cost
	if c.onEvict != nil {
		c.onEvict(node.key, node.value)
	}
}

// Stats contains cache statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Cost is the total cost of the entries.
	Cost int64
	// Budget is the cost budget, 0 for unlimited.
	Budget int64
	// Hits is the number of Get calls that found their key.
	Hits uint64
	// Misses is the number of Get calls that did not.
	Misses uint64
	// HitRate is Hits over all Get calls, 0.0 to 1.0.
	HitRate float64
	// Evictions is the number of entries removed to meet the budget.
	Evictions uint64
}
