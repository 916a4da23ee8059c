// Package cache provides a cost-bounded LRU cache.
//
// Weighted keeps entries in least-recently-used order and tracks a cost per
// entry. Inserting past the budget evicts from the cold end:
//
//	c := cache.NewWeighted[string, []byte](1<<20, nil)
//	c.Add("page", buf, int64(len(buf)))
//	buf, ok := c.Get("page")
//
// Weighted is not safe for concurrent use. The RenderCache in the public
// cache package wraps it with a mutex.
package cache
