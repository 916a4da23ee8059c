package cache

import (
	"sync"

	"github.com/gogpu/textatlas"
	lru "github.com/gogpu/textatlas/internal/cache"
	"github.com/gogpu/textatlas/render"
)

// key identifies one atlas: the same glyph source drawn at one scale.
type key struct {
	source uint64
	scale  float32
}

// RenderCache owns a render context and the text atlases built with it.
// Atlases are kept across frames and released when they are evicted under
// the memory budget, removed, or purged.
//
// RenderCache is safe for concurrent use. Builds run under the cache lock,
// so at most one atlas is rasterized at a time.
type RenderCache struct {
	ctx    render.Context
	config Config

	mu      sync.Mutex
	atlases *lru.Weighted[key, *textatlas.TextAtlas]
}

// Stats contains RenderCache statistics.
type Stats struct {
	Atlases      int
	MemoryUsage  int64
	MemoryBudget int64
	Hits         uint64
	Misses       uint64
	HitRate      float64
	Evictions    uint64
}

// New creates a RenderCache drawing with ctx.
func New(ctx render.Context, opts ...Option) (*RenderCache, error) {
	if ctx == nil {
		return nil, textatlas.ErrNilContext
	}
	config := DefaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	c := &RenderCache{ctx: ctx, config: config}
	c.atlases = lru.NewWeighted[key, *textatlas.TextAtlas](config.MemoryBudget, c.release)
	return c, nil
}

// Context implements textatlas.ContextProvider.
func (c *RenderCache) Context() render.Context {
	return c.ctx
}

// TextAtlas returns the atlas of source at scale, building it on a miss.
// The returned atlas belongs to the cache and must not be released by the
// caller; it stays valid until it is evicted, removed, or purged.
func (c *RenderCache) TextAtlas(source textatlas.GlyphSource, scale float32) (*textatlas.TextAtlas, error) {
	if source == nil {
		return nil, textatlas.ErrNilSource
	}
	k := key{source: source.ID(), scale: scale}

	c.mu.Lock()
	defer c.mu.Unlock()

	if ta, ok := c.atlases.Get(k); ok {
		return ta, nil
	}
	ta, err := textatlas.Build(source, c, scale, textatlas.WithMaxTextureSize(c.config.MaxTextureSize))
	if err != nil {
		return nil, err
	}
	if n := c.atlases.Add(k, ta, ta.MemoryUsage()); n > 0 {
		textatlas.Logger().Info("cache: evicted atlases",
			"count", n,
			"memory", c.atlases.Cost(),
			"budget", c.config.MemoryBudget)
	}
	return ta, nil
}

// Remove releases every cached atlas of source. It returns the number of
// atlases removed.
func (c *RenderCache) Remove(source textatlas.GlyphSource) int {
	if source == nil {
		return 0
	}
	id := source.ID()

	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for _, k := range c.atlases.Keys() {
		if k.source == id && c.atlases.Remove(k) {
			removed++
		}
	}
	return removed
}

// Purge releases every cached atlas.
func (c *RenderCache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.atlases.Purge()
}

// MemoryUsage returns the texture memory held by cached atlases in bytes.
func (c *RenderCache) MemoryUsage() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.atlases.Cost()
}

// Len returns the number of cached atlases.
func (c *RenderCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.atlases.Len()
}

// Config returns the cache configuration.
func (c *RenderCache) Config() Config {
	return c.config
}

// Stats returns cache statistics.
func (c *RenderCache) Stats() Stats {
	c.mu.Lock()
	s := c.atlases.Stats()
	c.mu.Unlock()
	return Stats{
		Atlases:      s.Len,
		MemoryUsage:  s.Cost,
		MemoryBudget: s.Budget,
		Hits:         s.Hits,
		Misses:       s.Misses,
		HitRate:      s.HitRate,
		Evictions:    s.Evictions,
	}
}

// release is called with c.mu held for every atlas leaving the cache.
func (c *RenderCache) release(k key, ta *textatlas.TextAtlas) {
	textatlas.Logger().Debug("cache: release atlas",
		"source", k.source,
		"scale", k.scale,
		"memory", ta.MemoryUsage())
	ta.Release()
}

var _ textatlas.ContextProvider = (*RenderCache)(nil)
