// Package cache keeps text atlases alive across frames.
//
// A RenderCache owns the render context atlases are drawn with and maps
// (glyph source, scale) pairs to built atlases. When the texture memory of
// the cached atlases exceeds the budget, the least recently used ones are
// released:
//
//	rc, err := cache.New(render.NewSoftwareContext(), cache.WithMemoryBudget(16<<20))
//	if err != nil {
//	    return err
//	}
//	defer rc.Purge()
//
//	ta, err := rc.TextAtlas(source, 2)
package cache
