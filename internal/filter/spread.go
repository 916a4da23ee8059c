package filter

import (
	"image"
	"math"
)

// Spread dilates the coverage of src by radius pixels, the solid stroke
// a layer style spread draws around its content. The edge of the disc is
// antialiased over one pixel. The result has src's bounds.
func Spread(src *image.Alpha, radius float64) *image.Alpha {
	b := src.Bounds()
	dst := image.NewAlpha(b)
	if radius <= 0 {
		copy(dst.Pix, src.Pix)
		return dst
	}

	type tap struct {
		dx, dy int
		weight float32
	}
	r := int(math.Ceil(radius + 0.5))
	var taps []tap
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			d := math.Hypot(float64(dx), float64(dy))
			wgt := math.Min(1, radius+0.5-d)
			if wgt <= 0 {
				continue
			}
			taps = append(taps, tap{dx, dy, float32(wgt)})
		}
	}

	w, h := b.Dx(), b.Dy()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var best float32
			for _, t := range taps {
				sx, sy := x+t.dx, y+t.dy
				if sx < 0 || sx >= w || sy < 0 || sy >= h {
					continue
				}
				if v := float32(src.Pix[sy*src.Stride+sx]) * t.weight; v > best {
					best = v
				}
			}
			dst.Pix[y*dst.Stride+x] = clampUint8(best)
		}
	}
	return dst
}
