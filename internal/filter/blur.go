package filter

import "image"

// BlurAlpha blurs src with a separable Gaussian of standard deviations
// sigmaX and sigmaY. Pixels outside src count as transparent, so coverage
// near the edges fades out rather than smearing. The result has src's
// bounds; callers pad src by ExpandBlur first to keep the full falloff.
func BlurAlpha(src *image.Alpha, sigmaX, sigmaY float64) *image.Alpha {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewAlpha(b)
	if w == 0 || h == 0 {
		return dst
	}
	buf := make([]float32, w*h)
	for y := 0; y < h; y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+w]
		for x, a := range row {
			buf[y*w+x] = float32(a)
		}
	}

	if sigmaX > 0 {
		buf = convolve(buf, w, h, CachedGaussianKernel(sigmaX), false)
	}
	if sigmaY > 0 {
		buf = convolve(buf, w, h, CachedGaussianKernel(sigmaY), true)
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dst.Pix[y*dst.Stride+x] = clampUint8(buf[y*w+x])
		}
	}
	return dst
}

// convolve runs a 1D kernel along the rows, or the columns when vertical,
// of a w x h buffer.
func convolve(src []float32, w, h int, kernel []float32, vertical bool) []float32 {
	half := len(kernel) / 2
	step, n := 1, w
	if vertical {
		step, n = w, h
	}
	dst := make([]float32, len(src))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			pos := x
			if vertical {
				pos = y
			}
			var sum float32
			for k, weight := range kernel {
				p := pos + k - half
				if p < 0 || p >= n {
					continue
				}
				sum += src[i+(p-pos)*step] * weight
			}
			dst[i] = sum
		}
	}
	return dst
}

// ExpandBlur returns how far a blur of standard deviation sigma spreads
// coverage, in whole pixels.
func ExpandBlur(sigma float64) int {
	if sigma <= 0 {
		return 0
	}
	return len(CachedGaussianKernel(sigma)) / 2
}

// clampUint8 clamps v to [0, 255] and rounds to nearest.
func clampUint8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
