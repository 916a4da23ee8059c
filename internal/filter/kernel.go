package filter

import (
	"math"
	"sync"

	"github.com/gogpu/textatlas/internal/cache"
)

// GaussianKernel generates a normalized 1D Gaussian kernel with standard
// deviation sigma. The kernel has 2*ceil(3*sigma)+1 taps.
//
// For sigma <= 0, returns the identity kernel [1].
func GaussianKernel(sigma float64) []float32 {
	if sigma <= 0 {
		return []float32{1}
	}
	half := int(math.Ceil(sigma * 3))
	kernel := make([]float32, 2*half+1)

	twoSigmaSq := 2 * sigma * sigma
	sum := 0.0
	for i := range kernel {
		x := float64(i - half)
		v := math.Exp(-(x * x) / twoSigmaSq)
		kernel[i] = float32(v)
		sum += v
	}
	inv := float32(1 / sum)
	for i := range kernel {
		kernel[i] *= inv
	}
	return kernel
}

// kernelBudget bounds the cached kernels by total tap count.
const kernelBudget = 4096

var kernels = struct {
	mu  sync.Mutex
	lru *cache.Weighted[int, []float32]
}{lru: cache.NewWeighted[int, []float32](kernelBudget, nil)}

// CachedGaussianKernel returns GaussianKernel(sigma), quantized to 0.01,
// from a process-wide LRU.
func CachedGaussianKernel(sigma float64) []float32 {
	key := int(math.Round(sigma * 100))
	kernels.mu.Lock()
	defer kernels.mu.Unlock()
	if k, ok := kernels.lru.Get(key); ok {
		return k
	}
	k := GaussianKernel(float64(key) / 100)
	kernels.lru.Add(key, k, int64(len(k)))
	return k
}
