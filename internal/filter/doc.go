// Package filter implements the raster passes of the drop shadow layer
// style over *image.Alpha and *image.RGBA:
//   - Gaussian blur (separable)
//   - solid spread (alpha dilation)
//   - drop shadow (spread + blur + offset + colorize)
package filter
