// Command atlasdump builds a text atlas for a string and writes its pages
// as PNG files.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/textatlas"
	"github.com/gogpu/textatlas/cache"
	"github.com/gogpu/textatlas/glyph"
	"github.com/gogpu/textatlas/render"
)

func main() {
	var (
		fontPath = flag.String("font", "", "TrueType or OpenType font file (default Go Regular)")
		text     = flag.String("text", "The quick brown fox jumps over the lazy dog", "text to pack")
		size     = flag.Float64("size", 32, "font size in pixels")
		scale    = flag.Float64("scale", 1, "atlas scale")
		style    = flag.String("style", "fill", "glyph style: fill, stroke or strokefill")
		stroke   = flag.Float64("stroke", 2, "stroke width for stroked styles")
		maxSize  = flag.Int("max", 0, "maximum page size in pixels (default context limit)")
		outDir   = flag.String("out", ".", "output directory")
		verbose  = flag.Bool("v", false, "log build details")

		shadowSize     = flag.Float64("shadow", 0, "drop shadow size in pixels; 0 writes no shadow pages")
		shadowSpread   = flag.Float64("spread", 0, "drop shadow spread in [0, 1]")
		shadowDistance = flag.Float64("distance", 3, "drop shadow distance in pixels")
		shadowAngle    = flag.Float64("angle", 120, "drop shadow light angle in degrees")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	textatlas.SetLogger(logger)

	font, err := loadFont(*fontPath, float32(*size))
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}
	ts, err := parseStyle(*style)
	if err != nil {
		log.Fatal(err)
	}
	source, err := textatlas.ShapeText(glyph.NewShaper(), *text, font, ts, float32(*stroke), 1)
	if err != nil {
		log.Fatalf("Failed to shape text: %v", err)
	}

	rc, err := cache.New(render.NewSoftwareContext(), cache.WithMaxTextureSize(*maxSize), cache.WithMemoryBudget(0))
	if err != nil {
		log.Fatalf("Failed to create cache: %v", err)
	}
	defer rc.Purge()

	ta, err := rc.TextAtlas(source, float32(*scale))
	if err != nil {
		log.Fatalf("Failed to build atlas: %v", err)
	}

	for _, h := range slices.Concat(source.MaskGlyphs(), source.ColorGlyphs()) {
		loc, ok := ta.Locator(h, h.Style)
		if !ok {
			logger.Warn("glyph not in atlas", "glyph", h.String())
			continue
		}
		logger.Debug("locator",
			"glyph", h.String(),
			"page", loc.PageIndex,
			"x", loc.Rect.X, "y", loc.Rect.Y,
			"w", loc.Rect.W, "h", loc.Rect.H)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}
	for i := 0; i < ta.PageCount(); i++ {
		name := filepath.Join(*outDir, fmt.Sprintf("page-%d.png", i))
		if err := writePage(name, ta.Texture(i)); err != nil {
			log.Fatalf("Failed to save page %d: %v", i, err)
		}
	}
	if *shadowSize > 0 {
		shadow := render.DropShadow{
			Color:    render.Black,
			Opacity:  0.75,
			Angle:    float32(*shadowAngle),
			Distance: float32(*shadowDistance),
			Size:     float32(*shadowSize),
			Spread:   float32(*shadowSpread),
		}
		for i := 0; i < ta.PageCount(); i++ {
			name := filepath.Join(*outDir, fmt.Sprintf("page-%d-shadow.png", i))
			if err := writeShadow(name, shadow, ta.Texture(i), ta.DeviceScale()); err != nil {
				log.Fatalf("Failed to save shadow of page %d: %v", i, err)
			}
		}
		logger.Debug("shadow pages saved", "mode", shadow.Mode(ta.DeviceScale()).String())
	}
	logger.Info("atlas saved",
		"dir", *outDir,
		"glyphs", len(source.MaskGlyphs())+len(source.ColorGlyphs()),
		"pages", ta.PageCount(),
		"memory", ta.MemoryUsage())
}

func loadFont(path string, size float32) (glyph.Font, error) {
	data := goregular.TTF
	if path != "" {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return glyph.Font{}, err
		}
	}
	tf, err := glyph.ParseTypeface(data)
	if err != nil {
		return glyph.Font{}, err
	}
	return glyph.Font{Typeface: tf, Size: size}, nil
}

func parseStyle(s string) (glyph.TextStyle, error) {
	switch s {
	case "fill":
		return glyph.StyleFill, nil
	case "stroke":
		return glyph.StyleStroke, nil
	case "strokefill":
		return glyph.StyleStrokeAndFill, nil
	default:
		return 0, fmt.Errorf("unknown style %q (want fill, stroke or strokefill)", s)
	}
}

// pageImage wraps texture pixels in an image without copying.
func pageImage(tex render.Texture) (image.Image, error) {
	pix := tex.Pixels()
	if pix == nil {
		return nil, fmt.Errorf("texture has no CPU pixels")
	}
	r := image.Rect(0, 0, tex.Width(), tex.Height())
	switch tex.Format() {
	case gputypes.TextureFormatR8Unorm:
		return &image.Gray{Pix: pix, Stride: tex.Width(), Rect: r}, nil
	case gputypes.TextureFormatRGBA8Unorm:
		return &image.RGBA{Pix: pix, Stride: 4 * tex.Width(), Rect: r}, nil
	default:
		return nil, fmt.Errorf("unsupported texture format %v", tex.Format())
	}
}

func writePage(name string, tex render.Texture) error {
	img, err := pageImage(tex)
	if err != nil {
		return err
	}
	return writeImage(name, img)
}

// writeShadow renders the drop shadow of a page and saves it.
func writeShadow(name string, shadow render.DropShadow, tex render.Texture, scale float32) error {
	img, err := shadow.Render(tex, scale)
	if err != nil {
		return err
	}
	return writeImage(name, img)
}

func writeImage(name string, img image.Image) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
