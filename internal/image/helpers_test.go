package imagepkg

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

const testFontName = "Go-Regular.ttf"

// testFontDir returns a font directory holding the Go Regular font.
func testFontDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, testFontName), goregular.TTF, 0o644))
	return dir
}

func testFontPath(t *testing.T) string {
	return filepath.Join(testFontDir(t), testFontName)
}

func solidCanvas(w, h int, c color.Color) *Canvas {
	return NewCanvasFromImage(imaging.New(w, h, c))
}

func rgbaAt(c *Canvas, x, y int) color.RGBA {
	return c.Image().RGBAAt(x, y)
}

// inkOutside returns the pixels that differ from bg and lie outside r.
func inkOutside(img *image.RGBA, bg color.RGBA, r image.Rectangle) []image.Point {
	var out []image.Point
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			p := image.Pt(x, y)
			if p.In(r) {
				continue
			}
			if img.RGBAAt(x, y) != bg {
				out = append(out, p)
			}
		}
	}
	return out
}

func countInk(img *image.RGBA, bg color.RGBA, r image.Rectangle) int {
	n := 0
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.RGBAAt(x, y) != bg {
				n++
			}
		}
	}
	return n
}

func clonePixels(c *Canvas) []uint8 {
	return append([]uint8(nil), c.Image().Pix...)
}
