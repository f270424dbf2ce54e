package imagepkg

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// Canvas is the raster being composed for one request. Stages draw into it
// in place; transforms swap the underlying buffer.
type Canvas struct {
	img *image.RGBA
}

func NewCanvasFromImage(img image.Image) *Canvas {
	return &Canvas{img: toRGBA(img)}
}

func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) Size() image.Point { return c.img.Bounds().Size() }

func (c *Canvas) context() *gg.Context { return gg.NewContextForRGBA(c.img) }

func (c *Canvas) set(img image.Image) { c.img = toRGBA(img) }

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// NewBackground creates the base canvas: a solid fill, covered by the
// background image resized to the canvas when one is given.
func NewBackground(width, height int, bg BackgroundSpec) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", width, height)
	}
	fill, err := ParseColor(bg.Color)
	if err != nil {
		return nil, fmt.Errorf("background color: %w", err)
	}
	canvas := imaging.New(width, height, fill)
	if bg.Image != nil {
		src, err := bg.Image.Open()
		if err != nil {
			return nil, fmt.Errorf("background image: %w", err)
		}
		resized := imaging.Resize(src, width, height, imaging.Lanczos)
		canvas = imaging.Overlay(canvas, resized, image.Pt(0, 0), 1.0)
	}
	return NewCanvasFromImage(canvas), nil
}
