package imagepkg

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/youruser/postgen/internal/fonts"
)

const (
	PreviewWidth  = 500
	PreviewHeight = 150
	PreviewSize   = 40
	PreviewText   = "Font Preview"
)

// RenderFontPreview draws a sample line in the font at fontPath.
func RenderFontPreview(fontPath string) (*image.RGBA, error) {
	face, err := fonts.LoadFace(fontPath, PreviewSize)
	if err != nil {
		return nil, err
	}
	defer face.Close()

	c := NewCanvasFromImage(imaging.New(PreviewWidth, PreviewHeight, color.White))
	dc := c.context()
	dc.SetFontFace(face)
	dc.SetColor(color.Black)
	dc.DrawString(PreviewText, 10, float64(50+face.Metrics().Ascent.Ceil()))
	return c.Image(), nil
}
