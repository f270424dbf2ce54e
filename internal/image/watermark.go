package imagepkg

import (
	"image/color"

	"github.com/youruser/postgen/internal/fonts"
	"golang.org/x/image/font"
)

const (
	WatermarkSize  = 20
	WatermarkInset = 10
)

// DrawWatermark draws text in white so that its ink box ends WatermarkInset
// pixels from the bottom-right corner.
func DrawWatermark(c *Canvas, spec WatermarkSpec, fontPath string) error {
	if spec.Text == "" {
		return nil
	}
	face, err := fonts.LoadFace(fontPath, WatermarkSize)
	if err != nil {
		return err
	}
	defer face.Close()

	bounds, _ := font.BoundString(face, spec.Text)
	size := c.Size()
	x := float64(size.X-WatermarkInset) - float64(bounds.Max.X)/64
	y := float64(size.Y-WatermarkInset) - float64(bounds.Max.Y)/64

	dc := c.context()
	dc.SetFontFace(face)
	dc.SetColor(color.White)
	dc.DrawString(spec.Text, x, y)
	return nil
}
