package imagepkg

import (
	"fmt"
	"image/color"

	"github.com/youruser/postgen/internal/fonts"
)

// DrawEmoji draws spec.Text with its top-left at (X, Y). No centering.
func DrawEmoji(c *Canvas, spec EmojiSpec, fontPath string, col color.Color) error {
	if spec.Text == "" {
		return nil
	}
	face, err := fonts.LoadFace(fontPath, spec.Size)
	if err != nil {
		return fmt.Errorf("emoji font: %w", err)
	}
	defer face.Close()

	dc := c.context()
	dc.SetFontFace(face)
	dc.SetColor(col)
	dc.DrawString(spec.Text, float64(spec.X), float64(spec.Y+face.Metrics().Ascent.Ceil()))
	return nil
}
