package imagepkg

import (
	"fmt"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
)

// Transform rotates counter-clockwise by t.Angle degrees, growing the canvas
// to fit, then flips.
func Transform(c *Canvas, t TransformSpec) error {
	if angle := math.Mod(t.Angle, 360); angle != 0 {
		c.set(imaging.Rotate(c.img, angle, color.Black))
	}
	switch t.Flip {
	case "", FlipNone:
	case FlipHorizontal:
		c.set(imaging.FlipH(c.img))
	case FlipVertical:
		c.set(imaging.FlipV(c.img))
	default:
		return fmt.Errorf("unknown flip mode %q", t.Flip)
	}
	return nil
}
