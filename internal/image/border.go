package imagepkg

import (
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// DrawBorder applies the inset border and then the frame. With a simple
// frame and a border both outlines are drawn.
func DrawBorder(c *Canvas, border BorderSpec, frame FrameSpec) error {
	var errs []error
	if border.Width > 0 {
		col, err := ParseColor(border.Color)
		if err != nil {
			errs = append(errs, fmt.Errorf("border color: %w", err))
		} else {
			dc := c.context()
			dc.SetColor(col)
			outline(dc, border.Width, border.Width)
			if frame.Mode == FrameSimple {
				outline(dc, 0, border.Width)
			}
		}
	}
	if frame.Mode == FramePatterned {
		if err := pasteFrame(c, frame.Image); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// outline fills a rectangular ring of the given width whose outer edge is
// inset pixels from the canvas edge.
func outline(dc *gg.Context, inset, width int) {
	w, h := dc.Width()-2*inset, dc.Height()-2*inset
	if w <= 0 || h <= 0 {
		return
	}
	x, y, s := float64(inset), float64(inset), float64(width)
	fw, fh := float64(w), float64(h)
	dc.DrawRectangle(x, y, fw, s)
	dc.DrawRectangle(x, y+fh-s, fw, s)
	dc.DrawRectangle(x, y, s, fh)
	dc.DrawRectangle(x+fw-s, y, s, fh)
	dc.Fill()
}

func pasteFrame(c *Canvas, src ImageSource) error {
	img, err := open(src)
	if err != nil {
		return fmt.Errorf("frame image: %w", err)
	}
	size := c.Size()
	resized := imaging.Resize(img, size.X, size.Y, imaging.Lanczos)
	c.set(imaging.Overlay(c.img, resized, image.Pt(0, 0), 1.0))
	return nil
}
