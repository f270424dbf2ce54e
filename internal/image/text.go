package imagepkg

import (
	"fmt"
	"image"
	"strings"

	"github.com/mitchellh/go-wordwrap"
	"github.com/youruser/postgen/internal/fonts"
	"golang.org/x/image/font"
)

const (
	// WrapWidth is a character count, not a pixel width.
	WrapWidth   = 40
	LineSpacing = 4
)

// WrapText keeps explicit line breaks and wraps each line on word
// boundaries at width characters. Words longer than width are cut into
// width-character pieces. Blank lines are dropped.
func WrapText(text string, width int) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := []string{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.ReplaceAll(line, "\t", " ")
		wrapped := wordwrap.WrapString(strings.TrimSpace(line), uint(width))
		for _, l := range strings.Split(wrapped, "\n") {
			if l = strings.TrimSpace(l); l != "" {
				lines = append(lines, splitLong(l, width)...)
			}
		}
	}
	return lines
}

func splitLong(line string, width int) []string {
	r := []rune(line)
	if width <= 0 || len(r) <= width {
		return []string{line}
	}
	var out []string
	for len(r) > width {
		out = append(out, string(r[:width]))
		r = r[width:]
	}
	return append(out, string(r))
}

// TextLayout is the placement of a wrapped block on the canvas.
type TextLayout struct {
	Lines      []string
	Widths     []int
	Origin     image.Point
	Size       image.Point
	LineHeight int
	Ascent     int
}

// Bounds is the block's rectangle in canvas coordinates.
func (l TextLayout) Bounds() image.Rectangle {
	return image.Rectangle{Min: l.Origin, Max: l.Origin.Add(l.Size)}
}

// Baseline returns the dot position of line i, centered within the block.
func (l TextLayout) Baseline(i int) image.Point {
	return image.Point{
		X: l.Origin.X + (l.Size.X-l.Widths[i])/2,
		Y: l.Origin.Y + i*(l.LineHeight+LineSpacing) + l.Ascent,
	}
}

// LayoutText measures lines in face and centers the block on a canvas of
// the given size. A block larger than the canvas is pinned to the top-left.
func LayoutText(face font.Face, lines []string, canvas image.Point) TextLayout {
	m := face.Metrics()
	l := TextLayout{
		Lines:      lines,
		Widths:     make([]int, len(lines)),
		Ascent:     m.Ascent.Ceil(),
		LineHeight: m.Ascent.Ceil() + m.Descent.Ceil(),
	}
	for i, line := range lines {
		l.Widths[i] = font.MeasureString(face, line).Ceil()
		if l.Widths[i] > l.Size.X {
			l.Size.X = l.Widths[i]
		}
	}
	if n := len(lines); n > 0 {
		l.Size.Y = n*l.LineHeight + (n-1)*LineSpacing
	}
	l.Origin = image.Point{
		X: max(0, (canvas.X-l.Size.X)/2),
		Y: max(0, (canvas.Y-l.Size.Y)/2),
	}
	return l
}

// DrawText wraps, centers and draws the text block.
func DrawText(c *Canvas, spec TextSpec, fontPath string) error {
	lines := WrapText(spec.Content, WrapWidth)
	if len(lines) == 0 {
		return nil
	}
	col, err := ParseColor(spec.Color)
	if err != nil {
		return fmt.Errorf("text color: %w", err)
	}
	face, err := fonts.LoadFace(fontPath, spec.Size)
	if err != nil {
		return err
	}
	defer face.Close()

	layout := LayoutText(face, lines, c.Size())
	dc := c.context()
	dc.SetFontFace(face)
	dc.SetColor(col)
	for i, line := range layout.Lines {
		p := layout.Baseline(i)
		dc.DrawString(line, float64(p.X), float64(p.Y))
	}
	return nil
}
