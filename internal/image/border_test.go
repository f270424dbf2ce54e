package imagepkg

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	white = color.RGBA{0xff, 0xff, 0xff, 0xff}
	red   = color.RGBA{0xff, 0, 0, 0xff}
	black = color.RGBA{0, 0, 0, 0xff}
)

func TestDrawBorderZeroWidthIsNoop(t *testing.T) {
	for _, mode := range []FrameMode{FrameNone, FrameSimple} {
		c := solidCanvas(300, 300, color.White)
		before := clonePixels(c)
		require.NoError(t, DrawBorder(c, BorderSpec{Width: 0, Color: "#ff0000"}, FrameSpec{Mode: mode}))
		assert.Equal(t, before, c.Image().Pix, mode)
	}
}

func TestDrawBorderInsetOnly(t *testing.T) {
	c := solidCanvas(1080, 1080, color.White)
	require.NoError(t, DrawBorder(c, BorderSpec{Width: 10, Color: "#ff0000"}, FrameSpec{Mode: FrameNone}))

	assert.Equal(t, white, rgbaAt(c, 5, 540))
	assert.Equal(t, red, rgbaAt(c, 15, 540))
	assert.Equal(t, red, rgbaAt(c, 540, 15))
	assert.Equal(t, red, rgbaAt(c, 1064, 540))
	assert.Equal(t, red, rgbaAt(c, 540, 1064))
	assert.Equal(t, white, rgbaAt(c, 25, 540))
	assert.Equal(t, white, rgbaAt(c, 1075, 540))
}

func TestDrawBorderWithSimpleFrameDrawsBoth(t *testing.T) {
	c := solidCanvas(1080, 1080, color.White)
	require.NoError(t, DrawBorder(c, BorderSpec{Width: 10, Color: "#ff0000"}, FrameSpec{Mode: FrameSimple}))

	// edge-flush frame
	for _, p := range []image.Point{{0, 0}, {5, 540}, {540, 5}, {1075, 540}, {540, 1079}, {1079, 1079}} {
		assert.Equal(t, red, rgbaAt(c, p.X, p.Y), p)
	}
	// inset border
	for _, p := range []image.Point{{15, 540}, {540, 15}, {1064, 540}, {540, 1064}} {
		assert.Equal(t, red, rgbaAt(c, p.X, p.Y), p)
	}
	assert.Equal(t, white, rgbaAt(c, 25, 540))
	assert.Equal(t, white, rgbaAt(c, 540, 540))
}

func TestDrawBorderBadColor(t *testing.T) {
	c := solidCanvas(100, 100, color.White)
	before := clonePixels(c)
	assert.Error(t, DrawBorder(c, BorderSpec{Width: 5, Color: "bogus"}, FrameSpec{Mode: FrameSimple}))
	assert.Equal(t, before, c.Image().Pix)
}

func patternImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 100, 100))
	for y := 0; y < 10; y++ {
		for x := 0; x < 100; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 0xff, A: 0xff})
		}
	}
	return img
}

func TestDrawBorderPatternedFrame(t *testing.T) {
	c := solidCanvas(200, 200, color.White)
	require.NoError(t, DrawBorder(c, BorderSpec{}, FrameSpec{Mode: FramePatterned, Image: FromImage(patternImage())}))

	assert.Equal(t, image.Pt(200, 200), c.Size())
	assert.Equal(t, red, rgbaAt(c, 100, 4))
	assert.Equal(t, white, rgbaAt(c, 100, 100))
	assert.Equal(t, white, rgbaAt(c, 100, 190))
}

func TestDrawBorderPatternedFrameFailures(t *testing.T) {
	for name, src := range map[string]ImageSource{
		"no source":  nil,
		"bad bytes":  FromBytes([]byte("not an image")),
		"nil image":  FromImage(nil),
		"missing fs": FromFile("/nonexistent/frame.png"),
	} {
		t.Run(name, func(t *testing.T) {
			c := solidCanvas(50, 50, color.White)
			before := clonePixels(c)
			assert.Error(t, DrawBorder(c, BorderSpec{}, FrameSpec{Mode: FramePatterned, Image: src}))
			assert.Equal(t, before, c.Image().Pix)
		})
	}
}

func TestDrawBorderPatternedFrameKeepsBorder(t *testing.T) {
	c := solidCanvas(100, 100, color.White)
	err := DrawBorder(c, BorderSpec{Width: 4, Color: "#000000"}, FrameSpec{Mode: FramePatterned})
	assert.Error(t, err)
	assert.Equal(t, black, rgbaAt(c, 5, 50))
}

func TestParseFrameMode(t *testing.T) {
	for in, want := range map[string]FrameMode{
		"":                FrameNone,
		"No Frame":        FrameNone,
		"Simple Frame":    FrameSimple,
		"simple":          FrameSimple,
		"Patterned Frame": FramePatterned,
	} {
		got, err := ParseFrameMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseFrameMode("Fancy Frame")
	assert.Error(t, err)
}
