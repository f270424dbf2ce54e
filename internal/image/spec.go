package imagepkg

import (
	"fmt"
	"strings"
)

type FrameMode string

const (
	FrameNone      FrameMode = "none"
	FrameSimple    FrameMode = "simple"
	FramePatterned FrameMode = "patterned"
)

// ParseFrameMode accepts the short names and the form labels ("Simple Frame").
func ParseFrameMode(s string) (FrameMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "no frame":
		return FrameNone, nil
	case "simple", "simple frame":
		return FrameSimple, nil
	case "patterned", "patterned frame":
		return FramePatterned, nil
	}
	return "", fmt.Errorf("unknown frame mode %q", s)
}

type FlipMode string

const (
	FlipNone       FlipMode = "none"
	FlipHorizontal FlipMode = "horizontal"
	FlipVertical   FlipMode = "vertical"
)

func ParseFlipMode(s string) (FlipMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return FlipNone, nil
	case "horizontal":
		return FlipHorizontal, nil
	case "vertical":
		return FlipVertical, nil
	}
	return "", fmt.Errorf("unknown flip mode %q", s)
}

// BackgroundSpec describes the base canvas. Image, when set, is resized to
// the canvas and replaces the solid fill.
type BackgroundSpec struct {
	Color string
	Image ImageSource
}

type TextSpec struct {
	Content  string
	FontName string
	Size     float64
	Color    string
}

// EmojiSpec is drawn with the configured emoji font, top-left at (X, Y).
type EmojiSpec struct {
	Text string
	Size float64
	X, Y int
}

type BorderSpec struct {
	Width int
	Color string
}

type FrameSpec struct {
	Mode  FrameMode
	Image ImageSource
}

type TransformSpec struct {
	Angle float64
	Flip  FlipMode
}

type WatermarkSpec struct {
	Text string
}

// PostSpec is everything a single generation needs. It is built once per
// request and never modified by the pipeline.
type PostSpec struct {
	Width, Height int

	Background BackgroundSpec
	Text       TextSpec
	Emoji      EmojiSpec
	Border     BorderSpec
	Frame      FrameSpec
	Transform  TransformSpec
	Watermark  WatermarkSpec

	// GradientColor is accepted from callers but not rendered.
	GradientColor string
}
