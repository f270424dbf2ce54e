package api

import (
	"context"
	"fmt"

	"github.com/youruser/postgen/internal/config"
	imagepkg "github.com/youruser/postgen/internal/image"
)

// styleRequest carries every styling control of the post form.
type styleRequest struct {
	Font               string  `json:"font"`
	FontSize           float64 `json:"font_size" binding:"omitempty,min=20,max=150"`
	TextColor          string  `json:"text_color" binding:"omitempty,hexcolor"`
	BackgroundColor    string  `json:"background_color" binding:"omitempty,hexcolor"`
	BackgroundImageURL string  `json:"background_image_url" binding:"omitempty,url"`
	Emoji              string  `json:"emoji"`
	EmojiSize          float64 `json:"emoji_size" binding:"omitempty,min=20,max=200"`
	EmojiX             int     `json:"emoji_x" binding:"min=0"`
	EmojiY             int     `json:"emoji_y" binding:"min=0"`
	BorderWidth        int     `json:"border_width" binding:"min=0,max=50"`
	BorderColor        string  `json:"border_color" binding:"omitempty,hexcolor"`
	Frame              string  `json:"frame"`
	FrameImageURL      string  `json:"frame_image_url" binding:"omitempty,url"`
	Rotation           float64 `json:"rotation" binding:"min=0,max=360"`
	Flip               string  `json:"flip"`
	Watermark          string  `json:"watermark"`
	GradientColor      string  `json:"gradient_color" binding:"omitempty,hexcolor"`
}

type imageRequest struct {
	Text string `json:"text"`
	Save bool   `json:"save"`
	styleRequest
}

type releaseRequest struct {
	Repo string `json:"repo"`
	styleRequest
}

const (
	defaultQRSize = 400
	maxQRSize     = 2048
)

// qrQuery bounds the QR edge length; go-qrcode allocates size*size pixels.
type qrQuery struct {
	Text string `form:"text"`
	Repo string `form:"repo"`
	Size int    `form:"size" binding:"omitempty,min=64,max=2048"`
}

func orDefault[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}

// toSpec fills unset controls with the form defaults and builds the
// immutable spec for one generation.
func (s styleRequest) toSpec(ctx context.Context, cfg config.Config, text string) (imagepkg.PostSpec, error) {
	frame, err := imagepkg.ParseFrameMode(s.Frame)
	if err != nil {
		return imagepkg.PostSpec{}, err
	}
	flip, err := imagepkg.ParseFlipMode(s.Flip)
	if err != nil {
		return imagepkg.PostSpec{}, err
	}
	if s.EmojiX > cfg.CanvasWidth || s.EmojiY > cfg.CanvasHeight {
		return imagepkg.PostSpec{}, fmt.Errorf("emoji position (%d,%d) outside %dx%d canvas",
			s.EmojiX, s.EmojiY, cfg.CanvasWidth, cfg.CanvasHeight)
	}

	spec := imagepkg.PostSpec{
		Width:  cfg.CanvasWidth,
		Height: cfg.CanvasHeight,
		Background: imagepkg.BackgroundSpec{
			Color: orDefault(s.BackgroundColor, "#FFFFFF"),
		},
		Text: imagepkg.TextSpec{
			Content:  text,
			FontName: orDefault(s.Font, cfg.DefaultFont),
			Size:     orDefault(s.FontSize, 50),
			Color:    orDefault(s.TextColor, "#000000"),
		},
		Emoji: imagepkg.EmojiSpec{
			Text: s.Emoji,
			Size: orDefault(s.EmojiSize, 50),
			X:    s.EmojiX,
			Y:    s.EmojiY,
		},
		Border: imagepkg.BorderSpec{
			Width: s.BorderWidth,
			Color: orDefault(s.BorderColor, "#000000"),
		},
		Frame:         imagepkg.FrameSpec{Mode: frame},
		Transform:     imagepkg.TransformSpec{Angle: s.Rotation, Flip: flip},
		Watermark:     imagepkg.WatermarkSpec{Text: s.Watermark},
		GradientColor: s.GradientColor,
	}
	if s.BackgroundImageURL != "" {
		spec.Background.Image = imagepkg.FromURL(ctx, s.BackgroundImageURL)
	}
	if frame == imagepkg.FramePatterned && s.FrameImageURL != "" {
		spec.Frame.Image = imagepkg.FromURL(ctx, s.FrameImageURL)
	}
	return spec, nil
}
