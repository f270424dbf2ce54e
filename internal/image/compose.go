package imagepkg

import (
	"fmt"
	"image/color"

	"github.com/sirupsen/logrus"
	"github.com/youruser/postgen/internal/fonts"
)

const (
	StageBackground = "background"
	StageText       = "text"
	StageEmoji      = "emoji"
	StageBorder     = "border"
	StageTransform  = "transform"
	StageWatermark  = "watermark"
)

// StageResult records the outcome of one pipeline stage. A nil Err means the
// stage either drew its element or had nothing to draw.
type StageResult struct {
	Stage string
	Err   error
}

func (r StageResult) OK() bool { return r.Err == nil }

type Result struct {
	Canvas *Canvas
	Stages []StageResult
}

// Failed lists the stages whose contribution is missing from the canvas.
func (r *Result) Failed() []StageResult {
	var out []StageResult
	for _, s := range r.Stages {
		if !s.OK() {
			out = append(out, s)
		}
	}
	return out
}

// Composer runs the fixed pipeline: background, text, emoji, border/frame,
// rotate/flip, watermark.
type Composer struct {
	FontDir       string
	EmojiFontPath string
	Log           *logrus.Entry
}

func (c *Composer) logger() *logrus.Entry {
	if c.Log != nil {
		return c.Log
	}
	return logrus.NewEntry(logrus.StandardLogger())
}

// Compose builds the post image. Only a failure to create the background is
// returned as an error; every other stage failure is recorded in the result
// and the pipeline carries on without that element.
func (c *Composer) Compose(spec PostSpec) (*Result, error) {
	log := c.logger()
	canvas, err := NewBackground(spec.Width, spec.Height, spec.Background)
	if err != nil {
		log.WithField("stage", StageBackground).WithError(err).Error("canvas creation failed")
		return nil, fmt.Errorf("creating canvas: %w", err)
	}
	if spec.GradientColor != "" {
		log.WithField("gradient_color", spec.GradientColor).Debug("gradient color is not rendered")
	}

	var (
		fontPath string
		fontErr  error
		resolved bool
	)
	textFont := func() (string, error) {
		if !resolved {
			fontPath, fontErr = fonts.Resolve(c.FontDir, spec.Text.FontName)
			resolved = true
		}
		return fontPath, fontErr
	}
	withFont := func(draw func(string) error) func() error {
		return func() error {
			p, err := textFont()
			if err != nil {
				return err
			}
			return draw(p)
		}
	}

	emojiColor, err := ParseColor(spec.Text.Color)
	if err != nil {
		emojiColor = color.NRGBA{A: 0xff}
	}

	stages := []struct {
		name string
		skip bool
		run  func() error
	}{
		{StageText, len(WrapText(spec.Text.Content, WrapWidth)) == 0, withFont(func(p string) error {
			return DrawText(canvas, spec.Text, p)
		})},
		{StageEmoji, spec.Emoji.Text == "", func() error {
			return DrawEmoji(canvas, spec.Emoji, c.EmojiFontPath, emojiColor)
		}},
		{StageBorder, false, func() error {
			return DrawBorder(canvas, spec.Border, spec.Frame)
		}},
		{StageTransform, false, func() error {
			return Transform(canvas, spec.Transform)
		}},
		{StageWatermark, spec.Watermark.Text == "", withFont(func(p string) error {
			return DrawWatermark(canvas, spec.Watermark, p)
		})},
	}

	res := &Result{Canvas: canvas}
	for _, s := range stages {
		if s.skip {
			res.Stages = append(res.Stages, StageResult{Stage: s.name})
			continue
		}
		err := s.run()
		if err != nil {
			log.WithField("stage", s.name).WithError(err).Warn("stage skipped")
		}
		res.Stages = append(res.Stages, StageResult{Stage: s.name, Err: err})
	}
	return res, nil
}
