// Package post ties the composer to its callers: it validates requests,
// saves results and runs the release-to-post flow.
package post

import (
	"context"
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/sirupsen/logrus"
	"github.com/youruser/postgen/internal/fonts"
	imagepkg "github.com/youruser/postgen/internal/image"
	"github.com/youruser/postgen/internal/release"
	"github.com/youruser/postgen/internal/summary"
	"github.com/youruser/postgen/internal/util"
)

var (
	ErrEmptyText = errors.New("please enter some text")
	ErrRender    = errors.New("rendering post")
)

type ReleaseFetcher interface {
	Latest(ctx context.Context, repo string) (*release.Release, error)
}

type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

type Service struct {
	Composer   *imagepkg.Composer
	Releases   ReleaseFetcher
	Summarizer Summarizer
	OutputPath string
	Log        *logrus.Entry
}

func (s *Service) logger() *logrus.Entry {
	if s.Log != nil {
		return s.Log
	}
	return logrus.NewEntry(logrus.StandardLogger())
}

// Generate composes a post from user text. Blank text is rejected before any
// drawing happens.
func (s *Service) Generate(spec imagepkg.PostSpec) (*imagepkg.Result, error) {
	if strings.TrimSpace(spec.Text.Content) == "" {
		return nil, ErrEmptyText
	}
	return s.Composer.Compose(spec)
}

// Save writes img as PNG to the output path, replacing any previous file.
func (s *Service) Save(img image.Image) (string, error) {
	if err := util.EnsureParentDir(s.OutputPath); err != nil {
		return "", fmt.Errorf("creating output dir: %w", err)
	}
	if err := imaging.Save(img, s.OutputPath); err != nil {
		return "", fmt.Errorf("saving %s: %w", s.OutputPath, err)
	}
	s.logger().WithField("path", s.OutputPath).Info("post saved")
	return s.OutputPath, nil
}

type ReleasePost struct {
	Release *release.Release
	Summary string
	Result  *imagepkg.Result
}

// FromRelease fetches the latest release of repo, summarizes its notes and
// composes them with the styling in spec. When no release is available the
// summarizer is never called.
func (s *Service) FromRelease(ctx context.Context, repo string, spec imagepkg.PostSpec) (*ReleasePost, error) {
	log := s.logger().WithField("repo", repo)
	rel, err := s.Releases.Latest(ctx, repo)
	if err != nil {
		log.WithError(err).Warn("no release to summarize")
		return nil, err
	}

	text := summary.OrMessage(s.Summarizer.Summarize(ctx, rel.Content))
	log.WithField("title", rel.Title).Info("release summarized")

	spec.Text.Content = text
	res, err := s.Generate(spec)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRender, err)
	}
	return &ReleasePost{Release: rel, Summary: text, Result: res}, nil
}

// Fonts lists the fonts the composer can use.
func (s *Service) Fonts() ([]string, error) {
	return fonts.List(s.Composer.FontDir)
}

// Preview renders a sample of the named font.
func (s *Service) Preview(name string) (*image.RGBA, error) {
	path, err := fonts.Resolve(s.Composer.FontDir, name)
	if err != nil {
		return nil, err
	}
	return imagepkg.RenderFontPreview(path)
}
