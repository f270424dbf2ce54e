package post

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/youruser/postgen/internal/fonts"
	imagepkg "github.com/youruser/postgen/internal/image"
	"github.com/youruser/postgen/internal/release"
	"golang.org/x/image/font/gofont/goregular"
)

type fakeReleases struct {
	rel *release.Release
	err error
}

func (f fakeReleases) Latest(ctx context.Context, repo string) (*release.Release, error) {
	return f.rel, f.err
}

type fakeSummarizer struct {
	calls int
	out   string
	err   error
}

func (f *fakeSummarizer) Summarize(ctx context.Context, text string) (string, error) {
	f.calls++
	return f.out, f.err
}

func newService(t *testing.T, rel fakeReleases, sum *fakeSummarizer) *Service {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Go-Regular.ttf"), goregular.TTF, 0o644))
	logger, _ := test.NewNullLogger()
	log := logrus.NewEntry(logger)
	return &Service{
		Composer:   &imagepkg.Composer{FontDir: dir, EmojiFontPath: filepath.Join(dir, "Go-Regular.ttf"), Log: log},
		Releases:   rel,
		Summarizer: sum,
		OutputPath: filepath.Join(t.TempDir(), "output", "instagram_post.png"),
		Log:        log,
	}
}

func baseSpec() imagepkg.PostSpec {
	return imagepkg.PostSpec{
		Width:      400,
		Height:     400,
		Background: imagepkg.BackgroundSpec{Color: "#ffffff"},
		Text:       imagepkg.TextSpec{FontName: "Go-Regular.ttf", Size: 30, Color: "#000000"},
	}
}

func TestGenerateRejectsBlankText(t *testing.T) {
	s := newService(t, fakeReleases{}, &fakeSummarizer{})
	spec := baseSpec()
	spec.Text.Content = "  \n "
	_, err := s.Generate(spec)
	assert.ErrorIs(t, err, ErrEmptyText)
}

func TestGenerateAndSave(t *testing.T) {
	s := newService(t, fakeReleases{}, &fakeSummarizer{})
	spec := baseSpec()
	spec.Text.Content = "Hello\nWorld"

	res, err := s.Generate(spec)
	require.NoError(t, err)
	assert.Empty(t, res.Failed())

	path, err := s.Save(res.Canvas.Image())
	require.NoError(t, err)
	img, err := imaging.Open(path)
	require.NoError(t, err)
	assert.Equal(t, 400, img.Bounds().Dx())

	// overwritten, not versioned
	_, err = s.Save(res.Canvas.Image())
	require.NoError(t, err)
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFromReleaseWithoutReleasesSkipsSummarizer(t *testing.T) {
	for name, fetchErr := range map[string]error{
		"empty list":    fmt.Errorf("%w for a/b", release.ErrNoReleases),
		"network error": errors.New("connection refused"),
	} {
		t.Run(name, func(t *testing.T) {
			sum := &fakeSummarizer{out: "unused"}
			s := newService(t, fakeReleases{err: fetchErr}, sum)

			_, err := s.FromRelease(context.Background(), "a/b", baseSpec())
			require.Error(t, err)
			assert.Zero(t, sum.calls)
		})
	}

	s := newService(t, fakeReleases{err: release.ErrNoReleases}, &fakeSummarizer{})
	_, err := s.FromRelease(context.Background(), "a/b", baseSpec())
	assert.ErrorIs(t, err, release.ErrNoReleases)
}

func TestFromReleaseUsesSummary(t *testing.T) {
	sum := &fakeSummarizer{out: "Faster tokenizers and bug fixes"}
	s := newService(t, fakeReleases{rel: &release.Release{Title: "v1.2.0", Content: "long notes"}}, sum)

	post, err := s.FromRelease(context.Background(), "a/b", baseSpec())
	require.NoError(t, err)
	assert.Equal(t, 1, sum.calls)
	assert.Equal(t, "v1.2.0", post.Release.Title)
	assert.Equal(t, "Faster tokenizers and bug fixes", post.Summary)
	assert.Empty(t, post.Result.Failed())
}

func TestFromReleaseSummaryFailureBecomesText(t *testing.T) {
	sum := &fakeSummarizer{err: errors.New("model unavailable")}
	s := newService(t, fakeReleases{rel: &release.Release{Title: "v1", Content: "notes"}}, sum)

	post, err := s.FromRelease(context.Background(), "a/b", baseSpec())
	require.NoError(t, err)
	assert.Equal(t, "Error summarizing content. model unavailable", post.Summary)
	require.NotNil(t, post.Result)
}

func TestFontsAndPreview(t *testing.T) {
	s := newService(t, fakeReleases{}, &fakeSummarizer{})
	names, err := s.Fonts()
	require.NoError(t, err)
	assert.Equal(t, []string{"Go-Regular.ttf"}, names)

	img, err := s.Preview("Go-Regular.ttf")
	require.NoError(t, err)
	assert.Equal(t, imagepkg.PreviewWidth, img.Bounds().Dx())

	_, err = s.Preview("Nope.ttf")
	assert.ErrorIs(t, err, fonts.ErrFontNotFound)
}

func TestFromReleaseRenderFailure(t *testing.T) {
	s := newService(t, fakeReleases{rel: &release.Release{Title: "v1", Content: "notes"}}, &fakeSummarizer{out: "ok"})
	spec := baseSpec()
	spec.Background.Color = "nope"

	_, err := s.FromRelease(context.Background(), "a/b", spec)
	assert.ErrorIs(t, err, ErrRender)
}
