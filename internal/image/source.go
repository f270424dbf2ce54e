package imagepkg

import (
	"bytes"
	"context"
	"errors"
	"image"

	"github.com/disintegration/imaging"
)

var errNoImage = errors.New("no image supplied")

// ImageSource defers opening an image to the stage that uses it, so a bad
// upload is reported by that stage.
type ImageSource interface {
	Open() (image.Image, error)
}

type SourceFunc func() (image.Image, error)

func (f SourceFunc) Open() (image.Image, error) { return f() }

func FromFile(path string) ImageSource {
	return SourceFunc(func() (image.Image, error) {
		return imaging.Open(path)
	})
}

func FromBytes(b []byte) ImageSource {
	return SourceFunc(func() (image.Image, error) {
		return imaging.Decode(bytes.NewReader(b))
	})
}

func FromURL(ctx context.Context, url string) ImageSource {
	return SourceFunc(func() (image.Image, error) {
		return DownloadImage(ctx, url)
	})
}

func FromImage(img image.Image) ImageSource {
	return SourceFunc(func() (image.Image, error) {
		if img == nil {
			return nil, errNoImage
		}
		return img, nil
	})
}

func open(src ImageSource) (image.Image, error) {
	if src == nil {
		return nil, errNoImage
	}
	return src.Open()
}
