package storage

import (
	"bytes"
	"image"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
)

// Images wider than this are downscaled before re-encoding.
const maxImageWidth = 1600

// Only bother re-encoding formats that typically shrink; WebP input is
// already compressed, GIFs may animate.
func shouldRecompress(m *mimetype.MIME) bool {
	return m.Is("image/jpeg") || m.Is("image/png")
}

func compressToWebP(data []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, err
	}

	if img.Bounds().Dx() > maxImageWidth {
		img = imaging.Resize(img, maxImageWidth, 0, imaging.Lanczos)
	}

	out := new(bytes.Buffer)
	if err := webp.Encode(out, image.Image(img), &webp.Options{Quality: 80}); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
