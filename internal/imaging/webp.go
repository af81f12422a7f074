package imaging

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const (
	DefaultMaxSide = 1024
	defaultQuality = 80
)

// ToWebP decodes a JPEG or PNG, shrinks it so neither side exceeds maxSide
// and encodes it as lossy WebP.
func ToWebP(r io.Reader, maxSide int) ([]byte, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}

	out := Fit(src, maxSide)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, out, &webp.Options{Quality: defaultQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Fit scales src down, keeping its aspect ratio. Smaller images are returned
// unchanged.
func Fit(src image.Image, maxSide int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxSide <= 0 || (w <= maxSide && h <= maxSide) {
		return src
	}

	if w >= h {
		h = h * maxSide / w
		w = maxSide
	} else {
		w = w * maxSide / h
		h = maxSide
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
