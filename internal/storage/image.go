package storage

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	"github.com/chai2010/webp"
	xdraw "golang.org/x/image/draw"
)

const (
	maxWidth    = 1080
	webpQuality = 80
)

// TransformImage normalizes an uploaded photo: decode, cap the width at
// 1080px (preserving aspect ratio) and re-encode as webp at fixed quality.
func TransformImage(data []byte, mimeType string) ([]byte, error) {
	img, err := decode(data, mimeType)
	if err != nil {
		return nil, err
	}

	img = fitWidth(img, maxWidth)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, fmt.Errorf("webp encode: %w", err)
	}
	return buf.Bytes(), nil
}

func decode(data []byte, mimeType string) (image.Image, error) {
	r := bytes.NewReader(data)

	switch mimeType {
	case "image/jpeg":
		return jpeg.Decode(r)
	case "image/png":
		return png.Decode(r)
	case "image/webp":
		return webp.Decode(r)
	default:
		return nil, fmt.Errorf("unsupported image type %q", mimeType)
	}
}

// fitWidth scales img down so its width is at most max. Images already
// within bounds pass through untouched.
func fitWidth(img image.Image, max int) image.Image {
	b := img.Bounds()
	if b.Dx() <= max {
		return img
	}

	h := b.Dy() * max / b.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, max, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return dst
}
