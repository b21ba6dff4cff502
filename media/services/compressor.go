package services

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	_ "image/gif"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// CompressedImage holds the re-encoded bytes and metadata of a processed image.
type CompressedImage struct {
	Data   []byte
	Width  int
	Height int
	// Format is the output encoding: "jpeg" or "png".
	Format string
}

// CompressImage decodes an image (jpeg, png, webp or gif), downscales it to
// maxWidth when wider, and re-encodes it. PNG input stays PNG to keep
// transparency; everything else becomes JPEG at the given quality.
func CompressImage(data []byte, maxWidth, jpegQuality int) (*CompressedImage, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if maxWidth > 0 && w > maxWidth {
		newH := h * maxWidth / w
		if newH < 1 {
			newH = 1
		}
		dst := image.NewRGBA(image.Rect(0, 0, maxWidth, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
		w = maxWidth
		h = newH
	}

	var buf bytes.Buffer
	outFormat := "jpeg"
	if format == "png" {
		outFormat = "png"
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("encode png: %w", err)
		}
	} else {
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
			return nil, fmt.Errorf("encode jpeg: %w", err)
		}
	}

	return &CompressedImage{
		Data:   buf.Bytes(),
		Width:  w,
		Height: h,
		Format: outFormat,
	}, nil
}
