package services

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"
)

func encodeTestImage(t *testing.T, format string, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	switch format {
	case "png":
		require.NoError(t, png.Encode(&buf, img))
	case "jpeg":
		require.NoError(t, jpeg.Encode(&buf, img, nil))
	default:
		t.Fatalf("unsupported test image format: %s", format)
	}
	return buf.Bytes()
}

func TestCompressImage(t *testing.T) {
	t.Parallel()

	t.Run("Downscales wide images preserving aspect ratio", func(t *testing.T) {
		t.Parallel()

		data := encodeTestImage(t, "jpeg", 800, 400)
		got, err := CompressImage(data, 200, 82)
		require.NoError(t, err)
		require.Equal(t, 200, got.Width)
		require.Equal(t, 100, got.Height)
		require.Equal(t, "jpeg", got.Format)

		decoded, format, err := image.Decode(bytes.NewReader(got.Data))
		require.NoError(t, err)
		require.Equal(t, "jpeg", format)
		require.Equal(t, 200, decoded.Bounds().Dx())
	})

	t.Run("Keeps narrow images at original size", func(t *testing.T) {
		t.Parallel()

		data := encodeTestImage(t, "jpeg", 100, 60)
		got, err := CompressImage(data, 1600, 82)
		require.NoError(t, err)
		require.Equal(t, 100, got.Width)
		require.Equal(t, 60, got.Height)
	})

	t.Run("PNG input stays PNG", func(t *testing.T) {
		t.Parallel()

		data := encodeTestImage(t, "png", 50, 50)
		got, err := CompressImage(data, 1600, 82)
		require.NoError(t, err)
		require.Equal(t, "png", got.Format)

		_, format, err := image.Decode(bytes.NewReader(got.Data))
		require.NoError(t, err)
		require.Equal(t, "png", format)
	})

	t.Run("Rejects non-image bytes", func(t *testing.T) {
		t.Parallel()

		_, err := CompressImage([]byte("definitely not an image"), 1600, 82)
		require.Error(t, err)
	})
}
