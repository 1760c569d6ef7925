package imaging

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adpilot/internal/core/domain"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
}

func decodeConfig(t *testing.T, path string) (image.Config, string) {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, format, err := image.DecodeConfig(f)
	require.NoError(t, err)
	return cfg, format
}

func TestResize(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "logo.png")
	writePNG(t, src, 64, 48)

	cases := []struct {
		name   string
		dst    string
		size   domain.ImageSize
		format string
	}{
		{name: "square jpeg", dst: "square_image.jpeg", size: domain.SquareImageSize, format: "jpeg"},
		{name: "landscape jpeg", dst: "landscape_image.jpeg", size: domain.LandscapeImageSize, format: "jpeg"},
		{name: "png output", dst: "out.png", size: domain.ImageSize{Width: 10, Height: 20}, format: "png"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dst := filepath.Join(dir, tc.dst)
			require.NoError(t, Resizer{}.Resize(src, dst, tc.size))

			cfg, format := decodeConfig(t, dst)
			assert.Equal(t, tc.format, format)
			assert.Equal(t, tc.size.Width, cfg.Width)
			assert.Equal(t, tc.size.Height, cfg.Height)
		})
	}
}

func TestResizeAcceptsJPEGInput(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "logo.jpeg")
	f, err := os.Create(src)
	require.NoError(t, err)
	require.NoError(t, jpeg.Encode(f, image.NewGray(image.Rect(0, 0, 30, 30)), nil))
	require.NoError(t, f.Close())

	dst := filepath.Join(dir, "square.jpeg")
	require.NoError(t, Resizer{Quality: 75}.Resize(src, dst, domain.ImageSize{Width: 12, Height: 12}))
	cfg, _ := decodeConfig(t, dst)
	assert.Equal(t, 12, cfg.Width)
}

func TestResizeErrors(t *testing.T) {
	dir := t.TempDir()

	err := Resizer{}.Resize(filepath.Join(dir, "missing.png"), filepath.Join(dir, "out.jpeg"), domain.SquareImageSize)
	assert.Error(t, err)

	garbage := filepath.Join(dir, "garbage.png")
	require.NoError(t, os.WriteFile(garbage, []byte("not an image"), 0o600))
	err = Resizer{}.Resize(garbage, filepath.Join(dir, "out.jpeg"), domain.SquareImageSize)
	assert.Error(t, err)

	src := filepath.Join(dir, "ok.png")
	writePNG(t, src, 4, 4)
	err = Resizer{}.Resize(src, filepath.Join(dir, "out.jpeg"), domain.ImageSize{})
	assert.Error(t, err)
}
