// Package imaging rescales generated images to the fixed sizes required by
// display ads.
package imaging

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

var _ port.ImageResizer = Resizer{}

// Resizer stretches images to an exact size. The output format follows the
// destination extension: .png writes PNG, anything else JPEG.
type Resizer struct {
	// Quality is the JPEG quality, 1 to 100. Zero means 90.
	Quality int
}

// Resize decodes src (JPEG, PNG or WebP), scales it to size and writes the
// result to dst.
func (r Resizer) Resize(src, dst string, size domain.ImageSize) error {
	if size.Width <= 0 || size.Height <= 0 {
		return fmt.Errorf("resize %s: invalid size %dx%d", src, size.Width, size.Height)
	}
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("resize: %w", err)
	}
	defer in.Close()

	img, _, err := image.Decode(in)
	if err != nil {
		return fmt.Errorf("resize %s: decode: %w", src, err)
	}

	scaled := image.NewRGBA(image.Rect(0, 0, size.Width, size.Height))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("resize: %w", err)
	}
	if err := r.encode(out, dst, scaled); err != nil {
		out.Close()
		return fmt.Errorf("resize %s: encode: %w", dst, err)
	}
	return out.Close()
}

func (r Resizer) encode(f *os.File, name string, img image.Image) error {
	if strings.EqualFold(filepath.Ext(name), ".png") {
		return png.Encode(f, img)
	}
	q := r.Quality
	if q <= 0 || q > 100 {
		q = 90
	}
	return jpeg.Encode(f, img, &jpeg.Options{Quality: q})
}
