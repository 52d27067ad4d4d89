package weatheroverlay

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// SaveScreenshot writes img as a PNG named <timestamp>_<label>.png in dir,
// creating dir if needed, and returns the file path. See fileLabel for how
// label is cleaned.
func SaveScreenshot(dir, label string, img *image.RGBA) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("weatheroverlay: screenshot: mkdir %s: %w", dir, err)
	}
	stamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", stamp, fileLabel(label)))
	if err := WritePNG(path, img); err != nil {
		return "", fmt.Errorf("weatheroverlay: screenshot: %w", err)
	}
	return path, nil
}

// WritePNG encodes img to a PNG file at path. Pixels are converted from
// premultiplied to straight alpha first.
func WritePNG(path string, img *image.RGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, straightAlpha(img)); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// straightAlpha converts premultiplied RGBA to straight-alpha NRGBA.
func straightAlpha(src *image.RGBA) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		si := src.PixOffset(b.Min.X, y)
		di := dst.PixOffset(b.Min.X, y)
		for x := 0; x < b.Dx(); x++ {
			r, g, bl, a := src.Pix[si], src.Pix[si+1], src.Pix[si+2], src.Pix[si+3]
			if a > 0 && a < 255 {
				r = uint8(min(int(r)*255/int(a), 255))
				g = uint8(min(int(g)*255/int(a), 255))
				bl = uint8(min(int(bl)*255/int(a), 255))
			}
			dst.Pix[di], dst.Pix[di+1], dst.Pix[di+2], dst.Pix[di+3] = r, g, bl, a
			si += 4
			di += 4
		}
	}
	return dst
}

// fileLabel turns a screenshot label such as a weather state into a file
// name part: lower case, with each run of other characters folded into a
// single '-'. Labels with nothing usable become "frame".
func fileLabel(label string) string {
	var b strings.Builder
	b.Grow(len(label))
	dash := false
	for _, r := range strings.ToLower(label) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
			continue
		}
		dash = true
	}
	if b.Len() == 0 {
		return "frame"
	}
	return b.String()
}
