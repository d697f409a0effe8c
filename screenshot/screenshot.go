// Package screenshot saves frames as PNG images.
package screenshot

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/draw"
)

// Write encodes frame as a PNG scaled by scale with nearest neighbor
// sampling, keeping the pixels sharp.
func Write(w io.Writer, frame image.Image, scale int) error {
	if scale < 1 {
		scale = 1
	}
	b := frame.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), frame, b, draw.Src, nil)
	return png.Encode(w, dst)
}

// Save writes frame to path.
func Save(path string, frame image.Image, scale int) (rerr error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = fmt.Errorf("screenshot: %w", err)
		}
	}()
	if err := Write(f, frame, scale); err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}
	return nil
}
