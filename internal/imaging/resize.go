package imaging

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/nfnt/resize"
)

// ResizeFile resizes the image at path to size×size and overwrites the file
// in place, keeping the original encoding (png stays png, jpg/jpeg stays jpeg).
func ResizeFile(path string, size int) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open image: %w", err)
	}

	img, _, err := image.Decode(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("failed to decode image: %w", err)
	}

	resized := resize.Resize(uint(size), uint(size), img, resize.Lanczos3)

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to rewrite image: %w", err)
	}
	defer out.Close()

	if strings.ToLower(filepath.Ext(path)) == ".png" {
		err = png.Encode(out, resized)
	} else {
		err = jpeg.Encode(out, resized, &jpeg.Options{Quality: 90})
	}
	if err != nil {
		return fmt.Errorf("failed to encode resized image: %w", err)
	}

	return nil
}
