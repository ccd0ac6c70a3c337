package cli

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	// Registered decoders for image.Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/gogpu/mosaic"
	"github.com/gogpu/mosaic/internal/parallel"
)

// decodeFile decodes the image at path and returns it with its format name.
func decodeFile(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("decode %s: %w", path, err)
	}
	return img, format, nil
}

// loadImages decodes paths concurrently and returns them in order. All
// images get the same channel count: grayscale when every file is
// grayscale, color otherwise.
func loadImages(ctx context.Context, paths []string) ([]*mosaic.Image, error) {
	pool := parallel.NewWorkerPool(min(len(paths), runtime.GOMAXPROCS(0)))
	defer pool.Close()

	decoded := make([]image.Image, len(paths))
	err := pool.Run(ctx, len(paths), func(i int) error {
		img, _, err := decodeFile(paths[i])
		decoded[i] = img
		return err
	})
	if err != nil {
		return nil, err
	}

	channels := mosaic.Gray
	for _, img := range decoded {
		if mosaic.ChannelsOf(img) == mosaic.Color {
			channels = mosaic.Color
			break
		}
	}

	images := make([]*mosaic.Image, len(decoded))
	for i, img := range decoded {
		m, err := mosaic.ImageFromStd(img, channels)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", paths[i], err)
		}
		images[i] = m
	}
	return images, nil
}

// captionFor returns the file name of path without its extension.
func captionFor(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
