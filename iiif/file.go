package iiif

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"

	// Facsimile scans come in a handful of raster formats; TIFF and BMP need
	// the extended decoders.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// FileProvider resolves dimensions by decoding the header of an image file
// on disk. The reference is interpreted as a path, joined with Root when one
// is set.
type FileProvider struct {
	Root string
}

// Resolve reads the image dimensions from the referenced file.
func (p FileProvider) Resolve(_ context.Context, ref string) (int, int, error) {
	path := ref
	if p.Root != "" {
		path = filepath.Join(p.Root, ref)
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("iiif: opening facsimile %s: %w", path, err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("iiif: decoding facsimile %s: %w", path, err)
	}
	return cfg.Width, cfg.Height, nil
}
