package imageio

import (
	"context"
	"fmt"
	"image/png"
	"os"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/vk/pixelsort/internal/ctxlog"
	"github.com/vk/pixelsort/internal/grid"
)

// SaveOptions tweak encoding.
type SaveOptions struct {
	Compression png.CompressionLevel
}

// ParseCompression maps a level name onto a PNG compression level. An empty
// string selects the encoder default.
func ParseCompression(s string) (png.CompressionLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default":
		return png.DefaultCompression, nil
	case "none":
		return png.NoCompression, nil
	case "fast":
		return png.BestSpeed, nil
	case "best":
		return png.BestCompression, nil
	default:
		return png.DefaultCompression, fmt.Errorf("invalid compression %q: must be 'default', 'none', 'fast' or 'best'", s)
	}
}

// Save writes g to path as PNG. The extension of path is not consulted: the
// bytes are PNG even when the name says otherwise.
func Save(ctx context.Context, path string, g *grid.Grid, opts SaveOptions) (err error) {
	logger := ctxlog.FromContext(ctx)

	f, err := os.Create(path)
	if err != nil {
		return &SaveError{Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &SaveError{Path: path, Err: cerr}
		}
	}()

	if err := imaging.Encode(f, g.Image(), imaging.PNG, imaging.PNGCompressionLevel(opts.Compression)); err != nil {
		return &SaveError{Path: path, Err: err}
	}
	logger.Debug("Image encoded.", "path", path, "width", g.Width, "height", g.Height)
	return nil
}
