package imageio

import (
	"bytes"
	"context"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/vk/pixelsort/internal/ctxlog"
	"github.com/vk/pixelsort/internal/grid"

	// imaging registers jpeg, png, gif, bmp and tiff; webp is decode-only
	// and has to be pulled in here.
	_ "golang.org/x/image/webp"
)

// Image is a decoded input file together with the path parts used to name
// the output.
type Image struct {
	Path   string
	Dir    string
	Stem   string // base name up to its first '.'
	Ext    string // text after the last '.', without the dot
	Format string // format name reported by the decoder, e.g. "jpeg"
	Grid   *grid.Grid
}

// LoadOptions tweak decoding.
type LoadOptions struct {
	// AutoOrient applies the EXIF orientation tag, if any, before sorting.
	AutoOrient bool
}

// Load reads and decodes the image at path. The format is detected from the
// file contents, not its extension.
func Load(ctx context.Context, path string, opts LoadOptions) (*Image, error) {
	logger := ctxlog.FromContext(ctx)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileOpenError{Path: path, Err: err}
	}
	logger.Debug("Input file read.", "path", path, "bytes", len(data))

	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(opts.AutoOrient))
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}

	g := grid.FromImage(img)
	logger.Debug("Image decoded.", "format", format, "width", g.Width, "height", g.Height)

	stem, ext := SplitName(path)
	return &Image{
		Path:   path,
		Dir:    filepath.Dir(path),
		Stem:   stem,
		Ext:    ext,
		Format: format,
		Grid:   g,
	}, nil
}

// SplitName splits the final element of path into its stem (up to the first
// '.') and extension (after the last '.'). "photo.tar.png" gives "photo" and
// "png"; a name without a dot has an empty extension.
func SplitName(path string) (stem, ext string) {
	base := filepath.Base(path)
	stem, _, _ = strings.Cut(base, ".")
	ext = strings.TrimPrefix(filepath.Ext(base), ".")
	return stem, ext
}

// DefaultOutputName is the file name written next to the input:
// "<stem>_sorted.<ext>", or "<stem>_sorted" when the input has no extension.
func DefaultOutputName(img *Image) string {
	name := img.Stem + "_sorted"
	if img.Ext != "" {
		name += "." + img.Ext
	}
	return name
}

// OutputPath resolves name against the directory of the input. An absolute
// name is used as is.
func OutputPath(img *Image, name string) string {
	if name == "" {
		name = DefaultOutputName(img)
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(img.Dir, name)
}
