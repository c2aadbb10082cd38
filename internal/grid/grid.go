// Package grid provides a fixed-format, row-major RGBA pixel grid. Every
// decoded image is normalised into a Grid at the module boundary so the
// sorter never deals with format-specific image types.
package grid

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/vk/pixelsort/internal/pixel"
)

// bytesPerPixel is the size of one NRGBA pixel in Pix.
const bytesPerPixel = 4

// Blank is the value every cell of a freshly allocated grid holds.
var Blank = pixel.Pixel{R: 0, G: 0, B: 0, A: 255}

// Grid is a Width x Height array of pixels stored row-major in Pix, four
// bytes (R, G, B, A) per pixel, with its origin at (0, 0).
type Grid struct {
	Width  int
	Height int
	Pix    []uint8
}

// New allocates a grid of the given size filled with Blank.
func New(width, height int) *Grid {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("grid: negative dimensions %dx%d", width, height))
	}
	g := &Grid{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*bytesPerPixel),
	}
	for i := 0; i < len(g.Pix); i += bytesPerPixel {
		g.Pix[i+3] = Blank.A
	}
	return g
}

// FromImage converts any image into a grid. The source image is not retained.
func FromImage(img image.Image) *Grid {
	nrgba := imaging.Clone(img)
	b := nrgba.Bounds()
	return &Grid{
		Width:  b.Dx(),
		Height: b.Dy(),
		Pix:    nrgba.Pix,
	}
}

// Image exposes the grid as an *image.NRGBA sharing the same pixel memory.
func (g *Grid) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    g.Pix,
		Stride: g.Width * bytesPerPixel,
		Rect:   image.Rect(0, 0, g.Width, g.Height),
	}
}

func (g *Grid) offset(x, y int) int {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		panic(fmt.Sprintf("grid: (%d, %d) out of bounds %dx%d", x, y, g.Width, g.Height))
	}
	return (y*g.Width + x) * bytesPerPixel
}

// At returns the pixel at (x, y).
func (g *Grid) At(x, y int) pixel.Pixel {
	i := g.offset(x, y)
	s := g.Pix[i : i+bytesPerPixel : i+bytesPerPixel]
	return pixel.Pixel{R: s[0], G: s[1], B: s[2], A: s[3]}
}

// Set stores p at (x, y).
func (g *Grid) Set(x, y int, p pixel.Pixel) {
	i := g.offset(x, y)
	s := g.Pix[i : i+bytesPerPixel : i+bytesPerPixel]
	s[0], s[1], s[2], s[3] = p.R, p.G, p.B, p.A
}

// Column copies column x, top to bottom, into a new slice.
func (g *Grid) Column(x int) []pixel.Pixel {
	seq := make([]pixel.Pixel, g.Height)
	for y := range seq {
		seq[y] = g.At(x, y)
	}
	return seq
}

// SetColumn writes seq into column x. len(seq) must equal Height.
func (g *Grid) SetColumn(x int, seq []pixel.Pixel) {
	if len(seq) != g.Height {
		panic(fmt.Sprintf("grid: column of %d pixels, height is %d", len(seq), g.Height))
	}
	for y, p := range seq {
		g.Set(x, y, p)
	}
}

// Row copies row y, left to right, into a new slice.
func (g *Grid) Row(y int) []pixel.Pixel {
	seq := make([]pixel.Pixel, g.Width)
	for x := range seq {
		seq[x] = g.At(x, y)
	}
	return seq
}

// SetRow writes seq into row y. len(seq) must equal Width.
func (g *Grid) SetRow(y int, seq []pixel.Pixel) {
	if len(seq) != g.Width {
		panic(fmt.Sprintf("grid: row of %d pixels, width is %d", len(seq), g.Width))
	}
	for x, p := range seq {
		g.Set(x, y, p)
	}
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	pix := make([]uint8, len(g.Pix))
	copy(pix, g.Pix)
	return &Grid{Width: g.Width, Height: g.Height, Pix: pix}
}
