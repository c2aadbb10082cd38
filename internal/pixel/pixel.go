package pixel

import (
	"cmp"
	"image/color"
	"math"
)

// Pixel is a non-premultiplied 8-bit RGBA value. Alpha is carried through
// untouched and takes no part in classification.
type Pixel = color.NRGBA

const (
	// LowerThreshold is the exclusive lower luminosity bound of a sortable pixel.
	LowerThreshold = 0.25
	// UpperThreshold is the exclusive upper luminosity bound of a sortable pixel.
	UpperThreshold = 0.8
)

// Rec. 709 luma coefficients.
const (
	redWeight   = 0.2126
	greenWeight = 0.7152
	blueWeight  = 0.0722
)

// Class is the result of classifying a single pixel.
type Class struct {
	Luminosity float64
	Sortable   bool
}

// Luminosity returns the relative luminance of p in [0, 1].
func Luminosity(p Pixel) float64 {
	r := float64(p.R) / 255.0
	g := float64(p.G) / 255.0
	b := float64(p.B) / 255.0
	return redWeight*r + greenWeight*g + blueWeight*b
}

// Classify reports whether p is sortable along with its luminosity.
func Classify(p Pixel) Class {
	l := Luminosity(p)
	return Class{Luminosity: l, Sortable: l > LowerThreshold && l < UpperThreshold}
}

// Compare orders two pixels by classified luminosity. A barrier has no
// luminosity and sorts before any sortable pixel; two barriers, or values
// that cannot be ordered, compare as equal.
func Compare(a, b Pixel) int {
	ca, cb := Classify(a), Classify(b)
	switch {
	case !ca.Sortable && !cb.Sortable:
		return 0
	case !ca.Sortable:
		return -1
	case !cb.Sortable:
		return 1
	}
	if math.IsNaN(ca.Luminosity) || math.IsNaN(cb.Luminosity) {
		return 0
	}
	return cmp.Compare(ca.Luminosity, cb.Luminosity)
}
