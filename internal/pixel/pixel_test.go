package pixel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gray(v uint8) Pixel {
	return Pixel{R: v, G: v, B: v, A: 255}
}

func TestLuminosity(t *testing.T) {
	testCases := []struct {
		name     string
		pixel    Pixel
		expected float64
	}{
		{name: "black", pixel: gray(0), expected: 0},
		{name: "white", pixel: gray(255), expected: 1},
		{name: "pure red", pixel: Pixel{R: 255, A: 255}, expected: 0.2126},
		{name: "pure green", pixel: Pixel{G: 255, A: 255}, expected: 0.7152},
		{name: "pure blue", pixel: Pixel{B: 255, A: 255}, expected: 0.0722},
		{name: "alpha is ignored", pixel: Pixel{R: 255, G: 255, B: 255, A: 0}, expected: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, Luminosity(tc.pixel), 1e-9)
		})
	}
}

func TestClassify(t *testing.T) {
	testCases := []struct {
		name     string
		pixel    Pixel
		sortable bool
	}{
		{name: "dark barrier", pixel: gray(25), sortable: false},
		{name: "bright barrier", pixel: gray(230), sortable: false},
		{name: "mid gray", pixel: gray(128), sortable: true},
		{name: "just above lower bound", pixel: gray(64), sortable: true},
		{name: "just below upper bound", pixel: gray(203), sortable: true},
		{name: "just above upper bound", pixel: gray(210), sortable: false},
		{name: "just below lower bound", pixel: gray(63), sortable: false},
		{name: "pure green is sortable", pixel: Pixel{G: 255, A: 255}, sortable: true},
		{name: "pure red is a barrier", pixel: Pixel{R: 255, A: 255}, sortable: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := Classify(tc.pixel)
			assert.Equal(t, tc.sortable, c.Sortable)
			assert.InDelta(t, Luminosity(tc.pixel), c.Luminosity, 1e-12)
		})
	}
}

func TestClassify_Idempotent(t *testing.T) {
	for v := 0; v < 256; v++ {
		p := Pixel{R: uint8(v), G: uint8(255 - v), B: uint8(v / 2), A: 255}
		require.Equal(t, Classify(p), Classify(p), "value %d", v)
	}
}

func TestCompare(t *testing.T) {
	dark, bright := gray(10), gray(250)
	low, high := gray(100), gray(150)

	assert.Equal(t, -1, Compare(low, high))
	assert.Equal(t, 1, Compare(high, low))
	assert.Equal(t, 0, Compare(low, low))

	// Barriers carry no luminosity and compare equal to each other.
	assert.Equal(t, 0, Compare(dark, bright))
	assert.Equal(t, -1, Compare(bright, low))
	assert.Equal(t, 1, Compare(low, dark))
}
