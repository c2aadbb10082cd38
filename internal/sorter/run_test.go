package sorter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/pixelsort/internal/pixel"
)

// gray builds an opaque pixel whose luminosity is v/255.
func gray(v uint8) pixel.Pixel {
	return pixel.Pixel{R: v, G: v, B: v, A: 255}
}

func grays(vs ...uint8) []pixel.Pixel {
	seq := make([]pixel.Pixel, len(vs))
	for i, v := range vs {
		seq[i] = gray(v)
	}
	return seq
}

func TestSortRun(t *testing.T) {
	testCases := []struct {
		name        string
		input       []pixel.Pixel
		start       int
		expectedEnd int
		expected    []pixel.Pixel
	}{
		{
			name:        "barrier at start yields empty run",
			input:       grays(230, 128, 26),
			start:       0,
			expectedEnd: 0,
			expected:    grays(230, 128, 26),
		},
		{
			name:        "run of one is unchanged",
			input:       grays(230, 128, 26),
			start:       1,
			expectedEnd: 2,
			expected:    grays(230, 128, 26),
		},
		{
			name:        "run stops at barrier",
			input:       grays(128, 153, 102, 230, 77),
			start:       0,
			expectedEnd: 3,
			expected:    grays(102, 128, 153, 230, 77),
		},
		{
			name:        "run reaches end of sequence",
			input:       grays(26, 180, 90, 120),
			start:       1,
			expectedEnd: 4,
			expected:    grays(26, 90, 120, 180),
		},
		{
			name:        "start at length",
			input:       grays(128),
			start:       1,
			expectedEnd: 1,
			expected:    grays(128),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			seq := append([]pixel.Pixel(nil), tc.input...)
			end := SortRun(seq, tc.start)
			assert.Equal(t, tc.expectedEnd, end)
			assert.Equal(t, tc.expected, seq)
		})
	}
}

func TestSortRun_KeepsDistinctPixels(t *testing.T) {
	// Same luminosity ordering keys but different colours: every pixel must
	// survive the sort exactly once.
	a := pixel.Pixel{R: 200, G: 100, B: 0, A: 255}
	b := pixel.Pixel{R: 0, G: 120, B: 200, A: 10}
	c := pixel.Pixel{R: 90, G: 90, B: 90, A: 255}
	seq := []pixel.Pixel{a, b, c}

	end := SortRun(seq, 0)
	require.Equal(t, 3, end)
	assert.ElementsMatch(t, []pixel.Pixel{a, b, c}, seq)
	assertNonDecreasing(t, seq)
}

func TestSortSequence(t *testing.T) {
	testCases := []struct {
		name     string
		input    []pixel.Pixel
		expected []pixel.Pixel
		stats    Stats
	}{
		{
			name:     "barrier, single, barrier",
			input:    grays(230, 128, 26),
			expected: grays(230, 128, 26),
			stats:    Stats{Runs: 1, Sortable: 1, Barriers: 2},
		},
		{
			name:     "two runs split by barrier",
			input:    grays(128, 153, 102, 230, 77),
			expected: grays(102, 128, 153, 230, 77),
			stats:    Stats{Runs: 2, Sortable: 4, Barriers: 1},
		},
		{
			name:     "all barriers",
			input:    grays(210, 255, 240, 220),
			expected: grays(210, 255, 240, 220),
			stats:    Stats{Barriers: 4},
		},
		{
			name:     "all sortable",
			input:    grays(200, 70, 150, 100, 180, 65),
			expected: grays(65, 70, 100, 150, 180, 200),
			stats:    Stats{Runs: 1, Sortable: 6},
		},
		{
			name:     "adjacent barriers between runs",
			input:    grays(150, 100, 0, 255, 190, 80),
			expected: grays(100, 150, 0, 255, 80, 190),
			stats:    Stats{Runs: 2, Sortable: 4, Barriers: 2},
		},
		{
			name:     "empty",
			input:    []pixel.Pixel{},
			expected: []pixel.Pixel{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			seq := append([]pixel.Pixel{}, tc.input...)
			st := SortSequence(seq)
			assert.Equal(t, tc.expected, seq)
			assert.Equal(t, tc.stats, st)
		})
	}
}

func assertNonDecreasing(t *testing.T, run []pixel.Pixel) {
	t.Helper()
	for i := 1; i < len(run); i++ {
		assert.LessOrEqual(t, pixel.Luminosity(run[i-1]), pixel.Luminosity(run[i]), "position %d", i)
	}
}
