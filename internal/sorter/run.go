package sorter

import (
	"slices"

	"github.com/vk/pixelsort/internal/pixel"
)

// Stats counts what a pass, or a single sequence, did.
type Stats struct {
	Runs     int // runs of one or more sortable pixels
	Sortable int // pixels that belonged to a run
	Barriers int // pixels that stayed in place
}

// Add accumulates other into s.
func (s *Stats) Add(other Stats) {
	s.Runs += other.Runs
	s.Sortable += other.Sortable
	s.Barriers += other.Barriers
}

// SortRun sorts the run of sortable pixels that begins at start and returns
// the index one past its last pixel. When seq[start] is a barrier the run is
// empty and start itself is returned; advancing past it is up to the caller.
//
// The sort is not stable. Pixels of equal luminosity may swap places, but the
// result depends only on the input.
func SortRun(seq []pixel.Pixel, start int) int {
	end := start
	for end < len(seq) && pixel.Classify(seq[end]).Sortable {
		end++
	}
	if end-start > 1 {
		slices.SortFunc(seq[start:end], pixel.Compare)
	}
	return end
}

// SortSequence sorts every run in seq in place.
func SortSequence(seq []pixel.Pixel) Stats {
	var st Stats
	for i := 0; i < len(seq); {
		next := SortRun(seq, i)
		if next == i {
			st.Barriers++
			i++
			continue
		}
		st.Runs++
		st.Sortable += next - i
		i = next
	}
	return st
}
