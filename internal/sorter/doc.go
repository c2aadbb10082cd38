// Package sorter implements the run-based pixel sort. A column or row is cut
// into runs of sortable pixels separated by barrier pixels; every run is
// reordered by ascending luminosity while barriers stay where they are.
//
// The column and row passes are pure functions over grids. PixelSort wires
// them together according to a Mode.
package sorter
