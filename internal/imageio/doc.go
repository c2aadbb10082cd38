// Package imageio loads images from disk into grids and writes grids back out.
// It is the only package that knows about file formats: everything past Load
// works on a grid.Grid, and Save always produces PNG bytes.
package imageio
