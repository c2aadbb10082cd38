// Package pixel defines the pixel representation used by the sorter and the
// luminosity-based classification that decides which pixels may move.
//
// A pixel whose luminosity lies strictly between LowerThreshold and
// UpperThreshold is sortable. Every other pixel is a barrier: it splits a
// column or row into independent runs and never changes position.
package pixel
