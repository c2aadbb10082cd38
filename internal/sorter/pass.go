package sorter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/vk/pixelsort/internal/ctxlog"
	"github.com/vk/pixelsort/internal/grid"
)

// Mode selects how the column and row passes are combined.
type Mode string

const (
	// ModeIndependent runs the column pass over a freshly allocated blank
	// grid and then overwrites every row with the row-sorted source image.
	ModeIndependent Mode = "independent"
	// ModeChained sorts the source by columns and then sorts the result by rows.
	ModeChained Mode = "chained"
)

// ParseMode converts a user supplied string into a Mode. An empty string
// yields ModeIndependent.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeIndependent:
		return ModeIndependent, nil
	case ModeChained:
		return ModeChained, nil
	default:
		return "", fmt.Errorf("invalid mode %q: must be %q or %q", s, ModeIndependent, ModeChained)
	}
}

// ColumnPass returns a copy of in with every column run-sorted top to bottom.
// in is not modified.
func ColumnPass(ctx context.Context, in *grid.Grid) (*grid.Grid, Stats, error) {
	out := in.Clone()
	st, err := sortColumns(ctx, out)
	if err != nil {
		return nil, st, err
	}
	return out, st, nil
}

// RowPass returns a copy of in with every row run-sorted left to right.
// in is not modified.
func RowPass(ctx context.Context, in *grid.Grid) (*grid.Grid, Stats, error) {
	out := in.Clone()
	st, err := sortRowsInto(ctx, in, out)
	if err != nil {
		return nil, st, err
	}
	return out, st, nil
}

// sortColumns run-sorts every column of g in place. Each column is copied out
// before it is sorted, so no column reads another's result.
func sortColumns(ctx context.Context, g *grid.Grid) (Stats, error) {
	var st Stats
	for x := 0; x < g.Width; x++ {
		if err := ctx.Err(); err != nil {
			return st, err
		}
		seq := g.Column(x)
		st.Add(SortSequence(seq))
		g.SetColumn(x, seq)
	}
	return st, nil
}

// sortRowsInto run-sorts every row of src and writes it over the same row of
// dst. src and dst must have the same size and may be the same grid.
func sortRowsInto(ctx context.Context, src, dst *grid.Grid) (Stats, error) {
	if src.Width != dst.Width || src.Height != dst.Height {
		return Stats{}, fmt.Errorf("grid size mismatch: %dx%d vs %dx%d", src.Width, src.Height, dst.Width, dst.Height)
	}
	var st Stats
	for y := 0; y < src.Height; y++ {
		if err := ctx.Err(); err != nil {
			return st, err
		}
		seq := src.Row(y)
		st.Add(SortSequence(seq))
		dst.SetRow(y, seq)
	}
	return st, nil
}

// PixelSort produces a new grid from src using the given mode. src is never
// modified, and apart from src only the output grid is allocated. The only
// error it returns is the context's.
func PixelSort(ctx context.Context, src *grid.Grid, mode Mode) (*grid.Grid, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Pixel sort started.", "width", src.Width, "height", src.Height, "mode", mode)

	var out, rowSource *grid.Grid
	switch mode {
	case ModeIndependent:
		out = grid.New(src.Width, src.Height)
		rowSource = src
	case ModeChained:
		out = src.Clone()
		rowSource = out
	default:
		return nil, fmt.Errorf("unsupported mode %q", mode)
	}

	start := time.Now()
	st, err := sortColumns(ctx, out)
	if err != nil {
		return nil, fmt.Errorf("column pass: %w", err)
	}
	logger.Debug("Column pass finished.", "runs", st.Runs, "sortable", st.Sortable, "barriers", st.Barriers, "duration", time.Since(start))

	// Every row is rewritten, so in independent mode nothing the column pass
	// left behind survives.
	start = time.Now()
	st, err = sortRowsInto(ctx, rowSource, out)
	if err != nil {
		return nil, fmt.Errorf("row pass: %w", err)
	}
	logger.Debug("Row pass finished.", "runs", st.Runs, "sortable", st.Sortable, "barriers", st.Barriers, "duration", time.Since(start))

	return out, nil
}
