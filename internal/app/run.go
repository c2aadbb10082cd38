package app

import (
	"context"
	"fmt"

	"github.com/vk/pixelsort/internal/ctxlog"
	"github.com/vk/pixelsort/internal/imageio"
	"github.com/vk/pixelsort/internal/profile"
	"github.com/vk/pixelsort/internal/sorter"
)

// Run loads the input image, sorts it and writes the result next to it. The
// output file is only created once the sorted grid is complete.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.With(ctxlog.WithLogger(ctx, a.logger), "input", a.settings.inputPath)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Run method started.")

	img, err := imageio.Load(ctx, a.settings.inputPath, imageio.LoadOptions{AutoOrient: a.settings.autoOrient})
	if err != nil {
		return err
	}

	sorted, err := sorter.PixelSort(ctx, img.Grid, a.settings.mode)
	if err != nil {
		return fmt.Errorf("pixel sort failed: %w", err)
	}

	name, err := a.profile.OutputName(profile.Input{
		Dir:    img.Dir,
		Stem:   img.Stem,
		Ext:    img.Ext,
		Format: img.Format,
	})
	if err != nil {
		return err
	}
	savePath := imageio.OutputPath(img, name)

	fmt.Fprintf(a.outW, "Saving image at: %s\n", savePath)
	if err := imageio.Save(ctx, savePath, sorted, imageio.SaveOptions{Compression: a.settings.compression}); err != nil {
		return err
	}

	logger.Info("Image sorted.", "output", savePath, "width", sorted.Width, "height", sorted.Height, "mode", a.settings.mode)
	return nil
}
