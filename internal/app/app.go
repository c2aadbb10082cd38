package app

import (
	"context"
	"image/png"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/pixelsort/internal/imageio"
	"github.com/vk/pixelsort/internal/profile"
	"github.com/vk/pixelsort/internal/sorter"
)

const (
	defaultLogLevel  = "info"
	defaultLogFormat = "text"
)

// settings is the fully resolved configuration: log flags over profile over
// defaults, everything else from the profile or defaults.
type settings struct {
	inputPath   string
	logLevel    string
	logFormat   string
	mode        sorter.Mode
	autoOrient  bool
	compression png.CompressionLevel
}

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	profile  *profile.Profile
	settings settings
}

// NewApp is the constructor for the main application. User-facing output goes
// to outW and logs to logW. The profile, if configured, is loaded here so a
// broken profile fails before any image is touched.
func NewApp(ctx context.Context, outW, logW io.Writer, cfg *Config) (*App, error) {
	var prof *profile.Profile
	if cfg.ProfilePath != "" {
		var err error
		prof, err = profile.Load(ctx, cfg.ProfilePath)
		if err != nil {
			return nil, err
		}
	}

	s, err := resolve(cfg, prof)
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(s.logLevel, s.logFormat, logW)
	if err != nil {
		return nil, err
	}
	logger.Debug("Logger configured successfully.", "mode", s.mode, "auto_orient", s.autoOrient)

	return &App{
		outW:     outW,
		logger:   logger,
		profile:  prof,
		settings: s,
	}, nil
}

func resolve(cfg *Config, prof *profile.Profile) (settings, error) {
	if prof == nil {
		prof = &profile.Profile{}
	}

	s := settings{
		inputPath: cfg.InputPath,
		logLevel:  firstNonEmpty(cfg.LogLevel, prof.LogLevel, defaultLogLevel),
		logFormat: firstNonEmpty(cfg.LogFormat, prof.LogFormat, defaultLogFormat),
	}

	mode, err := sorter.ParseMode(prof.Mode)
	if err != nil {
		return settings{}, err
	}
	s.mode = mode

	s.compression, err = imageio.ParseCompression(prof.Compression)
	if err != nil {
		return settings{}, err
	}

	if prof.AutoOrient != nil {
		s.autoOrient = *prof.AutoOrient
	}
	return s, nil
}

// firstNonEmpty returns the first value that is not blank, lowercased so flag
// and profile spellings compare alike.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.ToLower(strings.TrimSpace(v)); v != "" {
			return v
		}
	}
	return ""
}
