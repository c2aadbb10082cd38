package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/pixelsort/internal/app"
)

// Version is reported by -version. It is overridden at build time with
// -ldflags "-X github.com/vk/pixelsort/internal/cli.Version=...".
var Version = "dev"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("pixelsort", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
pixelsort - sorts runs of mid-luminosity pixels along every column and row.

Usage:
  pixelsort [options] IMAGE_PATH

Arguments:
  IMAGE_PATH
    Image to sort. The result is written next to it as <name>_sorted.<ext>.

Options:
`)
		flagSet.PrintDefaults()
	}

	versionFlag := flagSet.Bool("version", false, "Print the version and exit.")
	configFlag := flagSet.String("config", "", "Path to an optional HCL profile.")
	logFormatFlag := flagSet.String("log-format", "", "Log output format. Options: 'text' or 'json'. (default \"text\")")
	logLevelFlag := flagSet.String("log-level", "", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'. (default \"info\")")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if *versionFlag {
		fmt.Fprintf(output, "pixelsort %s\n", Version)
		return nil, true, nil
	}

	if flagSet.NArg() == 0 {
		slog.Debug("No image path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, false, &ExitError{Code: 2, Message: "missing required argument: IMAGE_PATH"}
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("expected exactly one image path, got %d", flagSet.NArg())}
	}
	path := flagSet.Arg(0)
	slog.Debug("Image path determined.", "path", path)

	logFormat := strings.ToLower(*logFormatFlag)
	switch logFormat {
	case "", "text", "json":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "", "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		InputPath:   path,
		ProfilePath: *configFlag,
		LogFormat:   logFormat,
		LogLevel:    logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
