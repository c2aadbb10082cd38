package imageio

import "fmt"

// FileOpenError is returned when the input path cannot be read.
type FileOpenError struct {
	Path string
	Err  error
}

func (e *FileOpenError) Error() string {
	return fmt.Sprintf("failed to open image file %s: %v", e.Path, e.Err)
}

func (e *FileOpenError) Unwrap() error { return e.Err }

// DecodeError is returned when the input bytes are not a supported image.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode image %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// SaveError is returned when the output file cannot be created or encoded.
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("failed to save image %s: %v", e.Path, e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }
