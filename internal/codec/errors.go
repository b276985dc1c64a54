package codec

import (
	"errors"
	"fmt"
)

// Sentinel causes carried by FormatError. Match them with errors.Is.
var (
	ErrMagic       = errors.New("magic bytes mismatch")
	ErrUnsupported = errors.New("unsupported variant")
	ErrTruncated   = errors.New("truncated data")
	ErrDimensions  = errors.New("non-positive dimensions")
	ErrMalformed   = errors.New("malformed header")
	ErrPixelCount  = errors.New("pixel data does not match dimensions")
	ErrExtension   = errors.New("unsupported extension")
)

// FormatError reports a file whose contents cannot be decoded. It is fatal to
// the load attempt only.
type FormatError struct {
	// Format is "bmp", "ppm", or the rejected extension for ErrExtension.
	Format string
	// Err is one of the sentinel errors above.
	Err error
	// Detail is a human-readable explanation; may be empty.
	Detail string
}

func (e *FormatError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %v", e.Format, e.Err)
	}
	return fmt.Sprintf("%s: %v: %s", e.Format, e.Err, e.Detail)
}

func (e *FormatError) Unwrap() error { return e.Err }

func formatErr(format string, cause error, detail string, args ...any) *FormatError {
	return &FormatError{Format: format, Err: cause, Detail: fmt.Sprintf(detail, args...)}
}

// IOError reports a file that could not be read at all.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to read image %q: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
