package channel

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrClosed is returned by any operation on a closed channel
	ErrClosed = errors.New("channel closed")
	// ErrWrongMode is returned when reading a write-only channel or writing a read-only one
	ErrWrongMode = errors.New("operation not permitted by channel mode")
)

// OpenError reports a path that could not be opened in the requested mode
type OpenError struct {
	Path string
	Mode Mode
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("failed to open %s %s: %v", e.Path, e.Mode, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

// ShortReadError reports a read that ran out of bytes before it was satisfied
type ShortReadError struct {
	Wanted   int   // Bytes requested
	Got      int   // Bytes available before the stream ended
	Position int64 // Position at which the read started
}

func (e *ShortReadError) Error() string {
	return fmt.Sprintf("short read at offset %d: wanted %d bytes, got %d", e.Position, e.Wanted, e.Got)
}

// Is makes a short read match io.ErrUnexpectedEOF
func (e *ShortReadError) Is(target error) bool {
	return target == io.ErrUnexpectedEOF
}

// WriteError reports a write rejected by the underlying stream
type WriteError struct {
	Position int64
	Err      error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write failed at offset %d: %v", e.Position, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
