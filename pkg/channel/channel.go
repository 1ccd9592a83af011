// Package channel provides sequential, single-direction byte channels used by
// the codec package.
//
// A channel is opened either read-only or write-only and keeps that mode for
// its whole lifetime. Every successful read or write advances a monotonic
// position counter. The position exists for diagnostics; channels never seek.
//
// Channels are not safe for concurrent use. The caller that opens a channel
// owns it and must close it, typically with defer or through WithReader and
// WithWriter.
package channel

import "fmt"

// Mode is the direction a channel was opened in
type Mode int

const (
	// ReadOnly channels only support ReadBytes
	ReadOnly Mode = iota
	// WriteOnly channels only support WriteBytes
	WriteOnly
)

// String returns the human-readable name of the mode
func (m Mode) String() string {
	switch m {
	case ReadOnly:
		return "read-only"
	case WriteOnly:
		return "write-only"
	default:
		return fmt.Sprintf("unknown(%d)", int(m))
	}
}

// Reader is the read side of a channel
type Reader interface {
	// ReadBytes returns exactly n bytes in stream order. If fewer than n
	// bytes remain it fails with a *ShortReadError.
	ReadBytes(n int) ([]byte, error)
	// Position returns the number of bytes consumed so far
	Position() int64
}

// Writer is the write side of a channel
type Writer interface {
	// WriteBytes appends p to the stream
	WriteBytes(p []byte) error
	// Position returns the number of bytes written so far
	Position() int64
}

// Channel is an open byte channel in a fixed mode
type Channel interface {
	Reader
	Writer
	Mode() Mode
	Close() error
}
