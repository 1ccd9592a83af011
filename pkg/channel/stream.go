package channel

import (
	"errors"
	"fmt"
	"io"
)

// stream holds the state shared by every channel implementation
type stream struct {
	r      io.Reader
	w      io.Writer
	flush  func() error // nil when writes are unbuffered
	closer func() error // nil when there is nothing to release
	mode   Mode
	offset int64
	closed bool
}

// ReadBytes reads exactly n bytes
func (s *stream) ReadBytes(n int) ([]byte, error) {
	if s.closed {
		return nil, ErrClosed
	}
	if s.mode != ReadOnly {
		return nil, ErrWrongMode
	}
	if n < 0 {
		return nil, fmt.Errorf("invalid read length %d", n)
	}

	start := s.offset
	buf := make([]byte, n)
	got, err := io.ReadFull(s.r, buf)
	s.offset += int64(got)
	if err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, &ShortReadError{Wanted: n, Got: got, Position: start}
		}
		return nil, fmt.Errorf("read failed at offset %d: %w", start, err)
	}

	return buf, nil
}

// WriteBytes appends p to the stream
func (s *stream) WriteBytes(p []byte) error {
	if s.closed {
		return ErrClosed
	}
	if s.mode != WriteOnly {
		return ErrWrongMode
	}

	n, err := s.w.Write(p)
	s.offset += int64(n)
	if err != nil {
		return &WriteError{Position: s.offset, Err: err}
	}
	if n != len(p) {
		return &WriteError{Position: s.offset, Err: io.ErrShortWrite}
	}

	return nil
}

// Position returns the number of bytes read or written so far
func (s *stream) Position() int64 {
	return s.offset
}

// Mode returns the direction the channel was opened in
func (s *stream) Mode() Mode {
	return s.mode
}

// Flush pushes buffered writes to the underlying stream
func (s *stream) Flush() error {
	if s.closed {
		return ErrClosed
	}
	if s.flush == nil {
		return nil
	}
	if err := s.flush(); err != nil {
		return &WriteError{Position: s.offset, Err: err}
	}
	return nil
}

// Close flushes pending writes and releases the underlying resource
func (s *stream) Close() error {
	if s.closed {
		return ErrClosed
	}
	s.closed = true

	var flushErr, closeErr error
	if s.flush != nil {
		if err := s.flush(); err != nil {
			flushErr = &WriteError{Position: s.offset, Err: err}
		}
	}
	if s.closer != nil {
		closeErr = s.closer()
	}

	return errors.Join(flushErr, closeErr)
}
