package channel

import (
	"bufio"
	"os"
	"path/filepath"
)

// DefaultBufferSize is the buffer size used by Open
const DefaultBufferSize = 4096

// Options configures a file channel
type Options struct {
	BufferSize int // Read/write buffer size (0 = DefaultBufferSize)
}

// File is a channel backed by a file on disk
type File struct {
	stream
	file *os.File
	path string
}

// Open opens path in the given mode with default options.
//
// ReadOnly requires the file to exist. WriteOnly creates the file, and any
// missing parent directories, truncating existing content.
func Open(path string, mode Mode) (*File, error) {
	return OpenWithOptions(path, mode, Options{})
}

// OpenWithOptions opens path in the given mode
func OpenWithOptions(path string, mode Mode, opts Options) (*File, error) {
	size := opts.BufferSize
	if size <= 0 {
		size = DefaultBufferSize
	}

	switch mode {
	case ReadOnly:
		file, err := os.Open(path)
		if err != nil {
			return nil, &OpenError{Path: path, Mode: mode, Err: err}
		}
		f := &File{file: file, path: path}
		f.stream = stream{
			r:      bufio.NewReaderSize(file, size),
			closer: file.Close,
			mode:   ReadOnly,
		}
		return f, nil

	case WriteOnly:
		if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
			return nil, &OpenError{Path: path, Mode: mode, Err: err}
		}
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return nil, &OpenError{Path: path, Mode: mode, Err: err}
		}
		writer := bufio.NewWriterSize(file, size)
		f := &File{file: file, path: path}
		f.stream = stream{
			w:      writer,
			flush:  writer.Flush,
			closer: file.Close,
			mode:   WriteOnly,
		}
		return f, nil

	default:
		return nil, &OpenError{Path: path, Mode: mode, Err: ErrWrongMode}
	}
}

// Path returns the file path
func (f *File) Path() string {
	return f.path
}

// Sync flushes buffered writes and fsyncs the file
func (f *File) Sync() error {
	if err := f.Flush(); err != nil {
		return err
	}
	return f.file.Sync()
}
