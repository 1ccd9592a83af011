package channel

import "bytes"

// BufferWriter is a write-only channel that collects bytes in memory
type BufferWriter struct {
	stream
	buf *bytes.Buffer
}

// NewBufferWriter creates an empty in-memory write channel
func NewBufferWriter() *BufferWriter {
	buf := &bytes.Buffer{}
	return &BufferWriter{
		stream: stream{w: buf, mode: WriteOnly},
		buf:    buf,
	}
}

// Bytes returns the bytes written so far. The slice aliases the internal
// buffer and is only valid until the next write.
func (b *BufferWriter) Bytes() []byte {
	return b.buf.Bytes()
}

// BufferReader is a read-only channel over an in-memory byte slice
type BufferReader struct {
	stream
}

// NewBufferReader creates a read channel over data. The slice is not copied.
func NewBufferReader(data []byte) *BufferReader {
	return &BufferReader{
		stream: stream{r: bytes.NewReader(data), mode: ReadOnly},
	}
}
