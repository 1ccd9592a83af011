package codec

import "fmt"

// CountError reports a sequence length that cannot be encoded or was decoded
// as negative
type CountError struct {
	Count    int64
	Position int64
}

func (e *CountError) Error() string {
	return fmt.Sprintf("invalid sequence count %d at offset %d", e.Count, e.Position)
}

// TagMismatchError reports a tag that differs from the one the caller expected
type TagMismatchError struct {
	Want     Tag
	Got      Tag
	Position int64
}

func (e *TagMismatchError) Error() string {
	return fmt.Sprintf("tag mismatch at offset %d: want %d, got %d", e.Position, e.Want, e.Got)
}
