package codec

import (
	"fmt"

	"github.com/ssargent/filer/pkg/channel"
)

// RecordCodec persists a single value behind a leading tag.
// Format: [Tag(4)][Payload]
type RecordCodec[T any] struct {
	field FieldCodec[T]
}

// NewRecordCodec wraps field as a tagged record codec
func NewRecordCodec[T any](field FieldCodec[T]) *RecordCodec[T] {
	return &RecordCodec[T]{field: field}
}

// Persist writes tag followed by v
func (c *RecordCodec[T]) Persist(tag Tag, v T, w channel.Writer) error {
	if err := WriteTag(w, tag); err != nil {
		return fmt.Errorf("failed to write record tag %d: %w", tag, err)
	}
	if err := c.field.Persist(w, v); err != nil {
		return fmt.Errorf("failed to write record %d: %w", tag, err)
	}
	return nil
}

// Load reads the payload only. The tag written by Persist is not consumed;
// callers that need it read it first with ReadTag or ExpectTag.
func (c *RecordCodec[T]) Load(r channel.Reader) (T, error) {
	v, err := c.field.Load(r)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("failed to load record: %w", err)
	}
	return v, nil
}

// LoadTagged reads the tag and then the payload
func (c *RecordCodec[T]) LoadTagged(r channel.Reader) (Tag, T, error) {
	tag, err := ReadTag(r)
	if err != nil {
		var zero T
		return 0, zero, fmt.Errorf("failed to read record tag: %w", err)
	}
	v, err := c.Load(r)
	return tag, v, err
}

// Field returns a codec that persists values as records under tag and
// consumes the tag again on load without checking it
func (c *RecordCodec[T]) Field(tag Tag) FieldCodec[T] {
	return NewFieldCodec[T](
		func(w channel.Writer, v T) error {
			return c.Persist(tag, v, w)
		},
		func(r channel.Reader) (T, error) {
			_, v, err := c.LoadTagged(r)
			return v, err
		},
	)
}

// CheckedField is like Field but fails with a *TagMismatchError when the tag
// read back is not tag
func (c *RecordCodec[T]) CheckedField(tag Tag) FieldCodec[T] {
	return NewFieldCodec[T](
		func(w channel.Writer, v T) error {
			return c.Persist(tag, v, w)
		},
		func(r channel.Reader) (T, error) {
			if err := ExpectTag(r, tag); err != nil {
				var zero T
				return zero, err
			}
			return c.Load(r)
		},
	)
}
