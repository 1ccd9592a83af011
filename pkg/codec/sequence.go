package codec

import (
	"fmt"
	"math"

	"github.com/ssargent/filer/pkg/channel"
)

// maxPrealloc bounds the capacity reserved from an untrusted count
const maxPrealloc = 1024

// SequenceCodec persists an ordered, homogeneous list behind a tag and count.
// Format: [Tag(4)][Count(4)][Payload × Count]
type SequenceCodec[T any] struct {
	field FieldCodec[T]
}

// NewSequenceCodec wraps an element codec as a tagged sequence codec
func NewSequenceCodec[T any](field FieldCodec[T]) *SequenceCodec[T] {
	return &SequenceCodec[T]{field: field}
}

// Persist writes tag, the number of items and every item in order
func (c *SequenceCodec[T]) Persist(tag Tag, items []T, w channel.Writer) error {
	if int64(len(items)) > math.MaxInt32 {
		return &CountError{Count: int64(len(items)), Position: w.Position()}
	}

	if err := WriteTag(w, tag); err != nil {
		return fmt.Errorf("failed to write sequence tag %d: %w", tag, err)
	}
	if err := WriteInt32(w, int32(len(items))); err != nil {
		return fmt.Errorf("failed to write sequence %d count: %w", tag, err)
	}
	for i, item := range items {
		if err := c.field.Persist(w, item); err != nil {
			return fmt.Errorf("failed to write sequence %d element %d: %w", tag, i, err)
		}
	}

	return nil
}

// Load reads the count and that many elements. The tag written by Persist is
// not consumed; read it first with ReadTag or ExpectTag, or use LoadTagged.
// An empty sequence loads as a non-nil empty slice.
func (c *SequenceCodec[T]) Load(r channel.Reader) ([]T, error) {
	pos := r.Position()
	count, err := ReadInt32(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read sequence count: %w", err)
	}
	if count < 0 {
		return nil, &CountError{Count: int64(count), Position: pos}
	}

	items := make([]T, 0, min(int(count), maxPrealloc))
	for i := int32(0); i < count; i++ {
		item, err := c.field.Load(r)
		if err != nil {
			return nil, fmt.Errorf("failed to load sequence element %d of %d: %w", i, count, err)
		}
		items = append(items, item)
	}

	return items, nil
}

// LoadTagged reads the tag, the count and the elements
func (c *SequenceCodec[T]) LoadTagged(r channel.Reader) (Tag, []T, error) {
	tag, err := ReadTag(r)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read sequence tag: %w", err)
	}
	items, err := c.Load(r)
	return tag, items, err
}

// Field returns a codec for whole sequences under tag, so sequences can be
// elements of other sequences or payloads of records. Load consumes the tag
// without checking it.
func (c *SequenceCodec[T]) Field(tag Tag) FieldCodec[[]T] {
	return NewFieldCodec[[]T](
		func(w channel.Writer, items []T) error {
			return c.Persist(tag, items, w)
		},
		func(r channel.Reader) ([]T, error) {
			_, items, err := c.LoadTagged(r)
			return items, err
		},
	)
}
