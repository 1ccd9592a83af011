package codec

import "github.com/ssargent/filer/pkg/channel"

// Persister writes one value of type T to a channel
type Persister[T any] func(w channel.Writer, v T) error

// Loader reads one value of type T from a channel
type Loader[T any] func(r channel.Reader) (T, error)

// FieldCodec is an immutable Persister/Loader pair for type T. It is the unit
// every record and sequence codec is built from.
type FieldCodec[T any] struct {
	persist Persister[T]
	load    Loader[T]
}

// NewFieldCodec pairs persist and load. Both must be non-nil.
func NewFieldCodec[T any](persist Persister[T], load Loader[T]) FieldCodec[T] {
	if persist == nil || load == nil {
		panic("codec: FieldCodec requires both a persister and a loader")
	}
	return FieldCodec[T]{persist: persist, load: load}
}

// Persist writes v to w
func (c FieldCodec[T]) Persist(w channel.Writer, v T) error {
	return c.persist(w, v)
}

// Load reads a value from r
func (c FieldCodec[T]) Load(r channel.Reader) (T, error) {
	return c.load(r)
}

// Map adapts a codec for T into a codec for U using a pair of lossless
// conversions
func Map[T, U any](field FieldCodec[T], to func(T) U, from func(U) T) FieldCodec[U] {
	return NewFieldCodec[U](
		func(w channel.Writer, v U) error {
			return field.Persist(w, from(v))
		},
		func(r channel.Reader) (U, error) {
			v, err := field.Load(r)
			if err != nil {
				var zero U
				return zero, err
			}
			return to(v), nil
		},
	)
}

// Built-in codecs for the scalar types
var (
	Int32   = NewFieldCodec[int32](WriteInt32, ReadInt32)
	Float32 = NewFieldCodec[float32](WriteFloat32, ReadFloat32)
	Vector2 = NewFieldCodec[Vec2](WriteVec2, ReadVec2)
	Vector3 = NewFieldCodec[Vec3](WriteVec3, ReadVec3)
)
