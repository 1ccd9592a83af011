package codec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/filer/pkg/channel"
)

type celsius float32

func TestNewFieldCodec_RequiresBothFunctions(t *testing.T) {
	assert.Panics(t, func() {
		NewFieldCodec[int32](nil, ReadInt32)
	})
	assert.Panics(t, func() {
		NewFieldCodec[int32](WriteInt32, nil)
	})
}

func TestFieldCodec_InvokesFunctions(t *testing.T) {
	var persisted []int32
	field := NewFieldCodec[int32](
		func(w channel.Writer, v int32) error {
			persisted = append(persisted, v)
			return WriteInt32(w, v*2)
		},
		func(r channel.Reader) (int32, error) {
			v, err := ReadInt32(r)
			return v / 2, err
		},
	)

	w := channel.NewBufferWriter()
	require.NoError(t, field.Persist(w, 21))
	assert.Equal(t, []int32{21}, persisted)

	got, err := field.Load(channel.NewBufferReader(w.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, int32(21), got)
}

func TestFieldCodec_PropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	field := NewFieldCodec[int32](
		func(w channel.Writer, v int32) error { return boom },
		func(r channel.Reader) (int32, error) { return 0, boom },
	)

	assert.ErrorIs(t, field.Persist(channel.NewBufferWriter(), 1), boom)
	_, err := field.Load(channel.NewBufferReader(nil))
	assert.ErrorIs(t, err, boom)
}

func TestMap(t *testing.T) {
	temps := Map(Float32,
		func(v float32) celsius { return celsius(v) },
		func(c celsius) float32 { return float32(c) },
	)

	w := channel.NewBufferWriter()
	require.NoError(t, temps.Persist(w, celsius(21.5)))
	assert.Len(t, w.Bytes(), Float32Size)

	got, err := temps.Load(channel.NewBufferReader(w.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, celsius(21.5), got)

	_, err = temps.Load(channel.NewBufferReader([]byte{1}))
	var shortErr *channel.ShortReadError
	assert.ErrorAs(t, err, &shortErr)
}

func TestBuiltinCodecs(t *testing.T) {
	w := channel.NewBufferWriter()
	require.NoError(t, Int32.Persist(w, -5))
	require.NoError(t, Float32.Persist(w, 0.5))
	require.NoError(t, Vector2.Persist(w, Vec2{X: 1, Y: 2}))
	require.NoError(t, Vector3.Persist(w, Vec3{X: 3, Y: 4, Z: 5}))
	assert.Equal(t, int64(Int32Size+Float32Size+Vec2Size+Vec3Size), w.Position())

	r := channel.NewBufferReader(w.Bytes())
	i, err := Int32.Load(r)
	require.NoError(t, err)
	f, err := Float32.Load(r)
	require.NoError(t, err)
	v2, err := Vector2.Load(r)
	require.NoError(t, err)
	v3, err := Vector3.Load(r)
	require.NoError(t, err)

	assert.Equal(t, int32(-5), i)
	assert.Equal(t, float32(0.5), f)
	assert.Equal(t, Vec2{X: 1, Y: 2}, v2)
	assert.Equal(t, Vec3{X: 3, Y: 4, Z: 5}, v3)
}
