package codec

import (
	"encoding/binary"
	"math"

	"github.com/ssargent/filer/pkg/channel"
)

// Encoded sizes in bytes
const (
	Int32Size   = 4
	Float32Size = 4
	Vec2Size    = 2 * Float32Size
	Vec3Size    = 3 * Float32Size
)

// Tag identifies a record or sequence by convention between writer and reader
type Tag int32

// Vec2 is a two component float32 vector
type Vec2 struct {
	X, Y float32
}

// Vec3 is a three component float32 vector
type Vec3 struct {
	X, Y, Z float32
}

// WriteInt32 writes v as 4 little-endian bytes
func WriteInt32(w channel.Writer, v int32) error {
	var buf [Int32Size]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(v))
	return w.WriteBytes(buf[:])
}

// ReadInt32 reads 4 little-endian bytes as a signed integer
func ReadInt32(r channel.Reader) (int32, error) {
	buf, err := r.ReadBytes(Int32Size)
	if err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(buf)), nil
}

// WriteFloat32 writes the IEEE-754 bits of v as 4 little-endian bytes
func WriteFloat32(w channel.Writer, v float32) error {
	var buf [Float32Size]byte
	binary.LittleEndian.PutUint32(buf[:], math.Float32bits(v))
	return w.WriteBytes(buf[:])
}

// ReadFloat32 reads 4 little-endian bytes as an IEEE-754 float
func ReadFloat32(r channel.Reader) (float32, error) {
	buf, err := r.ReadBytes(Float32Size)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(buf)), nil
}

// WriteVec2 writes X then Y
func WriteVec2(w channel.Writer, v Vec2) error {
	if err := WriteFloat32(w, v.X); err != nil {
		return err
	}
	return WriteFloat32(w, v.Y)
}

// ReadVec2 reads X then Y
func ReadVec2(r channel.Reader) (Vec2, error) {
	x, err := ReadFloat32(r)
	if err != nil {
		return Vec2{}, err
	}
	y, err := ReadFloat32(r)
	if err != nil {
		return Vec2{}, err
	}
	return Vec2{X: x, Y: y}, nil
}

// WriteVec3 writes X, Y and Z in that order
func WriteVec3(w channel.Writer, v Vec3) error {
	if err := WriteFloat32(w, v.X); err != nil {
		return err
	}
	if err := WriteFloat32(w, v.Y); err != nil {
		return err
	}
	return WriteFloat32(w, v.Z)
}

// ReadVec3 reads X, Y and Z in that order
func ReadVec3(r channel.Reader) (Vec3, error) {
	x, err := ReadFloat32(r)
	if err != nil {
		return Vec3{}, err
	}
	y, err := ReadFloat32(r)
	if err != nil {
		return Vec3{}, err
	}
	z, err := ReadFloat32(r)
	if err != nil {
		return Vec3{}, err
	}
	return Vec3{X: x, Y: y, Z: z}, nil
}

// WriteTag writes a tag as an int32
func WriteTag(w channel.Writer, tag Tag) error {
	return WriteInt32(w, int32(tag))
}

// ReadTag reads a tag without checking it
func ReadTag(r channel.Reader) (Tag, error) {
	v, err := ReadInt32(r)
	return Tag(v), err
}

// ExpectTag reads a tag and fails with a *TagMismatchError if it is not want
func ExpectTag(r channel.Reader, want Tag) error {
	pos := r.Position()
	got, err := ReadTag(r)
	if err != nil {
		return err
	}
	if got != want {
		return &TagMismatchError{Want: want, Got: got, Position: pos}
	}
	return nil
}
