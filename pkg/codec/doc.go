// Package codec provides composable binary persistence for typed data.
//
// The package describes structured data as compositions of small codecs
// instead of relying on a reflection-based serializer. A handful of
// primitives compose recursively: scalar readers and writers, tagged records
// and tagged sequences. All of them move bytes through the channel package.
//
// # Wire Format
//
// Every value is fixed width and little-endian:
//
//	int32    [4 bytes, two's complement]
//	float32  [4 bytes, IEEE-754 single precision]
//	Vec2     [X(4)][Y(4)]
//	Vec3     [X(4)][Y(4)][Z(4)]
//
// Records and sequences add a leading tag:
//
//	record   [Tag(4)][Payload]
//	sequence [Tag(4)][Count(4)][Payload × Count]
//
// There is no magic number, version header or checksum. Writer and reader
// agree on the tag values and the codecs out of band.
//
// # Field Codecs
//
// A FieldCodec pairs a Persister and a Loader for one type. New types are
// supported by building a new pair, never by adding branches to the wrapping
// code:
//
//	type Waypoint struct {
//	    ID  int32
//	    Pos codec.Vec3
//	}
//
//	waypoint := codec.NewFieldCodec(
//	    func(w channel.Writer, p Waypoint) error {
//	        if err := codec.WriteInt32(w, p.ID); err != nil {
//	            return err
//	        }
//	        return codec.WriteVec3(w, p.Pos)
//	    },
//	    func(r channel.Reader) (Waypoint, error) {
//	        id, err := codec.ReadInt32(r)
//	        if err != nil {
//	            return Waypoint{}, err
//	        }
//	        pos, err := codec.ReadVec3(r)
//	        return Waypoint{ID: id, Pos: pos}, err
//	    },
//	)
//
// The framework only calls the functions in order. Decoding exactly the bytes
// that encoding produced is the codec author's responsibility and is not
// verified.
//
// # Tags
//
// RecordCodec.Persist and SequenceCodec.Persist write the tag, but Load does
// not read it back. Callers that need the tag read it first with ReadTag or
// ExpectTag, or use LoadTagged. Field turns a record or sequence into a
// FieldCodec that writes and consumes its own tag, which is how tagged values
// nest inside sequences.
//
// # Error Handling
//
// Channel errors propagate unchanged in kind and are wrapped with the
// position in the structure where they happened. A stream that ends early
// always fails with a *channel.ShortReadError; a partially decoded sequence is
// never returned.
//
// # Thread Safety
//
// Codec values are immutable and safe to share. Channels are not, so a single
// Persist or Load call tree must own its channel.
package codec
