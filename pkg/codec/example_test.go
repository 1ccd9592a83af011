package codec_test

import (
	"fmt"
	"log"

	"github.com/ssargent/filer/pkg/channel"
	"github.com/ssargent/filer/pkg/codec"
)

// ExampleSequenceCodec demonstrates persisting and loading a list of vectors
func ExampleSequenceCodec() {
	vectors := codec.NewSequenceCodec(codec.Vector3)

	w := channel.NewBufferWriter()
	items := []codec.Vec3{{X: 1, Y: 2, Z: 3}, {X: 4, Y: 5, Z: 6}}
	if err := vectors.Persist(1, items, w); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Encoded %d bytes\n", len(w.Bytes()))
	fmt.Printf("Header: % x\n", w.Bytes()[:8])

	r := channel.NewBufferReader(w.Bytes())
	tag, err := codec.ReadTag(r)
	if err != nil {
		log.Fatal(err)
	}
	loaded, err := vectors.Load(r)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Tag: %d\n", tag)
	for _, v := range loaded {
		fmt.Printf("%v\n", v)
	}

	// Output:
	// Encoded 32 bytes
	// Header: 01 00 00 00 02 00 00 00
	// Tag: 1
	// {1 2 3}
	// {4 5 6}
}

// ExampleRecordCodec_Field demonstrates a list of tagged records
func ExampleRecordCodec_Field() {
	type spawn struct {
		Team  int32
		Point codec.Vec2
	}

	spawnCodec := codec.NewFieldCodec[spawn](
		func(w channel.Writer, s spawn) error {
			if err := codec.WriteInt32(w, s.Team); err != nil {
				return err
			}
			return codec.WriteVec2(w, s.Point)
		},
		func(r channel.Reader) (spawn, error) {
			team, err := codec.ReadInt32(r)
			if err != nil {
				return spawn{}, err
			}
			point, err := codec.ReadVec2(r)
			return spawn{Team: team, Point: point}, err
		},
	)

	spawns := codec.NewSequenceCodec(codec.NewRecordCodec(spawnCodec).Field(100))

	w := channel.NewBufferWriter()
	err := spawns.Persist(2, []spawn{{Team: 1, Point: codec.Vec2{X: 10, Y: 20}}, {Team: 2, Point: codec.Vec2{X: -10, Y: -20}}}, w)
	if err != nil {
		log.Fatal(err)
	}

	tag, loaded, err := spawns.LoadTagged(channel.NewBufferReader(w.Bytes()))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Encoded %d bytes with tag %d\n", len(w.Bytes()), tag)
	for _, s := range loaded {
		fmt.Printf("team %d at %v\n", s.Team, s.Point)
	}

	// Output:
	// Encoded 40 bytes with tag 2
	// team 1 at {10 20}
	// team 2 at {-10 -20}
}
