//go:build fuzz
// +build fuzz

package codec

import (
	"errors"
	"math"
	"testing"

	"github.com/ssargent/filer/pkg/channel"
)

// FuzzSequenceCodec_RoundTrip checks that any vector list survives a round trip
func FuzzSequenceCodec_RoundTrip(f *testing.F) {
	sequences := NewSequenceCodec(Vector3)

	f.Add(int32(0), float32(0), float32(0), float32(0), uint8(0))
	f.Add(int32(1), float32(1), float32(2), float32(3), uint8(2))
	f.Add(int32(-7), float32(-1.5), float32(1e30), float32(-1e-30), uint8(17))

	f.Fuzz(func(t *testing.T, tag int32, x, y, z float32, n uint8) {
		items := make([]Vec3, int(n))
		for i := range items {
			items[i] = Vec3{X: x * float32(i), Y: y, Z: z}
		}

		w := channel.NewBufferWriter()
		if err := sequences.Persist(Tag(tag), items, w); err != nil {
			t.Fatalf("Persist failed: %v", err)
		}
		if len(w.Bytes()) != 8+len(items)*Vec3Size {
			t.Fatalf("unexpected encoded size %d for %d items", len(w.Bytes()), len(items))
		}

		gotTag, got, err := sequences.LoadTagged(channel.NewBufferReader(w.Bytes()))
		if err != nil {
			t.Fatalf("LoadTagged failed: %v", err)
		}
		if gotTag != Tag(tag) {
			t.Errorf("tag mismatch: got %d, want %d", gotTag, tag)
		}
		if len(got) != len(items) {
			t.Fatalf("length mismatch: got %d, want %d", len(got), len(items))
		}
		for i := range items {
			if math.Float32bits(got[i].X) != math.Float32bits(items[i].X) ||
				math.Float32bits(got[i].Y) != math.Float32bits(items[i].Y) ||
				math.Float32bits(got[i].Z) != math.Float32bits(items[i].Z) {
				t.Errorf("element %d mismatch: got %v, want %v", i, got[i], items[i])
			}
		}
	})
}

// FuzzSequenceCodec_ArbitraryInput checks that arbitrary bytes never panic and
// never produce a partially decoded list
func FuzzSequenceCodec_ArbitraryInput(f *testing.F) {
	sequences := NewSequenceCodec(Int32)

	f.Add([]byte{})
	f.Add([]byte{0x01, 0x00, 0x00, 0x00})
	f.Add([]byte{0x02, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00})
	f.Add([]byte{0xFF, 0xFF, 0xFF, 0x7F, 0x00})

	f.Fuzz(func(t *testing.T, data []byte) {
		items, err := sequences.Load(channel.NewBufferReader(data))
		if err != nil {
			if items != nil {
				t.Fatalf("partial result returned with error: %v", err)
			}
			var shortErr *channel.ShortReadError
			var countErr *CountError
			if !errors.As(err, &shortErr) && !errors.As(err, &countErr) {
				t.Fatalf("unexpected error kind: %v", err)
			}
			return
		}
		if want := 4 + len(items)*Int32Size; want > len(data) {
			t.Fatalf("decoded %d items from %d bytes", len(items), len(data))
		}
	})
}
