package gamedata

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fxamacker/cbor/v2"
	"github.com/klauspost/compress/zstd"
)

// zstdMagic starts every zstd frame
var zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}

// SnapshotOptions configures how a snapshot is written
type SnapshotOptions struct {
	Compress bool // zstd-compress the encoded list
}

var (
	encMode cbor.EncMode
	decMode cbor.DecMode

	// EncodeAll and DecodeAll are safe for concurrent use
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error

	// Same list always produces identical bytes
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("gamedata: CBOR encoder initialization failed: " + err.Error())
	}
	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("gamedata: CBOR decoder initialization failed: " + err.Error())
	}

	zstdEncoder, err = zstd.NewWriter(nil)
	if err != nil {
		panic("gamedata: zstd encoder initialization failed: " + err.Error())
	}
	zstdDecoder, err = zstd.NewReader(nil)
	if err != nil {
		panic("gamedata: zstd decoder initialization failed: " + err.Error())
	}
}

// Persist writes an entire list to path, replacing any existing file
func Persist[T any](items []T, path string, opts SnapshotOptions) error {
	data, err := encMode.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	if opts.Compress {
		data = zstdEncoder.EncodeAll(data, nil)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

// Load reads a list written by Persist. Compressed snapshots are detected
// automatically.
func Load[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	if bytes.HasPrefix(data, zstdMagic) {
		data, err = zstdDecoder.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to decompress snapshot: %w", err)
		}
	}

	var items []T
	if err := decMode.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// PersistAppData writes a snapshot named name inside app, creating the
// directory when needed
func PersistAppData[T any](app AppData, items []T, name string, opts SnapshotOptions) error {
	if err := app.Ensure(); err != nil {
		return err
	}
	return Persist(items, app.Path(name), opts)
}

// LoadAppData reads the snapshot named name from app
func LoadAppData[T any](app AppData, name string) ([]T, error) {
	if err := app.Check(name); err != nil {
		return nil, err
	}
	return Load[T](app.Path(name))
}
