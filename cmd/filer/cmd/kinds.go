/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ssargent/filer/pkg/channel"
	"github.com/ssargent/filer/pkg/codec"
	"github.com/ssargent/filer/pkg/gamedata"
)

// kind is a list element type the CLI knows how to convert and persist
type kind interface {
	// persist converts tab-delimited text and writes it as a tagged sequence
	persist(text string, tag codec.Tag, w channel.Writer) (rows int, skipped []*gamedata.ConvertError, err error)
	// load reads a sequence (tag already consumed) and formats each element
	load(r channel.Reader) ([]string, error)
	// saveSnapshot converts text and writes it as a whole-list snapshot
	saveSnapshot(app gamedata.AppData, name, text string, opts gamedata.SnapshotOptions) (rows int, skipped []*gamedata.ConvertError, err error)
	// loadSnapshot reads a whole-list snapshot and formats each element
	loadSnapshot(app gamedata.AppData, name string) ([]string, error)
}

type sequenceKind[T any] struct {
	sequences *codec.SequenceCodec[T]
	columns   []gamedata.Column[T]
	format    func(T) string
}

func newKind[T any](field codec.FieldCodec[T], format func(T) string, columns ...gamedata.Column[T]) kind {
	return &sequenceKind[T]{
		sequences: codec.NewSequenceCodec(field),
		columns:   columns,
		format:    format,
	}
}

func (k *sequenceKind[T]) persist(text string, tag codec.Tag, w channel.Writer) (int, []*gamedata.ConvertError, error) {
	rows, skipped := gamedata.ConvertText(text, k.columns)
	if err := k.sequences.Persist(tag, rows, w); err != nil {
		return 0, skipped, err
	}
	return len(rows), skipped, nil
}

func (k *sequenceKind[T]) load(r channel.Reader) ([]string, error) {
	items, err := k.sequences.Load(r)
	if err != nil {
		return nil, err
	}
	return k.formatAll(items), nil
}

func (k *sequenceKind[T]) saveSnapshot(app gamedata.AppData, name, text string, opts gamedata.SnapshotOptions) (int, []*gamedata.ConvertError, error) {
	rows, skipped := gamedata.ConvertText(text, k.columns)
	if err := gamedata.PersistAppData(app, rows, name, opts); err != nil {
		return 0, skipped, err
	}
	return len(rows), skipped, nil
}

func (k *sequenceKind[T]) loadSnapshot(app gamedata.AppData, name string) ([]string, error) {
	items, err := gamedata.LoadAppData[T](app, name)
	if err != nil {
		return nil, err
	}
	return k.formatAll(items), nil
}

func (k *sequenceKind[T]) formatAll(items []T) []string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = k.format(item)
	}
	return lines
}

func formatFloat(f float32) string {
	return fmt.Sprintf("%g", f)
}

var kinds = map[string]kind{
	"int32": newKind(codec.Int32,
		func(v int32) string { return fmt.Sprintf("%d", v) },
		gamedata.NewColumn("value", gamedata.ParseInt32, func(v *int32) *int32 { return v }),
	),
	"float32": newKind(codec.Float32,
		formatFloat,
		gamedata.NewColumn("value", gamedata.ParseFloat32, func(v *float32) *float32 { return v }),
	),
	"vec2": newKind(codec.Vector2,
		func(v codec.Vec2) string { return formatFloat(v.X) + "\t" + formatFloat(v.Y) },
		gamedata.NewColumn("x", gamedata.ParseFloat32, func(v *codec.Vec2) *float32 { return &v.X }),
		gamedata.NewColumn("y", gamedata.ParseFloat32, func(v *codec.Vec2) *float32 { return &v.Y }),
	),
	"vec3": newKind(codec.Vector3,
		func(v codec.Vec3) string {
			return formatFloat(v.X) + "\t" + formatFloat(v.Y) + "\t" + formatFloat(v.Z)
		},
		gamedata.NewColumn("x", gamedata.ParseFloat32, func(v *codec.Vec3) *float32 { return &v.X }),
		gamedata.NewColumn("y", gamedata.ParseFloat32, func(v *codec.Vec3) *float32 { return &v.Y }),
		gamedata.NewColumn("z", gamedata.ParseFloat32, func(v *codec.Vec3) *float32 { return &v.Z }),
	),
}

func kindNames() string {
	names := make([]string, 0, len(kinds))
	for name := range kinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func lookupKind(name string) (kind, error) {
	k, ok := kinds[name]
	if !ok {
		return nil, fmt.Errorf("unknown kind %q (want one of %s)", name, kindNames())
	}
	return k, nil
}
