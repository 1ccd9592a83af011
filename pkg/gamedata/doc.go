// Package gamedata holds the collaborators that sit on top of the codec core:
// whole-list snapshots, the app-data directory and tab-delimited text import.
//
// Snapshots are written with CBOR (core deterministic encoding) and may be
// zstd compressed. Nothing here uses global state; the app-data root is an
// explicit AppData value and text import takes an explicit column list
// instead of inspecting struct fields at runtime.
package gamedata
