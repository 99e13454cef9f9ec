// Package frame encodes and decodes fixed-width text records described by a
// YAML layout.
//
// A [Layout] names the fields of a record and places each one at a fixed
// offset and width. Every field has a [Kind] that selects the byte layout
// written by the matching [str.Str] method:
//
//	uint   PadSetUint     "00001234"
//	int    PadSetInt      "000-42"
//	float  PadSetFloat    "0+12.34"
//	lf     PadSetLF       "+0123452"
//	text   SetString      "abc   " (padded with the layout fill byte)
//
// # Layout Files
//
// Layouts are YAML documents:
//
//	name: telemetry
//	size: 32
//	fill: "-"
//	fields:
//	  - {name: seq,  kind: uint,  start: 0, width: 6}
//	  - {name: temp, kind: float, start: 6, width: 8, decimals: 2}
//
// [ParseLayout] rejects unknown keys and validates the geometry: fields must
// lie inside the record, must not overlap, and must have unique names.
//
// # Encoding
//
// An [Encoder] owns one record buffer, allocated when it is created and
// reused for every record:
//
//	enc, err := frame.NewEncoder(layout)
//	enc.Reset()
//	enc.PutUint("seq", 17)
//	enc.PutFloat("temp", 21.5)
//	os.Stdout.Write(enc.Bytes())
//
// Field errors wrap the sentinels in [github.com/ardnew/fixstr/pkg], so
// [pkg.StatusOf] recovers the numeric status of a failed write.
//
// # Decoding
//
// A [Decoder] reads a record back into a [Record] of typed [Value]s.
package frame
