// Package record implements the length-prefixed byte-stream iterators that
// walk the transcoder's intermediate stream: a u16 little-endian length
// header (counting itself) followed by that many payload bytes, repeated
// until the region is exhausted.
//
// Iterator is the base walk. PairIterator groups the alternating
// strokes-record/translation-record stream into (strokes, translation)
// pairs. ChordIterator lazily decodes a strokes record into its packed
// 3-byte-per-chord stream, one chord at a time, and is cheaply restartable
// by cloning its position state.
package record
