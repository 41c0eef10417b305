package record

import "github.com/opensteno/dictionary/internal/chord"

// ChordIterator wraps a strokes record's raw ASCII bytes and lazily yields
// the packed 3-byte-per-chord stream: it decodes one chord at a time with
// the chord codec, then emits that chord's three bytes before decoding the
// next one.
type ChordIterator struct {
	raw  []byte
	pos  int
	cur  chord.Chord
	left int // bytes of cur not yet emitted (0..3)
}

// NewChordIterator returns a ChordIterator over a strokes record's raw
// '/'-separated ASCII bytes.
func NewChordIterator(raw []byte) *ChordIterator {
	return &ChordIterator{raw: raw}
}

// Next returns the next packed chord byte, or ok=false once the whole
// strokes record has been consumed.
func (c *ChordIterator) Next() (b byte, ok bool) {
	if c.left == 0 {
		if c.pos >= len(c.raw) {
			return 0, false
		}
		val, n := chord.Decode(c.raw[c.pos:])
		c.pos += n
		c.cur = val
		c.left = 3
	}
	b = byte(c.cur)
	c.cur >>= 8
	c.left--
	return b, true
}

// Clone returns an independent copy of c positioned at the same point in
// the chord stream, restarting iteration from there without re-decoding
// already-emitted bytes.
func (c *ChordIterator) Clone() *ChordIterator {
	cc := *c
	return &cc
}

// Bytes drains the remainder of the iterator into a newly allocated slice.
// Next stays lazy so callers that only need the first few chords (or want
// to Clone and branch) never pay for a full decode; Bytes is for the
// common case of a lookup or build step that wants the whole packed key
// at once and can afford the one allocation.
func (c *ChordIterator) Bytes() []byte {
	var out []byte
	for {
		b, ok := c.Next()
		if !ok {
			return out
		}
		out = append(out, b)
	}
}
