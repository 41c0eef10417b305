package record

import "encoding/binary"

// Iterator walks a contiguous region of length-prefixed records: each
// record starts with a little-endian u16 length (counting the header
// itself), followed by length-2 payload bytes.
type Iterator struct {
	buffer []byte
	offset int
}

// New returns an Iterator over buffer.
func New(buffer []byte) *Iterator {
	return &Iterator{buffer: buffer}
}

// Next returns the next record's payload (header stripped) and advances
// past it. Returns ok=false once the cursor reaches the end of the region.
func (it *Iterator) Next() (payload []byte, ok bool) {
	if it.offset >= len(it.buffer) {
		return nil, false
	}
	length := int(binary.LittleEndian.Uint16(it.buffer[it.offset : it.offset+2]))
	payload = it.buffer[it.offset+2 : it.offset+length]
	it.offset += length
	return payload, true
}

// Clone returns an independent copy of it positioned at the same offset.
func (it *Iterator) Clone() *Iterator {
	c := *it
	return &c
}

// PairIterator groups an alternating strokes-record/translation-record
// stream into (strokes, translation) pairs, in original order.
type PairIterator struct {
	it *Iterator
}

// NewPairs returns a PairIterator over buffer.
func NewPairs(buffer []byte) *PairIterator {
	return &PairIterator{it: New(buffer)}
}

// Next returns the next (strokes, translation) pair, or ok=false when the
// stream is exhausted.
func (p *PairIterator) Next() (strokes, translation []byte, ok bool) {
	strokes, ok = p.it.Next()
	if !ok {
		return nil, nil, false
	}
	translation, ok = p.it.Next()
	if !ok {
		return nil, nil, false
	}
	return strokes, translation, true
}

// Clone returns an independent copy of p positioned at the same offset.
func (p *PairIterator) Clone() *PairIterator {
	return &PairIterator{it: p.it.Clone()}
}
