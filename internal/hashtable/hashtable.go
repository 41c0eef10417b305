package hashtable

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/opensteno/dictionary/internal/wyhash"
)

// Unset is the value every entry carries until the linker fills it in.
const Unset uint32 = 0xFFFFFFFF

// DefaultLoadFactor is the target entries-per-bucket ratio used when no
// Option overrides it.
const DefaultLoadFactor = 10

const (
	entryHeaderSize = 2
	entryValueSize  = 4
	entryOverhead   = entryHeaderSize + entryValueSize
)

// ErrNoFittingEntry reports the "no fitting entry found" internal
// invariant violation: the sizing pass and the placement pass disagreed
// about which bucket a key belongs to. It should be impossible and, per
// spec, only occurs if the two passes hash differently.
var ErrNoFittingEntry = errors.New("hashtable: no fitting entry found for key during placement")

// Table is the packed-per-bucket layout: Buckets holds B+1 offsets into
// Data, bucket i covering the half-open byte range [Buckets[i],
// Buckets[i+1]).
type Table struct {
	Buckets []uint32
	Data    []byte
	hasher  wyhash.Hasher
}

// EntryHandle is a stable reference to one entry's header offset inside a
// Table's Data buffer.
type EntryHandle struct {
	Offset uint32
}

// Option configures Build.
type Option func(*config)

type config struct {
	loadFactor int
	hasher     wyhash.Hasher
}

// WithLoadFactor overrides the default entries-per-bucket target.
func WithLoadFactor(n int) Option {
	return func(c *config) { c.loadFactor = n }
}

// WithHasher overrides the default WyHash with another wyhash.Hasher, for
// example wyhash.NewXXH(). The same Hasher choice must be used to build
// and to query a given Table.
func WithHasher(h wyhash.Hasher) Option {
	return func(c *config) { c.hasher = h }
}

// FromParts wraps an already-built buckets/data pair (for example, views
// into a container.Container that an Image reassembled after Build) as a
// queryable Table. The Hasher supplied via WithHasher must be the same
// kind used when the table was originally built with Build.
func FromParts(buckets []uint32, data []byte, opts ...Option) *Table {
	cfg := config{loadFactor: DefaultLoadFactor, hasher: wyhash.New()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Table{Buckets: buckets, Data: data, hasher: cfg.hasher}
}

func (t *Table) bucketIndex(key []byte) int {
	return int(wyhash.Sum64(t.hasher, key) % uint64(len(t.Buckets)-1))
}

// Build constructs a Table from keys in two phases: a sizing pass that
// sums each bucket's entry bytes, and a placement pass that writes every entry
// at a stable offset with value Unset. The order of keys is preserved
// only in the sense that every key ends up placed somewhere in its
// bucket; callers that need to find a *specific* occurrence among
// duplicate keys use LookupUnset, which the linker relies on.
func Build(keys [][]byte, opts ...Option) (*Table, error) {
	cfg := config{loadFactor: DefaultLoadFactor, hasher: wyhash.New()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.loadFactor < 1 {
		cfg.loadFactor = 1
	}

	n := len(keys)
	var totalKeyBytes int
	for _, k := range keys {
		totalKeyBytes += len(k)
	}

	bucketCount := n / cfg.loadFactor
	if bucketCount < 1 {
		bucketCount = 1
	}
	dataSize := entryOverhead*n + totalKeyBytes

	t := &Table{
		Buckets: make([]uint32, bucketCount+1),
		Data:    make([]byte, dataSize),
		hasher:  cfg.hasher,
	}

	// Sizing sub-pass: accumulate each bucket's byte footprint into
	// Buckets[i], then prefix-scan it into offsets.
	for _, k := range keys {
		h := t.bucketIndex(k)
		t.Buckets[h] += uint32(entryOverhead + len(k))
	}
	var offset uint32
	for i := 0; i < bucketCount; i++ {
		size := t.Buckets[i]
		t.Buckets[i] = offset
		offset += size
	}
	t.Buckets[bucketCount] = offset

	// Placement sub-pass. Data starts zero-filled, which already doubles
	// as the "empty slot" zero header for every unwritten position, so
	// there is nothing to pre-write before scanning for a slot.
	for _, k := range keys {
		h := t.bucketIndex(k)
		cursor := t.Buckets[h]
		end := t.Buckets[h+1]
		placed := false
		for cursor < end {
			length := binary.LittleEndian.Uint16(t.Data[cursor : cursor+2])
			if length == 0 {
				entryLen := uint16(entryOverhead + len(k))
				binary.LittleEndian.PutUint16(t.Data[cursor:cursor+2], entryLen)
				copy(t.Data[cursor+2:], k)
				binary.LittleEndian.PutUint32(t.Data[cursor+2+uint32(len(k)):], Unset)
				placed = true
				break
			}
			cursor += uint32(length)
		}
		if !placed {
			return nil, ErrNoFittingEntry
		}
	}

	return t, nil
}

// entryAt reads the entry starting at offset: its key slice (a view into
// Data) and its current value.
func (t *Table) entryAt(offset uint32) (key []byte, value uint32) {
	length := binary.LittleEndian.Uint16(t.Data[offset : offset+2])
	key = t.Data[offset+2 : offset+uint32(length)-entryValueSize]
	value = binary.LittleEndian.Uint32(t.Data[offset+uint32(length)-entryValueSize : offset+uint32(length)])
	return key, value
}

// Lookup calls visit once for every entry in key's bucket whose stored key
// equals key, in bucket order, passing the entry's handle and its current
// value.
func (t *Table) Lookup(key []byte, visit func(h EntryHandle, value uint32)) {
	h := t.bucketIndex(key)
	cursor := t.Buckets[h]
	end := t.Buckets[h+1]
	for cursor < end {
		length := binary.LittleEndian.Uint16(t.Data[cursor : cursor+2])
		entryKey, value := t.entryAt(cursor)
		if bytesEqual(entryKey, key) {
			visit(EntryHandle{Offset: cursor}, value)
		}
		cursor += uint32(length)
	}
}

// LookupUnset returns the first entry in key's bucket whose stored key
// equals key and whose value is still Unset. The linker uses this to
// associate each (strokes, translation) pair with a fresh entry even when
// the same key appears more than once.
func (t *Table) LookupUnset(key []byte) (EntryHandle, bool) {
	var found EntryHandle
	ok := false
	t.Lookup(key, func(h EntryHandle, value uint32) {
		if !ok && value == Unset {
			found = h
			ok = true
		}
	})
	return found, ok
}

// Value returns the key and current value stored at h.
func (t *Table) Value(h EntryHandle) (key []byte, value uint32) {
	return t.entryAt(h.Offset)
}

// SetValue overwrites the value field of the entry at h.
func (t *Table) SetValue(h EntryHandle, value uint32) {
	length := binary.LittleEndian.Uint16(t.Data[h.Offset : h.Offset+2])
	binary.LittleEndian.PutUint32(t.Data[h.Offset+uint32(length)-entryValueSize:h.Offset+uint32(length)], value)
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
