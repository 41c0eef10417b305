package wyhash

import (
	"encoding/binary"
	"math/bits"

	"github.com/cespare/xxhash/v2"
)

// DefaultSeed is the seed the hash table builder and query engine agree on;
// it must never change once a table has been built with it.
const DefaultSeed uint64 = 1

const (
	p0 = 0xa0761d6478bd642f
	p1 = 0xe7037ed1a0b428db
	p2 = 0x8ebc6af09c88c6e3
	p3 = 0x589965cc75374cc3
	p4 = 0x1d8e4e27c47d124f
)

// Hasher is the streaming interface the hash table builder writes a key
// into, 32 bytes at a time, before asking for Sum64. github.com/cespare/
// xxhash/v2's *Digest already satisfies this, which is what lets NewXXH
// below return one directly.
type Hasher interface {
	Write(p []byte) (int, error)
	Sum64() uint64
	Reset()
}

// wyHasher is a from-scratch WyHash: seed 1, absorbing the key in 32-byte
// blocks, with a final mix over whatever is left over. No existing Go
// package implements this exact seed and streaming behavior, so it is
// implemented directly rather than imported.
type wyHasher struct {
	seed0  uint64
	acc    uint64
	total  uint64
	buf    [32]byte
	buflen int
}

// New returns the default Hasher: WyHash seeded at DefaultSeed.
func New() Hasher {
	return NewSeed(DefaultSeed)
}

// NewSeed returns a WyHash Hasher seeded at seed.
func NewSeed(seed uint64) Hasher {
	return &wyHasher{seed0: seed, acc: seed ^ p0}
}

// NewXXH returns an alternate Hasher backed by github.com/cespare/
// xxhash/v2, for callers that built their table with hashtable.WithHasher
// pointed at it instead of the default WyHash.
func NewXXH() Hasher {
	return xxhash.New()
}

func mix(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return hi ^ lo
}

func read8(b []byte) uint64 { return binary.LittleEndian.Uint64(b) }
func read4(b []byte) uint64 { return uint64(binary.LittleEndian.Uint32(b)) }

func (h *wyHasher) absorb(block []byte) {
	a := read8(block[0:8]) ^ p1
	b := read8(block[8:16]) ^ p2
	c := read8(block[16:24]) ^ p3
	d := read8(block[24:32]) ^ p4
	h.acc = mix(h.acc^a, b) ^ mix(c, d)
}

// Write absorbs p into the running hash state, 32 bytes at a time, per the
// streaming discipline the builder and the lookup path both rely on.
func (h *wyHasher) Write(p []byte) (int, error) {
	n := len(p)
	h.total += uint64(n)
	for len(p) > 0 {
		if h.buflen == 0 && len(p) >= 32 {
			h.absorb(p[:32])
			p = p[32:]
			continue
		}
		take := 32 - h.buflen
		if take > len(p) {
			take = len(p)
		}
		copy(h.buf[h.buflen:], p[:take])
		h.buflen += take
		p = p[take:]
		if h.buflen == 32 {
			h.absorb(h.buf[:])
			h.buflen = 0
		}
	}
	return n, nil
}

// Sum64 finalizes the hash over everything written so far. Calling it does
// not consume the accumulated tail; Reset is required to start a new key.
func (h *wyHasher) Sum64() uint64 {
	tail := h.buf[:h.buflen]
	var a, b uint64
	switch {
	case h.buflen == 0:
		// a, b stay zero.
	case h.buflen < 4:
		a = uint64(tail[0])<<16 | uint64(tail[h.buflen>>1])<<8 | uint64(tail[h.buflen-1])
	case h.buflen <= 8:
		a = read4(tail[0:4])
		b = read4(tail[h.buflen-4 : h.buflen])
	case h.buflen <= 16:
		a = read8(tail[0:8])
		b = read8(tail[h.buflen-8 : h.buflen])
	default: // 17..31
		a = read8(tail[0:8]) ^ read8(tail[8:16])
		b = read8(tail[h.buflen-8 : h.buflen])
	}
	return mix(h.acc^h.total, mix(a^p1, b^h.acc))
}

// Reset prepares the Hasher to hash a new key from scratch, at the same
// seed it was constructed with.
func (h *wyHasher) Reset() {
	h.acc = h.seed0 ^ p0
	h.total = 0
	h.buflen = 0
}

// Sum64 is a convenience one-shot hash of key using h, which is Reset
// before and left Reset after (so the Hasher can be reused for the next
// key without the caller remembering to do it).
func Sum64(h Hasher, key []byte) uint64 {
	h.Reset()
	h.Write(key)
	sum := h.Sum64()
	h.Reset()
	return sum
}
