package chord

import "github.com/pkg/errors"

// Chord is a packed steno chord: bits 0-22 encode the fixed set of steno
// keys plus the "number" bit; bit 23 is reserved as a last-stroke marker
// when chords are stored as part of a multi-chord key (the codec itself
// never sets it). Chord 0 is a distinct, legal value.
type Chord uint32

// MaxChordsPerKey is the largest number of chords a single stroke-key may
// hold, per the intermediate codec's framing limit.
const MaxChordsPerKey = 1000

const (
	stateRightBank = 1 << 6
	stateStop      = 1 << 7

	entryKeyMask = 0x00FFFFFF
)

// table is the 128-entry parse table: index 0-63 is the left bank (bytes
// ' '..'_'), index 64-127 repeats the same byte range for the right bank.
// Each entry packs the chord-bit contribution in its low 24 bits and the
// next automaton state in its top 8 bits (bit 6 = right-bank latch, bit 7 =
// stop). Reproduced from the definitive steno-lookup PARSE_STROKE_TABLE.
var table = [128]uint32{
	// left bank, bytes ' ' (32) through '_' (95)
	0x00000000, // ' '
	0x00000000, // '!'
	stateStop << 24, // '"'
	0x00000001, // '#' (number)
	0x00000000, // '$'
	0x00000000, // '%'
	0x00000000, // '&'
	0x00000000, // '\''
	0x00000000, // '('
	0x00000000, // ')'
	(1 << 10) | (stateRightBank << 24), // '*'
	0x00000000,                         // '+'
	0x00000000,                         // ','
	stateRightBank << 24,                // '-'
	0x00000000,                         // '.'
	stateStop << 24,                     // '/'
	0x00000001 | (1 << 9) | (stateRightBank << 24), // '0'
	0x00000001 | (1 << 1),                          // '1'
	0x00000001 | (1 << 2),                          // '2'
	0x00000001 | (1 << 4),                          // '3'
	0x00000001 | (1 << 6),                          // '4'
	0x00000001 | (1 << 8) | (stateRightBank << 24),  // '5'
	0x00000001 | (1 << 13), // '6'
	0x00000001 | (1 << 15), // '7'
	0x00000001 | (1 << 17), // '8'
	0x00000001 | (1 << 19), // '9'
	0x00000000,             // ':'
	0x00000000,             // ';'
	0x00000000,             // '<'
	0x00000000,             // '='
	0x00000000,             // '>'
	0x00000000,             // '?'
	0x00000000,             // '@'
	(1 << 8) | (stateRightBank << 24),  // 'A'
	0x00000000,                         // 'B'
	0x00000000,                         // 'C'
	0x00000000,                         // 'D'
	(1 << 11) | (stateRightBank << 24), // 'E'
	0x00000000,                         // 'F'
	0x00000000,                         // 'G'
	1 << 6,                             // 'H'
	0x00000000,                         // 'I'
	0x00000000,                         // 'J'
	1 << 3,                             // 'K'
	0x00000000,                         // 'L'
	0x00000000,                         // 'M'
	0x00000000,                         // 'N'
	(1 << 9) | (stateRightBank << 24),  // 'O'
	1 << 4,                             // 'P'
	0x00000000,                         // 'Q'
	1 << 7,                             // 'R'
	1 << 1,                             // 'S'
	1 << 2,                             // 'T'
	(1 << 12) | (stateRightBank << 24), // 'U'
	0x00000000,                         // 'V'
	1 << 5,                             // 'W'
	0x00000000,                         // 'X'
	0x00000000,                         // 'Y'
	0x00000000,                         // 'Z'
	0x00000000,                         // '['
	0x00000000,                         // '\\'
	0x00000000,                         // ']'
	0x00000000,                         // '^'
	0x00000000,                         // '_'

	// right bank, same byte range, every entry carries the right-bank bit
	stateRightBank << 24,                                          // ' '
	stateRightBank << 24,                                          // '!'
	(stateRightBank << 24) | (stateStop << 24),                    // '"'
	(stateRightBank << 24) | 0x00000001,                           // '#' (shouldn't occur right-bank, kept for parity)
	stateRightBank << 24,                                          // '$'
	stateRightBank << 24,                                          // '%'
	stateRightBank << 24,                                          // '&'
	stateRightBank << 24,                                          // '\''
	stateRightBank << 24,                                          // '('
	stateRightBank << 24,                                          // ')'
	(stateRightBank << 24) | (1 << 10),                            // '*'
	stateRightBank << 24,                                          // '+'
	stateRightBank << 24,                                          // ','
	stateRightBank << 24,                                          // '-'
	stateRightBank << 24,                                          // '.'
	(stateRightBank << 24) | (stateStop << 24),                    // '/'
	(stateRightBank << 24) | 0x00000001 | (1 << 9),                // '0'
	(stateRightBank << 24) | 0x00000001 | (1 << 1),                // '1'
	(stateRightBank << 24) | 0x00000001 | (1 << 2),                // '2'
	(stateRightBank << 24) | 0x00000001 | (1 << 4),                // '3'
	(stateRightBank << 24) | 0x00000001 | (1 << 6),                // '4'
	(stateRightBank << 24) | 0x00000001 | (1 << 8),                // '5'
	(stateRightBank << 24) | 0x00000001 | (1 << 13),               // '6'
	(stateRightBank << 24) | 0x00000001 | (1 << 15),               // '7'
	(stateRightBank << 24) | 0x00000001 | (1 << 17),               // '8'
	(stateRightBank << 24) | 0x00000001 | (1 << 19),               // '9'
	stateRightBank << 24, // ':'
	stateRightBank << 24, // ';'
	stateRightBank << 24, // '<'
	stateRightBank << 24, // '='
	stateRightBank << 24, // '>'
	stateRightBank << 24, // '?'
	stateRightBank << 24, // '@'
	(stateRightBank << 24) | (1 << 8),  // 'A'
	(stateRightBank << 24) | (1 << 16), // 'B'
	stateRightBank << 24,               // 'C'
	(stateRightBank << 24) | (1 << 21), // 'D'
	(stateRightBank << 24) | (1 << 11), // 'E'
	(stateRightBank << 24) | (1 << 13), // 'F'
	(stateRightBank << 24) | (1 << 18), // 'G'
	stateRightBank << 24,               // 'H'
	stateRightBank << 24,               // 'I'
	stateRightBank << 24,               // 'J'
	stateRightBank << 24,               // 'K'
	(stateRightBank << 24) | (1 << 17), // 'L'
	stateRightBank << 24,               // 'M'
	stateRightBank << 24,               // 'N'
	(stateRightBank << 24) | (1 << 9),  // 'O'
	(stateRightBank << 24) | (1 << 15), // 'P'
	stateRightBank << 24,               // 'Q'
	(stateRightBank << 24) | (1 << 14), // 'R'
	(stateRightBank << 24) | (1 << 20), // 'S'
	(stateRightBank << 24) | (1 << 19), // 'T'
	(stateRightBank << 24) | (1 << 12), // 'U'
	stateRightBank << 24,               // 'V'
	stateRightBank << 24,               // 'W'
	stateRightBank << 24,               // 'X'
	stateRightBank << 24,               // 'Y'
	(stateRightBank << 24) | (1 << 22), // 'Z'
	stateRightBank << 24,               // '['
	stateRightBank << 24,               // '\\'
	stateRightBank << 24,               // ']'
	stateRightBank << 24,               // '^'
	stateRightBank << 24,               // '_'
}

// ErrTooManyChords is returned when a stroke-key's chord count exceeds
// MaxChordsPerKey.
var ErrTooManyChords = errors.New("chord: stroke-key exceeds 1000 chords")

// Decode reads one chord from s, returning the packed value and the number
// of bytes consumed (including the terminator, '"' or '/', if one was
// present). Bytes outside 0x20-0x7F are clamped by masking, per the
// original parser; this is documented as lossy rather than fixed.
func Decode(s []byte) (Chord, int) {
	var accumulator uint32
	var state uint32
	pos := 0
	for state&stateStop == 0 && pos < len(s) {
		b := s[pos]
		pos++
		idx := (uint32(b-32) & 63) | (state & stateRightBank)
		entry := table[idx]
		accumulator |= entry & entryKeyMask
		state = entry >> 24
	}
	return Chord(accumulator), pos
}

// DecodeSequence parses a full '/'-separated stroke-key string into its
// constituent chords. The trailing terminator of the last chord need not be
// present in s. Fails with ErrTooManyChords past 1000 chords.
func DecodeSequence(s []byte) ([]Chord, error) {
	var chords []Chord
	pos := 0
	for pos < len(s) {
		if len(chords) >= MaxChordsPerKey {
			return nil, ErrTooManyChords
		}
		c, n := Decode(s[pos:])
		if n == 0 {
			// Decode only returns 0 when s[pos:] is empty, which the loop
			// guard already excludes; guard anyway to avoid looping forever
			// on unexpected input.
			break
		}
		chords = append(chords, c)
		pos += n
	}
	return chords, nil
}

// AppendBytes appends the little-endian 3-byte packed form of c to dst.
func (c Chord) AppendBytes(dst []byte) []byte {
	return append(dst, byte(c), byte(c>>8), byte(c>>16))
}
