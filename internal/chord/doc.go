// Package chord implements the table-driven finite automaton that turns
// ASCII steno chord notation into packed 24-bit chords.
//
// The automaton is the one steno-lookup shipped in its final draft: a
// 128-entry table indexed by a 7-bit key made of the low 6 bits of
// (inputByte-32) and a right-bank state bit. Each entry's low 24 bits OR
// into the accumulating chord; its top 8 bits become the next state. State
// bit 6 latches the right-bank half of the table once the hyphen, the
// asterisk, a vowel (A, O, E, U) or the digits 0 or 5 have been seen; a
// right-bank-only letter read before that contributes no bits. State bit 7
// is a stop flag set only by the two terminator bytes, '"' and '/'.
package chord
