package link

import (
	"github.com/opensteno/dictionary/internal/hashtable"
	"github.com/opensteno/dictionary/internal/record"
)

// CrossLink walks pairs once more, from the start, and for each
// (strokes, translation) pair locates the still-Unset entry each side's
// build pass reserved for it, then points each entry's value at the
// other's offset. Because every pair has exactly one Unset slot on each
// side by construction, and pairs come back in the same order the tables
// were built from, this always finds a match: duplicate keys on either
// side simply consume their Unset slots one at a time.
func CrossLink(strokes, strings *hashtable.Table, pairs *record.PairIterator) error {
	for {
		strokesRaw, translation, ok := pairs.Next()
		if !ok {
			return nil
		}
		chordBytes := record.NewChordIterator(strokesRaw).Bytes()

		strokesHandle, ok := strokes.LookupUnset(chordBytes)
		if !ok {
			return hashtable.ErrNoFittingEntry
		}
		stringsHandle, ok := strings.LookupUnset(translation)
		if !ok {
			return hashtable.ErrNoFittingEntry
		}

		strokes.SetValue(strokesHandle, stringsHandle.Offset)
		strings.SetValue(stringsHandle, strokesHandle.Offset)
	}
}
