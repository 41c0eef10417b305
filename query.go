package dictionary

import (
	"github.com/pkg/errors"

	"github.com/opensteno/dictionary/internal/chord"
	"github.com/opensteno/dictionary/internal/hashtable"
)

// maxQueryChords bounds a strokes query's temporary parse buffer at 32
// chords (96 bytes). Longer queries fail rather than silently truncate,
// per the final (non-lossy) revision of the original design.
const maxQueryChords = 32

// ErrStrokesQueryTooLong is returned by QueryStrokes when the query
// string decodes to more than maxQueryChords chords.
var ErrStrokesQueryTooLong = errors.New("dictionary: strokes query exceeds 32-chord buffer")

// Mode selects which table Query searches.
type Mode int

const (
	// ModeTranslate looks a translation up and yields matching strokes.
	ModeTranslate Mode = 0
	// ModeStrokes looks a '/'-separated chord query up and yields
	// matching translations.
	ModeStrokes Mode = 1
)

// QueryTranslation enumerates, in bucket order, the packed strokes-key
// bytes of every stroke-key whose translation equals translation.
func (img *Image) QueryTranslation(translation []byte, yield func(strokes []byte)) {
	img.strings.Lookup(translation, func(_ hashtable.EntryHandle, value uint32) {
		strokesKey, _ := img.strokes.Value(hashtable.EntryHandle{Offset: value})
		yield(strokesKey)
	})
}

// QueryStrokes parses query as a '/'-separated chord string and
// enumerates, in bucket order, the translation of every stroke-key that
// matches it. It fails without yielding anything if query decodes to
// more chords than the fixed-size query buffer holds.
func (img *Image) QueryStrokes(query []byte, yield func(translation []byte)) error {
	chords, err := chord.DecodeSequence(query)
	if err == chord.ErrTooManyChords {
		return ErrStrokesQueryTooLong
	}
	if err != nil {
		return err
	}
	if len(chords) > maxQueryChords {
		return ErrStrokesQueryTooLong
	}
	packed := make([]byte, 0, len(chords)*3)
	for _, c := range chords {
		packed = c.AppendBytes(packed)
	}
	img.strokes.Lookup(packed, func(_ hashtable.EntryHandle, value uint32) {
		translation, _ := img.strings.Value(hashtable.EntryHandle{Offset: value})
		yield(translation)
	})
	return nil
}

// Query dispatches to QueryTranslation or QueryStrokes based on mode,
// unifying both under the (query_buffer, mode) shape of the original
// host-facing entry point. yield receives (strokes, translation) in
// either mode, with the side that was the query echoed back unchanged.
func (img *Image) Query(queryBytes []byte, mode Mode, yield func(strokes, translation []byte)) error {
	switch mode {
	case ModeTranslate:
		img.QueryTranslation(queryBytes, func(strokes []byte) {
			yield(strokes, queryBytes)
		})
		return nil
	case ModeStrokes:
		return img.QueryStrokes(queryBytes, func(translation []byte) {
			yield(queryBytes, translation)
		})
	default:
		return errors.Errorf("dictionary: unknown query mode %d", mode)
	}
}
