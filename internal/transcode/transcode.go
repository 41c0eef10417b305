package transcode

import (
	"encoding/binary"

	"github.com/opensteno/dictionary/internal/chord"
	"github.com/opensteno/dictionary/internal/dicterr"
)

const maxRecordLength = 0xFFFF

// Rewrite parses buf as a JSON object of `{"strokes": "translation", ...}`
// entries and rewrites it in place into the intermediate length-prefixed
// record stream. It returns the number of bytes of buf that now hold that
// stream (the rest of buf, if any, is leftover trailing garbage from the
// original, longer JSON text and must be ignored).
func Rewrite(buf []byte) (int, error) {
	r := &rewriter{buf: buf}
	if err := r.driver(); err != nil {
		return 0, err
	}
	return r.write, nil
}

type rewriter struct {
	buf   []byte
	read  int
	write int
}

func (r *rewriter) eof() error {
	return dicterr.New("unexpected end of input", "ran out of bytes while parsing")
}

func (r *rewriter) peek() (byte, bool) {
	if r.read >= len(r.buf) {
		return 0, false
	}
	return r.buf[r.read], true
}

func (r *rewriter) skipWhitespace() error {
	for {
		b, ok := r.peek()
		if !ok {
			return r.eof()
		}
		switch b {
		case ' ', '\t', '\n', '\r':
			r.read++
		default:
			return nil
		}
	}
}

func (r *rewriter) expectChar(c byte) error {
	if err := r.skipWhitespace(); err != nil {
		return err
	}
	b, ok := r.peek()
	if !ok {
		return r.eof()
	}
	if b != c {
		return dicterr.New("unexpected character", "expected '"+string([]byte{c})+"'")
	}
	r.read++
	return nil
}

// rewriteString assumes the read cursor is positioned (after whitespace)
// at an opening quote. It reserves a 2-byte header at the write cursor,
// copies the string body across, unescaping \" and \\ while passing any
// other \X through verbatim, and patches the header once the closing
// quote is found. isStrokes additionally rejects any backslash and caps
// the number of '/'-separated chords at chord.MaxChordsPerKey.
func (r *rewriter) rewriteString(isStrokes bool) error {
	if err := r.skipWhitespace(); err != nil {
		return err
	}
	b, ok := r.peek()
	if !ok {
		return r.eof()
	}
	if b != '"' {
		return dicterr.New("unexpected character", "expected opening quote")
	}
	r.read++

	headerPos := r.write
	r.write += 2
	slashes := 0

	for {
		b, ok := r.peek()
		if !ok {
			return dicterr.New("unexpected end of input", "string was never closed")
		}
		if r.read < r.write {
			panic("transcode: write cursor overtook read cursor")
		}
		if b == '"' {
			r.read++
			break
		}
		if b == '\\' {
			if isStrokes {
				return dicterr.New("escape sequence in stroke definition", "strokes keys may not contain a backslash")
			}
			r.read++
			esc, ok := r.peek()
			if !ok {
				return r.eof()
			}
			switch esc {
			case '"':
				r.buf[r.write] = '"'
				r.write++
			case '\\':
				r.buf[r.write] = '\\'
				r.write++
			default:
				r.buf[r.write] = '\\'
				r.write++
				r.buf[r.write] = esc
				r.write++
			}
			r.read++
			continue
		}
		if b == '/' && isStrokes {
			slashes++
			if slashes+1 > chord.MaxChordsPerKey {
				return chord.ErrTooManyChords
			}
		}
		r.buf[r.write] = b
		r.write++
		r.read++
	}

	total := r.write - headerPos
	if total < 3 {
		return dicterr.New("record too short", "an intermediate record must be at least 3 bytes")
	}
	if total > maxRecordLength {
		return dicterr.New("record too long", "an intermediate record must fit in 16 bits")
	}
	binary.LittleEndian.PutUint16(r.buf[headerPos:headerPos+2], uint16(total))
	return nil
}

// driver consumes `{ "strokes": "translation", ... }`, writing one
// strokes record followed by one translation record per entry.
func (r *rewriter) driver() error {
	if err := r.expectChar('{'); err != nil {
		return err
	}
	if err := r.skipWhitespace(); err != nil {
		return err
	}
	if b, _ := r.peek(); b == '}' {
		r.read++
		return nil
	}

	for {
		if err := r.rewriteString(true); err != nil {
			return err
		}
		if err := r.expectChar(':'); err != nil {
			return err
		}
		if err := r.rewriteString(false); err != nil {
			return err
		}
		if err := r.skipWhitespace(); err != nil {
			return err
		}
		b, ok := r.peek()
		if !ok {
			return r.eof()
		}
		r.read++
		switch b {
		case ',':
			continue
		case '}':
			return nil
		default:
			return dicterr.New("unexpected character", "expected ',' or '}'")
		}
	}
}
