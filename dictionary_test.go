package dictionary

import (
	"bytes"
	"testing"
)

func TestLoadSinglePair(t *testing.T) {
	img, err := Load([]byte(`{"KPWHRE":"hi"}`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	var strokes [][]byte
	img.QueryTranslation([]byte("hi"), func(s []byte) {
		strokes = append(strokes, append([]byte(nil), s...))
	})
	if len(strokes) != 1 {
		t.Fatalf("got %d strokes results, want 1", len(strokes))
	}

	var translations []string
	if err := img.QueryStrokes([]byte("KPWHRE"), func(tr []byte) {
		translations = append(translations, string(tr))
	}); err != nil {
		t.Fatalf("QueryStrokes: %v", err)
	}
	if len(translations) != 1 || translations[0] != "hi" {
		t.Fatalf("got %v, want [hi]", translations)
	}
}

func TestLoadTwoPairs(t *testing.T) {
	img, err := Load([]byte(`{"KPWHRE":"hi","HEL/LOE":"hello"}`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	var hi, hello int
	img.QueryTranslation([]byte("hi"), func([]byte) { hi++ })
	img.QueryTranslation([]byte("hello"), func([]byte) { hello++ })
	if hi != 1 || hello != 1 {
		t.Fatalf("got hi=%d hello=%d, want 1 and 1", hi, hello)
	}

	var translation string
	if err := img.QueryStrokes([]byte("HEL/LOE"), func(tr []byte) {
		translation = string(tr)
	}); err != nil {
		t.Fatalf("QueryStrokes: %v", err)
	}
	if translation != "hello" {
		t.Fatalf("got %q, want hello", translation)
	}
}

func TestLoadSameTranslationDifferentStrokes(t *testing.T) {
	img, err := Load([]byte(`{"KPWHRE":"hi","TPHEU":"hi"}`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	var got []string
	img.QueryTranslation([]byte("hi"), func(strokes []byte) {
		got = append(got, string(strokes))
	})
	if len(got) != 2 {
		t.Fatalf("got %d results, want 2", len(got))
	}
	if got[0] == got[1] {
		t.Fatalf("expected two distinct strokes keys, got identical bytes twice")
	}
}

func TestLoadUnescapesLiteralQuote(t *testing.T) {
	img, err := Load([]byte(`{"KPWHRE":"say \"hi\""}`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	var found bool
	img.QueryTranslation([]byte(`say "hi"`), func([]byte) { found = true })
	if !found {
		t.Fatalf("expected the unescaped translation to be queryable")
	}
}

func TestLoadRejectsBackslashInStrokesKey(t *testing.T) {
	if _, err := Load([]byte(`{"KPW\\HRE":"hi"}`)); err == nil {
		t.Fatalf("expected an error for a backslash in a strokes key")
	}
}

func TestLoadRejectsThousandAndOneChords(t *testing.T) {
	key := bytes.Repeat([]byte("S/"), 1001)
	input := append(append([]byte(`{"`), key...), []byte(`":"hi"}`)...)
	if _, err := Load(input); err == nil {
		t.Fatalf("expected an error for more than 1000 chords")
	}
}

func TestLoadWithHostLogsOnFailure(t *testing.T) {
	var message string
	var line int
	host := Host{LogError: func(m, _ string, l int) { message, line = m, l }}
	img := LoadWithHost([]byte(`not json`), host)
	if img != nil {
		t.Fatalf("expected a nil Image on failure")
	}
	if message == "" {
		t.Fatalf("expected LogError to be called with a message")
	}
	_ = line
}

func TestQueryStrokesRejectsOverlongQuery(t *testing.T) {
	img, err := Load([]byte(`{"KPWHRE":"hi"}`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	long := bytes.Repeat([]byte("S/"), 33)
	if err := img.QueryStrokes(long, func([]byte) {
		t.Fatalf("should not yield for an overlong query")
	}); err == nil {
		t.Fatalf("expected ErrStrokesQueryTooLong")
	}
}

func TestQueryDispatchesByMode(t *testing.T) {
	img, err := Load([]byte(`{"KPWHRE":"hi"}`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	var translateHits int
	if err := img.Query([]byte("hi"), ModeTranslate, func(strokes, translation []byte) {
		translateHits++
		if string(translation) != "hi" {
			t.Fatalf("translation echoed back wrong: %q", translation)
		}
	}); err != nil {
		t.Fatalf("Query(ModeTranslate): %v", err)
	}
	if translateHits != 1 {
		t.Fatalf("got %d translate hits, want 1", translateHits)
	}

	var strokesHits int
	if err := img.Query([]byte("KPWHRE"), ModeStrokes, func(strokes, translation []byte) {
		strokesHits++
		if string(translation) != "hi" {
			t.Fatalf("got translation %q, want hi", translation)
		}
	}); err != nil {
		t.Fatalf("Query(ModeStrokes): %v", err)
	}
	if strokesHits != 1 {
		t.Fatalf("got %d strokes hits, want 1", strokesHits)
	}
}

func TestMarshalUnmarshalBinaryRoundTrips(t *testing.T) {
	img, err := Load([]byte(`{"KPWHRE":"hi","HEL/LOE":"hello"}`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	data, err := img.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}

	var restored Image
	if err := restored.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}

	var translation string
	if err := restored.QueryStrokes([]byte("HEL/LOE"), func(tr []byte) {
		translation = string(tr)
	}); err != nil {
		t.Fatalf("QueryStrokes after round trip: %v", err)
	}
	if translation != "hello" {
		t.Fatalf("got %q after round trip, want hello", translation)
	}
}
