package link

import (
	"encoding/binary"
	"testing"

	"github.com/opensteno/dictionary/internal/hashtable"
	"github.com/opensteno/dictionary/internal/record"
)

func buildRecord(payload []byte) []byte {
	buf := make([]byte, 2+len(payload))
	binary.LittleEndian.PutUint16(buf, uint16(2+len(payload)))
	copy(buf[2:], payload)
	return buf
}

func buildIntermediate(pairs [][2]string) []byte {
	var buf []byte
	for _, p := range pairs {
		buf = append(buf, buildRecord([]byte(p[0]))...)
		buf = append(buf, buildRecord([]byte(p[1]))...)
	}
	return buf
}

func TestCrossLinkBijection(t *testing.T) {
	pairs := [][2]string{
		{"KPWHRE", "hi"},
		{"HEL/LOE", "hello"},
		{"KPWHRE", "hiya"}, // same strokes, different translation
	}
	stream := buildIntermediate(pairs)

	var strokesKeys, stringsKeys [][]byte
	it := record.NewPairs(stream)
	for {
		s, tr, ok := it.Next()
		if !ok {
			break
		}
		strokesKeys = append(strokesKeys, record.NewChordIterator(s).Bytes())
		stringsKeys = append(stringsKeys, append([]byte(nil), tr...))
	}

	strokesTable, err := hashtable.Build(strokesKeys, hashtable.WithLoadFactor(2))
	if err != nil {
		t.Fatalf("Build strokes: %v", err)
	}
	stringsTable, err := hashtable.Build(stringsKeys, hashtable.WithLoadFactor(2))
	if err != nil {
		t.Fatalf("Build strings: %v", err)
	}

	if err := CrossLink(strokesTable, stringsTable, record.NewPairs(stream)); err != nil {
		t.Fatalf("CrossLink: %v", err)
	}

	// Every entry on both sides must now be resolved.
	for i, k := range strokesKeys {
		if _, ok := strokesTable.LookupUnset(k); ok {
			t.Fatalf("strokes entry %d still unset after cross-link", i)
		}
	}
	for i, k := range stringsKeys {
		if _, ok := stringsTable.LookupUnset(k); ok {
			t.Fatalf("strings entry %d still unset after cross-link", i)
		}
	}

	// Follow the link from "hi" back to its strokes key.
	var translationBack []byte
	stringsTable.Lookup([]byte("hi"), func(h hashtable.EntryHandle, value uint32) {
		_, v := stringsTable.Value(h)
		strokesKey, _ := strokesTable.Value(hashtable.EntryHandle{Offset: v})
		translationBack = strokesKey
	})
	if string(translationBack) != string(strokesKeys[0]) {
		t.Fatalf("cross-link did not round-trip to the original strokes key")
	}
}
