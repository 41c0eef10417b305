package hashtable

import (
	"bytes"
	"testing"
)

func TestBuildAndLookup(t *testing.T) {
	keys := [][]byte{
		[]byte("KPWHRE"),
		[]byte("TPHO"),
		[]byte("HEL/LOE"),
		[]byte("KPWHRE"), // duplicate key, distinct entry
	}
	tbl, err := Build(keys, WithLoadFactor(2))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	var matches int
	tbl.Lookup([]byte("KPWHRE"), func(h EntryHandle, value uint32) {
		matches++
		if value != Unset {
			t.Fatalf("freshly built entry should be Unset, got %d", value)
		}
	})
	if matches != 2 {
		t.Fatalf("expected 2 entries for duplicate key, got %d", matches)
	}

	tbl.Lookup([]byte("nonexistent"), func(h EntryHandle, value uint32) {
		t.Fatalf("unexpected match for absent key")
	})
}

func TestBucketPackingInvariant(t *testing.T) {
	keys := [][]byte{
		[]byte("a"), []byte("bb"), []byte("ccc"), []byte("dddd"),
		[]byte("e"), []byte("ff"), []byte("ggg"),
	}
	tbl, err := Build(keys, WithLoadFactor(2))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for i := 0; i < len(tbl.Buckets)-1; i++ {
		lo, hi := tbl.Buckets[i], tbl.Buckets[i+1]
		if hi < lo {
			t.Fatalf("bucket %d has hi < lo: %d < %d", i, hi, lo)
		}
		var sum uint32
		cursor := lo
		for cursor < hi {
			length := uint16(tbl.Data[cursor]) | uint16(tbl.Data[cursor+1])<<8
			if length == 0 {
				t.Fatalf("bucket %d has a zero header before reaching hi", i)
			}
			sum += uint32(length)
			cursor += uint32(length)
		}
		if sum != hi-lo {
			t.Fatalf("bucket %d packed %d bytes, want %d", i, sum, hi-lo)
		}
	}
	if int(tbl.Buckets[len(tbl.Buckets)-1]) != len(tbl.Data) {
		t.Fatalf("last bucket boundary %d != len(Data) %d", tbl.Buckets[len(tbl.Buckets)-1], len(tbl.Data))
	}
}

func TestLookupUnsetAdvancesPastSetEntries(t *testing.T) {
	keys := [][]byte{[]byte("dup"), []byte("dup"), []byte("dup")}
	tbl, err := Build(keys, WithLoadFactor(1))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	seen := map[uint32]bool{}
	for i := 0; i < 3; i++ {
		h, ok := tbl.LookupUnset([]byte("dup"))
		if !ok {
			t.Fatalf("expected an unset entry on round %d", i)
		}
		if seen[h.Offset] {
			t.Fatalf("LookupUnset returned the same offset twice")
		}
		seen[h.Offset] = true
		tbl.SetValue(h, uint32(i))
	}
	if _, ok := tbl.LookupUnset([]byte("dup")); ok {
		t.Fatalf("expected no unset entries left")
	}
}

func TestSetValueRoundTrips(t *testing.T) {
	tbl, err := Build([][]byte{[]byte("K")}, WithLoadFactor(1))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	h, ok := tbl.LookupUnset([]byte("K"))
	if !ok {
		t.Fatalf("expected entry")
	}
	tbl.SetValue(h, 42)
	key, value := tbl.Value(h)
	if !bytes.Equal(key, []byte("K")) || value != 42 {
		t.Fatalf("got (%q, %d), want (\"K\", 42)", key, value)
	}
}

func TestBuildEmptyKeysStillProducesOneBucket(t *testing.T) {
	tbl, err := Build(nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(tbl.Buckets) != 2 {
		t.Fatalf("expected a single bucket for zero keys, got %d buckets", len(tbl.Buckets)-1)
	}
}
