package keyindex

import "testing"

func TestPutIfAbsentNeverOverwrites(t *testing.T) {
	idx := New()
	if !idx.PutIfAbsent("k1", "e1") {
		t.Fatal("first PutIfAbsent should succeed")
	}
	if idx.PutIfAbsent("k1", "e2") {
		t.Fatal("second PutIfAbsent on the same key-value must not overwrite")
	}
	got, ok := idx.Get("k1")
	if !ok || got != "e1" {
		t.Fatalf("Get(k1) = (%q, %v), want (e1, true)", got, ok)
	}
}

func TestGetMissing(t *testing.T) {
	idx := New()
	if _, ok := idx.Get("nope"); ok {
		t.Fatal("Get on an absent key-value must report false")
	}
}

func TestLen(t *testing.T) {
	idx := New()
	idx.PutIfAbsent("a", "1")
	idx.PutIfAbsent("b", "2")
	idx.PutIfAbsent("a", "3") // absorbed, not counted again
	if idx.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", idx.Len())
	}
}
