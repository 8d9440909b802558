package dsu

import "testing"

func TestMakeSetIdempotent(t *testing.T) {
	f := New()
	f.MakeSet("a")
	f.MakeSet("a")
	if got := f.FindRoot("a"); got != "a" {
		t.Fatalf("FindRoot(a) = %q, want %q", got, "a")
	}
}

func TestUnionSurvivorControl(t *testing.T) {
	f := New()
	f.MakeSet("b")
	f.MakeSet("a")
	f.Union("a", "b") // a survives
	if got := f.FindRoot("b"); got != "a" {
		t.Fatalf("FindRoot(b) = %q, want %q", got, "a")
	}
	if got := f.FindRoot("a"); got != "a" {
		t.Fatalf("FindRoot(a) = %q, want %q", got, "a")
	}
}

func TestUnionNoOpWhenAlreadyMerged(t *testing.T) {
	f := New()
	f.MakeSet("a")
	f.MakeSet("b")
	f.Union("a", "b")
	f.Union("a", "b") // already same root, must not panic or change anything
	if got := f.FindRoot("b"); got != "a" {
		t.Fatalf("FindRoot(b) = %q, want %q", got, "a")
	}
}

func TestUnionChain(t *testing.T) {
	f := New()
	for _, id := range []string{"a", "b", "c", "d"} {
		f.MakeSet(id)
	}
	f.Union("a", "b")
	f.Union("a", "c")
	f.Union("a", "d")

	for _, id := range []string{"a", "b", "c", "d"} {
		if got := f.FindRoot(id); got != "a" {
			t.Fatalf("FindRoot(%s) = %q, want %q", id, got, "a")
		}
	}
}

func TestFindRootPanicsOnUnknownID(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected FindRoot on unknown id to panic")
		}
	}()
	New().FindRoot("ghost")
}
