package util

import (
	"strings"
	"testing"
)

func TestMemoKeySeparatesModes(t *testing.T) {
	if MemoKey("camel", "foo_bar") == MemoKey("pascal", "foo_bar") {
		t.Fatalf("modes collide on the same key")
	}
	// "a" + "\x00b" vs "a\x00" + "b" cannot happen with NUL-free modes
	if MemoKey("camel", "x") != "camel\x00x" {
		t.Fatalf("unexpected layout %q", MemoKey("camel", "x"))
	}
}

func TestStorageKeyShortIsVerbatim(t *testing.T) {
	got := StorageKey("app", "snake", "fooBar")
	if got != "memo:app:snake:fooBar" {
		t.Fatalf("got %q", got)
	}
}

func TestStorageKeyLongIsHashedAndStable(t *testing.T) {
	long := strings.Repeat("x", maxPlainKey+1)
	a := StorageKey("app", "camel", long)
	b := StorageKey("app", "camel", long)
	if a != b {
		t.Fatalf("not deterministic: %q vs %q", a, b)
	}
	want := len("memo:app:camel:#") + 16
	if len(a) != want || !strings.HasPrefix(a, "memo:app:camel:#") {
		t.Fatalf("unexpected hashed key %q", a)
	}
	if StorageKey("app", "camel", long+"y") == a {
		t.Fatalf("different inputs produced the same hashed key")
	}
}

func TestSplitMemoKey(t *testing.T) {
	mode, key, ok := SplitMemoKey(MemoKey("snake", "a\x00b"))
	if !ok || mode != "snake" || key != "a\x00b" {
		t.Fatalf("got mode=%q key=%q ok=%v", mode, key, ok)
	}
	if _, _, ok := SplitMemoKey("plain"); ok {
		t.Fatalf("expected ok=false without separator")
	}
}
