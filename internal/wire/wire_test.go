package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
	"strings"
	"testing"
)

func mustEncode(t *testing.T, e Entry) []byte {
	t.Helper()
	b, err := EncodeEntry(e)
	if err != nil {
		t.Fatalf("EncodeEntry error: %v", err)
	}
	return b
}

func TestEntryRTEmptyAndNonEmpty(t *testing.T) {
	cases := []Entry{
		{Mode: "camel", Key: "", Payload: nil},
		{Mode: "snake", Key: "fooBar", Payload: []byte("foo_bar")},
		{Mode: "pascal", Key: strings.Repeat("k", maxKey), Payload: []byte{0, 1, 2, 3}},
	}
	for _, tc := range cases {
		got, err := DecodeEntry(mustEncode(t, tc))
		if err != nil {
			t.Fatalf("DecodeEntry(%q): %v", tc.Mode, err)
		}
		if got.Mode != tc.Mode || got.Key != tc.Key {
			t.Fatalf("header mismatch: got %q/%d want %q/%d", got.Mode, len(got.Key), tc.Mode, len(tc.Key))
		}
		if !bytes.Equal(got.Payload, tc.Payload) {
			t.Fatalf("payload mismatch: got %x want %x", got.Payload, tc.Payload)
		}
	}
}

func TestEncodeRejectsOversizedHeaders(t *testing.T) {
	bad := []Entry{
		{Mode: "", Key: "k"},
		{Mode: strings.Repeat("m", maxMode+1), Key: "k"},
		{Mode: "camel", Key: strings.Repeat("k", maxKey+1)},
	}
	for _, e := range bad {
		if _, err := EncodeEntry(e); !errors.Is(err, ErrTooLarge) {
			t.Fatalf("mode=%d key=%d: err=%v want ErrTooLarge", len(e.Mode), len(e.Key), err)
		}
	}
}

func TestDecodeRejectsTrailingBytes(t *testing.T) {
	enc := mustEncode(t, Entry{Mode: "camel", Key: "a_b", Payload: []byte("aB")})
	enc = append(enc, 0xDE, 0xAD)
	if _, err := DecodeEntry(enc); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt on trailing bytes, got %v", err)
	}
}

func TestDecodeCorruptHeadersAndLengths(t *testing.T) {
	enc := mustEncode(t, Entry{Mode: "camel", Key: "a_b", Payload: []byte("aB")})

	mutate := func(f func(b []byte) []byte) []byte {
		return f(append([]byte(nil), enc...))
	}

	keyOverrun := func(b []byte) []byte {
		off := headerLen + 1 + len("camel")
		binary.BigEndian.PutUint16(b[off:off+2], 0xFFFF)
		return b
	}

	cases := map[string][]byte{
		"bad magic":     mutate(func(b []byte) []byte { b[0] = 'X'; return b }),
		"bad version":   mutate(func(b []byte) []byte { b[4] = version + 1; return b }),
		"bad kind":      mutate(func(b []byte) []byte { b[5] = kindMemo + 1; return b }),
		"zero mode":     mutate(func(b []byte) []byte { b[6] = 0; return b }),
		"mode overrun":  mutate(func(b []byte) []byte { b[6] = 0xFF; return b }),
		"key overrun":   mutate(keyOverrun),
		"short payload": mutate(func(b []byte) []byte { return b[:len(b)-1] }),
		"truncated":     enc[:headerLen],
		"empty":         nil,
	}
	for name, b := range cases {
		if _, err := DecodeEntry(b); !errors.Is(err, ErrCorrupt) {
			t.Fatalf("%s: expected ErrCorrupt, got %v", name, err)
		}
	}
}

func TestDecodePayloadAliasesInput(t *testing.T) {
	enc := mustEncode(t, Entry{Mode: "snake", Key: "k", Payload: []byte("v")})
	got, err := DecodeEntry(enc)
	if err != nil {
		t.Fatal(err)
	}
	enc[len(enc)-1] = 'w'
	if string(got.Payload) != "w" {
		t.Fatalf("payload should alias input buffer")
	}
}
