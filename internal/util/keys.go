package util

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// maxPlainKey bounds how much of a user key appears verbatim in a storage key.
const maxPlainKey = 64

// MemoKey is the local cache key for key under mode. The NUL separator
// can't occur in a mode name, so two modes never share a cache slot.
func MemoKey(mode, key string) string {
	return mode + "\x00" + key
}

// StorageKey returns the shared-provider key for key under mode:
//
//	memo:<ns>:<mode>:<key>          short keys
//	memo:<ns>:<mode>:#<sha256[:16]> keys longer than maxPlainKey
//
// Hashed keys may collide; the wire frame carries the full key for verification.
func StorageKey(ns, mode, key string) string {
	prefix := "memo:" + ns + ":" + mode + ":"
	if len(key) <= maxPlainKey {
		return prefix + key
	}
	sum := sha256.Sum256([]byte(key))
	return prefix + "#" + hex.EncodeToString(sum[:8]) // prefix + "#" + first 16 hex chars
}

// SplitMemoKey reverses MemoKey.
func SplitMemoKey(k string) (mode, key string, ok bool) {
	return strings.Cut(k, "\x00")
}
