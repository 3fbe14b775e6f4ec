package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
)

const (
	version   byte = 1
	kindMemo  byte = 1
	maxMode        = 0xFF
	maxKey         = 0xFFFF
	headerLen      = 4 + 1 + 1
)

var (
	ErrCorrupt  = errors.New("genlru: corrupt shared entry")
	ErrTooLarge = errors.New("genlru: mode or key too long for wire frame")
	magic4      = [...]byte{'G', 'L', 'R', 'U'}
)

func hasMagic(b []byte) bool {
	return len(b) >= 4 && bytes.Equal(b[:4], magic4[:])
}

// Entry is a memoized transformation as stored in a shared provider.
// Mode and Key travel with the payload so a reader can reject entries
// written for another input (hashed storage keys may collide).
type Entry struct {
	Mode    string
	Key     string
	Payload []byte
}

// Memo entry:
//
//	magic(4) | ver(1) | kind(1=memo) | modeLen(u8) | mode | keyLen(u16 be) | key | vlen(u32 be) | payload(vlen)
func EncodeEntry(e Entry) ([]byte, error) {
	if len(e.Mode) == 0 || len(e.Mode) > maxMode || len(e.Key) > maxKey {
		return nil, ErrTooLarge
	}

	var buf bytes.Buffer
	buf.Grow(headerLen + 1 + len(e.Mode) + 2 + len(e.Key) + 4 + len(e.Payload))

	buf.Write(magic4[:])
	buf.WriteByte(version)
	buf.WriteByte(kindMemo)

	buf.WriteByte(byte(len(e.Mode)))
	buf.WriteString(e.Mode)

	var u2 [2]byte
	binary.BigEndian.PutUint16(u2[:], uint16(len(e.Key)))
	buf.Write(u2[:])
	buf.WriteString(e.Key)

	var u4 [4]byte
	binary.BigEndian.PutUint32(u4[:], uint32(len(e.Payload)))
	buf.Write(u4[:])
	buf.Write(e.Payload)

	return buf.Bytes(), nil
}

// DecodeEntry parses a frame produced by EncodeEntry. The returned payload
// aliases b. Trailing bytes are treated as corruption.
func DecodeEntry(b []byte) (Entry, error) {
	if len(b) < headerLen+1 || !hasMagic(b) || b[4] != version || b[5] != kindMemo {
		return Entry{}, ErrCorrupt
	}
	off := headerLen

	// mode
	mlen := int(b[off])
	off++
	if mlen == 0 || mlen > len(b)-off {
		return Entry{}, ErrCorrupt
	}
	mode := string(b[off : off+mlen])
	off += mlen

	// key
	if off+2 > len(b) {
		return Entry{}, ErrCorrupt
	}
	klen := int(binary.BigEndian.Uint16(b[off : off+2]))
	off += 2
	if klen > len(b)-off {
		return Entry{}, ErrCorrupt
	}
	key := string(b[off : off+klen])
	off += klen

	// vlen
	if off+4 > len(b) {
		return Entry{}, ErrCorrupt
	}
	vlen := int(binary.BigEndian.Uint32(b[off : off+4]))
	off += 4
	if vlen < 0 || vlen != len(b)-off { // overflow-safe, no trailing junk
		return Entry{}, ErrCorrupt
	}

	return Entry{Mode: mode, Key: key, Payload: b[off : off+vlen]}, nil
}
