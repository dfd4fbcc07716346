package prop

import (
	"encoding/base32"
	"encoding/binary"
	"fmt"
)

// replayEncoding is unpadded, so the capsule string has no trailing "="
// noise when pasted on a command line.
var replayEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// EncodeReplay packs a run's identity — which named property it came from,
// plus the seed that reproduces its draws — into a compact opaque string a
// developer can paste into a future run's --replay flag. This is a
// single-run convenience: nothing is written to disk, and no generator
// list identity beyond the name is recorded, so it only replays
// deterministically against the same property a caller already has in
// source.
//
// The wire format is a small fixed struct (8-byte big-endian seed, then a
// length-prefixed name), not CBOR: a general-purpose encoding would pull
// in a codec dependency for a handful of bytes this module can lay out by
// hand, and the capsule is never meant to be forward-compatible wire data
// (unlike an actual persisted corpus), so there is nothing a schema-aware
// format buys here.
func EncodeReplay(name string, seed int64) string {
	buf := make([]byte, 8+2+len(name))
	binary.BigEndian.PutUint64(buf[0:8], uint64(seed))
	binary.BigEndian.PutUint16(buf[8:10], uint16(len(name)))
	copy(buf[10:], name)
	return replayEncoding.EncodeToString(buf)
}

// DecodeReplay reverses EncodeReplay.
func DecodeReplay(capsule string) (name string, seed int64, err error) {
	buf, err := replayEncoding.DecodeString(capsule)
	if err != nil {
		return "", 0, fmt.Errorf("prop: malformed replay capsule: %w", err)
	}
	if len(buf) < 10 {
		return "", 0, fmt.Errorf("prop: malformed replay capsule: too short")
	}
	seed = int64(binary.BigEndian.Uint64(buf[0:8]))
	nameLen := int(binary.BigEndian.Uint16(buf[8:10]))
	if len(buf) != 10+nameLen {
		return "", 0, fmt.Errorf("prop: malformed replay capsule: name length mismatch")
	}
	name = string(buf[10:])
	return name, seed, nil
}
