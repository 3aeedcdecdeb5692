package imlayout

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"
)

// Key is the identity of a widget call, stable across frames as long as the
// sequence of emit calls leading up to it is unchanged.
type Key uint64

// Sub-part salts for multi-part widgets.
const (
	saltEditField uint64 = 0xEAEA
	saltDragField uint64 = 0xD1D1
	saltVecX      uint64 = 0xBEEF
	saltVecY      uint64 = 0xDEAD
	saltVecZ      uint64 = 0xF0F0
)

// StringHash hashes the bytes of text with the given seed.
func StringHash(text string, seed uint64) uint64 {
	return xxh3.HashStringSeed(text, seed)
}

// ValueHash hashes the little-endian encoding of bits with the given seed.
func ValueHash(bits, seed uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], bits)
	return xxh3.HashSeed(buf[:], seed)
}

// frameHasher threads a running hash through every emit call of a frame so
// that each key depends on all keys emitted before it.
type frameHasher struct {
	state   uint64
	ordinal uint64
}

func (h *frameHasher) reset() {
	h.state = 0
	h.ordinal = 0
}

// next folds a call into the running state and returns its key.
func (h *frameHasher) next(id string) Key {
	h.state = ValueHash(ValueHash(StringHash(id, h.state), h.ordinal), h.state)
	h.ordinal++
	return Key(h.state)
}

// sub derives the key of a widget part from its parent key.
func (k Key) sub(salt uint64) Key {
	return Key(ValueHash(salt, uint64(k)))
}
