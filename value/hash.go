package value

import (
	"encoding/binary"
	"math"
	"strconv"
)

// NullHash is the hash of Null. Every other value hashes into the low 32
// bits, so NullHash collides with nothing.
const NullHash uint64 = math.MaxUint64

const hashSeed uint32 = 728271210

// Hash returns a hash of v consistent with Equal: an Integer hashes as its
// canonical decimal text, so FromInt64(5) and FromString("5") agree.
func (v Value) Hash() uint64 {
	switch v.kind {
	case IntegerKind:
		var buf [20]byte
		return uint64(RawHash(strconv.AppendInt(buf[:0], v.i64, 10)))
	case RawKind:
		return uint64(RawHash(v.raw))
	}
	return NullHash
}

// RawHash folds d into a 32-bit accumulator, one little-endian word at a
// time and then one byte at a time over the tail.
func RawHash(d []byte) uint32 {
	acc := hashSeed
	n := len(d) &^ 7
	for i := 0; i < n; i += 8 {
		w := binary.LittleEndian.Uint64(d[i : i+8])
		acc = acc*33 ^ (uint32(w) ^ uint32(w>>32))
	}
	for _, c := range d[n:] {
		acc = acc*33 ^ uint32(c)
	}
	return acc
}
