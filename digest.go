package bbx

import (
	"github.com/holiman/uint256"
	"golang.org/x/crypto/sha3"
)

//DigestLen is the width of the digest in bytes
const DigestLen = 32

//Digest computes the fixed 256-bit hash over the provided fields in order.
//It is the sole source of pseudo-randomness extraction in this package, all
//seeds and outcomes reduce to digests of canonically serialized fields.
func Digest(fields ...[]byte) (d [32]byte) {
	h := sha3.New256()
	for _, f := range fields {
		h.Write(f)
	}

	copy(d[:], h.Sum(nil))
	return
}

//Truncate128 packs the first 16 bytes of a digest big-endian into a 128-bit
//unsigned integer, byte 0 being the most significant. The truncation is part
//of the outcome contract and must stay bit-exact across implementations.
func Truncate128(d [32]byte) (v *uint256.Int) {
	return new(uint256.Int).SetBytes(d[:16])
}
