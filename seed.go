package bbx

import (
	"fmt"

	"github.com/holiman/uint256"
)

//SeedLen is the width of a committed seed in bytes
const SeedLen = 16

//Seed is the 128-bit value committed at request time. It is derived once and
//never recomputed, the voucher carries it between request and claim.
type Seed [SeedLen]byte

//Bytes returns the underlying bytes as a slice
func (s Seed) Bytes() []byte { return s[:] }

//Uint128 interprets the seed as a big-endian 128-bit unsigned integer
func (s Seed) Uint128() *uint256.Int {
	return new(uint256.Int).SetBytes(s[:])
}

func (s Seed) String() string {
	return fmt.Sprintf("%.4x", s[:4])
}

//CommitSeed derives the committed seed from the transaction context: the
//canonical serialization of {Seq, Caller, TxID, TimeUs} is digested and
//truncated to 128 bits. Every input is fixed and known to all parties at the
//moment of commitment so the seed cannot be steered by knowledge of the
//eventual reveal, yet it is unpredictable to an outside observer because the
//transaction id is unique per transaction.
func CommitSeed(ctx *TxCtx) (s Seed) {
	d := ctx.Digest()
	copy(s[:], d[:SeedLen])
	return
}
