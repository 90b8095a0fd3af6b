package bbx

import (
	"encoding/binary"
	"fmt"

	"github.com/holiman/uint256"

	"github.com/advanderveer/bbx/chain"
)

//Tier is the ordinal reward rarity rank, Tier5 being the rarest
type Tier uint8

//the five reward tiers
const (
	Tier1 Tier = 1 + iota
	Tier2
	Tier3
	Tier4
	Tier5
)

func (t Tier) String() string { return fmt.Sprintf("tier-%d", uint8(t)) }

//TierMod is the range the truncated derivation value is reduced to
const TierMod = 10000

//tierBounds are the exclusive upper bounds of the cumulative probability
//ranges, rarest first: [0,1)=5, [1,10)=4, [10,100)=3, [100,1000)=2 and
//[1000,10000)=1. Together they fix the nominal probabilities at 0.01%,
//0.09%, 0.9%, 9% and 90%.
var tierBounds = [...]uint64{1, 10, 100, 1000}

//TierFor maps a reduced derivation value in [0, TierMod) to its reward tier
func TierFor(r uint64) Tier {
	for i, bound := range tierBounds {
		if r < bound {
			return Tier5 - Tier(i)
		}
	}

	return Tier1
}

//DeriveTier combines the committed seed with the now-revealed header to
//derive the reward tier: the canonical serialization of {header, seed, Seq,
//Caller, TxID} is digested, truncated to 128 bits and reduced mod TierMod.
//Mixing the caller and transaction identifiers in again binds the outcome to
//the specific claim transaction, two claims that somehow reused the same seed
//and header still derive independently.
func DeriveTier(seed Seed, hdr *chain.Header, ctx *TxCtx) Tier {
	seqb := make([]byte, 8)
	binary.BigEndian.PutUint64(seqb, ctx.Seq)

	v := Truncate128(Digest(hdr.Canon(), seed[:], seqb, ctx.Caller[:], ctx.TxID[:]))
	r := new(uint256.Int).Mod(v, uint256.NewInt(TierMod))
	return TierFor(r.Uint64())
}
